// 指示: miu200521358
package minteractor

import (
	"github.com/miu200521358/mu_bone_mesh/pkg/domain/mmath"
	"github.com/miu200521358/mu_bone_mesh/pkg/domain/model"
	"github.com/miu200521358/mu_bone_mesh/pkg/domain/model/merrors"
	"github.com/miu200521358/mu_bone_mesh/pkg/usecase/port/moutput"
)

const boneAxisEpsilon = 1e-6

// NewBoneFrame はボーンの始点・終点から局所座標系を計算する。
// 局所+Z軸をボーン軸へ合わせる最短回転を姿勢とする。
// 軸長がイプシロン未満の退化ボーンは値域エラーとする。
func NewBoneFrame(bone *model.Bone) (*model.BoneFrame, error) {
	if bone == nil {
		return nil, merrors.NewInternalInconsistencyError("ボーンが指定されていません")
	}
	if err := mmath.ValidateFiniteVec3(bone.Head, bone.Name+" の始点"); err != nil {
		return nil, err
	}
	if err := mmath.ValidateFiniteVec3(bone.Tail, bone.Name+" の終点"); err != nil {
		return nil, err
	}

	axis := bone.Tail.Subed(bone.Head)
	length := axis.Length()
	if length < boneAxisEpsilon {
		return nil, merrors.NewRangeError("ボーン軸が退化しています(長さ %v): %s", length, bone.Name)
	}
	unitAxis := axis.Normalized()

	return &model.BoneFrame{
		Name:        bone.Name,
		Head:        bone.Head,
		Tail:        bone.Tail,
		Axis:        unitAxis,
		Length:      length,
		Orientation: mmath.NewQuaternionRotate(mmath.UNIT_Z_VEC3, unitAxis).Normalized(),
	}, nil
}

// BuildBoneFrames は骨格全ボーンの局所座標系を名前引きの表として構築する。
// 同名ボーンの重複は名称衝突エラーとする。
func BuildBoneFrames(skeleton *model.Skeleton) (map[string]*model.BoneFrame, error) {
	if skeleton == nil {
		return nil, merrors.NewInternalInconsistencyError("骨格が指定されていません")
	}

	frames := map[string]*model.BoneFrame{}
	for _, bone := range skeleton.Bones {
		if bone == nil {
			continue
		}
		if _, exists := frames[bone.Name]; exists {
			return nil, merrors.NewNameConflictError([]string{bone.Name})
		}
		frame, err := NewBoneFrame(bone)
		if err != nil {
			return nil, err
		}
		frames[bone.Name] = frame
	}
	return frames, nil
}

// ResolvePlacement はボーン相対のオフセット・回転・スケールをワールド配置へ解決する。
// オフセットはボーン長倍してから姿勢で回し、始点へ加算する。
// 回転はボーン姿勢→上書き回転の順で合成する。
func ResolvePlacement(
	frame *model.BoneFrame,
	offset mmath.Vec3,
	rotationDegrees *mmath.Vec3,
	scale mmath.Vec3,
) (moutput.WorldTransform, error) {
	if frame == nil {
		return moutput.WorldTransform{}, merrors.NewInternalInconsistencyError("ボーン座標系が指定されていません")
	}
	if err := mmath.ValidateFiniteVec3(offset, frame.Name+" のオフセット"); err != nil {
		return moutput.WorldTransform{}, err
	}
	if err := mmath.ValidateFiniteVec3(scale, frame.Name+" のスケール"); err != nil {
		return moutput.WorldTransform{}, err
	}

	scaledOffset := offset.MuledScalar(frame.Length)
	translation := frame.Head.Added(frame.Orientation.MulVec3(scaledOffset))

	rotation := frame.Orientation
	if rotationDegrees != nil {
		if err := mmath.ValidateFiniteVec3(*rotationDegrees, frame.Name+" の回転"); err != nil {
			return moutput.WorldTransform{}, err
		}
		override := mmath.NewQuaternionFromDegrees(rotationDegrees.X, rotationDegrees.Y, rotationDegrees.Z)
		rotation = frame.Orientation.Muled(override)
	}

	return moutput.WorldTransform{
		Translation: translation,
		Rotation:    rotation.Normalized(),
		Scale:       scale,
	}, nil
}

// ResolveBoolShapePlacement はブーリアン形状の配置を解決する。
// 基準ボーン指定時はボーン相対、未指定時は絶対座標としてそのまま採用する。
// 基準ボーンが座標系表に無い場合は参照先不在エラーとする。
func ResolveBoolShapePlacement(
	shape *model.BoolShapeSpec,
	frames map[string]*model.BoneFrame,
) (moutput.WorldTransform, ResolvedLength, error) {
	if shape == nil {
		return moutput.WorldTransform{}, ResolvedLength{}, merrors.NewInternalInconsistencyError("ブーリアン形状が指定されていません")
	}

	if shape.AnchorBone == "" {
		if err := mmath.ValidateFiniteVec3(shape.Position, "ブーリアン形状の位置"); err != nil {
			return moutput.WorldTransform{}, ResolvedLength{}, err
		}
		dimensions, err := resolveLengthLeaf(shape.Dimensions, 1.0, "ブーリアン形状の寸法")
		if err != nil {
			return moutput.WorldTransform{}, ResolvedLength{}, err
		}
		transform := moutput.WorldTransform{
			Translation: shape.Position,
			Rotation:    mmath.NewQuaternion(),
			Scale:       mmath.ONE_VEC3,
		}
		return transform, dimensions, nil
	}

	frame, exists := frames[shape.AnchorBone]
	if !exists {
		return moutput.WorldTransform{}, ResolvedLength{}, merrors.NewMissingTargetError("ブーリアン形状", shape.AnchorBone)
	}
	transform, err := ResolvePlacement(frame, shape.Position, nil, mmath.ONE_VEC3)
	if err != nil {
		return moutput.WorldTransform{}, ResolvedLength{}, err
	}
	dimensions, err := ResolveBoneRelativeLength(shape.Dimensions, frame.Length, "ブーリアン形状の寸法")
	if err != nil {
		return moutput.WorldTransform{}, ResolvedLength{}, err
	}
	return transform, dimensions, nil
}
