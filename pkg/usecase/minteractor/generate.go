// 指示: miu200521358
package minteractor

import (
	"fmt"
	"sort"

	"github.com/miu200521358/mu_bone_mesh/pkg/domain/mmath"
	"github.com/miu200521358/mu_bone_mesh/pkg/domain/model"
	"github.com/miu200521358/mu_bone_mesh/pkg/domain/model/merrors"
	"github.com/miu200521358/mu_bone_mesh/pkg/shared/base/logging"
	"github.com/miu200521358/mu_bone_mesh/pkg/usecase/port/moutput"
)

const defaultBindWeight = 1.0

// GenerateModel は骨格と生成仕様からスキン付きメッシュを組み立てる。
// 骨格に存在しないボーンの仕様は警告として記録しスキップする。
// 数値・形状・参照の検証失敗はアセット全体の失敗として即座に返す。
func (uc *BoneMeshUsecase) GenerateModel(request GenerateRequest) (*GenerateResult, error) {
	if request.Spec == nil {
		return nil, fmt.Errorf("生成仕様が未設定です")
	}
	if request.Skeleton == nil {
		return nil, fmt.Errorf("骨格が未設定です")
	}
	kernel := request.Kernel
	if kernel == nil {
		kernel = uc.meshKernel
	}
	if kernel == nil {
		return nil, fmt.Errorf("メッシュカーネルが設定されていません")
	}
	reportProgress(request.ProgressReporter, GenerateProgressEvent{
		Type:      GenerateProgressEventTypeSpecValidated,
		BoneCount: len(request.Spec.BoneMeshes),
	})
	logging.DefaultLogger().Info("メッシュ生成開始: %s (ボーン仕様 %d件)", request.Spec.Name, len(request.Spec.BoneMeshes))

	frames, err := BuildBoneFrames(request.Skeleton)
	if err != nil {
		return nil, err
	}
	reportProgress(request.ProgressReporter, GenerateProgressEvent{
		Type:      GenerateProgressEventTypeFramesBuilt,
		BoneCount: len(frames),
	})

	boneNames := make([]string, 0, len(request.Spec.BoneMeshes))
	for name := range request.Spec.BoneMeshes {
		boneNames = append(boneNames, name)
	}
	sort.Strings(boneNames)

	warnings := []model.GenerateWarning{}
	boneReports := []model.BoneReport{}
	parts := []moutput.MeshHandle{}

	for _, boneName := range boneNames {
		meshSpec := request.Spec.BoneMeshes[boneName]
		if meshSpec == nil {
			return nil, merrors.NewShapeError("ボーンメッシュ仕様が空です: %s", boneName)
		}

		frame, exists := frames[boneName]
		if !exists {
			logging.DefaultLogger().Warn("骨格にボーンが存在しないためスキップします: %s", boneName)
			warnings = append(warnings, model.GenerateWarning{
				Bone:   boneName,
				Reason: model.GenerateWarningBoneMissing,
			})
			boneReports = append(boneReports, model.BoneReport{
				Bone:   boneName,
				Status: model.BONE_REPORT_STATUS_SKIPPED,
				Reason: model.GenerateWarningBoneMissing,
			})
			reportProgress(request.ProgressReporter, GenerateProgressEvent{
				Type:     GenerateProgressEventTypeBoneSkipped,
				BoneName: boneName,
			})
			continue
		}

		handle, boneWarnings, err := uc.buildBoneMesh(kernel, frame, meshSpec, request.Spec.BoolShapes, frames)
		if err != nil {
			return nil, err
		}
		warnings = append(warnings, boneWarnings...)
		parts = append(parts, handle)
		boneReports = append(boneReports, model.BoneReport{
			Bone:            boneName,
			Status:          model.BONE_REPORT_STATUS_BUILT,
			AttachmentCount: len(meshSpec.Attachments),
			ModifierCount:   len(meshSpec.Modifiers),
		})
		logging.DefaultLogger().Debug("ボーンメッシュ生成完了: %s", boneName)
		reportProgress(request.ProgressReporter, GenerateProgressEvent{
			Type:     GenerateProgressEventTypeBoneBuilt,
			BoneName: boneName,
		})
	}

	if len(parts) == 0 {
		return nil, fmt.Errorf("生成できたボーンメッシュがありません: %s", request.Spec.Name)
	}

	merged := parts[0]
	if len(parts) > 1 {
		joined, err := kernel.Join(parts)
		if err != nil {
			return nil, err
		}
		merged = joined
	}
	reportProgress(request.ProgressReporter, GenerateProgressEvent{
		Type:      GenerateProgressEventTypeMeshJoined,
		BoneCount: len(parts),
	})

	groupSteps, err := uc.reconcileVertexGroups(kernel, merged, request.Spec.GroupMap)
	if err != nil {
		return nil, err
	}
	reportProgress(request.ProgressReporter, GenerateProgressEvent{
		Type:      GenerateProgressEventTypeGroupsReconciled,
		StepCount: len(groupSteps),
	})

	builtCount := 0
	skippedCount := 0
	for _, boneReport := range boneReports {
		if boneReport.Status == model.BONE_REPORT_STATUS_BUILT {
			builtCount++
			continue
		}
		skippedCount++
	}
	logging.DefaultLogger().Info("メッシュ生成完了: %s (生成 %d件 / スキップ %d件)", request.Spec.Name, builtCount, skippedCount)

	return &GenerateResult{
		Mesh: merged,
		Report: &model.GenerateReport{
			SpecName:     request.Spec.Name,
			BoneCount:    len(request.Spec.BoneMeshes),
			BuiltCount:   builtCount,
			SkippedCount: skippedCount,
			Bones:        boneReports,
			GroupSteps:   groupSteps,
			Warnings:     warnings,
		},
		Warnings: warnings,
	}, nil
}

// buildBoneMesh は1ボーン分の本体・付属・モディファイアを組み立てる。
func (uc *BoneMeshUsecase) buildBoneMesh(
	kernel moutput.IMeshKernel,
	frame *model.BoneFrame,
	meshSpec *model.BoneMeshSpec,
	boolShapes []*model.BoolShapeSpec,
	frames map[string]*model.BoneFrame,
) (moutput.MeshHandle, []model.GenerateWarning, error) {
	radius, err := ResolveBoneRelativeLength(meshSpec.Radius, frame.Length, frame.Name+" の半径")
	if err != nil {
		return 0, nil, err
	}

	transform, err := ResolvePlacement(
		frame,
		meshSpec.Translate,
		meshSpec.RotateDegrees,
		mmath.NewVec3(radius.X, radius.Y, frame.Length),
	)
	if err != nil {
		return 0, nil, err
	}

	body, err := kernel.CreatePrimitive("cylinder", meshSpec.Profile.Segments, transform)
	if err != nil {
		return 0, nil, err
	}

	if !meshSpec.CapStart || !meshSpec.CapEnd {
		body, err = kernel.RemoveCaps(body, meshSpec.CapStart, meshSpec.CapEnd)
		if err != nil {
			return 0, nil, err
		}
	}

	field, err := BuildDeformField(meshSpec.Taper, meshSpec.Bulges, meshSpec.TwistDegrees)
	if err != nil {
		return 0, nil, err
	}
	body, err = kernel.DeformVertices(body, field)
	if err != nil {
		return 0, nil, err
	}

	parts := []moutput.MeshHandle{body}
	for index, attachment := range meshSpec.Attachments {
		part, err := uc.buildAttachment(kernel, frame, attachment, index)
		if err != nil {
			return 0, nil, err
		}
		parts = append(parts, part)
	}
	if len(parts) > 1 {
		body, err = kernel.Join(parts)
		if err != nil {
			return 0, nil, err
		}
	}

	warnings := []model.GenerateWarning{}
	for index, modifier := range meshSpec.Modifiers {
		modified, modifierWarnings, err := uc.applyModifier(kernel, frame, body, modifier, index, boolShapes, frames)
		if err != nil {
			return 0, nil, err
		}
		warnings = append(warnings, modifierWarnings...)
		body = modified
	}

	if err := kernel.BindToSkeleton(body, frame.Name, defaultBindWeight); err != nil {
		return 0, nil, err
	}
	return body, warnings, nil
}

// buildAttachment は付属ジオメトリ1件を組み立てる。
func (uc *BoneMeshUsecase) buildAttachment(
	kernel moutput.IMeshKernel,
	frame *model.BoneFrame,
	attachment model.AttachmentSpec,
	index int,
) (moutput.MeshHandle, error) {
	label := fmt.Sprintf("%s の付属[%d]", frame.Name, index)

	switch attachment.Kind {
	case model.ATTACHMENT_KIND_PRIMITIVE:
		if attachment.Primitive == nil {
			return 0, merrors.NewShapeError("%s のプリミティブ内容が空です", label)
		}
		dimensions, err := ResolveBoneRelativeLength(attachment.Primitive.Dimensions, frame.Length, label+" の寸法")
		if err != nil {
			return 0, err
		}
		transform, err := ResolvePlacement(
			frame,
			attachment.Primitive.Offset,
			attachment.Primitive.RotationDegrees,
			mmath.NewVec3(dimensions.X, dimensions.Y, dimensions.Y),
		)
		if err != nil {
			return 0, err
		}
		return kernel.CreatePrimitive(attachment.Primitive.PrimitiveKind, 0, transform)

	case model.ATTACHMENT_KIND_EXTRUDE:
		if attachment.Extrude == nil {
			return 0, merrors.NewShapeError("%s の押し出し内容が空です", label)
		}
		return uc.buildExtrudeAttachment(kernel, frame, attachment.Extrude, label)

	case model.ATTACHMENT_KIND_ASSET:
		if attachment.Asset == nil {
			return 0, merrors.NewShapeError("%s のアセット内容が空です", label)
		}
		if attachment.Asset.Path == "" {
			return 0, merrors.NewShapeError("%s のアセットパスが未指定です", label)
		}
		if err := mmath.ValidatePositiveFinite(attachment.Asset.Scale, label+" のスケール"); err != nil {
			return 0, err
		}
		scale := attachment.Asset.Scale
		transform, err := ResolvePlacement(
			frame,
			attachment.Asset.Offset,
			attachment.Asset.RotationDegrees,
			mmath.NewVec3(scale, scale, scale),
		)
		if err != nil {
			return 0, err
		}
		return kernel.ImportAsset(attachment.Asset.Path, transform)

	default:
		return 0, merrors.NewShapeError("%s の種別を解釈できません: %s", label, attachment.Kind)
	}
}

// buildExtrudeAttachment は押し出し付属をボーン相対の始点→終点の擬似ボーンとして組み立てる。
func (uc *BoneMeshUsecase) buildExtrudeAttachment(
	kernel moutput.IMeshKernel,
	frame *model.BoneFrame,
	extrude *model.ExtrudeAttachment,
	label string,
) (moutput.MeshHandle, error) {
	startWorld := frame.Head.Added(frame.Orientation.MulVec3(extrude.Start.MuledScalar(frame.Length)))
	endWorld := frame.Head.Added(frame.Orientation.MulVec3(extrude.End.MuledScalar(frame.Length)))

	segmentFrame, err := NewBoneFrame(&model.Bone{
		Name: frame.Name + ":extrude",
		Head: startWorld,
		Tail: endWorld,
	})
	if err != nil {
		return 0, err
	}

	radius, err := ResolveBoneRelativeLength(extrude.Radius, frame.Length, label+" の半径")
	if err != nil {
		return 0, err
	}
	transform, err := ResolvePlacement(
		segmentFrame,
		mmath.ZERO_VEC3,
		nil,
		mmath.NewVec3(radius.X, radius.Y, segmentFrame.Length),
	)
	if err != nil {
		return 0, err
	}

	part, err := kernel.CreatePrimitive("cylinder", extrude.Profile.Segments, transform)
	if err != nil {
		return 0, err
	}
	field, err := BuildDeformField(extrude.Taper, nil, 0)
	if err != nil {
		return 0, err
	}
	return kernel.DeformVertices(part, field)
}

// applyModifier はモディファイア1件を適用する。
// ブーリアン形状の基準ボーン不在は警告として記録し、そのモディファイアをスキップする。
func (uc *BoneMeshUsecase) applyModifier(
	kernel moutput.IMeshKernel,
	frame *model.BoneFrame,
	target moutput.MeshHandle,
	modifier model.ModifierSpec,
	index int,
	boolShapes []*model.BoolShapeSpec,
	frames map[string]*model.BoneFrame,
) (moutput.MeshHandle, []model.GenerateWarning, error) {
	label := fmt.Sprintf("%s のモディファイア[%d]", frame.Name, index)

	switch modifier.Kind {
	case model.MODIFIER_KIND_BOOLEAN:
		if modifier.Boolean == nil {
			return 0, nil, merrors.NewShapeError("%s のブーリアン内容が空です", label)
		}
		shapeIndex := modifier.Boolean.ShapeIndex
		if shapeIndex < 0 || shapeIndex >= len(boolShapes) {
			return 0, nil, merrors.NewShapeError("%s のブーリアン形状添字が範囲外です: %d", label, shapeIndex)
		}
		shape := boolShapes[shapeIndex]
		transform, dimensions, err := ResolveBoolShapePlacement(shape, frames)
		if err != nil {
			if merrors.IsMissingTargetError(err) {
				logging.DefaultLogger().Warn("ブーリアン形状の基準ボーンが存在しないためスキップします: %s", shape.AnchorBone)
				warning := model.GenerateWarning{
					Bone:   shape.AnchorBone,
					Reason: model.GenerateWarningAnchorBoneMissing,
				}
				return target, []model.GenerateWarning{warning}, nil
			}
			return 0, nil, err
		}
		transform.Scale = mmath.NewVec3(dimensions.X, dimensions.Y, dimensions.Y)
		operand, err := kernel.CreatePrimitive(shape.PrimitiveKind, 0, transform)
		if err != nil {
			return 0, nil, err
		}
		modified, err := kernel.ApplyBoolean(target, operand, shape.Operation)
		if err != nil {
			return 0, nil, err
		}
		return modified, nil, nil

	case model.MODIFIER_KIND_BEVEL:
		if modifier.Bevel == nil {
			return 0, nil, merrors.NewShapeError("%s のベベル内容が空です", label)
		}
		if err := mmath.ValidatePositiveFinite(modifier.Bevel.Width, label+" の幅"); err != nil {
			return 0, nil, err
		}
		if modifier.Bevel.Segments < 1 {
			return 0, nil, merrors.NewRangeError("%s の分割数は1以上である必要があります: %d", label, modifier.Bevel.Segments)
		}
		modified, err := kernel.ApplyBevel(target, modifier.Bevel.Width, modifier.Bevel.Segments)
		if err != nil {
			return 0, nil, err
		}
		return modified, nil, nil

	case model.MODIFIER_KIND_SUBDIVIDE:
		if modifier.Subdivide == nil {
			return 0, nil, merrors.NewShapeError("%s の分割内容が空です", label)
		}
		if modifier.Subdivide.Cuts < 1 {
			return 0, nil, merrors.NewRangeError("%s の分割数は1以上である必要があります: %d", label, modifier.Subdivide.Cuts)
		}
		modified, err := kernel.ApplySubdivide(target, modifier.Subdivide.Cuts)
		if err != nil {
			return 0, nil, err
		}
		return modified, nil, nil

	default:
		return 0, nil, merrors.NewShapeError("%s の種別を解釈できません: %s", label, modifier.Kind)
	}
}

// reconcileVertexGroups は頂点グループ対応表を改名・マージ手順へ分解して適用する。
// 多対一の対応は先頭(昇順)の変換元のみ改名とし、残りをマージとして後段で適用する。
func (uc *BoneMeshUsecase) reconcileVertexGroups(
	kernel moutput.IMeshKernel,
	mesh moutput.MeshHandle,
	groupMap map[string]string,
) ([]model.GroupStepReport, error) {
	if len(groupMap) == 0 {
		return []model.GroupStepReport{}, nil
	}

	names, err := kernel.VertexGroupNames(mesh)
	if err != nil {
		return nil, err
	}
	nameSet := map[string]struct{}{}
	for _, name := range names {
		nameSet[name] = struct{}{}
	}

	renameMap, mergePairs, err := splitMergePairs(groupMap, nameSet)
	if err != nil {
		return nil, err
	}

	plan, err := PlanGroupRenames(renameMap, names)
	if err != nil {
		return nil, err
	}

	steps := []model.GroupStepReport{}
	for _, step := range plan {
		if err := kernel.RenameVertexGroup(mesh, step.Source, step.Destination); err != nil {
			return nil, err
		}
		steps = append(steps, model.GroupStepReport{
			Operation:   "rename",
			Source:      step.Source,
			Destination: step.Destination,
		})
	}
	for _, pair := range mergePairs {
		if err := kernel.MergeVertexGroup(mesh, pair.Source, pair.Destination); err != nil {
			return nil, err
		}
		steps = append(steps, model.GroupStepReport{
			Operation:   "merge",
			Source:      pair.Source,
			Destination: pair.Destination,
		})
	}
	return steps, nil
}

// splitMergePairs は多対一の対応を改名1件+マージ残件へ分解する。
// 同一変換先を持つ変換元のうち昇順先頭だけが改名を担い、残りはマージへ回す。
func splitMergePairs(
	groupMap map[string]string,
	existing map[string]struct{},
) (map[string]string, []GroupRenameStep, error) {
	sourcesByDestination := map[string][]string{}
	for src, dst := range groupMap {
		if src == dst {
			continue
		}
		sourcesByDestination[dst] = append(sourcesByDestination[dst], src)
	}

	renameMap := map[string]string{}
	mergePairs := []GroupRenameStep{}
	destinations := make([]string, 0, len(sourcesByDestination))
	for dst := range sourcesByDestination {
		destinations = append(destinations, dst)
	}
	sort.Strings(destinations)

	for _, dst := range destinations {
		sources := sourcesByDestination[dst]
		sort.Strings(sources)
		renameMap[sources[0]] = dst
		for _, src := range sources[1:] {
			if _, exists := existing[src]; !exists {
				return nil, nil, merrors.NewMissingTargetError("頂点グループ", src)
			}
			mergePairs = append(mergePairs, GroupRenameStep{Source: src, Destination: dst})
		}
	}
	return renameMap, mergePairs, nil
}

// reportProgress は進捗通知先が設定されている場合のみイベントを通知する。
func reportProgress(reporter IGenerateProgressReporter, event GenerateProgressEvent) {
	if reporter == nil {
		return
	}
	reporter.ReportGenerateProgress(event)
}
