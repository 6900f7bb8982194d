// 指示: miu200521358
package minteractor

import (
	"sort"

	"github.com/miu200521358/mu_bone_mesh/pkg/domain/mmath"
	"github.com/miu200521358/mu_bone_mesh/pkg/domain/model"
	"github.com/miu200521358/mu_bone_mesh/pkg/domain/model/merrors"
)

// RawBuildSpec は読み込み直後の未解決生成仕様を表す。
// 数値・断面・付属はまだ生値のまま保持する。
type RawBuildSpec struct {
	Name       string
	BoneMeshes map[string]map[string]any
	BoolShapes []map[string]any
	GroupMap   map[string]string
}

// ResolveSpec は生の生成仕様を別名解決した上で型付き仕様へ変換する。
// 検証失敗は最初の違反で即座に返す。
func ResolveSpec(raw *RawBuildSpec) (*model.MeshBuildSpec, error) {
	if raw == nil {
		return nil, merrors.NewShapeError("生成仕様が空です")
	}

	resolved, err := ResolveDefinitionAliases(raw.BoneMeshes)
	if err != nil {
		return nil, err
	}

	boneMeshes := map[string]*model.BoneMeshSpec{}
	boneNames := make([]string, 0, len(resolved))
	for name := range resolved {
		boneNames = append(boneNames, name)
	}
	sort.Strings(boneNames)
	for _, name := range boneNames {
		meshSpec, err := decodeBoneMeshSpec(resolved[name], name)
		if err != nil {
			return nil, err
		}
		boneMeshes[name] = meshSpec
	}

	boolShapes := make([]*model.BoolShapeSpec, 0, len(raw.BoolShapes))
	for index, entry := range raw.BoolShapes {
		shape, err := decodeBoolShapeSpec(entry, index)
		if err != nil {
			return nil, err
		}
		boolShapes = append(boolShapes, shape)
	}

	groupMap := map[string]string{}
	for src, dst := range raw.GroupMap {
		groupMap[src] = dst
	}

	return &model.MeshBuildSpec{
		Name:       raw.Name,
		BoneMeshes: boneMeshes,
		BoolShapes: boolShapes,
		GroupMap:   groupMap,
	}, nil
}

// decodeBoneMeshSpec は1ボーン分の生レコードを型付き仕様へ変換する。
func decodeBoneMeshSpec(entry map[string]any, boneName string) (*model.BoneMeshSpec, error) {
	profile, err := ParseProfile(entry["profile"])
	if err != nil {
		return nil, err
	}

	radius, exists := entry["radius"]
	if !exists {
		return nil, merrors.NewShapeError("%s の半径が指定されていません", boneName)
	}

	capStart, err := boolFromEntry(entry, "cap_start", true, boneName)
	if err != nil {
		return nil, err
	}
	capEnd, err := boolFromEntry(entry, "cap_end", true, boneName)
	if err != nil {
		return nil, err
	}
	taper, err := numberFromEntry(entry, "taper", 1.0, boneName)
	if err != nil {
		return nil, err
	}
	twist, err := numberFromEntry(entry, "twist", 0.0, boneName)
	if err != nil {
		return nil, err
	}

	bulges, err := decodeBulges(entry["bulges"], boneName)
	if err != nil {
		return nil, err
	}

	translate := mmath.ZERO_VEC3
	if rawTranslate, exists := entry["translate"]; exists {
		translate, err = vec3FromValue(rawTranslate, boneName+" のtranslate")
		if err != nil {
			return nil, err
		}
	}
	rotate, err := optionalVec3FromEntry(entry, "rotate", boneName)
	if err != nil {
		return nil, err
	}

	attachments, err := decodeAttachments(entry["attachments"], boneName)
	if err != nil {
		return nil, err
	}
	modifiers, err := decodeModifiers(entry["modifiers"], boneName)
	if err != nil {
		return nil, err
	}

	return &model.BoneMeshSpec{
		Profile:       profile,
		Radius:        radius,
		CapStart:      capStart,
		CapEnd:        capEnd,
		Taper:         taper,
		Bulges:        bulges,
		TwistDegrees:  twist,
		Attachments:   attachments,
		Modifiers:     modifiers,
		Translate:     translate,
		RotateDegrees: rotate,
	}, nil
}

// decodeBulges は膨らみ制御点列を変換する。
func decodeBulges(value any, boneName string) ([]model.BulgePoint, error) {
	if value == nil {
		return nil, nil
	}
	entries, isList := value.([]any)
	if !isList {
		return nil, merrors.NewShapeError("%s のbulgesはリストである必要があります: %T", boneName, value)
	}

	bulges := make([]model.BulgePoint, 0, len(entries))
	for index, raw := range entries {
		record, isMap := raw.(map[string]any)
		if !isMap {
			return nil, merrors.NewShapeError("%s のbulges[%d]は position/scale のマップである必要があります: %T", boneName, index, raw)
		}
		position, err := mmath.NumberFromValue(record["position"], boneName+" のbulge位置")
		if err != nil {
			return nil, err
		}
		scale, err := mmath.NumberFromValue(record["scale"], boneName+" のbulgeスケール")
		if err != nil {
			return nil, err
		}
		bulges = append(bulges, model.BulgePoint{Position: position, Scale: scale})
	}
	return bulges, nil
}

// decodeAttachments は付属ジオメトリ仕様列を変換する。
// 種別タグはこの境界で一度だけ解析し、以降は再検査しない。
func decodeAttachments(value any, boneName string) ([]model.AttachmentSpec, error) {
	if value == nil {
		return nil, nil
	}
	entries, isList := value.([]any)
	if !isList {
		return nil, merrors.NewShapeError("%s のattachmentsはリストである必要があります: %T", boneName, value)
	}

	attachments := make([]model.AttachmentSpec, 0, len(entries))
	for index, raw := range entries {
		record, isMap := raw.(map[string]any)
		if !isMap {
			return nil, merrors.NewShapeError("%s のattachments[%d]はマップである必要があります: %T", boneName, index, raw)
		}
		label := boneName + " の付属"
		kind, err := stringFromEntry(record, "type", label)
		if err != nil {
			return nil, err
		}

		switch model.AttachmentKind(kind) {
		case model.ATTACHMENT_KIND_PRIMITIVE:
			primitiveKind, err := stringFromEntry(record, "kind", label)
			if err != nil {
				return nil, err
			}
			dimensions, exists := record["dimensions"]
			if !exists {
				return nil, merrors.NewShapeError("%sの寸法が指定されていません", label)
			}
			offset := mmath.ZERO_VEC3
			if rawOffset, exists := record["offset"]; exists {
				offset, err = vec3FromValue(rawOffset, label+"のオフセット")
				if err != nil {
					return nil, err
				}
			}
			rotate, err := optionalVec3FromEntry(record, "rotate", label)
			if err != nil {
				return nil, err
			}
			attachments = append(attachments, model.AttachmentSpec{
				Kind: model.ATTACHMENT_KIND_PRIMITIVE,
				Primitive: &model.PrimitiveAttachment{
					PrimitiveKind:   primitiveKind,
					Dimensions:      dimensions,
					Offset:          offset,
					RotationDegrees: rotate,
				},
			})

		case model.ATTACHMENT_KIND_EXTRUDE:
			start, err := vec3FromValue(record["start"], label+"の始点")
			if err != nil {
				return nil, err
			}
			end, err := vec3FromValue(record["end"], label+"の終点")
			if err != nil {
				return nil, err
			}
			profile, err := ParseProfile(record["profile"])
			if err != nil {
				return nil, err
			}
			radius, exists := record["radius"]
			if !exists {
				return nil, merrors.NewShapeError("%sの半径が指定されていません", label)
			}
			taper, err := numberFromEntry(record, "taper", 1.0, label)
			if err != nil {
				return nil, err
			}
			attachments = append(attachments, model.AttachmentSpec{
				Kind: model.ATTACHMENT_KIND_EXTRUDE,
				Extrude: &model.ExtrudeAttachment{
					Start:   start,
					End:     end,
					Profile: profile,
					Radius:  radius,
					Taper:   taper,
				},
			})

		case model.ATTACHMENT_KIND_ASSET:
			path, err := stringFromEntry(record, "path", label)
			if err != nil {
				return nil, err
			}
			offset := mmath.ZERO_VEC3
			if rawOffset, exists := record["offset"]; exists {
				offset, err = vec3FromValue(rawOffset, label+"のオフセット")
				if err != nil {
					return nil, err
				}
			}
			scale, err := numberFromEntry(record, "scale", 1.0, label)
			if err != nil {
				return nil, err
			}
			rotate, err := optionalVec3FromEntry(record, "rotate", label)
			if err != nil {
				return nil, err
			}
			attachments = append(attachments, model.AttachmentSpec{
				Kind: model.ATTACHMENT_KIND_ASSET,
				Asset: &model.AssetAttachment{
					Path:            path,
					Offset:          offset,
					Scale:           scale,
					RotationDegrees: rotate,
				},
			})

		default:
			return nil, merrors.NewShapeError("%s[%d]の種別を解釈できません: %s", label, index, kind)
		}
	}
	return attachments, nil
}

// decodeModifiers はモディファイア仕様列を変換する。
func decodeModifiers(value any, boneName string) ([]model.ModifierSpec, error) {
	if value == nil {
		return nil, nil
	}
	entries, isList := value.([]any)
	if !isList {
		return nil, merrors.NewShapeError("%s のmodifiersはリストである必要があります: %T", boneName, value)
	}

	modifiers := make([]model.ModifierSpec, 0, len(entries))
	for index, raw := range entries {
		record, isMap := raw.(map[string]any)
		if !isMap {
			return nil, merrors.NewShapeError("%s のmodifiers[%d]はマップである必要があります: %T", boneName, index, raw)
		}
		label := boneName + " のモディファイア"
		kind, err := stringFromEntry(record, "type", label)
		if err != nil {
			return nil, err
		}

		switch model.ModifierKind(kind) {
		case model.MODIFIER_KIND_BOOLEAN:
			shapeIndex, err := intFromEntry(record, "shape", label)
			if err != nil {
				return nil, err
			}
			modifiers = append(modifiers, model.ModifierSpec{
				Kind:    model.MODIFIER_KIND_BOOLEAN,
				Boolean: &model.BooleanModifier{ShapeIndex: shapeIndex},
			})

		case model.MODIFIER_KIND_BEVEL:
			width, err := numberFromEntry(record, "width", 0.0, label)
			if err != nil {
				return nil, err
			}
			segments, err := intFromEntry(record, "segments", label)
			if err != nil {
				return nil, err
			}
			modifiers = append(modifiers, model.ModifierSpec{
				Kind:  model.MODIFIER_KIND_BEVEL,
				Bevel: &model.BevelModifier{Width: width, Segments: segments},
			})

		case model.MODIFIER_KIND_SUBDIVIDE:
			cuts, err := intFromEntry(record, "cuts", label)
			if err != nil {
				return nil, err
			}
			modifiers = append(modifiers, model.ModifierSpec{
				Kind:      model.MODIFIER_KIND_SUBDIVIDE,
				Subdivide: &model.SubdivideModifier{Cuts: cuts},
			})

		default:
			return nil, merrors.NewShapeError("%s[%d]の種別を解釈できません: %s", label, index, kind)
		}
	}
	return modifiers, nil
}

// decodeBoolShapeSpec はブーリアン形状の生レコードを変換する。
func decodeBoolShapeSpec(entry map[string]any, index int) (*model.BoolShapeSpec, error) {
	label := "ブーリアン形状"
	if entry == nil {
		return nil, merrors.NewShapeError("%s[%d]が空です", label, index)
	}

	kind, err := stringFromEntry(entry, "kind", label)
	if err != nil {
		return nil, err
	}
	position, err := vec3FromValue(entry["position"], label+"の位置")
	if err != nil {
		return nil, err
	}
	dimensions, exists := entry["dimensions"]
	if !exists {
		return nil, merrors.NewShapeError("%s[%d]の寸法が指定されていません", label, index)
	}

	anchorBone := ""
	if rawAnchor, exists := entry["anchor_bone"]; exists {
		anchorBone, err = stringFromValue(rawAnchor, label+"の基準ボーン")
		if err != nil {
			return nil, err
		}
	}

	opText, err := stringFromEntry(entry, "op", label)
	if err != nil {
		return nil, err
	}
	op := model.BooleanOp(opText)
	switch op {
	case model.BOOLEAN_OP_UNION, model.BOOLEAN_OP_DIFFERENCE, model.BOOLEAN_OP_INTERSECT:
	default:
		return nil, merrors.NewShapeError("%s[%d]の演算種別を解釈できません: %s", label, index, opText)
	}

	return &model.BoolShapeSpec{
		PrimitiveKind: kind,
		Position:      position,
		Dimensions:    dimensions,
		AnchorBone:    anchorBone,
		Operation:     op,
	}, nil
}

// vec3FromValue は3要素リストをベクトルへ変換する。
func vec3FromValue(value any, label string) (mmath.Vec3, error) {
	components, isList := value.([]any)
	if !isList {
		return mmath.Vec3{}, merrors.NewShapeError("%sは3要素リストである必要があります: %T", label, value)
	}
	if len(components) != 3 {
		return mmath.Vec3{}, merrors.NewShapeError("%sは3要素リストである必要があります: %d要素", label, len(components))
	}
	x, err := mmath.NumberFromValue(components[0], label)
	if err != nil {
		return mmath.Vec3{}, err
	}
	y, err := mmath.NumberFromValue(components[1], label)
	if err != nil {
		return mmath.Vec3{}, err
	}
	z, err := mmath.NumberFromValue(components[2], label)
	if err != nil {
		return mmath.Vec3{}, err
	}
	return mmath.NewVec3(x, y, z), nil
}

// optionalVec3FromEntry は任意ベクトル項目を変換する。未指定はnilを返す。
func optionalVec3FromEntry(entry map[string]any, key string, owner string) (*mmath.Vec3, error) {
	raw, exists := entry[key]
	if !exists || raw == nil {
		return nil, nil
	}
	vec, err := vec3FromValue(raw, owner+" の"+key)
	if err != nil {
		return nil, err
	}
	return &vec, nil
}

// numberFromEntry は数値項目を既定値付きで変換する。
func numberFromEntry(entry map[string]any, key string, fallback float64, owner string) (float64, error) {
	raw, exists := entry[key]
	if !exists || raw == nil {
		return fallback, nil
	}
	return mmath.NumberFromValue(raw, owner+" の"+key)
}

// intFromEntry は整数項目を変換する。
func intFromEntry(entry map[string]any, key string, owner string) (int, error) {
	raw, exists := entry[key]
	if !exists {
		return 0, merrors.NewShapeError("%s の%sが指定されていません", owner, key)
	}
	number, err := mmath.NumberFromValue(raw, owner+" の"+key)
	if err != nil {
		return 0, err
	}
	truncated := int(number)
	if float64(truncated) != number {
		return 0, merrors.NewShapeError("%s の%sは整数である必要があります: %v", owner, key, number)
	}
	return truncated, nil
}

// boolFromEntry は真偽値項目を既定値付きで変換する。
func boolFromEntry(entry map[string]any, key string, fallback bool, owner string) (bool, error) {
	raw, exists := entry[key]
	if !exists || raw == nil {
		return fallback, nil
	}
	flag, isBool := raw.(bool)
	if !isBool {
		return false, merrors.NewShapeError("%s の%sは真偽値である必要があります: %T", owner, key, raw)
	}
	return flag, nil
}

// stringFromEntry は文字列項目を変換する。
func stringFromEntry(entry map[string]any, key string, owner string) (string, error) {
	raw, exists := entry[key]
	if !exists {
		return "", merrors.NewShapeError("%s の%sが指定されていません", owner, key)
	}
	return stringFromValue(raw, owner+" の"+key)
}

// stringFromValue は文字列値を検証する。
func stringFromValue(value any, label string) (string, error) {
	text, isString := value.(string)
	if !isString {
		return "", merrors.NewShapeError("%sは文字列である必要があります: %T", label, value)
	}
	return text, nil
}
