// 指示: miu200521358
package minteractor

import (
	"github.com/miu200521358/mu_bone_mesh/pkg/domain/mmath"
	"github.com/miu200521358/mu_bone_mesh/pkg/domain/model/merrors"
)

const absoluteLengthKey = "absolute"

// ResolvedLength はボーン相対寸法の解決結果(X/Y半径)を表す。
type ResolvedLength struct {
	X      float64
	Y      float64
	IsPair bool
}

// ResolveBoneRelativeLength はボーン相対寸法の生値をワールド長へ解決する。
// スカラーはボーン長倍、ペア [x, y] は各成分をボーン長倍、
// {absolute: 値} はボーン長に依らずそのまま採用する。
// 解決結果は正の有限数であることを検証する。
func ResolveBoneRelativeLength(value any, boneLength float64, label string) (ResolvedLength, error) {
	if err := mmath.ValidatePositiveFinite(boneLength, label+" のボーン長"); err != nil {
		return ResolvedLength{}, err
	}

	switch typed := value.(type) {
	case nil:
		return ResolvedLength{}, merrors.NewShapeError("%s が指定されていません", label)
	case map[string]any:
		absolute, exists := typed[absoluteLengthKey]
		if !exists {
			return ResolvedLength{}, merrors.NewShapeError("%s のマップ指定には absolute キーが必要です", label)
		}
		if len(typed) != 1 {
			return ResolvedLength{}, merrors.NewShapeError("%s の absolute 指定に他のキーを併記できません", label)
		}
		return resolveLengthLeaf(absolute, 1.0, label)
	default:
		return resolveLengthLeaf(value, boneLength, label)
	}
}

// resolveLengthLeaf はスカラーまたはペアの寸法値を scale 倍で解決する。
func resolveLengthLeaf(value any, scale float64, label string) (ResolvedLength, error) {
	if pair, isPair := value.([]any); isPair {
		if len(pair) != 2 {
			return ResolvedLength{}, merrors.NewShapeError("%s のペア指定は2要素である必要があります: %d要素", label, len(pair))
		}
		x, err := resolveLengthScalar(pair[0], scale, label)
		if err != nil {
			return ResolvedLength{}, err
		}
		y, err := resolveLengthScalar(pair[1], scale, label)
		if err != nil {
			return ResolvedLength{}, err
		}
		return ResolvedLength{X: x, Y: y, IsPair: true}, nil
	}

	scalar, err := resolveLengthScalar(value, scale, label)
	if err != nil {
		return ResolvedLength{}, err
	}
	return ResolvedLength{X: scalar, Y: scalar}, nil
}

// resolveLengthScalar は数値1つを scale 倍で解決し、正値契約を検証する。
func resolveLengthScalar(value any, scale float64, label string) (float64, error) {
	number, err := mmath.NumberFromValue(value, label)
	if err != nil {
		return 0, err
	}
	resolved := number * scale
	if err := mmath.ValidatePositiveFinite(resolved, label); err != nil {
		return 0, err
	}
	return resolved, nil
}
