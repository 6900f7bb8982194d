// 指示: miu200521358
package minteractor

import (
	"strconv"
	"strings"

	"github.com/miu200521358/mu_bone_mesh/pkg/domain/model"
	"github.com/miu200521358/mu_bone_mesh/pkg/domain/model/merrors"
)

const defaultCircleSegments = 12

// ParseProfile は断面プロファイル指定を解析する。
// 未指定は circle(12) とみなす。square/rectangle は4分割固定、
// circle(N)/hexagon(N) は分割数N(3以上)の円形断面として解釈する。
func ParseProfile(value any) (model.Profile, error) {
	if value == nil {
		return model.Profile{Kind: model.PROFILE_KIND_CIRCLE, Segments: defaultCircleSegments}, nil
	}

	text, isString := value.(string)
	if !isString {
		return model.Profile{}, newProfileGrammarError(value)
	}

	switch text {
	case "circle":
		return model.Profile{Kind: model.PROFILE_KIND_CIRCLE, Segments: defaultCircleSegments}, nil
	case "square":
		return model.Profile{Kind: model.PROFILE_KIND_SQUARE, Segments: 4}, nil
	case "rectangle":
		return model.Profile{Kind: model.PROFILE_KIND_RECTANGLE, Segments: 4}, nil
	}

	for _, prefix := range []string{"circle(", "hexagon("} {
		if !strings.HasPrefix(text, prefix) || !strings.HasSuffix(text, ")") {
			continue
		}
		inner := strings.TrimSuffix(strings.TrimPrefix(text, prefix), ")")
		segments, err := strconv.Atoi(strings.TrimSpace(inner))
		if err != nil {
			return model.Profile{}, newProfileGrammarError(value)
		}
		if segments < 3 {
			return model.Profile{}, merrors.NewRangeError("断面分割数は3以上である必要があります: %d", segments)
		}
		return model.Profile{Kind: model.PROFILE_KIND_CIRCLE, Segments: segments}, nil
	}

	return model.Profile{}, newProfileGrammarError(value)
}

// newProfileGrammarError は断面プロファイル文法エラーを生成する。
func newProfileGrammarError(value any) error {
	return merrors.NewShapeError(
		"断面プロファイル指定を解釈できません: %v (circle / circle(N) / hexagon(N) / square / rectangle)",
		value,
	)
}
