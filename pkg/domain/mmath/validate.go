// 指示: miu200521358
package mmath

import (
	"math"

	"github.com/miu200521358/mu_bone_mesh/pkg/domain/model/merrors"
)

// IsFinite は有限数か判定する。
func IsFinite(value float64) bool {
	return !math.IsNaN(value) && !math.IsInf(value, 0)
}

// NumberFromValue は動的値を有限数として取り出す。
// bool値・非数値は形状エラー、NaN/±Infは値域エラーとする。
func NumberFromValue(value any, label string) (float64, error) {
	switch typed := value.(type) {
	case bool:
		return 0, merrors.NewShapeError("%s に数値以外(bool)が指定されています", label)
	case float64:
		if !IsFinite(typed) {
			return 0, merrors.NewRangeError("%s が有限数ではありません: %v", label, typed)
		}
		return typed, nil
	case float32:
		return NumberFromValue(float64(typed), label)
	case int:
		return float64(typed), nil
	case int64:
		return float64(typed), nil
	default:
		return 0, merrors.NewShapeError("%s に数値以外が指定されています: %T", label, value)
	}
}

// ValidateFinite は有限数であることを検証する。
func ValidateFinite(value float64, label string) error {
	if !IsFinite(value) {
		return merrors.NewRangeError("%s が有限数ではありません: %v", label, value)
	}
	return nil
}

// ValidatePositiveFinite は正の有限数であることを検証する。
func ValidatePositiveFinite(value float64, label string) error {
	if err := ValidateFinite(value, label); err != nil {
		return err
	}
	if value <= 0 {
		return merrors.NewRangeError("%s は正の値である必要があります: %v", label, value)
	}
	return nil
}

// ValidateFiniteVec3 は全成分が有限数であることを検証する。
func ValidateFiniteVec3(v Vec3, label string) error {
	if !IsFinite(v.X) || !IsFinite(v.Y) || !IsFinite(v.Z) {
		return merrors.NewRangeError("%s の成分が有限数ではありません: (%v, %v, %v)", label, v.X, v.Y, v.Z)
	}
	return nil
}

// ClampValue はmin-maxで値をクランプする。
func ClampValue(value float64, min float64, max float64) float64 {
	if value < min {
		return min
	}
	if value > max {
		return max
	}
	return value
}
