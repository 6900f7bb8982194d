// 指示: miu200521358
package minteractor

import (
	"sort"

	"github.com/miu200521358/mu_bone_mesh/pkg/domain/mmath"
	"github.com/miu200521358/mu_bone_mesh/pkg/domain/model"
	"github.com/miu200521358/mu_bone_mesh/pkg/usecase/port/moutput"
)

// BuildDeformField はテーパー・膨らみ・捩りから高さ変形場を構築する。
// 半径スケールは (1 + (taper-1)*t) と膨らみ曲線の積、捩りは高さに比例する線形補間とする。
// 膨らみ制御点の位置は[0,1]へクランプした上で昇順に整列する。
func BuildDeformField(
	taper float64,
	bulges []model.BulgePoint,
	twistDegrees float64,
) (moutput.DeformField, error) {
	if err := mmath.ValidatePositiveFinite(taper, "taper"); err != nil {
		return nil, err
	}
	if err := mmath.ValidateFinite(twistDegrees, "twist"); err != nil {
		return nil, err
	}

	points := make([]model.BulgePoint, 0, len(bulges))
	for _, bulge := range bulges {
		if err := mmath.ValidateFinite(bulge.Position, "bulge位置"); err != nil {
			return nil, err
		}
		if err := mmath.ValidatePositiveFinite(bulge.Scale, "bulgeスケール"); err != nil {
			return nil, err
		}
		points = append(points, model.BulgePoint{
			Position: mmath.ClampValue(bulge.Position, 0.0, 1.0),
			Scale:    bulge.Scale,
		})
	}
	sort.SliceStable(points, func(i, j int) bool {
		return points[i].Position < points[j].Position
	})

	twistTotal := mmath.DegToRad(twistDegrees)

	return func(height float64) (float64, float64) {
		t := mmath.ClampValue(height, 0.0, 1.0)
		radial := (1.0 + (taper-1.0)*t) * bulgeScaleAt(points, t)
		return radial, twistTotal * t
	}, nil
}

// bulgeScaleAt は整列済み制御点列に対する区分線形補間値を返す。
// 制御点が無ければ1.0、範囲外は端点のスケールを保持する。
func bulgeScaleAt(points []model.BulgePoint, t float64) float64 {
	if len(points) == 0 {
		return 1.0
	}
	if t <= points[0].Position {
		return points[0].Scale
	}
	last := points[len(points)-1]
	if t >= last.Position {
		return last.Scale
	}
	for i := 1; i < len(points); i++ {
		prev := points[i-1]
		next := points[i]
		if t > next.Position {
			continue
		}
		span := next.Position - prev.Position
		if span == 0 {
			return next.Scale
		}
		ratio := (t - prev.Position) / span
		return prev.Scale + (next.Scale-prev.Scale)*ratio
	}
	return last.Scale
}
