// 指示: miu200521358
package mmath

import (
	"github.com/go-gl/mathgl/mgl64"
)

// Quaternion は回転クォータニオンを表す。
type Quaternion struct {
	mgl64.Quat
}

// NewQuaternion は単位クォータニオンを生成する。
func NewQuaternion() Quaternion {
	return Quaternion{Quat: mgl64.QuatIdent()}
}

// NewQuaternionFromDegrees はXYZ順のオイラー角(度)からクォータニオンを生成する。
func NewQuaternionFromDegrees(degreeX float64, degreeY float64, degreeZ float64) Quaternion {
	return Quaternion{Quat: mgl64.AnglesToQuat(
		DegToRad(degreeX),
		DegToRad(degreeY),
		DegToRad(degreeZ),
		mgl64.XYZ,
	)}
}

// NewQuaternionRotate は始点単位ベクトルを終点単位ベクトルへ回す最短回転を生成する。
func NewQuaternionRotate(from Vec3, to Vec3) Quaternion {
	return Quaternion{Quat: mgl64.QuatBetweenVectors(
		mgl64.Vec3{from.X, from.Y, from.Z},
		mgl64.Vec3{to.X, to.Y, to.Z},
	)}
}

// Muled は回転合成(自身→引数の順で適用)の結果を返す。
func (q Quaternion) Muled(other Quaternion) Quaternion {
	return Quaternion{Quat: q.Quat.Mul(other.Quat)}
}

// MulVec3 はベクトルを回転した結果を返す。
func (q Quaternion) MulVec3(v Vec3) Vec3 {
	rotated := q.Quat.Rotate(mgl64.Vec3{v.X, v.Y, v.Z})
	return NewVec3(rotated.X(), rotated.Y(), rotated.Z())
}

// Normalized は正規化結果を返す。
func (q Quaternion) Normalized() Quaternion {
	return Quaternion{Quat: q.Quat.Normalize()}
}
