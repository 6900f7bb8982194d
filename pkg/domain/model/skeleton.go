// 指示: miu200521358
// Package model は骨格・メッシュ仕様・生成結果のドメイン型を提供する。
package model

import (
	"github.com/miu200521358/mu_bone_mesh/pkg/domain/mmath"
)

// Bone は骨格内の1ボーン(始点→終点の有向線分)を表す。
type Bone struct {
	Name string
	Head mmath.Vec3
	Tail mmath.Vec3
}

// Skeleton は生成対象の骨格ポーズを表す。
type Skeleton struct {
	Bones []*Bone
}

// NewSkeleton は空の骨格を生成する。
func NewSkeleton() *Skeleton {
	return &Skeleton{Bones: []*Bone{}}
}

// Append はボーンを追加する。
func (s *Skeleton) Append(bone *Bone) {
	if s == nil || bone == nil {
		return
	}
	s.Bones = append(s.Bones, bone)
}

// BoneByName は名前一致するボーンを返す。
func (s *Skeleton) BoneByName(name string) (*Bone, bool) {
	if s == nil {
		return nil, false
	}
	for _, bone := range s.Bones {
		if bone != nil && bone.Name == name {
			return bone, true
		}
	}
	return nil, false
}

// BoneFrame はボーンの局所座標系を表す。1回の生成パス内で不変とする。
type BoneFrame struct {
	Name        string
	Head        mmath.Vec3
	Tail        mmath.Vec3
	Axis        mmath.Vec3
	Length      float64
	Orientation mmath.Quaternion
}
