// 指示: miu200521358
package io_spec

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/miu200521358/mu_bone_mesh/pkg/domain/mmath"
	"github.com/miu200521358/mu_bone_mesh/pkg/domain/model"
	"github.com/miu200521358/mu_bone_mesh/pkg/shared/base/logging"
)

// skeletonFile は骨格ファイルの生レイアウトを表す。
type skeletonFile struct {
	Bones []skeletonBoneEntry `json:"bones"`
}

// skeletonBoneEntry は骨格ファイル内の1ボーンを表す。
type skeletonBoneEntry struct {
	Name string    `json:"name"`
	Head []float64 `json:"head"`
	Tail []float64 `json:"tail"`
}

// SkeletonRepository は骨格JSONの読み込み契約を表す。
type SkeletonRepository struct{}

// NewSkeletonRepository はSkeletonRepositoryを生成する。
func NewSkeletonRepository() *SkeletonRepository {
	return &SkeletonRepository{}
}

// CanLoad は拡張子に応じて読み込み可否を判定する。
func (r *SkeletonRepository) CanLoad(path string) bool {
	return strings.EqualFold(filepath.Ext(path), ".json")
}

// Load は骨格を読み込む。
func (r *SkeletonRepository) Load(path string) (*model.Skeleton, error) {
	if !r.CanLoad(path) {
		return nil, fmt.Errorf("骨格の拡張子が .json ではありません: %s", path)
	}
	logging.DefaultLogger().Info("骨格読込開始: file=%s", filepath.Base(path))

	b, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("骨格ファイルが見つかりません: %s", path)
		}
		return nil, fmt.Errorf("骨格ファイルの読み取りに失敗しました: %w", err)
	}

	file := skeletonFile{}
	if err := json.Unmarshal(b, &file); err != nil {
		return nil, fmt.Errorf("骨格JSONの解析に失敗しました: %w", err)
	}

	skeleton := model.NewSkeleton()
	for index, entry := range file.Bones {
		if entry.Name == "" {
			return nil, fmt.Errorf("骨格bones[%d]の名前が未指定です", index)
		}
		head, err := vec3FromComponents(entry.Head, fmt.Sprintf("骨格bones[%d]のhead", index))
		if err != nil {
			return nil, err
		}
		tail, err := vec3FromComponents(entry.Tail, fmt.Sprintf("骨格bones[%d]のtail", index))
		if err != nil {
			return nil, err
		}
		skeleton.Append(&model.Bone{Name: entry.Name, Head: head, Tail: tail})
	}
	logging.DefaultLogger().Info("骨格読込完了: bones=%d", len(skeleton.Bones))
	return skeleton, nil
}

// vec3FromComponents は3要素の座標値をベクトルへ変換する。
func vec3FromComponents(components []float64, label string) (mmath.Vec3, error) {
	if len(components) != 3 {
		return mmath.Vec3{}, fmt.Errorf("%sは3要素である必要があります: %d要素", label, len(components))
	}
	return mmath.NewVec3(components[0], components[1], components[2]), nil
}
