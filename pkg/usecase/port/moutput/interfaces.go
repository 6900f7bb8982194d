// 指示: miu200521358
// Package moutput は生成処理が依存する外部境界の契約を提供する。
package moutput

import (
	"github.com/miu200521358/mu_bone_mesh/pkg/domain/mmath"
	"github.com/miu200521358/mu_bone_mesh/pkg/domain/model"
)

// MeshHandle はメッシュカーネル側オブジェクトへの参照を表す。
type MeshHandle int

// WorldTransform はワールド空間の配置(平行移動・回転・スケール)を表す。
type WorldTransform struct {
	Translation mmath.Vec3
	Rotation    mmath.Quaternion
	Scale       mmath.Vec3
}

// DeformField は正規化高さ t∈[0,1] に対する半径スケールと捩り角(ラジアン)を返す関数を表す。
type DeformField func(height float64) (radialScale float64, twistRadians float64)

// IMeshKernel はメッシュカーネルの能力契約を表す。
// 各操作は順序保証された逐次コマンド列として呼び出され、失敗は型付きエラーで返す。
type IMeshKernel interface {
	// CreatePrimitive はプリミティブを生成する。segments は断面分割数(断面を持たない種別は0)。
	CreatePrimitive(kind string, segments int, transform WorldTransform) (MeshHandle, error)
	// ApplyBoolean はブーリアン演算を適用する。
	ApplyBoolean(target MeshHandle, operand MeshHandle, op model.BooleanOp) (MeshHandle, error)
	// ApplyBevel はベベルを適用する。
	ApplyBevel(target MeshHandle, width float64, segments int) (MeshHandle, error)
	// ApplySubdivide は分割を適用する。
	ApplySubdivide(target MeshHandle, cuts int) (MeshHandle, error)
	// RemoveCaps は始端・終端キャップの保持指定に従いキャップを除去する。
	RemoveCaps(target MeshHandle, keepStart bool, keepEnd bool) (MeshHandle, error)
	// DeformVertices は高さ場に基づく頂点変形を適用する。
	DeformVertices(target MeshHandle, field DeformField) (MeshHandle, error)
	// ImportAsset は外部アセットを読み込み配置する。
	ImportAsset(path string, transform WorldTransform) (MeshHandle, error)
	// Join は複数メッシュを1つへ結合する。
	Join(parts []MeshHandle) (MeshHandle, error)
	// BindToSkeleton はメッシュをボーンへウェイト付けする。
	BindToSkeleton(mesh MeshHandle, boneName string, weight float64) error
	// VertexGroupNames はメッシュが保持する頂点グループ名一覧を返す。
	VertexGroupNames(mesh MeshHandle) ([]string, error)
	// RenameVertexGroup は頂点グループ名を変更する。
	RenameVertexGroup(mesh MeshHandle, src string, dst string) error
	// MergeVertexGroup は頂点グループのウェイトを統合する。
	MergeVertexGroup(mesh MeshHandle, src string, dst string) error
}

// ISpecReader は生成仕様の読み込み契約を表す。
type ISpecReader interface {
	// CanLoad はパスを読み込み可能か判定する。
	CanLoad(path string) bool
	// Load は生成仕様を読み込む。
	Load(path string) (*model.MeshBuildSpec, error)
}

// ISkeletonReader は骨格の読み込み契約を表す。
type ISkeletonReader interface {
	// CanLoad はパスを読み込み可能か判定する。
	CanLoad(path string) bool
	// Load は骨格を読み込む。
	Load(path string) (*model.Skeleton, error)
}

// IReportWriter は生成レポートの書き込み契約を表す。
type IReportWriter interface {
	// Save は生成レポートを保存する。
	Save(path string, report *model.GenerateReport) error
}
