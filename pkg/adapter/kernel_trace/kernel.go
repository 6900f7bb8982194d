// 指示: miu200521358
// Package kernel_trace はメッシュカーネル呼び出しを記録するドライラン実装を提供する。
package kernel_trace

import (
	"fmt"

	"github.com/miu200521358/mu_bone_mesh/pkg/domain/model"
	"github.com/miu200521358/mu_bone_mesh/pkg/usecase/port/moutput"
)

// Command はカーネルへ発行されたコマンド1件を表す。
type Command struct {
	Op          string    `json:"op"`
	Kind        string    `json:"kind,omitempty"`
	Segments    int       `json:"segments,omitempty"`
	Translation []float64 `json:"translation,omitempty"`
	Scale       []float64 `json:"scale,omitempty"`
	BoneName    string    `json:"bone_name,omitempty"`
	Weight      float64   `json:"weight,omitempty"`
	Source      string    `json:"source,omitempty"`
	Destination string    `json:"destination,omitempty"`
	PartCount   int       `json:"part_count,omitempty"`
	Result      int       `json:"result,omitempty"`
}

// TraceKernel は発行順のコマンド列と頂点グループ状態を記録するカーネルを表す。
// 幾何演算は行わず、ハンドルとグループの系譜だけを追跡する。
type TraceKernel struct {
	nextHandle moutput.MeshHandle
	commands   []Command
	groups     map[moutput.MeshHandle][]string
}

// NewTraceKernel はTraceKernelを生成する。
func NewTraceKernel() *TraceKernel {
	return &TraceKernel{groups: map[moutput.MeshHandle][]string{}}
}

// Commands は発行済みコマンド列のコピーを返す。
func (k *TraceKernel) Commands() []Command {
	return append([]Command(nil), k.commands...)
}

// allocate は新規ハンドルを採番する。
func (k *TraceKernel) allocate() moutput.MeshHandle {
	k.nextHandle++
	return k.nextHandle
}

// derive は元メッシュのグループを引き継いだ新規ハンドルを採番する。
func (k *TraceKernel) derive(source moutput.MeshHandle) moutput.MeshHandle {
	handle := k.allocate()
	k.groups[handle] = append([]string(nil), k.groups[source]...)
	return handle
}

// record はコマンドを記録する。
func (k *TraceKernel) record(command Command) {
	k.commands = append(k.commands, command)
}

// CreatePrimitive はプリミティブ生成を記録する。
func (k *TraceKernel) CreatePrimitive(kind string, segments int, transform moutput.WorldTransform) (moutput.MeshHandle, error) {
	handle := k.allocate()
	k.groups[handle] = []string{}
	k.record(Command{
		Op:          "create_primitive",
		Kind:        kind,
		Segments:    segments,
		Translation: []float64{transform.Translation.X, transform.Translation.Y, transform.Translation.Z},
		Scale:       []float64{transform.Scale.X, transform.Scale.Y, transform.Scale.Z},
		Result:      int(handle),
	})
	return handle, nil
}

// ApplyBoolean はブーリアン演算を記録する。
func (k *TraceKernel) ApplyBoolean(target moutput.MeshHandle, operand moutput.MeshHandle, op model.BooleanOp) (moutput.MeshHandle, error) {
	handle := k.derive(target)
	k.record(Command{Op: "apply_boolean", Kind: string(op), Result: int(handle)})
	return handle, nil
}

// ApplyBevel はベベル適用を記録する。
func (k *TraceKernel) ApplyBevel(target moutput.MeshHandle, width float64, segments int) (moutput.MeshHandle, error) {
	handle := k.derive(target)
	k.record(Command{Op: "apply_bevel", Weight: width, Segments: segments, Result: int(handle)})
	return handle, nil
}

// ApplySubdivide は分割適用を記録する。
func (k *TraceKernel) ApplySubdivide(target moutput.MeshHandle, cuts int) (moutput.MeshHandle, error) {
	handle := k.derive(target)
	k.record(Command{Op: "apply_subdivide", Segments: cuts, Result: int(handle)})
	return handle, nil
}

// RemoveCaps はキャップ除去を記録する。
func (k *TraceKernel) RemoveCaps(target moutput.MeshHandle, keepStart bool, keepEnd bool) (moutput.MeshHandle, error) {
	handle := k.derive(target)
	k.record(Command{Op: "remove_caps", Result: int(handle)})
	return handle, nil
}

// DeformVertices は頂点変形を記録する。
func (k *TraceKernel) DeformVertices(target moutput.MeshHandle, field moutput.DeformField) (moutput.MeshHandle, error) {
	handle := k.derive(target)
	k.record(Command{Op: "deform_vertices", Result: int(handle)})
	return handle, nil
}

// ImportAsset は外部アセット読み込みを記録する。
func (k *TraceKernel) ImportAsset(path string, transform moutput.WorldTransform) (moutput.MeshHandle, error) {
	handle := k.allocate()
	k.groups[handle] = []string{}
	k.record(Command{
		Op:          "import_asset",
		Kind:        path,
		Translation: []float64{transform.Translation.X, transform.Translation.Y, transform.Translation.Z},
		Scale:       []float64{transform.Scale.X, transform.Scale.Y, transform.Scale.Z},
		Result:      int(handle),
	})
	return handle, nil
}

// Join はメッシュ結合を記録し、各部分の頂点グループを引き継ぐ。
func (k *TraceKernel) Join(parts []moutput.MeshHandle) (moutput.MeshHandle, error) {
	if len(parts) == 0 {
		return 0, fmt.Errorf("結合対象メッシュがありません")
	}
	handle := k.allocate()
	merged := []string{}
	seen := map[string]struct{}{}
	for _, part := range parts {
		for _, group := range k.groups[part] {
			if _, exists := seen[group]; exists {
				continue
			}
			seen[group] = struct{}{}
			merged = append(merged, group)
		}
	}
	k.groups[handle] = merged
	k.record(Command{Op: "join", PartCount: len(parts), Result: int(handle)})
	return handle, nil
}

// BindToSkeleton はウェイト付けを記録し、ボーン名の頂点グループを追加する。
func (k *TraceKernel) BindToSkeleton(mesh moutput.MeshHandle, boneName string, weight float64) error {
	for _, group := range k.groups[mesh] {
		if group == boneName {
			return nil
		}
	}
	k.groups[mesh] = append(k.groups[mesh], boneName)
	k.record(Command{Op: "bind_to_skeleton", BoneName: boneName, Weight: weight})
	return nil
}

// VertexGroupNames はメッシュの頂点グループ名一覧を返す。
func (k *TraceKernel) VertexGroupNames(mesh moutput.MeshHandle) ([]string, error) {
	return append([]string(nil), k.groups[mesh]...), nil
}

// RenameVertexGroup は頂点グループ改名を記録する。
func (k *TraceKernel) RenameVertexGroup(mesh moutput.MeshHandle, src string, dst string) error {
	groups := k.groups[mesh]
	for index, group := range groups {
		if group != src {
			continue
		}
		groups[index] = dst
		k.record(Command{Op: "rename_vertex_group", Source: src, Destination: dst})
		return nil
	}
	return fmt.Errorf("改名対象の頂点グループが存在しません: %s", src)
}

// MergeVertexGroup は頂点グループ統合を記録する。
func (k *TraceKernel) MergeVertexGroup(mesh moutput.MeshHandle, src string, dst string) error {
	groups := k.groups[mesh]
	srcIndex := -1
	dstExists := false
	for index, group := range groups {
		if group == src {
			srcIndex = index
		}
		if group == dst {
			dstExists = true
		}
	}
	if srcIndex < 0 {
		return fmt.Errorf("統合元の頂点グループが存在しません: %s", src)
	}
	if !dstExists {
		return fmt.Errorf("統合先の頂点グループが存在しません: %s", dst)
	}
	k.groups[mesh] = append(groups[:srcIndex], groups[srcIndex+1:]...)
	k.record(Command{Op: "merge_vertex_group", Source: src, Destination: dst})
	return nil
}
