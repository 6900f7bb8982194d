// 指示: miu200521358
package kernel_trace

import (
	"testing"

	"github.com/miu200521358/mu_bone_mesh/pkg/usecase/port/moutput"
)

// TestTraceKernelRecordsOrderedCommands はコマンド発行順の記録を検証する。
func TestTraceKernelRecordsOrderedCommands(t *testing.T) {
	kernel := NewTraceKernel()

	body, err := kernel.CreatePrimitive("cylinder", 12, moutput.WorldTransform{})
	if err != nil {
		t.Fatalf("create failed: %v", err)
	}
	deformed, err := kernel.DeformVertices(body, func(height float64) (float64, float64) { return 1.0, 0.0 })
	if err != nil {
		t.Fatalf("deform failed: %v", err)
	}
	if err := kernel.BindToSkeleton(deformed, "tail", 1.0); err != nil {
		t.Fatalf("bind failed: %v", err)
	}

	commands := kernel.Commands()
	wantOps := []string{"create_primitive", "deform_vertices", "bind_to_skeleton"}
	if len(commands) != len(wantOps) {
		t.Fatalf("command count mismatch: got=%d want=%d", len(commands), len(wantOps))
	}
	for index, op := range wantOps {
		if commands[index].Op != op {
			t.Fatalf("command order mismatch at %d: got=%s want=%s", index, commands[index].Op, op)
		}
	}
}

// TestTraceKernelJoinCarriesVertexGroups は結合時の頂点グループ引き継ぎを検証する。
func TestTraceKernelJoinCarriesVertexGroups(t *testing.T) {
	kernel := NewTraceKernel()

	left, _ := kernel.CreatePrimitive("cylinder", 8, moutput.WorldTransform{})
	right, _ := kernel.CreatePrimitive("cylinder", 8, moutput.WorldTransform{})
	if err := kernel.BindToSkeleton(left, "arm_L", 1.0); err != nil {
		t.Fatalf("bind left failed: %v", err)
	}
	if err := kernel.BindToSkeleton(right, "arm_R", 1.0); err != nil {
		t.Fatalf("bind right failed: %v", err)
	}

	joined, err := kernel.Join([]moutput.MeshHandle{left, right})
	if err != nil {
		t.Fatalf("join failed: %v", err)
	}
	groups, err := kernel.VertexGroupNames(joined)
	if err != nil {
		t.Fatalf("group names failed: %v", err)
	}
	if len(groups) != 2 || groups[0] != "arm_L" || groups[1] != "arm_R" {
		t.Fatalf("group carry mismatch: got=%v", groups)
	}
}

// TestTraceKernelRenameAndMergeMutateGroups は改名・統合のグループ状態変化を検証する。
func TestTraceKernelRenameAndMergeMutateGroups(t *testing.T) {
	kernel := NewTraceKernel()

	mesh, _ := kernel.CreatePrimitive("cylinder", 8, moutput.WorldTransform{})
	if err := kernel.BindToSkeleton(mesh, "L_arm", 1.0); err != nil {
		t.Fatalf("bind failed: %v", err)
	}
	if err := kernel.BindToSkeleton(mesh, "left_arm", 1.0); err != nil {
		t.Fatalf("bind failed: %v", err)
	}

	if err := kernel.RenameVertexGroup(mesh, "L_arm", "arm_L"); err != nil {
		t.Fatalf("rename failed: %v", err)
	}
	if err := kernel.MergeVertexGroup(mesh, "left_arm", "arm_L"); err != nil {
		t.Fatalf("merge failed: %v", err)
	}

	groups, err := kernel.VertexGroupNames(mesh)
	if err != nil {
		t.Fatalf("group names failed: %v", err)
	}
	if len(groups) != 1 || groups[0] != "arm_L" {
		t.Fatalf("group state mismatch: got=%v", groups)
	}
}

// TestTraceKernelRenameRejectsMissingSource は改名元不在の失敗を検証する。
func TestTraceKernelRenameRejectsMissingSource(t *testing.T) {
	kernel := NewTraceKernel()
	mesh, _ := kernel.CreatePrimitive("cylinder", 8, moutput.WorldTransform{})

	if err := kernel.RenameVertexGroup(mesh, "missing", "arm_L"); err == nil {
		t.Fatalf("rename of missing group should fail")
	}
}

// TestTraceKernelJoinRejectsEmptyParts は空結合の失敗を検証する。
func TestTraceKernelJoinRejectsEmptyParts(t *testing.T) {
	kernel := NewTraceKernel()
	if _, err := kernel.Join(nil); err == nil {
		t.Fatalf("empty join should fail")
	}
}
