// 指示: miu200521358
package io_spec

import (
	"os"
	"path/filepath"
	"testing"
)

// writeTempSkeleton はテスト用の骨格ファイルを書き出す。
func writeTempSkeleton(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "skeleton.json")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("skeleton write failed: %v", err)
	}
	return path
}

// TestSkeletonRepositoryLoad は骨格読込を検証する。
func TestSkeletonRepositoryLoad(t *testing.T) {
	path := writeTempSkeleton(t, `{
		"bones": [
			{"name": "hips", "head": [0, 1, 0], "tail": [0, 1.2, 0]},
			{"name": "spine", "head": [0, 1.2, 0], "tail": [0, 1.5, 0]}
		]
	}`)

	skeleton, err := NewSkeletonRepository().Load(path)
	if err != nil {
		t.Fatalf("load failed: %v", err)
	}
	if len(skeleton.Bones) != 2 {
		t.Fatalf("bone count mismatch: got=%d want=2", len(skeleton.Bones))
	}

	hips, exists := skeleton.BoneByName("hips")
	if !exists {
		t.Fatalf("hips bone missing")
	}
	if hips.Head.Y != 1.0 || hips.Tail.Y != 1.2 {
		t.Fatalf("hips coordinates mismatch: got=head.Y %v tail.Y %v", hips.Head.Y, hips.Tail.Y)
	}
}

// TestSkeletonRepositoryLoadRejectsWrongArity は座標要素数違反の拒否を検証する。
func TestSkeletonRepositoryLoadRejectsWrongArity(t *testing.T) {
	path := writeTempSkeleton(t, `{
		"bones": [
			{"name": "hips", "head": [0, 1], "tail": [0, 1.2, 0]}
		]
	}`)

	if _, err := NewSkeletonRepository().Load(path); err == nil {
		t.Fatalf("wrong arity head should be rejected")
	}
}

// TestSkeletonRepositoryLoadRejectsUnnamedBone は無名ボーンの拒否を検証する。
func TestSkeletonRepositoryLoadRejectsUnnamedBone(t *testing.T) {
	path := writeTempSkeleton(t, `{
		"bones": [
			{"name": "", "head": [0, 0, 0], "tail": [0, 1, 0]}
		]
	}`)

	if _, err := NewSkeletonRepository().Load(path); err == nil {
		t.Fatalf("unnamed bone should be rejected")
	}
}
