// 指示: miu200521358
package io_report

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/miu200521358/mu_bone_mesh/pkg/domain/model"
)

// TestReportWriterSaveRoundTrip はレポート保存内容を検証する。
func TestReportWriterSaveRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "report.json")
	report := &model.GenerateReport{
		SpecName:     "biped",
		BoneCount:    2,
		BuiltCount:   1,
		SkippedCount: 1,
		Bones: []model.BoneReport{
			{Bone: "tail", Status: model.BONE_REPORT_STATUS_BUILT, AttachmentCount: 1},
			{Bone: "phantom", Status: model.BONE_REPORT_STATUS_SKIPPED, Reason: model.GenerateWarningBoneMissing},
		},
		GroupSteps: []model.GroupStepReport{
			{Operation: "rename", Source: "L_arm", Destination: "arm_L"},
		},
		Warnings: []model.GenerateWarning{
			{Bone: "phantom", Reason: model.GenerateWarningBoneMissing},
		},
	}

	if err := NewReportWriter().Save(path, report); err != nil {
		t.Fatalf("save failed: %v", err)
	}

	b, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read back failed: %v", err)
	}
	loaded := model.GenerateReport{}
	if err := json.Unmarshal(b, &loaded); err != nil {
		t.Fatalf("unmarshal failed: %v", err)
	}

	if loaded.SpecName != "biped" || loaded.BuiltCount != 1 || loaded.SkippedCount != 1 {
		t.Fatalf("report totals mismatch: got=%+v", loaded)
	}
	if len(loaded.Bones) != 2 || loaded.Bones[1].Status != model.BONE_REPORT_STATUS_SKIPPED {
		t.Fatalf("bone records mismatch: got=%+v", loaded.Bones)
	}
	if len(loaded.GroupSteps) != 1 || loaded.GroupSteps[0].Operation != "rename" {
		t.Fatalf("group steps mismatch: got=%+v", loaded.GroupSteps)
	}
	if len(loaded.Warnings) != 1 || loaded.Warnings[0].Bone != "phantom" {
		t.Fatalf("warnings mismatch: got=%+v", loaded.Warnings)
	}
}

// TestReportWriterSaveRejectsInvalidArguments は不正引数の拒否を検証する。
func TestReportWriterSaveRejectsInvalidArguments(t *testing.T) {
	writer := NewReportWriter()
	if err := writer.Save("", &model.GenerateReport{}); err == nil {
		t.Fatalf("empty path should be rejected")
	}
	if err := writer.Save(filepath.Join(t.TempDir(), "report.json"), nil); err == nil {
		t.Fatalf("nil report should be rejected")
	}
}
