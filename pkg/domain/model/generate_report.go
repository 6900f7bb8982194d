// 指示: miu200521358
package model

// BoneReportStatus はボーン単位の生成結果種別を表す。
type BoneReportStatus string

const (
	// BONE_REPORT_STATUS_BUILT は生成成功を表す。
	BONE_REPORT_STATUS_BUILT BoneReportStatus = "built"
	// BONE_REPORT_STATUS_SKIPPED はスキップを表す。
	BONE_REPORT_STATUS_SKIPPED BoneReportStatus = "skipped"
)

// BoneReport はボーン単位の生成結果を表す。
type BoneReport struct {
	Bone            string           `json:"bone"`
	Status          BoneReportStatus `json:"status"`
	AttachmentCount int              `json:"attachment_count"`
	ModifierCount   int              `json:"modifier_count"`
	Reason          string           `json:"reason,omitempty"`
}

// GroupStepReport は頂点グループ操作1手の記録を表す。
type GroupStepReport struct {
	Operation   string `json:"operation"`
	Source      string `json:"source"`
	Destination string `json:"destination"`
}

// GenerateReport はモデル1体分の生成結果レポートを表す。
type GenerateReport struct {
	SpecName     string            `json:"spec_name"`
	BoneCount    int               `json:"bone_count"`
	BuiltCount   int               `json:"built_count"`
	SkippedCount int               `json:"skipped_count"`
	Bones        []BoneReport      `json:"bones"`
	GroupSteps   []GroupStepReport `json:"group_steps"`
	Warnings     []GenerateWarning `json:"warnings"`
}
