// 指示: miu200521358
package minteractor

import (
	"github.com/miu200521358/mu_bone_mesh/pkg/domain/model"
	"github.com/miu200521358/mu_bone_mesh/pkg/usecase/port/moutput"
)

// GenerateProgressEventType は生成処理の進捗イベント種別を表す。
type GenerateProgressEventType string

const (
	// GenerateProgressEventTypeSpecValidated は仕様検証完了イベントを表す。
	GenerateProgressEventTypeSpecValidated GenerateProgressEventType = "spec_validated"
	// GenerateProgressEventTypeFramesBuilt はボーン座標系構築完了イベントを表す。
	GenerateProgressEventTypeFramesBuilt GenerateProgressEventType = "frames_built"
	// GenerateProgressEventTypeBoneBuilt はボーン単位メッシュ生成完了イベントを表す。
	GenerateProgressEventTypeBoneBuilt GenerateProgressEventType = "bone_built"
	// GenerateProgressEventTypeBoneSkipped はボーン単位スキップイベントを表す。
	GenerateProgressEventTypeBoneSkipped GenerateProgressEventType = "bone_skipped"
	// GenerateProgressEventTypeMeshJoined はメッシュ結合完了イベントを表す。
	GenerateProgressEventTypeMeshJoined GenerateProgressEventType = "mesh_joined"
	// GenerateProgressEventTypeGroupsReconciled は頂点グループ整合完了イベントを表す。
	GenerateProgressEventTypeGroupsReconciled GenerateProgressEventType = "groups_reconciled"
)

// GenerateProgressEvent は生成処理の進捗イベントを表す。
type GenerateProgressEvent struct {
	Type      GenerateProgressEventType
	BoneName  string
	BoneCount int
	StepCount int
}

// IGenerateProgressReporter は生成処理の進捗通知契約を表す。
type IGenerateProgressReporter interface {
	// ReportGenerateProgress は生成処理進捗を通知する。
	ReportGenerateProgress(event GenerateProgressEvent)
}

// GenerateRequest はメッシュ生成要求を表す。
type GenerateRequest struct {
	Spec             *model.MeshBuildSpec
	Skeleton         *model.Skeleton
	Kernel           moutput.IMeshKernel
	ProgressReporter IGenerateProgressReporter
}

// GenerateResult はメッシュ生成結果を表す。
type GenerateResult struct {
	Mesh     moutput.MeshHandle
	Report   *model.GenerateReport
	Warnings []model.GenerateWarning
}
