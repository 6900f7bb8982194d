// 指示: miu200521358
// Package minteractor はボーン駆動メッシュ生成のユースケースを提供する。
package minteractor

import "github.com/miu200521358/mu_bone_mesh/pkg/usecase/port/moutput"

// BoneMeshUsecaseDeps はメッシュ生成ユースケースの依存を表す。
type BoneMeshUsecaseDeps struct {
	SpecReader     moutput.ISpecReader
	SkeletonReader moutput.ISkeletonReader
	ReportWriter   moutput.IReportWriter
	MeshKernel     moutput.IMeshKernel
}

// BoneMeshUsecase は骨格と生成仕様からスキン付きメッシュを組み立てるユースケースを表す。
type BoneMeshUsecase struct {
	specReader     moutput.ISpecReader
	skeletonReader moutput.ISkeletonReader
	reportWriter   moutput.IReportWriter
	meshKernel     moutput.IMeshKernel
}

// NewBoneMeshUsecase はメッシュ生成ユースケースを生成する。
func NewBoneMeshUsecase(deps BoneMeshUsecaseDeps) *BoneMeshUsecase {
	return &BoneMeshUsecase{
		specReader:     deps.SpecReader,
		skeletonReader: deps.SkeletonReader,
		reportWriter:   deps.ReportWriter,
		meshKernel:     deps.MeshKernel,
	}
}
