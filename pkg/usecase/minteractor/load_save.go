// 指示: miu200521358
package minteractor

import (
	"fmt"
	"strings"

	"github.com/miu200521358/mu_bone_mesh/pkg/domain/model"
	"github.com/miu200521358/mu_bone_mesh/pkg/usecase/port/moutput"
)

// LoadSpec は生成仕様を読み込む。
func (uc *BoneMeshUsecase) LoadSpec(rep moutput.ISpecReader, path string) (*model.MeshBuildSpec, error) {
	reader := rep
	if reader == nil {
		reader = uc.specReader
	}
	if reader == nil {
		return nil, fmt.Errorf("生成仕様読み込みリポジトリが設定されていません")
	}
	if !reader.CanLoad(path) {
		return nil, fmt.Errorf("生成仕様の形式が未対応です: %s", path)
	}
	return reader.Load(path)
}

// LoadSkeleton は骨格を読み込む。
func (uc *BoneMeshUsecase) LoadSkeleton(rep moutput.ISkeletonReader, path string) (*model.Skeleton, error) {
	reader := rep
	if reader == nil {
		reader = uc.skeletonReader
	}
	if reader == nil {
		return nil, fmt.Errorf("骨格読み込みリポジトリが設定されていません")
	}
	if !reader.CanLoad(path) {
		return nil, fmt.Errorf("骨格の形式が未対応です: %s", path)
	}
	return reader.Load(path)
}

// SaveReport は生成レポートを保存する。
func (uc *BoneMeshUsecase) SaveReport(rep moutput.IReportWriter, path string, report *model.GenerateReport) error {
	writer := rep
	if writer == nil {
		writer = uc.reportWriter
	}
	if writer == nil {
		return fmt.Errorf("レポート保存リポジトリが設定されていません")
	}
	if strings.TrimSpace(path) == "" {
		return fmt.Errorf("レポート保存先パスが未指定です")
	}
	if report == nil {
		return fmt.Errorf("保存対象レポートが未設定です")
	}
	return writer.Save(path, report)
}
