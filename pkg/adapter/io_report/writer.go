// 指示: miu200521358
// Package io_report は生成レポートのJSON書き出しアダプタを提供する。
package io_report

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/miu200521358/mu_bone_mesh/pkg/domain/model"
	"github.com/miu200521358/mu_bone_mesh/pkg/shared/base/logging"
)

// ReportWriter は生成レポートの書き込み契約を表す。
type ReportWriter struct{}

// NewReportWriter はReportWriterを生成する。
func NewReportWriter() *ReportWriter {
	return &ReportWriter{}
}

// Save は生成レポートをJSONとして保存する。
func (w *ReportWriter) Save(path string, report *model.GenerateReport) error {
	if strings.TrimSpace(path) == "" {
		return fmt.Errorf("レポート保存先パスが未指定です")
	}
	if report == nil {
		return fmt.Errorf("保存対象レポートが未設定です")
	}

	b, err := json.MarshalIndent(report, "", "  ")
	if err != nil {
		return fmt.Errorf("レポートJSONの生成に失敗しました: %w", err)
	}
	if err := os.WriteFile(path, append(b, '\n'), 0o644); err != nil {
		return fmt.Errorf("レポートファイルの書き込みに失敗しました: %w", err)
	}
	logging.DefaultLogger().Info("レポート保存完了: file=%s", filepath.Base(path))
	return nil
}
