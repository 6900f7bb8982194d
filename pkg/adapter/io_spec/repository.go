// 指示: miu200521358
// Package io_spec は生成仕様・骨格のJSON読み込みアダプタを提供する。
package io_spec

import (
	"encoding/json"
	"fmt"
	"math"
	"os"
	"path/filepath"
	"strings"

	govaluate "gopkg.in/Knetic/govaluate.v3"

	"github.com/miu200521358/mu_bone_mesh/pkg/domain/model"
	"github.com/miu200521358/mu_bone_mesh/pkg/shared/base/logging"
	"github.com/miu200521358/mu_bone_mesh/pkg/usecase/minteractor"
)

// expressionConstants は数式文字列の評価に使う定数表を表す。
var expressionConstants = map[string]any{
	"pi": math.Pi,
}

// literalValueKeys は数式評価の対象外とする文字列項目のキー集合を表す。
var literalValueKeys = map[string]struct{}{
	"mirror":      {},
	"profile":     {},
	"kind":        {},
	"type":        {},
	"path":        {},
	"anchor_bone": {},
	"op":          {},
	"name":        {},
}

// specFile は生成仕様ファイルの生レイアウトを表す。
type specFile struct {
	Name       string                    `json:"name"`
	BoneMeshes map[string]map[string]any `json:"bone_meshes"`
	BoolShapes []map[string]any          `json:"bool_shapes"`
	GroupMap   map[string]string         `json:"group_map"`
}

// SpecRepository は生成仕様JSONの読み込み契約を表す。
type SpecRepository struct{}

// NewSpecRepository はSpecRepositoryを生成する。
func NewSpecRepository() *SpecRepository {
	return &SpecRepository{}
}

// CanLoad は拡張子に応じて読み込み可否を判定する。
func (r *SpecRepository) CanLoad(path string) bool {
	return strings.EqualFold(filepath.Ext(path), ".json")
}

// Load は生成仕様を読み込み、数式評価と別名解決まで済ませた型付き仕様を返す。
func (r *SpecRepository) Load(path string) (*model.MeshBuildSpec, error) {
	if !r.CanLoad(path) {
		return nil, fmt.Errorf("生成仕様の拡張子が .json ではありません: %s", path)
	}
	logging.DefaultLogger().Info("生成仕様読込開始: file=%s", filepath.Base(path))

	b, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("生成仕様ファイルが見つかりません: %s", path)
		}
		return nil, fmt.Errorf("生成仕様ファイルの読み取りに失敗しました: %w", err)
	}

	file := specFile{}
	if err := json.Unmarshal(b, &file); err != nil {
		return nil, fmt.Errorf("生成仕様JSONの解析に失敗しました: %w", err)
	}

	for _, entry := range file.BoneMeshes {
		evaluateExpressionsInMap(entry)
	}
	for _, entry := range file.BoolShapes {
		evaluateExpressionsInMap(entry)
	}

	resolved, err := minteractor.ResolveSpec(&minteractor.RawBuildSpec{
		Name:       file.Name,
		BoneMeshes: file.BoneMeshes,
		BoolShapes: file.BoolShapes,
		GroupMap:   file.GroupMap,
	})
	if err != nil {
		return nil, err
	}
	logging.DefaultLogger().Info("生成仕様読込完了: name=%s bones=%d", resolved.Name, len(resolved.BoneMeshes))
	return resolved, nil
}

// evaluateExpressionsInMap はマップ内の数式文字列を数値へ評価する。
// 評価できない文字列はそのまま残し、後段の型検証に委ねる。
func evaluateExpressionsInMap(entry map[string]any) {
	for key, value := range entry {
		if _, literal := literalValueKeys[key]; literal {
			continue
		}
		entry[key] = evaluateExpressionValue(value)
	}
}

// evaluateExpressionValue は値を再帰的に走査し、数式文字列を数値へ置き換える。
func evaluateExpressionValue(value any) any {
	switch typed := value.(type) {
	case string:
		evaluated, ok := evaluateExpression(typed)
		if !ok {
			return typed
		}
		return evaluated
	case []any:
		for index, item := range typed {
			typed[index] = evaluateExpressionValue(item)
		}
		return typed
	case map[string]any:
		evaluateExpressionsInMap(typed)
		return typed
	default:
		return value
	}
}

// evaluateExpression は数式文字列を定数表付きで評価する。
func evaluateExpression(text string) (float64, bool) {
	expression, err := govaluate.NewEvaluableExpression(text)
	if err != nil {
		return 0, false
	}
	result, err := expression.Evaluate(expressionConstants)
	if err != nil {
		return 0, false
	}
	number, isNumber := result.(float64)
	if !isNumber {
		return 0, false
	}
	return number, true
}
