// 指示: miu200521358
package minteractor

import (
	"fmt"
	"sort"

	"github.com/miu200521358/mu_bone_mesh/pkg/domain/model/merrors"
)

const groupRenameTempPrefix = "__mu_bone_mesh_tmp_"

// GroupRenameStep は頂点グループ改名1手を表す。
type GroupRenameStep struct {
	Source      string
	Destination string
}

// PlanGroupRenames は頂点グループ対応表から衝突しない改名手順を計画する。
// src == dst の項は除外する。多対一の対応はマージ前処理が必要なため、
// 衝突する変換先を列挙したエラーで拒否する。
// 変換先が既存名かつ自身も変換元でない場合は名称衝突エラーとする。
// 循環・連鎖は一時名を経由してから、変換先が残存変換元でない手から順に消化する。
func PlanGroupRenames(mapping map[string]string, existing []string) ([]GroupRenameStep, error) {
	existingSet := map[string]struct{}{}
	for _, name := range existing {
		existingSet[name] = struct{}{}
	}

	active := map[string]string{}
	for src, dst := range mapping {
		if src == dst {
			continue
		}
		if _, exists := existingSet[src]; !exists {
			return nil, merrors.NewMissingTargetError("頂点グループ", src)
		}
		active[src] = dst
	}
	if len(active) == 0 {
		return []GroupRenameStep{}, nil
	}

	if err := rejectMergeDestinations(active); err != nil {
		return nil, err
	}

	sources := map[string]struct{}{}
	usedNames := map[string]struct{}{}
	for name := range existingSet {
		usedNames[name] = struct{}{}
	}
	for src, dst := range active {
		sources[src] = struct{}{}
		usedNames[src] = struct{}{}
		usedNames[dst] = struct{}{}
	}

	conflicts := []string{}
	for _, dst := range active {
		if _, exists := existingSet[dst]; !exists {
			continue
		}
		if _, isSource := sources[dst]; isSource {
			continue
		}
		conflicts = append(conflicts, dst)
	}
	if len(conflicts) > 0 {
		sort.Strings(conflicts)
		return nil, merrors.NewNameConflictError(conflicts)
	}

	steps := []GroupRenameStep{}

	// 変換先が別の変換元でもある項は一時名を経由させ、循環を断ち切る。
	for _, src := range sortedKeys(active) {
		dst := active[src]
		if _, dstIsSource := sources[dst]; !dstIsSource {
			continue
		}
		temp := uniqueTempName(src, usedNames)
		usedNames[temp] = struct{}{}
		steps = append(steps, GroupRenameStep{Source: src, Destination: temp})
		delete(active, src)
		active[temp] = dst
	}

	// 変換先が残存変換元でない手から順に消化する。
	for len(active) > 0 {
		remaining := map[string]struct{}{}
		for src := range active {
			remaining[src] = struct{}{}
		}
		progressed := false
		for _, src := range sortedKeys(active) {
			dst := active[src]
			if _, blocked := remaining[dst]; blocked {
				continue
			}
			steps = append(steps, GroupRenameStep{Source: src, Destination: dst})
			delete(active, src)
			delete(remaining, src)
			progressed = true
		}
		if !progressed {
			return nil, merrors.NewInternalInconsistencyError(
				"改名手順を消化できません(一時名挿入後の循環): %v", sortedKeys(active))
		}
	}
	return steps, nil
}

// rejectMergeDestinations は多対一の変換先を検出して拒否する。
func rejectMergeDestinations(active map[string]string) error {
	counts := map[string]int{}
	for _, dst := range active {
		counts[dst]++
	}
	merged := []string{}
	for dst, count := range counts {
		if count > 1 {
			merged = append(merged, dst)
		}
	}
	if len(merged) == 0 {
		return nil
	}
	sort.Strings(merged)
	return merrors.NewMergeRequiredError(merged)
}

// uniqueTempName は使用中の名前と重複しない一時名を生成する。
func uniqueTempName(src string, used map[string]struct{}) string {
	candidate := groupRenameTempPrefix + src
	if _, exists := used[candidate]; !exists {
		return candidate
	}
	for index := 1; ; index++ {
		numbered := fmt.Sprintf("%s%d_%s", groupRenameTempPrefix, index, src)
		if _, exists := used[numbered]; !exists {
			return numbered
		}
	}
}

// sortedKeys は表のキーを昇順で返す。
func sortedKeys(table map[string]string) []string {
	keys := make([]string, 0, len(table))
	for key := range table {
		keys = append(keys, key)
	}
	sort.Strings(keys)
	return keys
}
