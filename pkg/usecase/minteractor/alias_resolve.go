// 指示: miu200521358
package minteractor

import (
	"sort"

	"github.com/tiendc/go-deepcopy"

	"github.com/miu200521358/mu_bone_mesh/pkg/domain/model/merrors"
)

const mirrorAliasKey = "mirror"

// ResolveDefinitionAliases は名前付き定義表の {mirror: otherKey} 参照を実体化する。
// 解決順は入力キーの昇順で確定し、各解決値は独立したディープコピーとして返す。
// 循環参照は CycleError、参照先不在は MissingTargetError、
// mirror以外のキーを併記した別名レコードは ShapeError とする。
func ResolveDefinitionAliases(table map[string]map[string]any) (map[string]map[string]any, error) {
	resolved := map[string]map[string]any{}
	if len(table) == 0 {
		return resolved, nil
	}

	keys := make([]string, 0, len(table))
	for key := range table {
		keys = append(keys, key)
	}
	sort.Strings(keys)

	cache := map[string]map[string]any{}
	for _, key := range keys {
		entry, err := resolveDefinitionEntry(key, table, map[string]struct{}{}, cache)
		if err != nil {
			return nil, err
		}
		duplicated, err := deepCopyDefinition(entry)
		if err != nil {
			return nil, err
		}
		resolved[key] = duplicated
	}
	return resolved, nil
}

// resolveDefinitionEntry は1キー分の別名参照を深さ優先で解決する。
func resolveDefinitionEntry(
	key string,
	table map[string]map[string]any,
	visiting map[string]struct{},
	cache map[string]map[string]any,
) (map[string]any, error) {
	if cached, exists := cache[key]; exists {
		return cached, nil
	}
	if _, cycling := visiting[key]; cycling {
		return nil, merrors.NewCycleError(key)
	}

	raw, exists := table[key]
	if !exists {
		return nil, merrors.NewMissingTargetError("", key)
	}
	if raw == nil {
		return nil, merrors.NewShapeError("定義が空です: %s", key)
	}

	targetValue, isAlias := raw[mirrorAliasKey]
	if !isAlias {
		cache[key] = raw
		return raw, nil
	}

	if len(raw) != 1 {
		return nil, merrors.NewShapeError("mirror指定に他のキーを併記できません: %s", key)
	}
	target, isString := targetValue.(string)
	if !isString {
		return nil, merrors.NewShapeError("mirror参照先はキー名(文字列)である必要があります: %s", key)
	}
	if _, exists := table[target]; !exists {
		return nil, merrors.NewMissingTargetError(key, target)
	}

	visiting[key] = struct{}{}
	entry, err := resolveDefinitionEntry(target, table, visiting, cache)
	if err != nil {
		return nil, err
	}
	delete(visiting, key)

	cache[key] = entry
	return entry, nil
}

// deepCopyDefinition は定義レコードの独立コピーを生成する。
func deepCopyDefinition(entry map[string]any) (map[string]any, error) {
	var duplicated map[string]any
	if err := deepcopy.Copy(&duplicated, entry); err != nil {
		return nil, merrors.NewInternalInconsistencyError("定義レコードの複製に失敗しました: %v", err)
	}
	return duplicated, nil
}
