// 指示: miu200521358
// Package merrors は生成処理のエラー種別と判定関数を提供する。
package merrors

import (
	"errors"
	"fmt"
	"strings"
)

// ShapeError は値の型や要素数が契約と一致しないエラーを表す。
type ShapeError struct {
	Message string
}

// Error はエラーメッセージを返す。
func (e *ShapeError) Error() string {
	return e.Message
}

// NewShapeError は形状エラーを生成する。
func NewShapeError(format string, params ...any) error {
	return &ShapeError{Message: fmt.Sprintf(format, params...)}
}

// IsShapeError は形状エラーか判定する。
func IsShapeError(err error) bool {
	var target *ShapeError
	return errors.As(err, &target)
}

// RangeError は数値が有限・正値などの値域契約を満たさないエラーを表す。
type RangeError struct {
	Message string
}

// Error はエラーメッセージを返す。
func (e *RangeError) Error() string {
	return e.Message
}

// NewRangeError は値域エラーを生成する。
func NewRangeError(format string, params ...any) error {
	return &RangeError{Message: fmt.Sprintf(format, params...)}
}

// IsRangeError は値域エラーか判定する。
func IsRangeError(err error) bool {
	var target *RangeError
	return errors.As(err, &target)
}

// CycleError は参照解決中に循環を検出したエラーを表す。
type CycleError struct {
	Key string
}

// Error はエラーメッセージを返す。
func (e *CycleError) Error() string {
	return fmt.Sprintf("mirror参照が循環しています: %s", e.Key)
}

// NewCycleError は循環エラーを生成する。
func NewCycleError(key string) error {
	return &CycleError{Key: key}
}

// IsCycleError は循環エラーか判定する。
func IsCycleError(err error) bool {
	var target *CycleError
	return errors.As(err, &target)
}

// MissingTargetError は参照先キーが存在しないエラーを表す。
type MissingTargetError struct {
	Key    string
	Target string
}

// Error はエラーメッセージを返す。
func (e *MissingTargetError) Error() string {
	if e.Key == "" {
		return fmt.Sprintf("参照先が存在しません: %s", e.Target)
	}
	return fmt.Sprintf("%s の参照先が存在しません: %s", e.Key, e.Target)
}

// NewMissingTargetError は参照先不在エラーを生成する。
func NewMissingTargetError(key string, target string) error {
	return &MissingTargetError{Key: key, Target: target}
}

// IsMissingTargetError は参照先不在エラーか判定する。
func IsMissingTargetError(err error) bool {
	var target *MissingTargetError
	return errors.As(err, &target)
}

// NameConflictError は名称衝突エラーを表す。
type NameConflictError struct {
	Names []string
}

// Error はエラーメッセージを返す。
func (e *NameConflictError) Error() string {
	return fmt.Sprintf("名称が衝突しています: %s", strings.Join(e.Names, ", "))
}

// NewNameConflictError は名称衝突エラーを生成する。
func NewNameConflictError(names []string) error {
	return &NameConflictError{Names: append([]string(nil), names...)}
}

// IsNameConflictError は名称衝突エラーか判定する。
func IsNameConflictError(err error) bool {
	var target *NameConflictError
	return errors.As(err, &target)
}

// MergeRequiredError は多対一対応によりマージ前処理が必要なエラーを表す。
type MergeRequiredError struct {
	Destinations []string
}

// Error はエラーメッセージを返す。
func (e *MergeRequiredError) Error() string {
	return fmt.Sprintf("複数の変換元が同一の変換先を指しています(マージ前処理が必要です): %s", strings.Join(e.Destinations, ", "))
}

// NewMergeRequiredError はマージ必要エラーを生成する。
func NewMergeRequiredError(destinations []string) error {
	return &MergeRequiredError{Destinations: append([]string(nil), destinations...)}
}

// IsMergeRequiredError はマージ必要エラーか判定する。
func IsMergeRequiredError(err error) bool {
	var target *MergeRequiredError
	return errors.As(err, &target)
}

// InternalInconsistencyError は内部整合性違反を表す。
type InternalInconsistencyError struct {
	Message string
}

// Error はエラーメッセージを返す。
func (e *InternalInconsistencyError) Error() string {
	return e.Message
}

// NewInternalInconsistencyError は内部整合性エラーを生成する。
func NewInternalInconsistencyError(format string, params ...any) error {
	return &InternalInconsistencyError{Message: fmt.Sprintf(format, params...)}
}

// IsInternalInconsistencyError は内部整合性エラーか判定する。
func IsInternalInconsistencyError(err error) bool {
	var target *InternalInconsistencyError
	return errors.As(err, &target)
}
