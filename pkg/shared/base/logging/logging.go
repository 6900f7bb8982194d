// 指示: miu200521358
// Package logging は生成処理共通のロガー契約と既定ロガーを提供する。
package logging

import (
	"fmt"
	"os"
	"sync"

	charmlog "github.com/charmbracelet/log"
)

// LogLevel はログ出力レベルを表す。
type LogLevel int

const (
	// LOG_LEVEL_INFO は通常レベルを表す。
	LOG_LEVEL_INFO LogLevel = iota
	// LOG_LEVEL_DEBUG は詳細レベルを表す。
	LOG_LEVEL_DEBUG
)

// ILogger は生成処理共通のログ出力契約を表す。
type ILogger interface {
	// Info は通常ログを出力する。
	Info(format string, params ...any)
	// Debug は詳細ログを出力する。
	Debug(format string, params ...any)
	// Warn は警告ログを出力する。
	Warn(format string, params ...any)
	// SetLevel は出力レベルを設定する。
	SetLevel(level LogLevel)
}

var (
	defaultLoggerMutex sync.RWMutex
	defaultLogger      ILogger = NewLogger()
)

// DefaultLogger は既定ロガーを返す。
func DefaultLogger() ILogger {
	defaultLoggerMutex.RLock()
	defer defaultLoggerMutex.RUnlock()
	return defaultLogger
}

// SetDefaultLogger は既定ロガーを差し替え、差し替え前のロガーを返す。
func SetDefaultLogger(logger ILogger) ILogger {
	defaultLoggerMutex.Lock()
	defer defaultLoggerMutex.Unlock()
	previous := defaultLogger
	defaultLogger = logger
	return previous
}

// charmLogger は charmbracelet/log を用いた標準実装を表す。
type charmLogger struct {
	inner *charmlog.Logger
}

// NewLogger は標準エラー出力向けロガーを生成する。
func NewLogger() ILogger {
	return &charmLogger{
		inner: charmlog.NewWithOptions(os.Stderr, charmlog.Options{
			Prefix: "mu_bone_mesh",
			Level:  charmlog.InfoLevel,
		}),
	}
}

// Info は通常ログを出力する。
func (l *charmLogger) Info(format string, params ...any) {
	if l == nil || l.inner == nil {
		return
	}
	l.inner.Infof(format, params...)
}

// Debug は詳細ログを出力する。
func (l *charmLogger) Debug(format string, params ...any) {
	if l == nil || l.inner == nil {
		return
	}
	l.inner.Debugf(format, params...)
}

// Warn は警告ログを出力する。
func (l *charmLogger) Warn(format string, params ...any) {
	if l == nil || l.inner == nil {
		return
	}
	l.inner.Warnf(format, params...)
}

// SetLevel は出力レベルを設定する。
func (l *charmLogger) SetLevel(level LogLevel) {
	if l == nil || l.inner == nil {
		return
	}
	if level == LOG_LEVEL_DEBUG {
		l.inner.SetLevel(charmlog.DebugLevel)
		return
	}
	l.inner.SetLevel(charmlog.InfoLevel)
}

// MemoryLogger はテスト用にログ行を保持するロガーを表す。
type MemoryLogger struct {
	mutex sync.Mutex
	level LogLevel
	lines []string
}

// NewMemoryLogger はメモリ保持ロガーを生成する。
func NewMemoryLogger() *MemoryLogger {
	return &MemoryLogger{level: LOG_LEVEL_INFO}
}

// Info は通常ログを記録する。
func (l *MemoryLogger) Info(format string, params ...any) {
	l.append("INFO", format, params...)
}

// Debug は詳細ログを記録する。
func (l *MemoryLogger) Debug(format string, params ...any) {
	if l == nil {
		return
	}
	l.mutex.Lock()
	level := l.level
	l.mutex.Unlock()
	if level < LOG_LEVEL_DEBUG {
		return
	}
	l.append("DEBUG", format, params...)
}

// Warn は警告ログを記録する。
func (l *MemoryLogger) Warn(format string, params ...any) {
	l.append("WARN", format, params...)
}

// SetLevel は出力レベルを設定する。
func (l *MemoryLogger) SetLevel(level LogLevel) {
	if l == nil {
		return
	}
	l.mutex.Lock()
	defer l.mutex.Unlock()
	l.level = level
}

// Lines は記録済みログ行を返す。
func (l *MemoryLogger) Lines() []string {
	if l == nil {
		return nil
	}
	l.mutex.Lock()
	defer l.mutex.Unlock()
	return append([]string(nil), l.lines...)
}

// append はログ行を追記する。
func (l *MemoryLogger) append(label string, format string, params ...any) {
	if l == nil {
		return
	}
	l.mutex.Lock()
	defer l.mutex.Unlock()
	l.lines = append(l.lines, "["+label+"] "+fmt.Sprintf(format, params...))
}
