package xlog

import (
	"context"
	"log/slog"
)

// Logger 结构化日志接口。
//
// 方法签名只接受 slog.Attr；ctx 原样交给 slog.Handler。
type Logger interface {
	Debug(ctx context.Context, msg string, attrs ...slog.Attr)
	Info(ctx context.Context, msg string, attrs ...slog.Attr)
	Warn(ctx context.Context, msg string, attrs ...slog.Attr)
	Error(ctx context.Context, msg string, attrs ...slog.Attr)

	// With 返回附加属性的派生 Logger。派生 Logger 与根 Logger 共享级别和失败计数。
	With(attrs ...slog.Attr) Logger
}

// RootLogger 是 [Builder.Build] 返回的根 Logger。
type RootLogger interface {
	Logger

	// SetLevel 调整级别，对所有派生 Logger 生效。
	SetLevel(level Level)
	// CurrentLevel 返回当前级别。
	CurrentLevel() Level
	// Enabled 报告 level 是否会被输出。
	Enabled(ctx context.Context, level Level) bool
	// DroppedRecords 返回写入失败而丢失的日志条数，包括派生 Logger 的。
	DroppedRecords() uint64
}
