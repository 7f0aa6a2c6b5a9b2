package xlog

import (
	"fmt"
	"log/slog"
	"time"
)

// =============================================================================
// 常用属性 Key 常量
// =============================================================================

const (
	// KeyError 错误字段
	KeyError = "error"

	// KeyPath 文件系统路径
	KeyPath = "path"

	// KeyRoot 遍历的根路径
	KeyRoot = "root"

	// KeyKind 错误类型
	KeyKind = "kind"

	// KeyErrno errno 符号名称
	KeyErrno = "errno"

	// KeyOperation 失败的操作（getxattr/readdir/stat）
	KeyOperation = "operation"

	// KeyCount 计数
	KeyCount = "count"

	// KeyDuration 耗时
	KeyDuration = "duration"
)

// =============================================================================
// 便捷属性构造函数
// =============================================================================

// Err 创建错误属性。err 为 nil 时返回空属性（会被 slog 忽略）。
//
//	if err != nil {
//	    logger.Error(ctx, "walk aborted", xlog.Err(err))
//	}
func Err(err error) slog.Attr {
	if err == nil {
		return slog.Attr{}
	}
	return slog.String(KeyError, err.Error())
}

// Path 创建路径属性
func Path(p string) slog.Attr {
	return slog.String(KeyPath, p)
}

// Root 创建根路径属性
func Root(p string) slog.Attr {
	return slog.String(KeyRoot, p)
}

// Kind 创建错误类型属性
func Kind(k fmt.Stringer) slog.Attr {
	return slog.String(KeyKind, k.String())
}

// Errno 创建 errno 名称属性
func Errno(name string) slog.Attr {
	return slog.String(KeyErrno, name)
}

// Operation 创建操作名属性
func Operation(name string) slog.Attr {
	return slog.String(KeyOperation, name)
}

// Count 创建计数属性
func Count(n int) slog.Attr {
	return slog.Int(KeyCount, n)
}

// Duration 创建耗时属性
func Duration(d time.Duration) slog.Attr {
	return slog.String(KeyDuration, d.String())
}
