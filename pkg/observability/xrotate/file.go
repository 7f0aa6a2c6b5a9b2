package xrotate

import (
	"fmt"
	"io"
	"sync/atomic"

	"gopkg.in/natefinch/lumberjack.v2"
)

const (
	// DefaultMaxSizeMB 单个日志文件的默认上限（MB）。
	DefaultMaxSizeMB = 100
	// DefaultMaxBackups 默认保留的备份数。
	DefaultMaxBackups = 3

	limitMaxSizeMB  = 10240
	limitMaxBackups = 1024
)

var _ io.WriteCloser = (*File)(nil)

type config struct {
	maxSizeMB  int
	maxBackups int
}

// Option 配置 [File]。
type Option func(*config)

// WithMaxSize 设置单个文件的大小上限（MB），超过后轮转。
func WithMaxSize(mb int) Option {
	return func(c *config) {
		c.maxSizeMB = mb
	}
}

// WithMaxBackups 设置保留的备份数，0 表示保留全部备份。
func WithMaxBackups(n int) Option {
	return func(c *config) {
		c.maxBackups = n
	}
}

// File 按大小轮转的日志文件，并发安全。
//
// 文件以 0600 权限创建，首次写入时才打开。
type File struct {
	path   string
	logger *lumberjack.Logger
	closed atomic.Bool
}

// Open 创建轮转文件。路径会被规范化，缺失的父目录以 0750 创建。
func Open(filename string, opts ...Option) (*File, error) {
	cfg := config{
		maxSizeMB:  DefaultMaxSizeMB,
		maxBackups: DefaultMaxBackups,
	}
	for _, opt := range opts {
		if opt != nil {
			opt(&cfg)
		}
	}
	if cfg.maxSizeMB <= 0 || cfg.maxSizeMB > limitMaxSizeMB {
		return nil, fmt.Errorf("%w: got %d, want 1~%d", ErrInvalidMaxSize, cfg.maxSizeMB, limitMaxSizeMB)
	}
	if cfg.maxBackups < 0 || cfg.maxBackups > limitMaxBackups {
		return nil, fmt.Errorf("%w: got %d, want 0~%d", ErrInvalidMaxBackups, cfg.maxBackups, limitMaxBackups)
	}

	path, err := preparePath(filename)
	if err != nil {
		return nil, err
	}
	return &File{
		path: path,
		logger: &lumberjack.Logger{
			Filename:   path,
			MaxSize:    cfg.maxSizeMB,
			MaxBackups: cfg.maxBackups,
		},
	}, nil
}

// Path 返回规范化后的文件路径。
func (f *File) Path() string { return f.path }

func (f *File) Write(p []byte) (int, error) {
	if f.closed.Load() {
		return 0, ErrClosed
	}
	n, err := f.logger.Write(p)
	if err != nil && f.closed.Load() {
		return n, ErrClosed
	}
	return n, err
}

// Rotate 立即把当前文件改名为备份并开始新文件。
func (f *File) Rotate() error {
	if f.closed.Load() {
		return ErrClosed
	}
	return f.logger.Rotate()
}

// Close 关闭文件，重复调用返回 [ErrClosed]。
func (f *File) Close() error {
	if f.closed.Swap(true) {
		return ErrClosed
	}
	return f.logger.Close()
}
