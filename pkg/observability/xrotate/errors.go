package xrotate

import "errors"

var (
	// ErrEmptyFilename 未指定日志文件。
	ErrEmptyFilename = errors.New("xrotate: filename is required")
	// ErrInvalidFilename 路径含空字节或不指向文件（如以分隔符结尾）。
	ErrInvalidFilename = errors.New("xrotate: invalid filename")
	// ErrInvalidMaxSize 单文件大小必须在 1~10240 MB 之间。
	ErrInvalidMaxSize = errors.New("xrotate: invalid max size")
	// ErrInvalidMaxBackups 备份数必须在 0~1024 之间。
	ErrInvalidMaxBackups = errors.New("xrotate: invalid max backups")
	// ErrClosed 文件已关闭。
	ErrClosed = errors.New("xrotate: file is closed")
)
