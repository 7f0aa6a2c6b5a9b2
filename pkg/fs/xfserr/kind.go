package xfserr

import "strconv"

// Kind 标识 FileError 的具体类型。
type Kind uint8

// 底层错误类型（来自系统调用）。
const (
	// UnknownFileError errno 没有已知的符号名称。零值，作为兜底。
	UnknownFileError Kind = iota
	// MissingFile 目标不存在。遍历时忽略。
	MissingFile
	// NoReadPermission 没有读取（或搜索）权限。
	NoReadPermission
	// TooManySymlinks 解析路径时遍历的符号链接过多（macOS 上限 32 个）。
	TooManySymlinks
	// OverlongPath 路径或某个路径段超出系统长度限制。
	OverlongPath
	// ConcurrentlyReplacedDirectory 期望目录，但在发现与列举之间被替换成了非目录。
	ConcurrentlyReplacedDirectory
	// FileIOError 访问文件系统时发生 I/O 错误。
	FileIOError
	// NoWhereFromValue 目标没有设置 "where from" 属性。
	NoWhereFromValue
	// UnsupportedFileSystem 文件系统不支持扩展属性。
	UnsupportedFileSystem
	// UnsupportedFileSystemObject 该类型的文件系统对象不支持此属性（如 /dev/null）。
	UnsupportedFileSystemObject
	// WhereFromValueLengthMismatch 长度查询与读取之间属性值发生了变化。
	WhereFromValueLengthMismatch
	// SupposedlyImpossibleFileError 文档记载但按本程序的调用方式不应出现的错误。
	SupposedlyImpossibleFileError
	// UnexpectedFileError 已知 errno，但没有专门的类型也没有针对该操作的注册。
	UnexpectedFileError
)

// 值错误类型（来自属性值解码）。
const (
	// MalformedWhereFromValue 属性值不是合法的二进制属性列表。
	MalformedWhereFromValue Kind = iota + UnexpectedFileError + 1
	// UnexpectedWhereFromValue 属性值解码成功，但不是非空字符串列表。
	UnexpectedWhereFromValue
)

var kindNames = [...]string{
	UnknownFileError:              "UnknownFileError",
	MissingFile:                   "MissingFile",
	NoReadPermission:              "NoReadPermission",
	TooManySymlinks:               "TooManySymlinks",
	OverlongPath:                  "OverlongPath",
	ConcurrentlyReplacedDirectory: "ConcurrentlyReplacedDirectory",
	FileIOError:                   "FileIOError",
	NoWhereFromValue:              "NoWhereFromValue",
	UnsupportedFileSystem:         "UnsupportedFileSystem",
	UnsupportedFileSystemObject:   "UnsupportedFileSystemObject",
	WhereFromValueLengthMismatch:  "WhereFromValueLengthMismatch",
	SupposedlyImpossibleFileError: "SupposedlyImpossibleFileError",
	UnexpectedFileError:           "UnexpectedFileError",
	MalformedWhereFromValue:       "MalformedWhereFromValue",
	UnexpectedWhereFromValue:      "UnexpectedWhereFromValue",
}

// String 返回类型名称，用于日志和指标标签。
func (k Kind) String() string {
	if int(k) < len(kindNames) && kindNames[k] != "" {
		return kindNames[k]
	}
	return "Kind(" + strconv.Itoa(int(k)) + ")"
}

// IsLowLevel 报告该类型是否表示系统调用失败。
func (k Kind) IsLowLevel() bool {
	return k <= UnexpectedFileError
}

// IgnoreWhileWalking 报告遍历时是否应静默跳过该类型的错误。
// 只有"路径已消失"（MissingFile）返回 true。
func (k Kind) IgnoreWhileWalking() bool {
	return k == MissingFile
}
