package xfserr

import (
	"errors"
	"slices"
)

// 默认值。
const (
	// DefaultOperationVerb 未注册动词的操作使用的描述。
	DefaultOperationVerb = "process"

	// DefaultFileType 未指定文件类型时使用的描述。
	DefaultFileType = "file"
)

// FileError 处理单个文件系统路径时发生的错误。
//
// 字段是否有意义取决于 Kind：ErrorNumber、ErrorName、OperationVerb、FileType
// 只对底层错误（[Kind.IsLowLevel]）有意义；Value 只对 [UnexpectedWhereFromValue] 有意义。
type FileError struct {
	// Kind 错误类型。
	Kind Kind

	// Path 涉及的文件系统路径。
	Path string

	// ErrorNumber 原始 errno 编号。
	ErrorNumber int

	// ErrorName errno 的符号名称，如 "ENOENT"；没有已知名称时为 [UnknownName]。
	ErrorName string

	// OperationVerb 失败操作的描述，如 "read the 'where from' value of"。
	OperationVerb string

	// FileType 用于消息中的文件类型，如 "file" 或 "directory"。
	FileType string

	// Value 解码得到的、形状不符的属性值。
	Value any

	// Cause 底层原因（errno 或解码错误），可为 nil。
	Cause error
}

// Error 根据 Kind 查表渲染错误消息。
func (e *FileError) Error() string {
	return render(e)
}

// Unwrap 返回底层原因，使 errors.Is(err, unix.ENOENT) 之类的判断可用。
func (e *FileError) Unwrap() error {
	return e.Cause
}

// Is 让两个 FileError 在 Kind 与 Path 相同时视为匹配，
// 便于 errors.Is(err, &FileError{Kind: MissingFile, Path: p})。
// 目标的零值字段不参与比较。
func (e *FileError) Is(target error) bool {
	t, ok := target.(*FileError)
	if !ok {
		return false
	}
	if t.Kind != e.Kind {
		return false
	}
	return t.Path == "" || t.Path == e.Path
}

// KindOf 返回错误链中第一个 FileError 的类型。
func KindOf(err error) (Kind, bool) {
	var fe *FileError
	if errors.As(err, &fe) {
		return fe.Kind, true
	}
	return 0, false
}

// IsKind 报告错误链中的 FileError 是否属于给定类型之一。
func IsKind(err error, kinds ...Kind) bool {
	k, ok := KindOf(err)
	return ok && slices.Contains(kinds, k)
}

// NewValueError 创建值错误（[MalformedWhereFromValue] 或 [UnexpectedWhereFromValue]）。
func NewValueError(kind Kind, path string, value any, cause error) *FileError {
	return &FileError{
		Kind:  kind,
		Path:  path,
		Value: value,
		Cause: cause,
	}
}
