package xfserr

import (
	"errors"
	"fmt"
	"sync"
	"syscall"
)

// 通配名称。
const (
	// AllOperations 注册时表示"所有没有更具体注册的操作"。
	AllOperations = "ALL"

	// UnexpectedName 已知错误名称没有匹配注册时使用的兜底名称。
	UnexpectedName = "UNEXPECTED"

	// UnknownName 没有已知符号名称的错误号使用的名称。
	UnknownName = "UNKNOWN"
)

type registryKey struct {
	name      string
	operation string
}

// Registry 从 (错误名称, 操作) 到错误类型的映射，以及操作到描述动词的映射。
//
// 注册是单调的：冲突注册返回 [*RegistrationError] 且不覆盖已有条目，
// 完全相同的重复注册是空操作。Classify 可并发调用。
type Registry struct {
	mu    sync.RWMutex
	kinds map[registryKey]Kind
	verbs map[string]string
}

// NewRegistry 创建空注册表。通常应使用 [Default] 或 [RegisterDefaults]。
func NewRegistry() *Registry {
	return &Registry{
		kinds: make(map[registryKey]Kind),
		verbs: make(map[string]string),
	}
}

// Register 将错误名称关联到底层错误类型。
// 未指定 operations 时注册到 [AllOperations]。
//
// 任一操作冲突时返回错误，且本次调用不写入任何条目。
func (r *Registry) Register(name string, kind Kind, operations ...string) error {
	if name == "" {
		return fmt.Errorf("%w: empty error name", ErrInvalidRegistration)
	}
	if !kind.IsLowLevel() {
		return fmt.Errorf("%w: %s is not a low-level kind", ErrInvalidRegistration, kind)
	}
	if len(operations) == 0 {
		operations = []string{AllOperations}
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	for _, op := range operations {
		if op == "" {
			return fmt.Errorf("%w: empty operation for %s", ErrInvalidRegistration, name)
		}
		if existing, ok := r.kinds[registryKey{name, op}]; ok && existing != kind {
			return &RegistrationError{
				Name:      name,
				Operation: op,
				Existing:  existing.String(),
				Proposed:  kind.String(),
			}
		}
	}
	for _, op := range operations {
		r.kinds[registryKey{name, op}] = kind
	}
	return nil
}

// RegisterOperation 为操作关联一个描述动词，用于 "Could not <verb> ..." 消息。
func (r *Registry) RegisterOperation(operation, verb string) error {
	if operation == "" || verb == "" {
		return fmt.Errorf("%w: empty operation or verb", ErrInvalidRegistration)
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if existing, ok := r.verbs[operation]; ok && existing != verb {
		return &RegistrationError{
			Operation: operation,
			Existing:  existing,
			Proposed:  verb,
		}
	}
	r.verbs[operation] = verb
	return nil
}

// Verb 返回操作的描述动词，未注册时返回 [DefaultOperationVerb]。
func (r *Registry) Verb(operation string) string {
	r.mu.RLock()
	defer r.mu.RUnlock()
	if verb, ok := r.verbs[operation]; ok {
		return verb
	}
	return DefaultOperationVerb
}

// Classify 为 errno 构造最具体的 FileError。
// errno 的符号名称由平台决定；没有名称时按 [UnknownName] 解析。
func (r *Registry) Classify(errno syscall.Errno, operation, path, fileType string) *FileError {
	name := errnoName(errno)
	if name == "" {
		name = UnknownName
	}
	return r.ClassifyName(int(errno), name, operation, path, fileType)
}

// ClassifyName 以显式的错误名称解析，不依赖平台的 errno 名称表。
//
// 解析顺序：(name, operation)、(name, ALL)，然后是兜底名称的 (x, operation)、(x, ALL)。
// 已知名称的兜底是 [UnexpectedName]，终点为 [UnexpectedFileError]；
// [UnknownName] 的终点为 [UnknownFileError]。
func (r *Registry) ClassifyName(number int, name, operation, path, fileType string) *FileError {
	if name == "" {
		name = UnknownName
	}
	if fileType == "" {
		fileType = DefaultFileType
	}
	return &FileError{
		Kind:          r.resolve(name, operation),
		Path:          path,
		ErrorNumber:   number,
		ErrorName:     name,
		OperationVerb: r.Verb(operation),
		FileType:      fileType,
		Cause:         syscall.Errno(number),
	}
}

// ClassifyError 从错误链中提取 errno 并分类。
// 链中已有 FileError 时原样返回；没有 errno 时归为 [UnexpectedFileError]，
// 以原错误文本作为错误名称。
func (r *Registry) ClassifyError(err error, operation, path, fileType string) *FileError {
	if err == nil {
		return nil
	}
	var fe *FileError
	if errors.As(err, &fe) {
		return fe
	}
	var errno syscall.Errno
	if errors.As(err, &errno) {
		return r.Classify(errno, operation, path, fileType)
	}
	if fileType == "" {
		fileType = DefaultFileType
	}
	return &FileError{
		Kind:          UnexpectedFileError,
		Path:          path,
		ErrorName:     err.Error(),
		OperationVerb: r.Verb(operation),
		FileType:      fileType,
		Cause:         err,
	}
}

func (r *Registry) resolve(name, operation string) Kind {
	fallback, terminal := UnexpectedName, UnexpectedFileError
	if name == UnknownName {
		fallback, terminal = UnknownName, UnknownFileError
	}

	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, k := range [...]registryKey{
		{name, operation},
		{name, AllOperations},
		{fallback, operation},
		{fallback, AllOperations},
	} {
		if kind, ok := r.kinds[k]; ok {
			return kind
		}
	}
	return terminal
}
