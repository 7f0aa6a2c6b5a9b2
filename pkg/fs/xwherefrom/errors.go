package xwherefrom

import (
	"errors"
	"fmt"
)

// ErrMissingDependency 系统扩展属性入口不可用。所有 [*DependencyError] 都匹配它。
var ErrMissingDependency = errors.New("xwherefrom: missing external dependency")

// DependencyKind 区分依赖缺失的方式。
type DependencyKind uint8

const (
	// MissingExternalLibrary 无法加载提供扩展属性入口的库。
	MissingExternalLibrary DependencyKind = iota + 1
	// MissingExternalLibraryFunction 库已加载，但缺少所需的函数。
	MissingExternalLibraryFunction
)

// DependencyError 进程级的致命错误：之后的所有读取都会以同样方式失败。
type DependencyError struct {
	Kind     DependencyKind
	Library  string
	Function string
	Cause    error
}

func (e *DependencyError) Error() string {
	if e.Kind == MissingExternalLibraryFunction {
		return fmt.Sprintf("xwherefrom: the external library %q doesn't provide the function %q", e.Library, e.Function)
	}
	return fmt.Sprintf("xwherefrom: could not load the external library %q", e.Library)
}

// Is 使 errors.Is(err, ErrMissingDependency) 成立。
func (e *DependencyError) Is(target error) bool {
	return target == ErrMissingDependency
}

func (e *DependencyError) Unwrap() error {
	return e.Cause
}
