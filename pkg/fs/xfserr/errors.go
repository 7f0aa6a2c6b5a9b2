package xfserr

import (
	"errors"
	"fmt"
)

var (
	// ErrExistingRegistration 与已有注册冲突。
	ErrExistingRegistration = errors.New("xfserr: conflicting registration")

	// ErrInvalidRegistration 注册参数无效（名称为空、操作为空或类型不是底层错误）。
	ErrInvalidRegistration = errors.New("xfserr: invalid registration")
)

// RegistrationError 描述一次被拒绝的冲突注册。
// 已有的注册保持不变。
type RegistrationError struct {
	// Name 错误名称；操作动词冲突时为空。
	Name string
	// Operation 操作名称。
	Operation string
	// Existing 已注册的类型名称或动词。
	Existing string
	// Proposed 本次尝试注册的类型名称或动词。
	Proposed string
}

func (e *RegistrationError) Error() string {
	if e.Name == "" {
		return fmt.Sprintf("xfserr: cannot register the verb %q for the operation %q: the verb %q has already been registered for that operation",
			e.Proposed, e.Operation, e.Existing)
	}
	return fmt.Sprintf("xfserr: cannot register %s for %s and the operation %q: %s has already been registered for that name and operation",
		e.Proposed, e.Name, e.Operation, e.Existing)
}

// Is 使 errors.Is(err, ErrExistingRegistration) 成立。
func (e *RegistrationError) Is(target error) bool {
	return target == ErrExistingRegistration
}
