package xlog

import (
	"sync"
	"sync/atomic"
)

// 库代码在未注入 Logger 时使用全局 Logger。
var global atomic.Pointer[RootLogger]

var builtinDefault = sync.OnceValue(func() RootLogger {
	logger, _, err := New().Build()
	if err != nil {
		return Discard()
	}
	return logger
})

// Default 返回全局 Logger。未调用 [SetDefault] 时为 stderr、Info 级别、text 格式。
func Default() RootLogger {
	if l := global.Load(); l != nil {
		return *l
	}
	return builtinDefault()
}

// SetDefault 替换全局 Logger。nil 忽略。
func SetDefault(l RootLogger) {
	if l == nil {
		return
	}
	global.Store(&l)
}
