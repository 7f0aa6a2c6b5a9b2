package xlog

import (
	"fmt"
	"log/slog"
	"strings"
)

// Level 日志级别，取值与 slog.Level 相同。
type Level slog.Level

const (
	LevelDebug = Level(slog.LevelDebug)
	LevelInfo  = Level(slog.LevelInfo)
	LevelWarn  = Level(slog.LevelWarn)
	LevelError = Level(slog.LevelError)
)

// levelNames 是配置文件和命令行接受的级别名，按严重程度排列。
var levelNames = []struct {
	name  string
	level Level
}{
	{"debug", LevelDebug},
	{"info", LevelInfo},
	{"warn", LevelWarn},
	{"error", LevelError},
}

// String 返回 slog 的大写名称，如 "WARN" 或 "INFO+2"。
func (l Level) String() string {
	return slog.Level(l).String()
}

// LevelNames 返回可被 [ParseLevel] 解析的级别名。
func LevelNames() []string {
	names := make([]string, len(levelNames))
	for i, n := range levelNames {
		names[i] = n.name
	}
	return names
}

// ParseLevel 解析级别名，大小写不敏感并忽略首尾空白；"warning" 等同于 "warn"。
func ParseLevel(s string) (Level, error) {
	name := strings.ToLower(strings.TrimSpace(s))
	if name == "warning" {
		name = "warn"
	}
	for _, n := range levelNames {
		if n.name == name {
			return n.level, nil
		}
	}
	return LevelInfo, fmt.Errorf("xlog: unknown level %q, want one of %s", s, strings.Join(LevelNames(), ", "))
}
