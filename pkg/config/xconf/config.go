package xconf

import (
	"fmt"
	"strings"

	"github.com/otmyalme/wherefrom/pkg/observability/xlog"
)

// Format 定义配置文件格式。
type Format string

// 支持的配置格式。
const (
	// FormatYAML YAML 格式。
	FormatYAML Format = "yaml"

	// FormatJSON JSON 格式。
	FormatJSON Format = "json"
)

// maxIndent 缩进上限，超过时输出已无可读性可言。
const maxIndent = 16

// Settings 命令行工具的全部配置。
type Settings struct {
	Log    LogSettings    `koanf:"log"`
	Output OutputSettings `koanf:"output"`
	// Stats 遍历结束后以 Info 级别记录计数汇总。
	Stats bool `koanf:"stats"`
	// Jobs 并发遍历的根路径数，0 表示不限制。
	Jobs int `koanf:"jobs"`
}

// LogSettings 日志配置。
type LogSettings struct {
	Level  string `koanf:"level"`
	Format string `koanf:"format"`
	// File 非空时写入按大小轮转的日志文件。
	File       string `koanf:"file"`
	MaxSizeMB  int    `koanf:"max_size_mb"`
	MaxBackups int    `koanf:"max_backups"`
	AddSource  bool   `koanf:"add_source"`
}

// OutputSettings 结果输出配置。
type OutputSettings struct {
	Indent int `koanf:"indent"`
}

// Defaults 返回默认配置。
func Defaults() Settings {
	return Settings{
		Log: LogSettings{
			Level:      "info",
			Format:     "text",
			MaxSizeMB:  100,
			MaxBackups: 3,
		},
		Output: OutputSettings{Indent: 2},
		Jobs:   1,
	}
}

// knownKeys 所有合法的叶子键。
var knownKeys = map[string]struct{}{
	"log.level":       {},
	"log.format":      {},
	"log.file":        {},
	"log.max_size_mb": {},
	"log.max_backups": {},
	"log.add_source":  {},
	"output.indent":   {},
	"stats":           {},
	"jobs":            {},
}

// Validate 检查配置值是否合法。
func (s Settings) Validate() error {
	if _, err := xlog.ParseLevel(s.Log.Level); err != nil {
		return fmt.Errorf("%w: log.level: %w", ErrInvalidSetting, err)
	}
	switch strings.ToLower(strings.TrimSpace(s.Log.Format)) {
	case "", "text", "json":
	default:
		return fmt.Errorf("%w: log.format: got %q, want text or json", ErrInvalidSetting, s.Log.Format)
	}
	if s.Log.MaxSizeMB < 0 {
		return fmt.Errorf("%w: log.max_size_mb: got %d, want >= 0", ErrInvalidSetting, s.Log.MaxSizeMB)
	}
	if s.Log.MaxBackups < 0 {
		return fmt.Errorf("%w: log.max_backups: got %d, want >= 0", ErrInvalidSetting, s.Log.MaxBackups)
	}
	if s.Output.Indent < 0 || s.Output.Indent > maxIndent {
		return fmt.Errorf("%w: output.indent: got %d, want 0~%d", ErrInvalidSetting, s.Output.Indent, maxIndent)
	}
	if s.Jobs < 0 {
		return fmt.Errorf("%w: jobs: got %d, want >= 0", ErrInvalidSetting, s.Jobs)
	}
	return nil
}
