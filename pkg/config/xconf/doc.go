// Package xconf 加载命令行工具的配置文件，基于 koanf 实现。
//
// # 支持的格式
//
//   - YAML：.yaml, .yml
//   - JSON：.json
//
// # 配置键
//
//	log:
//	  level: info        # debug/info/warn/error
//	  format: text       # text/json
//	  file: ""           # 为空时输出到 stderr
//	  max_size_mb: 100
//	  max_backups: 3
//	  add_source: false
//	output:
//	  indent: 2          # JSON 缩进空格数，0 表示紧凑输出
//	stats: false         # 遍历结束后记录计数汇总
//	jobs: 1              # 并发遍历的根路径数，0 表示不限制
//
// 文件中缺失的键保留 [Defaults] 中的值；未知键视为错误，避免拼写错误被静默忽略。
//
// Unmarshal 使用 mapstructure，允许弱类型转换（字符串 "2" 可转为 int 2）。
package xconf
