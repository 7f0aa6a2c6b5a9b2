// wherefrom 读取文件的 "where from" 扩展属性，把结果以 JSON 对象输出到 stdout。
//
// 用法:
//
//	wherefrom [选项] [PATH...]
//
// 目录按广度优先递归遍历，其他路径直接读取。每条文件错误在 stderr 输出一行。
//
// 选项:
//
//	-c, --config   配置文件路径（.yaml/.yml/.json），环境变量 WHEREFROM_CONFIG
//	--log-level    日志级别 debug/info/warn/error（默认: info）
//	--log-format   日志格式 text/json（默认: text）
//	--log-file     日志文件路径，按大小轮转（默认: stderr）
//	--indent       JSON 缩进空格数，0 表示紧凑输出（默认: 2）
//	--stats        遍历结束后记录计数汇总
//	-j, --jobs     并发遍历的根路径数，0 表示不限制（默认: 1）
//
// 命令行选项覆盖配置文件中的同名设置。
//
// 退出码:
//
//	0: 遍历完成（即使存在文件错误）
//	1: 配置错误或系统扩展属性入口不可用
//	2: 参数错误
package main

import (
	"context"
	"os"
)

// 版本信息，可通过 -ldflags "-X main.Version=..." 注入。
var (
	Version   = "0.1.0-dev"
	GitCommit = "unknown"
)

func main() {
	os.Exit(run(context.Background(), os.Args, os.Stdout, os.Stderr))
}
