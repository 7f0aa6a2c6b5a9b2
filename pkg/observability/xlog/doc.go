// Package xlog 基于 log/slog 的结构化日志库。
//
// # 创建 Logger
//
// 使用 Builder 模式（first-error-wins：遇到第一个配置错误后，Build 返回该错误）：
//
//	logger, cleanup, err := xlog.New().
//		SetLevelString("debug").
//		SetFormat("json").
//		SetRotation("/var/log/wherefrom.log", xrotate.WithMaxSize(10)).
//		Build()
//	if err != nil {
//		return err
//	}
//	defer cleanup()
//
// # 全局 Logger
//
// [Default] 返回全局 Logger（惰性创建：stderr、Info 级别、text 格式），
// [SetDefault] 替换它。命令行入口应把构建好的 Logger 显式注入各组件。
//
// # 便捷属性
//
// [Err]、[Path]、[Root]、[Kind]、[Errno]、[Operation]、[Count]、[Duration]。
//
// # 级别与写入失败
//
// [Logger.With] 派生的 Logger 与根 Logger 共享 LevelVar，[RootLogger.SetLevel] 同步生效。
// Handler 写入失败不会返回给调用方，只计入 [RootLogger.DroppedRecords]。
package xlog
