// Package observability 提供可观测性相关的子包。
//
// 子包列表：
//   - xlog: 结构化日志，基于 log/slog 扩展
//   - xmetrics: 遍历跨度与计数，基于 OpenTelemetry
//   - xrotate: 按大小轮转的日志文件
//
// 组件未注入实现时使用空实现，不会把数据写到全局 Provider。
package observability
