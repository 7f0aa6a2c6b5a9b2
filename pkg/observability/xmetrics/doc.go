// Package xmetrics 提供遍历过程的可观测性接口（tracing + metrics）。
//
// 遍历器只依赖 [Observer] 与 [WalkCounters] 接口，默认实现基于 OpenTelemetry；
// 未配置时使用 [NoopObserver] 与 [NoopWalkCounters]。
//
//	obs, _ := xmetrics.NewOTelObserver()
//	ctx, span := xmetrics.StartWalk(ctx, obs, xmetrics.WalkInfo{Roots: len(roots)})
//	defer span.End(xmetrics.WalkOutcome{Values: n, Err: err})
//
// # 指标命名
//
//   - wherefrom.walk.duration（属性 wherefrom.aborted）
//   - wherefrom.walk.directories
//   - wherefrom.walk.values
//   - wherefrom.walk.errors（属性 kind）
//   - wherefrom.walk.ignored（属性 kind）
//
// [CollectWalkSummary] 从 sdk/metric Reader 中读回这些计数。
package xmetrics
