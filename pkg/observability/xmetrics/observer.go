package xmetrics

import "context"

// WalkInfo 描述一次即将开始的遍历。
type WalkInfo struct {
	// Roots 根路径数量。
	Roots int
}

// WalkOutcome 遍历结束时的汇总。
type WalkOutcome struct {
	Values int
	Errors int
	// Err 仅在遍历因依赖缺失中止时非 nil。
	Err error
}

// Aborted 报告遍历是否中止。
func (o WalkOutcome) Aborted() bool { return o.Err != nil }

// WalkSpan 覆盖一次遍历，End 只生效一次。
type WalkSpan interface {
	End(outcome WalkOutcome)
}

// Observer 为每次遍历开启一个 [WalkSpan]。实现必须并发安全。
type Observer interface {
	StartWalk(ctx context.Context, info WalkInfo) (context.Context, WalkSpan)
}

// NoopObserver 是空实现。
type NoopObserver struct{}

// StartWalk 原样返回 ctx。
func (NoopObserver) StartWalk(ctx context.Context, _ WalkInfo) (context.Context, WalkSpan) {
	if ctx == nil {
		ctx = context.Background()
	}
	return ctx, noopSpan{}
}

type noopSpan struct{}

func (noopSpan) End(WalkOutcome) {}

// StartWalk 通过 observer 开启跨度，保证返回非 nil 的 ctx 与 span。
func StartWalk(ctx context.Context, observer Observer, info WalkInfo) (context.Context, WalkSpan) {
	if ctx == nil {
		ctx = context.Background()
	}
	if observer == nil {
		return ctx, noopSpan{}
	}
	spanCtx, span := observer.StartWalk(ctx, info)
	if spanCtx == nil {
		spanCtx = ctx
	}
	if span == nil {
		span = noopSpan{}
	}
	return spanCtx, span
}
