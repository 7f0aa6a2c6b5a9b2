package xwalk

import (
	"context"

	"golang.org/x/sync/errgroup"
)

// WalkParallel 用至多 jobs 个 goroutine 分别遍历每个根路径。
//
// 每个根路径独立遍历，结果仍按根路径顺序拼接，与 [Walker.Walk] 的输出一致。
// jobs <= 0 时不限制并发数。任一根路径遇到依赖错误时返回第一个错误，
// 此时 Result 只包含在出错根路径之前完整遍历的根路径的结果。
func (w *Walker) WalkParallel(ctx context.Context, jobs int, roots ...string) (Result, error) {
	if jobs == 1 || len(roots) <= 1 {
		return w.Walk(ctx, roots...)
	}

	results := make([]Result, len(roots))
	errs := make([]error, len(roots))
	var g errgroup.Group
	if jobs > 0 {
		g.SetLimit(jobs)
	}
	for i, root := range roots {
		g.Go(func() error {
			results[i], errs[i] = w.Walk(ctx, root)
			return errs[i]
		})
	}
	firstErr := g.Wait()

	var merged Result
	for i := range roots {
		if errs[i] != nil {
			return merged, firstErr
		}
		merged.Values = append(merged.Values, results[i].Values...)
		merged.Errors = append(merged.Errors, results[i].Errors...)
	}
	return merged, nil
}
