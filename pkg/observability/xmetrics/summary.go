package xmetrics

import (
	"context"
	"fmt"

	sdkmetric "go.opentelemetry.io/otel/sdk/metric"
	"go.opentelemetry.io/otel/sdk/metric/metricdata"
)

// WalkSummary 遍历计数的汇总。
type WalkSummary struct {
	// Walks 已结束的遍历次数，只在使用 [NewOTelObserver] 时统计。
	Walks       int64
	Directories int64
	Values      int64
	// Errors 按错误类型统计的已上报错误数。
	Errors map[string]int64
	// Ignored 按错误类型统计的已忽略错误数。
	Ignored map[string]int64
}

// CollectWalkSummary 从 reader 中收集遍历计数并汇总。
// reader 必须已注册到创建 [NewOTelWalkCounters] 时使用的 MeterProvider。
func CollectWalkSummary(ctx context.Context, reader sdkmetric.Reader) (WalkSummary, error) {
	var rm metricdata.ResourceMetrics
	if err := reader.Collect(ctx, &rm); err != nil {
		return WalkSummary{}, fmt.Errorf("%w: %w", ErrCollect, err)
	}

	s := WalkSummary{
		Errors:  make(map[string]int64),
		Ignored: make(map[string]int64),
	}
	for _, sm := range rm.ScopeMetrics {
		for _, m := range sm.Metrics {
			if hist, ok := m.Data.(metricdata.Histogram[float64]); ok && m.Name == metricWalkDuration {
				for _, dp := range hist.DataPoints {
					s.Walks += int64(dp.Count)
				}
				continue
			}
			sum, ok := m.Data.(metricdata.Sum[int64])
			if !ok {
				continue
			}
			for _, dp := range sum.DataPoints {
				switch m.Name {
				case metricWalkDirectories:
					s.Directories += dp.Value
				case metricWalkValues:
					s.Values += dp.Value
				case metricWalkErrors:
					s.Errors[kindOf(dp)] += dp.Value
				case metricWalkIgnored:
					s.Ignored[kindOf(dp)] += dp.Value
				}
			}
		}
	}
	return s, nil
}

func kindOf(dp metricdata.DataPoint[int64]) string {
	if v, ok := dp.Attributes.Value("kind"); ok {
		return v.AsString()
	}
	return "unknown"
}
