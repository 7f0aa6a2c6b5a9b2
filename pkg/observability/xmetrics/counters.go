package xmetrics

import (
	"context"
	"fmt"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
)

const (
	metricWalkDirectories = "wherefrom.walk.directories"
	metricWalkValues      = "wherefrom.walk.values"
	metricWalkErrors      = "wherefrom.walk.errors"
	metricWalkIgnored     = "wherefrom.walk.ignored"
)

// WalkCounters 记录一次遍历中的事件计数。实现必须并发安全。
type WalkCounters interface {
	// Directory 列举了一个目录。
	Directory(ctx context.Context)
	// Value 读取到一个值。
	Value(ctx context.Context)
	// Error 记录了一个错误。
	Error(ctx context.Context, kind string)
	// Ignored 静默丢弃了一个错误。
	Ignored(ctx context.Context, kind string)
}

// NoopWalkCounters 是空实现。
type NoopWalkCounters struct{}

func (NoopWalkCounters) Directory(context.Context)       {}
func (NoopWalkCounters) Value(context.Context)           {}
func (NoopWalkCounters) Error(context.Context, string)   {}
func (NoopWalkCounters) Ignored(context.Context, string) {}

// NewOTelWalkCounters 创建基于 OpenTelemetry Int64Counter 的计数器。
func NewOTelWalkCounters(opts ...Option) (WalkCounters, error) {
	cfg := newOTelConfig(opts)
	meter := cfg.meterProvider.Meter(cfg.instrumentationName)

	c := &otelWalkCounters{}
	for _, def := range []struct {
		target *metric.Int64Counter
		name   string
		desc   string
	}{
		{&c.directories, metricWalkDirectories, "directories listed"},
		{&c.values, metricWalkValues, "values read"},
		{&c.errors, metricWalkErrors, "errors reported"},
		{&c.ignored, metricWalkIgnored, "errors ignored"},
	} {
		counter, err := meter.Int64Counter(def.name,
			metric.WithDescription(def.desc),
			metric.WithUnit("1"),
		)
		if err != nil {
			return nil, fmt.Errorf("%w: %s: %w", ErrCreateInstrument, def.name, err)
		}
		*def.target = counter
	}
	return c, nil
}

type otelWalkCounters struct {
	directories metric.Int64Counter
	values      metric.Int64Counter
	errors      metric.Int64Counter
	ignored     metric.Int64Counter
}

func (c *otelWalkCounters) Directory(ctx context.Context) {
	c.directories.Add(ctx, 1)
}

func (c *otelWalkCounters) Value(ctx context.Context) {
	c.values.Add(ctx, 1)
}

func (c *otelWalkCounters) Error(ctx context.Context, kind string) {
	c.errors.Add(ctx, 1, metric.WithAttributes(attribute.String("kind", kind)))
}

func (c *otelWalkCounters) Ignored(ctx context.Context, kind string) {
	c.ignored.Add(ctx, 1, metric.WithAttributes(attribute.String("kind", kind)))
}
