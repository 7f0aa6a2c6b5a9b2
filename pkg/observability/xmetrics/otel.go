package xmetrics

import (
	"context"
	"fmt"
	"sync"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/metric"
	"go.opentelemetry.io/otel/trace"
)

const (
	defaultInstrumentationName = "github.com/otmyalme/wherefrom/xwalk"

	spanWalk = "xwalk.walk"

	metricWalkDuration = "wherefrom.walk.duration"

	attrRoots   = "wherefrom.roots"
	attrValues  = "wherefrom.values"
	attrErrors  = "wherefrom.errors"
	attrAborted = "wherefrom.aborted"
)

type otelConfig struct {
	instrumentationName string
	tracerProvider      trace.TracerProvider
	meterProvider       metric.MeterProvider
}

// Option 配置 OTel 实现。
type Option func(*otelConfig)

// WithInstrumentationName 设置 instrumentation 名称。空值忽略。
func WithInstrumentationName(name string) Option {
	return func(cfg *otelConfig) {
		if name != "" {
			cfg.instrumentationName = name
		}
	}
}

// WithTracerProvider 设置 TracerProvider，默认为全局 Provider。nil 忽略。
func WithTracerProvider(provider trace.TracerProvider) Option {
	return func(cfg *otelConfig) {
		if provider != nil {
			cfg.tracerProvider = provider
		}
	}
}

// WithMeterProvider 设置 MeterProvider，默认为全局 Provider。nil 忽略。
func WithMeterProvider(provider metric.MeterProvider) Option {
	return func(cfg *otelConfig) {
		if provider != nil {
			cfg.meterProvider = provider
		}
	}
}

func newOTelConfig(opts []Option) *otelConfig {
	cfg := &otelConfig{
		instrumentationName: defaultInstrumentationName,
		tracerProvider:      otel.GetTracerProvider(),
		meterProvider:       otel.GetMeterProvider(),
	}
	for _, opt := range opts {
		if opt != nil {
			opt(cfg)
		}
	}
	return cfg
}

// NewOTelObserver 创建基于 OpenTelemetry 的 Observer。
//
// 每次遍历产生一个 xwalk.walk 跨度，并在 wherefrom.walk.duration 中记录耗时（秒）。
func NewOTelObserver(opts ...Option) (Observer, error) {
	cfg := newOTelConfig(opts)
	duration, err := cfg.meterProvider.Meter(cfg.instrumentationName).Float64Histogram(
		metricWalkDuration,
		metric.WithDescription("walk duration"),
		metric.WithUnit("s"),
	)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %w", ErrCreateInstrument, metricWalkDuration, err)
	}
	return &otelObserver{
		tracer:   cfg.tracerProvider.Tracer(cfg.instrumentationName),
		duration: duration,
	}, nil
}

type otelObserver struct {
	tracer   trace.Tracer
	duration metric.Float64Histogram
}

func (o *otelObserver) StartWalk(ctx context.Context, info WalkInfo) (context.Context, WalkSpan) {
	if ctx == nil {
		ctx = context.Background()
	}
	ctx, span := o.tracer.Start(ctx, spanWalk,
		trace.WithSpanKind(trace.SpanKindInternal),
		trace.WithAttributes(attribute.Int(attrRoots, info.Roots)),
	)
	return ctx, &otelSpan{span: span, observer: o, ctx: ctx, start: time.Now()}
}

type otelSpan struct {
	span     trace.Span
	observer *otelObserver
	ctx      context.Context
	start    time.Time
	once     sync.Once
}

func (s *otelSpan) End(outcome WalkOutcome) {
	s.once.Do(func() {
		s.span.SetAttributes(
			attribute.Int(attrValues, outcome.Values),
			attribute.Int(attrErrors, outcome.Errors),
		)
		if outcome.Aborted() {
			s.span.RecordError(outcome.Err)
			s.span.SetStatus(codes.Error, outcome.Err.Error())
		} else {
			s.span.SetStatus(codes.Ok, "")
		}
		s.span.End()

		s.observer.duration.Record(context.WithoutCancel(s.ctx), time.Since(s.start).Seconds(),
			metric.WithAttributes(attribute.Bool(attrAborted, outcome.Aborted())))
	})
}
