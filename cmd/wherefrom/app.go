package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/google/uuid"
	"github.com/urfave/cli/v3"
	sdkmetric "go.opentelemetry.io/otel/sdk/metric"

	"github.com/otmyalme/wherefrom/pkg/config/xconf"
	"github.com/otmyalme/wherefrom/pkg/fs/xwalk"
	"github.com/otmyalme/wherefrom/pkg/fs/xwherefrom"
	"github.com/otmyalme/wherefrom/pkg/observability/xlog"
	"github.com/otmyalme/wherefrom/pkg/observability/xmetrics"
	"github.com/otmyalme/wherefrom/pkg/observability/xrotate"
	"github.com/otmyalme/wherefrom/pkg/util/xjson"
)

// 退出码。
const (
	exitOK    = 0
	exitFatal = 1
	exitUsage = 2
)

// usageError 参数错误，映射为退出码 2。
type usageError struct {
	err error
}

func (e *usageError) Error() string { return e.err.Error() }

func (e *usageError) Unwrap() error { return e.err }

// app 一次命令行调用。readerOpts 用于在测试中替换读取入口。
type app struct {
	stdout     io.Writer
	stderr     io.Writer
	readerOpts []xwherefrom.Option
}

func run(ctx context.Context, args []string, stdout, stderr io.Writer, readerOpts ...xwherefrom.Option) int {
	a := &app{stdout: stdout, stderr: stderr, readerOpts: readerOpts}
	err := a.command().Run(ctx, args)
	if err == nil {
		return exitOK
	}
	fmt.Fprintf(stderr, "wherefrom: %v\n", err)
	var usage *usageError
	if errors.As(err, &usage) || isCLIUsageError(err) {
		return exitUsage
	}
	return exitFatal
}

// isCLIUsageError 识别未经 OnUsageError 的 flag 解析错误。
func isCLIUsageError(err error) bool {
	msg := err.Error()
	for _, prefix := range []string{
		"flag provided but not defined",
		"flag needs an argument",
		"invalid value",
	} {
		if strings.HasPrefix(msg, prefix) {
			return true
		}
	}
	return false
}

func (a *app) command() *cli.Command {
	return &cli.Command{
		Name:      "wherefrom",
		Usage:     "print the 'where from' values of files as JSON",
		ArgsUsage: "[PATH...]",
		Version:   fmt.Sprintf("%s (commit: %s)", Version, GitCommit),
		Description: "Read the 'where from' extended file attributes of the specified files and print\n" +
			"the gathered values as a JSON object. Directories are searched recursively, and\n" +
			"the attribute of every regular file they contain is read.",
		Writer:          a.stdout,
		ErrWriter:       a.stderr,
		HideHelpCommand: true,
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:      "config",
				Aliases:   []string{"c"},
				Usage:     "load settings from `FILE` (.yaml, .yml or .json)",
				Sources:   cli.EnvVars("WHEREFROM_CONFIG"),
				TakesFile: true,
			},
			&cli.StringFlag{Name: "log-level", Usage: "log level: " + strings.Join(xlog.LevelNames(), ", ")},
			&cli.StringFlag{Name: "log-format", Usage: "log format: text or json"},
			&cli.StringFlag{Name: "log-file", Usage: "write logs to a rotated `FILE` instead of stderr", TakesFile: true},
			&cli.IntFlag{Name: "indent", Usage: "indent the JSON output by `N` spaces, 0 for compact output"},
			&cli.BoolFlag{Name: "stats", Usage: "log walk totals when done"},
			&cli.IntFlag{Name: "jobs", Aliases: []string{"j"}, Usage: "walk up to `N` paths concurrently, 0 for no limit"},
		},
		Action: a.walk,
		OnUsageError: func(_ context.Context, _ *cli.Command, err error, _ bool) error {
			return &usageError{err: err}
		},
		// 由 run 统一映射退出码，禁止 urfave/cli 直接调用 os.Exit
		ExitErrHandler: func(context.Context, *cli.Command, error) {},
	}
}

// settings 加载配置文件并应用命令行覆盖。
func settings(cmd *cli.Command) (xconf.Settings, error) {
	s, err := xconf.Load(cmd.String("config"))
	if err != nil {
		return xconf.Settings{}, err
	}

	if cmd.IsSet("log-level") {
		s.Log.Level = cmd.String("log-level")
	}
	if cmd.IsSet("log-format") {
		s.Log.Format = cmd.String("log-format")
	}
	if cmd.IsSet("log-file") {
		s.Log.File = cmd.String("log-file")
	}
	if cmd.IsSet("indent") {
		s.Output.Indent = cmd.Int("indent")
	}
	if cmd.IsSet("stats") {
		s.Stats = cmd.Bool("stats")
	}
	if cmd.IsSet("jobs") {
		s.Jobs = cmd.Int("jobs")
	}
	// 配置文件已通过校验，此处失败只可能来自命令行
	if err := s.Validate(); err != nil {
		return xconf.Settings{}, &usageError{err: err}
	}
	return s, nil
}

func buildLogger(s xconf.LogSettings, stderr io.Writer) (xlog.RootLogger, func() error, error) {
	b := xlog.New().
		SetOutput(stderr).
		SetLevelString(s.Level).
		SetFormat(s.Format).
		SetAddSource(s.AddSource)
	if s.File != "" {
		var opts []xrotate.Option
		if s.MaxSizeMB > 0 {
			opts = append(opts, xrotate.WithMaxSize(s.MaxSizeMB))
		}
		opts = append(opts, xrotate.WithMaxBackups(s.MaxBackups))
		b = b.SetRotation(s.File, opts...)
	}
	return b.Build()
}

// stats 遍历计数的采集器。
type stats struct {
	reader   *sdkmetric.ManualReader
	provider *sdkmetric.MeterProvider
	counters xmetrics.WalkCounters
	observer xmetrics.Observer
}

func newStats() (*stats, error) {
	reader := sdkmetric.NewManualReader()
	provider := sdkmetric.NewMeterProvider(sdkmetric.WithReader(reader))
	counters, err := xmetrics.NewOTelWalkCounters(xmetrics.WithMeterProvider(provider))
	if err != nil {
		_ = provider.Shutdown(context.Background())
		return nil, err
	}
	observer, err := xmetrics.NewOTelObserver(xmetrics.WithMeterProvider(provider))
	if err != nil {
		_ = provider.Shutdown(context.Background())
		return nil, err
	}
	return &stats{reader: reader, provider: provider, counters: counters, observer: observer}, nil
}

func (s *stats) report(ctx context.Context, logger xlog.Logger) {
	summary, err := xmetrics.CollectWalkSummary(ctx, s.reader)
	if err != nil {
		logger.Warn(ctx, "collect walk totals failed", xlog.Err(err))
		return
	}
	logger.Info(ctx, "walk totals",
		slog.Int64("walks", summary.Walks),
		slog.Int64("directories", summary.Directories),
		slog.Int64("values", summary.Values),
		slog.Any("errors", summary.Errors),
		slog.Any("ignored", summary.Ignored),
	)
}

func (a *app) walk(ctx context.Context, cmd *cli.Command) error {
	s, err := settings(cmd)
	if err != nil {
		return err
	}

	base, closeLog, err := buildLogger(s.Log, a.stderr)
	if err != nil {
		return err
	}
	defer func() { _ = closeLog() }()
	defer func() {
		if n := base.DroppedRecords(); n > 0 {
			fmt.Fprintf(a.stderr, "wherefrom: %d log records could not be written\n", n)
		}
	}()
	logger := base.With(slog.String("run_id", uuid.NewString()))

	opts := []xwalk.Option{xwalk.WithLogger(logger)}
	if s.Stats {
		st, err := newStats()
		if err != nil {
			return err
		}
		defer func() { _ = st.provider.Shutdown(context.Background()) }()
		defer st.report(ctx, logger)
		opts = append(opts, xwalk.WithCounters(st.counters), xwalk.WithObserver(st.observer))
	}

	reader := xwherefrom.New(append([]xwherefrom.Option{xwherefrom.WithLogger(logger)}, a.readerOpts...)...)
	opts = append(opts, xwalk.WithReader(reader))

	roots := cmd.Args().Slice()
	logger.Debug(ctx, "walk started", xlog.Count(len(roots)), slog.Int("jobs", s.Jobs))
	res, err := xwalk.New(opts...).WalkParallel(ctx, s.Jobs, roots...)
	if err != nil {
		return err
	}

	for _, fe := range res.Errors {
		fmt.Fprintln(a.stderr, fe.Error())
	}

	var out xjson.Object
	for _, e := range res.Values {
		out.Set(e.Path, e.Value)
	}
	return xjson.Encode(a.stdout, &out, s.Output.Indent)
}
