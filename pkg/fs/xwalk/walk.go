package xwalk

import (
	"context"
	"errors"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/otmyalme/wherefrom/pkg/fs/xfserr"
	"github.com/otmyalme/wherefrom/pkg/fs/xwherefrom"
	"github.com/otmyalme/wherefrom/pkg/observability/xlog"
	"github.com/otmyalme/wherefrom/pkg/observability/xmetrics"
)

// Entry 一个读取成功的路径及其值。
type Entry struct {
	Path  string
	Value []string
}

// Result 一次遍历的结果。Values 与 Errors 都按遍历顺序排列。
type Result struct {
	Values []Entry
	Errors []*xfserr.FileError
}

// Walker 遍历器。Walker 本身无状态，可被并发使用。
type Walker struct {
	reader   *xwherefrom.Reader
	registry *xfserr.Registry
	logger   xlog.Logger
	observer xmetrics.Observer
	counters xmetrics.WalkCounters
}

// Option 配置 Walker。
type Option func(*Walker)

// WithReader 设置读取器，默认为使用系统入口的 [xwherefrom.New]。
func WithReader(r *xwherefrom.Reader) Option {
	return func(w *Walker) {
		if r != nil {
			w.reader = r
		}
	}
}

// WithRegistry 设置目录列举失败时使用的分类注册表，默认与读取器相同。
func WithRegistry(r *xfserr.Registry) Option {
	return func(w *Walker) {
		if r != nil {
			w.registry = r
		}
	}
}

// WithLogger 设置日志记录器，默认为 [xlog.Default]。
func WithLogger(l xlog.Logger) Option {
	return func(w *Walker) {
		if l != nil {
			w.logger = l
		}
	}
}

// WithObserver 为每次遍历创建观测跨度。
func WithObserver(o xmetrics.Observer) Option {
	return func(w *Walker) {
		if o != nil {
			w.observer = o
		}
	}
}

// WithCounters 设置遍历计数器。
func WithCounters(c xmetrics.WalkCounters) Option {
	return func(w *Walker) {
		if c != nil {
			w.counters = c
		}
	}
}

// New 创建 Walker。
func New(opts ...Option) *Walker {
	w := &Walker{
		observer: xmetrics.NoopObserver{},
		counters: xmetrics.NoopWalkCounters{},
	}
	for _, opt := range opts {
		if opt != nil {
			opt(w)
		}
	}
	if w.logger == nil {
		w.logger = xlog.Default()
	}
	if w.reader == nil {
		w.reader = xwherefrom.New(xwherefrom.WithLogger(w.logger))
	}
	if w.registry == nil {
		w.registry = w.reader.Registry()
	}
	return w
}

// Walk 依次遍历每个根路径，结果按根路径顺序拼接。
//
// 只有系统扩展属性入口不可用时才返回非 nil 错误，此时 Result 包含中止前已收集的内容。
func (w *Walker) Walk(ctx context.Context, roots ...string) (res Result, err error) {
	start := time.Now()
	ctx, span := xmetrics.StartWalk(ctx, w.observer, xmetrics.WalkInfo{Roots: len(roots)})
	defer func() {
		span.End(xmetrics.WalkOutcome{Values: len(res.Values), Errors: len(res.Errors), Err: err})
	}()

	if len(roots) == 0 {
		return Result{}, nil
	}
	if err := w.reader.Load(); err != nil {
		w.logger.Error(ctx, "walk aborted", xlog.Err(err))
		return Result{}, err
	}

	s := &walkState{Walker: w, ctx: ctx}
	for _, root := range roots {
		if err := s.processRoot(root); err != nil {
			w.logger.Error(ctx, "walk aborted", xlog.Root(root), xlog.Err(err))
			return s.result, err
		}
	}

	w.logger.Debug(ctx, "walk finished",
		slog.Int("values", len(s.result.Values)),
		slog.Int("errors", len(s.result.Errors)),
		xlog.Duration(time.Since(start)),
	)
	return s.result, nil
}

// walkState 单次遍历的状态，不跨遍历共享。
type walkState struct {
	*Walker
	ctx     context.Context
	pending []string
	result  Result
}

func (s *walkState) processRoot(root string) error {
	info, err := os.Stat(root)
	if err != nil || !info.IsDir() {
		// 不存在的根路径也交给读取器，由其分类为 MissingFile
		return s.processCandidate(root)
	}

	s.pending = append(s.pending[:0], root)
	for len(s.pending) > 0 {
		dir := s.pending[0]
		s.pending[0] = ""
		s.pending = s.pending[1:]
		if err := s.processDirectory(dir); err != nil {
			return err
		}
	}
	return nil
}

// processDirectory 列举 dir，子目录入队，候选文件立即读取。
func (s *walkState) processDirectory(dir string) error {
	s.logger.Debug(s.ctx, "listing directory", xlog.Path(dir))
	s.counters.Directory(s.ctx)

	// os.ReadDir 按名称排序；出错时丢弃已读取的部分
	entries, err := os.ReadDir(dir)
	if err != nil {
		s.handleError(s.registry.ClassifyError(err, xfserr.OpReaddir, dir, "directory"), false)
		return nil
	}

	var candidates []string
	for _, entry := range entries {
		path := filepath.Join(dir, entry.Name())
		switch s.classify(entry, path) {
		case entrySubdirectory:
			s.pending = append(s.pending, path)
		case entryCandidate:
			candidates = append(candidates, path)
		}
	}

	for _, path := range candidates {
		if err := s.processCandidate(path); err != nil {
			return err
		}
	}
	return nil
}

type entryClass uint8

const (
	entrySkipped entryClass = iota
	entrySubdirectory
	entryCandidate
)

// classify 不跟随符号链接判断条目类型；只有符号链接才额外 stat 一次。
func (s *walkState) classify(entry fs.DirEntry, path string) entryClass {
	mode := entry.Type()
	switch {
	case mode.IsDir():
		return entrySubdirectory
	case mode.IsRegular():
		return entryCandidate
	case mode&fs.ModeSymlink == 0:
		return entrySkipped
	}

	info, err := os.Stat(path)
	if err != nil {
		s.handleError(s.registry.ClassifyError(err, xfserr.OpStat, path, ""), false)
		return entrySkipped
	}
	if info.Mode().IsRegular() {
		return entryCandidate
	}
	return entrySkipped
}

func (s *walkState) processCandidate(path string) error {
	value, err := s.reader.Read(s.ctx, path)
	if err == nil {
		s.result.Values = append(s.result.Values, Entry{Path: path, Value: value})
		s.counters.Value(s.ctx)
		return nil
	}

	var fe *xfserr.FileError
	if !errors.As(err, &fe) {
		if errors.Is(err, xwherefrom.ErrMissingDependency) {
			return err
		}
		fe = s.registry.ClassifyError(err, xfserr.OpGetxattr, path, "")
	}
	s.handleError(fe, true)
	return nil
}

// handleError 丢弃遍历中预期的错误，收集其余错误。
func (s *walkState) handleError(fe *xfserr.FileError, candidate bool) {
	if fe.Kind.IgnoreWhileWalking() || (candidate && fe.Kind == xfserr.NoWhereFromValue) {
		s.counters.Ignored(s.ctx, fe.Kind.String())
		return
	}
	s.logger.Debug(s.ctx, "file error",
		xlog.Path(fe.Path), xlog.Kind(fe.Kind), xlog.Errno(fe.ErrorName))
	s.result.Errors = append(s.result.Errors, fe)
	s.counters.Error(s.ctx, fe.Kind.String())
}

var defaultWalker = sync.OnceValue(func() *Walker { return New() })

// Walk 使用默认配置遍历。
func Walk(ctx context.Context, roots ...string) (Result, error) {
	return defaultWalker().Walk(ctx, roots...)
}
