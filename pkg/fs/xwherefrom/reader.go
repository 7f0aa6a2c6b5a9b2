package xwherefrom

import (
	"context"
	"sync"
	"syscall"

	"github.com/otmyalme/wherefrom/pkg/fs/xfserr"
	"github.com/otmyalme/wherefrom/pkg/observability/xlog"
)

// AttributeName 读取的扩展属性名称。
const AttributeName = "com.apple.metadata:kMDItemWhereFroms"

// Reader 读取单个路径的 "where from" 值，可被多个 goroutine 共享。
type Reader struct {
	load     func() (Getxattr, error)
	registry *xfserr.Registry
	logger   xlog.Logger
}

// Option 配置 Reader。
type Option func(*readerOptions)

type readerOptions struct {
	loader   FacilityLoader
	registry *xfserr.Registry
	logger   xlog.Logger
}

// WithGetxattr 使用给定的读取入口，主要用于测试。
func WithGetxattr(fn Getxattr) Option {
	return func(o *readerOptions) {
		if fn != nil {
			o.loader = func() (Getxattr, error) { return fn, nil }
		}
	}
}

// WithFacilityLoader 替换读取入口的加载方式。loader 每个 Reader 最多调用一次。
func WithFacilityLoader(loader FacilityLoader) Option {
	return func(o *readerOptions) {
		if loader != nil {
			o.loader = loader
		}
	}
}

// WithRegistry 使用自定义的错误分类注册表，默认为 [xfserr.Default]。
func WithRegistry(r *xfserr.Registry) Option {
	return func(o *readerOptions) {
		if r != nil {
			o.registry = r
		}
	}
}

// WithLogger 设置日志记录器，默认为 [xlog.Default]。
func WithLogger(l xlog.Logger) Option {
	return func(o *readerOptions) {
		if l != nil {
			o.logger = l
		}
	}
}

// New 创建 Reader。读取入口在首次读取时加载。
func New(opts ...Option) *Reader {
	o := readerOptions{loader: loadFacility}
	for _, opt := range opts {
		if opt != nil {
			opt(&o)
		}
	}
	if o.registry == nil {
		o.registry = xfserr.Default()
	}
	if o.logger == nil {
		o.logger = xlog.Default()
	}
	return &Reader{
		load:     sync.OnceValues(o.loader),
		registry: o.registry,
		logger:   o.logger,
	}
}

// Registry 返回 Reader 用于分类的注册表。
func (r *Reader) Registry() *xfserr.Registry {
	return r.registry
}

// Load 加载读取入口并返回其错误（如有）。重复调用返回相同结果。
func (r *Reader) Load() error {
	_, err := r.load()
	return err
}

// ReadBinary 读取 path 的原始属性值。
//
// 失败时返回 [*xfserr.FileError]；读取入口不可用时返回 [*DependencyError]。
func (r *Reader) ReadBinary(ctx context.Context, path string) ([]byte, error) {
	getxattr, err := r.load()
	if err != nil {
		return nil, err
	}

	size, err := getxattr(path, AttributeName, nil)
	if err != nil {
		return nil, r.fail(ctx, err, path)
	}

	buf := make([]byte, size)
	n, err := getxattr(path, AttributeName, buf)
	if err != nil {
		return nil, r.fail(ctx, err, path)
	}
	if n != size {
		// 值在两次调用之间变化，按 ERANGE 处理
		return nil, r.fail(ctx, syscall.ERANGE, path)
	}
	return buf, nil
}

// Read 读取并解码 path 的属性值。
func (r *Reader) Read(ctx context.Context, path string) ([]string, error) {
	data, err := r.ReadBinary(ctx, path)
	if err != nil {
		return nil, err
	}
	value, err := Decode(data, path)
	if err != nil {
		r.logger.Debug(ctx, "decode where-from value failed",
			xlog.Path(path), xlog.Err(err))
		return nil, err
	}
	return value, nil
}

func (r *Reader) fail(ctx context.Context, err error, path string) error {
	fe := r.registry.ClassifyError(err, xfserr.OpGetxattr, path, "")
	r.logger.Debug(ctx, "read where-from value failed",
		xlog.Path(path),
		xlog.Kind(fe.Kind),
		xlog.Errno(fe.ErrorName),
		xlog.Operation(xfserr.OpGetxattr),
	)
	return fe
}

var defaultReader = sync.OnceValue(func() *Reader { return New() })

// ReadBinary 使用默认 Reader 读取原始属性值。
func ReadBinary(ctx context.Context, path string) ([]byte, error) {
	return defaultReader().ReadBinary(ctx, path)
}

// Read 使用默认 Reader 读取并解码属性值。
func Read(ctx context.Context, path string) ([]string, error) {
	return defaultReader().Read(ctx, path)
}
