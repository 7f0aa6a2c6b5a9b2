package xfserr

import "sync"

// 内置操作名称。
const (
	// OpGetxattr 读取扩展属性。
	OpGetxattr = "getxattr"
	// OpReaddir 列举目录内容。
	OpReaddir = "readdir"
	// OpStat 跟随符号链接获取元数据。
	OpStat = "stat"
)

type defaultEntry struct {
	names      []string
	kind       Kind
	operations []string
}

var defaultVerbs = [...]struct{ operation, verb string }{
	{OpGetxattr, "read the 'where from' value of"},
	{OpReaddir, "collect the contents of"},
	{OpStat, "process"},
}

// defaultTaxonomy 内置分类表。ENODATA 与 EOPNOTSUPP 是 Linux 上
// ENOATTR 与 ENOTSUP 的拼写。
var defaultTaxonomy = [...]defaultEntry{
	{[]string{"ENOENT"}, MissingFile, nil},
	// 路径中某段不是目录，意味着目标实际上不存在。
	{[]string{"ENOTDIR"}, MissingFile, []string{OpStat, OpGetxattr}},
	// 发现时是目录，列举时已不是。
	{[]string{"ENOTDIR"}, ConcurrentlyReplacedDirectory, []string{OpReaddir}},
	{[]string{"EACCES"}, NoReadPermission, nil},
	{[]string{"ELOOP"}, TooManySymlinks, nil},
	{[]string{"ENAMETOOLONG"}, OverlongPath, nil},
	{[]string{"EIO"}, FileIOError, nil},
	{[]string{"ENOATTR", "ENODATA"}, NoWhereFromValue, []string{OpGetxattr}},
	{[]string{"ENOTSUP", "EOPNOTSUPP"}, UnsupportedFileSystem, []string{OpGetxattr}},
	// EISDIR 目前未观察到（目录支持该属性），保留注册。
	{[]string{"EPERM", "EISDIR"}, UnsupportedFileSystemObject, []string{OpGetxattr}},
	{[]string{"ERANGE"}, WhereFromValueLengthMismatch, []string{OpGetxattr}},
	{[]string{"EFAULT", "EINVAL"}, SupposedlyImpossibleFileError, []string{OpGetxattr}},
	{[]string{UnexpectedName}, UnexpectedFileError, nil},
	{[]string{UnknownName}, UnknownFileError, nil},
}

// RegisterDefaults 向 r 注册内置操作动词与分类表。
// 对同一注册表重复调用是空操作；与已有注册冲突时返回第一个冲突。
func RegisterDefaults(r *Registry) error {
	for _, v := range defaultVerbs {
		if err := r.RegisterOperation(v.operation, v.verb); err != nil {
			return err
		}
	}
	for _, e := range defaultTaxonomy {
		for _, name := range e.names {
			if err := r.Register(name, e.kind, e.operations...); err != nil {
				return err
			}
		}
	}
	return nil
}

var defaultRegistry = sync.OnceValue(func() *Registry {
	r := NewRegistry()
	if err := RegisterDefaults(r); err != nil {
		panic(err)
	}
	return r
})

// Default 返回进程级的默认注册表，首次调用时初始化。
// 内置表自相矛盾属于编程错误，初始化时直接 panic。
func Default() *Registry {
	return defaultRegistry()
}
