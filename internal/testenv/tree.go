//go:build unix

package testenv

import (
	"os"
	"path/filepath"
	"strconv"
	"sync"
	"testing"

	"golang.org/x/sys/unix"

	"github.com/otmyalme/wherefrom/pkg/fs/xwherefrom"
)

// Tree 临时目录下的测试目录树。
type Tree struct {
	t    testing.TB
	Root string

	mu     sync.RWMutex
	values map[string][]byte // 解析后的真实路径 → 原始值
}

// NewTree 在 t.TempDir() 下创建空目录树。
// Root 已解析符号链接（macOS 的 /var 是 /private/var 的链接）。
func NewTree(t testing.TB) *Tree {
	t.Helper()
	root, err := filepath.EvalSymlinks(t.TempDir())
	if err != nil {
		t.Fatalf("testenv: resolve temp dir: %v", err)
	}
	return &Tree{t: t, Root: root, values: make(map[string][]byte)}
}

// Path 返回 Root 下的路径。
func (tr *Tree) Path(rel ...string) string {
	return filepath.Join(append([]string{tr.Root}, rel...)...)
}

// Dir 创建目录（包括父目录）。
func (tr *Tree) Dir(rel string) string {
	tr.t.Helper()
	p := tr.Path(rel)
	if err := os.MkdirAll(p, 0o755); err != nil {
		tr.t.Fatalf("testenv: mkdir %s: %v", p, err)
	}
	return p
}

// File 创建普通文件；提供 urls 时同时设置 "where from" 值。
func (tr *Tree) File(rel string, urls ...string) string {
	tr.t.Helper()
	p := tr.Path(rel)
	tr.Dir(filepath.Dir(rel))
	if err := os.WriteFile(p, []byte(rel), 0o644); err != nil {
		tr.t.Fatalf("testenv: write %s: %v", p, err)
	}
	if len(urls) > 0 {
		raw, err := xwherefrom.Encode(urls)
		if err != nil {
			tr.t.Fatalf("testenv: encode value: %v", err)
		}
		tr.SetRaw(p, raw)
	}
	return p
}

// FileRaw 创建普通文件并设置原始值（可以是任意字节）。
func (tr *Tree) FileRaw(rel string, raw []byte) string {
	tr.t.Helper()
	p := tr.File(rel)
	tr.SetRaw(p, raw)
	return p
}

// SetRaw 为已存在的路径设置原始值。
func (tr *Tree) SetRaw(path string, raw []byte) {
	tr.t.Helper()
	if err := tr.setValue(path, raw); err != nil {
		tr.t.Fatalf("testenv: set value on %s: %v", path, err)
	}
}

// Symlink 在 rel 处创建指向 target 的符号链接。target 原样写入（可为相对路径）。
func (tr *Tree) Symlink(rel, target string) string {
	tr.t.Helper()
	p := tr.Path(rel)
	tr.Dir(filepath.Dir(rel))
	if err := os.Symlink(target, p); err != nil {
		tr.t.Fatalf("testenv: symlink %s: %v", p, err)
	}
	return p
}

// SymlinkChain 在目录 rel 下创建 n 个名为 "1".."n" 的链接，k 指向 k-1，"1" 指向 target。
// 返回最后一个链接的路径。
func (tr *Tree) SymlinkChain(rel string, n int, target string) string {
	tr.t.Helper()
	tr.Dir(rel)
	prev := target
	var last string
	for i := 1; i <= n; i++ {
		name := strconv.Itoa(i)
		last = tr.Symlink(filepath.Join(rel, name), prev)
		prev = name
	}
	return last
}

// Unreadable 移除路径的所有权限，测试结束时恢复以便清理。
func (tr *Tree) Unreadable(path string) {
	tr.t.Helper()
	info, err := os.Lstat(path)
	if err != nil {
		tr.t.Fatalf("testenv: lstat %s: %v", path, err)
	}
	if err := os.Chmod(path, 0); err != nil {
		tr.t.Fatalf("testenv: chmod %s: %v", path, err)
	}
	tr.t.Cleanup(func() { _ = os.Chmod(path, info.Mode().Perm()) })
}

// SkipIfRoot root 可以读任何文件，权限相关的测试无意义。
func SkipIfRoot(t testing.TB) {
	t.Helper()
	if unix.Geteuid() == 0 {
		t.Skip("permission checks don't apply to root")
	}
}

// Options 返回让 Reader 读取本目录树值的选项。
func (tr *Tree) Options() []xwherefrom.Option {
	return []xwherefrom.Option{xwherefrom.WithGetxattr(tr.Getxattr())}
}

// Reader 返回读取本目录树值的 Reader。
func (tr *Tree) Reader(opts ...xwherefrom.Option) *xwherefrom.Reader {
	return xwherefrom.New(append(tr.Options(), opts...)...)
}
