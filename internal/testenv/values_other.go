//go:build unix && !darwin

package testenv

import (
	"errors"
	"os"
	"path/filepath"
	"syscall"

	"github.com/pkg/xattr"
	"golang.org/x/sys/unix"

	"github.com/otmyalme/wherefrom/pkg/fs/xwherefrom"
)

func (tr *Tree) setValue(path string, raw []byte) error {
	resolved, err := filepath.EvalSymlinks(path)
	if err != nil {
		return err
	}
	tr.mu.Lock()
	defer tr.mu.Unlock()
	tr.values[resolved] = append([]byte(nil), raw...)
	return nil
}

// RemoveValue 移除路径上的值。
func (tr *Tree) RemoveValue(path string) error {
	resolved, err := filepath.EvalSymlinks(path)
	if err != nil {
		return err
	}
	tr.mu.Lock()
	defer tr.mu.Unlock()
	if _, ok := tr.values[resolved]; !ok {
		return xattr.ENOATTR
	}
	delete(tr.values, resolved)
	return nil
}

// Getxattr 返回读取内存表的模拟入口。
func (tr *Tree) Getxattr() xwherefrom.Getxattr {
	return tr.getxattr
}

func (tr *Tree) getxattr(path, attr string, dest []byte) (int, error) {
	if _, err := os.Stat(path); err != nil {
		var errno syscall.Errno
		if errors.As(err, &errno) {
			return 0, errno
		}
		return 0, err
	}
	if err := unix.Access(path, unix.R_OK); err != nil {
		return 0, unix.EACCES
	}
	resolved, err := filepath.EvalSymlinks(path)
	if err != nil {
		return 0, err
	}

	tr.mu.RLock()
	value, ok := tr.values[resolved]
	tr.mu.RUnlock()
	if !ok || attr != xwherefrom.AttributeName {
		return 0, xattr.ENOATTR
	}
	if len(dest) == 0 {
		return len(value), nil
	}
	if len(dest) < len(value) {
		return 0, unix.ERANGE
	}
	return copy(dest, value), nil
}
