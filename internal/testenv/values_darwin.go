package testenv

import (
	"github.com/pkg/xattr"
	"golang.org/x/sys/unix"

	"github.com/otmyalme/wherefrom/pkg/fs/xwherefrom"
)

func (tr *Tree) setValue(path string, raw []byte) error {
	return xattr.Set(path, xwherefrom.AttributeName, raw)
}

// RemoveValue 移除路径上的值。
func (tr *Tree) RemoveValue(path string) error {
	return xattr.Remove(path, xwherefrom.AttributeName)
}

// Getxattr 返回系统入口。
func (tr *Tree) Getxattr() xwherefrom.Getxattr {
	return unix.Getxattr
}
