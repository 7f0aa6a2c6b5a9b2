//go:build !(aix || darwin || dragonfly || freebsd || linux || netbsd || openbsd || solaris || zos)

package xfserr

import "syscall"

// 没有 errno 名称表的平台上所有错误号都按 UNKNOWN 解析。
func errnoName(syscall.Errno) string {
	return ""
}
