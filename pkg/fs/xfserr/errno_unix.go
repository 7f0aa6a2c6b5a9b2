//go:build aix || darwin || dragonfly || freebsd || linux || netbsd || openbsd || solaris || zos

package xfserr

import (
	"syscall"

	"golang.org/x/sys/unix"
)

func errnoName(errno syscall.Errno) string {
	return unix.ErrnoName(errno)
}
