//go:build darwin || linux || freebsd || netbsd

package xwherefrom

import "golang.org/x/sys/unix"

func loadFacility() (Getxattr, error) {
	return unix.Getxattr, nil
}
