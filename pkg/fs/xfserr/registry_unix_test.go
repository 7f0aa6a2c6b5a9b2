//go:build aix || darwin || dragonfly || freebsd || linux || netbsd || openbsd || solaris || zos

package xfserr

import (
	"errors"
	"fmt"
	"os"
	"syscall"
	"testing"

	"github.com/stretchr/testify/assert"
	"golang.org/x/sys/unix"
)

func TestClassify_Errno(t *testing.T) {
	fe := Default().Classify(unix.ENOENT, OpGetxattr, "/gone", "")

	assert.Equal(t, MissingFile, fe.Kind)
	assert.Equal(t, "ENOENT", fe.ErrorName)
	assert.Equal(t, int(unix.ENOENT), fe.ErrorNumber)
	assert.ErrorIs(t, fe, unix.ENOENT)
	assert.Equal(t,
		"Could not read the 'where from' value of '/gone': The file doesn't exist",
		fe.Error())
}

func TestClassify_UnnamedErrno(t *testing.T) {
	fe := Default().Classify(syscall.Errno(9999), OpStat, "/p", "")

	assert.Equal(t, UnknownFileError, fe.Kind)
	assert.Equal(t, UnknownName, fe.ErrorName)
	assert.Equal(t, "Could not process '/p': An unknown error occurred (error code 9999)", fe.Error())
}

func TestClassifyError_PathError(t *testing.T) {
	_, err := os.Open("/definitely/not/here")
	fe := Default().ClassifyError(fmt.Errorf("open: %w", err), OpReaddir, "/definitely/not/here", "directory")

	assert.Equal(t, MissingFile, fe.Kind)
	assert.True(t, errors.Is(fe, unix.ENOENT))
	assert.Equal(t,
		"Could not collect the contents of '/definitely/not/here': The directory doesn't exist",
		fe.Error())
}
