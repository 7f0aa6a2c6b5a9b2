package xfserr

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const verbGetxattr = "read the 'where from' value of"

// 内置分类表中每个 (名称, 操作) 组合都应得到文档记载的类型。
func TestDefault_ClassificationCompleteness(t *testing.T) {
	tests := []struct {
		errName   string
		operation string
		want      Kind
		verb      string
	}{
		{"ENOENT", OpGetxattr, MissingFile, verbGetxattr},
		{"ENOENT", OpReaddir, MissingFile, "collect the contents of"},
		{"ENOENT", OpStat, MissingFile, "process"},
		{"ENOTDIR", OpStat, MissingFile, "process"},
		{"ENOTDIR", OpGetxattr, MissingFile, verbGetxattr},
		{"ENOTDIR", OpReaddir, ConcurrentlyReplacedDirectory, "collect the contents of"},
		{"EACCES", OpGetxattr, NoReadPermission, verbGetxattr},
		{"EACCES", OpReaddir, NoReadPermission, "collect the contents of"},
		{"ELOOP", OpGetxattr, TooManySymlinks, verbGetxattr},
		{"ELOOP", OpStat, TooManySymlinks, "process"},
		{"ENAMETOOLONG", OpGetxattr, OverlongPath, verbGetxattr},
		{"EIO", OpReaddir, FileIOError, "collect the contents of"},
		{"ENOATTR", OpGetxattr, NoWhereFromValue, verbGetxattr},
		{"ENODATA", OpGetxattr, NoWhereFromValue, verbGetxattr},
		{"ENOTSUP", OpGetxattr, UnsupportedFileSystem, verbGetxattr},
		{"EOPNOTSUPP", OpGetxattr, UnsupportedFileSystem, verbGetxattr},
		{"EPERM", OpGetxattr, UnsupportedFileSystemObject, verbGetxattr},
		{"EISDIR", OpGetxattr, UnsupportedFileSystemObject, verbGetxattr},
		{"ERANGE", OpGetxattr, WhereFromValueLengthMismatch, verbGetxattr},
		{"EFAULT", OpGetxattr, SupposedlyImpossibleFileError, verbGetxattr},
		{"EINVAL", OpGetxattr, SupposedlyImpossibleFileError, verbGetxattr},
		// 仅限 getxattr 的名称在其他操作下是意外错误
		{"EPERM", OpReaddir, UnexpectedFileError, "collect the contents of"},
		{"ENOATTR", OpStat, UnexpectedFileError, "process"},
		{"EBADF", OpReaddir, UnexpectedFileError, "collect the contents of"},
		{UnknownName, OpGetxattr, UnknownFileError, verbGetxattr},
	}
	for _, tt := range tests {
		t.Run(tt.errName+"/"+tt.operation, func(t *testing.T) {
			fe := Default().ClassifyName(42, tt.errName, tt.operation, "/p", "directory")
			assert.Equal(t, tt.want, fe.Kind)
			assert.Equal(t, 42, fe.ErrorNumber)
			assert.Equal(t, tt.errName, fe.ErrorName)
			assert.Equal(t, tt.verb, fe.OperationVerb)
			assert.Equal(t, "directory", fe.FileType)
		})
	}
}

func TestRegisterDefaults_Idempotent(t *testing.T) {
	r := NewRegistry()
	require.NoError(t, RegisterDefaults(r))
	require.NoError(t, RegisterDefaults(r))
}

func TestRegisterDefaults_ConflictWithExisting(t *testing.T) {
	r := NewRegistry()
	require.NoError(t, r.Register("ERANGE", FileIOError, OpGetxattr))
	assert.ErrorIs(t, RegisterDefaults(r), ErrExistingRegistration)
}

func TestDefault_Singleton(t *testing.T) {
	assert.Same(t, Default(), Default())
}
