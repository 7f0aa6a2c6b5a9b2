package xrotate

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// dirPerm 创建缺失父目录时使用的权限。
const dirPerm = 0o750

// preparePath 规范化 filename 并创建缺失的父目录。
//
// 接受相对路径与 ".."，不限制目标目录。
func preparePath(filename string) (string, error) {
	if filename == "" {
		return "", ErrEmptyFilename
	}
	if strings.ContainsRune(filename, 0) {
		return "", fmt.Errorf("%w: contains null byte", ErrInvalidFilename)
	}
	// Clean 会去掉尾部分隔符，必须先检查
	if strings.HasSuffix(filename, string(filepath.Separator)) || strings.HasSuffix(filename, "/") {
		return "", fmt.Errorf("%w: %q is a directory", ErrInvalidFilename, filename)
	}
	cleaned := filepath.Clean(filename)
	switch filepath.Base(cleaned) {
	case ".", "..", string(filepath.Separator):
		return "", fmt.Errorf("%w: %q has no file name", ErrInvalidFilename, filename)
	}

	if dir := filepath.Dir(cleaned); dir != "." {
		if err := os.MkdirAll(dir, dirPerm); err != nil {
			return "", fmt.Errorf("xrotate: create log directory: %w", err)
		}
	}
	return cleaned, nil
}
