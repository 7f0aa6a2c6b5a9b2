//go:build !(darwin || linux || freebsd || netbsd)

package xwherefrom

func loadFacility() (Getxattr, error) {
	return nil, &DependencyError{
		Kind:     MissingExternalLibraryFunction,
		Library:  "libc",
		Function: "getxattr",
	}
}
