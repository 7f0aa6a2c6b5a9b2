package xwherefrom

// Getxattr 系统扩展属性读取入口，与 unix.Getxattr 签名相同。
// dest 为空时返回值的长度。
type Getxattr func(path, attr string, dest []byte) (int, error)

// FacilityLoader 加载 [Getxattr]。失败时应返回 [*DependencyError]。
type FacilityLoader func() (Getxattr, error)
