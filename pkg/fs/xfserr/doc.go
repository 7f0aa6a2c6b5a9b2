// Package xfserr 定义单个文件系统路径处理失败时的错误分类。
//
// # 错误模型
//
// 所有错误都是 [*FileError]，通过 [Kind] 区分具体类型（标签联合），
// 而不是为每种错误定义一个独立的 Go 类型：
//
//   - 底层错误（[Kind.IsLowLevel]）：来自系统调用，携带 errno 编号、errno 名称、
//     操作动词和文件类型，例如 [MissingFile]、[NoReadPermission]、[TooManySymlinks]
//   - 值错误：属性值无法解码（[MalformedWhereFromValue]）或形状不符合预期
//     （[UnexpectedWhereFromValue]）
//
// 错误消息由 [Kind] 查表渲染，格式为：
//
//	Could not <operation_verb> '<path>': <message>
//
// # 分类注册表
//
// 同一个 errno 在不同系统调用下含义可能不同（例如 ENOTDIR 在 readdir 中表示目录被替换，
// 在 stat/getxattr 中表示目标不存在）。[Registry] 以 (errno 名称, 操作) 为键，
// 支持 [AllOperations] 通配，解析顺序为：
//
//  1. (名称, 操作) 精确匹配
//  2. (名称, ALL)
//  3. ([UnexpectedName], 操作)，再到 ([UnexpectedName], ALL)
//
// 没有符号名称的 errno 以 [UnknownName] 走同样的解析链，兜底为 [UnknownFileError]。
//
// 注册是单调的：对同一个键注册不同的 [Kind]、或对同一操作注册不同的动词会立即返回
// [ErrExistingRegistration]，已有注册保持不变；重复注册完全相同的内容是 no-op。
//
// 默认注册表通过显式的 [RegisterDefaults] 构建，[Default] 只构建一次，
// 冲突时 panic（启动期快速失败）。
//
// # 错误匹配
//
//	if xfserr.IsKind(err, xfserr.MissingFile, xfserr.NoWhereFromValue) {
//	    // 遍历时忽略
//	}
//	if errors.Is(err, unix.EACCES) {
//	    // FileError 会 Unwrap 出底层 errno
//	}
package xfserr
