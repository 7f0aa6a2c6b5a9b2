// Package xwherefrom 读取并解码 macOS 的 "where from" 扩展属性
// （com.apple.metadata:kMDItemWhereFroms，记录下载文件来源 URL）。
//
// # 读取协议
//
// [Reader.ReadBinary] 采用 getxattr 的两次调用约定：
//
//  1. 以空缓冲区调用，得到值的字节长度
//  2. 分配恰好该长度的缓冲区
//  3. 再次调用读取值
//
// 两次调用之间值被外部修改时（第二次调用返回 ERANGE 或长度不一致），
// 返回 [xfserr.WhereFromValueLengthMismatch]，不重试。
// 其他失败通过 [xfserr.Registry] 以操作名 getxattr 分类。
//
// # 系统依赖
//
// getxattr 入口在每个 Reader 上只加载一次。当前平台没有该入口时，
// 每次读取都返回同一个 [*DependencyError]（匹配 [ErrMissingDependency]），
// 而不是逐文件错误。
//
// # 解码
//
// [Decode] 要求值是二进制属性列表，且解码结果是非空字符串列表：
//
//   - 不是合法的二进制属性列表：[xfserr.MalformedWhereFromValue]
//   - 形状不符：[xfserr.UnexpectedWhereFromValue]，FileError.Value 携带解码结果
package xwherefrom
