// Package fs 提供文件系统相关的子包。
//
// 子包列表：
//   - xfserr: 文件错误的分类注册表与错误类型
//   - xwherefrom: 读取与解码 "where from" 扩展属性
//   - xwalk: 广度优先遍历目录树并收集属性值
//
// 依赖方向：xwalk → xwherefrom → xfserr。
package fs
