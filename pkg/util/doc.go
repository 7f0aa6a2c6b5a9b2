// Package util 提供通用工具相关的子包。
//
// 子包列表：
//   - xjson: 按插入顺序输出的 JSON 对象与格式化编码
package util
