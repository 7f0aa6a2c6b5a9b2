// Package xjson 提供按插入顺序输出的 JSON 对象和格式化编码。
//
// encoding/json 序列化 map 时按键排序，无法表达遍历顺序。[Object] 记录键的
// 首次插入顺序，重复的键只更新值，位置不变。
//
// [Encode] 不转义 HTML 特殊字符（<, >, &），URL 中的查询参数原样输出；
// 非 ASCII 字符同样原样输出（UTF-8）。
package xjson
