// Package testenv 为测试构建带 "where from" 值的目录树。
//
// macOS 上值通过真实的扩展属性写入；其他平台上写入内存表，
// 由 [Tree.Getxattr] 返回的模拟入口读取。模拟入口跟随符号链接，
// 并按系统调用的方式返回 ENOENT、ENOTDIR、ELOOP、EACCES 等错误。
package testenv
