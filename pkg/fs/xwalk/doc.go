// Package xwalk 广度优先遍历目录树，收集每个文件的 "where from" 值。
//
// # 遍历规则
//
//   - 根路径是目录（或指向目录的符号链接）时遍历其子树，否则直接作为候选文件读取
//   - 遍历中发现的目录入队；普通文件和指向普通文件的符号链接作为候选
//   - 指向目录的符号链接、失效链接、设备、套接字等一律跳过
//   - 同一目录下的条目按名称字节序处理，结果可复现
//   - 使用显式 FIFO 队列，不递归调用
//
// 遍历不做环检测。遍历中发现的指向目录的符号链接从不跟随；
// 符号链接环在解析时由系统的链接层数上限终止，表现为 [xfserr.TooManySymlinks]。
//
// # 错误处理
//
//   - [xfserr.MissingFile]（路径在发现后消失）静默丢弃
//   - 候选文件的 [xfserr.NoWhereFromValue] 静默丢弃
//   - 其他错误收集到 [Result.Errors]，遍历继续；目录列举失败时跳过其子树
//   - 系统扩展属性入口不可用（[xwherefrom.ErrMissingDependency]）时中止遍历并返回错误
package xwalk
