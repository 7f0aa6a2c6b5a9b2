// Package xrotate 基于 lumberjack v2 提供按大小轮转的日志文件。
//
//	f, err := xrotate.Open("/var/log/wherefrom.log", xrotate.WithMaxSize(10))
//	if err != nil {
//		return err
//	}
//	defer f.Close()
//
// 通常不直接使用，而是通过 xlog.Builder.SetRotation 接入日志。
package xrotate
