package xmetrics

import "errors"

var (
	// ErrCreateInstrument 表示创建 OTel Counter 或 Histogram 失败。
	ErrCreateInstrument = errors.New("xmetrics: create instrument failed")
	// ErrCollect 表示从 Reader 收集指标失败。
	ErrCollect = errors.New("xmetrics: collect failed")
)
