package xjson

import "errors"

// ErrMarshal 表示 JSON 序列化失败。
var ErrMarshal = errors.New("xjson: marshal failed")
