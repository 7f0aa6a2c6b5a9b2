package xjson

import (
	"bytes"
	"encoding/json"
	"fmt"
)

// Object 按插入顺序序列化的 JSON 对象。零值可用，不支持并发写。
type Object struct {
	keys   []string
	values map[string]any
}

// Set 设置 key 的值。已存在的键保留原位置。
func (o *Object) Set(key string, value any) {
	if o.values == nil {
		o.values = make(map[string]any)
	}
	if _, ok := o.values[key]; !ok {
		o.keys = append(o.keys, key)
	}
	o.values[key] = value
}

// Get 返回 key 的值。
func (o *Object) Get(key string) (any, bool) {
	v, ok := o.values[key]
	return v, ok
}

// Keys 按插入顺序返回所有键。
func (o *Object) Keys() []string {
	return append([]string(nil), o.keys...)
}

// Len 返回键的数量。
func (o *Object) Len() int {
	return len(o.keys)
}

// MarshalJSON 实现 json.Marshaler。nil 与空对象都序列化为 {}。
func (o *Object) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	if o != nil {
		for i, key := range o.keys {
			if i > 0 {
				buf.WriteByte(',')
			}
			if err := encodeCompact(&buf, key); err != nil {
				return nil, err
			}
			buf.WriteByte(':')
			if err := encodeCompact(&buf, o.values[key]); err != nil {
				return nil, fmt.Errorf("key %q: %w", key, err)
			}
		}
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}

func encodeCompact(buf *bytes.Buffer, v any) error {
	enc := json.NewEncoder(buf)
	enc.SetEscapeHTML(false)
	if err := enc.Encode(v); err != nil {
		return err
	}
	// Encoder 总是追加换行
	buf.Truncate(buf.Len() - 1)
	return nil
}
