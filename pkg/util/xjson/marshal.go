package xjson

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"strings"
)

// Encode 把 v 写入 w，末尾追加换行。
// indent > 0 时每级缩进 indent 个空格，否则输出紧凑格式。
func Encode(w io.Writer, v any, indent int) error {
	data, err := Marshal(v, indent)
	if err != nil {
		return err
	}
	data = append(data, '\n')
	_, err = w.Write(data)
	return err
}

// Marshal 序列化 v，规则同 [Encode]，不追加换行。
func Marshal(v any, indent int) ([]byte, error) {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	if indent > 0 {
		enc.SetIndent("", strings.Repeat(" ", indent))
	}
	if err := enc.Encode(v); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrMarshal, err)
	}
	return bytes.TrimSuffix(buf.Bytes(), []byte("\n")), nil
}
