package xwherefrom

import (
	"howett.net/plist"

	"github.com/otmyalme/wherefrom/pkg/fs/xfserr"
)

// Decode 将二进制属性列表解码为 URL 列表。path 仅用于错误消息。
func Decode(data []byte, path string) ([]string, error) {
	var value any
	format, err := plist.Unmarshal(data, &value)
	if err != nil {
		return nil, xfserr.NewValueError(xfserr.MalformedWhereFromValue, path, nil, err)
	}
	// 文本格式的解析器几乎接受任何输入，只认二进制格式
	if format != plist.BinaryFormat {
		return nil, xfserr.NewValueError(xfserr.MalformedWhereFromValue, path, nil, nil)
	}

	items, ok := value.([]any)
	if !ok || len(items) == 0 {
		return nil, xfserr.NewValueError(xfserr.UnexpectedWhereFromValue, path, value, nil)
	}
	urls := make([]string, 0, len(items))
	for _, item := range items {
		s, ok := item.(string)
		if !ok {
			return nil, xfserr.NewValueError(xfserr.UnexpectedWhereFromValue, path, value, nil)
		}
		urls = append(urls, s)
	}
	return urls, nil
}

// Encode 将 URL 列表编码为二进制属性列表，用于写入测试数据。
func Encode(urls []string) ([]byte, error) {
	return plist.Marshal(urls, plist.BinaryFormat)
}
