package xwherefrom_test

import (
	"context"
	"fmt"

	"github.com/otmyalme/wherefrom/pkg/fs/xwherefrom"
)

func ExampleDecode() {
	data, err := xwherefrom.Encode([]string{
		"https://example.com/archive.zip",
		"https://example.com/downloads/",
	})
	if err != nil {
		fmt.Println(err)
		return
	}

	urls, err := xwherefrom.Decode(data, "archive.zip")
	fmt.Println(urls, err)

	_, err = xwherefrom.Decode([]byte("plain text"), "notes.txt")
	fmt.Println(err)
	// Output:
	// [https://example.com/archive.zip https://example.com/downloads/] <nil>
	// The 'where from' value of 'notes.txt' is malformed
}

func ExampleNew() {
	value, _ := xwherefrom.Encode([]string{"https://example.com/a.pdf"})
	fake := func(_, _ string, dest []byte) (int, error) {
		if len(dest) == 0 {
			return len(value), nil
		}
		return copy(dest, value), nil
	}

	r := xwherefrom.New(xwherefrom.WithGetxattr(fake))
	urls, err := r.Read(context.Background(), "/Users/me/Downloads/a.pdf")
	fmt.Println(urls, err)
	// Output:
	// [https://example.com/a.pdf] <nil>
}
