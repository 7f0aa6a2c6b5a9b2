package xconf_test

import (
	"fmt"

	"github.com/otmyalme/wherefrom/pkg/config/xconf"
)

func ExampleParse() {
	s, err := xconf.Parse([]byte("log:\n  level: debug\noutput:\n  indent: 4\n"), xconf.FormatYAML)
	if err != nil {
		fmt.Println(err)
		return
	}
	fmt.Println(s.Log.Level, s.Log.Format, s.Output.Indent, s.Jobs)
	// Output: debug text 4 1
}

func ExampleLoad() {
	s, _ := xconf.Load("")
	fmt.Println(s == xconf.Defaults())
	// Output: true
}
