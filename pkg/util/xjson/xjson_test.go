package xjson

import (
	"bytes"
	"encoding/json"
	"errors"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestObject_InsertionOrder(t *testing.T) {
	var o Object
	o.Set("/b", []string{"https://b"})
	o.Set("/a", []string{"https://a"})
	o.Set("/c", []string{"https://c"})
	o.Set("/b", []string{"https://b2"})

	assert.Equal(t, []string{"/b", "/a", "/c"}, o.Keys())
	assert.Equal(t, 3, o.Len())
	v, ok := o.Get("/b")
	require.True(t, ok)
	assert.Equal(t, []string{"https://b2"}, v)
	_, ok = o.Get("/missing")
	assert.False(t, ok)

	data, err := json.Marshal(&o)
	require.NoError(t, err)
	assert.Equal(t, `{"/b":["https://b2"],"/a":["https://a"],"/c":["https://c"]}`, string(data))
}

func TestObject_Empty(t *testing.T) {
	var o Object
	data, err := o.MarshalJSON()
	require.NoError(t, err)
	assert.Equal(t, "{}", string(data))

	var nilObj *Object
	data, err = nilObj.MarshalJSON()
	require.NoError(t, err)
	assert.Equal(t, "{}", string(data))
}

func TestObject_KeysCopy(t *testing.T) {
	var o Object
	o.Set("a", 1)
	keys := o.Keys()
	keys[0] = "changed"
	assert.Equal(t, []string{"a"}, o.Keys())
}

func TestObject_MarshalError(t *testing.T) {
	var o Object
	o.Set("bad", math.NaN())
	_, err := o.MarshalJSON()
	require.Error(t, err)
	assert.Contains(t, err.Error(), `key "bad"`)
}

func TestMarshal(t *testing.T) {
	var o Object
	o.Set("/tmp/x & y", []string{"https://example.com/?a=1&b=<2>", "ünïcode"})
	o.Set("/tmp/z", []string{"https://example.com/"})

	tests := []struct {
		name   string
		indent int
		want   string
	}{
		{"compact", 0, `{"/tmp/x & y":["https://example.com/?a=1&b=<2>","ünïcode"],"/tmp/z":["https://example.com/"]}`},
		{"negative is compact", -1, `{"/tmp/x & y":["https://example.com/?a=1&b=<2>","ünïcode"],"/tmp/z":["https://example.com/"]}`},
		{"two spaces", 2, "{\n" +
			"  \"/tmp/x & y\": [\n" +
			"    \"https://example.com/?a=1&b=<2>\",\n" +
			"    \"ünïcode\"\n" +
			"  ],\n" +
			"  \"/tmp/z\": [\n" +
			"    \"https://example.com/\"\n" +
			"  ]\n" +
			"}"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Marshal(&o, tt.indent)
			require.NoError(t, err)
			assert.Equal(t, tt.want, string(got))
			assert.True(t, json.Valid(got))
		})
	}
}

func TestMarshal_EmptyObjectIndented(t *testing.T) {
	got, err := Marshal(&Object{}, 2)
	require.NoError(t, err)
	assert.Equal(t, "{}", string(got))
}

func TestMarshal_Errors(t *testing.T) {
	for name, v := range map[string]any{
		"NaN":     math.NaN(),
		"channel": make(chan int),
	} {
		t.Run(name, func(t *testing.T) {
			_, err := Marshal(v, 2)
			require.Error(t, err)
			assert.True(t, errors.Is(err, ErrMarshal), "error should wrap ErrMarshal")
		})
	}
}

func TestEncode(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, Encode(&buf, []string{"a"}, 0))
	assert.Equal(t, "[\"a\"]\n", buf.String())

	buf.Reset()
	err := Encode(&buf, make(chan int), 0)
	assert.ErrorIs(t, err, ErrMarshal)
	assert.Zero(t, buf.Len())
}

type failingWriter struct{}

func (failingWriter) Write([]byte) (int, error) { return 0, errors.New("disk full") }

func TestEncode_WriteError(t *testing.T) {
	err := Encode(failingWriter{}, 1, 0)
	assert.EqualError(t, err, "disk full")
}
