package xconf

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testYAMLContent = `
log:
  level: debug
  format: json
  file: /var/log/wherefrom.log
  max_backups: 5
output:
  indent: 4
stats: true
jobs: 8
`

const testJSONContent = `{
  "log": {"level": "warn", "add_source": true},
  "output": {"indent": 0}
}`

func createTempFile(t *testing.T, name, content string) string {
	t.Helper()
	p := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(p, []byte(content), 0o600))
	return p
}

func TestLoad_YAML(t *testing.T) {
	for _, name := range []string{"config.yaml", "config.YML"} {
		t.Run(name, func(t *testing.T) {
			s, err := Load(createTempFile(t, name, testYAMLContent))
			require.NoError(t, err)

			want := Defaults()
			want.Log.Level = "debug"
			want.Log.Format = "json"
			want.Log.File = "/var/log/wherefrom.log"
			want.Log.MaxBackups = 5
			want.Output.Indent = 4
			want.Stats = true
			want.Jobs = 8
			assert.Equal(t, want, s)
		})
	}
}

func TestLoad_JSONKeepsDefaults(t *testing.T) {
	s, err := Load(createTempFile(t, "config.json", testJSONContent))
	require.NoError(t, err)

	assert.Equal(t, "warn", s.Log.Level)
	assert.True(t, s.Log.AddSource)
	assert.Equal(t, 0, s.Output.Indent)
	// 未出现的键保持默认
	assert.Equal(t, "text", s.Log.Format)
	assert.Equal(t, 100, s.Log.MaxSizeMB)
	assert.Equal(t, 1, s.Jobs)
}

func TestLoad_EmptyPath(t *testing.T) {
	s, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, Defaults(), s)
}

func TestLoad_EmptyFile(t *testing.T) {
	s, err := Load(createTempFile(t, "empty.yaml", ""))
	require.NoError(t, err)
	assert.Equal(t, Defaults(), s)
}

func TestLoad_Errors(t *testing.T) {
	tests := []struct {
		name    string
		file    string
		content string
		wantErr error
	}{
		{"unknown extension", "config.toml", "a = 1", ErrUnsupportedFormat},
		{"no extension", "config", "a: 1", ErrUnsupportedFormat},
		{"bad yaml", "bad.yaml", "log: [unclosed", ErrParseFailed},
		{"bad json", "bad.json", "{", ErrParseFailed},
		{"unknown key", "typo.yaml", "log:\n  levle: debug\n", ErrUnknownKey},
		{"wrong type", "type.yaml", "jobs: [1, 2]\n", ErrUnmarshalFailed},
		{"bad level", "level.yaml", "log:\n  level: loud\n", ErrInvalidSetting},
		{"bad format", "format.yaml", "log:\n  format: xml\n", ErrInvalidSetting},
		{"negative indent", "indent.yaml", "output:\n  indent: -1\n", ErrInvalidSetting},
		{"huge indent", "indent.json", `{"output": {"indent": 100}}`, ErrInvalidSetting},
		{"negative jobs", "jobs.yaml", "jobs: -2\n", ErrInvalidSetting},
		{"negative max size", "size.yaml", "log:\n  max_size_mb: -1\n", ErrInvalidSetting},
		{"negative backups", "backups.yaml", "log:\n  max_backups: -1\n", ErrInvalidSetting},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Load(createTempFile(t, tt.file, tt.content))
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.ErrorIs(t, err, ErrLoadFailed)
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestParse_UnknownKeysListed(t *testing.T) {
	_, err := Parse([]byte("zeta: 1\nalpha: 2\n"), FormatYAML)
	require.ErrorIs(t, err, ErrUnknownKey)
	assert.Contains(t, err.Error(), "alpha, zeta")
}

func TestParse_WeakTyping(t *testing.T) {
	s, err := Parse([]byte(`{"output": {"indent": "3"}, "jobs": "2"}`), FormatJSON)
	require.NoError(t, err)
	assert.Equal(t, 3, s.Output.Indent)
	assert.Equal(t, 2, s.Jobs)
}

func TestParse_UnsupportedFormat(t *testing.T) {
	_, err := Parse([]byte("a: 1"), Format("toml"))
	assert.ErrorIs(t, err, ErrUnsupportedFormat)
}

func TestSettings_Validate(t *testing.T) {
	assert.NoError(t, Defaults().Validate())

	s := Defaults()
	s.Log.Format = ""
	assert.NoError(t, s.Validate(), "empty format falls back to text")

	s = Defaults()
	s.Log.Level = "WARNING"
	assert.NoError(t, s.Validate())
}
