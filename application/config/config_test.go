package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/goccy/go-json"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
)

func TestDefault(t *testing.T) {
	cfg := Default()

	assert.Equal(t, "armsim", cfg.Host.ModuleName)
	assert.Equal(t, uint32(4096), cfg.Host.MaxStringLen)
	assert.True(t, cfg.Host.WASI)
	assert.Equal(t, 1<<20, cfg.Console.MaxOutput)
	assert.Equal(t, "info", cfg.Log.Level)
	assert.Equal(t, "text", cfg.Log.Format)
	require.NoError(t, cfg.Validate())
}

func TestParse(t *testing.T) {
	tests := []struct {
		name    string
		yaml    string
		check   func(t *testing.T, cfg Config)
		wantErr string
	}{
		{
			name: "empty document keeps defaults",
			yaml: "",
			check: func(t *testing.T, cfg Config) {
				assert.Equal(t, Default(), cfg)
			},
		},
		{
			name: "partial override",
			yaml: "host:\n  max_string_len: 256\n  wasi: false\n",
			check: func(t *testing.T, cfg Config) {
				assert.Equal(t, uint32(256), cfg.Host.MaxStringLen)
				assert.False(t, cfg.Host.WASI)
				assert.Equal(t, "armsim", cfg.Host.ModuleName)
			},
		},
		{
			name: "unbounded console",
			yaml: "console:\n  max_output: 0\n",
			check: func(t *testing.T, cfg Config) {
				assert.Zero(t, cfg.Console.MaxOutput)
			},
		},
		{
			name: "log settings",
			yaml: "log:\n  level: debug\n  format: console\n",
			check: func(t *testing.T, cfg Config) {
				assert.Equal(t, "debug", cfg.Log.Level)
				assert.Equal(t, "console", cfg.Log.Format)
			},
		},
		{
			name:    "string length too large",
			yaml:    "host:\n  max_string_len: 2097152\n",
			wantErr: `host.max_string_len failed "max"`,
		},
		{
			name:    "zero string length",
			yaml:    "host:\n  max_string_len: 0\n",
			wantErr: `host.max_string_len failed "min"`,
		},
		{
			name:    "empty module name",
			yaml:    "host:\n  module_name: \"\"\n",
			wantErr: `host.module_name failed "required"`,
		},
		{
			name:    "negative output limit",
			yaml:    "console:\n  max_output: -1\n",
			wantErr: `console.max_output failed "min"`,
		},
		{
			name:    "unknown level",
			yaml:    "log:\n  level: verbose\n",
			wantErr: `log.level failed "oneof"`,
		},
		{
			name:    "unknown key",
			yaml:    "host:\n  modul_name: x\n",
			wantErr: "field modul_name not found",
		},
		{
			name:    "malformed yaml",
			yaml:    "host: [",
			wantErr: "failed to parse config",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg, err := Parse([]byte(tt.yaml))
			if tt.wantErr != "" {
				require.Error(t, err)
				assert.Contains(t, err.Error(), tt.wantErr)
				return
			}
			require.NoError(t, err)
			tt.check(t, cfg)
		})
	}
}

func TestLogConfig_SlogLevel(t *testing.T) {
	for level, want := range map[string]string{
		"debug": "DEBUG",
		"info":  "INFO",
		"warn":  "WARN",
		"error": "ERROR",
		"":      "INFO",
	} {
		assert.Equal(t, want, LogConfig{Level: level}.SlogLevel().String(), level)
	}
}

func TestSchema(t *testing.T) {
	data, err := Schema()
	require.NoError(t, err)

	var decoded map[string]any
	require.NoError(t, json.Unmarshal(data, &decoded))

	props, ok := decoded["properties"].(map[string]any)
	require.True(t, ok)
	assert.Contains(t, props, "host")
	assert.Contains(t, props, "console")
	assert.Contains(t, props, "log")
	assert.Contains(t, string(data), "max_string_len")
	assert.Contains(t, string(data), `"armsim"`)
}

type LoadSuite struct {
	suite.Suite
	dir string
}

func (s *LoadSuite) SetupTest() {
	s.dir = s.T().TempDir()
}

func (s *LoadSuite) write(name, content string) string {
	path := filepath.Join(s.dir, name)
	s.Require().NoError(os.WriteFile(path, []byte(content), 0o600))
	return path
}

func (s *LoadSuite) TestLoadFile() {
	path := s.write("swiprint.yaml", "host:\n  module_name: swi\nconsole:\n  max_output: 64\n")

	cfg, err := Load(path)
	s.Require().NoError(err)
	s.Equal("swi", cfg.Host.ModuleName)
	s.Equal(64, cfg.Console.MaxOutput)
}

func (s *LoadSuite) TestLoadMissingFile() {
	_, err := Load(filepath.Join(s.dir, "missing.yaml"))
	s.Require().Error(err)
	s.ErrorIs(err, os.ErrNotExist)
}

func (s *LoadSuite) TestLoadInvalidNamesPath() {
	path := s.write("bad.yaml", "log:\n  format: xml\n")

	_, err := Load(path)
	s.Require().Error(err)
	s.Contains(err.Error(), path)
	s.Contains(err.Error(), "log.format")
}

func TestLoadSuite(t *testing.T) {
	suite.Run(t, new(LoadSuite))
}
