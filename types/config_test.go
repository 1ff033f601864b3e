package types

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestNewConfig 测试默认配置
func TestNewConfig(t *testing.T) {
	config := NewConfig()

	assert.Equal(t, "info", config.Log.Level)
	assert.Equal(t, "stderr", config.Log.Output)
	assert.Equal(t, "text", config.Format)
	assert.True(t, config.Engine.BroadcastScalars)
	assert.True(t, config.Engine.StrictColumns)
	assert.Equal(t, 0, config.Engine.MaxRows)
	assert.NoError(t, config.Validate())
}

// TestLenientEngineConfig 测试宽松预设
func TestLenientEngineConfig(t *testing.T) {
	config := LenientEngineConfig()
	assert.False(t, config.StrictColumns)
	assert.True(t, config.BroadcastScalars)
}

// TestParseConfig 测试YAML解析，未出现的字段保留默认值
func TestParseConfig(t *testing.T) {
	data := []byte(`
log:
  level: debug
engine:
  strictColumns: false
  maxRows: 100
format: json
`)
	config, err := ParseConfig(data)
	require.NoError(t, err)

	assert.Equal(t, "debug", config.Log.Level)
	assert.Equal(t, "stderr", config.Log.Output)
	assert.Equal(t, "json", config.Format)
	assert.False(t, config.Engine.StrictColumns)
	assert.True(t, config.Engine.BroadcastScalars)
	assert.Equal(t, 100, config.Engine.MaxRows)
}

// TestParseConfigErrors 测试非法配置
func TestParseConfigErrors(t *testing.T) {
	tests := []struct {
		name string
		data string
	}{
		{"非法YAML", "log: [unclosed"},
		{"未知日志级别", "log:\n  level: chatty\n"},
		{"未知输出格式", "format: xml\n"},
		{"负的行数限制", "engine:\n  maxRows: -1\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParseConfig([]byte(tt.data))
			assert.Error(t, err)
		})
	}
}

// TestLoadConfig 测试从文件加载
func TestLoadConfig(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "lazyexpr.yaml")
	require.NoError(t, os.WriteFile(path, []byte("log:\n  level: warn\n"), 0o644))

	config, err := LoadConfig(path)
	require.NoError(t, err)
	assert.Equal(t, "warn", config.Log.Level)

	_, err = LoadConfig(filepath.Join(dir, "missing.yaml"))
	assert.Error(t, err)
}
