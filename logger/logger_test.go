package logger

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestLevel_String 测试日志级别的字符串表示
func TestLevel_String(t *testing.T) {
	tests := []struct {
		level    Level
		expected string
	}{
		{DEBUG, "DEBUG"},
		{INFO, "INFO"},
		{WARN, "WARN"},
		{ERROR, "ERROR"},
		{OFF, "OFF"},
		{Level(999), "UNKNOWN"},
	}

	for _, test := range tests {
		assert.Equal(t, test.expected, test.level.String())
	}
}

// TestParseLevel 测试解析配置中的日志级别
func TestParseLevel(t *testing.T) {
	tests := []struct {
		input    string
		expected Level
		wantErr  bool
	}{
		{"debug", DEBUG, false},
		{"INFO", INFO, false},
		{"", INFO, false},
		{" warning ", WARN, false},
		{"error", ERROR, false},
		{"off", OFF, false},
		{"verbose", INFO, true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			level, err := ParseLevel(tt.input)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.expected, level)
		})
	}
}

// TestDefaultLogger_Levels 测试级别过滤
func TestDefaultLogger_Levels(t *testing.T) {
	var buf bytes.Buffer
	log := NewLogger(WARN, &buf)

	log.Debug("debug message")
	log.Info("info message")
	log.Warn("warn %s", "message")
	log.Error("error message: %v", 42)

	output := buf.String()
	assert.NotContains(t, output, "debug message")
	assert.NotContains(t, output, "info message")
	assert.Contains(t, output, "[WARN] warn message")
	assert.Contains(t, output, "[ERROR] error message: 42")
}

// TestDefaultLogger_SetLevel 测试运行时修改级别
func TestDefaultLogger_SetLevel(t *testing.T) {
	var buf bytes.Buffer
	log := NewLogger(ERROR, &buf)

	log.Info("hidden")
	log.SetLevel(DEBUG)
	log.Debug("visible")

	output := buf.String()
	assert.NotContains(t, output, "hidden")
	assert.Contains(t, output, "[DEBUG] visible")

	buf.Reset()
	log.SetLevel(OFF)
	log.Error("nothing")
	assert.Empty(t, buf.String())
}

// TestDefaultLogger_With 测试组件logger
func TestDefaultLogger_With(t *testing.T) {
	var buf bytes.Buffer
	root := NewLogger(INFO, &buf)
	engine := root.With("engine")
	compile := engine.With("compile")

	engine.Info("started")
	compile.Info("lowered %d nodes", 3)

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	require.Len(t, lines, 2)
	assert.Contains(t, lines[0], "[INFO] [engine] started")
	assert.Contains(t, lines[1], "[INFO] [engine.compile] lowered 3 nodes")

	// 组件logger与根logger共享级别
	buf.Reset()
	root.SetLevel(ERROR)
	compile.Info("hidden")
	assert.Empty(t, buf.String())
}

// TestDiscardLogger 测试丢弃日志
func TestDiscardLogger(t *testing.T) {
	log := NewDiscardLogger()
	assert.NotPanics(t, func() {
		log.Debug("x")
		log.Info("x")
		log.Warn("x")
		log.Error("x")
		log.SetLevel(DEBUG)
		log.With("c").Info("x")
	})
}

// TestGlobalLogger 测试全局默认logger
func TestGlobalLogger(t *testing.T) {
	original := GetDefault()
	defer SetDefault(original)

	var buf bytes.Buffer
	SetDefault(NewLogger(DEBUG, &buf))

	Debug("global %s", "debug")
	Info("global info")
	Warn("global warn")
	Error("global error")

	output := buf.String()
	assert.Contains(t, output, "[DEBUG] global debug")
	assert.Contains(t, output, "[INFO] global info")
	assert.Contains(t, output, "[WARN] global warn")
	assert.Contains(t, output, "[ERROR] global error")
}
