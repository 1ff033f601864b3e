package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/sebdah/goldie/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rulego/lazyexpr"
	"github.com/rulego/lazyexpr/engine"
	"github.com/rulego/lazyexpr/logger"
)

func fixture(name string) string {
	return filepath.Join("testdata", name)
}

// execute 运行命令并捕获标准输出和标准错误
func execute(t *testing.T, stdin string, args ...string) (string, string, error) {
	t.Helper()
	out, errOut, _, err := executeWithOptions(t, stdin, args...)
	return out, errOut, err
}

// executeWithOptions 同 execute，额外返回命令结束后的共享参数
func executeWithOptions(t *testing.T, stdin string, args ...string) (string, string, *rootOptions, error) {
	t.Helper()
	previous := logger.GetDefault()
	t.Cleanup(func() { logger.SetDefault(previous) })

	cmd, opts := newRoot()
	var out, errOut bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&errOut)
	cmd.SetIn(strings.NewReader(stdin))
	cmd.SetArgs(args)
	err := runRoot(cmd, opts)
	return out.String(), errOut.String(), opts, err
}

func newGoldie(t *testing.T) *goldie.Goldie {
	return goldie.New(t,
		goldie.WithFixtureDir("testdata/golden"),
		goldie.WithNameSuffix(".golden"),
	)
}

func TestRootCommand(t *testing.T) {
	cmd := newRootCommand()
	assert.Equal(t, "lazyexpr", cmd.Use)

	for _, name := range []string{"build", "eval"} {
		sub, _, err := cmd.Find([]string{name})
		require.NoError(t, err)
		assert.Equal(t, name, sub.Name())
	}

	formatFlag := cmd.PersistentFlags().Lookup("format")
	require.NotNil(t, formatFlag)
	assert.Equal(t, "text", formatFlag.DefValue)

	verboseFlag := cmd.PersistentFlags().Lookup("verbose")
	require.NotNil(t, verboseFlag)
	assert.Equal(t, "v", verboseFlag.Shorthand)
}

func TestBuildGolden(t *testing.T) {
	out, _, err := execute(t, "", "build", fixture("temperature.yaml"))
	require.NoError(t, err)
	newGoldie(t).Assert(t, "build_temperature", []byte(out))
}

func TestBuildStdin(t *testing.T) {
	out, _, err := execute(t, "{gt: [{col: a}, {lit: 1}]}", "build", "-")
	require.NoError(t, err)
	assert.Equal(t, "(col(\"a\") > lit(1))\n", out)
}

func TestBuildJSON(t *testing.T) {
	out, _, err := execute(t, "", "build", "--format", "json", fixture("temperature.yaml"))
	require.NoError(t, err)

	var resp struct {
		Status string                   `json:"status"`
		Data   []map[string]interface{} `json:"data"`
	}
	require.NoError(t, json.Unmarshal([]byte(out), &resp))
	assert.Equal(t, "ok", resp.Status)
	require.Len(t, resp.Data, 3)
	assert.Equal(t, map[string]interface{}{"column": "device"}, resp.Data[0])
	assert.Contains(t, resp.Data[1], "when")
	assert.Contains(t, resp.Data[1], "otherwise")
	assert.Equal(t, map[string]interface{}{"count": map[string]interface{}{}}, resp.Data[2])
}

func TestBuildArrayLiteral(t *testing.T) {
	out, stderr, err := execute(t, "", "build", "--format", "json", fixture("array_literal.yaml"))
	require.Error(t, err)
	assert.ErrorIs(t, err, lazyexpr.ErrUnsupportedLiteralType)
	assert.Equal(t, ExitCommandError, exitCode(err))
	assert.Empty(t, stderr)

	var resp response
	require.NoError(t, json.Unmarshal([]byte(out), &resp))
	assert.Equal(t, "error", resp.Status)
	require.NotNil(t, resp.Error)
	assert.Equal(t, ErrCodeDocument, resp.Error.Code)
	assert.Contains(t, resp.Error.Message, "when[0].then.lit")

	// text 格式的错误写到标准错误
	out, stderr, err = execute(t, "", "build", fixture("array_literal.yaml"))
	require.Error(t, err)
	assert.Empty(t, out)
	assert.True(t, strings.HasPrefix(stderr, "Error [E001]: load document: "))
}

func TestEvalGolden(t *testing.T) {
	tests := []struct {
		name string
		args []string
	}{
		{"eval_temperature", []string{"eval", fixture("temperature.yaml"), "--rows", fixture("rows.json")}},
		{"eval_temperature_filtered", []string{"eval", fixture("temperature.yaml"),
			"--rows", fixture("rows.json"), "--filter", fixture("warm_filter.yaml")}},
		{"eval_missing_column_lenient", []string{"eval", fixture("missing_column.yaml"),
			"--rows", fixture("rows.json"), "--lenient"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out, _, err := execute(t, "", tt.args...)
			require.NoError(t, err)
			newGoldie(t).Assert(t, tt.name, []byte(out))
		})
	}
}

func TestEvalJSON(t *testing.T) {
	out, _, err := execute(t, "", "eval", "--format", "json", fixture("temperature.yaml"), "--rows", fixture("rows.json"))
	require.NoError(t, err)

	var resp struct {
		Status string      `json:"status"`
		Data   frameResult `json:"data"`
	}
	require.NoError(t, json.Unmarshal([]byte(out), &resp))
	assert.Equal(t, "ok", resp.Status)
	assert.Equal(t, []string{"device", "literal", "count"}, resp.Data.Columns)
	require.Len(t, resp.Data.Rows, 4)
	assert.Equal(t, map[string]interface{}{"device": "aa", "literal": "hot", "count": 4.0}, resp.Data.Rows[0])
	assert.Equal(t, map[string]interface{}{"device": "cc", "literal": "cold", "count": 4.0}, resp.Data.Rows[2])
}

func TestEvalStdinRows(t *testing.T) {
	rows := `[{"a": 1, "b": "x"}, {"a": 9007199254740993, "b": "y"}]`
	out, _, err := execute(t, rows, "eval", "--format", "json", "--columns", "b,a",
		fixture("warm_filter.yaml"), "--rows", "-", "--lenient")
	require.NoError(t, err)
	assert.Contains(t, out, `"columns":["temp"]`)

	out, _, err = execute(t, rows, "build", "-")
	require.Error(t, err)
	assert.Empty(t, out)
}

func TestEvalErrors(t *testing.T) {
	t.Run("缺失列", func(t *testing.T) {
		_, stderr, err := execute(t, "", "eval", fixture("missing_column.yaml"), "--rows", fixture("rows.json"))
		require.Error(t, err)
		assert.ErrorIs(t, err, engine.ErrColumnNotFound)
		assert.Equal(t, ExitFailure, exitCode(err))
		assert.Contains(t, stderr, "Error [E003]")
	})

	t.Run("行数超限", func(t *testing.T) {
		_, _, err := execute(t, "", "eval", fixture("temperature.yaml"), "--rows", fixture("rows.json"), "--max-rows", "2")
		assert.ErrorIs(t, err, engine.ErrTooManyRows)
	})

	t.Run("行数据不是数组", func(t *testing.T) {
		_, stderr, err := execute(t, `{"a": 1}`, "eval", fixture("temperature.yaml"), "--rows", "-")
		require.Error(t, err)
		assert.Equal(t, ExitCommandError, exitCode(err))
		assert.Contains(t, stderr, "Error [E002]")
	})

	t.Run("缺少 rows 参数", func(t *testing.T) {
		_, _, err := execute(t, "", "eval", fixture("temperature.yaml"))
		require.Error(t, err)
		assert.Equal(t, ExitCommandError, exitCode(err))
	})

	t.Run("过滤文档有多个节点", func(t *testing.T) {
		_, _, err := execute(t, "", "eval", fixture("temperature.yaml"),
			"--rows", fixture("rows.json"), "--filter", fixture("temperature.yaml"))
		require.Error(t, err)
		assert.Contains(t, err.Error(), "exactly one predicate")
	})
}

func TestConfigFile(t *testing.T) {
	// 配置文件设置 json 输出和宽松列解析
	out, _, err := execute(t, "", "--config", fixture("config.yaml"),
		"eval", fixture("missing_column.yaml"), "--rows", fixture("rows.json"))
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(out, `{"status":"ok"`))

	// 命令行参数优先
	out, _, err = execute(t, "", "--config", fixture("config.yaml"), "--format", "text",
		"eval", fixture("missing_column.yaml"), "--rows", fixture("rows.json"))
	require.NoError(t, err)
	newGoldie(t).Assert(t, "eval_missing_column_lenient", []byte(out))

	_, stderr, err := execute(t, "", "--config", fixture("missing.yaml"), "build", fixture("temperature.yaml"))
	require.Error(t, err)
	assert.Contains(t, stderr, "Error [E004]")
}

func TestInvalidFormat(t *testing.T) {
	_, stderr, err := execute(t, "", "--format", "xml", "build", fixture("temperature.yaml"))
	require.Error(t, err)
	assert.Equal(t, ExitCommandError, exitCode(err))
	assert.Contains(t, stderr, "invalid format")
}

func TestVerboseLogging(t *testing.T) {
	_, stderr, err := execute(t, "", "-v", "eval", fixture("temperature.yaml"), "--rows", fixture("rows.json"))
	require.NoError(t, err)
	assert.Contains(t, stderr, "[DEBUG] [cli]")
	assert.Contains(t, stderr, "[DEBUG] [cli.engine]")
}

// TestLogFileClosed 日志写入文件时，无论命令成功还是失败都会关闭文件
func TestLogFileClosed(t *testing.T) {
	tests := []struct {
		name    string
		stdin   string
		args    []string
		wantErr bool
	}{
		{"成功", "", []string{"eval", fixture("temperature.yaml"), "--rows", fixture("rows.json")}, false},
		{"求值失败", "", []string{"eval", fixture("missing_column.yaml"), "--rows", fixture("rows.json")}, true},
		{"行数据错误", `{"a": 1}`, []string{"eval", fixture("temperature.yaml"), "--rows", "-"}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			dir := t.TempDir()
			logPath := filepath.Join(dir, "lazyexpr.log")
			configPath := filepath.Join(dir, "config.yaml")
			config := "log:\n  level: debug\n  output: " + logPath + "\n"
			require.NoError(t, os.WriteFile(configPath, []byte(config), 0o644))

			_, _, opts, err := executeWithOptions(t, tt.stdin, append([]string{"--config", configPath}, tt.args...)...)
			if tt.wantErr {
				require.Error(t, err)
			} else {
				require.NoError(t, err)
			}
			assert.Nil(t, opts.logFile)

			data, err := os.ReadFile(logPath)
			require.NoError(t, err)
			assert.Contains(t, string(data), "[DEBUG] [cli]")
		})
	}
}
