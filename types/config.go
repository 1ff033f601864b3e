package types

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/rulego/lazyexpr/logger"
)

// Config 命令行工具和参考求值器的配置
type Config struct {
	Log    LogConfig    `json:"log" yaml:"log"`
	Engine EngineConfig `json:"engine" yaml:"engine"`
	// 输出格式: "text" 或 "json"
	Format string `json:"format" yaml:"format"`
}

// LogConfig 日志配置
type LogConfig struct {
	Level  string `json:"level" yaml:"level"`   // debug, info, warn, error, off
	Output string `json:"output" yaml:"output"` // stderr, stdout 或文件路径
}

// EngineConfig 参考求值器配置
type EngineConfig struct {
	// 长度为1的结果列（字面量、count）广播到帧的行数
	BroadcastScalars bool `json:"broadcastScalars" yaml:"broadcastScalars"`
	// 引用不存在的列时报错；关闭时该列按全空值处理
	StrictColumns bool `json:"strictColumns" yaml:"strictColumns"`
	// 单次求值允许的最大行数，0 表示不限制
	MaxRows int `json:"maxRows" yaml:"maxRows"`
}

// NewConfig 创建默认配置
func NewConfig() Config {
	return Config{
		Log: LogConfig{
			Level:  "info",
			Output: "stderr",
		},
		Engine: DefaultEngineConfig(),
		Format: "text",
	}
}

// DefaultEngineConfig 默认求值器配置
func DefaultEngineConfig() EngineConfig {
	return EngineConfig{
		BroadcastScalars: true,
		StrictColumns:    true,
	}
}

// LenientEngineConfig 宽松配置预设：缺失列按空值处理
func LenientEngineConfig() EngineConfig {
	config := DefaultEngineConfig()
	config.StrictColumns = false
	return config
}

// Validate 校验配置
func (c Config) Validate() error {
	if _, err := logger.ParseLevel(c.Log.Level); err != nil {
		return err
	}
	if c.Format != "text" && c.Format != "json" {
		return fmt.Errorf("invalid format %q: must be text or json", c.Format)
	}
	if c.Engine.MaxRows < 0 {
		return fmt.Errorf("engine.maxRows must not be negative, got %d", c.Engine.MaxRows)
	}
	return nil
}

// LoadConfig 从YAML文件加载配置，文件中未出现的字段保留默认值
func LoadConfig(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("read config: %w", err)
	}
	return ParseConfig(data)
}

// ParseConfig 解析YAML配置内容
func ParseConfig(data []byte) (Config, error) {
	config := NewConfig()
	if err := yaml.Unmarshal(data, &config); err != nil {
		return Config{}, fmt.Errorf("parse config: %w", err)
	}
	if err := config.Validate(); err != nil {
		return Config{}, err
	}
	return config, nil
}
