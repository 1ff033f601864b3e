/*
 * Copyright 2025 The RuleGo Authors.
 *
 * Licensed under the Apache License, Version 2.0 (the "License");
 * you may not use this file except in compliance with the License.
 * You may obtain a copy of the License at
 *
 *     http://www.apache.org/licenses/LICENSE-2.0
 *
 * Unless required by applicable law or agreed to in writing, software
 * distributed under the License is distributed on an "AS IS" BASIS,
 * WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
 * See the License for the specific language governing permissions and
 * limitations under the License.
 */

// Package logger provides levelled logging for lazyexpr.
// Loggers can be scoped to a component and the global default can be replaced.
package logger

import (
	"fmt"
	"io"
	"log"
	"os"
	"strings"
	"time"
)

// Level defines log levels
type Level int

const (
	// DEBUG debug level, displays detailed debug information
	DEBUG Level = iota
	// INFO info level, displays general information
	INFO
	// WARN warning level, displays warning information
	WARN
	// ERROR error level, only displays error information
	ERROR
	// OFF disables logging
	OFF
)

// String returns string representation of log level
func (l Level) String() string {
	switch l {
	case DEBUG:
		return "DEBUG"
	case INFO:
		return "INFO"
	case WARN:
		return "WARN"
	case ERROR:
		return "ERROR"
	case OFF:
		return "OFF"
	default:
		return "UNKNOWN"
	}
}

// ParseLevel 解析配置文件中的日志级别，大小写不敏感
func ParseLevel(s string) (Level, error) {
	switch strings.ToUpper(strings.TrimSpace(s)) {
	case "DEBUG":
		return DEBUG, nil
	case "", "INFO":
		return INFO, nil
	case "WARN", "WARNING":
		return WARN, nil
	case "ERROR":
		return ERROR, nil
	case "OFF", "NONE":
		return OFF, nil
	default:
		return INFO, fmt.Errorf("unknown log level %q", s)
	}
}

// Logger interface defines basic methods for logging
type Logger interface {
	// Debug records debug level logs
	Debug(format string, args ...interface{})
	// Info records info level logs
	Info(format string, args ...interface{})
	// Warn records warning level logs
	Warn(format string, args ...interface{})
	// Error records error level logs
	Error(format string, args ...interface{})
	// SetLevel sets the log level
	SetLevel(level Level)
	// With returns a logger that prefixes every line with the component name
	With(component string) Logger
}

// defaultLogger is the default log implementation
type defaultLogger struct {
	level     *Level
	logger    *log.Logger
	component string
}

// NewLogger creates a new logger
// Parameters:
//   - level: log level
//   - output: output destination, such as os.Stdout, os.Stderr, or file
//
// Example:
//
//	logger := NewLogger(INFO, os.Stderr)
//	logger.With("engine").Info("compiled %d expressions", n)
func NewLogger(level Level, output io.Writer) Logger {
	lv := level
	return &defaultLogger{
		level:  &lv,
		logger: log.New(output, "", 0), // 使用自定义格式，不使用标准库的前缀
	}
}

func (l *defaultLogger) Debug(format string, args ...interface{}) {
	l.log(DEBUG, format, args...)
}

func (l *defaultLogger) Info(format string, args ...interface{}) {
	l.log(INFO, format, args...)
}

func (l *defaultLogger) Warn(format string, args ...interface{}) {
	l.log(WARN, format, args...)
}

func (l *defaultLogger) Error(format string, args ...interface{}) {
	l.log(ERROR, format, args...)
}

// SetLevel 设置日志级别，同一个根logger派生出的组件logger共享级别
func (l *defaultLogger) SetLevel(level Level) {
	*l.level = level
}

// With 派生组件logger，嵌套时用点号连接组件名
func (l *defaultLogger) With(component string) Logger {
	name := component
	if l.component != "" {
		name = l.component + "." + component
	}
	return &defaultLogger{level: l.level, logger: l.logger, component: name}
}

// log internal logging method, formats and outputs log information
func (l *defaultLogger) log(level Level, format string, args ...interface{}) {
	current := *l.level
	if current == OFF || level < current {
		return
	}

	timestamp := time.Now().Format("2006-01-02 15:04:05.000")
	message := fmt.Sprintf(format, args...)
	if l.component != "" {
		l.logger.Printf("[%s] [%s] [%s] %s", timestamp, level.String(), l.component, message)
		return
	}
	l.logger.Printf("[%s] [%s] %s", timestamp, level.String(), message)
}

// discardLogger is a logger that discards all log output
type discardLogger struct{}

// NewDiscardLogger creates a logger that discards all logs
func NewDiscardLogger() Logger {
	return discardLogger{}
}

func (discardLogger) Debug(format string, args ...interface{}) {}
func (discardLogger) Info(format string, args ...interface{})  {}
func (discardLogger) Warn(format string, args ...interface{})  {}
func (discardLogger) Error(format string, args ...interface{}) {}
func (discardLogger) SetLevel(level Level)                     {}
func (d discardLogger) With(component string) Logger           { return d }

// Global default logger
var defaultInstance Logger = NewLogger(INFO, os.Stderr)

// SetDefault sets the global default logger
func SetDefault(logger Logger) {
	defaultInstance = logger
}

// GetDefault gets the global default logger
func GetDefault() Logger {
	return defaultInstance
}

// 便捷的全局日志方法

func Debug(format string, args ...interface{}) {
	defaultInstance.Debug(format, args...)
}

func Info(format string, args ...interface{}) {
	defaultInstance.Info(format, args...)
}

func Warn(format string, args ...interface{}) {
	defaultInstance.Warn(format, args...)
}

func Error(format string, args ...interface{}) {
	defaultInstance.Error(format, args...)
}
