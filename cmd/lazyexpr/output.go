package main

import (
	"errors"
	"fmt"
	"io"

	jsoniter "github.com/json-iterator/go"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// 退出码
const (
	ExitSuccess      = 0 // 成功
	ExitFailure      = 1 // 求值失败
	ExitCommandError = 2 // 参数、配置或文档错误
)

// 错误码，出现在 JSON 输出的 error.code 中
const (
	ErrCodeDocument = "E001" // 表达式文档无法解析
	ErrCodeInput    = "E002" // 行数据无法读取
	ErrCodeEval     = "E003" // 求值失败
	ErrCodeConfig   = "E004" // 配置错误
)

// ExitError 携带退出码的错误，已经按输出格式报告过
type ExitError struct {
	Code    int
	Message string
	Err     error
}

func (e *ExitError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

func (e *ExitError) Unwrap() error {
	return e.Err
}

// exitCode 非 ExitError 的错误按命令错误处理
func exitCode(err error) int {
	var exitErr *ExitError
	if errors.As(err, &exitErr) {
		return exitErr.Code
	}
	return ExitCommandError
}

// response JSON 输出的统一结构
type response struct {
	Status string      `json:"status"`
	Data   interface{} `json:"data,omitempty"`
	Error  *errorBody  `json:"error,omitempty"`
}

type errorBody struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// formatter 按 text 或 json 输出结果
type formatter struct {
	format string
	out    io.Writer
	errOut io.Writer
}

// success 输出结果；text 格式交给命令自己的渲染函数
func (f *formatter) success(data interface{}, text func(w io.Writer) error) error {
	if f.format == "json" {
		return json.NewEncoder(f.out).Encode(response{Status: "ok", Data: data})
	}
	return text(f.out)
}

// fail 报告错误并返回带退出码的 ExitError。
// json 格式写到标准输出，text 格式写到标准错误。
func (f *formatter) fail(exit int, code, message string, err error) error {
	exitErr := &ExitError{Code: exit, Message: message, Err: err}
	if f.format == "json" {
		if encErr := json.NewEncoder(f.out).Encode(response{
			Status: "error",
			Error:  &errorBody{Code: code, Message: exitErr.Error()},
		}); encErr != nil {
			return encErr
		}
		return exitErr
	}
	fmt.Fprintf(f.errOut, "Error [%s]: %s\n", code, exitErr.Error())
	return exitErr
}
