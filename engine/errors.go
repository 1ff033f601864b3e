package engine

import "errors"

var (
	// ErrColumnNotFound 引用的列在数据帧中不存在
	ErrColumnNotFound = errors.New("column not found")
	// ErrAmbiguousSelector 表达式内部的选择器必须恰好解析为一列
	ErrAmbiguousSelector = errors.New("selector must resolve to exactly one column inside an expression")
	// ErrDuplicateOutput 输出列名重复
	ErrDuplicateOutput = errors.New("duplicate output column")
	// ErrLengthMismatch 输出列长度不一致且无法广播
	ErrLengthMismatch = errors.New("column length mismatch")
	// ErrTooManyRows 数据帧超过配置的最大行数
	ErrTooManyRows = errors.New("frame exceeds max rows")
	// ErrNotBoolean 谓词的求值结果不是布尔值
	ErrNotBoolean = errors.New("predicate did not evaluate to a boolean")
)
