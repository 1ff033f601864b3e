package lazyexpr

import (
	"github.com/rulego/lazyexpr/expr"
)

// Col 列引用。支持:
//   - 普通列名: Col("foo")
//   - 通配符: Col("*")
//   - 正则: 以 ^ 开头、$ 结尾，如 Col("^ham.*$")
//
// 名称原样保存，由查询引擎在规划时解析。
func Col(name string) expr.Node {
	return expr.Col(name)
}

// Cols 按顺序选择多列
func Cols(names []string) expr.Node {
	return expr.Cols(names)
}

// Count 行计数
func Count() expr.Node {
	return expr.CountRows()
}

// First 第一列
func First() expr.Node {
	return expr.FirstColumn()
}

// Last 最后一列
func Last() expr.Node {
	return expr.LastColumn()
}
