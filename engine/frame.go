package engine

import (
	"fmt"
	"sort"
)

// Column 命名的列数据
type Column struct {
	Name   string
	Values []interface{}
}

// Frame 按顺序排列的等长列集合，构造后不可变
type Frame struct {
	columns []Column
	index   map[string]int
	height  int
}

// NewFrame 创建数据帧。列名必须唯一，所有列长度必须相同。
// 列数据会被复制。
func NewFrame(columns ...Column) (*Frame, error) {
	f := &Frame{
		columns: make([]Column, 0, len(columns)),
		index:   make(map[string]int, len(columns)),
	}
	for i, c := range columns {
		if _, exists := f.index[c.Name]; exists {
			return nil, fmt.Errorf("%w: %q", ErrDuplicateOutput, c.Name)
		}
		if i == 0 {
			f.height = len(c.Values)
		} else if len(c.Values) != f.height {
			return nil, fmt.Errorf("%w: column %q has %d values, expected %d",
				ErrLengthMismatch, c.Name, len(c.Values), f.height)
		}
		values := make([]interface{}, len(c.Values))
		copy(values, c.Values)
		f.index[c.Name] = len(f.columns)
		f.columns = append(f.columns, Column{Name: c.Name, Values: values})
	}
	return f, nil
}

// FrameFromRows 由行数据构建数据帧。
// names 决定列顺序；为空时按首次出现顺序收集所有行的键（同一行内按键名排序）。
// 行中缺失的键按空值处理。
func FrameFromRows(names []string, rows []map[string]interface{}) (*Frame, error) {
	if len(names) == 0 {
		names = collectNames(rows)
	}
	columns := make([]Column, len(names))
	for i, name := range names {
		values := make([]interface{}, len(rows))
		for r, row := range rows {
			values[r] = row[name]
		}
		columns[i] = Column{Name: name, Values: values}
	}
	return NewFrame(columns...)
}

func collectNames(rows []map[string]interface{}) []string {
	seen := make(map[string]bool)
	var names []string
	for _, row := range rows {
		keys := make([]string, 0, len(row))
		for k := range row {
			if !seen[k] {
				keys = append(keys, k)
			}
		}
		sort.Strings(keys)
		for _, k := range keys {
			seen[k] = true
			names = append(names, k)
		}
	}
	return names
}

// Height 行数
func (f *Frame) Height() int {
	return f.height
}

// Width 列数
func (f *Frame) Width() int {
	return len(f.columns)
}

// Names 按顺序返回列名
func (f *Frame) Names() []string {
	names := make([]string, len(f.columns))
	for i, c := range f.columns {
		names[i] = c.Name
	}
	return names
}

// Column 按名称获取列，返回的数据是副本
func (f *Frame) Column(name string) (Column, bool) {
	i, ok := f.index[name]
	if !ok {
		return Column{}, false
	}
	c := f.columns[i]
	values := make([]interface{}, len(c.Values))
	copy(values, c.Values)
	return Column{Name: c.Name, Values: values}, true
}

// Rows 按行返回数据，每行是列名到值的映射
func (f *Frame) Rows() []map[string]interface{} {
	rows := make([]map[string]interface{}, f.height)
	for r := 0; r < f.height; r++ {
		row := make(map[string]interface{}, len(f.columns))
		for _, c := range f.columns {
			row[c.Name] = c.Values[r]
		}
		rows[r] = row
	}
	return rows
}

// Records 按行返回数据，值的顺序与 Names 一致
func (f *Frame) Records() [][]interface{} {
	records := make([][]interface{}, f.height)
	for r := 0; r < f.height; r++ {
		record := make([]interface{}, len(f.columns))
		for i, c := range f.columns {
			record[i] = c.Values[r]
		}
		records[r] = record
	}
	return records
}

// value 内部按列下标和行号取值，不复制
func (f *Frame) value(name string, row int) interface{} {
	i, ok := f.index[name]
	if !ok {
		return nil
	}
	return f.columns[i].Values[row]
}

func (f *Frame) has(name string) bool {
	_, ok := f.index[name]
	return ok
}
