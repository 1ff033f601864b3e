package engine

import (
	"fmt"
	"strings"

	"github.com/grafana/regexp"

	"github.com/rulego/lazyexpr/expr"
)

// isRegexSelector 以 ^ 开头、$ 结尾的列名按正则解释
func isRegexSelector(name string) bool {
	return len(name) >= 2 && strings.HasPrefix(name, "^") && strings.HasSuffix(name, "$")
}

// resolveSelector 把列名选择器解析为数据帧中的列名列表，保持数据帧的列顺序。
//   - "*" 选择全部列
//   - "^...$" 选择名称匹配正则的列
//   - 其他按精确名称选择
func resolveSelector(f *Frame, name string, strict bool) ([]string, error) {
	switch {
	case name == "*":
		return f.Names(), nil
	case isRegexSelector(name):
		re, err := regexp.Compile(name)
		if err != nil {
			return nil, fmt.Errorf("invalid column regex %q: %w", name, err)
		}
		var matched []string
		for _, n := range f.Names() {
			if re.MatchString(n) {
				matched = append(matched, n)
			}
		}
		return matched, nil
	case f.has(name) || !strict:
		return []string{name}, nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrColumnNotFound, name)
	}
}

// resolveOne 表达式内部的选择器必须恰好解析为一列
func resolveOne(f *Frame, name string, strict bool) (string, error) {
	names, err := resolveSelector(f, name, strict)
	if err != nil {
		return "", err
	}
	if len(names) != 1 {
		return "", fmt.Errorf("%w: %q matched %d columns", ErrAmbiguousSelector, name, len(names))
	}
	return names[0], nil
}

// resolvePositional first()/last() 按数据帧的列顺序取第一列或最后一列
func resolvePositional(f *Frame, n expr.Node) (string, error) {
	if f.Width() == 0 {
		return "", fmt.Errorf("%w: %s on a frame without columns", ErrColumnNotFound, n)
	}
	names := f.Names()
	if _, isLast := n.(expr.Last); isLast {
		return names[len(names)-1], nil
	}
	return names[0], nil
}
