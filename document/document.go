// Package document 把声明式的 YAML/JSON 表达式文档转换为表达式树，
// 所有条件表达式都通过 lazyexpr.When 构建器折叠。
package document

import (
	"errors"
	"fmt"
	"os"
	"sort"
	"strings"

	"github.com/spf13/cast"
	"gopkg.in/yaml.v3"

	"github.com/rulego/lazyexpr"
	"github.com/rulego/lazyexpr/expr"
)

var (
	// ErrInvalidDocument 文档结构不合法
	ErrInvalidDocument = errors.New("invalid expression document")
	// ErrUnknownKey 节点使用了未知的键
	ErrUnknownKey = errors.New("unknown node key")
)

// Error 带节点路径的解析错误，如 select[0].when[1].then
type Error struct {
	Path string
	Err  error
}

func (e *Error) Error() string {
	if e.Path == "" {
		return e.Err.Error()
	}
	return fmt.Sprintf("%s: %v", e.Path, e.Err)
}

func (e *Error) Unwrap() error {
	return e.Err
}

// 二元运算键
var binaryOps = map[string]func(l, r expr.Node) expr.Binary{
	"eq":  expr.Eq,
	"neq": expr.NotEq,
	"gt":  expr.Gt,
	"gte": expr.GtEq,
	"lt":  expr.Lt,
	"lte": expr.LtEq,
	"and": expr.And,
	"or":  expr.Or,
}

// Document 解析后的表达式文档，Nodes 保持声明顺序
type Document struct {
	Nodes []expr.Node
}

// Load 从文件读取文档
func Load(path string) (*Document, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read document %s: %w", path, err)
	}
	return Parse(data)
}

// Parse 解析 YAML 或 JSON 文档。
// 文档是单个节点，或者带有 select 列表的映射。
func Parse(data []byte) (*Document, error) {
	var raw interface{}
	if err := yaml.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidDocument, err)
	}
	if raw == nil {
		return nil, &Error{Err: fmt.Errorf("%w: empty document", ErrInvalidDocument)}
	}

	m, err := asMap("", raw)
	if err != nil {
		return nil, err
	}
	if list, ok := m["select"]; ok {
		if len(m) != 1 {
			return nil, &Error{Err: fmt.Errorf("%w: select must be the only top-level key", ErrInvalidDocument)}
		}
		items, err := asList("select", list)
		if err != nil {
			return nil, err
		}
		doc := &Document{Nodes: make([]expr.Node, len(items))}
		for i, item := range items {
			n, err := ParseNode(fmt.Sprintf("select[%d]", i), item)
			if err != nil {
				return nil, err
			}
			doc.Nodes[i] = n
		}
		return doc, nil
	}

	n, err := ParseNode("", m)
	if err != nil {
		return nil, err
	}
	return &Document{Nodes: []expr.Node{n}}, nil
}

// ParseNode 把通用的解码结果转换为表达式节点，path 用于错误信息
func ParseNode(path string, raw interface{}) (expr.Node, error) {
	m, err := asMap(path, raw)
	if err != nil {
		return nil, err
	}

	if _, ok := m["when"]; ok {
		return parseWhen(path, m)
	}
	if len(m) != 1 {
		return nil, &Error{Path: path, Err: fmt.Errorf("%w: node must have exactly one key, got %s",
			ErrInvalidDocument, keys(m))}
	}

	for key, value := range m {
		sub := join(path, key)
		switch key {
		case "col":
			name, err := cast.ToStringE(value)
			if err != nil {
				return nil, &Error{Path: sub, Err: fmt.Errorf("%w: %v", ErrInvalidDocument, err)}
			}
			return lazyexpr.Col(name), nil
		case "cols":
			items, err := asList(sub, value)
			if err != nil {
				return nil, err
			}
			names, err := cast.ToStringSliceE(items)
			if err != nil {
				return nil, &Error{Path: sub, Err: fmt.Errorf("%w: %v", ErrInvalidDocument, err)}
			}
			return lazyexpr.Cols(names), nil
		case "lit":
			n, err := lazyexpr.LitValue(value)
			if err != nil {
				return nil, &Error{Path: sub, Err: err}
			}
			return n, nil
		case "count", "first", "last":
			if err := noArguments(sub, value); err != nil {
				return nil, err
			}
			switch key {
			case "count":
				return lazyexpr.Count(), nil
			case "first":
				return lazyexpr.First(), nil
			default:
				return lazyexpr.Last(), nil
			}
		case "otherwise":
			return nil, &Error{Path: sub, Err: fmt.Errorf("%w: otherwise without when", ErrInvalidDocument)}
		}

		if build, ok := binaryOps[key]; ok {
			items, err := asList(sub, value)
			if err != nil {
				return nil, err
			}
			if len(items) != 2 {
				return nil, &Error{Path: sub, Err: fmt.Errorf("%w: %s needs 2 operands, got %d",
					ErrInvalidDocument, key, len(items))}
			}
			left, err := ParseNode(join(sub, "[0]"), items[0])
			if err != nil {
				return nil, err
			}
			right, err := ParseNode(join(sub, "[1]"), items[1])
			if err != nil {
				return nil, err
			}
			return build(left, right), nil
		}
		return nil, &Error{Path: sub, Err: fmt.Errorf("%w: %q", ErrUnknownKey, key)}
	}
	return nil, &Error{Path: path, Err: ErrInvalidDocument}
}

// parseWhen 用条件构建器折叠 when 列表
func parseWhen(path string, m map[string]interface{}) (expr.Node, error) {
	for key := range m {
		if key != "when" && key != "otherwise" {
			return nil, &Error{Path: join(path, key), Err: fmt.Errorf("%w: %q next to when", ErrUnknownKey, key)}
		}
	}
	whenPath := join(path, "when")
	items, err := asList(whenPath, m["when"])
	if err != nil {
		return nil, err
	}
	if len(items) == 0 {
		return nil, &Error{Path: whenPath, Err: fmt.Errorf("%w: at least one branch is required", ErrInvalidDocument)}
	}
	rawOtherwise, ok := m["otherwise"]
	if !ok {
		return nil, &Error{Path: path, Err: fmt.Errorf("%w: when requires otherwise", ErrInvalidDocument)}
	}

	branches := make([]expr.Branch, len(items))
	for i, item := range items {
		branchPath := fmt.Sprintf("%s[%d]", whenPath, i)
		b, err := asMap(branchPath, item)
		if err != nil {
			return nil, err
		}
		for key := range b {
			if key != "if" && key != "then" {
				return nil, &Error{Path: join(branchPath, key), Err: fmt.Errorf("%w: %q", ErrUnknownKey, key)}
			}
		}
		for _, key := range []string{"if", "then"} {
			if _, ok := b[key]; !ok {
				return nil, &Error{Path: branchPath, Err: fmt.Errorf("%w: missing %s", ErrInvalidDocument, key)}
			}
		}
		if branches[i].Predicate, err = ParseNode(join(branchPath, "if"), b["if"]); err != nil {
			return nil, err
		}
		if branches[i].Result, err = ParseNode(join(branchPath, "then"), b["then"]); err != nil {
			return nil, err
		}
	}
	otherwise, err := ParseNode(join(path, "otherwise"), rawOtherwise)
	if err != nil {
		return nil, err
	}

	first := lazyexpr.When(branches[0].Predicate).Then(branches[0].Result)
	if len(branches) == 1 {
		return first.Otherwise(otherwise), nil
	}
	chain := first.When(branches[1].Predicate).Then(branches[1].Result)
	for _, b := range branches[2:] {
		chain = chain.When(b.Predicate).Then(b.Result)
	}
	return chain.Otherwise(otherwise), nil
}

func asMap(path string, raw interface{}) (map[string]interface{}, error) {
	switch raw.(type) {
	case map[string]interface{}, map[interface{}]interface{}:
		m, err := cast.ToStringMapE(raw)
		if err != nil {
			return nil, &Error{Path: path, Err: fmt.Errorf("%w: %v", ErrInvalidDocument, err)}
		}
		return m, nil
	default:
		return nil, &Error{Path: path, Err: fmt.Errorf("%w: expected a mapping, got %T", ErrInvalidDocument, raw)}
	}
}

func asList(path string, raw interface{}) ([]interface{}, error) {
	items, ok := raw.([]interface{})
	if !ok {
		return nil, &Error{Path: path, Err: fmt.Errorf("%w: expected a list, got %T", ErrInvalidDocument, raw)}
	}
	return items, nil
}

// noArguments count/first/last 的值只能是空或空映射
func noArguments(path string, raw interface{}) error {
	if raw == nil {
		return nil
	}
	if m, err := asMap(path, raw); err == nil && len(m) == 0 {
		return nil
	}
	return &Error{Path: path, Err: fmt.Errorf("%w: takes no arguments", ErrInvalidDocument)}
}

func join(path, key string) string {
	switch {
	case path == "":
		return key
	case strings.HasPrefix(key, "["):
		return path + key
	default:
		return path + "." + key
	}
}

func keys(m map[string]interface{}) string {
	out := make([]string, 0, len(m))
	for k := range m {
		out = append(out, k)
	}
	sort.Strings(out)
	return "[" + strings.Join(out, ", ") + "]"
}
