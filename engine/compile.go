package engine

import (
	"fmt"
	"strings"

	exprlang "github.com/expr-lang/expr"
	"github.com/expr-lang/expr/vm"

	"github.com/rulego/lazyexpr/expr"
)

// program 编译后的逐行表达式。
// 列值和字面量都通过环境变量中的切片传入（c[i]、l[i]），
// 源码中不出现任何需要转义的用户字符串。
type program struct {
	node     expr.Node
	source   string
	vm       *vm.Program
	columns  []string
	literals []interface{}
	name     string
}

// rowWise 引用了列的表达式逐行求值，否则只求值一次得到标量
func (p *program) rowWise() bool {
	return len(p.columns) > 0
}

// eval 求值第 row 行
func (p *program) eval(f *Frame, row int) (interface{}, error) {
	values := make([]interface{}, len(p.columns))
	if row >= 0 {
		for i, name := range p.columns {
			values[i] = f.value(name, row)
		}
	}
	env := map[string]interface{}{
		"c": values,
		"l": p.literals,
	}
	out, err := exprlang.Run(p.vm, env)
	if err != nil {
		return nil, fmt.Errorf("evaluate %s: %w", p.node, err)
	}
	return out, nil
}

// lowering 把表达式树翻译为 expr-lang 源码
type lowering struct {
	frame    *Frame
	strict   bool
	columns  []string
	slots    map[string]int
	literals []interface{}
}

func compileNode(f *Frame, n expr.Node, strict bool) (*program, error) {
	l := &lowering{frame: f, strict: strict, slots: make(map[string]int)}
	source, err := l.lower(n)
	if err != nil {
		return nil, err
	}
	name, err := l.outputName(n)
	if err != nil {
		return nil, err
	}

	env := map[string]interface{}{
		"c": []interface{}{},
		"l": []interface{}{},
	}
	options := append([]exprlang.Option{exprlang.Env(env)}, functionOptions()...)
	compiled, err := exprlang.Compile(source, options...)
	if err != nil {
		return nil, fmt.Errorf("compile %s: %w", n, err)
	}
	return &program{
		node:     n,
		source:   source,
		vm:       compiled,
		columns:  l.columns,
		literals: l.literals,
		name:     name,
	}, nil
}

func (l *lowering) lower(n expr.Node) (string, error) {
	switch v := n.(type) {
	case nil:
		return "", expr.ErrNilNode
	case expr.Column:
		name, err := resolveOne(l.frame, v.Name, l.strict)
		if err != nil {
			return "", err
		}
		return l.column(name), nil
	case expr.First, expr.Last:
		name, err := resolvePositional(l.frame, v)
		if err != nil {
			return "", err
		}
		return l.column(name), nil
	case expr.Columns:
		return "", fmt.Errorf("%w: %s", ErrAmbiguousSelector, v)
	case expr.Literal:
		return l.literal(v.Value.Interface()), nil
	case expr.Count:
		return l.literal(float64(l.frame.Height())), nil
	case expr.Binary:
		fn, ok := opFunctions[v.Op]
		if !ok {
			return "", fmt.Errorf("unsupported operator %q", v.Op)
		}
		left, err := l.lower(v.Left)
		if err != nil {
			return "", err
		}
		right, err := l.lower(v.Right)
		if err != nil {
			return "", err
		}
		return fmt.Sprintf("%s(%s, %s)", fn, left, right), nil
	case expr.Conditional:
		return l.conditional(v)
	default:
		return "", fmt.Errorf("unsupported expression node %T", n)
	}
}

// conditional 从最后一个分支开始嵌套三元表达式，保证按声明顺序求值
func (l *lowering) conditional(c expr.Conditional) (string, error) {
	branches := c.Branches()
	preds := make([]string, len(branches))
	results := make([]string, len(branches))
	for i, b := range branches {
		p, err := l.lower(b.Predicate)
		if err != nil {
			return "", fmt.Errorf("branch %d predicate: %w", i, err)
		}
		r, err := l.lower(b.Result)
		if err != nil {
			return "", fmt.Errorf("branch %d result: %w", i, err)
		}
		preds[i], results[i] = p, r
	}
	out, err := l.lower(c.Otherwise())
	if err != nil {
		return "", fmt.Errorf("otherwise: %w", err)
	}

	var sb strings.Builder
	for i := range branches {
		fmt.Fprintf(&sb, "(truthy(%s) ? %s : ", preds[i], results[i])
	}
	sb.WriteString(out)
	sb.WriteString(strings.Repeat(")", len(branches)))
	return sb.String(), nil
}

func (l *lowering) column(name string) string {
	slot, ok := l.slots[name]
	if !ok {
		slot = len(l.columns)
		l.slots[name] = slot
		l.columns = append(l.columns, name)
	}
	return fmt.Sprintf("c[%d]", slot)
}

func (l *lowering) literal(v interface{}) string {
	l.literals = append(l.literals, v)
	return fmt.Sprintf("l[%d]", len(l.literals)-1)
}

// outputName 结果列名：条件表达式取第一个分支结果的名称，二元表达式取左侧名称
func (l *lowering) outputName(n expr.Node) (string, error) {
	switch v := n.(type) {
	case expr.Column:
		return resolveOne(l.frame, v.Name, l.strict)
	case expr.First, expr.Last:
		return resolvePositional(l.frame, v)
	case expr.Literal:
		return "literal", nil
	case expr.Count:
		return "count", nil
	case expr.Binary:
		return l.outputName(v.Left)
	case expr.Conditional:
		return l.outputName(v.Branches()[0].Result)
	default:
		return "", fmt.Errorf("unsupported expression node %T", n)
	}
}

func functionOptions() []exprlang.Option {
	options := []exprlang.Option{
		exprlang.Function("truthy", func(params ...interface{}) (interface{}, error) {
			return truthy(params[0])
		}, new(func(interface{}) bool)),
	}
	for op, name := range opFunctions {
		op := op
		fn := func(params ...interface{}) (interface{}, error) {
			if op.IsLogical() {
				return logical(op, params[0], params[1])
			}
			return compare(op, params[0], params[1])
		}
		options = append(options, exprlang.Function(name, fn, new(func(interface{}, interface{}) interface{})))
	}
	return options
}
