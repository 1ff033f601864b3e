package engine

import (
	"context"
	"fmt"

	"github.com/rulego/lazyexpr/expr"
	"github.com/rulego/lazyexpr/logger"
	"github.com/rulego/lazyexpr/types"
)

// Engine 内存参考求值器。
// 只持有不可变的配置，每次调用独立编译，可以被多个goroutine并发使用。
type Engine struct {
	config types.EngineConfig
	log    logger.Logger
}

// Option 求值器配置选项
type Option func(*Engine)

// WithConfig 设置求值器配置
func WithConfig(config types.EngineConfig) Option {
	return func(e *Engine) {
		e.config = config
	}
}

// WithLogger 设置日志记录器
func WithLogger(log logger.Logger) Option {
	return func(e *Engine) {
		e.log = log
	}
}

// New 创建求值器，默认使用 types.DefaultEngineConfig 和全局日志记录器
func New(options ...Option) *Engine {
	e := &Engine{
		config: types.DefaultEngineConfig(),
		log:    logger.GetDefault(),
	}
	for _, option := range options {
		option(e)
	}
	e.log = e.log.With("engine")
	return e
}

// Config 返回当前配置
func (e *Engine) Config() types.EngineConfig {
	return e.config
}

// output 单个输出列；scalar 表示长度为1且可以广播
type output struct {
	name   string
	values []interface{}
	scalar bool
}

// Select 在数据帧上求值一组表达式，返回新的数据帧。
// 顶层的列选择器可以展开为多列（通配符、正则、列列表）；
// 条件表达式和二元表达式逐行求值；字面量和 count() 产生标量，按配置广播到行数。
func (e *Engine) Select(ctx context.Context, f *Frame, nodes ...expr.Node) (*Frame, error) {
	if err := e.checkRows(f); err != nil {
		return nil, err
	}

	var outputs []output
	for _, n := range nodes {
		outs, err := e.evaluate(ctx, f, n)
		if err != nil {
			return nil, err
		}
		outputs = append(outputs, outs...)
	}
	return e.assemble(outputs)
}

// Filter 保留谓词为 true 的行，null 和 false 都被过滤掉
func (e *Engine) Filter(ctx context.Context, f *Frame, predicate expr.Node) (*Frame, error) {
	if err := e.checkRows(f); err != nil {
		return nil, err
	}
	p, err := compileNode(f, predicate, e.config.StrictColumns)
	if err != nil {
		return nil, err
	}
	e.log.Debug("filter %s lowered to %s", predicate, p.source)

	keep := make([]int, 0, f.Height())
	if !p.rowWise() {
		v, err := p.eval(f, -1)
		if err != nil {
			return nil, err
		}
		ok, err := truthy(v)
		if err != nil {
			return nil, err
		}
		if ok {
			for r := 0; r < f.Height(); r++ {
				keep = append(keep, r)
			}
		}
	} else {
		for r := 0; r < f.Height(); r++ {
			if err := ctx.Err(); err != nil {
				return nil, err
			}
			v, err := p.eval(f, r)
			if err != nil {
				return nil, err
			}
			ok, err := truthy(v)
			if err != nil {
				return nil, fmt.Errorf("row %d: %w", r, err)
			}
			if ok {
				keep = append(keep, r)
			}
		}
	}

	columns := make([]Column, f.Width())
	for i, c := range f.columns {
		values := make([]interface{}, len(keep))
		for j, r := range keep {
			values[j] = c.Values[r]
		}
		columns[i] = Column{Name: c.Name, Values: values}
	}
	e.log.Debug("filter kept %d of %d rows", len(keep), f.Height())
	return NewFrame(columns...)
}

func (e *Engine) checkRows(f *Frame) error {
	if e.config.MaxRows > 0 && f.Height() > e.config.MaxRows {
		return fmt.Errorf("%w: %d > %d", ErrTooManyRows, f.Height(), e.config.MaxRows)
	}
	return nil
}

// evaluate 求值单个表达式，顶层选择器直接取列数据
func (e *Engine) evaluate(ctx context.Context, f *Frame, n expr.Node) ([]output, error) {
	switch v := n.(type) {
	case expr.Column:
		names, err := resolveSelector(f, v.Name, e.config.StrictColumns)
		if err != nil {
			return nil, err
		}
		return e.selectColumns(f, names), nil
	case expr.Columns:
		var names []string
		for _, selector := range v.Names() {
			resolved, err := resolveSelector(f, selector, e.config.StrictColumns)
			if err != nil {
				return nil, err
			}
			names = append(names, resolved...)
		}
		return e.selectColumns(f, names), nil
	case expr.First, expr.Last:
		name, err := resolvePositional(f, v)
		if err != nil {
			return nil, err
		}
		return e.selectColumns(f, []string{name}), nil
	}

	p, err := compileNode(f, n, e.config.StrictColumns)
	if err != nil {
		return nil, err
	}
	e.log.Debug("%s lowered to %s, columns %v", n, p.source, expr.ColumnNames(n))

	if !p.rowWise() {
		v, err := p.eval(f, -1)
		if err != nil {
			return nil, err
		}
		return []output{{name: p.name, values: []interface{}{v}, scalar: true}}, nil
	}

	values := make([]interface{}, f.Height())
	for r := range values {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		v, err := p.eval(f, r)
		if err != nil {
			return nil, fmt.Errorf("row %d: %w", r, err)
		}
		values[r] = v
	}
	return []output{{name: p.name, values: values}}, nil
}

func (e *Engine) selectColumns(f *Frame, names []string) []output {
	outs := make([]output, len(names))
	for i, name := range names {
		values := make([]interface{}, f.Height())
		for r := range values {
			values[r] = f.value(name, r)
		}
		outs[i] = output{name: name, values: values}
	}
	return outs
}

// assemble 广播标量并构建结果帧
func (e *Engine) assemble(outputs []output) (*Frame, error) {
	height := 1
	hasColumn := false
	for _, o := range outputs {
		if !o.scalar {
			if hasColumn && len(o.values) != height {
				return nil, fmt.Errorf("%w: %q has %d values, expected %d",
					ErrLengthMismatch, o.name, len(o.values), height)
			}
			height = len(o.values)
			hasColumn = true
		}
	}

	columns := make([]Column, len(outputs))
	for i, o := range outputs {
		values := o.values
		if o.scalar && hasColumn && height != 1 {
			if !e.config.BroadcastScalars {
				return nil, fmt.Errorf("%w: scalar %q cannot be combined with %d rows",
					ErrLengthMismatch, o.name, height)
			}
			values = make([]interface{}, height)
			for r := range values {
				values[r] = o.values[0]
			}
		}
		columns[i] = Column{Name: o.name, Values: values}
	}
	return NewFrame(columns...)
}
