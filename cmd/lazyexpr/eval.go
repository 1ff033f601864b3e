package main

import (
	"context"
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/rulego/lazyexpr/engine"
	"github.com/rulego/lazyexpr/host"
	"github.com/rulego/lazyexpr/utils/table"
)

// evalOptions eval 命令参数
type evalOptions struct {
	*rootOptions
	Rows    string
	Columns []string
	Filter  string
	Lenient bool
	MaxRows int
}

// frameResult JSON 输出中的结果帧
type frameResult struct {
	Columns []string                 `json:"columns"`
	Rows    []map[string]interface{} `json:"rows"`
}

func newEvalCommand(rootOpts *rootOptions) *cobra.Command {
	opts := &evalOptions{rootOptions: rootOpts}

	cmd := &cobra.Command{
		Use:   "eval <document>",
		Short: "Evaluate a document against JSON rows",
		Long: `Eval builds the expressions of a document and evaluates them with the
reference engine against a JSON array of objects. An optional filter document
holding a single predicate is applied before the selection.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runEval(cmd.Context(), opts, cmd, args[0])
		},
	}

	cmd.Flags().StringVarP(&opts.Rows, "rows", "r", "", `JSON rows file ("-" for stdin)`)
	cmd.Flags().StringSliceVar(&opts.Columns, "columns", nil, "column order of the input frame")
	cmd.Flags().StringVar(&opts.Filter, "filter", "", "document with a single predicate applied before select")
	cmd.Flags().BoolVar(&opts.Lenient, "lenient", false, "treat missing columns as null instead of failing")
	cmd.Flags().IntVar(&opts.MaxRows, "max-rows", 0, "maximum number of input rows (0 keeps the configured limit)")
	_ = cmd.MarkFlagRequired("rows")

	return cmd
}

func runEval(ctx context.Context, opts *evalOptions, cmd *cobra.Command, path string) error {
	if ctx == nil {
		ctx = context.Background()
	}
	f := opts.formatter(cmd)

	doc, err := loadDocument(cmd, path)
	if err != nil {
		return f.fail(ExitCommandError, ErrCodeDocument, "load document", err)
	}
	data, err := readInput(cmd, opts.Rows)
	if err != nil {
		return f.fail(ExitCommandError, ErrCodeInput, "read rows", err)
	}
	frame, err := decodeFrame(data, opts.Columns)
	if err != nil {
		return f.fail(ExitCommandError, ErrCodeInput, "decode rows", err)
	}
	opts.log.Debug("loaded frame with %d row(s) and columns %v", frame.Height(), frame.Names())

	config := opts.config.Engine
	if opts.Lenient {
		config.StrictColumns = false
	}
	if opts.MaxRows > 0 {
		config.MaxRows = opts.MaxRows
	}
	e := engine.New(engine.WithConfig(config), engine.WithLogger(opts.log))

	if opts.Filter != "" {
		filter, err := loadDocument(cmd, opts.Filter)
		if err != nil {
			return f.fail(ExitCommandError, ErrCodeDocument, "load filter", err)
		}
		if len(filter.Nodes) != 1 {
			return f.fail(ExitCommandError, ErrCodeDocument,
				fmt.Sprintf("filter must hold exactly one predicate, got %d", len(filter.Nodes)), nil)
		}
		if frame, err = e.Filter(ctx, frame, filter.Nodes[0]); err != nil {
			return f.fail(ExitFailure, ErrCodeEval, "filter", err)
		}
	}

	out, err := e.Select(ctx, frame, doc.Nodes...)
	if err != nil {
		return f.fail(ExitFailure, ErrCodeEval, "evaluate", err)
	}

	return f.success(frameResult{Columns: out.Names(), Rows: out.Rows()}, func(w io.Writer) error {
		return table.Write(w, out.Names(), out.Records())
	})
}

// decodeFrame 把 JSON 对象数组解码为数据帧。
// 数字按宿主语义解码，超出安全整数范围的大整数以 float64 参与比较。
func decodeFrame(data []byte, columns []string) (*engine.Frame, error) {
	v, err := host.Decode(data)
	if err != nil {
		return nil, err
	}
	arr, ok := v.(host.Array)
	if !ok {
		return nil, fmt.Errorf("rows must be a JSON array of objects, got %s", v.Kind())
	}
	rows := make([]map[string]interface{}, len(arr))
	for i, elem := range arr {
		obj, ok := elem.(host.Object)
		if !ok {
			return nil, fmt.Errorf("row %d must be an object, got %s", i, elem.Kind())
		}
		row := make(map[string]interface{}, len(obj))
		for k, cell := range obj {
			row[k] = cellValue(cell)
		}
		rows[i] = row
	}
	return engine.FrameFromRows(columns, rows)
}

func cellValue(v host.Value) interface{} {
	if b, ok := v.(host.BigInt); ok {
		return b.Float64()
	}
	return host.ToGo(v)
}
