package main

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/rulego/lazyexpr/document"
	"github.com/rulego/lazyexpr/expr"
)

func newBuildCommand(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "build <document>",
		Short: "Build expression trees from a document and print them",
		Long: `Build parses a YAML/JSON expression document, folds every when/then chain
with the conditional builder and prints the resulting trees, one per line.
Use "-" to read the document from stdin.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runBuild(opts, cmd, args[0])
		},
	}
}

func runBuild(opts *rootOptions, cmd *cobra.Command, path string) error {
	f := opts.formatter(cmd)
	doc, err := loadDocument(cmd, path)
	if err != nil {
		return f.fail(ExitCommandError, ErrCodeDocument, "load document", err)
	}
	opts.log.Debug("built %d expression(s) from %s", len(doc.Nodes), path)

	return f.success(doc.Nodes, func(w io.Writer) error {
		return writeNodes(w, doc.Nodes)
	})
}

func writeNodes(w io.Writer, nodes []expr.Node) error {
	for _, n := range nodes {
		if _, err := fmt.Fprintln(w, n.String()); err != nil {
			return err
		}
	}
	return nil
}

// loadDocument "-" 表示从标准输入读取
func loadDocument(cmd *cobra.Command, path string) (*document.Document, error) {
	if path == "-" {
		data, err := io.ReadAll(cmd.InOrStdin())
		if err != nil {
			return nil, err
		}
		return document.Parse(data)
	}
	return document.Load(path)
}

// readInput 读取文件内容，"-" 表示标准输入
func readInput(cmd *cobra.Command, path string) ([]byte, error) {
	if path == "-" {
		return io.ReadAll(cmd.InOrStdin())
	}
	return os.ReadFile(path)
}
