package main

import (
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/rulego/lazyexpr/logger"
	"github.com/rulego/lazyexpr/types"
)

// rootOptions 所有子命令共享的全局参数
type rootOptions struct {
	Verbose    bool
	Format     string
	ConfigPath string

	config  types.Config
	log     logger.Logger
	logFile *os.File
}

// validFormats 支持的输出格式
var validFormats = []string{"text", "json"}

func newRootCommand() *cobra.Command {
	cmd, _ := newRoot()
	return cmd
}

// newRoot 创建根命令，同时返回共享参数，调用方负责通过 runRoot 释放日志文件
func newRoot() (*cobra.Command, *rootOptions) {
	opts := &rootOptions{}

	cmd := &cobra.Command{
		Use:   "lazyexpr",
		Short: "Build and evaluate lazy column expressions",
		Long: `lazyexpr turns declarative YAML/JSON expression documents into expression
trees with the when/then/otherwise builder and evaluates them against rows
with the in-memory reference engine.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return opts.setup(cmd)
		},
	}

	cmd.PersistentFlags().BoolVarP(&opts.Verbose, "verbose", "v", false, "verbose output (debug logging)")
	cmd.PersistentFlags().StringVar(&opts.Format, "format", "text", "output format (json|text)")
	cmd.PersistentFlags().StringVarP(&opts.ConfigPath, "config", "c", "", "YAML config file")

	cmd.AddCommand(newBuildCommand(opts))
	cmd.AddCommand(newEvalCommand(opts))
	return cmd, opts
}

// runRoot 执行命令并关闭日志文件。
// cobra 在 RunE 失败时跳过 PersistentPostRunE，所以不能在钩子里关闭。
// 命令本身的错误优先于关闭错误返回
func runRoot(cmd *cobra.Command, opts *rootOptions) (err error) {
	defer func() {
		if closeErr := opts.close(); err == nil {
			err = closeErr
		}
	}()
	return cmd.Execute()
}

func (o *rootOptions) close() error {
	if o.logFile == nil {
		return nil
	}
	err := o.logFile.Close()
	o.logFile = nil
	return err
}

// setup 加载配置并初始化日志。命令行参数优先于配置文件
func (o *rootOptions) setup(cmd *cobra.Command) error {
	config := types.NewConfig()
	if o.ConfigPath != "" {
		loaded, err := types.LoadConfig(o.ConfigPath)
		if err != nil {
			return o.formatter(cmd).fail(ExitCommandError, ErrCodeConfig, "load config", err)
		}
		config = loaded
	}
	if cmd.Flags().Changed("format") || o.ConfigPath == "" {
		config.Format = o.Format
	}
	if o.Verbose {
		config.Log.Level = "debug"
	}
	if isValidFormat(config.Format) {
		o.Format = config.Format
	} else {
		o.Format = "text"
	}
	if err := config.Validate(); err != nil {
		return o.formatter(cmd).fail(ExitCommandError, ErrCodeConfig, "invalid config", err)
	}
	o.config = config

	level, err := logger.ParseLevel(config.Log.Level)
	if err != nil {
		return o.formatter(cmd).fail(ExitCommandError, ErrCodeConfig, "invalid log level", err)
	}
	out, err := o.logOutput(cmd, config.Log.Output)
	if err != nil {
		return o.formatter(cmd).fail(ExitCommandError, ErrCodeConfig, "open log output", err)
	}
	logger.SetDefault(logger.NewLogger(level, out))
	o.log = logger.GetDefault().With("cli")
	o.log.Debug("config loaded: format=%s level=%s engine=%+v", config.Format, config.Log.Level, config.Engine)
	return nil
}

func (o *rootOptions) logOutput(cmd *cobra.Command, output string) (io.Writer, error) {
	switch output {
	case "", "stderr":
		return cmd.ErrOrStderr(), nil
	case "stdout":
		return cmd.OutOrStdout(), nil
	default:
		f, err := os.OpenFile(output, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			return nil, err
		}
		o.logFile = f
		return f, nil
	}
}

func (o *rootOptions) formatter(cmd *cobra.Command) *formatter {
	return &formatter{
		format: o.Format,
		out:    cmd.OutOrStdout(),
		errOut: cmd.ErrOrStderr(),
	}
}

func isValidFormat(format string) bool {
	for _, f := range validFormats {
		if f == format {
			return true
		}
	}
	return false
}
