package cmd

import (
	"bytes"
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/armandoalbornoz/Prototypal-Inheritance-for-Objects/lisp"
	"github.com/armandoalbornoz/Prototypal-Inheritance-for-Objects/parser"
)

// app is the state shared by all commands.  It is populated by the root
// command before any subcommand runs.
type app struct {
	configPath string
	logLevel   string
	trace      bool

	config *Config
	logger *zap.Logger
}

// NewRootCmd returns the root command with all subcommands attached.
func NewRootCmd() *cobra.Command {
	a := &app{}
	rootCmd := &cobra.Command{
		Use:   "protolisp",
		Short: "A lisp with prototype objects",
		Long: `A small lisp whose objects delegate to prototypes.

Evaluate files or expressions with the run command, or explore the language
interactively with the repl command.`,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return a.init()
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			if a.logger != nil {
				_ = a.logger.Sync()
			}
		},
	}
	rootCmd.PersistentFlags().StringVar(&a.configPath, "config", "",
		"Read settings from a YAML configuration file")
	rootCmd.PersistentFlags().StringVar(&a.logLevel, "log-level", "",
		"Log level (debug, info, warn, error); overrides the config file")
	rootCmd.PersistentFlags().BoolVar(&a.trace, "trace", false,
		"Print the call stack when evaluation fails")

	rootCmd.AddCommand(newRunCmd(a))
	rootCmd.AddCommand(newReplCmd(a))
	return rootCmd
}

// Execute adds all child commands to the root command and runs it.  This is
// called by main.main().
func Execute() {
	if err := NewRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func (a *app) init() error {
	a.config = DefaultConfig()
	if a.configPath != "" {
		conf, err := LoadConfig(a.configPath)
		if err != nil {
			return err
		}
		a.config = conf
	}
	if a.logLevel != "" {
		a.config.LogLevel = a.logLevel
	}
	logger, err := a.config.NewLogger()
	if err != nil {
		return err
	}
	a.logger = logger
	a.logger.Debug("configuration loaded",
		zap.String("path", a.configPath),
		zap.Int("max_stack_height", a.config.MaxStackHeight),
		zap.Int32("division_precision", a.config.DivisionPrecision))
	return nil
}

// newInterpreter returns an interpreter configured by a.config with the
// configured preload files already evaluated.
func (a *app) newInterpreter(cmd *cobra.Command) (*lisp.Interpreter, error) {
	config := append([]lisp.Config{lisp.WithReader(parser.NewReader())}, a.config.InterpreterOptions()...)
	in, err := lisp.New(config...)
	if err != nil {
		return nil, err
	}
	for _, path := range a.config.Preload {
		if err := a.loadFile(cmd, in, path, false); err != nil {
			return nil, fmt.Errorf("preload: %w", err)
		}
	}
	return in, nil
}

func (a *app) loadFile(cmd *cobra.Command, in *lisp.Interpreter, path string, printValues bool) error {
	source, err := os.ReadFile(path)
	if err != nil {
		return err
	}
	a.logger.Debug("loading file", zap.String("path", path), zap.Int("size", len(source)))
	return a.evalSource(cmd, in, path, source, printValues)
}

// evalSource evaluates each expression in source, printing the value of each
// to the command's output when printValues is true.
func (a *app) evalSource(cmd *cobra.Command, in *lisp.Interpreter, name string, source []byte, printValues bool) error {
	exprs, err := parser.Parse(name, source)
	if err != nil {
		return err
	}
	for _, expr := range exprs {
		v, err := in.Eval(expr)
		if err != nil {
			a.logger.Debug("evaluation failed", zap.String("source", name), zap.Stringer("expr", expr), zap.Error(err))
			a.printTrace(cmd, err)
			return fmt.Errorf("%s: %w", name, err)
		}
		if printValues {
			fmt.Fprintln(cmd.OutOrStdout(), v)
		}
	}
	return nil
}

func (a *app) printTrace(cmd *cobra.Command, err error) {
	var lerr *lisp.EvalError
	if !a.trace || !errors.As(err, &lerr) || lerr.Stack == nil {
		return
	}
	var buf bytes.Buffer
	lerr.Stack.DebugPrint(&buf)
	cmd.PrintErr(buf.String())
}
