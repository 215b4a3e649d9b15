package cmd

import (
	"github.com/spf13/cobra"

	"github.com/armandoalbornoz/Prototypal-Inheritance-for-Objects/repl"
)

func newReplCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "repl",
		Short: "Run an interactive read-eval-print loop",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			in, err := a.newInterpreter(cmd)
			if err != nil {
				return err
			}
			return repl.RunRepl(in, &repl.Options{
				Prompt: a.config.Prompt,
				Trace:  a.trace,
				Logger: a.logger,
				Stdout: cmd.OutOrStdout(),
				Stderr: cmd.ErrOrStderr(),
			})
		},
	}
}
