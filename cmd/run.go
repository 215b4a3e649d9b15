package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newRunCmd(a *app) *cobra.Command {
	var (
		runExpression bool
		runPrint      bool
	)

	// runCmd represents the run command
	runCmd := &cobra.Command{
		Use:   "run [flags] FILE|EXPR ...",
		Short: "Run lisp code",
		Long: `Run lisp code provided supplied via the command line or a file.

All arguments are evaluated in order by a single interpreter, so definitions
made by one file are visible to the files that follow it.`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			in, err := a.newInterpreter(cmd)
			if err != nil {
				return err
			}
			for i, arg := range args {
				if runExpression {
					name := fmt.Sprintf("expr%d", i+1)
					err = a.evalSource(cmd, in, name, []byte(arg), runPrint)
				} else {
					err = a.loadFile(cmd, in, arg, runPrint)
				}
				if err != nil {
					return err
				}
			}
			return nil
		},
	}

	// Here flags for the run command are defined
	runCmd.Flags().BoolVarP(&runExpression, "expression", "e", false,
		"Interpret arguments as lisp expressions")
	runCmd.Flags().BoolVarP(&runPrint, "print", "p", false,
		"Print expression values to stdout")
	return runCmd
}
