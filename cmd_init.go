package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"gitjump/internal/shell"
)

var functionName string

var initCmd = &cobra.Command{
	Use:       "init <shell>",
	Short:     "Print the shell function that jumps to the chosen repository",
	Long:      "Print a shell function for " + strings.Join(shell.Supported(), ", ") + ".\n\nAdd `eval \"$(gitjump init bash)\"` to your shell rc file.",
	Args:      cobra.ExactArgs(1),
	ValidArgs: shell.Supported(),
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig(cmd, nil)
		if err != nil {
			return err
		}

		snippet, err := shell.Snippet(args[0], functionName, executable(), cfg.ResultFile)
		if err != nil {
			return err
		}
		fmt.Fprint(cmd.OutOrStdout(), snippet)
		return nil
	},
}

func init() {
	initCmd.Flags().StringVar(&functionName, "name", "gj", "name of the shell function")
}
