package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:          "triegraph",
		Short:        "Build a k-mer/position index over a sequence graph",
		SilenceUsage: true,
	}
	root.AddCommand(newBuildCmd())
	return root
}

// Execute runs the triegraph root command, printing any returned error.
func Execute() error {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		return err
	}
	return nil
}
