package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/safing/securerandom/base/info"
)

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Show version and related metadata.",
		// Skip generator setup.
		PersistentPreRunE:  func(*cobra.Command, []string) error { return nil },
		PersistentPostRunE: func(*cobra.Command, []string) error { return nil },
		RunE: func(cmd *cobra.Command, args []string) error {
			fmt.Fprintln(cmd.OutOrStdout(), info.FullVersion())
			return nil
		},
	}
}
