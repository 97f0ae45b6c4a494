package main

import (
	"github.com/spf13/cobra"
)

func newStringCmd(c *cli) *cobra.Command {
	var (
		noSpecial bool
		charset   string
	)

	cmd := &cobra.Command{
		Use:   "string LENGTH",
		Short: "Print random strings of LENGTH characters",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			length, err := parseCount(args[0])
			if err != nil {
				return err
			}

			return c.repeat(cmd, func() (string, error) {
				if charset != "" {
					return c.gen.StringFrom(length, []rune(charset))
				}
				return c.gen.String(length, !noSpecial)
			})
		},
	}
	cmd.Flags().BoolVar(&noSpecial, "no-special", false, "only use alphanumeric characters")
	cmd.Flags().StringVar(&charset, "charset", "", "use only the given characters, uniformly")
	return cmd
}
