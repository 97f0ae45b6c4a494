package main

import (
	"strings"

	"github.com/spf13/cobra"

	"github.com/safing/securerandom/base/rng"
)

func newShuffleCmd(c *cli) *cobra.Command {
	return &cobra.Command{
		Use:   "shuffle ITEM...",
		Short: "Print the given items in random order",
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.repeat(cmd, func() (string, error) {
				items := append([]string(nil), args...)
				if _, err := rng.ShuffleWith(c.gen, items); err != nil {
					return "", err
				}
				return strings.Join(items, " "), nil
			})
		},
	}
}

func newSampleCmd(c *cli) *cobra.Command {
	return &cobra.Command{
		Use:   "sample N ITEM...",
		Short: "Print N distinct items chosen at random",
		Long: `Print N items chosen at random without replacement.
If N is equal to or greater than the number of items, all items are printed in the given order.`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			n, err := parseCount(args[0])
			if err != nil {
				return err
			}

			return c.repeat(cmd, func() (string, error) {
				sample, err := rng.SampleWith(c.gen, args[1:], n)
				if err != nil {
					return "", err
				}
				return strings.Join(sample, " "), nil
			})
		},
	}
}
