package main

import (
	"fmt"
	"strconv"

	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"
)

func newIntCmd(c *cli) *cobra.Command {
	return &cobra.Command{
		Use:   "int MIN MAX",
		Short: "Print random integers from MIN to (incl.) MAX",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			minimum, err := strconv.ParseInt(args[0], 10, 64)
			if err != nil {
				return fmt.Errorf("invalid minimum %q: %w", args[0], err)
			}
			maximum, err := strconv.ParseInt(args[1], 10, 64)
			if err != nil {
				return fmt.Errorf("invalid maximum %q: %w", args[1], err)
			}

			return c.repeat(cmd, func() (string, error) {
				v, err := c.gen.Int(minimum, maximum)
				if err != nil {
					return "", err
				}
				return strconv.FormatInt(v, 10), nil
			})
		},
	}
}

func newDecimalCmd(c *cli) *cobra.Command {
	var places int32

	cmd := &cobra.Command{
		Use:   "decimal MIN MAX",
		Short: "Print random decimals from MIN to (incl.) MAX",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			minimum, err := decimal.NewFromString(args[0])
			if err != nil {
				return fmt.Errorf("invalid minimum %q: %w", args[0], err)
			}
			maximum, err := decimal.NewFromString(args[1])
			if err != nil {
				return fmt.Errorf("invalid maximum %q: %w", args[1], err)
			}

			return c.repeat(cmd, func() (string, error) {
				v, err := c.gen.Decimal(minimum, maximum, places)
				if err != nil {
					return "", err
				}
				if places > 0 {
					return v.StringFixed(places), nil
				}
				return v.String(), nil
			})
		},
	}
	cmd.Flags().Int32Var(&places, "places", 2, "number of decimal places")
	return cmd
}
