package main

import (
	"github.com/spf13/cobra"
)

func newUUIDCmd(c *cli) *cobra.Command {
	return &cobra.Command{
		Use:   "uuid",
		Short: "Print random (version 4) UUIDs",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.repeat(cmd, func() (string, error) {
				id, err := c.gen.UUID()
				if err != nil {
					return "", err
				}
				return id.String(), nil
			})
		},
	}
}
