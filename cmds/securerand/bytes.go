package main

import (
	"encoding/base64"
	"encoding/hex"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
)

func newBytesCmd(c *cli) *cobra.Command {
	var (
		useBase64  bool
		outputFile string
	)

	cmd := &cobra.Command{
		Use:   "bytes N",
		Short: "Print N random bytes, hex encoded",
		Long: `Print N random bytes, hex or base64 encoded.
With --out, N raw bytes are written to the given file instead, for example to
feed statistical test suites.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			n, err := parseCount(args[0])
			if err != nil {
				return err
			}
			if n < 0 {
				return fmt.Errorf("invalid byte count %d", n)
			}

			if outputFile != "" {
				return c.writeRandomFile(outputFile, n)
			}

			return c.repeat(cmd, func() (string, error) {
				b, err := c.gen.Bytes(n)
				if err != nil {
					return "", err
				}
				if useBase64 {
					return base64.StdEncoding.EncodeToString(b), nil
				}
				return hex.EncodeToString(b), nil
			})
		},
	}
	cmd.Flags().BoolVar(&useBase64, "base64", false, "encode as base64 instead of hex")
	cmd.Flags().StringVar(&outputFile, "out", "", "write raw bytes to file")
	return cmd
}

func (c *cli) writeRandomFile(path string, n int) (err error) {
	file, err := os.OpenFile(path, os.O_CREATE|os.O_TRUNC|os.O_WRONLY, 0o0644) //nolint:gosec
	if err != nil {
		return fmt.Errorf("failed to open output file: %w", err)
	}
	defer func() {
		if closeErr := file.Close(); closeErr != nil && err == nil {
			err = fmt.Errorf("failed to close output file: %w", closeErr)
		}
	}()

	written, err := io.CopyN(file, c.gen, int64(n))
	if err != nil {
		return fmt.Errorf("failed to write random data after %d bytes: %w", written, err)
	}
	return nil
}
