package main

import (
	"fmt"
	"os"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/safing/securerandom/base/config"
	"github.com/safing/securerandom/base/log"
	"github.com/safing/securerandom/base/metrics"
	"github.com/safing/securerandom/base/rng"
)

// cli holds the state shared by all commands of one invocation.
type cli struct {
	configFile   string
	source       string
	cipher       string
	maxAttempts  int
	logLevel     string
	logDir       string
	count        int
	printMetrics bool

	gen      *rng.Generator
	closeGen func() error
}

func newRootCmd() *cobra.Command {
	c := &cli{}

	rootCmd := &cobra.Command{
		Use:               "securerand",
		Short:             "Generate cryptographically secure random numbers, strings and selections",
		PersistentPreRunE: c.setup,
		PersistentPostRunE: func(cmd *cobra.Command, args []string) error {
			return c.teardown(cmd)
		},
		SilenceUsage: true,
	}

	flags := rootCmd.PersistentFlags()
	flags.StringVar(&c.configFile, "config", "", "load options from YAML file")
	flags.StringVar(&c.source, "source", config.SourceOS, "entropy source [os|fortuna]")
	flags.StringVar(&c.cipher, "cipher", rng.CipherAES, "block cipher of the fortuna source [aes|serpent]")
	flags.IntVar(&c.maxAttempts, "max-attempts", rng.DefaultMaxAttempts, "maximum rejection sampling draws per value")
	flags.StringVar(&c.logLevel, "log", "warning", "set log level to [trace|debug|info|warning|error|critical]")
	flags.StringVar(&c.logDir, "log-dir", "", "write logs to a new file in the given directory instead of stderr")
	flags.IntVarP(&c.count, "count", "n", 1, "number of results to generate")
	flags.BoolVar(&c.printMetrics, "metrics", false, "print sampling metrics to stderr on exit")

	rootCmd.AddCommand(
		newIntCmd(c),
		newDecimalCmd(c),
		newShuffleCmd(c),
		newSampleCmd(c),
		newStringCmd(c),
		newBytesCmd(c),
		newUUIDCmd(c),
		newVersionCmd(),
	)
	return rootCmd
}

// setup loads the options, starts logging and creates the generator.
func (c *cli) setup(cmd *cobra.Command, args []string) error {
	opts := config.Default()
	if c.configFile != "" {
		var err error
		opts, err = config.Load(c.configFile)
		if err != nil {
			return err
		}
	}

	// Flags override the config file.
	flags := cmd.Flags()
	if c.configFile == "" || flags.Changed("source") {
		opts.Source = c.source
	}
	if c.configFile == "" || flags.Changed("cipher") {
		opts.Cipher = c.cipher
	}
	if c.configFile == "" || flags.Changed("max-attempts") {
		opts.MaxAttempts = c.maxAttempts
	}
	if c.configFile == "" || flags.Changed("log") {
		opts.LogLevel = c.logLevel
	}

	if c.count < 1 {
		return fmt.Errorf("count must be at least 1, got %d", c.count)
	}

	// Start logging.
	logWriter := log.NewStderrWriter()
	if c.logDir != "" {
		var err error
		logWriter, err = log.NewFileWriter(c.logDir)
		if err != nil {
			return fmt.Errorf("failed to open log file: %w", err)
		}
	}
	if err := log.Start(opts.LogLevel, logWriter); err != nil {
		return err
	}
	if level := log.ParseLevel(opts.LogLevel); level != 0 {
		log.SetLogLevel(level)
	}

	gen, closeGen, err := opts.NewGenerator()
	if err != nil {
		return err
	}
	c.gen = gen
	c.closeGen = closeGen
	log.Debugf("securerand: using %s entropy source", opts.Source)
	return nil
}

func (c *cli) teardown(cmd *cobra.Command) error {
	defer log.Shutdown()

	if c.printMetrics {
		metrics.WritePrometheus(cmd.ErrOrStderr())
	}
	if c.closeGen != nil {
		return c.closeGen()
	}
	return nil
}

// repeat calls fn for the configured number of results.
func (c *cli) repeat(cmd *cobra.Command, fn func() (string, error)) error {
	for range c.count {
		result, err := fn()
		if err != nil {
			return err
		}
		fmt.Fprintln(cmd.OutOrStdout(), result)
	}
	return nil
}

func parseCount(arg string) (int, error) {
	n, err := strconv.Atoi(arg)
	if err != nil {
		return 0, fmt.Errorf("invalid number %q: %w", arg, err)
	}
	return n, nil
}

func main() {
	err := newRootCmd().Execute()
	// Post run hooks are skipped when a command fails.
	log.Shutdown()
	if err != nil {
		os.Exit(1)
	}
}
