package main

import (
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/syssam/graphley"
)

// rootOptions holds global flags shared by all commands.
type rootOptions struct {
	URL     string
	Version string
	Timeout time.Duration
	Config  string
	Verbose bool
}

// newRootCommand creates the root command for the graphley CLI.
func newRootCommand() *cobra.Command {
	opts := &rootOptions{}

	cmd := &cobra.Command{
		Use:           "graphley",
		Short:         "Query and write quads to a Cayley-compatible graph database",
		SilenceUsage:  true,
		SilenceErrors: true, // main prints the error itself
	}

	// Global flags
	cmd.PersistentFlags().StringVar(&opts.URL, "url", "", "base URL of the graph database (default "+graphley.DefaultURL+")")
	cmd.PersistentFlags().StringVar(&opts.Version, "api-version", "", "HTTP API version (default "+graphley.DefaultVersion+")")
	cmd.PersistentFlags().DurationVar(&opts.Timeout, "timeout", 0, "request timeout (default 10s)")
	cmd.PersistentFlags().StringVarP(&opts.Config, "config", "c", "", "path to a YAML config file")
	cmd.PersistentFlags().BoolVarP(&opts.Verbose, "verbose", "v", false, "verbose output")

	// Add subcommands
	cmd.AddCommand(newQueryCommand(opts))
	cmd.AddCommand(newWriteCommand(opts))
	cmd.AddCommand(newDeleteCommand(opts))

	return cmd
}

// newClient builds a client from the config file (if any) with the global
// flags layered on top.
func (o *rootOptions) newClient() (*graphley.Client, error) {
	cfg := graphley.DefaultConfig()
	if o.Config != "" {
		loaded, err := graphley.LoadConfig(o.Config)
		if err != nil {
			return nil, err
		}
		cfg = loaded
	}
	if o.URL != "" {
		cfg.URL = o.URL
	}
	if o.Version != "" {
		cfg.Version = o.Version
	}
	if o.Timeout > 0 {
		cfg.Timeout = graphley.Duration(o.Timeout)
	}

	logger := zap.NewNop()
	if o.Verbose {
		dev, err := zap.NewDevelopment()
		if err != nil {
			return nil, err
		}
		logger = dev
	}
	return graphley.NewClientFromConfig(cfg, graphley.WithLogger(logger))
}
