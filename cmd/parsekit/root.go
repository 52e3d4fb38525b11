package main

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/hupe1980/parsekit"
)

type rootOptions struct {
	logLevel  string
	logFormat string
	metrics   *parsekit.BasicMetricsCollector
}

func newRootCmd() *cobra.Command {
	opts := &rootOptions{metrics: &parsekit.BasicMetricsCollector{}}

	cmd := &cobra.Command{
		Use:   "parsekit",
		Short: "Order dependency graphs and inspect parser runtime hashing",
		Long: `parsekit exposes the parser runtime containers on the command line.
It orders YAML dependency graphs topologically, reporting the exact cycle
when there is one, and prints the hash used for string-keyed tables.`,
		Version:       version,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	cmd.PersistentFlags().StringVar(&opts.logLevel, "log-level", "warn", "Log level (debug, info, warn, error)")
	cmd.PersistentFlags().StringVar(&opts.logFormat, "log-format", "text", "Log format (text, json)")

	cmd.AddCommand(newToposortCmd(opts))
	cmd.AddCommand(newHashCmd())
	cmd.AddCommand(newVersionCmd())
	return cmd
}

func (o *rootOptions) logger(w io.Writer) (*parsekit.Logger, error) {
	var level slog.Level
	if err := level.UnmarshalText([]byte(o.logLevel)); err != nil {
		return nil, fmt.Errorf("invalid --log-level %q", o.logLevel)
	}

	handlerOpts := &slog.HandlerOptions{Level: level}
	switch strings.ToLower(o.logFormat) {
	case "text":
		return parsekit.NewLogger(slog.NewTextHandler(w, handlerOpts)), nil
	case "json":
		return parsekit.NewLogger(slog.NewJSONHandler(w, handlerOpts)), nil
	default:
		return nil, fmt.Errorf("invalid --log-format %q", o.logFormat)
	}
}

func execute() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}
