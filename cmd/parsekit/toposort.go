package main

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"runtime"
	"strings"

	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"github.com/hupe1980/parsekit"
	"github.com/hupe1980/parsekit/topo"
)

var errCycleFound = errors.New("dependency cycle found")

type sortResult struct {
	File  string   `json:"file"`
	Order []string `json:"order,omitempty"`
	Cycle []string `json:"cycle,omitempty"`
}

func newToposortCmd(root *rootOptions) *cobra.Command {
	var format string

	cmd := &cobra.Command{
		Use:   "toposort FILE...",
		Short: "Print nodes of YAML dependency graphs in dependency order",
		Long: `The toposort command reads one or more YAML graphs and prints every
node after the nodes it depends on. If a graph has a cycle the cycle is
printed instead and the command exits with status 1.

Each FILE looks like:
  nodes:
    expr: [term]
    term: [factor]
    factor: []

Example:
  parsekit toposort grammar.yaml
  parsekit toposort --format json a.yaml b.yaml`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if format != "text" && format != "json" {
				return fmt.Errorf("invalid --format %q", format)
			}
			logger, err := root.logger(cmd.ErrOrStderr())
			if err != nil {
				return err
			}

			results, err := sortFiles(cmd.Context(), args, logger, root.metrics)
			if err != nil {
				return err
			}

			if err := writeResults(cmd.OutOrStdout(), format, results); err != nil {
				return err
			}

			stats := root.metrics.GetStats()
			logger.Debug("toposort finished",
				"files", len(results),
				"sorts", stats.SortCount,
				"cycles", stats.SortCycles,
				"vectors", stats.VectorsCarved,
			)

			for _, r := range results {
				if r.Cycle != nil {
					return errCycleFound
				}
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&format, "format", "text", "Output format (text, json)")
	return cmd
}

// sortFiles sorts every file in parallel and returns the results in argument order.
func sortFiles(ctx context.Context, paths []string, logger *parsekit.Logger, mc parsekit.MetricsCollector) ([]sortResult, error) {
	results := make([]sortResult, len(paths))

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(runtime.GOMAXPROCS(0))

	for i, path := range paths {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			r, err := sortFile(ctx, path, logger.WithSource(path), mc)
			if err != nil {
				return fmt.Errorf("%s: %w", path, err)
			}
			results[i] = r
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return results, nil
}

func sortFile(ctx context.Context, path string, logger *parsekit.Logger, mc parsekit.MetricsCollector) (sortResult, error) {
	opts := []parsekit.Option{
		parsekit.WithLogger(logger),
		parsekit.WithMetricsCollector(mc),
	}

	f := parsekit.NewFactory(opts...)
	defer func() {
		logger.LogFactoryClose(ctx, f.Stats())
		f.Close()
	}()

	names, err := f.NewVector()
	if err != nil {
		return sortResult{}, err
	}
	sorter := parsekit.NewSorter(opts...)
	defer sorter.Free()
	ids := parsekit.NewTable(0, false, opts...)
	defer ids.Free()

	g := newGraph(names, ids, sorter)
	if err := g.load(path); err != nil {
		return sortResult{}, err
	}

	result := sortResult{File: path}

	// On a cycle names keeps its numbering, so cycle ids still resolve.
	err = sorter.SortVector(names)
	logger.LogSort(ctx, sorter.Len(), sorter.Edges(), err)

	var cerr *topo.CycleError
	switch {
	case errors.As(err, &cerr):
		result.Cycle = g.namesOf(cerr.Cycle)
		return result, nil
	case err != nil:
		return sortResult{}, err
	}

	result.Order = make([]string, 0, names.Size())
	for _, v := range names.All() {
		result.Order = append(result.Order, v.(string))
	}
	return result, nil
}

func writeResults(w io.Writer, format string, results []sortResult) error {
	if format == "json" {
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(results)
	}

	for i, r := range results {
		if len(results) > 1 {
			if i > 0 {
				fmt.Fprintln(w)
			}
			fmt.Fprintf(w, "# %s\n", r.File)
		}
		if r.Cycle != nil {
			fmt.Fprintf(w, "cycle: %s -> %s\n", strings.Join(r.Cycle, " -> "), r.Cycle[0])
			continue
		}
		for _, name := range r.Order {
			fmt.Fprintln(w, name)
		}
	}
	return nil
}
