package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/hupe1980/parsekit/hashtable"
)

func newHashCmd() *cobra.Command {
	var buckets uint32

	cmd := &cobra.Command{
		Use:   "hash STRING...",
		Short: "Print the table hash of each string",
		Long: `The hash command prints the hash a string-keyed table uses to place
each argument. With --buckets it also prints the bucket index.

Example:
  parsekit hash A expr
  parsekit hash --buckets 31 expr term factor`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()
			for _, s := range args {
				h := hashtable.HashString(s)
				if buckets > 0 {
					fmt.Fprintf(out, "%d\t%d\t%s\n", h, h%buckets, s)
				} else {
					fmt.Fprintf(out, "%d\t%s\n", h, s)
				}
			}
			return nil
		},
	}

	cmd.Flags().Uint32Var(&buckets, "buckets", 0, "Also print the bucket index for this bucket count")
	return cmd
}
