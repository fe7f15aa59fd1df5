package main

import (
	"fmt"

	"github.com/dustin/go-humanize"
	"github.com/spf13/cobra"
)

func newStatsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "stats <script>",
		Short: "Run a stack operation script and summarize the resulting DAG",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			runner, err := runScript(args[0])
			if err != nil {
				return err
			}
			defer runner.Close()

			stats := runner.Stack().CollectStats()
			fmt.Printf("versions:  %s\n", humanize.Comma(int64(stats.Versions)))
			fmt.Printf("nodes:     %s\n", humanize.Comma(int64(stats.Nodes)))
			fmt.Printf("links:     %s\n", humanize.Comma(int64(stats.Links)))
			fmt.Printf("trees:     %s\n", humanize.Comma(int64(stats.Trees)))
			fmt.Printf("tree size: %s\n", humanize.Bytes(uint64(stats.TotalBytes)))
			fmt.Printf("max position: %s\n", stats.MaxPosition)
			return nil
		},
	}
}
