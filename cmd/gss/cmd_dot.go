package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

func newDotCmd() *cobra.Command {
	var output string

	cmd := &cobra.Command{
		Use:   "dot <script>",
		Short: "Run a stack operation script and emit the stack as a Graphviz graph",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			runner, err := runScript(args[0])
			if err != nil {
				return err
			}
			defer runner.Close()

			w := os.Stdout
			if output != "" {
				f, err := os.Create(output)
				if err != nil {
					return fmt.Errorf("create output: %w", err)
				}
				defer f.Close()
				w = f
			}
			return runner.Stack().WriteDotGraph(w)
		},
	}

	cmd.Flags().StringVarP(&output, "output", "o", "", "write the graph to a file instead of stdout")
	return cmd
}
