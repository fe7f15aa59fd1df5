package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/tliron/commonlog"

	_ "github.com/tliron/commonlog/simple"

	"github.com/Michael-F-Bryan/tree-sitter/parse/replay"
)

func main() {
	var verbosity int

	rootCmd := &cobra.Command{
		Use:   "gss",
		Short: "Replay and inspect graph-structured parse stacks",
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			commonlog.Configure(verbosity, nil)
		},
	}
	rootCmd.PersistentFlags().CountVarP(&verbosity, "verbose", "v", "increase log verbosity")

	rootCmd.AddCommand(newReplayCmd())
	rootCmd.AddCommand(newDotCmd())
	rootCmd.AddCommand(newStatsCmd())

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

// runScript replays the named script file, or stdin when the name
// is "-". The caller owns the returned runner.
func runScript(filename string) (*replay.Runner, error) {
	reader := os.Stdin
	if filename != "-" {
		f, err := os.Open(filename)
		if err != nil {
			return nil, fmt.Errorf("open script: %w", err)
		}
		defer f.Close()
		reader = f
	}

	runner := replay.NewRunner()
	if err := runner.Run(reader); err != nil {
		runner.Close()
		return nil, fmt.Errorf("replay %s: %w", filename, err)
	}
	return runner, nil
}
