package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/Michael-F-Bryan/tree-sitter/parse"
	"github.com/Michael-F-Bryan/tree-sitter/parse/stack"
)

func newReplayCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "replay <script>",
		Short: "Run a stack operation script and print the resulting versions",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			runner, err := runScript(args[0])
			if err != nil {
				return err
			}
			defer runner.Close()

			s := runner.Stack()
			for v := 0; v < s.VersionCount(); v++ {
				version := stack.Version(v)
				fmt.Printf("version %d: state=%s position=%s\n",
					v, stateName(s.TopState(version)), s.TopPosition(version))
			}
			return nil
		},
	}
}

func stateName(state parse.StateID) string {
	switch state {
	case parse.RootState:
		return "root"
	case parse.ErrorState:
		return "error"
	default:
		return fmt.Sprintf("%d", state)
	}
}
