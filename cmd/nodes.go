package cmd

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/shouni/go-dart-prompt-kit/internal/pipeline"
)

// nodesCmd は、登録済みノードの宣言を YAML で表示します。
var nodesCmd = &cobra.Command{
	Use:   "nodes [name]",
	Short: "ノードの入出力の宣言を表示します。",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		name := ""
		if len(args) == 1 {
			name = args[0]
		}
		return pipeline.ExecuteNodes(cmd.Context(), loadConfig(cmd), name, os.Stdout)
	},
}
