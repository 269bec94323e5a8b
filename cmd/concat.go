package cmd

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/shouni/go-dart-prompt-kit/internal/pipeline"
	"github.com/shouni/go-dart-prompt-kit/pkg/node"
	"github.com/shouni/go-dart-prompt-kit/pkg/tags"
)

// concatCmd は、引数の文字列を区切り文字で結合します。
var concatCmd = &cobra.Command{
	Use:   "concat [string...]",
	Short: "最大6つの文字列を結合します。空の文字列は除外されます。",
	Args:  cobra.MaximumNArgs(node.ConcatSlots),
	RunE: func(cmd *cobra.Command, args []string) error {
		return pipeline.ExecuteConcat(cmd.Context(), loadConfig(cmd), args, os.Stdout)
	},
}

func init() {
	concatCmd.Flags().StringVar(&opts.Separator, "separator", tags.DefaultSeparator, "区切り文字。")
}
