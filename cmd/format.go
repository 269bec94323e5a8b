package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/shouni/go-dart-prompt-kit/internal/pipeline"
)

// formatCmd は、1件の入力からプロンプトを組み立てて標準出力に書き出します。
var formatCmd = &cobra.Command{
	Use:   "format",
	Short: "タグからプロンプトを1件組み立てます。",
	Long: `--tags に含まれる版権・キャラクタータグは自動で検出され、明示した値と統合されます。
--rating に auto を指定すると、タグから検出したレーティングを使います。`,
	Args: cobra.NoArgs,
	RunE: formatCommand,
}

func init() {
	formatCmd.Flags().StringVarP(&opts.Tags, "tags", "t", "", "一般タグ (カンマ区切り)。")
	formatCmd.Flags().StringVar(&opts.Copyright, "copyright", "", "版権タグ (カンマ区切り)。")
	formatCmd.Flags().StringVar(&opts.Character, "character", "", "キャラクタータグ (カンマ区切り)。")
	formatCmd.Flags().StringVarP(&opts.Rating, "rating", "r", "", "レーティング。auto で自動検出します。")
	formatCmd.Flags().StringVarP(&opts.Length, "length", "l", "", "タグ列の長さ。")
	formatCmd.Flags().StringVarP(&opts.AspectRatio, "aspect-ratio", "a", "", "縦横比 (v2, v3)。")
	formatCmd.Flags().StringVar(&opts.Identity, "identity", "", "入力への忠実度 (v2)。")
}

func formatCommand(cmd *cobra.Command, args []string) error {
	cfg := loadConfig(cmd)
	if err := pipeline.ExecuteFormat(cmd.Context(), cfg, os.Stdout); err != nil {
		return fmt.Errorf("フォーマット中にエラーが発生したのだ: %w", err)
	}
	return nil
}
