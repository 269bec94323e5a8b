package cmd

import (
	"context"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/shouni/go-dart-prompt-kit/internal/config"
)

const appName = "dart-prompt"

var (
	opts           config.RunOptions
	verbose        bool
	dictionaryPath string
)

var rootCmd = &cobra.Command{
	Use:   appName,
	Short: "Dart (Danbooru Tags Transformer) 用のプロンプトを組み立てます。",
	Long: `版権・キャラクター・一般タグを解析して正規化し、
Dart v1/v2/v3 の各スキーマに合わせたプロンプト文字列を生成します。`,
	SilenceUsage:      true,
	PersistentPreRunE: preRunAppE,
}

// addAppFlags は、アプリケーション全般に適用されるグローバルフラグを定義します。
func addAppFlags(cmd *cobra.Command) {
	cmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "デバッグログを出力します。")
	cmd.PersistentFlags().StringVarP(&dictionaryPath, "dictionary", "d", "", "タグ辞書 (YAML) のパス。未指定なら環境変数 DART_DICTIONARY か同梱の辞書を使います。")
	cmd.PersistentFlags().StringVarP(&opts.Schema, "schema", "s", "", "スキーマのバージョン (v1, v2, v3)。")
}

// preRunAppE は、コマンド実行前にロガーを設定するのだ。
func preRunAppE(cmd *cobra.Command, args []string) error {
	level := slog.LevelInfo
	if verbose {
		level = slog.LevelDebug
	}
	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level})))
	return nil
}

// loadConfig は環境変数から設定を読み込み、CLI フラグで上書きするのだ。
func loadConfig(cmd *cobra.Command) *config.Config {
	cfg := config.LoadConfig()
	if cmd.Flags().Changed("dictionary") {
		cfg.Kit.DictionaryPath = dictionaryPath
	}
	if opts.Schema != "" {
		cfg.Kit.DefaultSchema = opts.Schema
	}
	cfg.Options = opts
	return cfg
}

func init() {
	addAppFlags(rootCmd)
	rootCmd.AddCommand(
		formatCmd,
		concatCmd,
		batchCmd,
		nodesCmd,
		serveCmd,
	)
}

// Execute は、アプリケーションのメインエントリポイントです。
// main.go から呼び出されて、cobra のコマンドライン解析を開始します。
func Execute() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := rootCmd.ExecuteContext(ctx); err != nil {
		stop()
		os.Exit(1)
	}
}
