package cmd

import (
	"fmt"
	"log/slog"
	"time"

	"github.com/spf13/cobra"

	"github.com/shouni/go-dart-prompt-kit/internal/config"
	"github.com/shouni/go-dart-prompt-kit/internal/pipeline"
)

var (
	batchConcurrency  int
	batchRateInterval string
)

// batchCmd は、ジョブファイルの全エントリを処理して結果を保存するのだ。
var batchCmd = &cobra.Command{
	Use:   "batch",
	Short: "ジョブファイル (YAML/JSON/Markdown) のプロンプトを一括で組み立てます。",
	Args:  cobra.NoArgs,
	RunE:  batchCommand,
}

func init() {
	batchCmd.Flags().StringVarP(&opts.JobFile, "job-file", "f", "", "ジョブファイルのパス。")
	batchCmd.Flags().StringVarP(&opts.OutputDir, "output-dir", "o", config.DefaultOutputDir, "結果の保存先ディレクトリ。")
	batchCmd.Flags().StringVar(&opts.OutputFormat, "format", config.DefaultOutputFormat, "出力形式 (markdown, yaml)。")
	batchCmd.Flags().BoolVar(&opts.FailFast, "fail-fast", false, "最初の失敗で処理を中断します。")
	batchCmd.Flags().IntVarP(&batchConcurrency, "concurrency", "c", 0, "同時に処理するエントリ数。0 なら環境変数か既定値を使います。")
	batchCmd.Flags().StringVar(&batchRateInterval, "rate-interval", "", "エントリの処理間隔 (例: 100ms)。")
	_ = batchCmd.MarkFlagRequired("job-file")
}

func batchCommand(cmd *cobra.Command, args []string) error {
	cfg := loadConfig(cmd)
	cfg.Kit.FailFast = opts.FailFast
	if batchConcurrency > 0 {
		cfg.Kit.Concurrency = batchConcurrency
	}
	if cmd.Flags().Changed("rate-interval") {
		d, err := parseInterval(batchRateInterval)
		if err != nil {
			return err
		}
		cfg.Kit.RateInterval = d
	}

	slog.Info("バッチ処理を起動するのだ",
		"job", opts.JobFile,
		"schema", cfg.Kit.DefaultSchema,
		"concurrency", cfg.Kit.Concurrency,
		"output", opts.OutputDir)

	res, err := pipeline.ExecuteBatch(cmd.Context(), cfg)
	if err != nil {
		return fmt.Errorf("バッチ処理中にエラーが発生しました: %w", err)
	}

	slog.Info("すべての工程が完了したのだ", "path", res.Path, "succeeded", res.Succeeded, "failed", res.Failed)
	return nil
}

// parseInterval は "100ms" のような間隔を解釈するのだ。負の値は受け付けないのだ。
func parseInterval(s string) (time.Duration, error) {
	d, err := time.ParseDuration(s)
	if err != nil || d < 0 {
		return 0, fmt.Errorf("間隔の指定が不正なのだ: %q", s)
	}
	return d, nil
}
