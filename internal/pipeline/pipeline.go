package pipeline

import (
	"context"
	"fmt"
	"io"
	"log/slog"

	"gopkg.in/yaml.v3"

	"github.com/shouni/go-dart-prompt-kit/internal/builder"
	"github.com/shouni/go-dart-prompt-kit/internal/config"
	"github.com/shouni/go-dart-prompt-kit/internal/server"
	"github.com/shouni/go-dart-prompt-kit/pkg/domain"
	"github.com/shouni/go-dart-prompt-kit/pkg/node"
	"github.com/shouni/go-dart-prompt-kit/pkg/parser"
	"github.com/shouni/go-dart-prompt-kit/pkg/publisher"
)

// newRemoteIO は Reader と Writer の生成関数です。
var newRemoteIO = builder.NewRemoteIO

// setupAppContext は、入出力を初期化してからアプリケーションコンテキストを構築して返すのだ。
func setupAppContext(ctx context.Context, cfg *config.Config) (*builder.AppContext, error) {
	reader, writer, err := newRemoteIO(ctx)
	if err != nil {
		return nil, err
	}
	return builder.BuildAppContext(ctx, cfg, reader, writer)
}

// ExecuteFormat は、フラグで指定された1件の入力からプロンプトを組み立て、YAML で書き出します。
func ExecuteFormat(ctx context.Context, cfg *config.Config, w io.Writer) error {
	appCtx, err := setupAppContext(ctx, cfg)
	if err != nil {
		return err
	}

	formatRunner, err := appCtx.Workflow.BuildFormatRunner()
	if err != nil {
		return fmt.Errorf("FormatRunnerの構築に失敗しました: %w", err)
	}

	opts := appCtx.Options
	res, err := formatRunner.Run(ctx, domain.JobEntry{
		ID:          "cli",
		Schema:      opts.Schema,
		Rating:      opts.Rating,
		Length:      opts.Length,
		AspectRatio: opts.AspectRatio,
		Identity:    opts.Identity,
		Copyright:   opts.Copyright,
		Character:   opts.Character,
		Tags:        opts.Tags,
	})
	if err != nil {
		return err
	}

	return writeYAML(w, res)
}

// ExecuteConcat は、文字列結合ノードで引数を結合して書き出します。
func ExecuteConcat(ctx context.Context, cfg *config.Config, values []string, w io.Writer) error {
	if len(values) > node.ConcatSlots {
		return fmt.Errorf("結合できる文字列は最大 %d 個です (指定: %d)", node.ConcatSlots, len(values))
	}

	appCtx, err := setupAppContext(ctx, cfg)
	if err != nil {
		return err
	}

	n, ok := appCtx.Manager.Registry().Get(node.NewConcatNode().Info().Name)
	if !ok {
		return fmt.Errorf("文字列結合ノードが登録されていません")
	}

	in := node.Inputs{node.InputSeparator: appCtx.Options.Separator}
	for i, v := range values {
		in[fmt.Sprintf("string_%d", i+1)] = v
	}

	out, err := n.Execute(ctx, in)
	if err != nil {
		return err
	}
	_, err = fmt.Fprintln(w, out[0])
	return err
}

// ExecuteBatch は、ジョブファイルを読み込んで全エントリを処理し、結果を保存します。
func ExecuteBatch(ctx context.Context, cfg *config.Config) (publisher.PublishResult, error) {
	appCtx, err := setupAppContext(ctx, cfg)
	if err != nil {
		return publisher.PublishResult{}, err
	}
	opts := appCtx.Options

	format, err := publisher.ParseFormat(opts.OutputFormat)
	if err != nil {
		return publisher.PublishResult{}, err
	}

	job, err := parser.NewJobParser(appCtx.Reader).ParseFromPath(ctx, opts.JobFile)
	if err != nil {
		return publisher.PublishResult{}, err
	}

	// --- Phase 1: Format Phase ---
	results, err := runBatchStep(ctx, appCtx, *job)
	if err != nil {
		return publisher.PublishResult{}, err
	}

	// --- Phase 2: Publish Phase ---
	return runPublishStep(ctx, appCtx, job.Title, results, publisher.Options{
		OutputDir: opts.OutputDir,
		Format:    format,
	})
}

// ExecuteNodes は、登録済みノードの宣言を YAML で書き出します。name を指定した場合はそのノードのみです。
func ExecuteNodes(ctx context.Context, cfg *config.Config, name string, w io.Writer) error {
	appCtx, err := setupAppContext(ctx, cfg)
	if err != nil {
		return err
	}
	registry := appCtx.Manager.Registry()

	if name == "" {
		return writeYAML(w, registry.Infos())
	}

	n, ok := registry.Get(name)
	if !ok {
		return fmt.Errorf("%w: %s", node.ErrNodeNotFound, name)
	}
	return writeYAML(w, n.Info())
}

// ExecuteServe は、ノードを HTTP で実行するサーバーをコンテキストがキャンセルされるまで動かすのだ。
func ExecuteServe(ctx context.Context, cfg *config.Config) error {
	appCtx, err := setupAppContext(ctx, cfg)
	if err != nil {
		return err
	}

	srv, err := server.New(appCtx.Manager.Registry(), appCtx.Manager, server.Options{
		RateLimit: cfg.HTTPRateLimit,
		RateBurst: cfg.HTTPRateBurst,
	})
	if err != nil {
		return fmt.Errorf("サーバーの初期化に失敗したのだ: %w", err)
	}
	return srv.ListenAndServe(ctx, cfg.ListenAddr)
}

// runBatchStep は BatchRunner を使ってエントリを並列処理するのだ
func runBatchStep(ctx context.Context, appCtx *builder.AppContext, job domain.BatchJob) ([]domain.BatchResult, error) {
	slog.InfoContext(ctx, "Phase 1: フォーマットを開始するのだ...", "entries", len(job.Entries))
	batchRunner, err := appCtx.Workflow.BuildBatchRunner()
	if err != nil {
		return nil, fmt.Errorf("BatchRunnerの構築に失敗したのだ: %w", err)
	}

	results, err := batchRunner.Run(ctx, job)
	if err != nil {
		return nil, fmt.Errorf("バッチ処理に失敗しました: %w", err)
	}
	return results, nil
}

// runPublishStep は PublishRunner を使って結果を保存するのだ
func runPublishStep(ctx context.Context, appCtx *builder.AppContext, title string, results []domain.BatchResult, opts publisher.Options) (publisher.PublishResult, error) {
	slog.InfoContext(ctx, "Phase 2: 保存処理を開始するのだ...", "dir", opts.OutputDir)
	publishRunner, err := appCtx.Workflow.BuildPublishRunner()
	if err != nil {
		return publisher.PublishResult{}, fmt.Errorf("PublishRunnerの構築に失敗したのだ: %w", err)
	}

	res, err := publishRunner.Publish(ctx, title, results, opts)
	if err != nil {
		return res, fmt.Errorf("保存処理に失敗しました: %w", err)
	}
	return res, nil
}

func writeYAML(w io.Writer, v any) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(v); err != nil {
		return fmt.Errorf("YAML のエンコードに失敗しました: %w", err)
	}
	return enc.Close()
}
