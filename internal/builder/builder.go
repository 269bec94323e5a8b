package builder

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/shouni/go-remote-io/pkg/gcsfactory"
	"github.com/shouni/go-remote-io/pkg/remoteio"

	"github.com/shouni/go-dart-prompt-kit/examples"
	"github.com/shouni/go-dart-prompt-kit/internal/config"
	"github.com/shouni/go-dart-prompt-kit/pkg/model"
	"github.com/shouni/go-dart-prompt-kit/pkg/workflow"
)

// NewRemoteIO は、ローカルファイルと GCS/S3 の両方を扱える Reader と Writer を生成するのだ。
func NewRemoteIO(ctx context.Context) (remoteio.InputReader, remoteio.OutputWriter, error) {
	gcsFactory, err := gcsfactory.NewGCSClientFactory(ctx)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to create GCS client factory: %w", err)
	}

	reader, err := gcsFactory.NewInputReader()
	if err != nil {
		return nil, nil, fmt.Errorf("InputReaderの生成に失敗しました: %w", err)
	}
	writer, err := gcsFactory.NewOutputWriter()
	if err != nil {
		return nil, nil, fmt.Errorf("OutputWriterの生成に失敗しました: %w", err)
	}
	return reader, writer, nil
}

// BuildAppContext は設定からタグ辞書を読み込み、Manager を含む AppContext を構築します。
func BuildAppContext(ctx context.Context, cfg *config.Config, reader remoteio.InputReader, writer remoteio.OutputWriter) (*AppContext, error) {
	dict, err := LoadDictionary(ctx, reader, cfg.Kit.DictionaryPath)
	if err != nil {
		return nil, err
	}

	manager, err := workflow.New(workflow.ManagerArgs{
		Config:     cfg.Kit,
		Dictionary: dict,
		Writer:     writer,
	})
	if err != nil {
		return nil, fmt.Errorf("Manager の初期化に失敗しました: %w", err)
	}

	appCtx := NewAppContext(cfg, reader, writer, manager)
	return &appCtx, nil
}

// LoadDictionary はタグ辞書を読み込みます。パスが空の場合は同梱のサンプル辞書を使います。
func LoadDictionary(ctx context.Context, reader remoteio.InputReader, path string) (*model.Dictionary, error) {
	if path == "" {
		slog.DebugContext(ctx, "同梱のサンプル辞書を使用するのだ")
		return model.ParseDictionary(examples.TagsYAML)
	}

	rc, err := reader.Open(ctx, path)
	if err != nil {
		return nil, fmt.Errorf("タグ辞書ファイルのオープンに失敗しました (%s): %w", path, err)
	}
	defer rc.Close()

	dict, err := model.LoadDictionary(rc)
	if err != nil {
		return nil, fmt.Errorf("タグ辞書の読み込みに失敗しました (%s): %w", path, err)
	}
	slog.InfoContext(ctx, "タグ辞書を読み込みました", "path", path)
	return dict, nil
}
