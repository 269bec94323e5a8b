package runner

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/shouni/go-dart-prompt-kit/pkg/domain"
	"github.com/shouni/go-dart-prompt-kit/pkg/formatter"
)

// ModelResolver はスキーマに対応するモデルを返します。
type ModelResolver interface {
	Model(schema formatter.Schema) (formatter.Model, error)
}

// FormatRunner は1件のエントリをフォーマットする実行実体です。
type FormatRunner struct {
	models        ModelResolver
	defaultSchema string
}

// NewFormatRunner は依存関係を注入して初期化します。
func NewFormatRunner(models ModelResolver, defaultSchema string) *FormatRunner {
	return &FormatRunner{
		models:        models,
		defaultSchema: defaultSchema,
	}
}

// Run はエントリのスキーマに対応するモデルでプロンプトを組み立てます。
func (fr *FormatRunner) Run(ctx context.Context, entry domain.JobEntry) (*domain.FormatResult, error) {
	name := entry.Schema
	if name == "" {
		name = fr.defaultSchema
	}
	schema, err := formatter.ParseSchema(name)
	if err != nil {
		return nil, err
	}

	f, err := formatter.New(schema, formatter.Options{
		Rating:      entry.Rating,
		Length:      entry.Length,
		AspectRatio: entry.AspectRatio,
		Identity:    entry.Identity,
	})
	if err != nil {
		return nil, fmt.Errorf("エントリ '%s' の設定が不正です: %w", entry.ID, err)
	}

	m, err := fr.models.Model(schema)
	if err != nil {
		return nil, err
	}

	if schema.Experimental() {
		slog.DebugContext(ctx, "実験的なスキーマを使用しています", "id", entry.ID, "schema", schema)
	}

	res, err := f.Format(m, entry.Request())
	if err != nil {
		return nil, fmt.Errorf("エントリ '%s' のフォーマットに失敗しました: %w", entry.ID, err)
	}
	return res, nil
}
