package publisher

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/shouni/go-remote-io/pkg/remoteio"

	"github.com/shouni/go-dart-prompt-kit/pkg/domain"
)

// Format は出力形式です。
type Format string

const (
	FormatMarkdown Format = "markdown"
	FormatYAML     Format = "yaml"
)

const (
	defaultMarkdownName = "prompts.md"
	defaultYAMLName     = "prompts.yaml"
)

// 書き出し時に OutputWriter へ渡す Content-Type です。
const (
	ContentTypeMarkdown = "text/markdown; charset=utf-8"
	ContentTypeYAML     = "application/yaml; charset=utf-8"
)

// ErrUnknownFormat は未対応の出力形式が指定された場合に返されます。
var ErrUnknownFormat = errors.New("unknown output format")

// ParseFormat は "md" や "yaml" のような文字列を Format に変換します。
func ParseFormat(s string) (Format, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "md", "markdown":
		return FormatMarkdown, nil
	case "yaml", "yml":
		return FormatYAML, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnknownFormat, s)
	}
}

// Options はパブリッシュ動作を制御する設定項目です。
type Options struct {
	OutputDir string
	FileName  string // 空の場合は形式に応じた既定名
	Format    Format
}

// PublishResult はパブリッシュ処理の結果として生成されたファイルの情報を保持します。
type PublishResult struct {
	Path      string
	Succeeded int
	Failed    int
}

// BatchPublisher はバッチ結果の永続化とフォーマット変換を担います。
type BatchPublisher struct {
	writer remoteio.OutputWriter
}

// NewBatchPublisher は指定された writer で BatchPublisher を生成します。
// 出力先はローカルパスのほか GCS/S3 の URI も指定できます。
func NewBatchPublisher(writer remoteio.OutputWriter) *BatchPublisher {
	return &BatchPublisher{writer: writer}
}

// Publish はバッチ結果を指定形式で書き出し、生成されたファイル情報を返します。
func (p *BatchPublisher) Publish(ctx context.Context, title string, results []domain.BatchResult, opts Options) (PublishResult, error) {
	result := PublishResult{}
	for _, r := range results {
		if r.Failed() {
			result.Failed++
		} else {
			result.Succeeded++
		}
	}

	name := opts.FileName
	if name == "" {
		name = DefaultFileName(opts.Format)
	}
	path, err := ResolveOutputPath(opts.OutputDir, name)
	if err != nil {
		return result, err
	}

	var buf bytes.Buffer
	if err := Render(&buf, opts.Format, title, results); err != nil {
		return result, err
	}
	if err := p.writer.Write(ctx, path, &buf, ContentType(opts.Format)); err != nil {
		return result, fmt.Errorf("結果ファイルの書き込みに失敗しました: %w", err)
	}

	slog.InfoContext(ctx, "結果を書き出しました",
		"path", path,
		"format", opts.Format,
		"succeeded", result.Succeeded,
		"failed", result.Failed,
	)
	result.Path = path
	return result, nil
}

// ContentType は出力形式に対応する Content-Type を返します。
func ContentType(format Format) string {
	if format == FormatYAML {
		return ContentTypeYAML
	}
	return ContentTypeMarkdown
}

// Render はバッチ結果を指定形式で w に書き出します。
func Render(w io.Writer, format Format, title string, results []domain.BatchResult) error {
	switch format {
	case FormatMarkdown, "":
		_, err := io.WriteString(w, BuildMarkdown(title, results))
		return err
	case FormatYAML:
		return WriteYAML(w, title, results)
	default:
		return fmt.Errorf("%w: %q", ErrUnknownFormat, string(format))
	}
}
