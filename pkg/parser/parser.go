package parser

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"

	"github.com/shouni/go-remote-io/pkg/remoteio"
	"gopkg.in/yaml.v3"

	"github.com/shouni/go-dart-prompt-kit/pkg/domain"
)

var (
	// ErrNoEntries はジョブに有効なエントリが1件も無い場合に返されます。
	ErrNoEntries = errors.New("job has no entries")

	// ErrDuplicateID は同じ ID のエントリが複数ある場合に返されます。
	ErrDuplicateID = errors.New("duplicate entry id")
)

// Parser はジョブ定義を読み込むためのインターフェースを定義します。
type Parser interface {
	ParseFromPath(ctx context.Context, path string) (*domain.BatchJob, error)
}

// JobParser は YAML/JSON/Markdown 形式のジョブ定義を解析する構造体です。
type JobParser struct {
	reader   remoteio.InputReader
	markdown *MarkdownParser
}

// NewJobParser は新しい JobParser インスタンスを生成します。
func NewJobParser(r remoteio.InputReader) *JobParser {
	return &JobParser{reader: r, markdown: NewMarkdownParser()}
}

// ParseFromPath は指定された GCS URI やローカルファイルパスなどからジョブ定義を読み込み、
// 拡張子に応じて解析します。
func (p *JobParser) ParseFromPath(ctx context.Context, path string) (*domain.BatchJob, error) {
	slog.InfoContext(ctx, "ジョブファイルを読み込んでいます", "path", path)
	rc, err := p.reader.Open(ctx, path)
	if err != nil {
		return nil, fmt.Errorf("ジョブファイルのオープンに失敗しました (%s): %w", path, err)
	}
	defer rc.Close()

	return p.Parse(rc, DetectFormat(path))
}

// Parse は Reader の内容を指定形式で解析します。
func (p *JobParser) Parse(r io.Reader, format Format) (*domain.BatchJob, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("ジョブ定義の読み込みに失敗しました: %w", err)
	}

	if format == FormatMarkdown {
		return p.markdown.Parse(string(data))
	}
	return ParseJob(bytes.NewReader(data))
}

// ParseJob は YAML または JSON のジョブ定義を解析します。JSON は YAML の部分集合として扱います。
func ParseJob(r io.Reader) (*domain.BatchJob, error) {
	job := &domain.BatchJob{}
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(job); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, ErrNoEntries
		}
		return nil, fmt.Errorf("ジョブ定義のパースに失敗しました: %w", err)
	}

	if err := finalize(job); err != nil {
		return nil, err
	}
	return job, nil
}
