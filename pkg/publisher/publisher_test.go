package publisher

import (
	"bytes"
	"context"
	"errors"
	"io"
	"path/filepath"
	"strings"
	"testing"

	"gopkg.in/yaml.v3"

	"github.com/shouni/go-dart-prompt-kit/examples"
	"github.com/shouni/go-dart-prompt-kit/pkg/domain"
	"github.com/shouni/go-dart-prompt-kit/pkg/formatter"
	"github.com/shouni/go-dart-prompt-kit/pkg/model"
	"github.com/shouni/go-dart-prompt-kit/pkg/parser"
	"github.com/shouni/go-dart-prompt-kit/pkg/prompts"
	"github.com/shouni/go-dart-prompt-kit/pkg/runner"
)

func sampleResults() []domain.BatchResult {
	return []domain.BatchResult{
		{
			Entry: domain.JobEntry{ID: "miku", Schema: "v2", Rating: "auto", Tags: "1girl, hatsune miku, sensitive"},
			Result: &domain.FormatResult{
				Prompt:    "<|bos|>prompt<|input_end|>",
				Character: "hatsune miku",
				InputTags: "1girl",
			},
		},
		{
			Entry: domain.JobEntry{ID: "broken", Schema: "v1", Length: "medium", Tags: "solo"},
			Err:   errors.New("unknown vocabulary label"),
		},
	}
}

func TestBuildMarkdown(t *testing.T) {
	md := BuildMarkdown("結果", sampleResults())

	for _, want := range []string{
		"# 結果\n",
		"## Prompt miku\n- schema: v2\n- rating: auto\n- tags: 1girl, hatsune miku, sensitive\n",
		"```text\n<|bos|>prompt<|input_end|>\n```",
		"```yaml\ncharacter: hatsune miku\ninput_tags: 1girl\n```",
		"## Prompt broken\n",
		"- error: unknown vocabulary label\n",
	} {
		if !strings.Contains(md, want) {
			t.Errorf("出力に %q が含まれていません:\n%s", want, md)
		}
	}

	t.Run("出力を再びジョブとして読み込めること", func(t *testing.T) {
		job, err := parser.NewMarkdownParser().Parse(md)
		if err != nil {
			t.Fatalf("予期しないエラー: %v", err)
		}
		if len(job.Entries) != 2 || job.Entries[0].Tags != "1girl, hatsune miku, sensitive" || job.Entries[1].Length != "medium" {
			t.Errorf("読み込んだジョブが違います: %+v", job.Entries)
		}
	})
}

func TestWriteYAML(t *testing.T) {
	var buf bytes.Buffer
	if err := WriteYAML(&buf, "batch", sampleResults()); err != nil {
		t.Fatalf("予期しないエラー: %v", err)
	}

	var doc struct {
		Title   string `yaml:"title"`
		Results []struct {
			ID     string            `yaml:"id"`
			Output map[string]string `yaml:"output"`
			Error  string            `yaml:"error"`
		} `yaml:"results"`
	}
	if err := yaml.Unmarshal(buf.Bytes(), &doc); err != nil {
		t.Fatalf("YAML のデコードに失敗しました: %v", err)
	}
	if doc.Title != "batch" || len(doc.Results) != 2 {
		t.Fatalf("ドキュメントが違います: %+v", doc)
	}
	if doc.Results[0].Output["formatted_prompt"] != "<|bos|>prompt<|input_end|>" {
		t.Errorf("出力が違います: %+v", doc.Results[0])
	}
	if doc.Results[1].Output != nil || doc.Results[1].Error == "" {
		t.Errorf("失敗したエントリが違います: %+v", doc.Results[1])
	}
}

type memoryWriter struct {
	files        map[string]string
	contentTypes map[string]string
}

func newMemoryWriter() *memoryWriter {
	return &memoryWriter{files: map[string]string{}, contentTypes: map[string]string{}}
}

func (w *memoryWriter) Write(_ context.Context, path string, r io.Reader, contentType string) error {
	b, err := io.ReadAll(r)
	if err != nil {
		return err
	}
	w.files[path] = string(b)
	w.contentTypes[path] = contentType
	return nil
}

func TestBatchPublisher_Publish(t *testing.T) {
	w := newMemoryWriter()
	p := NewBatchPublisher(w)

	res, err := p.Publish(context.Background(), "t", sampleResults(), Options{OutputDir: "out", Format: FormatYAML})
	if err != nil {
		t.Fatalf("予期しないエラー: %v", err)
	}
	want := filepath.Join("out", "prompts.yaml")
	if res.Path != want || res.Succeeded != 1 || res.Failed != 1 {
		t.Errorf("PublishResult = %+v", res)
	}
	if !strings.Contains(w.files[want], "results:") {
		t.Errorf("書き出された内容が違います: %q", w.files[want])
	}
	if w.contentTypes[want] != ContentTypeYAML {
		t.Errorf("Content-Type = %q", w.contentTypes[want])
	}

	t.Run("GCS の出力先", func(t *testing.T) {
		res, err := p.Publish(context.Background(), "t", sampleResults(), Options{OutputDir: "gs://bucket/out", Format: FormatMarkdown})
		if err != nil {
			t.Fatalf("予期しないエラー: %v", err)
		}
		if res.Path != "gs://bucket/out/prompts.md" {
			t.Errorf("Path = %q", res.Path)
		}
		if w.contentTypes[res.Path] != ContentTypeMarkdown {
			t.Errorf("Content-Type = %q", w.contentTypes[res.Path])
		}
	})

	if _, err := p.Publish(context.Background(), "t", nil, Options{Format: "html"}); !errors.Is(err, ErrUnknownFormat) {
		t.Errorf("ErrUnknownFormat を期待しましたが %v", err)
	}
}

func TestResolveOutputPath(t *testing.T) {
	if got, err := ResolveOutputPath("out", "a.md"); err != nil || got != filepath.Join("out", "a.md") {
		t.Errorf("ResolveOutputPath() = %q, %v", got, err)
	}
	if _, err := ResolveOutputPath("out", "../escape.md"); err == nil {
		t.Error("親ディレクトリへの参照はエラーになるはずです")
	}
	if _, err := ResolveOutputPath("out", ""); err == nil {
		t.Error("空のファイル名はエラーになるはずです")
	}
	if got, err := ResolveOutputPath("s3://bucket/out", "a.yaml"); err != nil || got != "s3://bucket/out/a.yaml" {
		t.Errorf("ResolveOutputPath() = %q, %v", got, err)
	}
}

func TestParseFormat(t *testing.T) {
	for in, want := range map[string]Format{"": FormatMarkdown, "md": FormatMarkdown, "YAML": FormatYAML, "yml": FormatYAML} {
		if got, err := ParseFormat(in); err != nil || got != want {
			t.Errorf("ParseFormat(%q) = %q, %v", in, got, err)
		}
	}
	if _, err := ParseFormat("pdf"); !errors.Is(err, ErrUnknownFormat) {
		t.Errorf("ErrUnknownFormat を期待しましたが %v", err)
	}
}

// schemaModels はスキーマごとのモデルを返す ModelResolver です。
type schemaModels map[formatter.Schema]formatter.Model

func (m schemaModels) Model(schema formatter.Schema) (formatter.Model, error) {
	if fm, ok := m[schema]; ok {
		return fm, nil
	}
	return nil, formatter.ErrUnknownSchema
}

func newExampleFormatRunner(t *testing.T) *runner.FormatRunner {
	t.Helper()
	dict, err := model.ParseDictionary(examples.TagsYAML)
	if err != nil {
		t.Fatalf("辞書の読み込みに失敗しました: %v", err)
	}
	pb, err := prompts.NewTemplateBuilder()
	if err != nil {
		t.Fatalf("TemplateBuilder の作成に失敗しました: %v", err)
	}

	models := schemaModels{}
	for _, s := range formatter.Schemas {
		tm, err := model.NewTagModel(string(s), dict, pb)
		if err != nil {
			t.Fatalf("モデルの作成に失敗しました: %v", err)
		}
		models[s] = tm
	}
	return runner.NewFormatRunner(models, "v2")
}

func TestBuildMarkdown_RoundTripKeepsPrompts(t *testing.T) {
	ctx := context.Background()
	fr := newExampleFormatRunner(t)

	job, err := examples.LoadBatchJob()
	if err != nil {
		t.Fatalf("サンプルジョブの読み込みに失敗しました: %v", err)
	}

	formatAll := func(entries []domain.JobEntry) []domain.BatchResult {
		results := make([]domain.BatchResult, len(entries))
		for i, e := range entries {
			res, err := fr.Run(ctx, e)
			if err != nil {
				t.Fatalf("%s のフォーマットに失敗しました: %v", e.ID, err)
			}
			results[i] = domain.BatchResult{Entry: e, Result: res}
		}
		return results
	}

	first := formatAll(job.ResolveSchemas())
	reread, err := parser.NewMarkdownParser().Parse(BuildMarkdown(job.Title, first))
	if err != nil {
		t.Fatalf("出力の再読み込みに失敗しました: %v", err)
	}
	if reread.Title != job.Title || len(reread.Entries) != len(first) {
		t.Fatalf("再読み込みしたジョブが違います: %+v", reread)
	}
	second := formatAll(reread.ResolveSchemas())

	for i := range first {
		t.Run(first[i].Entry.ID, func(t *testing.T) {
			if second[i].Entry.ID != first[i].Entry.ID {
				t.Fatalf("ID = %q, want %q", second[i].Entry.ID, first[i].Entry.ID)
			}
			if got, want := second[i].Result.Prompt, first[i].Result.Prompt; got != want {
				t.Errorf("プロンプトが変わりました\n first: %s\nsecond: %s", want, got)
			}
			if *second[i].Result != *first[i].Result {
				t.Errorf("結果が変わりました\n first: %+v\nsecond: %+v", *first[i].Result, *second[i].Result)
			}
		})
	}
}
