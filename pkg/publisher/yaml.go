package publisher

import (
	"fmt"
	"io"

	"gopkg.in/yaml.v3"

	"github.com/shouni/go-dart-prompt-kit/pkg/domain"
)

type yamlDocument struct {
	Title   string       `yaml:"title,omitempty"`
	Results []yamlRecord `yaml:"results"`
}

type yamlRecord struct {
	ID     string               `yaml:"id"`
	Schema string               `yaml:"schema,omitempty"`
	Output *domain.FormatResult `yaml:"output,omitempty"`
	Error  string               `yaml:"error,omitempty"`
}

// WriteYAML はバッチ結果を YAML で書き出します。
func WriteYAML(w io.Writer, title string, results []domain.BatchResult) error {
	doc := yamlDocument{Title: title, Results: make([]yamlRecord, 0, len(results))}
	for _, r := range results {
		rec := yamlRecord{ID: r.Entry.ID, Schema: r.Entry.Schema, Output: r.Result}
		if r.Err != nil {
			rec.Error = r.Err.Error()
		}
		doc.Results = append(doc.Results, rec)
	}

	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(doc); err != nil {
		return fmt.Errorf("YAML のエンコードに失敗しました: %w", err)
	}
	return enc.Close()
}
