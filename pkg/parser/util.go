package parser

import (
	"fmt"
	"log/slog"
	"path/filepath"
	"strings"

	"github.com/shouni/go-dart-prompt-kit/pkg/domain"
)

// Format はジョブファイルの形式です。
type Format string

const (
	FormatYAML     Format = "yaml"
	FormatJSON     Format = "json"
	FormatMarkdown Format = "markdown"
)

// DetectFormat は拡張子からジョブファイルの形式を判定します。不明な拡張子は YAML として扱います。
func DetectFormat(path string) Format {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".md", ".markdown":
		return FormatMarkdown
	case ".json":
		return FormatJSON
	default:
		return FormatYAML
	}
}

// applyField はフィールド行の値をエントリに設定します。未知のキーなら false を返します。
func applyField(e *domain.JobEntry, key, val string) bool {
	switch key {
	case "id":
		e.ID = val
	case "schema":
		e.Schema = val
	case domain.FieldRating:
		e.Rating = val
	case domain.FieldLength:
		e.Length = val
	case domain.FieldAspectRatio:
		e.AspectRatio = val
	case domain.FieldIdentity:
		e.Identity = val
	case domain.FieldCopyright:
		e.Copyright = val
	case domain.FieldCharacter:
		e.Character = val
	case "tags", "input_tags":
		e.Tags = val
	default:
		slog.Debug("Markdown内に未知のフィールドキーが見つかりました", "key", key)
		return false
	}
	return true
}

// finalize は ID の無いエントリに連番の ID を割り当て、エントリが空でないことを確認します。
func finalize(job *domain.BatchJob) error {
	if len(job.Entries) == 0 {
		return ErrNoEntries
	}

	seen := make(map[string]struct{}, len(job.Entries))
	for i := range job.Entries {
		e := &job.Entries[i]
		if e.ID == "" {
			e.ID = fmt.Sprintf("entry-%d", i+1)
		}
		if _, dup := seen[e.ID]; dup {
			return fmt.Errorf("%w: %s", ErrDuplicateID, e.ID)
		}
		seen[e.ID] = struct{}{}
	}
	return nil
}
