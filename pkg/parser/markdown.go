package parser

import (
	"strings"

	"github.com/shouni/go-dart-prompt-kit/pkg/domain"
)

const codeFence = "```"

// MarkdownParser はMarkdown形式のジョブ定義を解析し、構造化データに変換する構造体です。
//
//	# タイトル
//	- schema: v2
//
//	## Prompt miku
//	- rating: auto
//	- tags: 1girl, solo
//
// 最初の "## Prompt" より前のフィールド行はジョブ全体の設定として扱います。
// コードブロック内の行は読み飛ばします。
type MarkdownParser struct {
}

// NewMarkdownParser は MarkdownParser を初期化します。
func NewMarkdownParser() *MarkdownParser {
	return &MarkdownParser{}
}

// Parse は Markdown テキストを解析して domain.BatchJob 構造体に変換します。
func (p *MarkdownParser) Parse(input string) (*domain.BatchJob, error) {
	job := &domain.BatchJob{}
	var current *domain.JobEntry
	inFence := false

	addPrevious := func() {
		if current != nil && hasContent(current) {
			job.Entries = append(job.Entries, *current)
		}
	}

	for _, line := range strings.Split(input, "\n") {
		trimmedLine := strings.TrimSpace(line)
		if strings.HasPrefix(trimmedLine, codeFence) {
			inFence = !inFence
			continue
		}
		if trimmedLine == "" || inFence {
			continue
		}

		if m := EntryRegex.FindStringSubmatch(trimmedLine); m != nil {
			addPrevious()
			current = &domain.JobEntry{ID: strings.TrimSpace(m[1])}
			continue
		}

		if m := TitleRegex.FindStringSubmatch(trimmedLine); m != nil && current == nil {
			job.Title = strings.TrimSpace(m[1])
			continue
		}

		m := FieldRegex.FindStringSubmatch(trimmedLine)
		if m == nil {
			continue
		}
		key, val := strings.ToLower(m[1]), strings.TrimSpace(m[2])

		if current == nil {
			if key == "schema" {
				job.Schema = val
			}
			continue
		}
		applyField(current, key, val)
	}

	addPrevious()

	if err := finalize(job); err != nil {
		return nil, err
	}
	return job, nil
}

// hasContent はエントリに有効な入力が含まれているか判定します。
func hasContent(e *domain.JobEntry) bool {
	return e.Tags != "" || e.Copyright != "" || e.Character != ""
}
