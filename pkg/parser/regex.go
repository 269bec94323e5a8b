package parser

import "regexp"

var (
	// TitleRegex は "# タイトル" 形式のタイトル行をキャプチャします。
	TitleRegex = regexp.MustCompile(`^#\s+(.+)`)

	// EntryRegex は "## Prompt" で始まるエントリ区切り行を特定し、続く名前をキャプチャします。
	EntryRegex = regexp.MustCompile(`^##\s+Prompt\b:?\s*(.*)`)

	// FieldRegex は "- key: value" 形式のフィールド行をキャプチャします。値は空でも構いません。
	FieldRegex = regexp.MustCompile(`^\s*-\s*([a-zA-Z_]+):\s*(.*)`)
)
