package prompts

import (
	"errors"
	"fmt"
	"sort"
	"strings"
	"text/template"

	"github.com/shouni/go-dart-prompt-kit/pkg/domain"
)

// ErrUnknownTemplate は登録されていないスキーマのテンプレートを要求した場合に返されます。
var ErrUnknownTemplate = errors.New("unknown prompt template")

// TemplateBuilder はスキーマごとのテンプレートを保持し、プロンプトを組み立てます。
type TemplateBuilder struct {
	templates map[string]*template.Template
}

// NewTemplateBuilder は埋め込みテンプレートで TemplateBuilder を初期化します。
func NewTemplateBuilder() (*TemplateBuilder, error) {
	return NewTemplateBuilderFrom(allTemplates)
}

// NewTemplateBuilderFrom は任意のテンプレート文字列で TemplateBuilder を初期化します。
// 存在しないフィールドを参照した場合は実行時にエラーになります。
func NewTemplateBuilderFrom(sources map[string]string) (*TemplateBuilder, error) {
	parsedTemplates := make(map[string]*template.Template, len(sources))
	for schema, content := range sources {
		content = strings.TrimRight(content, "\r\n")
		if content == "" {
			return nil, fmt.Errorf("プロンプトテンプレート '%s' の読み込みに失敗しました: 内容が空です", schema)
		}

		tmpl, err := template.New(schema).Option("missingkey=error").Parse(content)
		if err != nil {
			return nil, fmt.Errorf("プロンプトテンプレート '%s' の解析に失敗: %w", schema, err)
		}
		parsedTemplates[schema] = tmpl
	}

	return &TemplateBuilder{
		templates: parsedTemplates,
	}, nil
}

// Build は、要求されたスキーマに応じて適切なテンプレートを実行します。
func (b *TemplateBuilder) Build(schema string, fields domain.PromptFields) (string, error) {
	tmpl, ok := b.templates[schema]
	if !ok {
		return "", fmt.Errorf("%w: '%s'", ErrUnknownTemplate, schema)
	}

	var sb strings.Builder
	if err := tmpl.Execute(&sb, map[string]string(fields)); err != nil {
		return "", fmt.Errorf("プロンプトテンプレート '%s' の実行に失敗しました: %w", schema, err)
	}

	return sb.String(), nil
}

// Schemas は登録済みのスキーマ名をソートして返します。
func (b *TemplateBuilder) Schemas() []string {
	schemas := make([]string, 0, len(b.templates))
	for s := range b.templates {
		schemas = append(schemas, s)
	}
	sort.Strings(schemas)
	return schemas
}
