package prompts

import "github.com/shouni/go-dart-prompt-kit/pkg/domain"

// PromptBuilder は、フィールド集合からモデル入力のプロンプトを構築する契約です。
type PromptBuilder interface {
	// Build は、指定されたスキーマ（例: "v2"）のテンプレートにフィールドを埋め込みます。
	Build(schema string, fields domain.PromptFields) (string, error)
}
