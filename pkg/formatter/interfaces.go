package formatter

import "github.com/shouni/go-dart-prompt-kit/pkg/domain"

// Model はタグの解析とプロンプトの組み立てを担う外部モデルの契約です。
type Model interface {
	// ParsePrompt は自由記述のタグから版権・キャラクター・レーティングを抽出します。
	ParsePrompt(text string, escapeBrackets bool) (*domain.ParsedPrompt, error)
	// FormatPrompt はフィールド集合からモデル固有のプロンプト文字列を組み立てます。
	FormatPrompt(fields domain.PromptFields) (string, error)
}

// Formatter はスキーマのバージョンごとのフォーマッタの契約です。
type Formatter interface {
	Schema() Schema
	Format(m Model, req domain.FormatRequest) (*domain.FormatResult, error)
}
