package formatter

import (
	"fmt"

	"github.com/shouni/go-dart-prompt-kit/pkg/domain"
	"github.com/shouni/go-dart-prompt-kit/pkg/tags"
	"github.com/shouni/go-dart-prompt-kit/pkg/vocab"
)

// merged はパース結果とユーザー入力を統合した中間結果です。
type merged struct {
	copyright string
	character string
	condition string
	rating    string
}

// mergeTags は general タグをモデルで解析し、明示入力と検出結果を統合します。
// 条件タグはパーサーの出力をそのまま使い、正規化しません。
func mergeTags(m Model, req domain.FormatRequest) (*merged, error) {
	if m == nil {
		return nil, fmt.Errorf("モデルが指定されていません")
	}

	parsed, err := m.ParsePrompt(req.InputTags, false)
	if err != nil {
		return nil, fmt.Errorf("タグの解析に失敗しました: %w", err)
	}

	return &merged{
		copyright: tags.Merge(req.Copyright, parsed.Copyright),
		character: tags.Merge(req.Character, parsed.Character),
		condition: parsed.Known,
		rating:    parsed.Rating,
	}, nil
}

// resolveRating は選択を解決し、語彙表からモデル内部トークンを引きます。
func resolveRating(choice RatingChoice, parsed string, v *vocab.Vocabulary[vocab.Rating]) (string, error) {
	return v.Token(choice.Resolve(parsed))
}

// baseFields は全バージョン共通のフィールドを組み立てます。
func (mg *merged) baseFields(ratingToken, lengthToken string) domain.PromptFields {
	return domain.PromptFields{
		domain.FieldCopyright: mg.copyright,
		domain.FieldCharacter: mg.character,
		domain.FieldCondition: mg.condition,
		domain.FieldRating:    ratingToken,
		domain.FieldLength:    lengthToken,
	}
}

// finish はモデルのフォーマッタを呼び出し、結果を4つ組にまとめます。
func (mg *merged) finish(m Model, fields domain.PromptFields) (*domain.FormatResult, error) {
	prompt, err := m.FormatPrompt(fields)
	if err != nil {
		return nil, fmt.Errorf("プロンプトの組み立てに失敗しました: %w", err)
	}

	return &domain.FormatResult{
		Prompt:    prompt,
		Copyright: mg.copyright,
		Character: mg.character,
		InputTags: mg.condition,
	}, nil
}
