package model

import (
	"fmt"
	"log/slog"
	"strings"

	"github.com/shouni/go-dart-prompt-kit/pkg/domain"
	"github.com/shouni/go-dart-prompt-kit/pkg/prompts"
	"github.com/shouni/go-dart-prompt-kit/pkg/tags"
)

var (
	bracketEscaper   = strings.NewReplacer("(", `\(`, ")", `\)`)
	bracketUnescaper = strings.NewReplacer(`\(`, "(", `\)`, ")")
)

// TagModel はタグ辞書とプロンプトテンプレートで動作する Dart モデルの実装です。
// 状態を持たないため、複数のゴルーチンから同時に呼び出せます。
type TagModel struct {
	schema  string
	dict    *Dictionary
	builder prompts.PromptBuilder
}

// NewTagModel は TagModel を初期化します。
func NewTagModel(schema string, dict *Dictionary, builder prompts.PromptBuilder) (*TagModel, error) {
	if schema == "" {
		return nil, fmt.Errorf("スキーマは必須です")
	}
	if dict == nil {
		return nil, fmt.Errorf("タグ辞書は必須です")
	}
	if builder == nil {
		return nil, fmt.Errorf("PromptBuilder は必須です")
	}
	return &TagModel{
		schema:  schema,
		dict:    dict,
		builder: builder,
	}, nil
}

// Schema はモデルが受け付けるスキーマのバージョンを返します。
func (m *TagModel) Schema() string {
	return m.schema
}

// ParsePrompt はカンマ区切りのタグを分類し、版権・キャラクター・一般タグとレーティングを抽出します。
// 最初に見つかったレーティングのタグが採用され、残りのレーティングのタグは捨てられます。
func (m *TagModel) ParsePrompt(text string, escapeBrackets bool) (*domain.ParsedPrompt, error) {
	var copyright, character, known []string
	rating := ""

	for _, raw := range tags.Split(text) {
		tag := bracketUnescaper.Replace(raw)
		out := tag
		if escapeBrackets {
			out = bracketEscaper.Replace(tag)
		}

		switch m.dict.Classify(tag) {
		case CategoryRating:
			if rating == "" {
				rating, _ = m.dict.RatingOf(tag)
			}
		case CategoryCopyright:
			copyright = append(copyright, out)
		case CategoryCharacter:
			character = append(character, out)
		case CategoryGeneral:
			known = append(known, out)
		default:
			slog.Debug("辞書に存在しないタグを除外しました", "tag", tag, "schema", m.schema)
		}
	}

	if rating == "" {
		rating = m.dict.DefaultRating()
	}

	return &domain.ParsedPrompt{
		Copyright: strings.Join(tags.Unique(copyright), tags.DefaultSeparator),
		Character: strings.Join(tags.Unique(character), tags.DefaultSeparator),
		Known:     strings.Join(tags.Unique(known), tags.DefaultSeparator),
		Rating:    rating,
	}, nil
}

// FormatPrompt はスキーマのテンプレートにフィールドを埋め込んでプロンプトを返します。
func (m *TagModel) FormatPrompt(fields domain.PromptFields) (string, error) {
	return m.builder.Build(m.schema, fields)
}
