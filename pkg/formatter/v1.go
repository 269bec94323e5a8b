package formatter

import (
	"github.com/shouni/go-dart-prompt-kit/pkg/domain"
	"github.com/shouni/go-dart-prompt-kit/pkg/vocab"
)

// V1Formatter は Dart v1 モデル用のフォーマッタです。v2/v3 モデルとは互換性がありません。
type V1Formatter struct {
	Rating RatingChoice
	Length vocab.Length
}

// Schema は SchemaV1 を返します。
func (f V1Formatter) Schema() Schema {
	return SchemaV1
}

// Format は v1 のフィールド集合（rating, length）でプロンプトを組み立てます。
func (f V1Formatter) Format(m Model, req domain.FormatRequest) (*domain.FormatResult, error) {
	mg, err := mergeTags(m, req)
	if err != nil {
		return nil, err
	}

	rating, err := resolveRating(f.Rating, mg.rating, vocab.V1RatingMap)
	if err != nil {
		return nil, err
	}
	length, err := vocab.V1LengthMap.Token(f.Length)
	if err != nil {
		return nil, err
	}

	return mg.finish(m, mg.baseFields(rating, length))
}
