package formatter

import (
	"github.com/shouni/go-dart-prompt-kit/pkg/domain"
	"github.com/shouni/go-dart-prompt-kit/pkg/vocab"
)

// V3Formatter は Dart v3 モデル用のフォーマッタです（実験的）。
// v1/v2 モデルとは互換性がありません。
type V3Formatter struct {
	AspectRatio vocab.AspectRatio
	Rating      RatingChoice
	Length      vocab.Length
}

// Schema は SchemaV3 を返します。
func (f V3Formatter) Schema() Schema {
	return SchemaV3
}

// Format は v3 のフィールド集合（aspect_ratio, rating, length）でプロンプトを組み立てます。
func (f V3Formatter) Format(m Model, req domain.FormatRequest) (*domain.FormatResult, error) {
	mg, err := mergeTags(m, req)
	if err != nil {
		return nil, err
	}

	rating, err := resolveRating(f.Rating, mg.rating, vocab.V3RatingMap)
	if err != nil {
		return nil, err
	}
	aspectRatio, err := vocab.V3AspectRatioMap.Token(f.AspectRatio)
	if err != nil {
		return nil, err
	}
	length, err := vocab.V3LengthMap.Token(f.Length)
	if err != nil {
		return nil, err
	}

	fields := mg.baseFields(rating, length)
	fields[domain.FieldAspectRatio] = aspectRatio

	return mg.finish(m, fields)
}
