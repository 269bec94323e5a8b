package formatter

import (
	"github.com/shouni/go-dart-prompt-kit/pkg/domain"
	"github.com/shouni/go-dart-prompt-kit/pkg/vocab"
)

// V2Formatter は Dart v2 モデル用のフォーマッタです。v1/v3 モデルとは互換性がありません。
type V2Formatter struct {
	AspectRatio vocab.AspectRatio
	Rating      RatingChoice
	Length      vocab.Length
	Identity    vocab.Identity
}

// Schema は SchemaV2 を返します。
func (f V2Formatter) Schema() Schema {
	return SchemaV2
}

// Format は v2 のフィールド集合（aspect_ratio, rating, length, identity）でプロンプトを組み立てます。
func (f V2Formatter) Format(m Model, req domain.FormatRequest) (*domain.FormatResult, error) {
	mg, err := mergeTags(m, req)
	if err != nil {
		return nil, err
	}

	rating, err := resolveRating(f.Rating, mg.rating, vocab.V2RatingMap)
	if err != nil {
		return nil, err
	}
	aspectRatio, err := vocab.V2AspectRatioMap.Token(f.AspectRatio)
	if err != nil {
		return nil, err
	}
	length, err := vocab.V2LengthMap.Token(f.Length)
	if err != nil {
		return nil, err
	}
	identity, err := vocab.V2IdentityMap.Token(f.Identity)
	if err != nil {
		return nil, err
	}

	fields := mg.baseFields(rating, length)
	fields[domain.FieldAspectRatio] = aspectRatio
	fields[domain.FieldIdentity] = identity

	return mg.finish(m, fields)
}
