package formatter

import (
	"fmt"

	"github.com/shouni/go-dart-prompt-kit/pkg/vocab"
)

// 各バージョンの既定値です。ノードのドロップダウンの初期値と一致させています。
const (
	DefaultRating      = vocab.RatingGeneral
	DefaultV1Length    = vocab.LengthLong
	DefaultLength      = vocab.LengthMedium
	DefaultAspectRatio = vocab.AspectRatioTall
	DefaultIdentity    = vocab.IdentityNone
)

// Options はラベル文字列のままの列挙選択です。空の項目は各バージョンの既定値になります。
type Options struct {
	Rating      string
	Length      string
	AspectRatio string
	Identity    string
}

// New は指定スキーマのフォーマッタをラベル文字列から組み立てます。
// 語彙に存在しないラベルは vocab.ErrUnknownLabel になります。
// そのバージョンに存在しない項目は無視されます。
func New(schema Schema, opts Options) (Formatter, error) {
	rating := ratingOrDefault(opts.Rating)

	switch schema {
	case SchemaV1:
		length, err := parseOr(vocab.V1LengthMap, opts.Length, DefaultV1Length)
		if err != nil {
			return nil, err
		}
		return V1Formatter{Rating: rating, Length: length}, nil

	case SchemaV2:
		aspectRatio, err := parseOr(vocab.V2AspectRatioMap, opts.AspectRatio, DefaultAspectRatio)
		if err != nil {
			return nil, err
		}
		length, err := parseOr(vocab.V2LengthMap, opts.Length, DefaultLength)
		if err != nil {
			return nil, err
		}
		identity, err := parseOr(vocab.V2IdentityMap, opts.Identity, DefaultIdentity)
		if err != nil {
			return nil, err
		}
		return V2Formatter{AspectRatio: aspectRatio, Rating: rating, Length: length, Identity: identity}, nil

	case SchemaV3:
		aspectRatio, err := parseOr(vocab.V3AspectRatioMap, opts.AspectRatio, DefaultAspectRatio)
		if err != nil {
			return nil, err
		}
		length, err := parseOr(vocab.V3LengthMap, opts.Length, DefaultLength)
		if err != nil {
			return nil, err
		}
		return V3Formatter{AspectRatio: aspectRatio, Rating: rating, Length: length}, nil

	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownSchema, string(schema))
	}
}

// ratingOrDefault は空のレーティング指定を既定値に置き換えます。
// "auto" は明示的な指定としてそのまま扱います。
func ratingOrDefault(s string) RatingChoice {
	if s == "" {
		return ExplicitRating(DefaultRating)
	}
	return ParseRatingChoice(s)
}

func parseOr[K ~string](v *vocab.Vocabulary[K], s string, def K) (K, error) {
	if s == "" {
		return def, nil
	}
	return v.Parse(s)
}
