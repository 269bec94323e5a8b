package formatter

import "github.com/shouni/go-dart-prompt-kit/pkg/vocab"

// AutoLabel はパーサーが検出したレーティングに委ねる選択肢のラベルです。
const AutoLabel = "auto"

// RatingChoice は Auto か明示的なラベルのどちらかを表します。
// ゼロ値は Auto です。
type RatingChoice struct {
	explicit bool
	label    vocab.Rating
}

// AutoRating はパーサーの検出結果を使う選択を返します。
func AutoRating() RatingChoice {
	return RatingChoice{}
}

// ExplicitRating は指定したラベルを使う選択を返します。
func ExplicitRating(r vocab.Rating) RatingChoice {
	return RatingChoice{explicit: true, label: r}
}

// ParseRatingChoice はホストから渡された文字列を RatingChoice に変換します。
// "auto" のみを Auto として扱います。語彙の検証は解決後のルックアップで行います。
func ParseRatingChoice(s string) RatingChoice {
	if s == AutoLabel {
		return AutoRating()
	}
	return ExplicitRating(vocab.Rating(s))
}

// IsAuto は Auto かどうかを返します。
func (c RatingChoice) IsAuto() bool {
	return !c.explicit
}

// Resolve は Auto ならパーサーの検出値を、そうでなければ明示ラベルを返します。
func (c RatingChoice) Resolve(parsed string) vocab.Rating {
	if c.IsAuto() {
		return vocab.Rating(parsed)
	}
	return c.label
}

// String はホストに表示するラベルを返します。
func (c RatingChoice) String() string {
	if c.IsAuto() {
		return AutoLabel
	}
	return string(c.label)
}
