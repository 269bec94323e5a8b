package model

import (
	"testing"

	"github.com/shouni/go-dart-prompt-kit/pkg/domain"
	"github.com/shouni/go-dart-prompt-kit/pkg/formatter"
	"github.com/shouni/go-dart-prompt-kit/pkg/vocab"
)

func TestTagModel_ParsePrompt(t *testing.T) {
	m := newTestModel(t, "v2")

	t.Run("タグが分類されること", func(t *testing.T) {
		got, err := m.ParsePrompt("1girl, vocaloid, hatsune miku, sensitive, solo, safe, mystery", false)
		if err != nil {
			t.Fatalf("予期しないエラー: %v", err)
		}
		want := domain.ParsedPrompt{
			Copyright: "vocaloid",
			Character: "hatsune miku",
			Known:     "1girl, solo",
			Rating:    "sensitive",
		}
		if *got != want {
			t.Errorf("ParsePrompt() = %+v, want %+v", *got, want)
		}
	})

	t.Run("レーティングが無ければ既定値になること", func(t *testing.T) {
		got, _ := m.ParsePrompt("1girl", false)
		if got.Rating != "general" {
			t.Errorf("Rating = %q", got.Rating)
		}
	})

	t.Run("括弧のエスケープ", func(t *testing.T) {
		escaped, _ := m.ParsePrompt(`hat (object), smile`, true)
		if escaped.Known != `hat \(object\), smile` {
			t.Errorf("Known = %q", escaped.Known)
		}
		plain, _ := m.ParsePrompt(`hat \(object\), smile`, false)
		if plain.Known != "hat (object), smile" {
			t.Errorf("Known = %q", plain.Known)
		}
	})

	t.Run("空入力", func(t *testing.T) {
		got, err := m.ParsePrompt("", false)
		if err != nil {
			t.Fatalf("予期しないエラー: %v", err)
		}
		if got.Known != "" || got.Copyright != "" || got.Character != "" {
			t.Errorf("空入力で値が抽出されています: %+v", got)
		}
	})
}

func TestTagModel_WithFormatter(t *testing.T) {
	t.Run("v1 で auto を選ぶと検出したレーティングの語彙トークンが使われること", func(t *testing.T) {
		m := newTestModel(t, "v1")
		f := formatter.V1Formatter{Rating: formatter.AutoRating(), Length: vocab.LengthLong}

		res, err := f.Format(m, domain.FormatRequest{
			Copyright: "touhou",
			InputTags: "1girl, nsfw, vocaloid, hatsune miku",
		})
		if err != nil {
			t.Fatalf("予期しないエラー: %v", err)
		}
		want := "<|bos|><rating>rating:nsfw, rating:explicit</rating><copyright>touhou, vocaloid</copyright>" +
			"<character>hatsune miku</character><general><|long|>1girl<|input_end|>"
		if res.Prompt != want {
			t.Errorf("Prompt = %q, want %q", res.Prompt, want)
		}
		if res.Copyright != "touhou, vocaloid" {
			t.Errorf("Copyright = %q", res.Copyright)
		}
	})

	t.Run("v3 のプロンプトが組み立てられること", func(t *testing.T) {
		m := newTestModel(t, "v3")
		f := formatter.V3Formatter{
			AspectRatio: vocab.AspectRatioSquare,
			Rating:      formatter.ExplicitRating(vocab.RatingGeneral),
			Length:      vocab.LengthShort,
		}

		res, err := f.Format(m, domain.FormatRequest{Character: "kagamine rin", InputTags: "solo"})
		if err != nil {
			t.Fatalf("予期しないエラー: %v", err)
		}
		want := "<|bos|><|rating:general|><|aspect_ratio:square|><|length:short|>" +
			"<copyright></copyright><character>kagamine rin</character><general>solo<|input_end|>"
		if res.Prompt != want {
			t.Errorf("Prompt = %q, want %q", res.Prompt, want)
		}
	})
}

func TestNewTagModel_Validation(t *testing.T) {
	d := newTestDictionary(t)
	if _, err := NewTagModel("", d, nil); err == nil {
		t.Error("スキーマ未指定はエラーになるはずです")
	}
	if _, err := NewTagModel("v1", nil, nil); err == nil {
		t.Error("辞書未指定はエラーになるはずです")
	}
	if _, err := NewTagModel("v1", d, nil); err == nil {
		t.Error("PromptBuilder 未指定はエラーになるはずです")
	}
}
