package formatter

import (
	"errors"
	"strings"
	"testing"

	"github.com/shouni/go-dart-prompt-kit/pkg/domain"
	"github.com/shouni/go-dart-prompt-kit/pkg/vocab"
)

// fakeModel は固定のパース結果を返し、受け取ったフィールドを記録します。
type fakeModel struct {
	parsed    domain.ParsedPrompt
	parseErr  error
	formatErr error

	gotText   string
	gotEscape bool
	gotFields domain.PromptFields
}

func (m *fakeModel) ParsePrompt(text string, escapeBrackets bool) (*domain.ParsedPrompt, error) {
	m.gotText = text
	m.gotEscape = escapeBrackets
	if m.parseErr != nil {
		return nil, m.parseErr
	}
	p := m.parsed
	return &p, nil
}

func (m *fakeModel) FormatPrompt(fields domain.PromptFields) (string, error) {
	m.gotFields = fields
	if m.formatErr != nil {
		return "", m.formatErr
	}
	keys := []string{
		domain.FieldRating, domain.FieldAspectRatio, domain.FieldLength, domain.FieldIdentity,
		domain.FieldCopyright, domain.FieldCharacter, domain.FieldCondition,
	}
	var sb strings.Builder
	for _, k := range keys {
		if v, ok := fields[k]; ok {
			sb.WriteString(k + "=" + v + ";")
		}
	}
	return sb.String(), nil
}

func TestV1Formatter_Format(t *testing.T) {
	t.Run("auto は検出されたレーティングの語彙トークンに解決されること", func(t *testing.T) {
		m := &fakeModel{parsed: domain.ParsedPrompt{Known: "1girl, solo", Rating: "sensitive"}}
		f := V1Formatter{Rating: AutoRating(), Length: vocab.LengthLong}

		res, err := f.Format(m, domain.FormatRequest{InputTags: "1girl, solo, sensitive"})
		if err != nil {
			t.Fatalf("予期しないエラー: %v", err)
		}
		if got := m.gotFields[domain.FieldRating]; got != "rating:sfw, rating:sensitive" {
			t.Errorf("rating = %q", got)
		}
		if got := m.gotFields[domain.FieldLength]; got != "<|long|>" {
			t.Errorf("length = %q", got)
		}
		if _, ok := m.gotFields[domain.FieldAspectRatio]; ok {
			t.Error("v1 に aspect_ratio は含まれないはずです")
		}
		if _, ok := m.gotFields[domain.FieldIdentity]; ok {
			t.Error("v1 に identity は含まれないはずです")
		}
		if res.InputTags != "1girl, solo" {
			t.Errorf("InputTags = %q", res.InputTags)
		}
	})

	t.Run("明示指定は検出値より優先されること", func(t *testing.T) {
		m := &fakeModel{parsed: domain.ParsedPrompt{Rating: "explicit"}}
		f := V1Formatter{Rating: ExplicitRating(vocab.RatingGeneral), Length: vocab.LengthShort}

		if _, err := f.Format(m, domain.FormatRequest{}); err != nil {
			t.Fatalf("予期しないエラー: %v", err)
		}
		if got := m.gotFields[domain.FieldRating]; got != "rating:sfw, rating:general" {
			t.Errorf("rating = %q", got)
		}
	})

	t.Run("auto で検出値が無い場合は ErrUnknownLabel になること", func(t *testing.T) {
		m := &fakeModel{}
		f := V1Formatter{Rating: AutoRating(), Length: vocab.LengthLong}

		_, err := f.Format(m, domain.FormatRequest{})
		if !errors.Is(err, vocab.ErrUnknownLabel) {
			t.Errorf("ErrUnknownLabel を期待しましたが %v でした", err)
		}
		if m.gotFields != nil {
			t.Error("ルックアップ失敗時にフォーマッタが呼ばれています")
		}
	})
}

func TestFormat_MergesTags(t *testing.T) {
	m := &fakeModel{parsed: domain.ParsedPrompt{
		Copyright: "vocaloid, project sekai",
		Character: "hatsune miku",
		Known:     "1girl,  solo , solo",
		Rating:    "general",
	}}
	f := V2Formatter{
		AspectRatio: vocab.AspectRatioTall,
		Rating:      AutoRating(),
		Length:      vocab.LengthMedium,
		Identity:    vocab.IdentityNone,
	}

	res, err := f.Format(m, domain.FormatRequest{
		Copyright: "vocaloid, , touhou",
		Character: "kagamine rin, hatsune miku",
		InputTags: "vocaloid, hatsune miku, 1girl, solo",
	})
	if err != nil {
		t.Fatalf("予期しないエラー: %v", err)
	}

	t.Run("明示タグと検出タグが重複なく統合されること", func(t *testing.T) {
		if res.Copyright != "vocaloid, touhou, project sekai" {
			t.Errorf("Copyright = %q", res.Copyright)
		}
		if res.Character != "kagamine rin, hatsune miku" {
			t.Errorf("Character = %q", res.Character)
		}
	})

	t.Run("条件タグは正規化されずそのまま渡されること", func(t *testing.T) {
		if res.InputTags != "1girl,  solo , solo" {
			t.Errorf("InputTags = %q", res.InputTags)
		}
		if m.gotFields[domain.FieldCondition] != "1girl,  solo , solo" {
			t.Errorf("condition = %q", m.gotFields[domain.FieldCondition])
		}
	})

	t.Run("パーサーには括弧エスケープ無しで general タグが渡されること", func(t *testing.T) {
		if m.gotText != "vocaloid, hatsune miku, 1girl, solo" || m.gotEscape {
			t.Errorf("ParsePrompt(%q, %v)", m.gotText, m.gotEscape)
		}
	})

	t.Run("モデルの出力がそのまま返されること", func(t *testing.T) {
		want := "rating=<|rating:general|>;aspect_ratio=<|aspect_ratio:tall|>;length=<|length:medium|>;identity=<|identity:none|>;" +
			"copyright=vocaloid, touhou, project sekai;character=kagamine rin, hatsune miku;condition=1girl,  solo , solo;"
		if res.Prompt != want {
			t.Errorf("Prompt = %q, want %q", res.Prompt, want)
		}
	})
}

func TestV3Formatter_Format(t *testing.T) {
	m := &fakeModel{parsed: domain.ParsedPrompt{Rating: "questionable"}}
	f := V3Formatter{AspectRatio: vocab.AspectRatioWideWallpaper, Rating: AutoRating(), Length: vocab.LengthVeryLong}

	if _, err := f.Format(m, domain.FormatRequest{}); err != nil {
		t.Fatalf("予期しないエラー: %v", err)
	}
	if got := m.gotFields[domain.FieldAspectRatio]; got != "<|aspect_ratio:wide_wallpaper|>" {
		t.Errorf("aspect_ratio = %q", got)
	}
	if got := m.gotFields[domain.FieldRating]; got != "<|rating:questionable|>" {
		t.Errorf("rating = %q", got)
	}
	if _, ok := m.gotFields[domain.FieldIdentity]; ok {
		t.Error("v3 に identity は含まれないはずです")
	}
}

func TestFormat_PropagatesModelErrors(t *testing.T) {
	parseErr := errors.New("parse failed")
	formatErr := errors.New("format failed")

	t.Run("パースエラー", func(t *testing.T) {
		m := &fakeModel{parseErr: parseErr}
		_, err := V1Formatter{Rating: AutoRating(), Length: vocab.LengthLong}.Format(m, domain.FormatRequest{})
		if !errors.Is(err, parseErr) {
			t.Errorf("パースエラーが伝播していません: %v", err)
		}
	})

	t.Run("フォーマットエラー", func(t *testing.T) {
		m := &fakeModel{parsed: domain.ParsedPrompt{Rating: "general"}, formatErr: formatErr}
		_, err := V1Formatter{Rating: AutoRating(), Length: vocab.LengthLong}.Format(m, domain.FormatRequest{})
		if !errors.Is(err, formatErr) {
			t.Errorf("フォーマットエラーが伝播していません: %v", err)
		}
	})

	t.Run("モデル未指定", func(t *testing.T) {
		if _, err := (V2Formatter{}).Format(nil, domain.FormatRequest{}); err == nil {
			t.Error("モデルが nil の場合はエラーになるはずです")
		}
	})
}

func TestRatingChoice(t *testing.T) {
	if !ParseRatingChoice("auto").IsAuto() {
		t.Error("auto は Auto になるはずです")
	}
	c := ParseRatingChoice("explicit")
	if c.IsAuto() || c.Resolve("general") != vocab.RatingExplicit {
		t.Errorf("明示指定が解決されていません: %v", c)
	}
	if AutoRating().Resolve("sensitive") != vocab.RatingSensitive {
		t.Error("Auto は検出値に解決されるはずです")
	}
	if AutoRating().String() != "auto" || c.String() != "explicit" {
		t.Error("String() の表示が正しくありません")
	}
	var zero RatingChoice
	if !zero.IsAuto() {
		t.Error("ゼロ値は Auto のはずです")
	}
}

func TestNew(t *testing.T) {
	t.Run("空の項目は既定値になること", func(t *testing.T) {
		f, err := New(SchemaV2, Options{})
		if err != nil {
			t.Fatalf("予期しないエラー: %v", err)
		}
		v2, ok := f.(V2Formatter)
		if !ok {
			t.Fatalf("V2Formatter を期待しましたが %T でした", f)
		}
		want := V2Formatter{
			AspectRatio: vocab.AspectRatioTall,
			Rating:      ExplicitRating(vocab.RatingGeneral),
			Length:      vocab.LengthMedium,
			Identity:    vocab.IdentityNone,
		}
		if v2 != want {
			t.Errorf("New() = %+v, want %+v", v2, want)
		}
	})

	t.Run("v1 の長さの既定値は long であること", func(t *testing.T) {
		f, err := New(SchemaV1, Options{Rating: "auto"})
		if err != nil {
			t.Fatalf("予期しないエラー: %v", err)
		}
		v1 := f.(V1Formatter)
		if v1.Length != vocab.LengthLong || !v1.Rating.IsAuto() {
			t.Errorf("New() = %+v", v1)
		}
	})

	t.Run("語彙に無いラベルはエラーになること", func(t *testing.T) {
		_, err := New(SchemaV1, Options{Length: "medium"})
		if !errors.Is(err, vocab.ErrUnknownLabel) {
			t.Errorf("ErrUnknownLabel を期待しましたが %v でした", err)
		}
	})

	t.Run("未対応のスキーマ", func(t *testing.T) {
		_, err := New("v9", Options{})
		if !errors.Is(err, ErrUnknownSchema) {
			t.Errorf("ErrUnknownSchema を期待しましたが %v でした", err)
		}
	})
}

func TestParseSchema(t *testing.T) {
	for _, s := range []string{"v1", "V2", " v3 "} {
		if _, err := ParseSchema(s); err != nil {
			t.Errorf("ParseSchema(%q): %v", s, err)
		}
	}
	if _, err := ParseSchema("v4"); !errors.Is(err, ErrUnknownSchema) {
		t.Errorf("ErrUnknownSchema を期待しましたが %v でした", err)
	}
	if !SchemaV3.Experimental() || SchemaV2.Experimental() {
		t.Error("v3 のみが実験的のはずです")
	}
}
