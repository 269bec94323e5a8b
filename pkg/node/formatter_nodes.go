package node

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/shouni/go-dart-prompt-kit/pkg/domain"
	"github.com/shouni/go-dart-prompt-kit/pkg/formatter"
	"github.com/shouni/go-dart-prompt-kit/pkg/vocab"
)

// フォーマッタノードの入力名です。
const (
	InputModel       = "model"
	InputRating      = domain.FieldRating
	InputLength      = domain.FieldLength
	InputAspectRatio = domain.FieldAspectRatio
	InputIdentity    = domain.FieldIdentity
	InputCopyright   = domain.FieldCopyright
	InputCharacter   = domain.FieldCharacter
	InputTags        = "input_tags"
)

var (
	copyrightField = InputField{
		Name:        InputCopyright,
		Type:        TypeString,
		Multiline:   true,
		Placeholder: "copyright tags (e.g. vocaloid, ...)",
		Tooltip:     "Comma separated tags that are categorized as copyright in danbooru",
	}
	characterField = InputField{
		Name:        InputCharacter,
		Type:        TypeString,
		Multiline:   true,
		Placeholder: "character tags (e.g. hatsune miku, ...)",
		Tooltip:     "Comma separated tags that are categorized as character in danbooru",
	}
	inputTagsField = InputField{
		Name:        InputTags,
		Type:        TypeString,
		Multiline:   true,
		Placeholder: "general tags (e.g. 1girl, solo, ...)",
		Tooltip: "Comma separated tags. This will be the condition for upsampling tags. " +
			"copyright/character tags in this field will be automatically detected and merged",
	}
)

// FormatterNode は指定スキーマのフォーマッタをノードとして公開します。
type FormatterNode struct {
	schema formatter.Schema
	info   Info
}

// NewV1FormatterNode は Dart v1 用のフォーマッタノードを返します。
func NewV1FormatterNode() *FormatterNode {
	return newFormatterNode(formatter.SchemaV1, []InputField{
		ratingField(vocab.V1RatingMap),
		comboField(InputLength, vocab.V1LengthMap, formatter.DefaultV1Length),
	})
}

// NewV2FormatterNode は Dart v2 用のフォーマッタノードを返します。
func NewV2FormatterNode() *FormatterNode {
	return newFormatterNode(formatter.SchemaV2, []InputField{
		comboField(InputAspectRatio, vocab.V2AspectRatioMap, formatter.DefaultAspectRatio),
		ratingField(vocab.V2RatingMap),
		comboField(InputLength, vocab.V2LengthMap, formatter.DefaultLength),
		comboField(InputIdentity, vocab.V2IdentityMap, formatter.DefaultIdentity),
	})
}

// NewV3FormatterNode は Dart v3 用のフォーマッタノードを返します（実験的）。
func NewV3FormatterNode() *FormatterNode {
	return newFormatterNode(formatter.SchemaV3, []InputField{
		comboField(InputAspectRatio, vocab.V3AspectRatioMap, formatter.DefaultAspectRatio),
		ratingField(vocab.V3RatingMap),
		comboField(InputLength, vocab.V3LengthMap, formatter.DefaultLength),
	})
}

func newFormatterNode(schema formatter.Schema, combos []InputField) *FormatterNode {
	tagsField := inputTagsField
	if schema.Experimental() {
		tagsField.Placeholder = "general and meta tags (e.g. 1girl, solo, ...)"
	}

	required := []InputField{{Name: InputModel, Type: TypeModel}}
	required = append(required, combos...)
	required = append(required, copyrightField, characterField, tagsField)

	others := map[formatter.Schema]string{
		formatter.SchemaV1: "v2 and v3",
		formatter.SchemaV2: "v1 and v3",
		formatter.SchemaV3: "v1 and v2",
	}

	return &FormatterNode{
		schema: schema,
		info: Info{
			Name:        "Dart" + strings.ToUpper(string(schema)) + "Formatter",
			DisplayName: fmt.Sprintf("Dart %s Formatter", schema),
			Category:    Category,
			Description: fmt.Sprintf(
				"Formats a prompt for a Dart %s model. This node is not compatible with the %s models.",
				schema, others[schema]),
			Experimental: schema.Experimental(),
			Input:        InputSpec{Required: required},
			ReturnTypes:  []string{TypeString, TypeString, TypeString, TypeString},
			ReturnNames:  []string{"formatted_prompt", "copyright", "character", "input_tags"},
			Function:     "format",
		},
	}
}

// Schema はノードが対象とするスキーマを返します。
func (n *FormatterNode) Schema() formatter.Schema {
	return n.schema
}

// Info はノードの宣言を返します。
func (n *FormatterNode) Info() Info {
	return n.info
}

// Execute は入力をフォーマッタに渡し、4つの出力を返します。
func (n *FormatterNode) Execute(ctx context.Context, in Inputs) ([]any, error) {
	m, err := in.Model(InputModel)
	if err != nil {
		return nil, err
	}

	f, err := formatter.New(n.schema, formatter.Options{
		Rating:      in.String(InputRating),
		Length:      in.String(InputLength),
		AspectRatio: in.String(InputAspectRatio),
		Identity:    in.String(InputIdentity),
	})
	if err != nil {
		return nil, fmt.Errorf("%s の入力が不正です: %w", n.info.Name, err)
	}

	res, err := f.Format(m, domain.FormatRequest{
		Copyright: in.String(InputCopyright),
		Character: in.String(InputCharacter),
		InputTags: in.String(InputTags),
	})
	if err != nil {
		return nil, err
	}

	slog.DebugContext(ctx, "プロンプトをフォーマットしました", "node", n.info.Name, "prompt", res.Prompt)
	return res.Outputs(), nil
}

func ratingField(v *vocab.Vocabulary[vocab.Rating]) InputField {
	return InputField{
		Name:    InputRating,
		Type:    TypeCombo,
		Options: append([]string{formatter.AutoLabel}, v.Labels()...),
		Default: string(formatter.DefaultRating),
	}
}

func comboField[K ~string](name string, v *vocab.Vocabulary[K], def K) InputField {
	return InputField{
		Name:    name,
		Type:    TypeCombo,
		Options: v.Labels(),
		Default: string(def),
	}
}
