package node

import (
	"context"
	"fmt"

	"github.com/shouni/go-dart-prompt-kit/pkg/tags"
)

// ConcatSlots は結合ノードが受け付ける文字列入力の数です。
const ConcatSlots = 6

// InputSeparator は結合ノードの区切り文字の入力名です。
const InputSeparator = "separator"

// ConcatNode は最大6つの文字列を区切り文字で結合します。
type ConcatNode struct {
	info Info
}

// NewConcatNode は ConcatNode を返します。
func NewConcatNode() *ConcatNode {
	optional := make([]InputField, 0, ConcatSlots+1)
	for i := 1; i <= ConcatSlots; i++ {
		optional = append(optional, InputField{
			Name:       slotName(i),
			Type:       TypeString,
			ForceInput: true,
		})
	}
	optional = append(optional, InputField{
		Name:    InputSeparator,
		Type:    TypeString,
		Default: tags.DefaultSeparator,
	})

	return &ConcatNode{
		info: Info{
			Name:        "DartConcatString",
			DisplayName: "Concat String",
			Category:    UtilsCategory,
			Description: "Concats the input strings.",
			Input:       InputSpec{Optional: optional},
			ReturnTypes: []string{TypeString},
			Function:    "concat",
		},
	}
}

// Info はノードの宣言を返します。
func (n *ConcatNode) Info() Info {
	return n.info
}

// Execute は空でない入力を区切り文字で結合します。文字列以外の入力は空として扱います。
func (n *ConcatNode) Execute(_ context.Context, in Inputs) ([]any, error) {
	slots := make([]any, ConcatSlots)
	for i := range slots {
		slots[i] = in[slotName(i+1)]
	}
	return []any{tags.Concat(in.String(InputSeparator), slots...)}, nil
}

func slotName(i int) string {
	return fmt.Sprintf("string_%d", i)
}
