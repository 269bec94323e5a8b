package node

import (
	"errors"
	"fmt"

	"github.com/shouni/go-dart-prompt-kit/pkg/formatter"
)

// ホストに公開する入出力の型名です。
const (
	TypeString = "STRING"
	TypeCombo  = "COMBO"
	TypeModel  = "DART_MODEL"
)

// Category はノードの分類です。
const (
	Category      = "prompt/Danbooru Tags Transformer"
	UtilsCategory = Category + "/utils"
)

// ErrMissingModel は model 入力にモデルが渡されていない場合に返されます。
var ErrMissingModel = errors.New("model input is missing")

// InputField はノードの入力1件の宣言です。
type InputField struct {
	Name        string   `json:"name" yaml:"name"`
	Type        string   `json:"type" yaml:"type"`
	Options     []string `json:"options,omitempty" yaml:"options,omitempty"` // TypeCombo の選択肢
	Default     string   `json:"default,omitempty" yaml:"default,omitempty"`
	Multiline   bool     `json:"multiline,omitempty" yaml:"multiline,omitempty"`
	Placeholder string   `json:"placeholder,omitempty" yaml:"placeholder,omitempty"`
	Tooltip     string   `json:"tooltip,omitempty" yaml:"tooltip,omitempty"`
	ForceInput  bool     `json:"force_input,omitempty" yaml:"force_input,omitempty"`
}

// InputSpec は必須入力と任意入力の宣言です。どちらも宣言順を保持します。
type InputSpec struct {
	Required []InputField `json:"required,omitempty" yaml:"required,omitempty"`
	Optional []InputField `json:"optional,omitempty" yaml:"optional,omitempty"`
}

// Fields は必須、任意の順で全フィールドを返します。
func (s InputSpec) Fields() []InputField {
	out := make([]InputField, 0, len(s.Required)+len(s.Optional))
	out = append(out, s.Required...)
	return append(out, s.Optional...)
}

// Info はホストに公開するノードの宣言です。
type Info struct {
	Name         string    `json:"name" yaml:"name"`
	DisplayName  string    `json:"display_name" yaml:"display_name"`
	Category     string    `json:"category" yaml:"category"`
	Description  string    `json:"description" yaml:"description"`
	Experimental bool      `json:"experimental,omitempty" yaml:"experimental,omitempty"`
	OutputNode   bool      `json:"output_node" yaml:"output_node"`
	Input        InputSpec `json:"input" yaml:"input"`
	ReturnTypes  []string  `json:"return_types" yaml:"return_types"`
	ReturnNames  []string  `json:"return_names,omitempty" yaml:"return_names,omitempty"`
	Function     string    `json:"function" yaml:"function"`
}

// Inputs はホストから渡された入力値です。
type Inputs map[string]any

// String は文字列入力を取り出します。存在しない値や文字列以外の値は空文字列として扱います。
func (in Inputs) String(key string) string {
	switch v := in[key].(type) {
	case string:
		return v
	case *string:
		if v != nil {
			return *v
		}
	}
	return ""
}

// Model はモデル入力を取り出します。
func (in Inputs) Model(key string) (formatter.Model, error) {
	m, ok := in[key].(formatter.Model)
	if !ok || m == nil {
		return nil, fmt.Errorf("%w: %s", ErrMissingModel, key)
	}
	return m, nil
}
