package domain

// フォーマッタがモデルに渡すフィールドのキーです。
const (
	FieldCopyright   = "copyright"
	FieldCharacter   = "character"
	FieldCondition   = "condition"
	FieldRating      = "rating"
	FieldLength      = "length"
	FieldAspectRatio = "aspect_ratio"
	FieldIdentity    = "identity"
)

// ParsedPrompt はモデルのパーサーが自由記述のタグから抽出した結果です。
// 1回のフォーマット呼び出しでのみ使われます。
type ParsedPrompt struct {
	Copyright string `json:"copyright" yaml:"copyright"` // カンマ区切りの版権タグ
	Character string `json:"character" yaml:"character"` // カンマ区切りのキャラクタータグ
	Known     string `json:"known" yaml:"known"`         // 再分類されなかった一般タグ（条件タグ）
	Rating    string `json:"rating" yaml:"rating"`       // 検出されたレーティング。未検出なら空
}

// PromptFields はモデルのフォーマッタに渡すフィールド集合です。
// 有効なキーはスキーマのバージョンによって異なります。
type PromptFields map[string]string

// FormatRequest はユーザーが入力したタグ文字列です。
type FormatRequest struct {
	Copyright string `json:"copyright" yaml:"copyright"`
	Character string `json:"character" yaml:"character"`
	InputTags string `json:"input_tags" yaml:"input_tags"`
}

// FormatResult はフォーマット結果で、ノードの4つの出力に対応します。
type FormatResult struct {
	Prompt    string `json:"formatted_prompt" yaml:"formatted_prompt"`
	Copyright string `json:"copyright" yaml:"copyright"`
	Character string `json:"character" yaml:"character"`
	InputTags string `json:"input_tags" yaml:"input_tags"`
}

// Outputs はノードの戻り値の順序で結果を返します。
func (r FormatResult) Outputs() []any {
	return []any{r.Prompt, r.Copyright, r.Character, r.InputTags}
}
