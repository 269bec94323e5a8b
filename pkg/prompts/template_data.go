package prompts

import (
	_ "embed"
)

// スキーマのバージョンを表すテンプレートのキーです。
const (
	SchemaV1 = "v1"
	SchemaV2 = "v2"
	SchemaV3 = "v3"
)

var (
	//go:embed v1.tmpl
	V1Template string
	//go:embed v2.tmpl
	V2Template string
	//go:embed v3.tmpl
	V3Template string
)

// allTemplates はスキーマとテンプレート文字列を紐づけるマップです。
var allTemplates = map[string]string{
	SchemaV1: V1Template,
	SchemaV2: V2Template,
	SchemaV3: V3Template,
}
