package formatter

import (
	"errors"
	"fmt"
	"strings"
)

// ErrUnknownSchema は未対応のスキーマ名が指定された場合に返されます。
var ErrUnknownSchema = errors.New("unknown schema variant")

// Schema はモデルの入力フィールド集合のバージョンです。各バージョンに互換性はありません。
type Schema string

const (
	SchemaV1 Schema = "v1"
	SchemaV2 Schema = "v2"
	SchemaV3 Schema = "v3"
)

// Schemas は対応しているスキーマの一覧です。
var Schemas = []Schema{SchemaV1, SchemaV2, SchemaV3}

// ParseSchema は "v2" や "V2" のような文字列を Schema に変換します。
func ParseSchema(s string) (Schema, error) {
	switch Schema(strings.ToLower(strings.TrimSpace(s))) {
	case SchemaV1:
		return SchemaV1, nil
	case SchemaV2:
		return SchemaV2, nil
	case SchemaV3:
		return SchemaV3, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnknownSchema, s)
	}
}

// Experimental は後方互換性が保証されないスキーマかを返します。
func (s Schema) Experimental() bool {
	return s == SchemaV3
}
