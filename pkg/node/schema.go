package node

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/santhosh-tekuri/jsonschema/v5"
)

// ErrInvalidInputs は入力が宣言に一致しない場合に返されます。
var ErrInvalidInputs = errors.New("invalid node inputs")

// InputSchema はノードの入力宣言から JSON Schema を生成します。
// モデル入力はモデル名の文字列として表現します。
func InputSchema(info Info) map[string]any {
	properties := make(map[string]any)
	for _, f := range info.Input.Required {
		properties[f.Name] = fieldSchema(f, false)
	}
	for _, f := range info.Input.Optional {
		properties[f.Name] = fieldSchema(f, true)
	}

	return map[string]any{
		"$schema":              "https://json-schema.org/draft/2020-12/schema",
		"title":                info.Name,
		"type":                 "object",
		"properties":           properties,
		"additionalProperties": false,
	}
}

func fieldSchema(f InputField, optional bool) map[string]any {
	s := map[string]any{}
	if f.Tooltip != "" {
		s["description"] = f.Tooltip
	}

	switch {
	case f.Type == TypeCombo:
		s["type"] = "string"
		s["enum"] = f.Options
	case optional:
		// 任意入力は未接続を null で表せます。
		s["type"] = []string{"string", "null"}
	default:
		s["type"] = "string"
	}
	return s
}

// CompileSchema は入力スキーマをコンパイルします。
func CompileSchema(info Info) (*jsonschema.Schema, error) {
	raw, err := json.Marshal(InputSchema(info))
	if err != nil {
		return nil, fmt.Errorf("入力スキーマのエンコードに失敗しました (%s): %w", info.Name, err)
	}

	url := info.Name + ".json"
	compiler := jsonschema.NewCompiler()
	if err := compiler.AddResource(url, bytes.NewReader(raw)); err != nil {
		return nil, fmt.Errorf("入力スキーマの読み込みに失敗しました (%s): %w", info.Name, err)
	}
	schema, err := compiler.Compile(url)
	if err != nil {
		return nil, fmt.Errorf("入力スキーマのコンパイルに失敗しました (%s): %w", info.Name, err)
	}
	return schema, nil
}

// validateDocument は JSON としてデコード済みの入力を検証します。
func validateDocument(name string, schema *jsonschema.Schema, doc map[string]any) error {
	if doc == nil {
		doc = map[string]any{}
	}
	if err := schema.Validate(doc); err != nil {
		return fmt.Errorf("%w: %s: %v", ErrInvalidInputs, name, err)
	}
	return nil
}
