package model

import (
	"testing"

	"github.com/shouni/go-dart-prompt-kit/pkg/prompts"
)

const testDictionaryYAML = `
copyright:
  - vocaloid
  - touhou
character:
  - hatsune miku
  - hakurei reimu
  - kagamine rin
general:
  - 1girl
  - solo
  - smile
  - hat (object)
ratings:
  general: [safe, "rating:general"]
  sensitive: ["rating:sensitive"]
  explicit: [nsfw]
default_rating: general
`

func newTestDictionary(t *testing.T) *Dictionary {
	t.Helper()
	d, err := ParseDictionary([]byte(testDictionaryYAML))
	if err != nil {
		t.Fatalf("辞書の読み込みに失敗しました: %v", err)
	}
	return d
}

func newTestModel(t *testing.T, schema string) *TagModel {
	t.Helper()
	b, err := prompts.NewTemplateBuilder()
	if err != nil {
		t.Fatalf("TemplateBuilder の初期化に失敗しました: %v", err)
	}
	m, err := NewTagModel(schema, newTestDictionary(t), b)
	if err != nil {
		t.Fatalf("TagModel の初期化に失敗しました: %v", err)
	}
	return m
}
