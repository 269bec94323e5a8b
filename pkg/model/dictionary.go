package model

import (
	"fmt"
	"io"
	"strings"

	"gopkg.in/yaml.v3"
)

// Category はタグの分類です。
type Category int

const (
	CategoryUnknown Category = iota
	CategoryGeneral
	CategoryCopyright
	CategoryCharacter
	CategoryRating
)

// String は分類名を返します。
func (c Category) String() string {
	switch c {
	case CategoryGeneral:
		return "general"
	case CategoryCopyright:
		return "copyright"
	case CategoryCharacter:
		return "character"
	case CategoryRating:
		return "rating"
	default:
		return "unknown"
	}
}

// DictionarySource は YAML で記述されるタグ辞書の定義です。
type DictionarySource struct {
	Copyright []string `yaml:"copyright"`
	Character []string `yaml:"character"`
	// General が空の場合、版権・キャラクター・レーティング以外のタグはすべて一般タグとみなします。
	General []string `yaml:"general"`
	// Ratings はレーティングのラベルと、それを示すタグの別名の対応です。
	Ratings       map[string][]string `yaml:"ratings"`
	DefaultRating string              `yaml:"default_rating"`
}

// Dictionary は検索用に索引化したタグ辞書です。生成後は読み取り専用です。
type Dictionary struct {
	copyright     map[string]struct{}
	character     map[string]struct{}
	general       map[string]struct{}
	ratingAliases map[string]string
	defaultRating string
}

// NewDictionary は定義から索引を構築します。
func NewDictionary(src DictionarySource) *Dictionary {
	d := &Dictionary{
		copyright:     toSet(src.Copyright),
		character:     toSet(src.Character),
		general:       toSet(src.General),
		ratingAliases: make(map[string]string),
		defaultRating: strings.TrimSpace(src.DefaultRating),
	}
	for label, aliases := range src.Ratings {
		label = strings.TrimSpace(label)
		if label == "" {
			continue
		}
		d.ratingAliases[label] = label
		for _, a := range aliases {
			if a = strings.TrimSpace(a); a != "" {
				d.ratingAliases[a] = label
			}
		}
	}
	return d
}

// ParseDictionary は YAML バイト列からタグ辞書を構築します。
func ParseDictionary(data []byte) (*Dictionary, error) {
	var src DictionarySource
	if err := yaml.Unmarshal(data, &src); err != nil {
		return nil, fmt.Errorf("タグ辞書のデコードに失敗しました: %w", err)
	}
	return NewDictionary(src), nil
}

// LoadDictionary は Reader からタグ辞書を読み込みます。
func LoadDictionary(r io.Reader) (*Dictionary, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("タグ辞書の読み込みに失敗しました: %w", err)
	}
	return ParseDictionary(data)
}

// Classify はエスケープを外したタグの分類を返します。
// レーティングの別名は版権・キャラクターより優先されます。
func (d *Dictionary) Classify(tag string) Category {
	if _, ok := d.ratingAliases[tag]; ok {
		return CategoryRating
	}
	if _, ok := d.copyright[tag]; ok {
		return CategoryCopyright
	}
	if _, ok := d.character[tag]; ok {
		return CategoryCharacter
	}
	if len(d.general) == 0 {
		return CategoryGeneral
	}
	if _, ok := d.general[tag]; ok {
		return CategoryGeneral
	}
	return CategoryUnknown
}

// RatingOf はタグが示すレーティングのラベルを返します。
func (d *Dictionary) RatingOf(tag string) (string, bool) {
	label, ok := d.ratingAliases[tag]
	return label, ok
}

// DefaultRating はレーティングが検出されなかった場合に使うラベルです。空の場合もあります。
func (d *Dictionary) DefaultRating() string {
	return d.defaultRating
}

func toSet(items []string) map[string]struct{} {
	set := make(map[string]struct{}, len(items))
	for _, it := range items {
		if it = strings.TrimSpace(it); it != "" {
			set[it] = struct{}{}
		}
	}
	return set
}
