package vocab

import (
	"errors"
	"fmt"
)

// ErrUnknownLabel は閉じた語彙に存在しないラベルを引いた場合に返されます。
// ホスト側で選択肢が検証されている前提のため、発生した場合は呼び出し側の契約違反です。
var ErrUnknownLabel = errors.New("unknown vocabulary label")

// Entry はラベルとモデル内部トークンの対応です。
type Entry[K ~string] struct {
	Label K
	Token string
}

// Vocabulary は順序付きの閉じた語彙表です。
// 並び順はそのままホストに公開するドロップダウンの順序になります。
type Vocabulary[K ~string] struct {
	name   string
	labels []K
	tokens map[K]string
}

// New は語彙表を生成します。同じラベルが重複した場合は最初のものが有効です。
func New[K ~string](name string, entries ...Entry[K]) *Vocabulary[K] {
	v := &Vocabulary[K]{
		name:   name,
		labels: make([]K, 0, len(entries)),
		tokens: make(map[K]string, len(entries)),
	}
	for _, e := range entries {
		if _, ok := v.tokens[e.Label]; ok {
			continue
		}
		v.labels = append(v.labels, e.Label)
		v.tokens[e.Label] = e.Token
	}
	return v
}

// Name は語彙表の名前（例: "v2.rating"）を返します。
func (v *Vocabulary[K]) Name() string {
	return v.name
}

// Token はラベルに対応するモデル内部トークンを返します。
func (v *Vocabulary[K]) Token(label K) (string, error) {
	token, ok := v.tokens[label]
	if !ok {
		return "", fmt.Errorf("%w: %s に %q は存在しません", ErrUnknownLabel, v.name, string(label))
	}
	return token, nil
}

// Parse はホストから渡された文字列を型付きラベルに変換します。
func (v *Vocabulary[K]) Parse(s string) (K, error) {
	label := K(s)
	if _, ok := v.tokens[label]; !ok {
		var zero K
		return zero, fmt.Errorf("%w: %s に %q は存在しません", ErrUnknownLabel, v.name, s)
	}
	return label, nil
}

// Contains はラベルが語彙に含まれるかを返します。
func (v *Vocabulary[K]) Contains(label K) bool {
	_, ok := v.tokens[label]
	return ok
}

// Labels は定義順のラベル一覧を返します。
func (v *Vocabulary[K]) Labels() []string {
	out := make([]string, len(v.labels))
	for i, l := range v.labels {
		out[i] = string(l)
	}
	return out
}

// Len は語彙数を返します。
func (v *Vocabulary[K]) Len() int {
	return len(v.labels)
}
