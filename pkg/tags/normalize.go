package tags

import "strings"

const (
	// Delimiter はタグ文字列を分割する区切り文字です。
	Delimiter = ","
	// DefaultSeparator は正規化後のタグを結合する区切り文字です。
	DefaultSeparator = ", "
)

// Split はカンマ区切りの文字列を分割し、前後の空白を除去した空でないタグを返します。
// 重複の除去は行いません。
func Split(text string) []string {
	if strings.TrimSpace(text) == "" {
		return nil
	}

	parts := strings.Split(text, Delimiter)
	result := make([]string, 0, len(parts))
	for _, p := range parts {
		if s := strings.TrimSpace(p); s != "" {
			result = append(result, s)
		}
	}
	return result
}

// Unique は最初に出現した位置を保ったまま重複したタグを取り除きます。
// 比較は大文字小文字を区別する完全一致です。
func Unique(tags []string) []string {
	if len(tags) == 0 {
		return nil
	}

	seen := make(map[string]struct{}, len(tags))
	result := make([]string, 0, len(tags))
	for _, t := range tags {
		if _, ok := seen[t]; ok {
			continue
		}
		seen[t] = struct{}{}
		result = append(result, t)
	}
	return result
}

// Normalize はカンマ区切りのタグ文字列を正規化します。
// 空のタグを除去し、重複を取り除いたうえで ", " で結合し直します。
func Normalize(text string) string {
	return strings.Join(Unique(Split(text)), DefaultSeparator)
}

// Merge は複数のタグ文字列を連結してから正規化します。
// 明示的に入力されたタグと、自由記述から検出されたタグの統合に使います。
func Merge(parts ...string) string {
	return Normalize(strings.Join(parts, Delimiter))
}
