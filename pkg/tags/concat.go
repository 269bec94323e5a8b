package tags

import "strings"

// Concat は空でないスロットだけを separator で結合します。
// nil や文字列以外の値は空として扱い、separator が空の場合は DefaultSeparator を使います。
func Concat(separator string, slots ...any) string {
	if separator == "" {
		separator = DefaultSeparator
	}

	parts := make([]string, 0, len(slots))
	for _, slot := range slots {
		if s := strings.TrimSpace(slotString(slot)); s != "" {
			parts = append(parts, s)
		}
	}
	return strings.Join(parts, separator)
}

// slotString はスロットの値を文字列に変換します。文字列として扱えない値は空文字になります。
func slotString(v any) string {
	switch s := v.(type) {
	case string:
		return s
	case *string:
		if s == nil {
			return ""
		}
		return *s
	default:
		return ""
	}
}
