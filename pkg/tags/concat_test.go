package tags

import "testing"

func TestConcat(t *testing.T) {
	b := " b "
	var nilPtr *string

	tests := []struct {
		name      string
		separator string
		slots     []any
		want      string
	}{
		{"空スロットを飛ばす", ", ", []any{"a", nil, " b ", "", "c", nil}, "a, b, c"},
		{"全て空なら空文字", "", []any{nil, nil, nil, nil, nil, nil}, ""},
		{"区切り文字が空ならデフォルト", "", []any{"a", "b"}, "a, b"},
		{"任意の区切り文字", " | ", []any{"a", "b"}, "a | b"},
		{"文字列以外は空扱い", ", ", []any{"a", 42, true, "b"}, "a, b"},
		{"ポインタは参照先を使う", ", ", []any{&b, nilPtr, "c"}, "b, c"},
		{"空白のみは除去", ", ", []any{"  ", "\n", "x"}, "x"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Concat(tt.separator, tt.slots...); got != tt.want {
				t.Errorf("Concat(%q, %v) = %q, want %q", tt.separator, tt.slots, got, tt.want)
			}
		})
	}
}
