package publisher

import (
	"fmt"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/shouni/go-dart-prompt-kit/pkg/domain"
)

// mergedOutputs は統合後のタグです。フィールド行とは別のコードブロックに出力します。
type mergedOutputs struct {
	Copyright string `yaml:"copyright,omitempty"`
	Character string `yaml:"character,omitempty"`
	InputTags string `yaml:"input_tags,omitempty"`
}

// BuildMarkdown はバッチ結果を Markdown に変換します。
// "- key: value" のフィールド行にはエントリの入力をそのまま出力するため、再度ジョブとして読み込むと同じプロンプトになります。
// 生成したプロンプトと統合後のタグはコードブロックに出力します。
func BuildMarkdown(title string, results []domain.BatchResult) string {
	var sb strings.Builder
	if title != "" {
		sb.WriteString(fmt.Sprintf("# %s\n\n", title))
	}

	for _, r := range results {
		e := r.Entry
		sb.WriteString(fmt.Sprintf("## Prompt %s\n", e.ID))
		writeField(&sb, "schema", e.Schema)
		writeField(&sb, domain.FieldRating, e.Rating)
		writeField(&sb, domain.FieldAspectRatio, e.AspectRatio)
		writeField(&sb, domain.FieldLength, e.Length)
		writeField(&sb, domain.FieldIdentity, e.Identity)
		writeField(&sb, domain.FieldCopyright, e.Copyright)
		writeField(&sb, domain.FieldCharacter, e.Character)
		writeField(&sb, "tags", e.Tags)

		if r.Failed() {
			writeField(&sb, "error", r.Err.Error())
			sb.WriteString("\n")
			continue
		}

		res := r.Result
		sb.WriteString("\n```text\n")
		sb.WriteString(res.Prompt)
		sb.WriteString("\n```\n")

		merged, err := yaml.Marshal(mergedOutputs{
			Copyright: res.Copyright,
			Character: res.Character,
			InputTags: res.InputTags,
		})
		if err == nil && len(merged) > 0 && string(merged) != "{}\n" {
			sb.WriteString("\n```yaml\n")
			sb.Write(merged)
			sb.WriteString("```\n")
		}
		sb.WriteString("\n")
	}
	return sb.String()
}

func writeField(sb *strings.Builder, key, val string) {
	if val == "" {
		return
	}
	sb.WriteString(fmt.Sprintf("- %s: %s\n", key, strings.ReplaceAll(val, "\n", " ")))
}
