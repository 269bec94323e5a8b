package publisher

import (
	"fmt"
	"path"
	"strings"

	"github.com/shouni/go-utils/urlpath"
)

// ResolveOutputPath は、ベースとなるディレクトリパスとファイル名から、
// GCS/ローカルを考慮した最終的な出力パスを生成します。
// ファイル名に親ディレクトリへの参照を含む場合はエラーになります。
func ResolveOutputPath(baseDir, fileName string) (string, error) {
	if fileName == "" {
		return "", fmt.Errorf("ファイル名が空です")
	}
	clean := path.Clean(strings.ReplaceAll(fileName, `\`, "/"))
	if path.IsAbs(clean) || clean == ".." || strings.HasPrefix(clean, "../") {
		return "", fmt.Errorf("出力先のファイル名が不正です: %s", fileName)
	}
	return urlpath.ResolvePath(baseDir, clean)
}

// DefaultFileName は出力形式に応じた既定のファイル名を返します。
func DefaultFileName(format Format) string {
	switch format {
	case FormatYAML:
		return defaultYAMLName
	default:
		return defaultMarkdownName
	}
}
