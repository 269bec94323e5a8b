package workflow

import (
	"github.com/shouni/go-remote-io/pkg/remoteio"

	"github.com/shouni/go-dart-prompt-kit/pkg/config"
	"github.com/shouni/go-dart-prompt-kit/pkg/model"
	"github.com/shouni/go-dart-prompt-kit/pkg/prompts"
)

// ManagerArgs は Manager の初期化に必要な依存関係です。
type ManagerArgs struct {
	Config config.Config
	// Dictionary はタグ辞書です。必須です。
	Dictionary *model.Dictionary
	// PromptBuilder が nil の場合は埋め込みテンプレートを使います。
	PromptBuilder prompts.PromptBuilder
	// Writer はバッチ結果の保存先です。ローカルパスと GCS/S3 の URI を扱えます。
	Writer remoteio.OutputWriter
}
