package builder

import (
	"github.com/shouni/go-remote-io/pkg/remoteio"

	"github.com/shouni/go-dart-prompt-kit/internal/config"
	"github.com/shouni/go-dart-prompt-kit/pkg/workflow"
)

// AppContext は、アプリケーション実行に必要な共通コンテキストを保持します。
// これを各 Execute 関数に渡すことで、依存関係の注入を簡素化します。
type AppContext struct {
	Config   *config.Config        // 環境変数から読み込まれた設定です。
	Options  config.RunOptions     // コマンドラインから渡された実行時の設定です。
	Reader   remoteio.InputReader  // ジョブファイルやタグ辞書の読み込みに使用する入力元です。
	Writer   remoteio.OutputWriter // バッチ結果を保存するための出力先です。
	Workflow workflow.Workflow     // Runner 群を構築するワークフローです。
	Manager  *workflow.Manager     // モデルとノードレジストリを保持します。
}

// NewAppContext は AppContext の新しいインスタンスを生成します。
func NewAppContext(
	cfg *config.Config,
	reader remoteio.InputReader,
	writer remoteio.OutputWriter,
	manager *workflow.Manager,
) AppContext {
	return AppContext{
		Config:   cfg,
		Options:  cfg.Options,
		Reader:   reader,
		Writer:   writer,
		Workflow: manager,
		Manager:  manager,
	}
}
