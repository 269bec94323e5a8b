package workflow

import (
	"context"

	"github.com/shouni/go-dart-prompt-kit/pkg/domain"
	"github.com/shouni/go-dart-prompt-kit/pkg/publisher"
)

// Workflow は、プロンプト生成ワークフローの各工程を担当する Runner を構築するためのインターフェースを定義します。
type Workflow interface {
	BuildFormatRunner() (FormatRunner, error)
	BuildBatchRunner() (BatchRunner, error)
	BuildPublishRunner() (PublishRunner, error)
}

// FormatRunner は、1件のエントリからプロンプトを組み立てる責務を持ちます。
type FormatRunner interface {
	Run(ctx context.Context, entry domain.JobEntry) (*domain.FormatResult, error)
}

// BatchRunner は、ジョブの全エントリを処理する責務を持ちます。
type BatchRunner interface {
	Run(ctx context.Context, job domain.BatchJob) ([]domain.BatchResult, error)
}

// PublishRunner は、バッチ結果を指定された形式で保存する責務を持ちます。
type PublishRunner interface {
	Publish(ctx context.Context, title string, results []domain.BatchResult, opts publisher.Options) (publisher.PublishResult, error)
}
