package workflow

import (
	"github.com/shouni/go-dart-prompt-kit/pkg/publisher"
	"github.com/shouni/go-dart-prompt-kit/pkg/runner"
)

// BuildFormatRunner は、1件のフォーマットを担当する Runner を作成します。
func (m *Manager) BuildFormatRunner() (FormatRunner, error) {
	return m.newFormatRunner(), nil
}

// BuildBatchRunner は、ジョブの一括処理を担当する Runner を作成します。
func (m *Manager) BuildBatchRunner() (BatchRunner, error) {
	return runner.NewBatchRunner(m.cfg, m.newFormatRunner()), nil
}

// BuildPublishRunner は、成果物のパブリッシュを担当する Runner を作成します。
func (m *Manager) BuildPublishRunner() (PublishRunner, error) {
	return publisher.NewBatchPublisher(m.writer), nil
}

func (m *Manager) newFormatRunner() *runner.FormatRunner {
	return runner.NewFormatRunner(m, m.cfg.DefaultSchema)
}
