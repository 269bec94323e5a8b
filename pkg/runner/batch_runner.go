package runner

import (
	"context"
	"log/slog"
	"time"

	"golang.org/x/sync/errgroup"
	"golang.org/x/time/rate"

	"github.com/shouni/go-dart-prompt-kit/pkg/config"
	"github.com/shouni/go-dart-prompt-kit/pkg/domain"
)

// BatchRunner はジョブの全エントリを並列にフォーマットします。
type BatchRunner struct {
	cfg    config.Config
	format *FormatRunner
}

// NewBatchRunner は依存関係を注入して初期化します。
func NewBatchRunner(cfg config.Config, format *FormatRunner) *BatchRunner {
	return &BatchRunner{
		cfg:    cfg,
		format: format,
	}
}

// Run はエントリを並列に処理し、入力と同じ順序で結果を返します。
// エントリ単位の失敗は結果に記録されます。FailFast の場合は最初の失敗で中断し、そのエラーを返します。
func (br *BatchRunner) Run(ctx context.Context, job domain.BatchJob) ([]domain.BatchResult, error) {
	entries := job.ResolveSchemas()
	results := make([]domain.BatchResult, len(entries))

	slog.InfoContext(ctx, "バッチ処理を開始します",
		"title", job.Title,
		"entries", len(entries),
		"schemas", entries.UniqueSchemas(),
	)

	eg, egCtx := errgroup.WithContext(ctx)
	if br.cfg.Concurrency > 0 {
		eg.SetLimit(br.cfg.Concurrency)
	}

	// レートリミットの設定。intervalが0なら制限なしとして動きます。
	var limiter *rate.Limiter
	if br.cfg.RateInterval > 0 {
		burst := br.cfg.RateBurst
		if burst <= 0 {
			burst = 1
		}
		limiter = rate.NewLimiter(rate.Every(br.cfg.RateInterval), burst)
	}

	startTime := time.Now()
	for i, entry := range entries {
		eg.Go(func() error {
			results[i].Entry = entry

			if limiter != nil {
				if err := limiter.Wait(egCtx); err != nil {
					results[i].Err = err
					return err
				}
			}
			if err := egCtx.Err(); err != nil {
				results[i].Err = err
				return err
			}

			res, err := br.format.Run(egCtx, entry)
			if err != nil {
				slog.WarnContext(egCtx, "エントリの処理に失敗しました", "id", entry.ID, "error", err)
				results[i].Err = err
				if br.cfg.FailFast {
					return err
				}
				return nil
			}

			results[i].Result = res
			return nil
		})
	}

	if err := eg.Wait(); err != nil {
		return results, err
	}

	slog.InfoContext(ctx, "バッチ処理が完了しました",
		"entries", len(entries),
		"failed", countFailed(results),
		"duration", time.Since(startTime).Round(time.Millisecond),
	)
	return results, nil
}

func countFailed(results []domain.BatchResult) int {
	n := 0
	for _, r := range results {
		if r.Failed() {
			n++
		}
	}
	return n
}
