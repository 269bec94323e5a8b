package config

import (
	"time"
)

// デフォルト値の定義
const (
	DefaultSchema          = "v2"
	DefaultCacheExpiration = 10 * time.Minute
	DefaultCleanupInterval = 30 * time.Minute
	DefaultConcurrency     = 4
	DefaultRateBurst       = 2
)

// Config は Go Dart Prompt Kit の各 Runner を動作させるための基本設定です。
type Config struct {
	// --- Model Settings ---
	DictionaryPath string // 空の場合は同梱のサンプル辞書を使います
	DefaultSchema  string // スキーマ未指定のジョブに使うバージョン

	// --- Cache Settings ---
	CacheExpiration time.Duration // 解析結果のキャッシュ有効期間
	CleanupInterval time.Duration

	// --- Batch Settings ---
	Concurrency  int
	RateInterval time.Duration // 0 なら制限なし
	RateBurst    int
	FailFast     bool
}

// DefaultConfig は推奨されるデフォルト設定を返すヘルパー関数です。
func DefaultConfig() Config {
	return Config{
		DefaultSchema:   DefaultSchema,
		CacheExpiration: DefaultCacheExpiration,
		CleanupInterval: DefaultCleanupInterval,
		Concurrency:     DefaultConcurrency,
		RateBurst:       DefaultRateBurst,
	}
}
