package config

import (
	"log/slog"
	"strconv"
	"time"

	"github.com/shouni/go-utils/envutil"

	kitconfig "github.com/shouni/go-dart-prompt-kit/pkg/config"
)

// デフォルト値の定義
const (
	DefaultListenAddr   = ":8188"
	DefaultOutputDir    = "output"
	DefaultOutputFormat = "markdown"
	DefaultRateLimit    = 50 * time.Millisecond // HTTP サーバーのリクエスト間隔
	DefaultRateBurst    = 20
)

// Config はアプリケーション全体の環境設定を保持する構造体です。
type Config struct {
	ListenAddr    string
	HTTPRateLimit time.Duration
	HTTPRateBurst int

	Kit     kitconfig.Config
	Options RunOptions
}

// LoadConfig は環境変数から設定を読み込み、構造体を返します。
// 解釈できない値は警告を出して既定値を使います。
func LoadConfig() *Config {
	kit := kitconfig.DefaultConfig()
	kit.DictionaryPath = envutil.GetEnv("DART_DICTIONARY", "")
	kit.DefaultSchema = envutil.GetEnv("DART_SCHEMA", kitconfig.DefaultSchema)
	kit.CacheExpiration = envDuration("DART_CACHE_TTL", kit.CacheExpiration)
	if kit.CacheExpiration == 0 {
		// go-cache は 0 を無期限として扱うので、既定の有効期間に戻すのだ。
		slog.Warn("DART_CACHE_TTL に 0 は指定できないため既定値を使います", "default", kitconfig.DefaultCacheExpiration)
		kit.CacheExpiration = kitconfig.DefaultCacheExpiration
	}
	kit.RateInterval = envDuration("DART_RATE_INTERVAL", kit.RateInterval)
	kit.Concurrency = envInt("DART_CONCURRENCY", kit.Concurrency)

	return &Config{
		ListenAddr:    envutil.GetEnv("DART_LISTEN_ADDR", DefaultListenAddr),
		HTTPRateLimit: envDuration("DART_HTTP_RATE_LIMIT", DefaultRateLimit),
		HTTPRateBurst: DefaultRateBurst,
		Kit:           kit,
	}
}

// RunOptions は CLI フラグから渡される実行時のパラメータです。
type RunOptions struct {
	// フォーマット関連
	Schema      string // --schema
	Rating      string // --rating
	Length      string // --length
	AspectRatio string // --aspect-ratio
	Identity    string // --identity
	Copyright   string // --copyright
	Character   string // --character
	Tags        string // --tags

	// バッチ関連
	JobFile      string // --job-file
	OutputDir    string // --output-dir
	OutputFormat string // --format
	FailFast     bool   // --fail-fast

	// 文字列結合
	Separator string // --separator
}

func envDuration(key string, def time.Duration) time.Duration {
	raw := envutil.GetEnv(key, "")
	if raw == "" {
		return def
	}
	d, err := time.ParseDuration(raw)
	if err != nil || d < 0 {
		slog.Warn("環境変数の値を解釈できないため既定値を使います", "key", key, "value", raw)
		return def
	}
	return d
}

func envInt(key string, def int) int {
	raw := envutil.GetEnv(key, "")
	if raw == "" {
		return def
	}
	n, err := strconv.Atoi(raw)
	if err != nil || n < 0 {
		slog.Warn("環境変数の値を解釈できないため既定値を使います", "key", key, "value", raw)
		return def
	}
	return n
}
