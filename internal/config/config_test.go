package config

import (
	"os"
	"testing"
	"time"

	kitconfig "github.com/shouni/go-dart-prompt-kit/pkg/config"
)

func TestLoadConfig(t *testing.T) {
	t.Run("既定値", func(t *testing.T) {
		for _, k := range []string{"DART_DICTIONARY", "DART_SCHEMA", "DART_CACHE_TTL", "DART_RATE_INTERVAL", "DART_CONCURRENCY", "DART_LISTEN_ADDR"} {
			t.Setenv(k, "")
			os.Unsetenv(k)
		}
		cfg := LoadConfig()
		if cfg.ListenAddr != DefaultListenAddr {
			t.Errorf("ListenAddr = %q", cfg.ListenAddr)
		}
		if cfg.Kit.DefaultSchema != kitconfig.DefaultSchema || cfg.Kit.Concurrency != kitconfig.DefaultConcurrency {
			t.Errorf("Kit = %+v", cfg.Kit)
		}
	})

	t.Run("環境変数の上書き", func(t *testing.T) {
		t.Setenv("DART_DICTIONARY", "tags.yaml")
		t.Setenv("DART_CACHE_TTL", "1m")
		t.Setenv("DART_RATE_INTERVAL", "250ms")
		t.Setenv("DART_CONCURRENCY", "8")
		t.Setenv("DART_LISTEN_ADDR", ":9000")

		cfg := LoadConfig()
		if cfg.Kit.DictionaryPath != "tags.yaml" || cfg.Kit.CacheExpiration != time.Minute ||
			cfg.Kit.RateInterval != 250*time.Millisecond || cfg.Kit.Concurrency != 8 || cfg.ListenAddr != ":9000" {
			t.Errorf("設定が反映されていません: %+v", cfg)
		}
	})

	t.Run("不正な値は既定値", func(t *testing.T) {
		t.Setenv("DART_CACHE_TTL", "soon")
		t.Setenv("DART_CONCURRENCY", "-1")

		cfg := LoadConfig()
		if cfg.Kit.CacheExpiration != kitconfig.DefaultCacheExpiration || cfg.Kit.Concurrency != kitconfig.DefaultConcurrency {
			t.Errorf("既定値が使われていません: %+v", cfg.Kit)
		}
	})

	t.Run("キャッシュ有効期間の0は既定値", func(t *testing.T) {
		t.Setenv("DART_CACHE_TTL", "0s")

		cfg := LoadConfig()
		if cfg.Kit.CacheExpiration != kitconfig.DefaultCacheExpiration {
			t.Errorf("CacheExpiration = %v, want %v", cfg.Kit.CacheExpiration, kitconfig.DefaultCacheExpiration)
		}
	})
}
