package model

import (
	"fmt"
	"time"

	"github.com/patrickmn/go-cache"
	"golang.org/x/sync/singleflight"

	"github.com/shouni/go-dart-prompt-kit/pkg/domain"
	"github.com/shouni/go-dart-prompt-kit/pkg/formatter"
)

// CachedModel は ParsePrompt の結果をキャッシュするモデルのラッパーです。
// 同じ入力に対する同時呼び出しは singleflight で1回にまとめます。
type CachedModel struct {
	inner      formatter.Model
	cache      *cache.Cache
	ttl        time.Duration
	parseGroup singleflight.Group
}

// NewCachedModel は CachedModel を生成します。ttl が0の場合はキャッシュの既定の有効期限を使います。
func NewCachedModel(inner formatter.Model, c *cache.Cache, ttl time.Duration) *CachedModel {
	if ttl == 0 {
		ttl = cache.DefaultExpiration
	}
	return &CachedModel{
		inner: inner,
		cache: c,
		ttl:   ttl,
	}
}

// ParsePrompt はキャッシュを確認し、無ければ内側のモデルで解析します。
func (m *CachedModel) ParsePrompt(text string, escapeBrackets bool) (*domain.ParsedPrompt, error) {
	key := parseKey(text, escapeBrackets)
	if parsed, ok := m.lookup(key); ok {
		return parsed, nil
	}

	val, err, _ := m.parseGroup.Do(key, func() (interface{}, error) {
		// 待機中に他のゴルーチンが解析を終えている可能性があるため、再度確認します
		if parsed, ok := m.lookup(key); ok {
			return *parsed, nil
		}

		parsed, err := m.inner.ParsePrompt(text, escapeBrackets)
		if err != nil {
			return nil, err
		}
		m.cache.Set(key, *parsed, m.ttl)
		return *parsed, nil
	})
	if err != nil {
		return nil, err
	}

	parsed, ok := val.(domain.ParsedPrompt)
	if !ok {
		return nil, fmt.Errorf("unexpected return type from singleflight: %T", val)
	}
	return &parsed, nil
}

// FormatPrompt は内側のモデルにそのまま委譲します。
func (m *CachedModel) FormatPrompt(fields domain.PromptFields) (string, error) {
	return m.inner.FormatPrompt(fields)
}

// TTL は解析結果をキャッシュする期間です。
func (m *CachedModel) TTL() time.Duration {
	return m.ttl
}

// Unwrap は内側のモデルを返します。
func (m *CachedModel) Unwrap() formatter.Model {
	return m.inner
}

// lookup は値のコピーを返すため、呼び出し側が結果を書き換えてもキャッシュには影響しません。
func (m *CachedModel) lookup(key string) (*domain.ParsedPrompt, bool) {
	v, ok := m.cache.Get(key)
	if !ok {
		return nil, false
	}
	parsed, ok := v.(domain.ParsedPrompt)
	if !ok {
		return nil, false
	}
	return &parsed, true
}

func parseKey(text string, escapeBrackets bool) string {
	return fmt.Sprintf("parse:%t:%s", escapeBrackets, text)
}
