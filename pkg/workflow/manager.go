package workflow

import (
	"fmt"

	"github.com/patrickmn/go-cache"
	"github.com/shouni/go-remote-io/pkg/remoteio"

	"github.com/shouni/go-dart-prompt-kit/pkg/config"
	"github.com/shouni/go-dart-prompt-kit/pkg/formatter"
	"github.com/shouni/go-dart-prompt-kit/pkg/model"
	"github.com/shouni/go-dart-prompt-kit/pkg/node"
	"github.com/shouni/go-dart-prompt-kit/pkg/prompts"
)

// Manager は、ワークフローの各工程を担う Runner 群とモデルを構築・管理します。
type Manager struct {
	cfg      config.Config
	models   map[formatter.Schema]*model.CachedModel
	registry *node.Registry
	writer   remoteio.OutputWriter
}

// New は、設定とタグ辞書を基に新しい Manager を初期化します。
func New(args ManagerArgs) (*Manager, error) {
	if args.Dictionary == nil {
		return nil, fmt.Errorf("タグ辞書は必須です")
	}
	if args.Writer == nil {
		return nil, fmt.Errorf("OutputWriter は必須です")
	}

	pb, err := initializePromptBuilder(args.PromptBuilder)
	if err != nil {
		return nil, err
	}

	models, err := buildModels(args.Config, args.Dictionary, pb)
	if err != nil {
		return nil, err
	}

	registry, err := node.DefaultRegistry()
	if err != nil {
		return nil, fmt.Errorf("ノードレジストリの初期化に失敗しました: %w", err)
	}

	return &Manager{
		cfg:      args.Config,
		models:   models,
		registry: registry,
		writer:   args.Writer,
	}, nil
}

// initializePromptBuilder は PromptBuilder を初期化します。
// 引数として既存のビルダーが渡された場合はそれを返し、nil の場合は新規作成します。
func initializePromptBuilder(pb prompts.PromptBuilder) (prompts.PromptBuilder, error) {
	if pb != nil {
		return pb, nil
	}

	tb, err := prompts.NewTemplateBuilder()
	if err != nil {
		return nil, fmt.Errorf("TemplateBuilder の新規作成に失敗しました: %w", err)
	}
	return tb, nil
}

// buildModels はスキーマごとにキャッシュ付きのモデルを構築します。
// 有効期間が 0 以下の場合は既定値を使い、キャッシュが無期限に増え続けないようにします。
func buildModels(cfg config.Config, dict *model.Dictionary, pb prompts.PromptBuilder) (map[formatter.Schema]*model.CachedModel, error) {
	ttl := cfg.CacheExpiration
	if ttl <= 0 {
		ttl = config.DefaultCacheExpiration
	}
	cleanup := cfg.CleanupInterval
	if cleanup <= 0 {
		cleanup = config.DefaultCleanupInterval
	}

	models := make(map[formatter.Schema]*model.CachedModel, len(formatter.Schemas))
	for _, s := range formatter.Schemas {
		tm, err := model.NewTagModel(string(s), dict, pb)
		if err != nil {
			return nil, fmt.Errorf("モデル '%s' の初期化に失敗しました: %w", s, err)
		}
		c := cache.New(ttl, cleanup)
		models[s] = model.NewCachedModel(tm, c, ttl)
	}
	return models, nil
}

// Model はスキーマに対応するモデルを返します。
func (m *Manager) Model(schema formatter.Schema) (formatter.Model, error) {
	cm, ok := m.models[schema]
	if !ok {
		return nil, fmt.Errorf("%w: %q", formatter.ErrUnknownSchema, string(schema))
	}
	return cm, nil
}

// ModelByName は "v2" のようなスキーマ名でモデルを返します。空の場合は既定のスキーマを使います。
func (m *Manager) ModelByName(name string) (formatter.Model, error) {
	if name == "" {
		name = m.cfg.DefaultSchema
	}
	schema, err := formatter.ParseSchema(name)
	if err != nil {
		return nil, err
	}
	return m.Model(schema)
}

// Registry はノードレジストリを返します。
func (m *Manager) Registry() *node.Registry {
	return m.registry
}
