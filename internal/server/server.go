package server

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"golang.org/x/time/rate"

	"github.com/shouni/go-dart-prompt-kit/pkg/formatter"
	"github.com/shouni/go-dart-prompt-kit/pkg/node"
)

const (
	defaultReadHeaderTimeout = 10 * time.Second
	defaultShutdownTimeout   = 10 * time.Second
	maxRequestBytes          = 1 << 20
)

// ModelSource はモデル名からモデルを解決します。空の名前は既定のモデルです。
type ModelSource interface {
	ModelByName(name string) (formatter.Model, error)
}

// Options は HTTP サーバーの動作設定です。
type Options struct {
	// RateLimit はリクエストの平均間隔です。0 なら制限しません。
	RateLimit time.Duration
	RateBurst int
}

// Server はノードをHTTP経由で実行するためのホストです。
type Server struct {
	registry *node.Registry
	models   ModelSource
	limiter  *rate.Limiter
	handler  http.Handler
}

// New は Server を初期化します。
func New(registry *node.Registry, models ModelSource, opts Options) (*Server, error) {
	if registry == nil {
		return nil, fmt.Errorf("ノードレジストリは必須です")
	}
	if models == nil {
		return nil, fmt.Errorf("ModelSource は必須です")
	}

	s := &Server{
		registry: registry,
		models:   models,
	}
	if opts.RateLimit > 0 {
		burst := opts.RateBurst
		if burst <= 0 {
			burst = 1
		}
		s.limiter = rate.NewLimiter(rate.Every(opts.RateLimit), burst)
	}
	s.handler = s.routes()
	return s, nil
}

// Handler はルーティング済みの http.Handler を返します。
func (s *Server) Handler() http.Handler {
	return s.handler
}

func (s *Server) routes() http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.RealIP)
	r.Use(middleware.Recoverer)
	r.Use(requestLogger)

	r.Get("/healthz", s.handleHealthz)

	r.Group(func(api chi.Router) {
		api.Use(rateLimit(s.limiter))

		api.Get("/object_info", s.handleObjectInfo)
		api.Get("/object_info/{name}", s.handleObjectInfoByName)
		api.Post("/nodes/{name}/execute", s.handleExecute)
	})
	return r
}

// ListenAndServe はコンテキストがキャンセルされるまでリクエストを受け付けます。
func (s *Server) ListenAndServe(ctx context.Context, addr string) error {
	httpServer := &http.Server{
		Addr:              addr,
		Handler:           s.handler,
		ReadHeaderTimeout: defaultReadHeaderTimeout,
	}

	errCh := make(chan error, 1)
	go func() {
		if err := httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
			return
		}
		errCh <- nil
	}()

	slog.InfoContext(ctx, "HTTP サーバーを起動しました", "addr", addr, "nodes", s.registry.Names())

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), defaultShutdownTimeout)
	defer cancel()
	slog.Info("HTTP サーバーを停止します")
	if err := httpServer.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("HTTP サーバーの停止に失敗しました: %w", err)
	}
	return <-errCh
}
