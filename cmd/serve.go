package cmd

import (
	"github.com/spf13/cobra"

	"github.com/shouni/go-dart-prompt-kit/internal/pipeline"
)

var listenAddr string

// serveCmd は、ノードを HTTP で実行するサーバーを起動するのだ。
var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "ノードを HTTP 経由で実行するサーバーを起動します。",
	Args:  cobra.NoArgs,
	RunE:  serveCommand,
}

func init() {
	serveCmd.Flags().StringVar(&listenAddr, "addr", "", "待ち受けアドレス。未指定なら環境変数 DART_LISTEN_ADDR か既定値を使います。")
}

func serveCommand(cmd *cobra.Command, args []string) error {
	cfg := loadConfig(cmd)
	if listenAddr != "" {
		cfg.ListenAddr = listenAddr
	}
	return pipeline.ExecuteServe(cmd.Context(), cfg)
}
