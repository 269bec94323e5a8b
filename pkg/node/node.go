package node

import "context"

// Node はホストから実行される処理単位です。
type Node interface {
	Info() Info
	// Execute は ReturnTypes と同じ順序で出力を返します。
	Execute(ctx context.Context, in Inputs) ([]any, error)
}
