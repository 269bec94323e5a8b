package node

import (
	"errors"
	"fmt"
	"sync"

	"github.com/santhosh-tekuri/jsonschema/v5"
)

var (
	// ErrNodeAlreadyRegistered は同名のノードを登録しようとした場合に返されます。
	ErrNodeAlreadyRegistered = errors.New("node already registered")

	// ErrNodeNotFound は登録されていないノード名を指定した場合に返されます。
	ErrNodeNotFound = errors.New("node not found")
)

type registered struct {
	node   Node
	schema *jsonschema.Schema
}

// Registry はノードを登録順に保持します。
type Registry struct {
	mu    sync.RWMutex
	nodes map[string]registered
	order []string
}

// NewRegistry は空の Registry を返します。
func NewRegistry() *Registry {
	return &Registry{
		nodes: make(map[string]registered),
		order: make([]string, 0),
	}
}

// DefaultRegistry は v1/v2/v3 のフォーマッタと文字列結合ノードを登録した Registry を返します。
func DefaultRegistry() (*Registry, error) {
	r := NewRegistry()
	for _, n := range []Node{
		NewV1FormatterNode(),
		NewV2FormatterNode(),
		NewV3FormatterNode(),
		NewConcatNode(),
	} {
		if err := r.Register(n); err != nil {
			return nil, err
		}
	}
	return r, nil
}

// Register はノードを登録し、入力スキーマをコンパイルします。
func (r *Registry) Register(n Node) error {
	info := n.Info()
	schema, err := CompileSchema(info)
	if err != nil {
		return err
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.nodes[info.Name]; exists {
		return fmt.Errorf("%w: %s", ErrNodeAlreadyRegistered, info.Name)
	}
	r.nodes[info.Name] = registered{node: n, schema: schema}
	r.order = append(r.order, info.Name)
	return nil
}

// Get は名前でノードを返します。
func (r *Registry) Get(name string) (Node, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	e, ok := r.nodes[name]
	return e.node, ok
}

// List は登録順のノード一覧を返します。
func (r *Registry) List() []Node {
	r.mu.RLock()
	defer r.mu.RUnlock()

	nodes := make([]Node, 0, len(r.order))
	for _, name := range r.order {
		nodes = append(nodes, r.nodes[name].node)
	}
	return nodes
}

// Names は登録順のノード名を返します。
func (r *Registry) Names() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	names := make([]string, len(r.order))
	copy(names, r.order)
	return names
}

// Infos は登録順のノード宣言を返します。
func (r *Registry) Infos() []Info {
	nodes := r.List()
	infos := make([]Info, len(nodes))
	for i, n := range nodes {
		infos[i] = n.Info()
	}
	return infos
}

// Validate は JSON としてデコード済みの入力をノードの入力スキーマで検証します。
func (r *Registry) Validate(name string, doc map[string]any) error {
	r.mu.RLock()
	e, ok := r.nodes[name]
	r.mu.RUnlock()

	if !ok {
		return fmt.Errorf("%w: %s", ErrNodeNotFound, name)
	}
	return validateDocument(name, e.schema, doc)
}
