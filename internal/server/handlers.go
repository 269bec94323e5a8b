package server

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/shouni/go-dart-prompt-kit/pkg/formatter"
	"github.com/shouni/go-dart-prompt-kit/pkg/node"
	"github.com/shouni/go-dart-prompt-kit/pkg/vocab"
)

type apiError struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

type apiErrorBody struct {
	Error apiError `json:"error"`
}

type executeRequest struct {
	Inputs map[string]any `json:"inputs"`
}

type executeResponse struct {
	ID          string   `json:"id"`
	Node        string   `json:"node"`
	Outputs     []any    `json:"outputs"`
	OutputNames []string `json:"output_names"`
}

func writeJSON(w http.ResponseWriter, code int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	_ = json.NewEncoder(w).Encode(data)
}

func writeErr(w http.ResponseWriter, code int, errCode, message string) {
	writeJSON(w, code, apiErrorBody{Error: apiError{Code: errCode, Message: message}})
}

func (s *Server) handleHealthz(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, map[string]bool{"ok": true})
}

// handleObjectInfo は登録済みノードの宣言をノード名をキーにして返します。
func (s *Server) handleObjectInfo(w http.ResponseWriter, _ *http.Request) {
	infos := s.registry.Infos()
	out := make(map[string]node.Info, len(infos))
	for _, info := range infos {
		out[info.Name] = info
	}
	writeJSON(w, http.StatusOK, out)
}

func (s *Server) handleObjectInfoByName(w http.ResponseWriter, r *http.Request) {
	name := chi.URLParam(r, "name")
	n, ok := s.registry.Get(name)
	if !ok {
		writeErr(w, http.StatusNotFound, "node_not_found", fmt.Sprintf("node %q is not registered", name))
		return
	}
	writeJSON(w, http.StatusOK, n.Info())
}

// handleExecute は入力を検証し、モデル入力を解決してからノードを実行します。
func (s *Server) handleExecute(w http.ResponseWriter, r *http.Request) {
	name := chi.URLParam(r, "name")
	n, ok := s.registry.Get(name)
	if !ok {
		writeErr(w, http.StatusNotFound, "node_not_found", fmt.Sprintf("node %q is not registered", name))
		return
	}

	var req executeRequest
	dec := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxRequestBytes))
	if err := dec.Decode(&req); err != nil {
		writeErr(w, http.StatusBadRequest, "invalid_json", err.Error())
		return
	}

	if err := s.registry.Validate(name, req.Inputs); err != nil {
		writeErr(w, http.StatusBadRequest, "invalid_inputs", err.Error())
		return
	}

	inputs, err := s.resolveModels(n, req.Inputs)
	if err != nil {
		writeErr(w, http.StatusBadRequest, "invalid_model", err.Error())
		return
	}

	outputs, err := n.Execute(r.Context(), inputs)
	if err != nil {
		if errors.Is(err, vocab.ErrUnknownLabel) || errors.Is(err, node.ErrMissingModel) {
			writeErr(w, http.StatusBadRequest, "invalid_inputs", err.Error())
			return
		}
		writeErr(w, http.StatusInternalServerError, "execution_failed", err.Error())
		return
	}

	info := n.Info()
	names := info.ReturnNames
	if len(names) == 0 {
		names = info.ReturnTypes
	}
	writeJSON(w, http.StatusOK, executeResponse{
		ID:          uuid.NewString(),
		Node:        info.Name,
		Outputs:     outputs,
		OutputNames: names,
	})
}

// resolveModels はモデル型の入力をモデル名からモデルに置き換えた入力を返します。
// フォーマッタノードでモデル名が空の場合はノードのスキーマを使い、スキーマが異なるモデルは拒否します。
func (s *Server) resolveModels(n node.Node, raw map[string]any) (node.Inputs, error) {
	in := make(node.Inputs, len(raw)+1)
	for k, v := range raw {
		in[k] = v
	}

	for _, f := range n.Info().Input.Fields() {
		if f.Type != node.TypeModel {
			continue
		}
		modelName := in.String(f.Name)

		if fn, ok := n.(*node.FormatterNode); ok {
			if modelName == "" {
				modelName = string(fn.Schema())
			}
			schema, err := formatter.ParseSchema(modelName)
			if err != nil {
				return nil, err
			}
			if schema != fn.Schema() {
				return nil, fmt.Errorf("model %q is not compatible with %s", modelName, n.Info().Name)
			}
		}

		m, err := s.models.ModelByName(modelName)
		if err != nil {
			return nil, err
		}
		in[f.Name] = m
	}
	return in, nil
}
