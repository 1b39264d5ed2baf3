package server

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"

	"go.uber.org/zap"

	"github.com/katalvlaran/digraph/core"
	"github.com/katalvlaran/digraph/editor"
	"github.com/katalvlaran/digraph/validation"
)

// errBadRequest marks malformed or invalid request bodies.
var errBadRequest = errors.New("bad request")

// maxBodyBytes caps request bodies; every request is a handful of fields.
const maxBodyBytes = 1 << 16

func decode(w http.ResponseWriter, r *http.Request, dst any) error {
	dec := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxBodyBytes))
	dec.DisallowUnknownFields()
	if err := dec.Decode(dst); err != nil {
		return fmt.Errorf("%w: %w", errBadRequest, err)
	}
	if err := validation.ValidateStruct(dst); err != nil {
		return fmt.Errorf("%w: %w", errBadRequest, err)
	}

	return nil
}

// statusFor maps store errors onto HTTP status codes.
func statusFor(err error) int {
	switch {
	case errors.Is(err, errBadRequest):
		return http.StatusBadRequest
	case errors.Is(err, core.ErrNotFound):
		return http.StatusNotFound
	case errors.Is(err, editor.ErrNoSelection):
		return http.StatusConflict
	case errors.Is(err, core.ErrSelfLoop),
		errors.Is(err, core.ErrDuplicateEdge),
		errors.Is(err, core.ErrDuplicateNodeID),
		errors.Is(err, core.ErrEmptyNodeID):
		return http.StatusUnprocessableEntity
	case errors.Is(err, editor.ErrUnsupported):
		return http.StatusNotImplemented
	default:
		return http.StatusInternalServerError
	}
}

func (s *Server) writeJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(body); err != nil {
		s.log.Warn("encode response", zap.Error(err))
	}
}

func (s *Server) writeError(w http.ResponseWriter, err error) {
	status := statusFor(err)
	if status == http.StatusInternalServerError {
		s.log.Error("request failed", zap.Error(err))
	}
	s.writeJSON(w, status, errorResponse{Error: err.Error()})
}

// apply runs one store operation under the lock and writes its result.
func (s *Server) apply(w http.ResponseWriter, op func(*editor.GraphStore) (editor.Result, error)) {
	s.mu.Lock()
	res, err := op(s.store)
	s.mu.Unlock()

	if err != nil {
		s.writeError(w, err)
		return
	}
	s.writeJSON(w, http.StatusOK, newStateResponse(res))
}
