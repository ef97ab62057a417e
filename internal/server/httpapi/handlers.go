package httpapi

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"

	"github.com/dmitrijs2005/scankeeper/internal/common"
	"github.com/dmitrijs2005/scankeeper/internal/logging"
	"github.com/dmitrijs2005/scankeeper/internal/netx"
)

// maxBodyBytes bounds a POSTed list.
const maxBodyBytes = 4 << 20

// ListService is what the handlers need from lists.Service.
type ListService interface {
	Get(ctx context.Context, owner string) ([]byte, error)
	Replace(ctx context.Context, owner string, body []byte) (int, error)
	Clear(ctx context.Context, owner string) error
}

type Handler struct {
	lists  ListService
	logger logging.Logger
}

func NewHandler(lists ListService, logger logging.Logger) *Handler {
	return &Handler{lists: lists, logger: logger}
}

type successResponse struct {
	Success bool `json:"success"`
}

func (h *Handler) GetList(w http.ResponseWriter, r *http.Request) {
	data, err := h.lists.Get(r.Context(), netx.ClientHost(r))
	if err != nil {
		h.writeError(w, r, err)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(data)
}

func (h *Handler) ReplaceList(w http.ResponseWriter, r *http.Request) {
	body, err := io.ReadAll(http.MaxBytesReader(w, r.Body, maxBodyBytes))
	if err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			http.Error(w, "Request body too large", http.StatusRequestEntityTooLarge)
			return
		}
		http.Error(w, "Bad request", http.StatusBadRequest)
		return
	}

	if _, err := h.lists.Replace(r.Context(), netx.ClientHost(r), body); err != nil {
		h.writeError(w, r, err)
		return
	}
	writeSuccess(w)
}

func (h *Handler) ClearList(w http.ResponseWriter, r *http.Request) {
	if err := h.lists.Clear(r.Context(), netx.ClientHost(r)); err != nil {
		h.writeError(w, r, err)
		return
	}
	writeSuccess(w)
}

func (h *Handler) Health(w http.ResponseWriter, _ *http.Request) {
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	_, _ = io.WriteString(w, "OK")
}

func methodNotAllowed(w http.ResponseWriter, _ *http.Request) {
	http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
}

func writeSuccess(w http.ResponseWriter) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	_ = json.NewEncoder(w).Encode(successResponse{Success: true})
}

func (h *Handler) writeError(w http.ResponseWriter, r *http.Request, err error) {
	switch {
	case errors.Is(err, common.ErrInvalidPayload):
		http.Error(w, err.Error(), http.StatusBadRequest)
	default:
		h.logger.Error(r.Context(), "request failed", "path", r.URL.Path, "error", err)
		http.Error(w, "Internal server error", http.StatusInternalServerError)
	}
}
