package httpapi

import (
	"net/http"

	"github.com/dmitrijs2005/scankeeper/internal/common"
	"github.com/dmitrijs2005/scankeeper/internal/logging"
	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// NewRouter mounts the list routes, health and metrics behind the request
// id, logging and metrics middlewares.
func NewRouter(lists ListService, logger logging.Logger) http.Handler {
	h := NewHandler(lists, logger)

	r := chi.NewRouter()
	r.Use(RequestID, RequestLogger(logger), Metrics)
	r.MethodNotAllowed(methodNotAllowed)

	r.Get(common.ListPath, h.GetList)
	r.Post(common.ListPath, h.ReplaceList)
	r.Delete(common.ListPath, h.ClearList)

	r.Get("/healthz", h.Health)
	r.Handle("/metrics", promhttp.Handler())

	return r
}
