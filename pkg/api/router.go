// Package api is the HTTP transport for the billing service.
package api

import (
	"net/http"

	"github.com/go-chi/chi/v5/middleware"
	"github.com/gorilla/mux"
	httpSwagger "github.com/swaggo/http-swagger"
	"go.opentelemetry.io/otel/trace"

	"biltiflow/pkg/logger"
)

// RouterOptions configures NewRouter.
type RouterOptions struct {
	// FrontendDir is the root for static files served on unmatched GETs.
	FrontendDir string
	// Tracer opens a server span per matched request when set.
	Tracer trace.Tracer
	Log    *logger.Logger
}

// NewRouter builds the service handler. API routes are tried first and any
// other GET falls through to the static frontend. Every response carries
// permissive CORS headers, and OPTIONS on any path is answered with 200.
func NewRouter(h *Handler, opts RouterOptions) http.Handler {
	r := mux.NewRouter()
	r.NotFoundHandler = http.HandlerFunc(notFound)
	r.MethodNotAllowedHandler = http.HandlerFunc(notFound)
	if opts.Tracer != nil {
		r.Use(traceMiddleware(opts.Tracer))
	}

	r.HandleFunc("/healthz", health).Methods(http.MethodGet)

	api := r.PathPrefix("/api/billing").Subrouter()
	api.HandleFunc("", h.listOrders).Methods(http.MethodGet)
	api.HandleFunc("", h.createOrder).Methods(http.MethodPost)
	api.HandleFunc("/{id}", h.updateOrder).Methods(http.MethodPut)
	api.HandleFunc("/{id}", h.deleteOrder).Methods(http.MethodDelete)

	r.PathPrefix("/swagger/").Handler(httpSwagger.WrapHandler)
	r.PathPrefix("/").
		Handler(http.FileServer(http.Dir(opts.FrontendDir))).
		Methods(http.MethodGet, http.MethodHead)

	var handler http.Handler = r
	handler = cors(handler)
	if opts.Log != nil {
		handler = accessLog(opts.Log)(handler)
	}
	handler = requestID(handler)
	handler = middleware.RealIP(handler)
	handler = middleware.Recoverer(handler)
	return handler
}
