package handler

import (
	"net/http"

	"content-analyzer/internal/domain"
	apperrors "content-analyzer/pkg/errors"

	"github.com/gorilla/mux"
	"github.com/rs/cors"
)

// RouterOptions carries the optional parts of the HTTP surface
type RouterOptions struct {
	AllowedOrigins []string
	// FrontendDir, when set, is served as static files at "/".
	FrontendDir string
}

// NewRouter creates a new HTTP router with all routes configured
func NewRouter(analyzeHandler *AnalyzeHandler, logger domain.Logger, opts RouterOptions) http.Handler {
	router := mux.NewRouter()
	router.NotFoundHandler = http.HandlerFunc(notFound)
	router.MethodNotAllowedHandler = http.HandlerFunc(methodNotAllowed)

	api := router.PathPrefix("/api").Subrouter()
	api.NotFoundHandler = http.HandlerFunc(notFound)
	api.MethodNotAllowedHandler = http.HandlerFunc(methodNotAllowed)

	api.HandleFunc("/health", Health).Methods(http.MethodGet)
	api.HandleFunc("/analyze", analyzeHandler.Analyze).Methods(http.MethodPost)

	if opts.FrontendDir != "" {
		router.PathPrefix("/").
			Handler(http.FileServer(http.Dir(opts.FrontendDir))).
			Methods(http.MethodGet, http.MethodHead)
	}

	origins := opts.AllowedOrigins
	if len(origins) == 0 {
		origins = []string{"*"}
	}
	c := cors.New(cors.Options{
		AllowedOrigins: origins,
		AllowedMethods: []string{
			http.MethodGet,
			http.MethodPost,
			http.MethodOptions,
		},
		AllowedHeaders: []string{
			"Accept",
			"Authorization",
			"Content-Type",
			requestIDHeader,
		},
		ExposedHeaders: []string{
			requestIDHeader,
		},
		MaxAge: 300,
	})

	var h http.Handler = router
	h = OptionsMiddleware(h)
	h = RecoveryMiddleware(logger)(h)
	h = LoggingMiddleware(logger)(h)
	h = RequestIDMiddleware(h)
	return c.Handler(h)
}

func notFound(w http.ResponseWriter, r *http.Request) {
	writeAppError(w, apperrors.NewNotFoundError("Not found"))
}

func methodNotAllowed(w http.ResponseWriter, r *http.Request) {
	writeAppError(w, apperrors.NewMethodNotAllowedError("Method not allowed"))
}
