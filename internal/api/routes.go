// Route registration and go-chi router setup.
package api

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"go.uber.org/zap"

	"github.com/uidejarvis/jarvis/internal/api/handlers"
	"github.com/uidejarvis/jarvis/internal/api/mcptools"
	apmiddleware "github.com/uidejarvis/jarvis/internal/api/middleware"
)

// Dependencies are the services the router wires into handlers.
type Dependencies struct {
	// Answers backs POST /chat and the MCP chat tool.
	Answers handlers.AnswerGenerator
	// Provider backs GET /health/llm. Optional.
	Provider handlers.ProviderChecker
	// AllowedOrigins is the CORS allow-list.
	AllowedOrigins []string
	// Logger receives request and handler logs. Nil disables logging.
	Logger *zap.Logger
}

// NewRouter creates and configures a new chi router with all routes.
func NewRouter(deps Dependencies) *chi.Mux {
	logger := deps.Logger
	if logger == nil {
		logger = zap.NewNop()
	}

	r := chi.NewRouter()

	// Global middleware (runs on all routes)
	r.Use(apmiddleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(apmiddleware.RequestLogger(logger))
	r.Use(middleware.Recoverer)
	r.Use(apmiddleware.CORS(deps.AllowedOrigins))

	r.Get("/", handlers.Root)
	r.Get("/health", handlers.Health)
	if deps.Provider != nil {
		r.Get("/health/llm", handlers.NewLLMHealthHandler(deps.Provider).Check) // GET /health/llm
	}

	chatHandler := handlers.NewChatHandler(deps.Answers, logger)
	searchHandler := handlers.NewBinarySearchHandler(logger)
	r.Post("/chat", chatHandler.Chat)              // POST /chat
	r.Post("/binary-search", searchHandler.Search) // POST /binary-search

	// MCP streamable HTTP transport for agent clients.
	r.Handle("/mcp", mcptools.NewHandler(mcptools.NewServer(deps.Answers)))

	r.NotFound(func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusNotFound)
		w.Write([]byte(`{"detail":"Not Found"}`)) //nolint:errcheck
	})
	r.MethodNotAllowed(func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusMethodNotAllowed)
		w.Write([]byte(`{"detail":"Method Not Allowed"}`)) //nolint:errcheck
	})

	return r
}
