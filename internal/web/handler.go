package web

import (
	"net/http"

	"github.com/gorilla/mux"
	"github.com/modelcontextprotocol/go-sdk/mcp"
)

// Handler serves the MCP streamable HTTP endpoint and a health check.
type Handler struct {
	mcpHandler http.Handler
}

// NewHandler creates a web handler for the given MCP server.
func NewHandler(server *mcp.Server) *Handler {
	return &Handler{
		mcpHandler: mcp.NewStreamableHTTPHandler(func(*http.Request) *mcp.Server {
			return server
		}, nil),
	}
}

// RegisterRoutes registers the MCP endpoint and health check routes.
func (h *Handler) RegisterRoutes(r *mux.Router) {
	r.Handle("/mcp", h.mcpHandler)
	r.HandleFunc("/healthz", h.handleHealthz).Methods("GET")
}

// handleHealthz reports process liveness.
func (h *Handler) handleHealthz(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte(`{"status":"ok"}`))
}
