package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/cexll/jira-mcp/internal/config"
	"github.com/cexll/jira-mcp/internal/jira"
	"github.com/cexll/jira-mcp/internal/tools"
	"github.com/cexll/jira-mcp/internal/web"
	"github.com/gorilla/mux"
	"github.com/joho/godotenv"
	"github.com/modelcontextprotocol/go-sdk/mcp"
)

const serverVersion = "v1.0.0"

func main() {
	if err := run(context.Background()); err != nil {
		log.Fatalf("[Jira MCP Server] %v", err)
	}
}

func run(ctx context.Context) error {
	// Load .env file (ignore error if file doesn't exist)
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}

	log.Printf("[Jira MCP Server] Starting Jira MCP Server %s", serverVersion)
	log.Printf("[Jira MCP Server] Jira base URL: %s", cfg.JiraBaseURL)
	log.Printf("[Jira MCP Server] Jira user: %s", cfg.JiraEmail)

	client := jira.NewClient(cfg.JiraBaseURL, cfg.JiraEmail, cfg.JiraAPIToken)

	server := mcp.NewServer(&mcp.Implementation{
		Name:    "jira-mcp-server",
		Version: serverVersion,
	}, nil)

	registered := tools.NewHandler(client).Register(server)
	for _, name := range registered {
		log.Printf("[Jira MCP Server] Registered tool: %s", name)
	}

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)
	go func() {
		<-sigChan
		log.Println("[Jira MCP Server] Received shutdown signal")
		cancel()
	}()

	if cfg.HTTPAddr != "" {
		return serveHTTP(ctx, cfg.HTTPAddr, server)
	}

	log.Println("[Jira MCP Server] Starting on stdio transport...")
	if err := server.Run(ctx, &mcp.StdioTransport{}); err != nil {
		return fmt.Errorf("server error: %w", err)
	}
	log.Println("[Jira MCP Server] Server stopped gracefully")
	return nil
}

// serveHTTP exposes the MCP server over streamable HTTP instead of stdio.
func serveHTTP(ctx context.Context, addr string, server *mcp.Server) error {
	router := mux.NewRouter()
	web.NewHandler(server).RegisterRoutes(router)

	httpServer := &http.Server{Addr: addr, Handler: router}
	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		_ = httpServer.Shutdown(shutdownCtx)
	}()

	log.Printf("[Jira MCP Server] Starting on HTTP transport at %s...", addr)
	if err := httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return fmt.Errorf("server error: %w", err)
	}
	log.Println("[Jira MCP Server] Server stopped gracefully")
	return nil
}
