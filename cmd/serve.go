package cmd

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/spf13/cobra"

	"github.com/brandkit-studio/brandkit/internal/config"
	"github.com/brandkit-studio/brandkit/internal/generation"
	"github.com/brandkit-studio/brandkit/internal/handlers"
	"github.com/brandkit-studio/brandkit/internal/llm"
)

func newServeCmd() *cobra.Command {
	var port string

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Start the content generation API server",
		Long: `Starts the brandkit HTTP API on the specified port.

The API accepts generation requests (topic, industry, formats, optional brand
voice calibration examples) and returns generated marketing artifacts.`,
		Example: `  # Start server on default port 8787
  brandkit serve

  # Start server on custom port
  brandkit serve --port 3000`,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load()
			if err != nil {
				return err
			}

			registry := generation.NewRegistry()
			if cfg.FormatsFile != "" {
				if err := registry.LoadOverrides(cfg.FormatsFile); err != nil {
					return err
				}
			}

			// The generative client is built once here and injected; a
			// missing credential leaves the orchestrator unset so requests
			// fail with a configuration error instead of a panic.
			var orchestrator *generation.Orchestrator
			client, err := llm.NewClientForProvider(cfg.Provider, cfg.AnthropicAPIKey, cfg.GeminiAPIKey, cfg.OllamaURL)
			if err != nil {
				slog.Warn("No generative provider available, generation requests will fail", "provider", cfg.Provider, "err", err)
			} else {
				orchestrator = generation.NewOrchestrator(client, cfg.DefaultModel(), cfg.MaxTokens, registry)
			}

			handler := handlers.New(orchestrator)

			// Set up routes
			mux := http.NewServeMux()
			mux.HandleFunc("/api/generate", handler.HandleGenerate)
			mux.HandleFunc("/api/sessions", handler.HandleSessions)
			mux.HandleFunc("/api/sessions/", handler.HandleSessionDetail)
			mux.HandleFunc("/healthcheck", func(w http.ResponseWriter, r *http.Request) {
				if _, err := w.Write([]byte("OK")); err != nil {
					slog.Error("Unable to write healthcheck", "err", err)
				}
			})

			if port == "" {
				port = cfg.Port
			}
			addr := ":" + port
			server := &http.Server{
				Addr:    addr,
				Handler: mux,
			}

			// Start server in goroutine
			serverErr := make(chan error, 1)
			go func() {
				slog.Info("Brandkit API available", "addr", addr, "provider", cfg.Provider, "model", cfg.DefaultModel())
				if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
					serverErr <- err
				}
			}()

			// Wait for context cancellation (Ctrl+C) or server error
			select {
			case <-cmd.Context().Done():
				slog.Info("Shutting down server...")
				// Give server 5 seconds to shut down gracefully
				shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
				defer cancel()
				if err := server.Shutdown(shutdownCtx); err != nil {
					slog.Error("Server shutdown failed", "err", err)
					return err
				}
				slog.Info("Server stopped")
				return nil
			case err := <-serverErr:
				return err
			}
		},
	}

	cmd.Flags().StringVarP(&port, "port", "p", "", "Port to listen on (default from BRANDKIT_PORT or 8787)")

	return cmd
}
