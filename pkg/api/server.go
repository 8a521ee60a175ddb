// Package api stega REST API
//
// @title           stega REST API
// @version         1.0.0
// @description     Hide, read and remove text messages in PNG chunks.
// @host            localhost:8000
// @BasePath        /
//
// @securityDefinitions.apikey ApiKeyAuth
// @in              header
// @name            X-API-Key
package api

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/klauspost/compress/gzhttp"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/swaggo/swag"
)

const swaggerUI = `<!DOCTYPE html>
<html>
<head>
	 <title>stega API Documentation</title>
	 <link rel="stylesheet" type="text/css" href="https://unpkg.com/swagger-ui-dist@3.25.0/swagger-ui.css" />
</head>
<body>
	 <div id="swagger-ui"></div>
	 <script src="https://unpkg.com/swagger-ui-dist@3.25.0/swagger-ui-bundle.js"></script>
	 <script>
	   window.onload = function() {
	     SwaggerUIBundle({
	       url: '/swagger/swagger.json',
	       dom_id: '#swagger-ui',
	       presets: [
	         SwaggerUIBundle.presets.apis,
	         SwaggerUIBundle.presets.standalone
	       ]
	     });
	   };
	 </script>
</body>
</html>`

// NewRouter builds the HTTP handler with every route and middleware.
// gatherer backs the /metrics endpoint.
func NewRouter(server *Server, gatherer prometheus.Gatherer) http.Handler {
	metrics := server.metrics
	config := server.config

	origins := config.AllowedOrigins
	if len(origins) == 0 {
		origins = []string{"*"}
	}

	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(requestLogger(server.logger))
	r.Use(middleware.Recoverer)
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   origins,
		AllowedMethods:   []string{"GET", "POST", "OPTIONS"},
		AllowedHeaders:   []string{"*"},
		ExposedHeaders:   []string{"Content-Disposition", "ETag"},
		AllowCredentials: false,
		MaxAge:           300,
	}))

	// Prometheus metrics endpoint (unprotected for scraping)
	r.Handle("/metrics", promhttp.HandlerFor(gatherer, promhttp.HandlerOpts{}))

	r.Get("/", server.handleIndex)
	r.Get("/status", metrics.InstrumentHandler("GET", "/status", server.handleStatus))

	r.Group(func(r chi.Router) {
		r.Use(metrics.InstrumentAuthMiddleware(apiKeyMiddleware(config.APIKey)))

		r.Post("/encode", metrics.InstrumentHandler("POST", "/encode", server.handleEncode))
		r.Post("/decode", metrics.InstrumentHandler("POST", "/decode", server.handleDecode))
		r.Post("/print", metrics.InstrumentHandler("POST", "/print", server.handlePrint))
		r.Post("/remove", metrics.InstrumentHandler("POST", "/remove", server.handleRemove))
		r.Post("/upload", metrics.InstrumentHandler("POST", "/upload", server.handleUpload))
		r.Get("/download/{name}", metrics.InstrumentHandler("GET", "/download/{name}", server.handleDownload))
		r.Get("/chunks/{name}", metrics.InstrumentHandler("GET", "/chunks/{name}", server.handleInspect))
	})

	// Swagger documentation (unprotected)
	r.Get("/swagger/*", func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/swagger/", "/swagger/index.html":
			w.Header().Set("Content-Type", "text/html")
			_, _ = w.Write([]byte(swaggerUI))
		case "/swagger/swagger.json":
			doc, err := swag.ReadDoc(SwaggerInfo.InstanceName())
			if err != nil {
				server.logger.Error().Err(err).Msg("failed to generate swagger doc")
				http.Error(w, "Failed to generate Swagger documentation", http.StatusInternalServerError)
				return
			}
			w.Header().Set("Content-Type", "application/json")
			_, _ = w.Write([]byte(doc))
		default:
			http.NotFound(w, r)
		}
	})

	return gzhttp.GzipHandler(r)
}

// StartServer serves the API on config.Addr until ctx is cancelled, then
// shuts down gracefully.
func StartServer(ctx context.Context, server *Server, gatherer prometheus.Gatherer) error {
	SwaggerInfo.Host = server.config.Addr

	httpServer := &http.Server{
		Addr:              server.config.Addr,
		Handler:           NewRouter(server, gatherer),
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		server.logger.Info().Str("addr", httpServer.Addr).Msg("starting stega REST API server")
		errCh <- httpServer.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return fmt.Errorf("server failed: %w", err)
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	server.logger.Info().Msg("shutting down stega REST API server")
	if err := httpServer.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("shutdown failed: %w", err)
	}
	return nil
}
