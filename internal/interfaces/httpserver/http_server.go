package httpserver

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/zerolog/log"

	"newschat-server/internal/infrastructure/config"
	"newschat-server/internal/interfaces/httpserver/handlers"
	"newschat-server/internal/interfaces/httpserver/middlewares"
)

const shutdownTimeout = 10 * time.Second

// HTTPServer wraps the gin engine with graceful shutdown helpers.
type HTTPServer struct {
	router      *gin.Engine
	config      *config.Config
	chatHandler *handlers.ChatHandler
}

// NewHTTPServer constructs the HTTP server with default middleware and routes.
func NewHTTPServer(cfg *config.Config, chatHandler *handlers.ChatHandler) *HTTPServer {
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(middlewares.RequestID())
	router.Use(middlewares.RequestLogger())
	router.Use(middlewares.CORS())
	router.Use(middlewares.MetricsRecorder())

	// Wrong-method requests on known routes get a 405 instead of gin's
	// default 404.
	router.HandleMethodNotAllowed = true
	router.NoMethod(func(c *gin.Context) {
		c.JSON(http.StatusMethodNotAllowed, gin.H{"message": "Method not allowed"})
	})

	server := &HTTPServer{
		router:      router,
		config:      cfg,
		chatHandler: chatHandler,
	}
	server.setupRoutes()
	return server
}

func (s *HTTPServer) setupRoutes() {
	s.router.GET("/healthz", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok", "service": "newschat"})
	})
	s.router.GET("/readyz", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ready", "service": "newschat"})
	})
	s.router.GET("/metrics", gin.WrapH(promhttp.Handler()))

	v1 := s.router.Group("/v1")
	v1.POST("/chat", s.chatHandler.CreateChatCompletion)
}

// Engine exposes the underlying router, used by tests.
func (s *HTTPServer) Engine() *gin.Engine {
	return s.router
}

// Run starts the HTTP listener and shuts down gracefully when the context is
// cancelled.
func (s *HTTPServer) Run(ctx context.Context) error {
	server := &http.Server{
		Addr:    ":" + s.config.HTTPPort,
		Handler: s.router,
	}

	errCh := make(chan error, 1)
	go func() {
		log.Info().Str("addr", server.Addr).Msg("HTTP server listening")
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
			return
		}
		errCh <- nil
	}()

	select {
	case <-ctx.Done():
		log.Info().Msg("context cancelled, shutting down HTTP server")
	case err := <-errCh:
		return err
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	return server.Shutdown(shutdownCtx)
}
