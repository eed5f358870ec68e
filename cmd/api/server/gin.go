package server

import (
	"net/http"
	"time"

	"go.uber.org/zap"

	ginrouter "shop-service/internal/adapter/gin/router"
)

// SetupGinServer creates and configures the Gin REST API server
func SetupGinServer(handlers ginrouter.Handlers, opts ginrouter.Options, addr string) *http.Server {
	router := ginrouter.SetupRouter(handlers, opts)

	opts.Log.Info("Gin REST API configured", zap.String("address", addr))

	return &http.Server{
		Addr:              addr,
		Handler:           router,
		ReadHeaderTimeout: 2 * time.Second,
		ReadTimeout:       10 * time.Second,
		WriteTimeout:      10 * time.Second,
		IdleTimeout:       120 * time.Second,
	}
}
