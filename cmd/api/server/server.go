package server

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
	"google.golang.org/grpc"
	"google.golang.org/grpc/health"
	healthpb "google.golang.org/grpc/health/grpc_health_v1"

	ginrouter "shop-service/internal/adapter/gin/router"
	"shop-service/internal/adapter/grpc/middleware"
	"shop-service/internal/config"
)

// Server struct holds all server dependencies
type Server struct {
	Config *config.Config
	Logger *zap.Logger
	Gin    *http.Server
	GRPC   *grpc.Server   // nil unless GRPC_ENABLED
	Health *health.Server // nil unless GRPC_ENABLED
}

// New creates a new server instance
func New(
	cfg *config.Config,
	l *zap.Logger,
	handlers ginrouter.Handlers,
	db ginrouter.Pinger,
	rateLimiter *middleware.RateLimiter,
) *Server {
	s := &Server{
		Config: cfg,
		Logger: l,
		Gin: SetupGinServer(handlers, ginrouter.Options{
			ServiceName: cfg.Logger.ServiceName,
			DB:          db,
			RateLimiter: rateLimiter,
			Log:         l,
		}, ":"+cfg.App.HTTPPort),
	}

	if cfg.App.GRPCEnabled {
		s.GRPC, s.Health = SetupGRPC(l, rateLimiter)
	}

	return s
}

// Start runs the HTTP server and, when enabled, the gRPC server until both
// are shut down. If either fails the other is stopped as well.
func (s *Server) Start(ctx context.Context) error {
	g, ctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		s.Logger.Info("Gin REST API running", zap.String("address", s.Gin.Addr))
		if err := s.Gin.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			if s.GRPC != nil {
				s.GRPC.Stop()
			}
			return fmt.Errorf("gin server: %w", err)
		}
		return nil
	})

	if s.GRPC != nil {
		g.Go(func() error {
			if err := s.startGRPC(ctx); err != nil {
				_ = s.Gin.Close()
				return err
			}
			return nil
		})
	}

	return g.Wait()
}

// startGRPC starts the gRPC server
func (s *Server) startGRPC(ctx context.Context) error {
	addr := ":" + s.Config.App.GRPCPort

	lc := net.ListenConfig{}
	lis, err := lc.Listen(ctx, "tcp", addr)
	if err != nil {
		return fmt.Errorf("failed to listen: %w", err)
	}

	s.Health.SetServingStatus("", healthpb.HealthCheckResponse_SERVING)
	s.Logger.Info("gRPC server running", zap.String("address", addr))

	if err := s.GRPC.Serve(lis); err != nil && !errors.Is(err, grpc.ErrServerStopped) {
		return fmt.Errorf("grpc server: %w", err)
	}
	return nil
}

// Shutdown stops accepting requests and waits for in-flight ones until ctx
// expires.
func (s *Server) Shutdown(ctx context.Context) error {
	var errs []error

	if s.Health != nil {
		s.Health.Shutdown()
	}

	s.Logger.Info("shutting down Gin server...")
	if err := s.Gin.Shutdown(ctx); err != nil {
		errs = append(errs, fmt.Errorf("gin shutdown: %w", err))
	}

	if s.GRPC != nil {
		s.Logger.Info("shutting down gRPC server...")
		stopped := make(chan struct{})
		go func() {
			s.GRPC.GracefulStop()
			close(stopped)
		}()
		select {
		case <-stopped:
		case <-ctx.Done():
			s.GRPC.Stop()
			errs = append(errs, fmt.Errorf("grpc shutdown: %w", ctx.Err()))
		}
	}

	return errors.Join(errs...)
}
