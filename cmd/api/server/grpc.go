package server

import (
	"go.uber.org/zap"
	"google.golang.org/grpc"
	"google.golang.org/grpc/health"
	healthpb "google.golang.org/grpc/health/grpc_health_v1"
	"google.golang.org/grpc/reflection"

	"shop-service/internal/adapter/grpc/middleware"
	"shop-service/pkg/logger"
)

// SetupGRPC creates the gRPC server exposing the standard health service.
// The health status follows the HTTP server: SERVING once started,
// NOT_SERVING during shutdown.
func SetupGRPC(l *zap.Logger, rateLimiter *middleware.RateLimiter) (*grpc.Server, *health.Server) {
	grpcServer := grpc.NewServer(
		grpc.ChainUnaryInterceptor(
			logger.RequestIDInterceptor(),
			rateLimiter.UnaryInterceptor(),
		),
	)

	healthServer := health.NewServer()
	healthpb.RegisterHealthServer(grpcServer, healthServer)
	reflection.Register(grpcServer)

	l.Debug("gRPC health service registered")

	return grpcServer, healthServer
}
