package middleware

import (
	"context"
	"fmt"
	"math"
	"time"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/metadata"
	"google.golang.org/grpc/peer"
	"google.golang.org/grpc/status"
)

// KeyPrefix namespaces the token buckets in Redis.
const KeyPrefix = "ratelimit:tb:"

// tokenBucket refills the bucket for the elapsed time and takes one token.
// Bucket state is a hash {last_refill, tokens}; it expires once a full
// refill would have happened anyway.
var tokenBucket = redis.NewScript(`
local key = KEYS[1]
local rate = tonumber(ARGV[1])
local capacity = tonumber(ARGV[2])
local now = tonumber(ARGV[3])
local ttl = tonumber(ARGV[4])

local bucket = redis.call('HMGET', key, 'last_refill', 'tokens')
local last_refill = tonumber(bucket[1]) or now
local tokens = tonumber(bucket[2]) or capacity

local elapsed = math.max(0, now - last_refill)
tokens = math.min(capacity, tokens + elapsed * rate)

local allowed = 0
if tokens >= 1 then
	tokens = tokens - 1
	allowed = 1
end

redis.call('HSET', key, 'last_refill', tostring(now), 'tokens', tostring(tokens))
redis.call('EXPIRE', key, ttl)
return allowed
`)

// RateLimiterConfig holds configuration for the rate limiter.
type RateLimiterConfig struct {
	RequestsPerSecond float64
	BurstCapacity     int
	Enabled           bool
}

// RateLimiter is a Redis backed token bucket shared by the HTTP middleware and
// the gRPC interceptor.
type RateLimiter struct {
	client redis.Scripter
	config RateLimiterConfig
	log    *zap.Logger
	now    func() time.Time
}

// Option configures a RateLimiter.
type Option func(*RateLimiter)

// WithClock replaces the wall clock used to refill buckets.
func WithClock(now func() time.Time) Option {
	return func(rl *RateLimiter) {
		rl.now = now
	}
}

// NewRateLimiter creates a new rate limiter.
func NewRateLimiter(client redis.Scripter, config RateLimiterConfig, log *zap.Logger, opts ...Option) *RateLimiter {
	rl := &RateLimiter{
		client: client,
		config: config,
		log:    log,
		now:    time.Now,
	}
	for _, opt := range opts {
		opt(rl)
	}
	return rl
}

// Enabled reports whether requests are actually being limited.
func (rl *RateLimiter) Enabled() bool {
	return rl != nil && rl.config.Enabled && rl.client != nil
}

// Config returns the limiter settings.
func (rl *RateLimiter) Config() RateLimiterConfig {
	return rl.config
}

// ttlSeconds is how long an idle bucket is kept: the time to refill from empty.
func (rl *RateLimiter) ttlSeconds() int {
	refill := float64(rl.config.BurstCapacity) / rl.config.RequestsPerSecond
	return int(math.Ceil(refill)) + 1
}

// Allow takes one token from the bucket named key. A disabled limiter
// always allows.
func (rl *RateLimiter) Allow(ctx context.Context, key string) (bool, error) {
	if !rl.Enabled() {
		return true, nil
	}

	now := float64(rl.now().UnixMicro()) / 1e6
	allowed, err := tokenBucket.Run(ctx, rl.client, []string{KeyPrefix + key},
		rl.config.RequestsPerSecond,
		rl.config.BurstCapacity,
		now,
		rl.ttlSeconds(),
	).Int64()
	if err != nil {
		return false, fmt.Errorf("rate limiter script: %w", err)
	}
	return allowed == 1, nil
}

// UnaryInterceptor returns a gRPC unary interceptor for rate limiting.
func (rl *RateLimiter) UnaryInterceptor() grpc.UnaryServerInterceptor {
	return func(
		ctx context.Context,
		req any,
		info *grpc.UnaryServerInfo,
		handler grpc.UnaryHandler,
	) (any, error) {
		if !rl.Enabled() {
			return handler(ctx, req)
		}

		clientIP := rl.getClientIP(ctx)
		key := fmt.Sprintf("%s:%s", info.FullMethod, clientIP)

		allowed, err := rl.Allow(ctx, key)
		if err != nil {
			// Fail open: Redis trouble must not take the API down.
			rl.log.Warn("rate limiter redis error, allowing request",
				zap.String("client_ip", clientIP),
				zap.String("method", info.FullMethod),
				zap.Error(err),
			)
			return handler(ctx, req)
		}

		if !allowed {
			rl.log.Warn("rate limit exceeded",
				zap.String("client_ip", clientIP),
				zap.String("method", info.FullMethod),
				zap.Float64("limit", rl.config.RequestsPerSecond),
			)
			return nil, status.Errorf(codes.ResourceExhausted,
				"rate limit exceeded: %.2f requests/second (burst capacity: %d)",
				rl.config.RequestsPerSecond, rl.config.BurstCapacity)
		}

		return handler(ctx, req)
	}
}

// getClientIP extracts the client IP address from the gRPC context.
func (rl *RateLimiter) getClientIP(ctx context.Context) string {
	if md, ok := metadata.FromIncomingContext(ctx); ok {
		if xff := md.Get("x-forwarded-for"); len(xff) > 0 {
			return xff[0]
		}
		if xri := md.Get("x-real-ip"); len(xri) > 0 {
			return xri[0]
		}
	}

	if p, ok := peer.FromContext(ctx); ok {
		return p.Addr.String()
	}

	return "unknown"
}
