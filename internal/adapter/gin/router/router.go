package router

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	httpSwagger "github.com/swaggo/http-swagger/v2"
	"go.uber.org/zap"

	"shop-service/api"
	"shop-service/internal/adapter/gin/handler"
	"shop-service/internal/adapter/gin/middleware"
	grpcmiddleware "shop-service/internal/adapter/grpc/middleware"
)

// healthTimeout bounds the database ping behind GET /health.
const healthTimeout = 2 * time.Second

// Pinger reports whether the backing store is reachable.
type Pinger interface {
	PingContext(ctx context.Context) error
}

// Handlers groups the HTTP handlers mounted by the router.
type Handlers struct {
	User    *handler.UserHandler
	Product *handler.ProductHandler
	Order   *handler.OrderHandler
}

// Options carries the router's collaborators besides the handlers.
type Options struct {
	ServiceName string
	DB          Pinger
	RateLimiter *grpcmiddleware.RateLimiter // nil disables limiting
	Log         *zap.Logger
}

// SetupRouter configures and returns a Gin router with all routes and middleware
func SetupRouter(h Handlers, opts Options) *gin.Engine {
	gin.SetMode(gin.ReleaseMode)

	router := gin.New()

	router.Use(middleware.RequestID())
	router.Use(middleware.Recovery(opts.Log))
	router.Use(middleware.Logger(opts.Log))
	router.Use(middleware.RateLimiter(opts.RateLimiter, opts.Log))

	router.GET("/health", healthHandler(opts))
	router.GET("/swagger/*any", swaggerHandler())

	users := router.Group("/users")
	{
		users.POST("/", h.User.CreateUser)
		users.GET("/", h.User.ListUsers)
		users.GET("/:id", h.User.GetUser)
		users.PUT("/:id", h.User.UpdateUser)
		users.DELETE("/:id", h.User.DeleteUser)
		users.GET("/:id/orders/", h.Order.ListUserOrders)
		users.GET("/:id/total-order-amount/", h.Order.TotalOrderAmount)
	}

	products := router.Group("/products")
	{
		products.POST("/", h.Product.CreateProduct)
		products.GET("/", h.Product.ListProducts)
		products.GET("/sorted/", h.Product.ListSortedProducts)
		// Without this, /products/sorted would be captured by /:id.
		products.GET("/sorted", h.Product.ListSortedProducts)
		products.GET("/:id", h.Product.GetProduct)
		products.PUT("/:id", h.Product.UpdateProduct)
		products.DELETE("/:id", h.Product.DeleteProduct)
	}

	orders := router.Group("/orders")
	{
		orders.POST("/", h.Order.CreateOrder)
		orders.GET("/", h.Order.ListOrders)
		orders.GET("/:id", h.Order.GetOrder)
		orders.PUT("/:id", h.Order.UpdateOrder)
		orders.DELETE("/:id", h.Order.DeleteOrder)
	}

	return router
}

func healthHandler(opts Options) gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx, cancel := context.WithTimeout(c.Request.Context(), healthTimeout)
		defer cancel()

		if err := opts.DB.PingContext(ctx); err != nil {
			opts.Log.Warn("health check failed", zap.Error(err))
			c.JSON(http.StatusServiceUnavailable, gin.H{
				"status":  "unhealthy",
				"service": opts.ServiceName,
				"error":   "database unreachable",
			})
			return
		}

		c.JSON(http.StatusOK, gin.H{
			"status":  "healthy",
			"service": opts.ServiceName,
		})
	}
}

// swaggerHandler serves the embedded document and the Swagger UI around it.
func swaggerHandler() gin.HandlerFunc {
	ui := gin.WrapH(httpSwagger.Handler(
		httpSwagger.URL("/swagger/" + api.SwaggerFile),
	))

	return func(c *gin.Context) {
		if c.Param("any") == "/"+api.SwaggerFile {
			c.Data(http.StatusOK, "application/json; charset=utf-8", api.SwaggerJSON)
			return
		}
		ui(c)
	}
}
