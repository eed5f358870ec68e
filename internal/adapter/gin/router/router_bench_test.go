package router

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"shop-service/internal/adapter/db/dbtest"
	"shop-service/internal/adapter/db/gormstore"
	"shop-service/internal/adapter/gin/handler"
	"shop-service/internal/usecase/order"
	"shop-service/internal/usecase/product"
	"shop-service/internal/usecase/user"
)

func setupBenchmarkRouter(b *testing.B) *gin.Engine {
	b.Helper()
	log := zap.NewNop()
	db := dbtest.Open(b)
	sqlDB, err := db.DB()
	if err != nil {
		b.Fatal(err)
	}

	userRepo := gormstore.NewUserRepo(db, log)
	return SetupRouter(Handlers{
		User:    handler.NewUserHandler(user.New(userRepo, log), log),
		Product: handler.NewProductHandler(product.New(gormstore.NewProductRepo(db, log), log), log),
		Order:   handler.NewOrderHandler(order.New(gormstore.NewOrderRepo(db, log), userRepo, log), log),
	}, Options{ServiceName: "bench", DB: sqlDB, Log: log})
}

func benchRequest(b *testing.B, r http.Handler, method, path string, body any) *httptest.ResponseRecorder {
	b.Helper()
	var buf bytes.Buffer
	if body != nil {
		if err := json.NewEncoder(&buf).Encode(body); err != nil {
			b.Fatal(err)
		}
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	if w.Code != http.StatusOK {
		b.Fatalf("%s %s: status %d: %s", method, path, w.Code, w.Body.String())
	}
	return w
}

func BenchmarkCreateUser(b *testing.B) {
	r := setupBenchmarkRouter(b)

	b.ReportAllocs()
	for i := 0; b.Loop(); i++ {
		benchRequest(b, r, http.MethodPost, "/users/", map[string]string{
			"first_name": "Bench", "last_name": "User",
			"email": fmt.Sprintf("bench%d@example.com", i), "password": "pw",
		})
	}
}

func BenchmarkSortedProducts(b *testing.B) {
	r := setupBenchmarkRouter(b)
	for i := range 200 {
		benchRequest(b, r, http.MethodPost, "/products/", map[string]any{
			"name": fmt.Sprintf("product-%03d", i), "description": "bench", "price": float64(i%50) + 0.99,
		})
	}

	b.ReportAllocs()
	for b.Loop() {
		benchRequest(b, r, http.MethodGet, "/products/sorted/?min_price=10&max_price=40&sort_by=price&desc=true", nil)
	}
}

func BenchmarkTotalOrderAmount(b *testing.B) {
	r := setupBenchmarkRouter(b)
	benchRequest(b, r, http.MethodPost, "/users/", map[string]string{
		"first_name": "Bench", "last_name": "User", "email": "bench@example.com", "password": "pw",
	})
	benchRequest(b, r, http.MethodPost, "/products/", map[string]any{"name": "p", "description": "d", "price": 1.25})
	for range 100 {
		benchRequest(b, r, http.MethodPost, "/orders/", map[string]any{"user_id": 1, "product_id": 1, "status": "new"})
	}

	b.ReportAllocs()
	for b.Loop() {
		benchRequest(b, r, http.MethodGet, "/users/1/total-order-amount/", nil)
	}
}
