package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"shop-service/internal/usecase/product"
)

// ProductHandler handles HTTP requests for products
type ProductHandler struct {
	uc  product.ProductUsecase
	log *zap.Logger
}

// NewProductHandler creates a new ProductHandler instance
func NewProductHandler(uc product.ProductUsecase, log *zap.Logger) *ProductHandler {
	return &ProductHandler{uc: uc, log: log}
}

// CreateProductRequest is the body of POST /products/. Fields are pointers so
// that an empty string or a zero price still count as supplied.
type CreateProductRequest struct {
	Name        *string  `json:"name" binding:"required,max=255"`
	Description *string  `json:"description" binding:"required"`
	Price       *float64 `json:"price" binding:"required"`
}

// UpdateProductRequest is the body of PUT /products/:id.
type UpdateProductRequest struct {
	Name        *string  `json:"name" binding:"omitempty,max=255"`
	Description *string  `json:"description"`
	Price       *float64 `json:"price"`
}

// SortedProductsQuery holds the query string of GET /products/sorted/.
type SortedProductsQuery struct {
	MinPrice *float64 `form:"min_price" binding:"omitempty,gt=0"`
	MaxPrice *float64 `form:"max_price" binding:"omitempty,gt=0"`
	SortBy   string   `form:"sort_by"`
	Desc     bool     `form:"desc"`
}

// ProductResponse represents the HTTP response for product data
type ProductResponse struct {
	ID          int64   `json:"id"`
	Name        string  `json:"name"`
	Description string  `json:"description"`
	Price       float64 `json:"price"`
}

func toProductResponse(p *product.Product) ProductResponse {
	return ProductResponse{
		ID:          p.ID,
		Name:        p.Name,
		Description: p.Description,
		Price:       p.Price,
	}
}

func toProductResponses(ps []product.Product) []ProductResponse {
	out := make([]ProductResponse, len(ps))
	for i := range ps {
		out[i] = toProductResponse(&ps[i])
	}
	return out
}

// CreateProduct handles POST /products/
func (h *ProductHandler) CreateProduct(c *gin.Context) {
	var req CreateProductRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		bindError(c, h.log, err)
		return
	}

	resp, err := h.uc.CreateProduct(c.Request.Context(), product.CreateProductRequest{
		Name:        *req.Name,
		Description: *req.Description,
		Price:       *req.Price,
	})
	if err != nil {
		handleError(c, h.log, err)
		return
	}

	c.JSON(http.StatusOK, toProductResponse(resp))
}

// GetProduct handles GET /products/:id
func (h *ProductHandler) GetProduct(c *gin.Context) {
	id, ok := parseID(c, h.log, "id")
	if !ok {
		return
	}

	resp, err := h.uc.GetProduct(c.Request.Context(), product.GetProductRequest{ID: id})
	if err != nil {
		handleError(c, h.log, err)
		return
	}

	c.JSON(http.StatusOK, toProductResponse(resp))
}

// ListProducts handles GET /products/
func (h *ProductHandler) ListProducts(c *gin.Context) {
	resp, err := h.uc.ListProducts(c.Request.Context())
	if err != nil {
		handleError(c, h.log, err)
		return
	}

	c.JSON(http.StatusOK, toProductResponses(resp))
}

// ListSortedProducts handles GET /products/sorted/
func (h *ProductHandler) ListSortedProducts(c *gin.Context) {
	var q SortedProductsQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		bindError(c, h.log, err)
		return
	}

	h.log.Debug("sorted products request",
		zap.Any("min_price", q.MinPrice),
		zap.Any("max_price", q.MaxPrice),
		zap.String("sort_by", q.SortBy),
		zap.Bool("desc", q.Desc),
	)

	resp, err := h.uc.ListSortedProducts(c.Request.Context(), product.ListSortedRequest{
		MinPrice: q.MinPrice,
		MaxPrice: q.MaxPrice,
		SortBy:   q.SortBy,
		Desc:     q.Desc,
	})
	if err != nil {
		handleError(c, h.log, err)
		return
	}

	c.JSON(http.StatusOK, toProductResponses(resp))
}

// UpdateProduct handles PUT /products/:id
func (h *ProductHandler) UpdateProduct(c *gin.Context) {
	id, ok := parseID(c, h.log, "id")
	if !ok {
		return
	}

	var req UpdateProductRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		bindError(c, h.log, err)
		return
	}

	resp, err := h.uc.UpdateProduct(c.Request.Context(), product.UpdateProductRequest{
		ID:          id,
		Name:        req.Name,
		Description: req.Description,
		Price:       req.Price,
	})
	if err != nil {
		handleError(c, h.log, err)
		return
	}

	c.JSON(http.StatusOK, toProductResponse(resp))
}

// DeleteProduct handles DELETE /products/:id
func (h *ProductHandler) DeleteProduct(c *gin.Context) {
	id, ok := parseID(c, h.log, "id")
	if !ok {
		return
	}

	if err := h.uc.DeleteProduct(c.Request.Context(), product.DeleteProductRequest{ID: id}); err != nil {
		handleError(c, h.log, err)
		return
	}

	c.JSON(http.StatusOK, MessageResponse{Message: "Product deleted successfully"})
}
