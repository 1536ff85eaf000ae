package server

import (
	"net/http"
	"strings"

	productdomain "github.com/billfold/billfold/internal/product/domain"
	"github.com/gin-gonic/gin"
)

type createProductRequest struct {
	ID     string  `json:"id"`
	Name   string  `json:"name"`
	Amount float64 `json:"amount"`
}

type updateProductRequest struct {
	Name   *string  `json:"name"`
	Amount *float64 `json:"amount"`
}

func (s *Server) ListProducts(c *gin.Context) {
	products, err := s.productSvc.List(c.Request.Context())
	if err != nil {
		AbortWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"data": products})
}

func (s *Server) CreateProduct(c *gin.Context) {
	var req createProductRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		AbortWithError(c, invalidRequestError())
		return
	}
	if req.Amount < 0 {
		AbortWithError(c, newValidationError("amount", "invalid_amount", "amount must be non-negative"))
		return
	}

	product, err := s.productSvc.Create(c.Request.Context(), productdomain.CreateProductRequest{
		ID:     strings.TrimSpace(req.ID),
		Name:   strings.TrimSpace(req.Name),
		Amount: req.Amount,
	})
	if err != nil {
		AbortWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"data": product})
}

func (s *Server) UpdateProduct(c *gin.Context) {
	var req updateProductRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		AbortWithError(c, invalidRequestError())
		return
	}
	if req.Amount != nil && *req.Amount < 0 {
		AbortWithError(c, newValidationError("amount", "invalid_amount", "amount must be non-negative"))
		return
	}

	id := strings.TrimSpace(c.Param("id"))
	err := s.productSvc.Update(c.Request.Context(), id, productdomain.UpdateProductRequest{
		Name:   req.Name,
		Amount: req.Amount,
	})
	if err != nil {
		AbortWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"data": gin.H{"id": id}})
}

func (s *Server) DeleteProduct(c *gin.Context) {
	id := strings.TrimSpace(c.Param("id"))
	if err := s.productSvc.Delete(c.Request.Context(), id); err != nil {
		AbortWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"data": gin.H{"id": id}})
}
