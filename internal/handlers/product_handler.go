package handlers

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/gin-gonic/gin"

	"shop-catalog-api/internal/services"
	"shop-catalog-api/pkg/lambda"
)

// ProductHandler handles product-related HTTP requests
type ProductHandler struct {
	productService services.ProductService
}

// NewProductHandler creates a new product handler
func NewProductHandler(productService services.ProductService) *ProductHandler {
	return &ProductHandler{
		productService: productService,
	}
}

// @Summary List products
// @Description Get all catalog items joined with their stock counts
// @Tags products
// @Produce json
// @Success 200 {array} models.ProductWithStock
// @Failure 500 {object} ErrorResponse
// @Router /products [get]
func (h *ProductHandler) ListProducts(c *gin.Context) {
	products, err := h.productService.ListProducts(c.Request.Context())
	if err != nil {
		status, body := newErrorResponse(err)
		c.JSON(status, body)
		return
	}

	c.JSON(http.StatusOK, products)
}

// @Summary Get a product
// @Description Get one catalog item by ID joined with its stock count
// @Tags products
// @Produce json
// @Param id path string true "Product ID"
// @Success 200 {object} models.ProductWithStock
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Router /products/{id} [get]
func (h *ProductHandler) GetProduct(c *gin.Context) {
	product, err := h.productService.GetProduct(c.Request.Context(), c.Param("id"))
	if err != nil {
		status, body := newErrorResponse(err)
		c.JSON(status, body)
		return
	}

	c.JSON(http.StatusOK, product)
}

// @Summary Create a product
// @Description Create a catalog item and its paired stock record
// @Tags products
// @Accept json
// @Produce json
// @Param product body services.CreateProductRequest true "Product data"
// @Success 201 {object} models.ProductWithStock
// @Failure 400 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /products [post]
func (h *ProductHandler) CreateProduct(c *gin.Context) {
	var req services.CreateProductRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{
			Error:   "BadRequest",
			Message: err.Error(),
		})
		return
	}

	product, err := h.productService.CreateProduct(c.Request.Context(), &req)
	if err != nil {
		status, body := newErrorResponse(err)
		c.JSON(status, body)
		return
	}

	c.JSON(http.StatusCreated, product)
}

// HandleList serves GET /products for the Lambda deployment
func (h *ProductHandler) HandleList(ctx context.Context, _ *lambda.Request) (*lambda.Response, error) {
	products, err := h.productService.ListProducts(ctx)
	if err != nil {
		status, body := newErrorResponse(err)
		return lambda.JSONResponse(status, body)
	}

	return lambda.JSONResponse(http.StatusOK, products)
}

// HandleGet serves GET /products/{id} for the Lambda deployment
func (h *ProductHandler) HandleGet(ctx context.Context, req *lambda.Request) (*lambda.Response, error) {
	product, err := h.productService.GetProduct(ctx, req.PathParams["id"])
	if err != nil {
		status, body := newErrorResponse(err)
		return lambda.JSONResponse(status, body)
	}

	return lambda.JSONResponse(http.StatusOK, product)
}

// HandleCreate serves POST /products for the Lambda deployment
func (h *ProductHandler) HandleCreate(ctx context.Context, req *lambda.Request) (*lambda.Response, error) {
	var createReq services.CreateProductRequest
	if err := json.Unmarshal(req.Body, &createReq); err != nil {
		return lambda.JSONResponse(http.StatusBadRequest, ErrorResponse{
			Error:   "BadRequest",
			Message: "invalid request body",
		})
	}

	product, err := h.productService.CreateProduct(ctx, &createReq)
	if err != nil {
		status, body := newErrorResponse(err)
		return lambda.JSONResponse(status, body)
	}

	return lambda.JSONResponse(http.StatusCreated, product)
}
