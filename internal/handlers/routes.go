package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"shop-catalog-api/internal/auth"
	"shop-catalog-api/internal/middleware"
)

// SetupRoutes wires the HTTP surface onto the gin engine. The same handlers
// back the lambda deployment through their Handle* adapters.
func SetupRoutes(router *gin.Engine, products *ProductHandler, imports *ImportHandler, authorizer *auth.Authorizer) {
	router.Use(middleware.RequestID())
	router.Use(middleware.RequestLogger())
	router.Use(middleware.ErrorHandler())
	router.Use(middleware.CORS())
	router.Use(middleware.SecurityHeaders())
	router.Use(middleware.RateLimiter(50, 100))

	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	router.GET("/products", products.ListProducts)
	router.GET("/products/:id", products.GetProduct)
	router.POST("/products", middleware.RequestSizeLimit(1<<20), products.CreateProduct)

	router.GET("/import/:fileName", middleware.BasicAuth(authorizer), imports.GetUploadURL)
}
