package handlers

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"

	"shop-catalog-api/internal/services"
	"shop-catalog-api/pkg/lambda"
)

// UploadURLResponse carries the presigned upload URL issued to the client
type UploadURLResponse struct {
	URL string `json:"url"`
}

// ImportHandler handles CSV import HTTP requests
type ImportHandler struct {
	importService services.ImportService
}

// NewImportHandler creates a new import handler
func NewImportHandler(importService services.ImportService) *ImportHandler {
	return &ImportHandler{
		importService: importService,
	}
}

// @Summary Request an upload URL
// @Description Issue a time-boxed presigned URL for uploading a CSV import file
// @Tags import
// @Produce json
// @Param fileName path string true "Name of the CSV file to upload"
// @Success 200 {object} UploadURLResponse
// @Failure 400 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Security BasicAuth
// @Router /import/{fileName} [get]
func (h *ImportHandler) GetUploadURL(c *gin.Context) {
	target, err := h.importService.IssueUploadURL(c.Request.Context(), c.Param("fileName"))
	if err != nil {
		status, body := newErrorResponse(err)
		c.JSON(status, body)
		return
	}

	c.JSON(http.StatusOK, UploadURLResponse{URL: target.URL})
}

// HandleUploadURL serves GET /import/{fileName} for the Lambda deployment
func (h *ImportHandler) HandleUploadURL(ctx context.Context, req *lambda.Request) (*lambda.Response, error) {
	fileName := req.PathParams["fileName"]
	if fileName == "" {
		fileName = req.QueryParams["fileName"]
	}

	target, err := h.importService.IssueUploadURL(ctx, fileName)
	if err != nil {
		status, body := newErrorResponse(err)
		return lambda.JSONResponse(status, body)
	}

	return lambda.JSONResponse(http.StatusOK, UploadURLResponse{URL: target.URL})
}
