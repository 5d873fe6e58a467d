package api

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/zvrva/flightlog/internal/domain"
	"github.com/zvrva/flightlog/internal/service/importer"
)

type ImportHandler struct {
	service importer.UseCase
}

func NewImportHandler(service importer.UseCase) *ImportHandler {
	return &ImportHandler{service: service}
}

func (h *ImportHandler) Register(router *gin.RouterGroup) {
	router.POST("/flights/import", h.upload)
}

func (h *ImportHandler) upload(c *gin.Context) {
	ownerID := c.GetHeader("X-Owner-ID")
	if ownerID == "" {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "missing owner"})
		return
	}

	fileHeader, err := c.FormFile("file")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "missing file upload"})
		return
	}
	file, err := fileHeader.Open()
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	defer file.Close()

	report, err := h.service.Import(c.Request.Context(), ownerID, file)
	if err != nil {
		if errors.Is(err, domain.ErrBadHeader) {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusCreated, report)
}
