package styler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
)

type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

type editRequest struct {
	Image  string `json:"image"`
	Prompt string `json:"prompt"`
}

//
// --------------------------------------------------
// POST /styler/edit
// --------------------------------------------------
//

func (h *Handler) Edit(c *gin.Context) {
	var req editRequest
	if err := c.ShouldBindJSON(&req); err != nil || req.Image == "" || req.Prompt == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "image and prompt are required"})
		return
	}

	url, err := h.service.Edit(c.Request.Context(), req.Image, req.Prompt)
	if err != nil {
		if errors.Is(err, ErrInvalidImage) {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusBadGateway, gin.H{"error": "image styling failed, try another prompt"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"image_url": url})
}
