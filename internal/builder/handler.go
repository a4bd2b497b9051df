package builder

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

type quoteRequest struct {
	IngredientIDs []string `json:"ingredient_ids"`
}

//
// --------------------------------------------------
// POST /builder/quote
// --------------------------------------------------
//

func (h *Handler) Quote(c *gin.Context) {
	var req quoteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	total, err := h.service.Quote(req.IngredientIDs)
	if err != nil {
		if errors.Is(err, ErrUnknownIngredient) {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"base_price": BasePrice,
		"total":      total,
	})
}
