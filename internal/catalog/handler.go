package catalog

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

type Handler struct{}

func NewHandler() *Handler {
	return &Handler{}
}

//
// --------------------------------------------------
// GET /catalog/products?category=gourmet
// --------------------------------------------------
//

func (h *Handler) ListProducts(c *gin.Context) {
	category := c.Query("category")

	if category == "" {
		c.JSON(http.StatusOK, gin.H{"products": Products()})
		return
	}

	items := ProductsByCategory(category)
	if items == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "unknown category"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"products": items})
}

//
// --------------------------------------------------
// GET /catalog/ingredients
// --------------------------------------------------
//

func (h *Handler) ListIngredients(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"ingredients": Ingredients()})
}
