package cart

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/JohnyRamonSSousa/Hamburgueira/internal/builder"
)

type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

func cartResponse(c *Cart) gin.H {
	return gin.H{
		"items":    c.Items,
		"count":    c.Count(),
		"subtotal": c.Subtotal(),
		"discount": c.Discount(),
		"total":    c.Total(),
	}
}

//
// --------------------------------------------------
// GET /cart
// --------------------------------------------------
//

func (h *Handler) Get(c *gin.Context) {
	userID := c.GetString("userID")

	crt, err := h.service.Get(c.Request.Context(), userID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to load cart"})
		return
	}

	c.JSON(http.StatusOK, cartResponse(crt))
}

//
// --------------------------------------------------
// POST /cart/items
// --------------------------------------------------
//

func (h *Handler) AddItem(c *gin.Context) {
	userID := c.GetString("userID")

	var req struct {
		ProductID string `json:"product_id"`
	}
	if err := c.ShouldBindJSON(&req); err != nil || req.ProductID == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	crt, err := h.service.AddProduct(c.Request.Context(), userID, req.ProductID)
	if err != nil {
		if errors.Is(err, ErrProductNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to update cart"})
		return
	}

	c.JSON(http.StatusOK, cartResponse(crt))
}

//
// --------------------------------------------------
// POST /cart/custom
// --------------------------------------------------
//

func (h *Handler) AddCustom(c *gin.Context) {
	userID := c.GetString("userID")

	var req struct {
		IngredientIDs []string `json:"ingredient_ids"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	crt, err := h.service.AddCustom(c.Request.Context(), userID, req.IngredientIDs)
	if err != nil {
		switch {
		case errors.Is(err, builder.ErrMissingRequired),
			errors.Is(err, builder.ErrUnknownIngredient),
			errors.Is(err, builder.ErrEmptySelection):
			c.JSON(http.StatusUnprocessableEntity, gin.H{"error": err.Error()})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to update cart"})
		}
		return
	}

	c.JSON(http.StatusOK, cartResponse(crt))
}

//
// --------------------------------------------------
// PATCH /cart/items/:id
// --------------------------------------------------
//

func (h *Handler) UpdateQuantity(c *gin.Context) {
	userID := c.GetString("userID")
	itemID := c.Param("id")

	var req struct {
		Delta int `json:"delta"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	crt, err := h.service.UpdateQuantity(c.Request.Context(), userID, itemID, req.Delta)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to update cart"})
		return
	}

	c.JSON(http.StatusOK, cartResponse(crt))
}

//
// --------------------------------------------------
// DELETE /cart/items/:id
// --------------------------------------------------
//

func (h *Handler) RemoveItem(c *gin.Context) {
	userID := c.GetString("userID")

	crt, err := h.service.Remove(c.Request.Context(), userID, c.Param("id"))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to update cart"})
		return
	}

	c.JSON(http.StatusOK, cartResponse(crt))
}

//
// --------------------------------------------------
// DELETE /cart
// --------------------------------------------------
//

func (h *Handler) Clear(c *gin.Context) {
	userID := c.GetString("userID")

	if err := h.service.Clear(c.Request.Context(), userID); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to clear cart"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "cart cleared"})
}
