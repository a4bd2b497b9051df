package checkout

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/JohnyRamonSSousa/Hamburgueira/internal/middleware"
)

type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

func identityFromContext(c *gin.Context) Identity {
	return Identity{
		ID:    c.GetString("userID"),
		Name:  c.GetString("userName"),
		Email: c.GetString("userEmail"),
	}
}

//
// --------------------------------------------------
// POST /checkout
// --------------------------------------------------
//

func (h *Handler) Confirm(c *gin.Context) {
	var req CheckoutRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	order, err := h.service.Confirm(c.Request.Context(), identityFromContext(c), req)
	middleware.RecordOrderOperation("confirm", err == nil)
	if err != nil {
		switch {
		case errors.Is(err, ErrMissingContact),
			errors.Is(err, ErrMissingAddress),
			errors.Is(err, ErrBadPayment),
			errors.Is(err, ErrBadDelivery),
			errors.Is(err, ErrEmptyCart):
			c.JSON(http.StatusUnprocessableEntity, gin.H{"error": err.Error()})
		default:
			c.JSON(http.StatusBadGateway, gin.H{"error": "failed to save order, please try again"})
		}
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"message": "order confirmed",
		"order":   order,
	})
}

//
// --------------------------------------------------
// GET /orders
// --------------------------------------------------
//

func (h *Handler) ListMyOrders(c *gin.Context) {
	userID := c.GetString("userID")

	orders, err := h.service.ListByUser(c.Request.Context(), userID)
	if err != nil {
		c.JSON(http.StatusBadGateway, gin.H{"error": "failed to load orders"})
		return
	}
	if orders == nil {
		orders = []*Order{}
	}

	c.JSON(http.StatusOK, gin.H{"orders": orders})
}

//
// --------------------------------------------------
// GET /admin/orders?limit=50
// --------------------------------------------------
//

func (h *Handler) ListRecentOrders(c *gin.Context) {
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "50"))

	orders, err := h.service.ListRecent(c.Request.Context(), limit)
	if err != nil {
		c.JSON(http.StatusBadGateway, gin.H{"error": "failed to load orders"})
		return
	}
	if orders == nil {
		orders = []*Order{}
	}

	c.JSON(http.StatusOK, gin.H{"orders": orders})
}

//
// --------------------------------------------------
// PATCH /admin/orders/:id/status
// --------------------------------------------------
//

func (h *Handler) UpdateOrderStatus(c *gin.Context) {
	var req struct {
		Status string `json:"status"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	err := h.service.UpdateStatus(c.Request.Context(), c.Param("id"), req.Status)
	middleware.RecordOrderOperation("update_status", err == nil)
	if err != nil {
		switch {
		case errors.Is(err, ErrInvalidStatus):
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		case errors.Is(err, ErrOrderNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
		default:
			c.JSON(http.StatusBadGateway, gin.H{"error": "failed to update order"})
		}
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "order status updated"})
}
