package router

import (
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/JohnyRamonSSousa/Hamburgueira/internal/auth"
	"github.com/JohnyRamonSSousa/Hamburgueira/internal/builder"
	"github.com/JohnyRamonSSousa/Hamburgueira/internal/cart"
	"github.com/JohnyRamonSSousa/Hamburgueira/internal/catalog"
	"github.com/JohnyRamonSSousa/Hamburgueira/internal/checkout"
	"github.com/JohnyRamonSSousa/Hamburgueira/internal/middleware"
	"github.com/JohnyRamonSSousa/Hamburgueira/internal/styler"
)

// Deps carries the feature handlers the router wires up.
// Styler is optional: routes are registered only when it is non-nil.
type Deps struct {
	Auth     *auth.Handler
	Catalog  *catalog.Handler
	Builder  *builder.Handler
	Cart     *cart.Handler
	Checkout *checkout.Handler
	Styler   *styler.Handler
}

func NewRouter(deps Deps) *gin.Engine {
	r := gin.Default()

	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"http://localhost:3000", "http://localhost:5173"},
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	r.Use(middleware.PrometheusMiddleware())
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))

	// Health check route
	r.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "ok"})
	})

	// ───────────────────────── AUTH ─────────────────────────
	authGroup := r.Group("/auth")
	{
		authGroup.POST("/register", deps.Auth.Register)
		authGroup.POST("/login", deps.Auth.Login)
	}

	// ───────────────────────── CATALOG (PUBLIC) ─────────────────────────
	catalogGroup := r.Group("/catalog")
	{
		catalogGroup.GET("/products", deps.Catalog.ListProducts)
		catalogGroup.GET("/ingredients", deps.Catalog.ListIngredients)
	}

	// ───────────────────────── BUILDER (PUBLIC) ─────────────────────────
	r.POST("/builder/quote", deps.Builder.Quote)

	// ───────────────────────── CART ─────────────────────────
	cartGroup := r.Group("/cart")
	cartGroup.Use(middleware.AuthMiddleware())
	{
		cartGroup.GET("", deps.Cart.Get)
		cartGroup.POST("/items", deps.Cart.AddItem)
		cartGroup.POST("/custom", deps.Cart.AddCustom)
		cartGroup.PATCH("/items/:id", deps.Cart.UpdateQuantity)
		cartGroup.DELETE("/items/:id", deps.Cart.RemoveItem)
		cartGroup.DELETE("", deps.Cart.Clear)
	}

	// ───────────────────────── CHECKOUT + ORDERS ─────────────────────────
	protected := r.Group("/")
	protected.Use(middleware.AuthMiddleware())
	{
		protected.POST("/checkout", deps.Checkout.Confirm)
		protected.GET("/orders", deps.Checkout.ListMyOrders)
	}

	// ───────────────────────── ADMIN ─────────────────────────
	admin := r.Group("/admin")
	admin.Use(
		middleware.AuthMiddleware(),
		middleware.RequireRole(auth.RoleAdmin),
	)
	{
		admin.GET("/orders", deps.Checkout.ListRecentOrders)
		admin.PATCH("/orders/:id/status", deps.Checkout.UpdateOrderStatus)
	}

	// ───────────────────────── STYLER ─────────────────────────
	if deps.Styler != nil {
		stylerGroup := r.Group("/styler")
		stylerGroup.Use(middleware.AuthMiddleware())
		{
			stylerGroup.POST("/edit", deps.Styler.Edit)
		}
	}

	return r
}
