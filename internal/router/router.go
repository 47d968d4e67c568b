package router

import (
	"github.com/gin-gonic/gin"

	"github.com/brewrain/brewrain-backend/config"
	"github.com/brewrain/brewrain-backend/internal/app/controller"
	"github.com/brewrain/brewrain-backend/internal/middleware"
)

type Router struct {
	catalogController *controller.CatalogController
	cartController    *controller.CartController
	orderController   *controller.OrderController
	sessionMiddleware *middleware.SessionMiddleware
	config            *config.Config
}

func NewRouter(
	catalogController *controller.CatalogController,
	cartController *controller.CartController,
	orderController *controller.OrderController,
	sessionMiddleware *middleware.SessionMiddleware,
	cfg *config.Config,
) *Router {
	return &Router{
		catalogController: catalogController,
		cartController:    cartController,
		orderController:   orderController,
		sessionMiddleware: sessionMiddleware,
		config:            cfg,
	}
}

func (r *Router) Setup() *gin.Engine {
	gin.SetMode(r.config.Server.GinMode)

	router := gin.New()

	router.Use(gin.Recovery())
	router.Use(middleware.LoggingMiddleware())
	router.Use(corsMiddleware(r.config.CORS.AllowedOrigins))

	router.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{
			"status":  "healthy",
			"message": r.config.Store.Name + " order API is running",
		})
	})

	v1 := router.Group("/api/v1")
	{
		v1.GET("/catalog", r.catalogController.GetCatalog)

		cart := v1.Group("/cart")
		cart.Use(r.sessionMiddleware.Attach())
		{
			cart.GET("", r.cartController.GetCart)
			cart.POST("", r.cartController.AddToCart)
			cart.PUT("/:id", r.cartController.UpdateCartLine)
			cart.DELETE("/:id", r.cartController.RemoveFromCart)
			cart.DELETE("", r.cartController.ClearCart)
		}

		orders := v1.Group("/orders")
		orders.Use(r.sessionMiddleware.Attach())
		{
			orders.GET("/summary", r.orderController.GetSummary)
			orders.POST("/message", r.orderController.ComposeMessage)
			orders.POST("/receipt", r.orderController.GetReceipt)
		}
	}

	return router
}

func corsMiddleware(allowedOrigins []string) gin.HandlerFunc {
	return func(c *gin.Context) {
		origin := c.GetHeader("Origin")

		allowed := false
		for _, allowedOrigin := range allowedOrigins {
			if origin == allowedOrigin || allowedOrigin == "*" {
				allowed = true
				break
			}
		}

		if allowed {
			c.Writer.Header().Set("Access-Control-Allow-Origin", origin)
		}

		c.Writer.Header().Set("Access-Control-Allow-Credentials", "true")
		c.Writer.Header().Set("Access-Control-Allow-Headers", "Content-Type, Content-Length, Accept-Encoding, X-CSRF-Token, Authorization, accept, origin, Cache-Control, X-Requested-With")
		c.Writer.Header().Set("Access-Control-Allow-Methods", "POST, OPTIONS, GET, PUT, DELETE, PATCH")

		if c.Request.Method == "OPTIONS" {
			c.AbortWithStatus(204)
			return
		}

		c.Next()
	}
}
