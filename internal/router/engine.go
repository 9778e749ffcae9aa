package router

import (
	"os"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

// NewRouter wires the middleware stack and the /v1 route table around
// the handler.
func NewRouter(h *Handler) *gin.Engine {
	if os.Getenv("ENV") == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	engine := gin.Default()

	engine.Use(RequestID())
	engine.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"http://localhost:3000", "http://localhost:8081"},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept", "Authorization", "X-Requested-With", "X-Request-Id"},
		ExposeHeaders:    []string{"Content-Length", "X-Request-Id"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	v1 := engine.Group("/v1")
	{
		v1.GET("/health", h.HealthCheck)

		auth := v1.Group("/auth")
		{
			auth.POST("/register", h.Register)
			auth.POST("/login", h.Login)
		}

		products := v1.Group("/products")
		{
			products.GET("", h.GetProducts)
			products.GET("/:productId", h.GetProductByID)
		}

		users := v1.Group("/users")
		users.Use(RequireAuth(h.Auth))
		{
			users.GET("/:userId", h.GetUser)
			users.PUT("/:userId", h.SetAddress)
		}

		cart := v1.Group("/cart")
		cart.Use(RequireAuth(h.Auth))
		{
			cart.GET("", h.GetCart)
			cart.POST("", h.AddToCart)
			cart.PUT("", h.UpdateCart)
			cart.DELETE("/:productId", h.DeleteFromCart)
			cart.POST("/checkout", h.Checkout)
		}

		analytics := v1.Group("/analytics")
		{
			analytics.GET("/wallets", h.GetWalletSegments)

			aiAnalytics := analytics.Group("/ai")
			{
				aiAnalytics.GET("/spending-report", h.GenerateAISpendingReport)
			}
		}
	}

	return engine
}
