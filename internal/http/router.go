package httpx

import (
	"github.com/gin-gonic/gin"

	"github.com/sachinkumar2222/Productr/internal/http/handlers"
	"github.com/sachinkumar2222/Productr/internal/http/middleware"
)

func BuildRouter(ah *handlers.AuthHandlers, ph *handlers.ProductHandlers, authmw *middleware.AuthMW) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())

	r.GET("/health", func(c *gin.Context) { c.JSON(200, gin.H{"ok": true}) })

	auth := r.Group("/api/auth")
	auth.POST("/login", ah.Login)
	auth.POST("/verify-otp", ah.VerifyOTP)

	products := r.Group("/api/products").Use(authmw.WithToken())
	products.POST("/create", ph.Create)
	products.GET("", ph.List)
	products.GET("/:id", ph.Get)
	products.PUT("/:id", ph.Update)
	products.PATCH("/:id/publish", ph.TogglePublish)
	products.DELETE("/:id", ph.Delete)

	return r
}
