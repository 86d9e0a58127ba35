package app

import (
	"context"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/sachinkumar2222/Productr/internal/config"
	httpx "github.com/sachinkumar2222/Productr/internal/http"
	"github.com/sachinkumar2222/Productr/internal/http/handlers"
	"github.com/sachinkumar2222/Productr/internal/http/middleware"
)

func Run(cfg *config.Config) error {
	if cfg.GinMode != "" {
		gin.SetMode(cfg.GinMode)
	}

	container, err := NewContainer(cfg)
	if err != nil {
		return err
	}
	defer container.Close()

	if err := container.RedisClient.Ping(context.Background()).Err(); err != nil {
		return err
	}

	authH := handlers.NewAuthHandlers(container.OTPSvc)
	productH := handlers.NewProductHandlers(container.ProductSvc)
	authMW := middleware.NewAuthMW(container.TokenSvc)

	r := httpx.BuildRouter(authH, productH, authMW)

	addr := ":" + cfg.Port
	log.Printf("listening on %s", addr)
	return http.ListenAndServe(addr, r)
}
