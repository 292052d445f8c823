package handler

import (
	"html/template"
	"net/http"
	"time"

	"github.com/cloud-wave-best-zizon/storefront-service/internal/service"
	"github.com/cloud-wave-best-zizon/storefront-service/internal/view"
	"github.com/cloud-wave-best-zizon/storefront-service/pkg/middleware"
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type RouterConfig struct {
	Storefront   *service.StorefrontService
	Renderer     *view.Renderer
	Templates    *template.Template
	Logger       *zap.Logger
	AllowOrigins []string
}

func NewRouter(cfg RouterConfig) *gin.Engine {
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(middleware.RequestID(service.RequestIDKey{}))
	router.Use(middleware.Logger(cfg.Logger))
	router.SetHTMLTemplate(cfg.Templates)

	router.StaticFS("/assets", http.FS(view.Assets()))

	NewStorefrontHandler(cfg.Storefront, cfg.Renderer, cfg.Logger).Register(router)

	v1 := router.Group("/api/v1")
	v1.Use(cors.New(cors.Config{
		AllowOrigins:  cfg.AllowOrigins,
		AllowMethods:  []string{"GET", "POST", "DELETE", "OPTIONS"},
		AllowHeaders:  []string{"Origin", "Content-Type", "Accept", AdminTokenHeader, middleware.RequestIDHeader},
		ExposeHeaders: []string{"Content-Length", middleware.RequestIDHeader},
		MaxAge:        12 * time.Hour,
	}))
	NewAPIHandler(cfg.Storefront, cfg.Renderer, cfg.Logger).Register(v1)

	return router
}
