package handler

import (
	"net/http"

	"github.com/cloud-wave-best-zizon/storefront-service/internal/domain"
	"github.com/cloud-wave-best-zizon/storefront-service/internal/service"
	"github.com/cloud-wave-best-zizon/storefront-service/internal/state"
	"github.com/cloud-wave-best-zizon/storefront-service/internal/view"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// StorefrontHandler serves the HTML UI. Every POST is one user event followed
// by a redirect back to the page.
type StorefrontHandler struct {
	storefront *service.StorefrontService
	renderer   *view.Renderer
	logger     *zap.Logger
}

func NewStorefrontHandler(storefront *service.StorefrontService, renderer *view.Renderer, logger *zap.Logger) *StorefrontHandler {
	return &StorefrontHandler{
		storefront: storefront,
		renderer:   renderer,
		logger:     logger,
	}
}

func (h *StorefrontHandler) Register(r gin.IRouter) {
	r.GET("/", h.Render)

	ui := r.Group("/ui")
	{
		ui.POST("/language", h.event(func(*gin.Context) state.Event { return state.ToggleLanguage{} }))
		ui.POST("/category", h.event(func(c *gin.Context) state.Event {
			return state.SelectCategory{Category: domain.Category(c.PostForm("category"))}
		}))
		ui.POST("/products/:id", h.event(func(c *gin.Context) state.Event { return state.SelectProduct{ID: c.Param("id")} }))
		ui.POST("/home", h.event(func(*gin.Context) state.Event { return state.GoHome{} }))
		ui.POST("/cart/open", h.event(func(*gin.Context) state.Event { return state.OpenCart{} }))
		ui.POST("/cart/close", h.event(func(*gin.Context) state.Event { return state.CloseCart{} }))
		ui.POST("/cart/items/:id/add", h.event(func(c *gin.Context) state.Event { return state.AddToCart{ID: c.Param("id")} }))
		ui.POST("/cart/items/:id/remove", h.event(func(c *gin.Context) state.Event { return state.RemoveFromCart{ID: c.Param("id")} }))
		ui.POST("/checkout", h.event(func(*gin.Context) state.Event { return state.ProceedToCheckout{} }))
		ui.POST("/checkout/confirm", h.event(func(c *gin.Context) state.Event {
			return state.ConfirmOrder{Customer: domain.Customer{
				Name:    c.PostForm("name"),
				Address: c.PostForm("address"),
			}}
		}))
		ui.POST("/admin", h.event(func(*gin.Context) state.Event { return state.OpenAdmin{} }))
		ui.POST("/admin/login", h.event(func(c *gin.Context) state.Event {
			return state.SubmitPasscode{Passcode: c.PostForm("passcode")}
		}))
		ui.POST("/admin/cancel", h.event(func(*gin.Context) state.Event { return state.CloseAdminLogin{} }))
		ui.POST("/admin/logout", h.event(func(*gin.Context) state.Event { return state.Logout{} }))
	}
}

func (h *StorefrontHandler) Render(c *gin.Context) {
	page := h.renderer.Build(h.storefront.State())
	c.HTML(http.StatusOK, "base", page)
}

func (h *StorefrontHandler) event(build func(*gin.Context) state.Event) gin.HandlerFunc {
	return func(c *gin.Context) {
		h.storefront.Dispatch(c.Request.Context(), build(c))
		c.Redirect(http.StatusSeeOther, "/")
	}
}
