package handler

import (
	"errors"
	"io"
	"net/http"

	"github.com/cloud-wave-best-zizon/storefront-service/internal/domain"
	"github.com/cloud-wave-best-zizon/storefront-service/internal/service"
	"github.com/cloud-wave-best-zizon/storefront-service/internal/state"
	"github.com/cloud-wave-best-zizon/storefront-service/internal/view"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

const AdminTokenHeader = "X-Admin-Token"

type APIHandler struct {
	storefront *service.StorefrontService
	renderer   *view.Renderer
	logger     *zap.Logger
}

func NewAPIHandler(storefront *service.StorefrontService, renderer *view.Renderer, logger *zap.Logger) *APIHandler {
	return &APIHandler{
		storefront: storefront,
		renderer:   renderer,
		logger:     logger,
	}
}

func (h *APIHandler) Register(r gin.IRouter) {
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "healthy"})
	})
	r.GET("/state", h.GetState)
	r.GET("/products", h.ListProducts)
	r.GET("/products/:id", h.GetProduct)
	r.GET("/cart", h.GetCart)
	r.POST("/cart/items", h.AddCartItem)
	r.DELETE("/cart/items/:id", h.RemoveCartItem)
	r.POST("/checkout", h.Checkout)
	r.POST("/admin/login", h.AdminLogin)

	admin := r.Group("/admin", h.requireAdmin)
	{
		admin.POST("/logout", h.AdminLogout)
		admin.GET("/orders", h.ListOrders)
	}
}

// lang honours ?lang= and falls back to the storefront's current language.
func (h *APIHandler) lang(c *gin.Context) domain.Language {
	if l := c.Query("lang"); l != "" {
		return domain.ParseLanguage(l)
	}
	return h.storefront.State().Lang
}

func (h *APIHandler) GetState(c *gin.Context) {
	c.JSON(http.StatusOK, h.renderer.Build(h.storefront.State()))
}

func (h *APIHandler) ListProducts(c *gin.Context) {
	category := domain.Category(c.DefaultQuery("category", string(domain.CategoryAll)))
	lang := h.lang(c)

	products := h.storefront.Catalog().Filter(category)
	response := make([]domain.ProductResponse, 0, len(products))
	for _, p := range products {
		response = append(response, h.productResponse(p, lang))
	}
	c.JSON(http.StatusOK, response)
}

func (h *APIHandler) GetProduct(c *gin.Context) {
	productID := c.Param("id")

	product, err := h.storefront.Product(productID)
	if err != nil {
		if errors.Is(err, service.ErrProductNotFound) {
			c.JSON(http.StatusNotFound, gin.H{
				"error": "Product not found",
			})
			return
		}

		h.logger.Error("Failed to get product",
			zap.String("product_id", productID),
			zap.Error(err))

		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Failed to get product",
		})
		return
	}

	c.JSON(http.StatusOK, h.productResponse(product, h.lang(c)))
}

func (h *APIHandler) GetCart(c *gin.Context) {
	c.JSON(http.StatusOK, h.cartResponse(h.storefront.State(), h.lang(c)))
}

func (h *APIHandler) AddCartItem(c *gin.Context) {
	var req domain.AddCartItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Error("Invalid request", zap.Error(err))
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid request format",
		})
		return
	}

	next := h.storefront.AddToCart(c.Request.Context(), req.ProductID)
	c.JSON(http.StatusOK, h.cartResponse(next, h.lang(c)))
}

func (h *APIHandler) RemoveCartItem(c *gin.Context) {
	next := h.storefront.RemoveFromCart(c.Request.Context(), c.Param("id"))
	c.JSON(http.StatusOK, h.cartResponse(next, h.lang(c)))
}

func (h *APIHandler) Checkout(c *gin.Context) {
	var req domain.CheckoutRequest
	// 배송 정보는 선택 사항, 빈 body는 io.EOF
	if err := c.ShouldBindJSON(&req); err != nil && !errors.Is(err, io.EOF) {
		h.logger.Error("Invalid request", zap.Error(err))
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid request format",
		})
		return
	}

	order, err := h.storefront.Checkout(c.Request.Context(), domain.Customer{
		Name:    req.Name,
		Address: req.Address,
	})
	if err != nil {
		if errors.Is(err, service.ErrEmptyCart) {
			c.JSON(http.StatusBadRequest, gin.H{
				"error": "Cart is empty",
			})
			return
		}

		h.logger.Error("Failed to place order", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Failed to place order",
		})
		return
	}

	c.JSON(http.StatusCreated, order)
}

func (h *APIHandler) AdminLogin(c *gin.Context) {
	var req domain.AdminLoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid request format",
		})
		return
	}

	session, err := h.storefront.AdminLogin(c.Request.Context(), req.Passcode)
	if err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{
			"error": "Incorrect passcode",
		})
		return
	}

	c.JSON(http.StatusOK, session)
}

func (h *APIHandler) AdminLogout(c *gin.Context) {
	if err := h.storefront.AdminLogout(c.Request.Context(), c.GetHeader(AdminTokenHeader)); err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Admin session required"})
		return
	}
	c.Status(http.StatusNoContent)
}

func (h *APIHandler) ListOrders(c *gin.Context) {
	orders, err := h.storefront.Orders(c.GetHeader(AdminTokenHeader))
	if err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Admin session required"})
		return
	}
	c.JSON(http.StatusOK, orders)
}

func (h *APIHandler) requireAdmin(c *gin.Context) {
	if err := h.storefront.Authorize(c.GetHeader(AdminTokenHeader)); err != nil {
		c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Admin session required"})
		return
	}
	c.Next()
}

func (h *APIHandler) productResponse(p domain.Product, lang domain.Language) domain.ProductResponse {
	conv := h.storefront.Converter()
	return domain.ProductResponse{
		ID:            p.ID,
		Name:          p.Name(lang),
		Category:      p.Category,
		PriceUSD:      p.PriceUSD.StringFixed(2),
		Discount:      p.Discount,
		DiscountedUSD: p.DiscountedPriceUSD().StringFixed(2),
		DisplayPrice:  conv.Format(p.DiscountedPriceUSD(), lang),
		Stock:         p.Stock,
		Sizes:         p.Sizes,
		Colors:        p.Colors,
		Images:        p.Images,
	}
}

func (h *APIHandler) cartResponse(s state.State, lang domain.Language) domain.CartResponse {
	conv := h.storefront.Converter()
	catalog := h.storefront.Catalog()

	items := s.Cart.Items(catalog)
	response := domain.CartResponse{
		Items: make([]domain.CartItemResponse, 0, len(items)),
		Count: s.Cart.Count(catalog),
	}
	for _, it := range items {
		response.Items = append(response.Items, domain.CartItemResponse{
			ProductID:    it.Product.ID,
			Name:         it.Product.Name(lang),
			Quantity:     it.Quantity,
			UnitPriceUSD: it.Product.DiscountedPriceUSD().StringFixed(2),
			DisplayPrice: conv.Format(it.LineTotalUSD(), lang),
		})
	}
	total := s.Cart.Total(catalog)
	response.TotalUSD = total.StringFixed(2)
	response.TotalDisplay = conv.Format(total, lang)
	return response
}
