package httpserver

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/adpshop/backend/internal/middleware"
)

type Deps struct {
	AuthHandler    *AuthHTTP
	CatalogHandler *CatalogHTTP
	CartHandler    *CartHTTP
	JWTSecret      []byte
}

func Register(e *echo.Echo, d *Deps) {
	e.GET("/health/live", func(c echo.Context) error { return c.NoContent(http.StatusOK) })
	e.GET("/health/ready", func(c echo.Context) error { return c.NoContent(http.StatusOK) })

	api := e.Group("/api", middleware.Identity(d.JWTSecret))

	api.POST("/auth/register", d.AuthHandler.Register)
	api.POST("/auth/login", d.AuthHandler.Login)

	api.GET("/products", d.CatalogHandler.GetProducts)
	api.GET("/product/:id", d.CatalogHandler.GetProduct)
	api.POST("/product", d.CatalogHandler.CreateProduct)
	api.GET("/categories", d.CatalogHandler.GetCategories)

	api.GET("/cart/:userId", d.CartHandler.GetCart)
	api.POST("/cart/:userId/add/:productId", d.CartHandler.AddToCart)
	api.DELETE("/cart/item/:itemId", d.CartHandler.RemoveFromCart)
	api.POST("/cart/:userId/purchase", d.CartHandler.Purchase)
}
