package httpserver

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/adpshop/backend/internal/events"
	"github.com/adpshop/backend/internal/service"
	"github.com/adpshop/backend/internal/transport"
	"github.com/adpshop/backend/pkg/logging"
)

type CartHTTP struct {
	Svc      *service.CartService
	Producer *events.Producer
}

func (h *CartHTTP) publish(c echo.Context, key string, event map[string]any) {
	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()
	if err := h.Producer.PublishEvent(ctx, "cart_events", key, event); err != nil {
		logging.FromContext(c.Request().Context()).Error("kafka publish error", "error", err)
	}
}

func (h *CartHTTP) GetCart(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "cart.get_cart")

	userID, err := parseUintParam(c, "userId")
	if err != nil {
		l.Warn("get_cart_error", "status", 400, "reason", "userId is not an integer", "error", err)
		return echo.NewHTTPError(http.StatusBadRequest, "userId is not an integer")
	}

	cart, err := h.Svc.GetActiveCart(ctx, userID)
	if err != nil {
		if errors.Is(err, service.ErrNotFound) {
			l.Warn("get_cart_error", "status", 404, "reason", "user not found")
			return c.JSON(http.StatusNotFound, transport.ErrorResponse{Error: "User not found"})
		}
		l.Error("get_cart_error", "status", 500, "error", err)
		return c.JSON(http.StatusInternalServerError, transport.MessageResponse{Message: "internal server error"})
	}

	return c.JSON(http.StatusOK, cart)
}

func (h *CartHTTP) AddToCart(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "cart.add_item")

	userID, err := parseUintParam(c, "userId")
	if err != nil {
		l.Warn("add_item_error", "status", 400, "reason", "userId is not an integer", "error", err)
		return echo.NewHTTPError(http.StatusBadRequest, "userId is not an integer")
	}
	productID, err := parseUintParam(c, "productId")
	if err != nil {
		l.Warn("add_item_error", "status", 400, "reason", "productId is not an integer", "error", err)
		return echo.NewHTTPError(http.StatusBadRequest, "productId is not an integer")
	}

	quantity := uint(1)
	if q := c.QueryParam("quantity"); q != "" {
		v, err := strconv.ParseUint(q, 10, 64)
		if err != nil {
			l.Warn("add_item_error", "status", 400, "reason", "quantity is not an integer", "error", err)
			return echo.NewHTTPError(http.StatusBadRequest, "quantity is not an integer")
		}
		quantity = uint(v)
	}

	if err := h.Svc.AddItem(ctx, userID, productID, quantity); err != nil {
		switch {
		case errors.Is(err, service.ErrNotFound):
			l.Warn("add_item_error", "status", 404, "error", err)
			return c.JSON(http.StatusNotFound, transport.ErrorResponse{Error: err.Error()})
		case errors.Is(err, service.ErrValidation):
			l.Warn("add_item_error", "status", 400, "error", err)
			return c.JSON(http.StatusBadRequest, transport.ErrorResponse{Error: err.Error()})
		default:
			l.Error("add_item_error", "status", 500, "error", err)
			return c.JSON(http.StatusInternalServerError, transport.MessageResponse{Message: "internal server error"})
		}
	}

	h.publish(c, fmt.Sprint(userID), map[string]any{
		"type":       "cart_item_added",
		"user_id":    userID,
		"product_id": productID,
		"quantity":   quantity,
	})

	l.Info("add_item_success", "user_id", userID, "product_id", productID)
	return c.NoContent(http.StatusOK)
}

func (h *CartHTTP) RemoveFromCart(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "cart.remove_item")

	itemID, err := parseUintParam(c, "itemId")
	if err != nil {
		l.Warn("remove_item_error", "status", 400, "reason", "itemId is not an integer", "error", err)
		return echo.NewHTTPError(http.StatusBadRequest, "itemId is not an integer")
	}

	if err := h.Svc.RemoveItem(ctx, itemID); err != nil {
		l.Error("remove_item_error", "status", 500, "error", err)
		return c.JSON(http.StatusInternalServerError, transport.MessageResponse{Message: "internal server error"})
	}

	h.publish(c, fmt.Sprint(itemID), map[string]any{
		"type":    "cart_item_removed",
		"item_id": itemID,
	})

	l.Info("remove_item_success", "item_id", itemID)
	return c.NoContent(http.StatusOK)
}

func (h *CartHTTP) Purchase(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "cart.purchase")

	userID, err := parseUintParam(c, "userId")
	if err != nil {
		l.Warn("purchase_error", "status", 400, "reason", "userId is not an integer", "error", err)
		return echo.NewHTTPError(http.StatusBadRequest, "userId is not an integer")
	}

	if err := h.Svc.Purchase(ctx, userID); err != nil {
		switch {
		case errors.Is(err, service.ErrNotFound):
			l.Warn("purchase_error", "status", 404, "reason", "user not found")
			return c.JSON(http.StatusNotFound, transport.ErrorResponse{Error: "User not found"})
		case errors.Is(err, service.ErrEmptyCart):
			l.Warn("purchase_error", "status", 400, "reason", "cart is empty")
			return c.JSON(http.StatusBadRequest, transport.ErrorResponse{Error: "Cart is empty"})
		default:
			l.Error("purchase_error", "status", 500, "error", err)
			return c.JSON(http.StatusInternalServerError, transport.MessageResponse{Message: "Failed to process purchase"})
		}
	}

	h.publish(c, fmt.Sprint(userID), map[string]any{
		"type":    "cart_purchased",
		"user_id": userID,
	})

	l.Info("purchase_success", "user_id", userID)
	return c.NoContent(http.StatusOK)
}
