package httpserver

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/adpshop/backend/internal/events"
	"github.com/adpshop/backend/internal/service"
	"github.com/adpshop/backend/internal/transport"
	"github.com/adpshop/backend/pkg/logging"
	"github.com/adpshop/backend/pkg/tokens"
)

type AuthHTTP struct {
	Svc       *service.UserService
	JWTSecret []byte
	TokenTTL  time.Duration
	Producer  *events.Producer
}

func (h *AuthHTTP) publish(c echo.Context, key string, event map[string]any) {
	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()
	if err := h.Producer.PublishEvent(ctx, "user_events", key, event); err != nil {
		logging.FromContext(c.Request().Context()).Error("kafka publish error", "error", err)
	}
}

func (h *AuthHTTP) Register(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "auth.register")

	var req transport.RegisterRequest
	if err := c.Bind(&req); err != nil {
		l.Warn("register_error", "status", 400, "reason", "invalid body", "error", err)
		return c.JSON(http.StatusBadRequest, transport.ErrorResponse{Error: "invalid body"})
	}

	user, err := h.Svc.Register(ctx, service.RegisterInput{
		Email:     req.Email,
		Password:  req.Password,
		FirstName: req.FirstName,
		LastName:  req.LastName,
	})
	if err != nil {
		switch {
		case errors.Is(err, service.ErrConflict):
			l.Warn("register_error", "status", 400, "reason", "email already registered")
			return c.JSON(http.StatusBadRequest, transport.ErrorResponse{Error: "Email already registered"})
		case errors.Is(err, service.ErrValidation):
			l.Warn("register_error", "status", 400, "reason", "invalid body", "error", err)
			return c.JSON(http.StatusBadRequest, transport.ErrorResponse{Error: err.Error()})
		default:
			l.Error("register_error", "status", 500, "error", err)
			return c.JSON(http.StatusInternalServerError, transport.MessageResponse{Message: "internal server error"})
		}
	}

	h.publish(c, fmt.Sprint(user.ID), map[string]any{
		"type":    "user_registered",
		"user_id": user.ID,
		"email":   user.Email,
	})

	l.Info("register_success", "user_id", user.ID)
	return c.JSON(http.StatusOK, transport.RegisterResponse{
		Message: "Registration successful",
		User:    user,
	})
}

func (h *AuthHTTP) Login(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "auth.login")

	var req transport.LoginRequest
	if err := c.Bind(&req); err != nil {
		l.Warn("login_error", "status", 400, "reason", "invalid body", "error", err)
		return c.JSON(http.StatusBadRequest, transport.ErrorResponse{Error: "invalid body"})
	}

	user, err := h.Svc.Login(ctx, req.Email, req.Password)
	if err != nil {
		if errors.Is(err, service.ErrUnauthorized) {
			l.Warn("login_error", "status", 400, "reason", "invalid credentials")
			return c.JSON(http.StatusBadRequest, transport.ErrorResponse{Error: "Invalid email or password"})
		}
		l.Error("login_error", "status", 500, "error", err)
		return c.JSON(http.StatusInternalServerError, transport.MessageResponse{Message: "internal server error"})
	}

	token, err := tokens.Issue(h.JWTSecret, user.ID, h.TokenTTL)
	if err != nil {
		l.Error("login_error", "status", 500, "reason", "cannot sign token", "error", err)
		return c.JSON(http.StatusInternalServerError, transport.MessageResponse{Message: "internal server error"})
	}

	l.Info("login_success", "user_id", user.ID)
	return c.JSON(http.StatusOK, transport.LoginResponse{
		Token:   token,
		User:    user,
		Message: "Login successful",
	})
}
