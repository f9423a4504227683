package service

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"

	"github.com/adpshop/backend/internal/models"
	"github.com/adpshop/backend/internal/repo"
	"github.com/adpshop/backend/pkg/logging"
)

type CartService struct {
	Repo *repo.GormRepo
}

// GetActiveCart finds the user's active cart, creating it on first access.
// Idempotent: losing the creation race to a concurrent first access is
// absorbed by re-reading the winner's cart, the unique (user_id, active)
// index guarantees there is exactly one.
func (s *CartService) GetActiveCart(ctx context.Context, userID uint) (*models.Cart, error) {
	cart, err := s.Repo.GetActiveCart(ctx, userID)
	if err == nil {
		return cart, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	if _, err := s.Repo.GetUserByID(ctx, userID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("user not found: %w", ErrNotFound)
		}
		return nil, err
	}

	cart = &models.Cart{UserID: userID, Active: true, Items: []models.CartItem{}}
	if err := s.Repo.CreateCart(ctx, cart); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return s.Repo.GetActiveCart(ctx, userID)
		}
		return nil, err
	}
	return cart, nil
}

// AddItem sets the quantity of the product's line item in the user's active
// cart. An existing line item has its quantity replaced, not incremented.
func (s *CartService) AddItem(ctx context.Context, userID, productID, quantity uint) error {
	if quantity == 0 {
		return fmt.Errorf("quantity must be positive: %w", ErrValidation)
	}

	cart, err := s.GetActiveCart(ctx, userID)
	if err != nil {
		return err
	}

	if _, err := s.Repo.GetProduct(ctx, productID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return fmt.Errorf("product not found: %w", ErrNotFound)
		}
		return err
	}

	return s.Repo.SetItemQuantity(ctx, cart.ID, productID, quantity)
}

// RemoveItem deletes a line item by its own id. A missing id is a no-op.
func (s *CartService) RemoveItem(ctx context.Context, itemID uint) error {
	return s.Repo.DeleteItem(ctx, itemID)
}

// Purchase empties the active cart. The cart row itself stays around and is
// reused by later adds. A concurrent AddItem may land an item right after
// the clear, that is the documented last-write-wins race.
func (s *CartService) Purchase(ctx context.Context, userID uint) error {
	l := logging.FromContext(ctx).With("svc", "cart.purchase", "user_id", userID)

	cart, err := s.GetActiveCart(ctx, userID)
	if err != nil {
		return err
	}
	if len(cart.Items) == 0 {
		return fmt.Errorf("nothing to purchase: %w", ErrEmptyCart)
	}

	if err := s.Repo.ClearCart(ctx, cart.ID); err != nil {
		return err
	}

	l.Info("cart purchased", "cart_id", cart.ID, "items", len(cart.Items))
	return nil
}
