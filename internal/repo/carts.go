package repo

import (
	"context"
	"errors"

	"github.com/adpshop/backend/internal/models"
	"gorm.io/gorm"
)

func (r *GormRepo) GetActiveCart(ctx context.Context, userID uint) (*models.Cart, error) {
	var cart models.Cart
	if err := r.DB.WithContext(ctx).
		Preload("Items").
		Where("user_id = ? AND active = ?", userID, true).
		First(&cart).Error; err != nil {
		return nil, err
	}
	if cart.Items == nil {
		cart.Items = []models.CartItem{}
	}
	return &cart, nil
}

func (r *GormRepo) CreateCart(ctx context.Context, cart *models.Cart) error {
	return r.DB.WithContext(ctx).Create(cart).Error
}

// SetItemQuantity replaces the quantity of the (cart, product) line item,
// inserting the line item if it does not exist yet. Runs as one transaction;
// a concurrent insert of the same pair is absorbed by retrying the update
// after the duplicate-key failure.
func (r *GormRepo) SetItemQuantity(ctx context.Context, cartID, productID, quantity uint) error {
	return r.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		res := tx.Model(&models.CartItem{}).
			Where("cart_id = ? AND product_id = ?", cartID, productID).
			Update("quantity", quantity)
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected > 0 {
			return nil
		}

		item := models.CartItem{CartID: cartID, ProductID: productID, Quantity: quantity}
		if err := tx.Create(&item).Error; err != nil {
			if errors.Is(err, gorm.ErrDuplicatedKey) {
				return tx.Model(&models.CartItem{}).
					Where("cart_id = ? AND product_id = ?", cartID, productID).
					Update("quantity", quantity).Error
			}
			return err
		}
		return nil
	})
}

func (r *GormRepo) DeleteItem(ctx context.Context, itemID uint) error {
	return r.DB.WithContext(ctx).Delete(&models.CartItem{}, itemID).Error
}

func (r *GormRepo) ClearCart(ctx context.Context, cartID uint) error {
	return r.DB.WithContext(ctx).
		Where("cart_id = ?", cartID).
		Delete(&models.CartItem{}).Error
}
