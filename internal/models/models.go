package models

import "time"

type User struct {
	ID           uint   `gorm:"primaryKey;autoIncrement" json:"id"`
	Email        string `gorm:"uniqueIndex;not null"     json:"email"`
	PasswordHash string `gorm:"not null"                 json:"-"`
	FirstName    string `json:"first_name"`
	LastName     string `json:"last_name"`
}

// Category carries the vendor/category tag used by the distinct-categories
// query, the field is intentionally a plain string, not a separate table.
type Product struct {
	ID            uint      `gorm:"primaryKey;autoIncrement" json:"id"`
	Name          string    `gorm:"not null"                 json:"name"`
	Description   string    `json:"description"`
	Category      string    `gorm:"index"                    json:"category"`
	ReleaseDate   time.Time `json:"release_date"`
	Price         int64     `gorm:"not null"                 json:"price"`
	Brand         string    `json:"brand"`
	Available     bool      `json:"available"`
	StockQuantity uint      `json:"stock_quantity"`
}

// At most one active cart per user, enforced by the unique index over
// (user_id, active). The cart row is reused forever, purchase only clears
// its items.
type Cart struct {
	ID     uint       `gorm:"primaryKey;autoIncrement"               json:"id"`
	UserID uint       `gorm:"uniqueIndex:idx_user_active;not null"   json:"user_id"`
	Active bool       `gorm:"uniqueIndex:idx_user_active;default:true" json:"active"`
	Items  []CartItem `gorm:"constraint:OnDelete:CASCADE"            json:"items"`
}

type CartItem struct {
	ID        uint `gorm:"primaryKey;autoIncrement"                 json:"id"`
	CartID    uint `gorm:"uniqueIndex:idx_cart_product;not null"    json:"cart_id"`
	ProductID uint `gorm:"uniqueIndex:idx_cart_product;not null"    json:"product_id"`
	Quantity  uint `gorm:"default:1;check:quantity>0"               json:"quantity"`
}

func (Cart) TableName() string {
	return "carts"
}

func (CartItem) TableName() string {
	return "cart_items"
}
