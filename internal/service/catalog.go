package service

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"

	"github.com/adpshop/backend/internal/models"
	"github.com/adpshop/backend/internal/repo"
)

type CatalogService struct {
	Repo *repo.GormRepo
}

func (s *CatalogService) GetProducts(ctx context.Context) ([]models.Product, error) {
	return s.Repo.GetProducts(ctx)
}

// GetProduct returns (nil, nil) when no product has the given id, an absent
// product is a normal outcome here, not an error.
func (s *CatalogService) GetProduct(ctx context.Context, id uint) (*models.Product, error) {
	product, err := s.Repo.GetProduct(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return product, nil
}

func (s *CatalogService) CreateProduct(ctx context.Context, prod *models.Product) error {
	if prod.Name == "" {
		return fmt.Errorf("product name required: %w", ErrValidation)
	}
	return s.Repo.CreateProduct(ctx, prod)
}

func (s *CatalogService) GetCategories(ctx context.Context) ([]string, error) {
	return s.Repo.GetCategories(ctx)
}
