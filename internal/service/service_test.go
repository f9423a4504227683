package service

import (
	"context"
	"testing"

	"github.com/glebarez/sqlite"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/adpshop/backend/internal/models"
	"github.com/adpshop/backend/internal/repo"
)

type testEnv struct {
	DB      *gorm.DB
	Repo    *repo.GormRepo
	Users   *UserService
	Catalog *CatalogService
	Carts   *CartService
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{TranslateError: true})
	require.NoError(t, err)

	// a single connection keeps the in-memory database alive and serializes
	// the concurrent-access tests the way a real store's locking would
	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)

	require.NoError(t, db.AutoMigrate(&models.User{}, &models.Product{}, &models.Cart{}, &models.CartItem{}))

	r := &repo.GormRepo{DB: db}
	return &testEnv{
		DB:      db,
		Repo:    r,
		Users:   &UserService{Repo: r},
		Catalog: &CatalogService{Repo: r},
		Carts:   &CartService{Repo: r},
	}
}

func (env *testEnv) createUser(t *testing.T, email string) *models.User {
	t.Helper()

	user, err := env.Users.Register(context.Background(), RegisterInput{
		Email:    email,
		Password: "Secret123",
	})
	require.NoError(t, err)
	return user
}

func (env *testEnv) createProduct(t *testing.T, name, category string) *models.Product {
	t.Helper()

	prod := &models.Product{Name: name, Category: category, Price: 1999, Available: true}
	require.NoError(t, env.Catalog.CreateProduct(context.Background(), prod))
	return prod
}
