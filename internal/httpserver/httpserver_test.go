package httpserver

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/glebarez/sqlite"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/adpshop/backend/internal/models"
	"github.com/adpshop/backend/internal/repo"
	"github.com/adpshop/backend/internal/service"
)

var testSecret = []byte("test-jwt-secret")

type testEnv struct {
	E  *echo.Echo
	DB *gorm.DB

	Users *service.UserService
	Carts *service.CartService
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{TranslateError: true})
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)

	require.NoError(t, db.AutoMigrate(&models.User{}, &models.Product{}, &models.Cart{}, &models.CartItem{}))

	r := &repo.GormRepo{DB: db}
	userSvc := &service.UserService{Repo: r}
	catalogSvc := &service.CatalogService{Repo: r}
	cartSvc := &service.CartService{Repo: r}

	e := echo.New()
	Register(e, &Deps{
		AuthHandler: &AuthHTTP{
			Svc:       userSvc,
			JWTSecret: testSecret,
			TokenTTL:  time.Hour,
		},
		CatalogHandler: &CatalogHTTP{Svc: catalogSvc},
		CartHandler:    &CartHTTP{Svc: cartSvc},
		JWTSecret:      testSecret,
	})

	return &testEnv{E: e, DB: db, Users: userSvc, Carts: cartSvc}
}

func (env *testEnv) doJSON(t *testing.T, method, path string, body any) *httptest.ResponseRecorder {
	t.Helper()

	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}

	req := httptest.NewRequest(method, path, &buf)
	if body != nil {
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	}
	rec := httptest.NewRecorder()
	env.E.ServeHTTP(rec, req)
	return rec
}

func (env *testEnv) registerUser(t *testing.T, email string) *models.User {
	t.Helper()

	user, err := env.Users.Register(context.Background(), service.RegisterInput{
		Email:    email,
		Password: "Secret123",
	})
	require.NoError(t, err)
	return user
}

func (env *testEnv) createProduct(t *testing.T, name, category string) *models.Product {
	t.Helper()

	prod := &models.Product{Name: name, Category: category, Price: 500, Available: true}
	require.NoError(t, env.DB.Create(prod).Error)
	return prod
}
