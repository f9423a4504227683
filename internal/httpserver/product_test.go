package httpserver

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/adpshop/backend/internal/models"
	"github.com/adpshop/backend/internal/transport"
)

func TestGetProducts(t *testing.T) {
	t.Parallel()

	env := newTestEnv(t)
	env.createProduct(t, "keyboard", "electronics")
	env.createProduct(t, "mouse", "electronics")

	rec := env.doJSON(t, http.MethodGet, "/api/products", nil)
	require.Equal(t, http.StatusOK, rec.Code)

	var resp []models.Product
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	require.Len(t, resp, 2)
	assert.Equal(t, "keyboard", resp[0].Name)
}

func TestGetProduct_Found(t *testing.T) {
	t.Parallel()

	env := newTestEnv(t)
	prod := env.createProduct(t, "monitor", "electronics")

	rec := env.doJSON(t, http.MethodGet, fmt.Sprintf("/api/product/%d", prod.ID), nil)
	require.Equal(t, http.StatusOK, rec.Code)

	var resp models.Product
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, prod.ID, resp.ID)
}

// Unknown id renders 200 with a JSON null body.
func TestGetProduct_Absent(t *testing.T) {
	t.Parallel()

	env := newTestEnv(t)

	rec := env.doJSON(t, http.MethodGet, "/api/product/9999", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "null", strings.TrimSpace(rec.Body.String()))
}

func TestCreateProduct(t *testing.T) {
	t.Parallel()

	env := newTestEnv(t)

	rec := env.doJSON(t, http.MethodPost, "/api/product", transport.CreateProductRequest{
		Name:          "standing desk",
		Description:   "adjustable",
		Category:      "furniture",
		Price:         49900,
		Brand:         "deskco",
		Available:     true,
		StockQuantity: 10,
	})
	require.Equal(t, http.StatusOK, rec.Code)

	var resp models.Product
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.NotZero(t, resp.ID)
	assert.Equal(t, "standing desk", resp.Name)
	assert.EqualValues(t, 49900, resp.Price)
}

func TestGetCategories(t *testing.T) {
	t.Parallel()

	env := newTestEnv(t)
	for _, category := range []string{"A", "B", "A", "C"} {
		env.createProduct(t, "p-"+category, category)
	}

	rec := env.doJSON(t, http.MethodGet, "/api/categories", nil)
	require.Equal(t, http.StatusOK, rec.Code)

	var resp []string
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.ElementsMatch(t, []string{"A", "B", "C"}, resp)
}
