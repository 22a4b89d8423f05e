package http

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/require"
)

func newProductBody() map[string]any {
	return map[string]any{
		"name":        "Lavender Soap",
		"description": "Cold-process soap with lavender from the garden.",
		"benefits":    "Gentle on skin.",
		"price":       550,
		"category":    "Bath",
		"imageUrl":    "https://example.com/soap.jpg",
		"options":     []string{"Single", "Pack of 3"},
	}
}

func TestListProducts(t *testing.T) {
	env := newTestEnv(t)

	rec := env.do(t, http.MethodGet, "/api/products", nil)
	require.Equal(t, http.StatusOK, rec.Code)

	products := decodeBody[[]map[string]any](t, rec)
	require.Len(t, products, 6)
	require.Equal(t, "Organic Honey", products[0]["name"])
	require.EqualValues(t, 1250, products[0]["price"])
	require.Contains(t, products[0], "imageUrl")
	require.Equal(t, true, products[0]["active"])
}

func TestListProducts_Filters(t *testing.T) {
	env := newTestEnv(t)

	rec := env.do(t, http.MethodGet, "/api/products?category=dairy", nil)
	require.Len(t, decodeBody[[]map[string]any](t, rec), 2)

	rec = env.do(t, http.MethodGet, "/api/products?q=jam", nil)
	require.Len(t, decodeBody[[]map[string]any](t, rec), 1)

	rec = env.do(t, http.MethodGet, "/api/products?category=wool", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	require.JSONEq(t, `[]`, rec.Body.String())
}

func TestGetProduct(t *testing.T) {
	env := newTestEnv(t)

	rec := env.do(t, http.MethodGet, "/api/products/2", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	require.Equal(t, "Farm Fresh Eggs", decodeBody[map[string]any](t, rec)["name"])

	rec = env.do(t, http.MethodGet, "/api/products/abc", nil)
	require.Equal(t, http.StatusBadRequest, rec.Code)
	require.JSONEq(t, `{"message":"Invalid product ID"}`, rec.Body.String())

	rec = env.do(t, http.MethodGet, "/api/products/99", nil)
	require.Equal(t, http.StatusNotFound, rec.Code)
	require.JSONEq(t, `{"message":"Product not found"}`, rec.Body.String())
}

func TestCreateProduct(t *testing.T) {
	env := newTestEnv(t)

	rec := env.do(t, http.MethodPost, "/api/products", newProductBody())
	require.Equal(t, http.StatusCreated, rec.Code)

	created := decodeBody[map[string]any](t, rec)
	require.EqualValues(t, 7, created["id"])
	require.Equal(t, "bath", created["category"])
	require.Equal(t, true, created["active"])
}

func TestCreateProduct_Invalid(t *testing.T) {
	env := newTestEnv(t)
	body := newProductBody()
	delete(body, "price")
	body["name"] = ""

	rec := env.do(t, http.MethodPost, "/api/products", body)
	require.Equal(t, http.StatusBadRequest, rec.Code)

	resp := decodeBody[errorResponse](t, rec)
	require.Equal(t, "Invalid product data", resp.Message)
	var fields []string
	for _, fe := range resp.Errors {
		fields = append(fields, fe.Field)
	}
	require.ElementsMatch(t, []string{"name", "price"}, fields)

	rec = env.do(t, http.MethodPost, "/api/products", "{not json")
	require.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestUpdateProduct(t *testing.T) {
	env := newTestEnv(t)
	body := newProductBody()
	body["active"] = false

	rec := env.do(t, http.MethodPatch, "/api/products/1", body)
	require.Equal(t, http.StatusOK, rec.Code)
	updated := decodeBody[map[string]any](t, rec)
	require.Equal(t, "Lavender Soap", updated["name"])
	require.Equal(t, false, updated["active"])

	rec = env.do(t, http.MethodPatch, "/api/products/99", body)
	require.Equal(t, http.StatusNotFound, rec.Code)

	rec = env.do(t, http.MethodPatch, "/api/products/x", body)
	require.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestDeleteProduct(t *testing.T) {
	env := newTestEnv(t)

	rec := env.do(t, http.MethodDelete, "/api/products/3", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	require.JSONEq(t, `{"message":"Product deleted successfully"}`, rec.Body.String())

	rec = env.do(t, http.MethodDelete, "/api/products/3", nil)
	require.Equal(t, http.StatusNotFound, rec.Code)
}

func TestListCategories(t *testing.T) {
	env := newTestEnv(t)
	env.do(t, http.MethodPost, "/api/products", newProductBody())

	rec := env.do(t, http.MethodGet, "/api/categories", nil)
	require.Equal(t, http.StatusOK, rec.Code)

	categories := decodeBody[[]map[string]string](t, rec)
	require.Len(t, categories, 6)
	require.Equal(t, "honey", categories[0]["slug"])
	require.Equal(t, "bath", categories[5]["slug"])
}
