package http

import (
	"net/http"
	"strconv"

	"go.uber.org/zap"

	domproduct "example.com/farm-retreat/app/internal/domain/product"
)

type productRequest struct {
	Name        string   `json:"name" validate:"required"`
	Description string   `json:"description"`
	Benefits    string   `json:"benefits"`
	Price       *int64   `json:"price" validate:"required,gte=0"`
	Category    string   `json:"category" validate:"required"`
	ImageURL    string   `json:"imageUrl"`
	Options     []string `json:"options" validate:"required,dive,required"`
	Active      *bool    `json:"active"`
}

func (req productRequest) toDomain(id int64) *domproduct.Product {
	active := true
	if req.Active != nil {
		active = *req.Active
	}
	return &domproduct.Product{
		ID:          id,
		Name:        req.Name,
		Description: req.Description,
		Benefits:    req.Benefits,
		Price:       *req.Price,
		Category:    req.Category,
		ImageURL:    req.ImageURL,
		Options:     req.Options,
		Active:      active,
	}
}

func (a *API) handleListProducts(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	filter := domproduct.ListFilter{
		Category: q.Get("category"),
		Search:   q.Get("q"),
	}
	if active, err := strconv.ParseBool(q.Get("active")); err == nil {
		filter.OnlyActive = active
	}

	products, err := a.productSvc.List(r.Context(), filter)
	if err != nil {
		a.handleDomainError(w, r, err, "Error fetching products")
		return
	}

	resp := make([]map[string]any, 0, len(products))
	for _, p := range products {
		resp = append(resp, mapProduct(p))
	}
	writeJSON(w, http.StatusOK, resp)
}

func (a *API) handleGetProduct(w http.ResponseWriter, r *http.Request) {
	id, err := parseIDParam(r, "id")
	if err != nil {
		respondError(w, http.StatusBadRequest, "Invalid product ID")
		return
	}
	p, err := a.productSvc.GetByID(r.Context(), id)
	if err != nil {
		a.handleDomainError(w, r, err, "Error fetching product")
		return
	}
	writeJSON(w, http.StatusOK, mapProduct(p))
}

func (a *API) handleCreateProduct(w http.ResponseWriter, r *http.Request) {
	var req productRequest
	if err := a.decodeAndValidate(r, &req); err != nil {
		respondInvalid(w, "Invalid product data", err)
		return
	}

	p, err := a.productSvc.Create(r.Context(), req.toDomain(0))
	if err != nil {
		a.handleDomainError(w, r, err, "Error creating product")
		return
	}
	writeJSON(w, http.StatusCreated, mapProduct(p))
}

func (a *API) handleUpdateProduct(w http.ResponseWriter, r *http.Request) {
	id, err := parseIDParam(r, "id")
	if err != nil {
		respondError(w, http.StatusBadRequest, "Invalid product ID")
		return
	}

	var req productRequest
	if err := a.decodeAndValidate(r, &req); err != nil {
		respondInvalid(w, "Invalid product data", err)
		return
	}

	p, err := a.productSvc.Update(r.Context(), req.toDomain(id))
	if err != nil {
		a.handleDomainError(w, r, err, "Error updating product")
		return
	}
	writeJSON(w, http.StatusOK, mapProduct(p))
}

func (a *API) handleDeleteProduct(w http.ResponseWriter, r *http.Request) {
	id, err := parseIDParam(r, "id")
	if err != nil {
		respondError(w, http.StatusBadRequest, "Invalid product ID")
		return
	}

	if err := a.productSvc.Delete(r.Context(), id); err != nil {
		a.handleDomainError(w, r, err, "Error deleting product")
		return
	}

	fields := []zap.Field{zap.Int64("product_id", id)}
	if u := getAuthUser(r.Context()); u != nil {
		fields = append(fields, zap.String("by", u.Username))
	}
	a.log.Info("product deleted", fields...)

	writeJSON(w, http.StatusOK, map[string]string{"message": "Product deleted successfully"})
}

func (a *API) handleListCategories(w http.ResponseWriter, r *http.Request) {
	categories, err := a.categorySvc.List(r.Context())
	if err != nil {
		a.handleDomainError(w, r, err, "Error fetching categories")
		return
	}

	resp := make([]map[string]any, 0, len(categories))
	for _, c := range categories {
		resp = append(resp, mapCategory(c))
	}
	writeJSON(w, http.StatusOK, resp)
}
