package http

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"reflect"
	"strconv"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"

	domcategory "example.com/farm-retreat/app/internal/domain/category"
	domorder "example.com/farm-retreat/app/internal/domain/order"
	domproduct "example.com/farm-retreat/app/internal/domain/product"
	domuser "example.com/farm-retreat/app/internal/domain/user"
	authuc "example.com/farm-retreat/app/internal/usecase/auth"
	categoryuc "example.com/farm-retreat/app/internal/usecase/category"
	contactuc "example.com/farm-retreat/app/internal/usecase/contact"
	orderuc "example.com/farm-retreat/app/internal/usecase/order"
	productuc "example.com/farm-retreat/app/internal/usecase/product"
)

type Pinger interface {
	PingContext(ctx context.Context) error
}

type API struct {
	authSvc     *authuc.Service
	categorySvc *categoryuc.Service
	productSvc  *productuc.Service
	orderSvc    *orderuc.Service
	contactSvc  *contactuc.Service
	tokenSvc    authuc.TokenService
	store       Pinger
	log         *zap.Logger
	validator   *validator.Validate
}

type Dependencies struct {
	AuthService     *authuc.Service
	CategoryService *categoryuc.Service
	ProductService  *productuc.Service
	OrderService    *orderuc.Service
	ContactService  *contactuc.Service
	// TokenService enables bearer auth on admin routes. Nil leaves them open.
	TokenService authuc.TokenService
	Store        Pinger
	Logger       *zap.Logger
}

func NewAPI(deps Dependencies) *API {
	validate := validator.New()
	validate.RegisterTagNameFunc(func(f reflect.StructField) string {
		name := strings.SplitN(f.Tag.Get("json"), ",", 2)[0]
		if name == "-" || name == "" {
			return f.Name
		}
		return name
	})

	log := deps.Logger
	if log == nil {
		log = zap.NewNop()
	}

	return &API{
		authSvc:     deps.AuthService,
		categorySvc: deps.CategoryService,
		productSvc:  deps.ProductService,
		orderSvc:    deps.OrderService,
		contactSvc:  deps.ContactService,
		tokenSvc:    deps.TokenService,
		store:       deps.Store,
		log:         log,
		validator:   validate,
	}
}

func (a *API) Router() chi.Router {
	r := chi.NewRouter()
	r.Use(chimw.RequestID)
	r.Use(chimw.RealIP)
	r.Use(a.requestLogger)
	r.Use(chimw.Recoverer)

	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
	})
	r.Get("/health/db", a.handleHealthDB)

	r.Route("/api", func(r chi.Router) {
		r.Get("/products", a.handleListProducts)
		r.Get("/products/{id}", a.handleGetProduct)
		r.Get("/categories", a.handleListCategories)
		r.Post("/contact", a.handleSubmitContact)
		r.Post("/orders", a.handlePlaceOrder)

		if a.tokenSvc != nil && a.authSvc != nil {
			r.Post("/auth/login", a.handleLogin)
		}

		r.Group(func(ar chi.Router) {
			ar.Use(a.adminOnly)

			ar.Post("/products", a.handleCreateProduct)
			ar.Patch("/products/{id}", a.handleUpdateProduct)
			ar.Delete("/products/{id}", a.handleDeleteProduct)

			ar.Get("/orders", a.handleListOrders)
			ar.Get("/orders/{id}", a.handleGetOrder)
		})
	})

	return r
}

func (a *API) handleHealthDB(w http.ResponseWriter, r *http.Request) {
	if a.store == nil {
		writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
		return
	}
	ctx, cancel := context.WithTimeout(r.Context(), 2*time.Second)
	defer cancel()
	if err := a.store.PingContext(ctx); err != nil {
		a.log.Error("store ping failed", zap.Error(err))
		respondError(w, http.StatusServiceUnavailable, "store unavailable")
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

func (a *API) decodeAndValidate(r *http.Request, dst any) error {
	defer r.Body.Close()
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		return err
	}
	return a.validator.Struct(dst)
}

func writeJSON(w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(payload)
}

type fieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

type errorResponse struct {
	Message string       `json:"message"`
	Errors  []fieldError `json:"errors,omitempty"`
}

func respondError(w http.ResponseWriter, status int, message string) {
	writeJSON(w, status, errorResponse{Message: message})
}

// respondInvalid answers 400 with one entry per offending field.
func respondInvalid(w http.ResponseWriter, message string, err error) {
	writeJSON(w, http.StatusBadRequest, errorResponse{Message: message, Errors: fieldErrors(err)})
}

func fieldErrors(err error) []fieldError {
	var verrs validator.ValidationErrors
	if errors.As(err, &verrs) {
		out := make([]fieldError, 0, len(verrs))
		for _, fe := range verrs {
			out = append(out, fieldError{
				Field:   fieldPath(fe.Namespace()),
				Message: "failed on " + fe.Tag(),
			})
		}
		return out
	}

	switch {
	case errors.Is(err, domorder.ErrEmptyOrderItems), errors.Is(err, domorder.ErrInvalidItem):
		return []fieldError{{Field: "items", Message: err.Error()}}
	case errors.Is(err, domorder.ErrTotalMismatch):
		return []fieldError{{Field: "total", Message: err.Error()}}
	}
	return []fieldError{{Field: "body", Message: err.Error()}}
}

// fieldPath drops the request struct name: "orderRequest.items[0].name" -> "items[0].name".
func fieldPath(ns string) string {
	if i := strings.IndexByte(ns, '.'); i >= 0 {
		return ns[i+1:]
	}
	return ns
}

func parseIDParam(r *http.Request, key string) (int64, error) {
	idStr := chi.URLParam(r, key)
	return strconv.ParseInt(idStr, 10, 64)
}

func mapProduct(p *domproduct.Product) map[string]any {
	options := p.Options
	if options == nil {
		options = []string{}
	}
	return map[string]any{
		"id":          p.ID,
		"name":        p.Name,
		"description": p.Description,
		"benefits":    p.Benefits,
		"price":       p.Price,
		"category":    p.Category,
		"imageUrl":    p.ImageURL,
		"options":     options,
		"active":      p.Active,
	}
}

func mapCategory(c domcategory.Category) map[string]any {
	return map[string]any{
		"slug": c.Slug,
		"name": c.Name,
	}
}

func mapOrder(o *domorder.Order) map[string]any {
	items := make([]map[string]any, 0, len(o.Items))
	for _, item := range o.Items {
		items = append(items, map[string]any{
			"productId": item.ProductID,
			"name":      item.Name,
			"price":     item.Price,
			"quantity":  item.Quantity,
			"option":    item.Option,
			"imageUrl":  item.ImageURL,
		})
	}

	return map[string]any{
		"id":        o.ID,
		"name":      o.Contact.Name,
		"email":     o.Contact.Email,
		"phone":     o.Contact.Phone,
		"address":   o.Contact.Address,
		"notes":     o.Contact.Notes,
		"total":     o.Total,
		"createdAt": o.CreatedAt,
		"items":     items,
	}
}

func mapUser(u *domuser.User) map[string]any {
	return map[string]any{
		"id":       u.ID,
		"username": u.Username,
	}
}

// handleDomainError maps known domain errors to a status; anything else
// is logged and answered with fallback as a 500.
func (a *API) handleDomainError(w http.ResponseWriter, r *http.Request, err error, fallback string) {
	switch {
	case errors.Is(err, domproduct.ErrProductNotFound):
		respondError(w, http.StatusNotFound, "Product not found")
	case errors.Is(err, domorder.ErrOrderNotFound):
		respondError(w, http.StatusNotFound, "Order not found")
	case errors.Is(err, domorder.ErrEmptyOrderItems),
		errors.Is(err, domorder.ErrInvalidItem),
		errors.Is(err, domorder.ErrTotalMismatch):
		respondInvalid(w, "Invalid order data", err)
	case errors.Is(err, domuser.ErrUnauthorized),
		errors.Is(err, domuser.ErrInvalidCredential):
		respondError(w, http.StatusUnauthorized, "Invalid username or password")
	default:
		a.log.Error(fallback,
			zap.String("request_id", chimw.GetReqID(r.Context())),
			zap.Error(err),
		)
		respondError(w, http.StatusInternalServerError, fallback)
	}
}
