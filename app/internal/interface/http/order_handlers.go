package http

import (
	"net/http"

	domorder "example.com/farm-retreat/app/internal/domain/order"
)

type orderItemRequest struct {
	ProductID int64  `json:"productId" validate:"required,gt=0"`
	Name      string `json:"name" validate:"required"`
	Price     *int64 `json:"price" validate:"required,gte=0"`
	Quantity  int64  `json:"quantity" validate:"required,gte=1"`
	Option    string `json:"option"`
	ImageURL  string `json:"imageUrl"`
}

type orderRequest struct {
	Name    string             `json:"name" validate:"required"`
	Email   string             `json:"email" validate:"omitempty,email"`
	Phone   string             `json:"phone" validate:"required"`
	Address string             `json:"address" validate:"required"`
	Notes   string             `json:"notes"`
	Items   []orderItemRequest `json:"items" validate:"required,min=1,dive"`
	Total   *int64             `json:"total" validate:"required,gte=0"`
}

func (req orderRequest) toPayload() domorder.Payload {
	items := make([]domorder.Item, 0, len(req.Items))
	for _, it := range req.Items {
		items = append(items, domorder.Item{
			ProductID: it.ProductID,
			Name:      it.Name,
			Price:     *it.Price,
			Quantity:  it.Quantity,
			Option:    it.Option,
			ImageURL:  it.ImageURL,
		})
	}
	return domorder.Payload{
		Contact: domorder.Contact{
			Name:    req.Name,
			Email:   req.Email,
			Phone:   req.Phone,
			Address: req.Address,
			Notes:   req.Notes,
		},
		Items: items,
		Total: *req.Total,
	}
}

func (a *API) handlePlaceOrder(w http.ResponseWriter, r *http.Request) {
	var req orderRequest
	if err := a.decodeAndValidate(r, &req); err != nil {
		respondInvalid(w, "Invalid order data", err)
		return
	}

	o, err := a.orderSvc.Place(r.Context(), req.toPayload())
	if err != nil {
		a.handleDomainError(w, r, err, "Error processing order")
		return
	}

	writeJSON(w, http.StatusCreated, map[string]any{
		"message": "Order placed successfully",
		"id":      o.ID,
	})
}

func (a *API) handleListOrders(w http.ResponseWriter, r *http.Request) {
	orders, err := a.orderSvc.List(r.Context())
	if err != nil {
		a.handleDomainError(w, r, err, "Error fetching orders")
		return
	}

	resp := make([]map[string]any, 0, len(orders))
	for _, o := range orders {
		resp = append(resp, mapOrder(o))
	}
	writeJSON(w, http.StatusOK, resp)
}

func (a *API) handleGetOrder(w http.ResponseWriter, r *http.Request) {
	id, err := parseIDParam(r, "id")
	if err != nil {
		respondError(w, http.StatusBadRequest, "Invalid order ID")
		return
	}

	o, err := a.orderSvc.GetByID(r.Context(), id)
	if err != nil {
		a.handleDomainError(w, r, err, "Error fetching order")
		return
	}
	writeJSON(w, http.StatusOK, mapOrder(o))
}
