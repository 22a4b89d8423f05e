package order

import (
	"time"

	domcart "example.com/farm-retreat/app/internal/domain/cart"
)

type Contact struct {
	Name    string `json:"name"`
	Email   string `json:"email,omitempty"`
	Phone   string `json:"phone"`
	Address string `json:"address"`
	Notes   string `json:"notes,omitempty"`
}

type Item struct {
	ProductID int64  `json:"productId"`
	Name      string `json:"name"`
	Price     int64  `json:"price"`
	Quantity  int64  `json:"quantity"`
	Option    string `json:"option"`
	ImageURL  string `json:"imageUrl"`
}

// Payload is what the storefront submits for a new order. It is a
// snapshot: it shares no memory with the cart it was built from.
type Payload struct {
	Contact
	Items []Item `json:"items"`
	Total int64  `json:"total"`
}

func NewPayload(contact Contact, items domcart.Items) Payload {
	out := make([]Item, 0, len(items))
	for _, it := range items {
		out = append(out, Item{
			ProductID: it.ProductID,
			Name:      it.Name,
			Price:     it.UnitPrice,
			Quantity:  it.Quantity,
			Option:    it.Option,
			ImageURL:  it.ImageURL,
		})
	}
	return Payload{
		Contact: contact,
		Items:   out,
		Total:   items.Total(),
	}
}

// ItemsTotal recomputes the total from the payload's own items.
func (p Payload) ItemsTotal() int64 {
	var total int64
	for _, it := range p.Items {
		total += it.Price * it.Quantity
	}
	return total
}

type Order struct {
	ID        int64
	Contact   Contact
	Items     []Item
	Total     int64
	CreatedAt time.Time
}
