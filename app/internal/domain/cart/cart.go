package cart

import (
	"context"
	"errors"
	"strings"

	domproduct "example.com/farm-retreat/app/internal/domain/product"
)

var ErrInvalidQuantity = errors.New("quantity must be at least 1")

// LineItem is one (product, option) row. Name, ImageURL and UnitPrice are
// captured when the item is added and never re-synced with the catalog.
type LineItem struct {
	ProductID int64  `json:"id"`
	Name      string `json:"name"`
	UnitPrice int64  `json:"price"`
	ImageURL  string `json:"imageUrl"`
	Option    string `json:"option"`
	Quantity  int64  `json:"quantity"`
}

type Key struct {
	ProductID int64
	Option    string
}

func (i LineItem) Key() Key {
	return Key{ProductID: i.ProductID, Option: i.Option}
}

func (i LineItem) Subtotal() int64 {
	return i.UnitPrice * i.Quantity
}

// Items keeps insertion order. At most one entry exists per Key.
type Items []LineItem

func (items Items) Total() int64 {
	var total int64
	for _, item := range items {
		total += item.Subtotal()
	}
	return total
}

func (items Items) Count() int64 {
	var n int64
	for _, item := range items {
		n += item.Quantity
	}
	return n
}

// Find returns the index of the line item with key k, or -1.
func (items Items) Find(k Key) int {
	for i, item := range items {
		if item.Key() == k {
			return i
		}
	}
	return -1
}

func (items Items) Clone() Items {
	out := make(Items, len(items))
	copy(out, items)
	return out
}

// FromProduct snapshots a catalog product into a line item.
func FromProduct(p *domproduct.Product, option string, quantity int64) (LineItem, error) {
	if !p.Active {
		return LineItem{}, domproduct.ErrProductInactive
	}
	option = strings.TrimSpace(option)
	if !p.HasOption(option) {
		return LineItem{}, domproduct.ErrUnknownOption
	}
	if quantity < 1 {
		return LineItem{}, ErrInvalidQuantity
	}
	return LineItem{
		ProductID: p.ID,
		Name:      p.Name,
		UnitPrice: p.Price,
		ImageURL:  p.ImageURL,
		Option:    option,
		Quantity:  quantity,
	}, nil
}

// Persister stores the whole item list as one client-local record.
type Persister interface {
	Load(ctx context.Context) (Items, error)
	Save(ctx context.Context, items Items) error
}

var ErrCorruptItems = errors.New("cart record violates line item invariants")

// Validate checks a rehydrated list: positive quantities and unique keys.
func (items Items) Validate() error {
	seen := make(map[Key]struct{}, len(items))
	for _, item := range items {
		if item.Quantity < 1 {
			return ErrCorruptItems
		}
		if _, dup := seen[item.Key()]; dup {
			return ErrCorruptItems
		}
		seen[item.Key()] = struct{}{}
	}
	return nil
}
