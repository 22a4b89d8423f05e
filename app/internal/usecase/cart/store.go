package cart

import (
	"context"
	"fmt"
	"sync"

	"go.uber.org/zap"

	domcart "example.com/farm-retreat/app/internal/domain/cart"
	"example.com/farm-retreat/app/internal/domain/notice"
)

type Notifier interface {
	Notify(n notice.Notice)
}

// Store is the shopper's cart. Every mutation is written through to the
// persister before it returns; write failures are logged, not returned.
type Store struct {
	mu        sync.Mutex
	items     domcart.Items
	persister domcart.Persister
	notifier  Notifier
	log       *zap.Logger
}

// Open rehydrates the cart from persister. An unreadable or invalid
// record yields an empty cart.
func Open(ctx context.Context, persister domcart.Persister, notifier Notifier, log *zap.Logger) *Store {
	if log == nil {
		log = zap.NewNop()
	}
	items, err := loadItems(ctx, persister)
	if err != nil {
		log.Warn("starting with an empty cart", zap.Error(err))
		items = domcart.Items{}
	}
	return &Store{
		items:     items,
		persister: persister,
		notifier:  notifier,
		log:       log,
	}
}

func loadItems(ctx context.Context, persister domcart.Persister) (domcart.Items, error) {
	items, err := persister.Load(ctx)
	if err != nil {
		return nil, fmt.Errorf("load cart: %w", err)
	}
	if err := items.Validate(); err != nil {
		return nil, fmt.Errorf("load cart: %w", err)
	}
	if items == nil {
		items = domcart.Items{}
	}
	return items, nil
}

// AddItem merges item into the line with the same (product, option) key,
// adding its quantity. The existing line keeps its captured name, price
// and image. The caller guarantees item.Quantity >= 1.
func (s *Store) AddItem(ctx context.Context, item domcart.LineItem) {
	s.mu.Lock()
	next := s.items.Clone()
	if idx := next.Find(item.Key()); idx >= 0 {
		next[idx].Quantity += item.Quantity
	} else {
		next = append(next, item)
	}
	s.commit(ctx, next)
	s.mu.Unlock()

	if s.notifier != nil {
		s.notifier.Notify(notice.Notice{
			Title:       "Added to Cart",
			Description: fmt.Sprintf("%s (%s) has been added to your cart.", item.Name, item.Option),
			Variant:     notice.VariantDefault,
		})
	}
}

func (s *Store) RemoveItem(ctx context.Context, productID int64, option string) {
	s.mutate(ctx, domcart.Key{ProductID: productID, Option: option}, func(items domcart.Items, idx int) domcart.Items {
		return append(items[:idx], items[idx+1:]...)
	})
}

func (s *Store) IncreaseQuantity(ctx context.Context, productID int64, option string) {
	s.mutate(ctx, domcart.Key{ProductID: productID, Option: option}, func(items domcart.Items, idx int) domcart.Items {
		items[idx].Quantity++
		return items
	})
}

// DecreaseQuantity never takes a line below 1; use RemoveItem to drop it.
func (s *Store) DecreaseQuantity(ctx context.Context, productID int64, option string) {
	s.mutate(ctx, domcart.Key{ProductID: productID, Option: option}, func(items domcart.Items, idx int) domcart.Items {
		if items[idx].Quantity > 1 {
			items[idx].Quantity--
		}
		return items
	})
}

func (s *Store) Clear(ctx context.Context) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.commit(ctx, domcart.Items{})
}

// Items returns a copy of the current lines in insertion order.
func (s *Store) Items() domcart.Items {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.items.Clone()
}

func (s *Store) Total() int64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.items.Total()
}

func (s *Store) Count() int64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.items.Count()
}

// mutate applies fn to a copy of the items when key is present.
// Absent keys leave the store untouched.
func (s *Store) mutate(ctx context.Context, key domcart.Key, fn func(items domcart.Items, idx int) domcart.Items) {
	s.mu.Lock()
	defer s.mu.Unlock()

	idx := s.items.Find(key)
	if idx < 0 {
		return
	}
	s.commit(ctx, fn(s.items.Clone(), idx))
}

// commit must be called with s.mu held.
func (s *Store) commit(ctx context.Context, next domcart.Items) {
	s.items = next
	if err := s.persister.Save(ctx, next.Clone()); err != nil {
		s.log.Warn("persist cart failed", zap.Error(err), zap.Int("items", len(next)))
	}
}
