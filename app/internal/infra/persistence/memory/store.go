// Package memory keeps repositories in process memory. Data is lost on
// restart; it backs STORE_DRIVER=memory and quick local runs.
package memory

import (
	"context"
	"slices"
	"strings"
	"sync"

	domcontact "example.com/farm-retreat/app/internal/domain/contact"
	domorder "example.com/farm-retreat/app/internal/domain/order"
	domproduct "example.com/farm-retreat/app/internal/domain/product"
	domuser "example.com/farm-retreat/app/internal/domain/user"
)

type Store struct {
	mu sync.RWMutex

	products  map[int64]domproduct.Product
	orders    map[int64]domorder.Order
	contacts  map[int64]domcontact.Message
	users     map[string]domuser.User
	productID int64
	orderID   int64
	contactID int64
	userID    int64
}

func New() *Store {
	return &Store{
		products: make(map[int64]domproduct.Product),
		orders:   make(map[int64]domorder.Order),
		contacts: make(map[int64]domcontact.Message),
		users:    make(map[string]domuser.User),
	}
}

func (s *Store) PingContext(ctx context.Context) error { return nil }

func (s *Store) Products() *ProductRepository { return &ProductRepository{s: s} }
func (s *Store) Orders() *OrderRepository     { return &OrderRepository{s: s} }
func (s *Store) Contacts() *ContactRepository { return &ContactRepository{s: s} }
func (s *Store) Users() *UserRepository       { return &UserRepository{s: s} }

type ProductRepository struct{ s *Store }

func cloneProduct(p domproduct.Product) *domproduct.Product {
	p.Options = slices.Clone(p.Options)
	return &p
}

func (r *ProductRepository) Create(ctx context.Context, p *domproduct.Product) (*domproduct.Product, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	r.s.productID++
	p.ID = r.s.productID
	r.s.products[p.ID] = *cloneProduct(*p)
	return p, nil
}

func (r *ProductRepository) Update(ctx context.Context, p *domproduct.Product) (*domproduct.Product, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	if _, ok := r.s.products[p.ID]; !ok {
		return nil, domproduct.ErrProductNotFound
	}
	r.s.products[p.ID] = *cloneProduct(*p)
	return p, nil
}

func (r *ProductRepository) Delete(ctx context.Context, id int64) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	if _, ok := r.s.products[id]; !ok {
		return domproduct.ErrProductNotFound
	}
	delete(r.s.products, id)
	return nil
}

func (r *ProductRepository) GetByID(ctx context.Context, id int64) (*domproduct.Product, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	p, ok := r.s.products[id]
	if !ok {
		return nil, domproduct.ErrProductNotFound
	}
	return cloneProduct(p), nil
}

func (r *ProductRepository) List(ctx context.Context, filter domproduct.ListFilter) ([]*domproduct.Product, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	category := strings.ToLower(filter.Category)
	search := strings.ToLower(filter.Search)

	out := []*domproduct.Product{}
	for _, p := range r.s.products {
		if category != "" && p.Category != category {
			continue
		}
		if search != "" && !strings.Contains(strings.ToLower(p.Name), search) {
			continue
		}
		if filter.OnlyActive && !p.Active {
			continue
		}
		out = append(out, cloneProduct(p))
	}
	slices.SortFunc(out, func(a, b *domproduct.Product) int { return int(a.ID - b.ID) })
	return out, nil
}

func (r *ProductRepository) Count(ctx context.Context) (int64, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	return int64(len(r.s.products)), nil
}

type OrderRepository struct{ s *Store }

func cloneOrder(o domorder.Order) *domorder.Order {
	o.Items = slices.Clone(o.Items)
	return &o
}

func (r *OrderRepository) Create(ctx context.Context, o *domorder.Order) (*domorder.Order, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	r.s.orderID++
	o.ID = r.s.orderID
	r.s.orders[o.ID] = *cloneOrder(*o)
	return o, nil
}

func (r *OrderRepository) GetByID(ctx context.Context, id int64) (*domorder.Order, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	o, ok := r.s.orders[id]
	if !ok {
		return nil, domorder.ErrOrderNotFound
	}
	return cloneOrder(o), nil
}

func (r *OrderRepository) List(ctx context.Context) ([]*domorder.Order, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	out := make([]*domorder.Order, 0, len(r.s.orders))
	for _, o := range r.s.orders {
		out = append(out, cloneOrder(o))
	}
	slices.SortFunc(out, func(a, b *domorder.Order) int { return int(b.ID - a.ID) })
	return out, nil
}

type ContactRepository struct{ s *Store }

func (r *ContactRepository) Create(ctx context.Context, m *domcontact.Message) (*domcontact.Message, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	r.s.contactID++
	m.ID = r.s.contactID
	r.s.contacts[m.ID] = *m
	return m, nil
}

type UserRepository struct{ s *Store }

func (r *UserRepository) Create(ctx context.Context, u *domuser.User) (*domuser.User, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	if _, ok := r.s.users[u.Username]; ok {
		return nil, domuser.ErrUsernameTaken
	}
	r.s.userID++
	u.ID = r.s.userID
	r.s.users[u.Username] = *u
	return u, nil
}

func (r *UserRepository) GetByUsername(ctx context.Context, username string) (*domuser.User, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	u, ok := r.s.users[username]
	if !ok {
		return nil, domuser.ErrUserNotFound
	}
	return &u, nil
}
