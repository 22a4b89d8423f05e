package product

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/require"

	domproduct "example.com/farm-retreat/app/internal/domain/product"
)

type mockProductRepository struct {
	products  map[int64]*domproduct.Product
	nextID    int64
	createErr error
	countErr  error
}

func newMockProductRepository() *mockProductRepository {
	return &mockProductRepository{
		products: make(map[int64]*domproduct.Product),
		nextID:   1,
	}
}

func (m *mockProductRepository) Create(ctx context.Context, p *domproduct.Product) (*domproduct.Product, error) {
	if m.createErr != nil {
		return nil, m.createErr
	}
	p.ID = m.nextID
	m.nextID++
	m.products[p.ID] = p
	return p, nil
}

func (m *mockProductRepository) Update(ctx context.Context, p *domproduct.Product) (*domproduct.Product, error) {
	if _, ok := m.products[p.ID]; !ok {
		return nil, domproduct.ErrProductNotFound
	}
	m.products[p.ID] = p
	return p, nil
}

func (m *mockProductRepository) Delete(ctx context.Context, id int64) error {
	if _, ok := m.products[id]; !ok {
		return domproduct.ErrProductNotFound
	}
	delete(m.products, id)
	return nil
}

func (m *mockProductRepository) GetByID(ctx context.Context, id int64) (*domproduct.Product, error) {
	if p, ok := m.products[id]; ok {
		return p, nil
	}
	return nil, domproduct.ErrProductNotFound
}

func (m *mockProductRepository) List(ctx context.Context, filter domproduct.ListFilter) ([]*domproduct.Product, error) {
	var out []*domproduct.Product
	for id := int64(1); id < m.nextID; id++ {
		if p, ok := m.products[id]; ok {
			out = append(out, p)
		}
	}
	return out, nil
}

func (m *mockProductRepository) Count(ctx context.Context) (int64, error) {
	if m.countErr != nil {
		return 0, m.countErr
	}
	return int64(len(m.products)), nil
}

func TestCreate_NormalizesFields(t *testing.T) {
	repo := newMockProductRepository()
	svc := NewService(repo)

	p, err := svc.Create(context.Background(), &domproduct.Product{
		Name:     "  Organic Honey ",
		Category: " Honey",
		Price:    1250,
		Options:  []string{" 250g", "", "500g", "250g"},
		Active:   true,
	})

	require.NoError(t, err)
	require.Equal(t, int64(1), p.ID)
	require.Equal(t, "Organic Honey", p.Name)
	require.Equal(t, "honey", p.Category)
	require.Equal(t, []string{"250g", "500g"}, p.Options)
}

func TestUpdate_ReplacesExisting(t *testing.T) {
	repo := newMockProductRepository()
	svc := NewService(repo)
	_, err := svc.Create(context.Background(), &domproduct.Product{Name: "Eggs", Price: 675, Options: []string{"Dozen"}})
	require.NoError(t, err)

	updated, err := svc.Update(context.Background(), &domproduct.Product{ID: 1, Name: "Fresh Eggs", Price: 700})

	require.NoError(t, err)
	require.Equal(t, "Fresh Eggs", updated.Name)
	require.Equal(t, int64(700), repo.products[1].Price)
	require.Empty(t, repo.products[1].Options)
}

func TestUpdate_NotFound(t *testing.T) {
	svc := NewService(newMockProductRepository())

	_, err := svc.Update(context.Background(), &domproduct.Product{ID: 99, Name: "Ghost"})
	require.ErrorIs(t, err, domproduct.ErrProductNotFound)
}

func TestDelete(t *testing.T) {
	repo := newMockProductRepository()
	svc := NewService(repo)
	_, err := svc.Create(context.Background(), &domproduct.Product{Name: "Jam"})
	require.NoError(t, err)

	require.NoError(t, svc.Delete(context.Background(), 1))
	require.ErrorIs(t, svc.Delete(context.Background(), 1), domproduct.ErrProductNotFound)
}

func TestSeedIfEmpty(t *testing.T) {
	repo := newMockProductRepository()
	svc := NewService(repo)

	n, err := svc.SeedIfEmpty(context.Background(), domproduct.SampleCatalog())
	require.NoError(t, err)
	require.Equal(t, 6, n)
	require.Len(t, repo.products, 6)

	n, err = svc.SeedIfEmpty(context.Background(), domproduct.SampleCatalog())
	require.NoError(t, err)
	require.Zero(t, n)
	require.Len(t, repo.products, 6)
}

func TestSeedIfEmpty_CountError(t *testing.T) {
	repo := newMockProductRepository()
	repo.countErr = errors.New("db down")
	svc := NewService(repo)

	_, err := svc.SeedIfEmpty(context.Background(), domproduct.SampleCatalog())
	require.EqualError(t, err, "db down")
	require.Empty(t, repo.products)
}
