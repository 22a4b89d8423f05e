package product

import (
	"context"
	"strings"

	dom "example.com/farm-retreat/app/internal/domain/product"
)

type Service struct {
	repo dom.Repository
}

func NewService(repo dom.Repository) *Service {
	return &Service{repo: repo}
}

func (s *Service) Create(ctx context.Context, p *dom.Product) (*dom.Product, error) {
	normalize(p)
	return s.repo.Create(ctx, p)
}

// Update replaces every field of the product with id p.ID.
func (s *Service) Update(ctx context.Context, p *dom.Product) (*dom.Product, error) {
	if _, err := s.repo.GetByID(ctx, p.ID); err != nil {
		return nil, err
	}
	normalize(p)
	return s.repo.Update(ctx, p)
}

func (s *Service) Delete(ctx context.Context, id int64) error {
	return s.repo.Delete(ctx, id)
}

func (s *Service) GetByID(ctx context.Context, id int64) (*dom.Product, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *Service) List(ctx context.Context, filter dom.ListFilter) ([]*dom.Product, error) {
	return s.repo.List(ctx, filter)
}

// SeedIfEmpty inserts products only when the catalog has none.
// It returns how many were inserted.
func (s *Service) SeedIfEmpty(ctx context.Context, products []dom.Product) (int, error) {
	n, err := s.repo.Count(ctx)
	if err != nil {
		return 0, err
	}
	if n > 0 {
		return 0, nil
	}
	for i := range products {
		p := products[i]
		if _, err := s.Create(ctx, &p); err != nil {
			return i, err
		}
	}
	return len(products), nil
}

func normalize(p *dom.Product) {
	p.Name = strings.TrimSpace(p.Name)
	p.Category = strings.ToLower(strings.TrimSpace(p.Category))

	options := make([]string, 0, len(p.Options))
	seen := make(map[string]struct{}, len(p.Options))
	for _, opt := range p.Options {
		opt = strings.TrimSpace(opt)
		if opt == "" {
			continue
		}
		if _, dup := seen[opt]; dup {
			continue
		}
		seen[opt] = struct{}{}
		options = append(options, opt)
	}
	p.Options = options
}
