package category

import (
	"context"
	"sort"

	dom "example.com/farm-retreat/app/internal/domain/category"
	domproduct "example.com/farm-retreat/app/internal/domain/product"
)

type ProductLister interface {
	List(ctx context.Context, filter domproduct.ListFilter) ([]*domproduct.Product, error)
}

type Service struct {
	products ProductLister
}

func NewService(products ProductLister) *Service {
	return &Service{products: products}
}

// List returns the curated categories followed by any other category
// used by an active product, sorted by slug.
func (s *Service) List(ctx context.Context) ([]dom.Category, error) {
	known := dom.Known()
	seen := make(map[string]struct{}, len(known))
	for _, c := range known {
		seen[c.Slug] = struct{}{}
	}

	products, err := s.products.List(ctx, domproduct.ListFilter{OnlyActive: true})
	if err != nil {
		return nil, err
	}

	var extra []dom.Category
	for _, p := range products {
		if p.Category == "" {
			continue
		}
		if _, ok := seen[p.Category]; ok {
			continue
		}
		seen[p.Category] = struct{}{}
		extra = append(extra, dom.Category{Slug: p.Category, Name: p.Category})
	}
	sort.Slice(extra, func(i, j int) bool { return extra[i].Slug < extra[j].Slug })

	return append(known, extra...), nil
}
