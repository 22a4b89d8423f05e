package product

import "slices"

// Product is a catalog entry. Price is in cents.
type Product struct {
	ID          int64
	Name        string
	Description string
	Benefits    string
	Price       int64
	Category    string
	ImageURL    string
	Options     []string
	Active      bool
}

func (p *Product) HasOption(option string) bool {
	return slices.Contains(p.Options, option)
}

type ListFilter struct {
	Category   string
	Search     string
	OnlyActive bool
}
