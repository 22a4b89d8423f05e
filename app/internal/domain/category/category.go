package category

// Category groups catalog products. Products refer to it by Slug.
type Category struct {
	Slug string
	Name string
}

// Known lists the storefront's curated categories in display order.
func Known() []Category {
	return []Category{
		{Slug: "honey", Name: "Honey & Bee Products"},
		{Slug: "dairy", Name: "Dairy & Eggs"},
		{Slug: "produce", Name: "Fruits & Vegetables"},
		{Slug: "preserves", Name: "Preserves"},
		{Slug: "oils", Name: "Oils & Vinegars"},
	}
}
