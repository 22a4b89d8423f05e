package product

// SampleCatalog is the farm's starter catalog, inserted into an empty store.
func SampleCatalog() []Product {
	return []Product{
		{
			Name:        "Organic Honey",
			Description: "Raw, unfiltered honey from our own beehives, collected with care to preserve all natural benefits.",
			Benefits:    "Rich in antioxidants and has antibacterial properties. Local honey may help with seasonal allergies.",
			Price:       1250,
			Category:    "honey",
			ImageURL:    "https://images.unsplash.com/photo-1589927986089-35812388d1f4",
			Options:     []string{"250g", "500g", "1kg"},
			Active:      true,
		},
		{
			Name:        "Farm Fresh Eggs",
			Description: "Free-range eggs from our pasture-raised chickens fed with organic grains.",
			Benefits:    "Higher in omega-3 fatty acids and vitamin E than conventional eggs.",
			Price:       675,
			Category:    "dairy",
			ImageURL:    "https://images.unsplash.com/photo-1598965675045-45c5e72c7d05",
			Options:     []string{"Half Dozen", "Dozen", "Tray (30)"},
			Active:      true,
		},
		{
			Name:        "Homemade Jams",
			Description: "Preserves made from our seasonal fruits, with no artificial additives.",
			Benefits:    "Made with organic fruit and less sugar than commercial jams.",
			Price:       895,
			Category:    "preserves",
			ImageURL:    "https://images.unsplash.com/photo-1607257884360-bc74cba4a419",
			Options:     []string{"Strawberry", "Mixed Berry", "Apricot", "Fig"},
			Active:      true,
		},
		{
			Name:        "Seasonal Vegetables",
			Description: "Freshly harvested seasonal vegetables grown with sustainable farming practices.",
			Benefits:    "Harvested at peak ripeness. Zero pesticides or chemicals.",
			Price:       2450,
			Category:    "produce",
			ImageURL:    "https://images.unsplash.com/photo-1573246123716-6b1782bfc499",
			Options:     []string{"5kg", "10kg", "15kg"},
			Active:      true,
		},
		{
			Name:        "Extra Virgin Olive Oil",
			Description: "Cold-pressed olive oil from our grove, rich in flavor and natural antioxidants.",
			Benefits:    "High in monounsaturated fats and antioxidants.",
			Price:       1875,
			Category:    "oils",
			ImageURL:    "https://images.unsplash.com/photo-1474979266404-7eaacbcd87c5",
			Options:     []string{"250ml", "500ml", "1L"},
			Active:      true,
		},
		{
			Name:        "Artisanal Cheese",
			Description: "Traditional handcrafted cheese made from our farm's milk.",
			Benefits:    "Rich in calcium and protein. Natural aging enhances flavor.",
			Price:       1625,
			Category:    "dairy",
			ImageURL:    "https://images.unsplash.com/photo-1486297678162-eb2a19b0a32d",
			Options:     []string{"Fresh", "Aged", "Herb-infused"},
			Active:      true,
		},
	}
}
