package marketplace

func price(v float64) *float64 {
	return &v
}

func defaultItems() []Item {
	return []Item{
		{
			ID:            "market-1",
			Name:          "Premium Whey Protein Isolate",
			Description:   "Ultra-pure whey protein isolate with 25g protein per serving",
			Price:         49.99,
			OriginalPrice: price(59.99),
			Category:      "protein",
			Brand:         "Optimum Nutrition",
			Rating:        4.8,
			Reviews:       3247,
			ImageURL:      "https://images.pexels.com/photos/4162449/pexels-photo-4162449.jpeg?auto=compress&cs=tinysrgb&w=400",
			InStock:       true,
			Features:      []string{"25g Protein", "Low Carb", "Fast Absorption", "Gluten Free"},
		},
		{
			ID:          "market-2",
			Name:        "Organic Spirulina Powder",
			Description: "Premium organic spirulina powder packed with nutrients",
			Price:       24.99,
			Category:    "superfoods",
			Brand:       "Nutrex Hawaii",
			Rating:      4.6,
			Reviews:     1892,
			ImageURL:    "https://images.pexels.com/photos/4162451/pexels-photo-4162451.jpeg?auto=compress&cs=tinysrgb&w=400",
			InStock:     true,
			Features:    []string{"Organic Certified", "Complete Protein", "Rich in Iron"},
		},
		{
			ID:            "market-3",
			Name:          "Advanced Multivitamin Complex",
			Description:   "Comprehensive multivitamin with 25+ essential vitamins and minerals",
			Price:         34.99,
			OriginalPrice: price(44.99),
			Category:      "vitamins",
			Brand:         "Garden of Life",
			Rating:        4.7,
			Reviews:       2156,
			ImageURL:      "https://images.pexels.com/photos/4162452/pexels-photo-4162452.jpeg?auto=compress&cs=tinysrgb&w=400",
			InStock:       true,
			Features:      []string{"25+ Nutrients", "Whole Food Based", "Easy Absorption"},
		},
	}
}

func defaultCategories() []Category {
	return []Category{
		{ID: "all", Name: "All Products"},
		{ID: "supplements", Name: "Supplements"},
		{ID: "protein", Name: "Protein"},
		{ID: "vitamins", Name: "Vitamins"},
		{ID: "superfoods", Name: "Superfoods"},
		{ID: "organic-foods", Name: "Organic Foods"},
	}
}
