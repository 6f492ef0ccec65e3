package catalog

import "github.com/InnoXenT9/aqua-earth-order/internal/domain"

// InitialProducts is the stock AquaOrder drink list, seeded into the
// catalog on startup when the table is empty.
var InitialProducts = []domain.Product{
	{
		ID:          "coke-1",
		Name:        "Coca-Cola",
		Description: "Classic and refreshing Coca-Cola.",
		Category:    "Soft Drinks",
		Variants: []domain.Variant{
			{ID: "coke-200", Size: "200ml", Price: 20},
			{ID: "coke-500", Size: "500ml", Price: 40},
		},
	},
	{
		ID:          "pepsi-1",
		Name:        "Pepsi",
		Description: "Bold and refreshing Pepsi cola.",
		Category:    "Soft Drinks",
		Variants: []domain.Variant{
			{ID: "pepsi-200", Size: "200ml", Price: 20},
			{ID: "pepsi-500", Size: "500ml", Price: 40},
		},
	},
	{
		ID:          "jeera-soda-1",
		Name:        "Jeera Soda",
		Description: "Spicy and tangy cumin-flavored soda.",
		Category:    "Soft Drinks",
		Variants: []domain.Variant{
			{ID: "jeera-10", Size: "250ml", Price: 25},
			{ID: "jeera-20", Size: "500ml", Price: 45},
		},
	},
	{
		ID:          "red-bull-1",
		Name:        "Red Bull",
		Description: "The classic energy drink that gives you wings.",
		Category:    "Energy Drinks",
		Variants: []domain.Variant{
			{ID: "red-bull-250", Size: "250ml", Price: 120},
		},
	},
	{
		ID:          "monster-1",
		Name:        "Monster Energy",
		Description: "A popular energy drink with a strong punch.",
		Category:    "Energy Drinks",
		Variants: []domain.Variant{
			{ID: "monster-500", Size: "500ml", Price: 190},
		},
	},
	{
		ID:          "orange-juice-1",
		Name:        "Orange Juice",
		Description: "Freshly squeezed orange juice.",
		Category:    "Juices",
		Variants: []domain.Variant{
			{ID: "orange-250", Size: "250ml", Price: 80},
			{ID: "orange-500", Size: "500ml", Price: 150},
		},
	},
	{
		ID:          "apple-juice-1",
		Name:        "Apple Juice",
		Description: "Sweet and crisp apple juice.",
		Category:    "Juices",
		Variants: []domain.Variant{
			{ID: "apple-250", Size: "250ml", Price: 80},
			{ID: "apple-500", Size: "500ml", Price: 150},
		},
	},
}
