package domain

// Variant is a purchasable size/price combination of a product.
// Variant IDs are unique across the whole catalog.
type Variant struct {
	ID    string  `json:"id" bson:"id"`
	Size  string  `json:"size" bson:"size"`
	Price float64 `json:"price" bson:"price"`
}

type Product struct {
	ID          string    `json:"id" bson:"id"`
	Name        string    `json:"name" bson:"name"`
	Description string    `json:"description" bson:"description"`
	Category    string    `json:"category" bson:"category"`
	Variants    []Variant `json:"variants" bson:"variants"`
}
