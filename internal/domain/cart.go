package domain

import "time"

// CartItem is one cart line, keyed by the variant ID. Name, size and
// price are a snapshot taken at add time and are never re-synced against
// the catalog.
type CartItem struct {
	ID        string  `json:"id" bson:"id"`
	ProductID string  `json:"product_id" bson:"product_id"`
	Name      string  `json:"name" bson:"name"`
	Size      string  `json:"size" bson:"size"`
	Price     float64 `json:"price" bson:"price"`
	Quantity  int     `json:"quantity" bson:"quantity"`
}

func (i CartItem) Subtotal() float64 {
	return i.Price * float64(i.Quantity)
}

type Cart struct {
	ID        string     `json:"-" bson:"_id,omitempty"`
	UserID    string     `json:"user_id" bson:"user_id"`
	Items     []CartItem `json:"items" bson:"items"`
	CreatedAt time.Time  `json:"created_at" bson:"created_at"`
	UpdatedAt time.Time  `json:"updated_at" bson:"updated_at"`
}

// TotalItems is the sum of line quantities, recomputed from current state.
func (c *Cart) TotalItems() int {
	total := 0
	for _, item := range c.Items {
		total += item.Quantity
	}
	return total
}

// TotalPrice is the sum of price x quantity over all lines.
func (c *Cart) TotalPrice() float64 {
	total := 0.0
	for _, item := range c.Items {
		total += item.Subtotal()
	}
	return total
}

// AddItem merges into an existing line with the same variant ID, summing
// quantities, else appends a new line.
func (c *Cart) AddItem(item CartItem) {
	for i := range c.Items {
		if c.Items[i].ID == item.ID {
			c.Items[i].Quantity += item.Quantity
			return
		}
	}
	c.Items = append(c.Items, item)
}

// SetQuantity replaces a line's quantity. A quantity of zero or below
// removes the line. Unknown IDs are a no-op.
func (c *Cart) SetQuantity(variantID string, quantity int) {
	if quantity <= 0 {
		c.RemoveItem(variantID)
		return
	}
	for i := range c.Items {
		if c.Items[i].ID == variantID {
			c.Items[i].Quantity = quantity
			return
		}
	}
}

// RemoveItem drops the line with the given variant ID. Unknown IDs are
// a no-op.
func (c *Cart) RemoveItem(variantID string) {
	for i, item := range c.Items {
		if item.ID == variantID {
			c.Items = append(c.Items[:i], c.Items[i+1:]...)
			return
		}
	}
}

// Clear empties the item list.
func (c *Cart) Clear() {
	c.Items = []CartItem{}
}
