package model

// Product represents a sellable item in the catalogue.
type Product struct {
	ID          int      `json:"id"`
	Name        string   `json:"name"`
	Price       float64  `json:"price"`
	Category    string   `json:"category"`
	Image       string   `json:"image"`
	Description string   `json:"description"`
	Rating      float64  `json:"rating"`
	Reviews     int      `json:"reviews"`
	Features    []string `json:"features"`
}

// Clone returns a deep copy of the product.
func (p Product) Clone() Product {
	c := p
	if p.Features != nil {
		c.Features = make([]string, len(p.Features))
		copy(c.Features, p.Features)
	}
	return c
}

// CartLine is a product in the shopping cart together with its quantity.
// The product fields are embedded so the serialised shape stays flat,
// matching the snapshot layout: all product fields plus "quantity".
type CartLine struct {
	Product
	Quantity int `json:"quantity"`
}

// Clone returns a deep copy of the cart line.
func (l CartLine) Clone() CartLine {
	return CartLine{Product: l.Product.Clone(), Quantity: l.Quantity}
}

// CloneLines deep-copies a slice of cart lines. Orders hold their own copy
// of the purchased lines, so later cart mutation never reaches into a
// placed order.
func CloneLines(lines []CartLine) []CartLine {
	if lines == nil {
		return nil
	}
	out := make([]CartLine, len(lines))
	for i, l := range lines {
		out[i] = l.Clone()
	}
	return out
}
