package catalog

// Product is one sellable item as loaded from the catalog API.
// Products are immutable for the lifetime of a session once cached.
type Product struct {
	ID          string  `json:"id"`
	Name        string  `json:"name"`
	Description string  `json:"description"`
	Price       float64 `json:"price"`
	Category    string  `json:"category"`
	Image       string  `json:"image"`
	Rating      float64 `json:"rating"` // 0.0 - 5.0
	Stock       int     `json:"stock"`
}

// InStock reports whether the product can currently be purchased.
func (p Product) InStock() bool {
	return p.Stock > 0
}
