package cart

// Line is one cart entry: a product reference plus the quantity and the
// display fields denormalized at add-time. There is at most one line per
// product; adding an existing product merges quantities.
// Field names follow the cart API's wire format.
type Line struct {
	ProductID  string  `json:"id"`
	Name       string  `json:"name"`
	Category   string  `json:"category,omitempty"`
	Price      float64 `json:"price"`
	Quantity   int     `json:"quantity"`
	TotalPrice float64 `json:"total_price"`
	Image      string  `json:"imageUrl,omitempty"`
}

// EventType identifies a cart mutation.
type EventType string

const (
	EventAdded   EventType = "added"
	EventRemoved EventType = "removed"
	EventCleared EventType = "cleared"
)

// Event is published once per successful cart mutation. ProductID is
// empty for cleared events.
type Event struct {
	Type      EventType
	ProductID string
}
