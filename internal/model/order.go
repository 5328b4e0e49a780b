package model

// OrderItem is a single line item in a checkout request.
type OrderItem struct {
	Name     string  `json:"name"`
	Price    float64 `json:"price"`
	Quantity int     `json:"quantity"`
}

// Subtotal returns price multiplied by quantity for this line item.
func (i OrderItem) Subtotal() float64 {
	return i.Price * float64(i.Quantity)
}

// Order is the transient checkout payload. It exists only for the duration
// of a checkout request and is never persisted.
type Order struct {
	Items       []OrderItem `json:"items"`
	TotalAmount float64     `json:"totalAmount"`
}
