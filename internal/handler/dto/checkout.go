package dto

import "github.com/shopfront/shopfront/internal/model"

// CheckoutRequest represents the request body for POST /api/checkout.
type CheckoutRequest struct {
	Email        string       `json:"email"`
	OrderDetails OrderDetails `json:"orderDetails"`
}

// OrderDetails carries the transient order payload.
type OrderDetails struct {
	Items       []OrderItem `json:"items"`
	TotalAmount float64     `json:"totalAmount"`
}

// OrderItem is a single line item in a checkout request.
type OrderItem struct {
	Name     string  `json:"name"`
	Price    float64 `json:"price"`
	Quantity int     `json:"quantity"`
}

// MessageResponse is a bare message envelope.
type MessageResponse struct {
	Message string `json:"message"`
}

// ToOrder converts the request payload to the domain order.
func (d OrderDetails) ToOrder() model.Order {
	items := make([]model.OrderItem, len(d.Items))
	for i, item := range d.Items {
		items[i] = model.OrderItem{
			Name:     item.Name,
			Price:    item.Price,
			Quantity: item.Quantity,
		}
	}
	return model.Order{Items: items, TotalAmount: d.TotalAmount}
}
