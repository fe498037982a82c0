package models

import "time"

type Order struct {
	ID        int64       `json:"id"`
	RequestID string      `json:"request_id,omitempty"`
	CreatedAt time.Time   `json:"createdAt"`
	Customer  Customer    `json:"customer"`
	Items     []OrderItem `json:"items"`
	Subtotal  int         `json:"subtotal"`
	Tax       int         `json:"tax"`
	Shipping  int         `json:"shipping"`
	Total     int         `json:"total"`
}

type Customer struct {
	Name  string `json:"name"`
	Email string `json:"email"`
}

// OrderItem is a snapshot of a cart line at checkout time. UnitPrice is
// re-derived from the server's catalog, never taken from the client.
type OrderItem struct {
	ProductID int    `json:"product_id"`
	Name      string `json:"name"`
	Size      string `json:"size,omitempty"`
	UnitPrice int    `json:"unit_price"`
	Quantity  int    `json:"quantity"`
}
