package models

// CartItem is one line in a cart. Lines are keyed by (ProductID, Size);
// adding the same key again increments Quantity instead of appending.
type CartItem struct {
	ProductID     int    `json:"product_id"`
	Name          string `json:"name"`
	Size          string `json:"size,omitempty"`
	SalePrice     int    `json:"sale_price"`
	OriginalPrice int    `json:"original_price"`
	Image         string `json:"image,omitempty"`
	Quantity      int    `json:"quantity"`
}

// Cart is the full persisted cart for one session. The whole cart is
// rewritten on every mutation; there are no partial updates.
type Cart struct {
	SessionID string     `json:"session_id"`
	Items     []CartItem `json:"items"`
}

// ItemCount is the sum of per-line quantities.
func (c *Cart) ItemCount() int {
	count := 0
	for _, item := range c.Items {
		count += item.Quantity
	}
	return count
}

// Subtotal is the sum of sale price times quantity over all lines.
func (c *Cart) Subtotal() int {
	subtotal := 0
	for _, item := range c.Items {
		subtotal += item.SalePrice * item.Quantity
	}
	return subtotal
}

// FindItem returns the index of the line matching (productID, size),
// or -1 when no line matches.
func (c *Cart) FindItem(productID int, size string) int {
	for i, item := range c.Items {
		if item.ProductID == productID && item.Size == size {
			return i
		}
	}
	return -1
}

// CartSummary carries the derived totals shown next to the cart.
type CartSummary struct {
	ItemCount int `json:"item_count"`
	Subtotal  int `json:"subtotal"`
	Tax       int `json:"tax"`
	Shipping  int `json:"shipping"`
	Total     int `json:"total"`
}
