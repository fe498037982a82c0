package models

type RegisterRequest struct {
	Name            string `json:"name" form:"name" binding:"required"`
	Email           string `json:"email" form:"email" binding:"required,email"`
	Password        string `json:"password" form:"password" binding:"required,min=6"`
	ConfirmPassword string `json:"confirm_password" form:"confirm_password" binding:"required"`
}

type LoginRequest struct {
	Email    string `json:"email" form:"email" binding:"required,email"`
	Password string `json:"password" form:"password" binding:"required"`
}

type AddCartItemRequest struct {
	ProductID int    `json:"product_id" binding:"required"`
	Size      string `json:"size"`
	Quantity  int    `json:"quantity"`
}

type UpdateQuantityRequest struct {
	Delta int `json:"delta" binding:"required"`
}

type CheckoutItemRequest struct {
	ProductID int    `json:"product_id" binding:"required"`
	Size      string `json:"size"`
	Quantity  int    `json:"quantity" binding:"required,min=1"`
}

type CheckoutRequest struct {
	RequestID string                `json:"request_id"`
	Customer  Customer              `json:"customer"`
	Items     []CheckoutItemRequest `json:"items"`
}

type CheckoutResponse struct {
	OK        bool  `json:"ok"`
	OrderID   int64 `json:"orderId"`
	Duplicate bool  `json:"duplicate,omitempty"`
}
