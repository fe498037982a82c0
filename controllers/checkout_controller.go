package controllers

import (
	"strings"

	"github.com/gin-gonic/gin"

	"kotibus/config"
	"kotibus/middleware"
	"kotibus/models"
	"kotibus/storage"
)

// GuestEmail is the placeholder recorded on orders placed without an
// authenticated email.
const GuestEmail = "guest@kotibus.com"

type CheckoutController struct {
	Catalog storage.CatalogStore
	Carts   storage.CartStore
	Orders  storage.OrderStore
}

func NewCheckoutController(catalog storage.CatalogStore, carts storage.CartStore, orders storage.OrderStore) *CheckoutController {
	return &CheckoutController{Catalog: catalog, Carts: carts, Orders: orders}
}

// Checkout godoc
// @Summary Place an order
// @Description Validate the submitted cart, price it from the server catalog, and append it to the order log
// @Tags Checkout
// @Accept json
// @Produce json
// @Param X-Request-ID header string false "Idempotency key; retries with the same id return the original order"
// @Param request body models.CheckoutRequest true "Order"
// @Success 200 {object} models.CheckoutResponse
// @Failure 400 {object} models.ErrorResponse
// @Failure 500 {object} models.ErrorResponse
// @Router /checkout [post]
func (ctrl *CheckoutController) Checkout(c *gin.Context) {
	var req models.CheckoutRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(400, gin.H{"error": "Cart is empty or invalid order"})
		return
	}

	if len(req.Items) == 0 {
		c.JSON(400, gin.H{"error": "Cart is empty or invalid order"})
		return
	}

	session := middleware.SessionFromContext(c)

	name := strings.TrimSpace(req.Customer.Name)
	if name == "" {
		name = session.Name
	}
	if name == "" {
		c.JSON(400, gin.H{"error": "Customer name is required"})
		return
	}

	email := strings.TrimSpace(req.Customer.Email)
	if email == "" {
		email = session.Email
	}
	guest := session.IsGuest || session.ID == ""
	if email == "" {
		if !guest {
			c.JSON(400, gin.H{"error": "Customer email is required"})
			return
		}
		email = GuestEmail
	}

	// Prices come from the server's own catalog; client-supplied
	// amounts are never trusted.
	items := make([]models.OrderItem, 0, len(req.Items))
	subtotal := 0
	for _, line := range req.Items {
		if line.Quantity < 1 {
			c.JSON(400, gin.H{"error": "Invalid item quantity"})
			return
		}
		product, err := ctrl.Catalog.ByID(line.ProductID)
		if err != nil {
			c.JSON(400, gin.H{"error": "Unknown product in cart"})
			return
		}
		if !product.HasSize(line.Size) {
			c.JSON(400, gin.H{"error": "Invalid size for " + product.Name})
			return
		}

		items = append(items, models.OrderItem{
			ProductID: product.ID,
			Name:      product.Name,
			Size:      line.Size,
			UnitPrice: product.SalePrice,
			Quantity:  line.Quantity,
		})
		subtotal += product.SalePrice * line.Quantity
	}

	shipping := 0
	if guest {
		shipping = config.AppConfig.GuestShipping
	}
	tax := (subtotal*config.AppConfig.TaxRatePercent + 50) / 100

	requestID := c.GetHeader("X-Request-ID")
	if requestID == "" {
		requestID = req.RequestID
	}

	order := models.Order{
		RequestID: requestID,
		Customer:  models.Customer{Name: name, Email: email},
		Items:     items,
		Subtotal:  subtotal,
		Tax:       tax,
		Shipping:  shipping,
		Total:     subtotal + tax + shipping,
	}

	orderID, duplicate, err := ctrl.Orders.Append(order)
	if err != nil {
		c.JSON(500, gin.H{"error": "Failed to save order"})
		return
	}

	// The session's cart is cleared only once the order is durably
	// written; a storage failure above leaves it untouched.
	if session.ID != "" && !duplicate {
		if err := ctrl.Carts.Clear(session.ID); err != nil {
			// The order is already persisted; report success and let
			// the client retire its own copy of the cart.
			c.JSON(200, models.CheckoutResponse{OK: true, OrderID: orderID})
			return
		}
	}

	c.JSON(200, models.CheckoutResponse{OK: true, OrderID: orderID, Duplicate: duplicate})
}
