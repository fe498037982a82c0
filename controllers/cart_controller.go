package controllers

import (
	"errors"
	"fmt"
	"strconv"

	"github.com/gin-gonic/gin"

	"kotibus/config"
	"kotibus/middleware"
	"kotibus/models"
	"kotibus/storage"
)

type CartController struct {
	Catalog storage.CatalogStore
	Carts   storage.CartStore
}

func NewCartController(catalog storage.CatalogStore, carts storage.CartStore) *CartController {
	return &CartController{Catalog: catalog, Carts: carts}
}

// Summarize derives the totals for a cart under the given session:
// 5% tax on the subtotal, plus the flat shipping surcharge for guests.
func Summarize(cart models.Cart, session models.Session) models.CartSummary {
	subtotal := cart.Subtotal()

	shipping := 0
	if session.IsGuest && subtotal > 0 {
		shipping = config.AppConfig.GuestShipping
	}

	tax := (subtotal*config.AppConfig.TaxRatePercent + 50) / 100

	return models.CartSummary{
		ItemCount: cart.ItemCount(),
		Subtotal:  subtotal,
		Tax:       tax,
		Shipping:  shipping,
		Total:     subtotal + tax + shipping,
	}
}

func (ctrl *CartController) respondCart(c *gin.Context, message string, cart models.Cart) {
	session := middleware.SessionFromContext(c)
	c.JSON(200, gin.H{
		"success": true,
		"message": message,
		"data": gin.H{
			"items":   cart.Items,
			"summary": Summarize(cart, session),
		},
	})
}

// GetCart godoc
// @Summary Get cart
// @Description Get the session's cart with derived totals
// @Tags Cart
// @Security BearerAuth
// @Produce json
// @Success 200 {object} models.Response
// @Router /cart [get]
func (ctrl *CartController) GetCart(c *gin.Context) {
	session := middleware.SessionFromContext(c)
	cart, _ := ctrl.Carts.Get(session.ID)
	ctrl.respondCart(c, "Cart retrieved", cart)
}

// AddItem godoc
// @Summary Add to cart
// @Description Add a product to the cart, merging lines keyed by product and size
// @Tags Cart
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param request body models.AddCartItemRequest true "Item"
// @Success 200 {object} models.Response
// @Failure 404 {object} models.ErrorResponse
// @Router /cart/items [post]
func (ctrl *CartController) AddItem(c *gin.Context) {
	var req models.AddCartItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(400, gin.H{"success": false, "message": "Invalid request", "error": err.Error()})
		return
	}

	product, err := ctrl.Catalog.ByID(req.ProductID)
	if err != nil {
		c.JSON(404, gin.H{"success": false, "message": "Product not found"})
		return
	}

	if !product.HasSize(req.Size) {
		c.JSON(400, gin.H{"success": false, "message": "Please select a valid size"})
		return
	}

	quantity := req.Quantity
	if quantity < 1 {
		quantity = 1
	}

	session := middleware.SessionFromContext(c)
	cart, err := ctrl.Carts.AddItem(session.ID, models.CartItem{
		ProductID:     product.ID,
		Name:          product.Name,
		Size:          req.Size,
		SalePrice:     product.SalePrice,
		OriginalPrice: product.OriginalPrice,
		Image:         product.Image,
		Quantity:      quantity,
	})
	if err != nil {
		c.JSON(500, gin.H{"success": false, "message": "Failed to save cart"})
		return
	}

	message := fmt.Sprintf("%s added to cart", product.Name)
	if req.Size != "" {
		message = fmt.Sprintf("%s (%s) added to cart", product.Name, req.Size)
	}
	ctrl.respondCart(c, message, cart)
}

// UpdateQuantity godoc
// @Summary Update line quantity
// @Description Apply a delta to a line's quantity, clamped at 1
// @Tags Cart
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param index path int true "Line index"
// @Param request body models.UpdateQuantityRequest true "Delta"
// @Success 200 {object} models.Response
// @Failure 404 {object} models.ErrorResponse
// @Router /cart/items/{index} [patch]
func (ctrl *CartController) UpdateQuantity(c *gin.Context) {
	index, err := strconv.Atoi(c.Param("index"))
	if err != nil {
		c.JSON(400, gin.H{"success": false, "message": "Invalid line index"})
		return
	}

	var req models.UpdateQuantityRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(400, gin.H{"success": false, "message": "Invalid request"})
		return
	}

	session := middleware.SessionFromContext(c)
	cart, err := ctrl.Carts.UpdateQuantity(session.ID, index, req.Delta)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			c.JSON(404, gin.H{"success": false, "message": "Cart item not found"})
			return
		}
		c.JSON(500, gin.H{"success": false, "message": "Failed to save cart"})
		return
	}

	ctrl.respondCart(c, "Quantity updated", cart)
}

// RemoveItem godoc
// @Summary Remove cart line
// @Description Delete the line at the given index
// @Tags Cart
// @Security BearerAuth
// @Produce json
// @Param index path int true "Line index"
// @Success 200 {object} models.Response
// @Failure 404 {object} models.ErrorResponse
// @Router /cart/items/{index} [delete]
func (ctrl *CartController) RemoveItem(c *gin.Context) {
	index, err := strconv.Atoi(c.Param("index"))
	if err != nil {
		c.JSON(400, gin.H{"success": false, "message": "Invalid line index"})
		return
	}

	session := middleware.SessionFromContext(c)
	cart, removed, err := ctrl.Carts.RemoveItem(session.ID, index)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			c.JSON(404, gin.H{"success": false, "message": "Cart item not found"})
			return
		}
		c.JSON(500, gin.H{"success": false, "message": "Failed to save cart"})
		return
	}

	ctrl.respondCart(c, fmt.Sprintf("%s removed from cart", removed.Name), cart)
}

// ClearCart godoc
// @Summary Clear cart
// @Description Remove every line from the session's cart
// @Tags Cart
// @Security BearerAuth
// @Produce json
// @Success 200 {object} models.Response
// @Router /cart [delete]
func (ctrl *CartController) ClearCart(c *gin.Context) {
	session := middleware.SessionFromContext(c)

	if err := ctrl.Carts.Clear(session.ID); err != nil {
		c.JSON(500, gin.H{"success": false, "message": "Failed to clear cart"})
		return
	}

	cart, _ := ctrl.Carts.Get(session.ID)
	ctrl.respondCart(c, "Cart cleared", cart)
}
