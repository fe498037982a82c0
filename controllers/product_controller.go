package controllers

import (
	"errors"
	"strconv"

	"github.com/gin-gonic/gin"

	"kotibus/storage"
)

type ProductController struct {
	Catalog storage.CatalogStore
}

func NewProductController(catalog storage.CatalogStore) *ProductController {
	return &ProductController{Catalog: catalog}
}

// GetAllProducts godoc
// @Summary Get products
// @Description Get the product catalog, optionally filtered by category
// @Tags Products
// @Produce json
// @Param category query string false "Filter by category"
// @Success 200 {object} models.Response
// @Router /products [get]
func (ctrl *ProductController) GetAllProducts(c *gin.Context) {
	category := c.Query("category")

	products := ctrl.Catalog.All()
	if category != "" {
		products = ctrl.Catalog.ByCategory(category)
	}

	c.JSON(200, gin.H{
		"success": true,
		"message": "Products retrieved",
		"data":    products,
	})
}

// GetProductByID godoc
// @Summary Get product by ID
// @Description Get a single product
// @Tags Products
// @Produce json
// @Param id path int true "Product ID"
// @Success 200 {object} models.Response
// @Failure 404 {object} models.ErrorResponse
// @Router /products/{id} [get]
func (ctrl *ProductController) GetProductByID(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil || id <= 0 {
		c.JSON(400, gin.H{"success": false, "message": "Invalid product ID"})
		return
	}

	product, err := ctrl.Catalog.ByID(id)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			c.JSON(404, gin.H{"success": false, "message": "Product not found"})
			return
		}
		c.JSON(500, gin.H{"success": false, "message": "Failed to load product"})
		return
	}

	c.JSON(200, gin.H{
		"success": true,
		"message": "Product retrieved",
		"data":    product,
	})
}
