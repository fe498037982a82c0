package routes

import (
	"path/filepath"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"kotibus/config"
	"kotibus/controllers"
	"kotibus/middleware"
	"kotibus/storage"
)

type Stores struct {
	Catalog storage.CatalogStore
	Carts   storage.CartStore
	Users   storage.UserStore
	Orders  storage.OrderStore
}

func SetupRoutes(router *gin.Engine, stores Stores) {
	authCtrl := controllers.NewAuthController(stores.Users, stores.Carts)
	productCtrl := controllers.NewProductController(stores.Catalog)
	cartCtrl := controllers.NewCartController(stores.Catalog, stores.Carts)
	checkoutCtrl := controllers.NewCheckoutController(stores.Catalog, stores.Carts, stores.Orders)

	// Unmatched methods on a known path answer 405, not 404.
	router.HandleMethodNotAllowed = true

	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	router.GET("/health", func(c *gin.Context) { c.JSON(200, gin.H{"status": "ok"}) })

	// Raw catalog resource, same shape the original static site consumed.
	router.StaticFile("/data/products.json", filepath.Join(config.AppConfig.DataDir, config.AppConfig.ProductsFile))

	router.POST("/auth/register", authCtrl.Register)
	router.POST("/auth/login", authCtrl.Login)
	router.POST("/auth/guest", authCtrl.Guest)
	router.GET("/products", productCtrl.GetAllProducts)
	router.GET("/products/:id", productCtrl.GetProductByID)

	router.POST("/checkout", middleware.OptionalAuthMiddleware(), checkoutCtrl.Checkout)

	auth := router.Group("/")
	auth.Use(middleware.AuthMiddleware())
	{
		auth.GET("/auth/profile", authCtrl.GetProfile)
		auth.POST("/auth/logout", authCtrl.Logout)

		auth.GET("/cart", cartCtrl.GetCart)
		auth.DELETE("/cart", cartCtrl.ClearCart)
		auth.POST("/cart/items", cartCtrl.AddItem)
		auth.PATCH("/cart/items/:index", cartCtrl.UpdateQuantity)
		auth.DELETE("/cart/items/:index", cartCtrl.RemoveItem)
	}
}
