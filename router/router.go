package router

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"pizza-delivery-shop/controllers"
	"pizza-delivery-shop/middlewares"
	"pizza-delivery-shop/services"
	"pizza-delivery-shop/ws"
)

func SetupRouter(db *gorm.DB, cache *services.CatalogCache, mailer services.OrderMailer) *gin.Engine {
	r := gin.Default()

	r.Use(middlewares.CORSMiddlewares())
	r.Use(middlewares.LoggerMiddleware())
	r.Use(middlewares.NewRateLimiter(50, 1).RateLimit())

	categoryCtrl := controllers.NewCategoryController(db, cache)
	productCtrl := controllers.NewProductController(db, cache)
	areaCtrl := controllers.NewAreaController(db, cache)
	orderCtrl := controllers.NewOrderController(db, mailer)
	adminCtrl := controllers.NewAdminController(db)

	r.GET("/ping", func(c *gin.Context) {
		c.JSON(200, gin.H{"message": "pong"})
	})

	// ----------------------------------------------------------------
	//                      STOREFRONT (no auth)
	// ----------------------------------------------------------------
	r.GET("/categories", categoryCtrl.GetActiveCategories)
	r.GET("/products", productCtrl.GetActiveProducts)
	r.GET("/products/:product_id/pricing", productCtrl.GetProductPricing)
	r.GET("/delivery-areas", areaCtrl.GetActiveAreas)
	r.GET("/delivery-areas/:area_id", areaCtrl.GetAreaInfo)

	r.POST("/cart/validate", orderCtrl.ValidateCart)
	r.GET("/orders/:order_id", orderCtrl.GetOrderByID)

	// Checkout gets its own throttle on top of the global limiter.
	checkout := r.Group("/")
	checkout.Use(middlewares.NewStrictRateLimiter())
	{
		checkout.POST("/orders", orderCtrl.PlaceOrder)
	}

	// ----------------------------------------------------------------
	//                      ADMIN (Bearer token)
	// ----------------------------------------------------------------
	auth := r.Group("/admin")
	auth.Use(middlewares.AdminAuthMiddleware())

	auth.GET("/categories", categoryCtrl.GetAllCategories)
	auth.POST("/categories", categoryCtrl.CreateCategory)
	auth.PATCH("/categories/:cat_id", categoryCtrl.UpdateCategory)
	auth.DELETE("/categories/:cat_id", categoryCtrl.DeleteCategory)

	auth.GET("/products", productCtrl.GetAllProducts)
	auth.POST("/products", productCtrl.CreateProduct)
	auth.GET("/products/:product_id", productCtrl.GetProductByID)
	auth.PATCH("/products/:product_id", productCtrl.UpdateProduct)
	auth.DELETE("/products/:product_id", productCtrl.DeleteProduct)

	auth.GET("/delivery-areas", areaCtrl.GetAllAreas)
	auth.POST("/delivery-areas", areaCtrl.CreateArea)
	auth.PATCH("/delivery-areas/:area_id", areaCtrl.UpdateArea)
	auth.DELETE("/delivery-areas/:area_id", areaCtrl.DeleteArea)

	auth.GET("/orders", orderCtrl.GetAllOrders)
	auth.GET("/orders/:order_id", orderCtrl.GetOrderByID)
	auth.PATCH("/orders/:order_id/status", orderCtrl.UpdateOrderStatus)

	auth.GET("/dashboard/stats", adminCtrl.GetDashboardStats)

	// Live order feed for the admin dashboard.
	auth.GET("/ws", ws.Handler)

	return r
}
