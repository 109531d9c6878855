package http

import (
	"github.com/gin-gonic/gin"
)

type Handlers struct {
	Users        *UserHandler
	Payments     *PaymentHandler
	Catalog      *CatalogHandler
	Transactions *TransactionHandler
}

// RegisterRoutes mounts the API under /api. middlewares run before every
// API handler.
func RegisterRoutes(router gin.IRouter, handlers Handlers, middlewares ...gin.HandlerFunc) {
	api := router.Group("/api", middlewares...)

	users := api.Group("/users")
	{
		users.POST("", handlers.Users.Create)
		users.GET("", handlers.Users.List)
		users.GET("/:"+idParam, handlers.Users.Get)
		users.DELETE("/:"+idParam, handlers.Users.Delete)
	}

	payments := api.Group("/payments")
	{
		payments.POST("/add-balance", handlers.Payments.AddBalance)
		payments.GET("/user/:"+idParam+"/history", handlers.Payments.History)
		payments.GET("/admin/getall", handlers.Payments.ListAll)
	}

	categories := api.Group("/categories")
	{
		categories.POST("", handlers.Catalog.CreateCategory)
		categories.GET("", handlers.Catalog.ListCategories)
		categories.GET("/:"+idParam, handlers.Catalog.GetCategory)
		categories.PUT("/:"+idParam, handlers.Catalog.UpdateCategory)
		categories.DELETE("/:"+idParam, handlers.Catalog.DeleteCategory)
		categories.GET("/:"+idParam+"/products", handlers.Catalog.ListCategoryProducts)
	}

	products := api.Group("/products")
	{
		products.POST("", handlers.Catalog.CreateProduct)
		products.GET("", handlers.Catalog.ListProducts)
		products.GET("/search", handlers.Catalog.SearchProducts)
		products.GET("/:"+idParam, handlers.Catalog.GetProduct)
		products.PUT("/:"+idParam, handlers.Catalog.UpdateProduct)
		products.DELETE("/:"+idParam, handlers.Catalog.DeleteProduct)
	}

	transactions := api.Group("/transactions")
	{
		transactions.POST("/buy", handlers.Transactions.Buy)
		transactions.GET("/user/:"+idParam+"/history", handlers.Transactions.History)
		transactions.GET("/admin/getall", handlers.Transactions.ListAll)
		transactions.GET("/:"+idParam+"/items", handlers.Transactions.Items)
	}
}
