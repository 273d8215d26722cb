package routes

import (
	orderControllers "github.com/Dillon-Lewis/BEC-Module-6-API-Ecom/controllers/order"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// SetupOrderRoutes registers order placement and retrieval endpoints.
func SetupOrderRoutes(r *gin.Engine, db *gorm.DB) {
	orders := r.Group("/orders")
	{
		orders.POST("", orderControllers.PlaceOrderHandler(db)) // POST /orders
		orders.GET("", orderControllers.GetAllOrdersHandler(db)) // GET /orders
	}

	// Path kept for compatibility with existing clients.
	r.GET("/retrieve_order/:id", orderControllers.RetrieveOrderHandler(db))
}
