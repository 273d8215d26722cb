package routes

import (
	customerControllers "github.com/Dillon-Lewis/BEC-Module-6-API-Ecom/controllers/customer"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// SetupCustomerRoutes registers all "/customers/*" endpoints.
func SetupCustomerRoutes(r *gin.Engine, db *gorm.DB) {
	customers := r.Group("/customers")
	{
		customers.POST("", customerControllers.CreateCustomer(db))          // POST /customers
		customers.GET("/:id", customerControllers.GetCustomerByID(db))      // GET /customers/:id
		customers.PUT("/:id", customerControllers.UpdateCustomer(db))       // PUT /customers/:id
		customers.DELETE("/:id", customerControllers.DeleteCustomer(db))    // DELETE /customers/:id
		customers.GET("/:id/orders", customerControllers.GetCustomerOrders(db)) // GET /customers/:id/orders
	}
}
