package routes

import (
	productControllers "github.com/Dillon-Lewis/BEC-Module-6-API-Ecom/controllers/product"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// SetupProductRoutes registers all "/products/*" endpoints.
func SetupProductRoutes(r *gin.Engine, db *gorm.DB) {
	products := r.Group("/products")
	{
		products.POST("", productControllers.CreateProduct(db))            // POST /products
		products.GET("", productControllers.GetProducts(db))               // GET /products
		products.GET("/export", productControllers.ExportProductsToExcel(db)) // GET /products/export
		products.GET("/:id", productControllers.GetProductByID(db))        // GET /products/:id
		products.PUT("/:id", productControllers.UpdateProduct(db))         // PUT /products/:id
		products.DELETE("/:id", productControllers.DeleteProduct(db))      // DELETE /products/:id
	}
}
