package productcontroller

import (
	"net/http"

	"github.com/Dillon-Lewis/BEC-Module-6-API-Ecom/models"
	"github.com/Dillon-Lewis/BEC-Module-6-API-Ecom/validation"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// Price is a pointer so that a legitimate 0.0 still satisfies "required".
type CreateProductRequest struct {
	ProductName string   `json:"product_name" binding:"required"`
	Price       *float64 `json:"price" binding:"required,gte=0"`
	MadeIn      *string  `json:"Made_in" binding:"omitempty,max=75"`
}

// CreateProduct handles POST /products.
func CreateProduct(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req CreateProductRequest
		if !validation.BindJSON(c, &req) {
			return
		}

		product := models.Product{
			ProductName: req.ProductName,
			Price:       *req.Price,
			MadeIn:      req.MadeIn,
		}

		if err := db.Create(&product).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create product"})
			return
		}

		c.JSON(http.StatusCreated, gin.H{
			"message": "New product successfully added!",
			"product": product,
		})
	}
}
