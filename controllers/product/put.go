package productcontroller

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/Dillon-Lewis/BEC-Module-6-API-Ecom/models"
	"github.com/Dillon-Lewis/BEC-Module-6-API-Ecom/validation"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

type UpdateProductRequest struct {
	ProductName *string  `json:"product_name" binding:"omitempty,min=1"`
	Price       *float64 `json:"price" binding:"omitempty,gte=0"`
	MadeIn      *string  `json:"Made_in" binding:"omitempty,max=75"`
}

// UpdateProduct applies a partial update; omitted fields keep their values.
// URL param: /products/:id
func UpdateProduct(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, err := strconv.Atoi(c.Param("id"))
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid product ID"})
			return
		}

		var product models.Product
		if err := db.First(&product, id).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				c.JSON(http.StatusNotFound, gin.H{"error": "Product not found"})
			} else {
				c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve product"})
			}
			return
		}

		var req UpdateProductRequest
		if !validation.BindJSON(c, &req) {
			return
		}

		updates := make(map[string]interface{})
		if req.ProductName != nil {
			updates["product_name"] = *req.ProductName
		}
		if req.Price != nil {
			updates["price"] = *req.Price
		}
		if req.MadeIn != nil {
			updates["made_in"] = *req.MadeIn
		}

		if len(updates) > 0 {
			if err := db.Model(&product).Updates(updates).Error; err != nil {
				c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update product"})
				return
			}
		}

		c.JSON(http.StatusOK, gin.H{
			"message": "Product details have been updated!",
			"product": product,
		})
	}
}
