package customercontroller

import (
	"net/http"

	"github.com/Dillon-Lewis/BEC-Module-6-API-Ecom/models"
	"github.com/Dillon-Lewis/BEC-Module-6-API-Ecom/validation"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

type CreateCustomerRequest struct {
	CustomerName string  `json:"customer_name" binding:"required"`
	Username     string  `json:"username" binding:"required"`
	Email        string  `json:"email" binding:"required,email"`
	Phone        *string `json:"phone" binding:"omitempty,max=15"`
}

// CreateCustomer handles POST /customers.
func CreateCustomer(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req CreateCustomerRequest
		if !validation.BindJSON(c, &req) {
			return
		}

		customer := models.Customer{
			CustomerName: req.CustomerName,
			Username:     req.Username,
			Email:        req.Email,
			Phone:        req.Phone,
		}

		if err := db.Create(&customer).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create customer"})
			return
		}

		c.JSON(http.StatusCreated, gin.H{
			"message":  "New customer has been added!",
			"customer": customer,
		})
	}
}
