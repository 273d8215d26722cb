package customercontroller

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/Dillon-Lewis/BEC-Module-6-API-Ecom/models"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// GetCustomerByID returns a single customer.
// URL param: /customers/:id
func GetCustomerByID(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, err := strconv.Atoi(c.Param("id"))
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid customer ID"})
			return
		}

		var customer models.Customer
		if err := db.First(&customer, id).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				c.JSON(http.StatusNotFound, gin.H{"error": "Customer not found"})
			} else {
				c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve customer"})
			}
			return
		}
		c.JSON(http.StatusOK, customer)
	}
}

// GetCustomerOrders returns every order placed by a customer, products included.
// URL param: /customers/:id/orders
func GetCustomerOrders(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, err := strconv.Atoi(c.Param("id"))
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid customer ID"})
			return
		}

		var customer models.Customer
		if err := db.First(&customer, id).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				c.JSON(http.StatusNotFound, gin.H{"error": "Customer not found"})
			} else {
				c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve customer"})
			}
			return
		}

		var orders []models.Order
		if err := db.Preload("Products").
			Where("customer_id = ?", customer.ID).
			Find(&orders).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch orders"})
			return
		}
		if orders == nil {
			orders = []models.Order{}
		}
		c.JSON(http.StatusOK, orders)
	}
}
