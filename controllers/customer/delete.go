package customercontroller

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/Dillon-Lewis/BEC-Module-6-API-Ecom/models"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// DeleteCustomer removes a customer together with their orders and the
// orders' association rows, all inside one transaction. The cascade is
// explicit so it holds regardless of backend foreign-key enforcement.
func DeleteCustomer(db *gorm.DB) gin.HandlerFunc {
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

		err = db.Transaction(func(tx *gorm.DB) error {
			var orders []models.Order
			if err := tx.Where("customer_id = ?", customer.ID).Find(&orders).Error; err != nil {
				return err
			}
			for i := range orders {
				if err := tx.Model(&orders[i]).Association("Products").Clear(); err != nil {
					return err
				}
			}
			if len(orders) > 0 {
				if err := tx.Where("customer_id = ?", customer.ID).Delete(&models.Order{}).Error; err != nil {
					return err
				}
			}
			return tx.Delete(&customer).Error
		})
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete customer"})
			return
		}

		c.JSON(http.StatusOK, gin.H{"message": "Customer successfully deleted"})
	}
}
