package customercontroller

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/Dillon-Lewis/BEC-Module-6-API-Ecom/models"
	"github.com/Dillon-Lewis/BEC-Module-6-API-Ecom/validation"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// UpdateCustomerRequest carries pointer fields so an absent field is
// distinguishable from an explicit empty value.
type UpdateCustomerRequest struct {
	CustomerName *string `json:"customer_name" binding:"omitempty,min=1"`
	Username     *string `json:"username" binding:"omitempty,min=1"`
	Email        *string `json:"email" binding:"omitempty,email"`
	Phone        *string `json:"phone" binding:"omitempty,max=15"`
}

// UpdateCustomer applies a partial update; omitted fields keep their values.
// URL param: /customers/:id
func UpdateCustomer(db *gorm.DB) gin.HandlerFunc {
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

		var req UpdateCustomerRequest
		if !validation.BindJSON(c, &req) {
			return
		}

		updates := make(map[string]interface{})
		if req.CustomerName != nil {
			updates["customer_name"] = *req.CustomerName
		}
		if req.Username != nil {
			updates["username"] = *req.Username
		}
		if req.Email != nil {
			updates["email"] = *req.Email
		}
		if req.Phone != nil {
			updates["phone"] = *req.Phone
		}

		if len(updates) > 0 {
			if err := db.Model(&customer).Updates(updates).Error; err != nil {
				c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update customer"})
				return
			}
		}

		c.JSON(http.StatusOK, gin.H{
			"message":  "Customer details have been updated!",
			"customer": customer,
		})
	}
}
