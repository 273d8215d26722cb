package orderControllers

import (
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/Dillon-Lewis/BEC-Module-6-API-Ecom/models"
	"github.com/Dillon-Lewis/BEC-Module-6-API-Ecom/validation"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// -------- Request Structs --------

// Items is a pointer so "key absent" (400) and "empty list" (an order with
// no products) stay distinguishable. Each entry is a product id.
type PlaceOrderRequest struct {
	CustomerID uint    `json:"customer_id" binding:"required"`
	Items      *[]uint `json:"items" binding:"required,dive,gt=0"`
}

// -------- Errors --------

var (
	ErrCustomerNotFound = errors.New("customer not found")
	ErrProductNotFound  = errors.New("product not found")
)

// -------- Helpers --------

// Generate unique order reference, e.g. 20250908130500-<uuid4>
func generateOrderRef() string {
	return time.Now().Format("20060102150405") + "-" + uuid.NewString()
}

// dedupe drops repeated product ids, keeping first-occurrence order.
func dedupe(ids []uint) []uint {
	seen := make(map[uint]struct{}, len(ids))
	out := make([]uint, 0, len(ids))
	for _, id := range ids {
		if _, ok := seen[id]; ok {
			continue
		}
		seen[id] = struct{}{}
		out = append(out, id)
	}
	return out
}

// -------- Core Logic --------

// PlaceOrder creates an order and links it to every referenced product.
// The customer and all product ids are verified before anything is written,
// and the order row plus its association rows commit as one transaction, so
// a partial order can never persist.
func PlaceOrder(db *gorm.DB, req PlaceOrderRequest) (*models.Order, error) {
	itemIDs := dedupe(*req.Items)

	var order models.Order
	err := db.Transaction(func(tx *gorm.DB) error {
		var customer models.Customer
		if err := tx.First(&customer, req.CustomerID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrCustomerNotFound
			}
			return err
		}

		var products []models.Product
		if len(itemIDs) > 0 {
			if err := tx.Find(&products, itemIDs).Error; err != nil {
				return err
			}
			if len(products) != len(itemIDs) {
				found := make(map[uint]struct{}, len(products))
				for _, p := range products {
					found[p.ID] = struct{}{}
				}
				for _, id := range itemIDs {
					if _, ok := found[id]; !ok {
						return fmt.Errorf("%w: id %d", ErrProductNotFound, id)
					}
				}
			}
		}

		order = models.Order{
			OrderRef:    generateOrderRef(),
			DateOrdered: time.Now(),
			CustomerID:  customer.ID,
			Products:    products,
		}
		return tx.Create(&order).Error
	})
	if err != nil {
		return nil, err
	}
	return &order, nil
}

// -------- Handlers --------

// PlaceOrderHandler handles POST /orders.
func PlaceOrderHandler(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req PlaceOrderRequest
		if !validation.BindJSON(c, &req) {
			return
		}

		order, err := PlaceOrder(db, req)
		if err != nil {
			switch {
			case errors.Is(err, ErrCustomerNotFound), errors.Is(err, ErrProductNotFound):
				c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
			default:
				c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to place order"})
			}
			return
		}

		c.JSON(http.StatusCreated, gin.H{
			"message": "Order has been placed.",
			"order":   order,
		})
	}
}

// RetrieveOrderHandler returns the products linked to an order.
// URL param: /retrieve_order/:id
func RetrieveOrderHandler(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, err := strconv.Atoi(c.Param("id"))
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid order ID"})
			return
		}

		var order models.Order
		if err := db.Preload("Products").First(&order, id).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				c.JSON(http.StatusNotFound, gin.H{"error": "Order not found"})
			} else {
				c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve order"})
			}
			return
		}

		if order.Products == nil {
			order.Products = []models.Product{}
		}
		c.JSON(http.StatusOK, order.Products)
	}
}

// GetAllOrdersHandler lists every order with its products preloaded.
func GetAllOrdersHandler(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var orders []models.Order
		if err := db.Preload("Products").Find(&orders).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch orders"})
			return
		}
		if orders == nil {
			orders = []models.Order{}
		}
		c.JSON(http.StatusOK, orders)
	}
}
