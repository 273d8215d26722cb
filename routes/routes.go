package routes

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// SetupRoutes is the single entry-point that wires up all route groups.
func SetupRoutes(r *gin.Engine, db *gorm.DB) {
	// Root welcome message (the one non-JSON response)
	r.GET("/", func(c *gin.Context) {
		c.String(http.StatusOK, "Welcome to the Ecom Database, the final push into backend core!")
	})

	// Liveness + database reachability
	r.GET("/health", func(c *gin.Context) {
		sqlDB, err := db.DB()
		if err == nil {
			err = sqlDB.Ping()
		}
		if err != nil {
			c.JSON(http.StatusServiceUnavailable, gin.H{"status": "unavailable"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	SetupCustomerRoutes(r, db)
	SetupProductRoutes(r, db)
	SetupOrderRoutes(r, db)
}
