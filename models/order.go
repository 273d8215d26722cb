package models

import "time"

// Order belongs to exactly one customer and links to its products via
// the order_products join table. DateOrdered is always server-assigned.
type Order struct {
	ID          uint      `gorm:"primaryKey;autoIncrement" json:"id"`
	OrderRef    string    `gorm:"size:50;uniqueIndex" json:"order_ref"`
	DateOrdered time.Time `gorm:"not null" json:"date_ordered"`
	CustomerID  uint      `gorm:"not null;index" json:"customer_id"`
	Customer    *Customer `gorm:"foreignKey:CustomerID" json:"-"`
	Products    []Product `gorm:"many2many:order_products;" json:"products,omitempty"`
}
