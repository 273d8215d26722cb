package models

// Product is referenced by orders through the order_products join table.
// The Made_in JSON key matches the public API contract.
type Product struct {
	ID          uint    `gorm:"primaryKey;autoIncrement" json:"id"`
	ProductName string  `gorm:"size:100;not null" json:"product_name"`
	Price       float64 `gorm:"not null" json:"price"`
	MadeIn      *string `gorm:"column:made_in;size:75" json:"Made_in,omitempty"`
	Orders      []Order `gorm:"many2many:order_products;" json:"-"`
}
