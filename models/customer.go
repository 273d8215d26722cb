package models

// Customer owns zero or more orders. Phone is nullable so an omitted
// value stays NULL instead of becoming an empty string.
type Customer struct {
	ID           uint    `gorm:"primaryKey;autoIncrement" json:"id"`
	CustomerName string  `gorm:"size:75;not null" json:"customer_name"`
	Username     string  `gorm:"size:75;not null" json:"username"`
	Email        string  `gorm:"size:75;not null" json:"email"`
	Phone        *string `gorm:"size:15" json:"phone,omitempty"`
	Orders       []Order `gorm:"foreignKey:CustomerID;constraint:OnDelete:CASCADE" json:"orders,omitempty"`
}
