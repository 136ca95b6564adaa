package models

// Product is reference data for goods carried in containers.
type Product struct {
	ID    uint    `json:"id" gorm:"primaryKey"`
	Name  string  `json:"name" gorm:"not null"`
	Price float64 `json:"price"`
}

// TableName overrides the gorm default.
func (Product) TableName() string {
	return "products"
}

// Client is a customer placing orders.
type Client struct {
	ID      uint   `json:"id" gorm:"primaryKey"`
	Name    string `json:"name" gorm:"not null"`
	Address string `json:"address"`
}

// TableName overrides the gorm default.
func (Client) TableName() string {
	return "clients"
}
