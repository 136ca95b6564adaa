package models

// ClientOrder links a client's purchase of a product to the container that
// carries it and the shipment moving that container. The four references are
// checked for existence inside the same transaction that inserts the row.
type ClientOrder struct {
	ID          uint   `json:"id" gorm:"primaryKey"`
	ContainerID string `json:"container_id" gorm:"not null;index"`
	ProductID   uint   `json:"product_id" gorm:"not null"`
	ShipmentID  uint   `json:"shipment_id" gorm:"not null;index"`
	ClientID    uint   `json:"client_id" gorm:"not null"`

	Container *Container `json:"container,omitempty" gorm:"foreignKey:ContainerID"`
	Product   *Product   `json:"product,omitempty" gorm:"foreignKey:ProductID"`
	Shipment  *Shipment  `json:"shipment,omitempty" gorm:"foreignKey:ShipmentID"`
	Client    *Client    `json:"client,omitempty" gorm:"foreignKey:ClientID"`
}

// TableName overrides the gorm default.
func (ClientOrder) TableName() string {
	return "client_orders"
}
