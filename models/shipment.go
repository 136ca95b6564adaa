package models

import "time"

// Shipment is one transport leg of a container: a departure location, a time
// window derived from the transport mode, and a lifecycle status. EndTime is
// never before StartTime; both are computed from the transport duration table
// when the shipment is created through an order.
type Shipment struct {
	ID            uint           `json:"id" gorm:"primaryKey"`
	LocationID    uint           `json:"location_id" gorm:"not null;index"`
	StartTime     time.Time      `json:"start_time"`
	EndTime       time.Time      `json:"end_time"`
	TransportType TransportType  `json:"transport_type" gorm:"type:varchar(8);not null"`
	Status        ShipmentStatus `json:"status" gorm:"type:varchar(16);not null;default:'preparing'"`

	Location *Location `json:"location,omitempty" gorm:"foreignKey:LocationID"`
}

// TableName overrides the gorm default.
func (Shipment) TableName() string {
	return "shipments"
}
