package models

// Location is static reference data: a named point with coordinates.
type Location struct {
	ID        uint    `json:"id" gorm:"primaryKey"`
	Label     string  `json:"label" gorm:"not null"`
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
	Altitude  float64 `json:"altitude"`
}

// TableName overrides the gorm default.
func (Location) TableName() string {
	return "locations"
}
