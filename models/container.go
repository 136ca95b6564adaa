package models

// Container is a physical shipping container. IDs are free-form labels
// assigned by the owner (e.g. "ASML 81263 4"), not generated integers.
type Container struct {
	ID         string `json:"id" gorm:"primaryKey"`
	LocationID uint   `json:"location_id" gorm:"not null;index"`
	MetaDataID uint   `json:"meta_data_id"`
	CycleCount int    `json:"cycle_count"`

	Location *Location          `json:"location,omitempty" gorm:"foreignKey:LocationID"`
	MetaData *ContainerMetaData `json:"meta_data,omitempty" gorm:"foreignKey:MetaDataID"`
}

// TableName overrides the gorm default.
func (Container) TableName() string {
	return "containers"
}

// ContainerMetaData holds the physical dimensions of a container, 1:1 with
// Container.
type ContainerMetaData struct {
	ID     uint    `json:"id" gorm:"primaryKey"`
	Length float64 `json:"length"`
	Height float64 `json:"height"`
	Width  float64 `json:"width"`
	Volume float64 `json:"volume"`
	Weight float64 `json:"weight"`
}

// TableName overrides the gorm default.
func (ContainerMetaData) TableName() string {
	return "container_meta_data"
}

// ContainerPosition is the projection returned by the container coordinate
// listing: the container id and where it currently sits.
type ContainerPosition struct {
	ContainerID string  `json:"container_id"`
	Label       string  `json:"label"`
	Latitude    float64 `json:"latitude"`
	Longitude   float64 `json:"longitude"`
	Altitude    float64 `json:"altitude"`
}
