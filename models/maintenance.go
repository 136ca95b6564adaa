package models

import "time"

// Maintenance is a scheduled servicing job on a container. Evidence files are
// attached through ReportFile rows rather than path columns, so a job can
// carry any number of images plus a single report.
type Maintenance struct {
	ID           uint              `json:"id" gorm:"primaryKey"`
	ContainerID  string            `json:"container_id" gorm:"not null;index"`
	Type         MaintenanceType   `json:"maintenance_type" gorm:"column:maintenance_type;type:varchar(24);not null"`
	Status       MaintenanceStatus `json:"status" gorm:"type:varchar(24);not null;default:'scheduled'"`
	ScheduledFor time.Time         `json:"scheduled_for"`
	CreatedAt    time.Time         `json:"created_at"`

	Container *Container   `json:"container,omitempty" gorm:"foreignKey:ContainerID"`
	Files     []ReportFile `json:"files,omitempty" gorm:"foreignKey:MaintenanceID"`
}

// TableName overrides the gorm default.
func (Maintenance) TableName() string {
	return "maintenance"
}

// ReportFile is one evidence file attached to a maintenance job. At most one
// row per maintenance has Category "report"; a later report upload replaces
// the earlier row.
type ReportFile struct {
	ID            uint         `json:"id" gorm:"primaryKey"`
	MaintenanceID uint         `json:"maintenance_id" gorm:"not null;index"`
	Category      FileCategory `json:"category" gorm:"type:varchar(8);not null"`
	FileName      string       `json:"file_name" gorm:"not null"`
	StoredPath    string       `json:"stored_path" gorm:"not null"`
	Size          int64        `json:"size"`
	CreatedAt     time.Time    `json:"created_at"`
}

// TableName overrides the gorm default.
func (ReportFile) TableName() string {
	return "report_files"
}
