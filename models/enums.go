// Package models contains the persisted entities and closed enum types for
// CargoTrack. Enum values are parsed case-insensitively at the API boundary
// and stored lowercase; everything past the boundary works with typed values.
package models

import (
	"fmt"
	"strings"
)

// TransportType is the mode of a shipment leg.
type TransportType string

const (
	TransportSea  TransportType = "sea"
	TransportAir  TransportType = "air"
	TransportLand TransportType = "land"
)

// ParseTransportType normalizes and validates a transport type string.
func ParseTransportType(s string) (TransportType, error) {
	switch t := TransportType(strings.ToLower(strings.TrimSpace(s))); t {
	case TransportSea, TransportAir, TransportLand:
		return t, nil
	default:
		return "", fmt.Errorf("unsupported transport type: %q (must be sea, air or land)", s)
	}
}

// MaintenanceType is the kind of servicing performed on a container.
type MaintenanceType string

const (
	MaintenanceDeepClean      MaintenanceType = "deepclean"
	MaintenanceOutsideRepairs MaintenanceType = "outside_repairs"
)

// ParseMaintenanceType normalizes and validates a maintenance type string.
func ParseMaintenanceType(s string) (MaintenanceType, error) {
	switch t := MaintenanceType(strings.ToLower(strings.TrimSpace(s))); t {
	case MaintenanceDeepClean, MaintenanceOutsideRepairs:
		return t, nil
	default:
		return "", fmt.Errorf("unsupported maintenance type: %q (must be deepclean or outside_repairs)", s)
	}
}

// FileCategory classifies an evidence file attached to a maintenance record.
type FileCategory string

const (
	FileCategoryImage  FileCategory = "image"
	FileCategoryReport FileCategory = "report"
)

// ShipmentStatus is the lifecycle state of a shipment leg.
type ShipmentStatus string

const (
	ShipmentPreparing ShipmentStatus = "preparing"
	ShipmentInTransit ShipmentStatus = "in_transit"
	ShipmentCleared   ShipmentStatus = "cleared"
	ShipmentReturned  ShipmentStatus = "returned"
)

// MaintenanceStatus is the lifecycle state of a maintenance job.
type MaintenanceStatus string

const (
	MaintenanceScheduled      MaintenanceStatus = "scheduled"
	MaintenanceQualityControl MaintenanceStatus = "quality_control"
	MaintenanceInProgress     MaintenanceStatus = "in_progress"
	MaintenanceCompleted      MaintenanceStatus = "completed"
)
