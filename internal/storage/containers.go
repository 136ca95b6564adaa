package storage

import (
	"errors"

	"gorm.io/gorm"

	"github.com/cargotrack/cargotrack/models"
)

// ListContainers returns all containers with location and dimensions.
func (s *Storage) ListContainers() ([]*models.Container, error) {
	var containers []*models.Container
	err := s.db.
		Preload("Location").
		Preload("MetaData").
		Order("id").
		Find(&containers).Error
	if err != nil {
		return nil, err
	}
	return containers, nil
}

// GetContainer returns one container by its label id.
func (s *Storage) GetContainer(id string) (*models.Container, error) {
	var container models.Container
	err := s.db.
		Preload("Location").
		Preload("MetaData").
		First(&container, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, notFound("container", id)
		}
		return nil, err
	}
	return &container, nil
}

// DeleteContainer removes a container. Deleting an id with no matching row
// is reported as ErrNotFound rather than silently succeeding.
func (s *Storage) DeleteContainer(id string) error {
	res := s.db.Delete(&models.Container{}, "id = ?", id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return notFound("container", id)
	}
	return nil
}

// ListContainerPositions returns each container's id and the coordinates of
// its current location.
func (s *Storage) ListContainerPositions() ([]models.ContainerPosition, error) {
	var positions []models.ContainerPosition
	err := s.db.
		Table("containers").
		Select("containers.id AS container_id, locations.label, locations.latitude, locations.longitude, locations.altitude").
		Joins("JOIN locations ON locations.id = containers.location_id").
		Order("containers.id").
		Scan(&positions).Error
	if err != nil {
		return nil, err
	}
	return positions, nil
}
