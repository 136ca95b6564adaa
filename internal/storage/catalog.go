package storage

import (
	"errors"

	"gorm.io/gorm"

	"github.com/cargotrack/cargotrack/models"
)

// Reference-data reads. These entities are seeded once and never mutated
// through the API.

func (s *Storage) ListLocations() ([]*models.Location, error) {
	var locations []*models.Location
	if err := s.db.Order("id").Find(&locations).Error; err != nil {
		return nil, err
	}
	return locations, nil
}

func (s *Storage) GetLocation(id uint) (*models.Location, error) {
	var location models.Location
	if err := s.db.First(&location, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, notFound("location", id)
		}
		return nil, err
	}
	return &location, nil
}

func (s *Storage) ListProducts() ([]*models.Product, error) {
	var products []*models.Product
	if err := s.db.Order("id").Find(&products).Error; err != nil {
		return nil, err
	}
	return products, nil
}

func (s *Storage) GetProduct(id uint) (*models.Product, error) {
	var product models.Product
	if err := s.db.First(&product, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, notFound("product", id)
		}
		return nil, err
	}
	return &product, nil
}

func (s *Storage) ListClients() ([]*models.Client, error) {
	var clients []*models.Client
	if err := s.db.Order("id").Find(&clients).Error; err != nil {
		return nil, err
	}
	return clients, nil
}

func (s *Storage) GetClient(id uint) (*models.Client, error) {
	var client models.Client
	if err := s.db.First(&client, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, notFound("client", id)
		}
		return nil, err
	}
	return &client, nil
}

// ListShipments returns all shipment legs with their departure locations.
func (s *Storage) ListShipments() ([]*models.Shipment, error) {
	var shipments []*models.Shipment
	err := s.db.
		Preload("Location").
		Order("id").
		Find(&shipments).Error
	if err != nil {
		return nil, err
	}
	return shipments, nil
}

func (s *Storage) GetShipment(id uint) (*models.Shipment, error) {
	var shipment models.Shipment
	err := s.db.
		Preload("Location").
		First(&shipment, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, notFound("shipment", id)
		}
		return nil, err
	}
	return &shipment, nil
}
