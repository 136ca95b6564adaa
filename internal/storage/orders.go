package storage

import (
	"errors"
	"time"

	"gorm.io/gorm"

	"github.com/cargotrack/cargotrack/internal/shipping"
	"github.com/cargotrack/cargotrack/models"
)

// CreateOrderParams carries the validated inputs of the order workflow.
// Transport has already been parsed into the closed enum; ProductID and
// ClientID are resolved to the configured defaults by the caller when the
// request omitted them.
type CreateOrderParams struct {
	ContainerID string
	Transport   models.TransportType
	ProductID   uint
	ClientID    uint
}

// CreateOrderResult is the outcome of a successful order creation.
type CreateOrderResult struct {
	Order    *models.ClientOrder
	Shipment *models.Shipment
	Estimate shipping.Estimate
}

// CreateOrder runs the order workflow as one transaction: resolve the
// container and its current location, check the product and client exist,
// derive the shipment window and cost from the transport type, then insert
// the shipment and the order. Any failure rolls back both inserts.
func (s *Storage) CreateOrder(params CreateOrderParams) (*CreateOrderResult, error) {
	now := time.Now().UTC()

	var result CreateOrderResult
	err := s.db.Transaction(func(tx *gorm.DB) error {
		var container models.Container
		if err := tx.First(&container, "id = ?", params.ContainerID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return notFound("container", params.ContainerID)
			}
			return err
		}

		var product models.Product
		if err := tx.First(&product, params.ProductID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return notFound("product", params.ProductID)
			}
			return err
		}

		var client models.Client
		if err := tx.First(&client, params.ClientID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return notFound("client", params.ClientID)
			}
			return err
		}

		est, err := shipping.ForTransport(now, params.Transport)
		if err != nil {
			return err
		}

		shipment := &models.Shipment{
			LocationID:    container.LocationID,
			StartTime:     now,
			EndTime:       est.Arrival,
			TransportType: params.Transport,
			Status:        models.ShipmentPreparing,
		}
		if err := tx.Create(shipment).Error; err != nil {
			return err
		}

		order := &models.ClientOrder{
			ContainerID: container.ID,
			ProductID:   product.ID,
			ShipmentID:  shipment.ID,
			ClientID:    client.ID,
		}
		if err := tx.Create(order).Error; err != nil {
			return err
		}

		result = CreateOrderResult{Order: order, Shipment: shipment, Estimate: est}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return &result, nil
}

// ListOrders returns all orders with their client, product, container and
// shipment (including the shipment's location) preloaded.
func (s *Storage) ListOrders() ([]*models.ClientOrder, error) {
	var orders []*models.ClientOrder
	err := s.db.
		Preload("Client").
		Preload("Product").
		Preload("Container").
		Preload("Shipment").
		Preload("Shipment.Location").
		Order("id").
		Find(&orders).Error
	if err != nil {
		return nil, err
	}
	return orders, nil
}

// GetOrder returns one order with its references preloaded.
func (s *Storage) GetOrder(id uint) (*models.ClientOrder, error) {
	var order models.ClientOrder
	err := s.db.
		Preload("Client").
		Preload("Product").
		Preload("Container").
		Preload("Shipment").
		Preload("Shipment.Location").
		First(&order, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, notFound("order", id)
		}
		return nil, err
	}
	return &order, nil
}
