package api

import (
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/cargotrack/cargotrack/internal/shipping"
	"github.com/cargotrack/cargotrack/internal/storage"
	"github.com/cargotrack/cargotrack/models"
)

// CreateOrderRequest is the body of POST /api/v1/orders. Product and client
// fall back to the configured defaults when omitted.
type CreateOrderRequest struct {
	ContainerID    string `json:"container_id" validate:"required"`
	ShippingMethod string `json:"shipping_method" validate:"required"`
	ProductID      uint   `json:"product_id"`
	ClientID       uint   `json:"client_id"`
}

// listOrders handles GET /api/v1/orders
func (s *Server) listOrders(c echo.Context) error {
	limit, offset := parsePagination(c)

	orders, err := s.storage.ListOrders()
	if err != nil {
		return storageError(err)
	}

	return c.JSON(http.StatusOK, listResponse(orders, limit, offset))
}

// getOrder handles GET /api/v1/orders/:id
func (s *Server) getOrder(c echo.Context) error {
	id, apiErr := parseUintParam(c, "id")
	if apiErr != nil {
		return apiErr
	}

	order, err := s.storage.GetOrder(id)
	if err != nil {
		return storageError(err)
	}

	return c.JSON(http.StatusOK, order)
}

// createOrder handles POST /api/v1/orders
func (s *Server) createOrder(c echo.Context) error {
	var req CreateOrderRequest
	if err := c.Bind(&req); err != nil {
		return BadRequestError("Invalid request body", "Failed to parse JSON: "+err.Error())
	}

	if fieldErrors := s.validate.Struct(&req); len(fieldErrors) > 0 {
		return ValidationError("Validation failed", fieldErrors)
	}

	transport, err := models.ParseTransportType(req.ShippingMethod)
	if err != nil {
		return BadRequestError("Invalid shipping method", err.Error())
	}

	params := storage.CreateOrderParams{
		ContainerID: req.ContainerID,
		Transport:   transport,
		ProductID:   req.ProductID,
		ClientID:    req.ClientID,
	}
	if params.ProductID == 0 {
		params.ProductID = s.config.Defaults.ProductID
	}
	if params.ClientID == 0 {
		params.ClientID = s.config.Defaults.ClientID
	}

	result, err := s.storage.CreateOrder(params)
	if err != nil {
		return storageError(err)
	}

	return c.JSON(http.StatusCreated, OrderResponse{
		Order:    result.Order,
		Shipment: result.Shipment,
		Cost:     result.Estimate.Cost,
		Arrival:  result.Estimate.Arrival,
	})
}

// priceOrder handles GET /api/v1/orders/price
func (s *Server) priceOrder(c echo.Context) error {
	raw := c.QueryParam("type")
	if raw == "" {
		return BadRequestError("Missing type parameter", "Query parameter 'type' is required")
	}

	transport, err := models.ParseTransportType(raw)
	if err != nil {
		return BadRequestError("Invalid transport type", err.Error())
	}

	estimate, err := shipping.ForTransport(time.Now().UTC(), transport)
	if err != nil {
		return BadRequestError("Invalid transport type", err.Error())
	}

	return c.JSON(http.StatusOK, estimate)
}
