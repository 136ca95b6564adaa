package api

import (
	"net/http"

	"github.com/labstack/echo/v4"
)

// listLocations handles GET /api/v1/locations
func (s *Server) listLocations(c echo.Context) error {
	limit, offset := parsePagination(c)

	locations, err := s.storage.ListLocations()
	if err != nil {
		return storageError(err)
	}

	return c.JSON(http.StatusOK, listResponse(locations, limit, offset))
}

// getLocation handles GET /api/v1/locations/:id
func (s *Server) getLocation(c echo.Context) error {
	id, apiErr := parseUintParam(c, "id")
	if apiErr != nil {
		return apiErr
	}

	location, err := s.storage.GetLocation(id)
	if err != nil {
		return storageError(err)
	}

	return c.JSON(http.StatusOK, location)
}

// listProducts handles GET /api/v1/products
func (s *Server) listProducts(c echo.Context) error {
	limit, offset := parsePagination(c)

	products, err := s.storage.ListProducts()
	if err != nil {
		return storageError(err)
	}

	return c.JSON(http.StatusOK, listResponse(products, limit, offset))
}

// getProduct handles GET /api/v1/products/:id
func (s *Server) getProduct(c echo.Context) error {
	id, apiErr := parseUintParam(c, "id")
	if apiErr != nil {
		return apiErr
	}

	product, err := s.storage.GetProduct(id)
	if err != nil {
		return storageError(err)
	}

	return c.JSON(http.StatusOK, product)
}

// listClients handles GET /api/v1/clients
func (s *Server) listClients(c echo.Context) error {
	limit, offset := parsePagination(c)

	clients, err := s.storage.ListClients()
	if err != nil {
		return storageError(err)
	}

	return c.JSON(http.StatusOK, listResponse(clients, limit, offset))
}

// getClient handles GET /api/v1/clients/:id
func (s *Server) getClient(c echo.Context) error {
	id, apiErr := parseUintParam(c, "id")
	if apiErr != nil {
		return apiErr
	}

	client, err := s.storage.GetClient(id)
	if err != nil {
		return storageError(err)
	}

	return c.JSON(http.StatusOK, client)
}

// listShipments handles GET /api/v1/shipments
func (s *Server) listShipments(c echo.Context) error {
	limit, offset := parsePagination(c)

	shipments, err := s.storage.ListShipments()
	if err != nil {
		return storageError(err)
	}

	return c.JSON(http.StatusOK, listResponse(shipments, limit, offset))
}

// getShipment handles GET /api/v1/shipments/:id
func (s *Server) getShipment(c echo.Context) error {
	id, apiErr := parseUintParam(c, "id")
	if apiErr != nil {
		return apiErr
	}

	shipment, err := s.storage.GetShipment(id)
	if err != nil {
		return storageError(err)
	}

	return c.JSON(http.StatusOK, shipment)
}
