package api

import (
	"time"

	"github.com/cargotrack/cargotrack/models"
)

// ErrorResponse represents an error response.
type ErrorResponse struct {
	Error   string `json:"error"`
	Details string `json:"details,omitempty"`
}

// MessageResponse represents a simple message response.
type MessageResponse struct {
	Message string `json:"message"`
	ID      string `json:"id,omitempty"`
}

// ListResponse is the paginated envelope shared by the list endpoints.
type ListResponse[T any] struct {
	Count  int `json:"count"`
	Total  int `json:"total"`
	Limit  int `json:"limit"`
	Offset int `json:"offset"`
	Items  []T `json:"items"`
}

// OrderResponse is returned by the order creation endpoint. It carries the
// new order and shipment rows together with the derived estimate.
type OrderResponse struct {
	Order    *models.ClientOrder `json:"order"`
	Shipment *models.Shipment    `json:"shipment"`
	Cost     float64             `json:"cost"`
	Arrival  time.Time           `json:"estimated_arrival"`
}

// LoginResponse is returned by a successful login.
type LoginResponse struct {
	AccessToken string    `json:"access_token"`
	TokenType   string    `json:"token_type"`
	ExpiresAt   time.Time `json:"expires_at"`
}
