// Package shipping holds the pure shipment domain logic: the fixed duration
// and cost table per transport type and the arrival estimator built on it.
package shipping

import (
	"errors"
	"fmt"
	"time"

	"github.com/cargotrack/cargotrack/models"
)

// ErrUnsupportedTransport is returned for any transport type outside the
// closed sea/air/land set. Callers must reject the request before writing
// anything.
var ErrUnsupportedTransport = errors.New("unsupported transport type")

// rates is the fixed per-mode duration and day-rate table.
var rates = map[models.TransportType]struct {
	days    int
	dayRate float64
}{
	models.TransportLand: {days: 5, dayRate: 10_000},
	models.TransportSea:  {days: 14, dayRate: 1_000},
	models.TransportAir:  {days: 2, dayRate: 100_000},
}

// Estimate is the derived arrival and cost for one shipment leg.
type Estimate struct {
	TransportType models.TransportType `json:"transport_type"`
	DurationDays  int                  `json:"duration_days"`
	Cost          float64              `json:"cost"`
	Arrival       time.Time            `json:"arrival"`
}

// ForTransport computes the arrival date and cost of shipping from ref using
// the given transport type. It is total over the TransportType enum and
// returns ErrUnsupportedTransport for anything else.
func ForTransport(ref time.Time, t models.TransportType) (Estimate, error) {
	r, ok := rates[t]
	if !ok {
		return Estimate{}, fmt.Errorf("%w: %q", ErrUnsupportedTransport, t)
	}

	return Estimate{
		TransportType: t,
		DurationDays:  r.days,
		Cost:          r.dayRate * float64(r.days),
		Arrival:       ref.AddDate(0, 0, r.days),
	}, nil
}

// Duration returns the transit duration for a transport type.
func Duration(t models.TransportType) (time.Duration, error) {
	r, ok := rates[t]
	if !ok {
		return 0, fmt.Errorf("%w: %q", ErrUnsupportedTransport, t)
	}
	return time.Duration(r.days) * 24 * time.Hour, nil
}
