package main

import (
	"context"

	"github.com/dayanaadylkhanova/shipment-tracker/internal/entity"
)

//go:generate mockgen -source=interfaces.go -destination=./trackctl_mock.go -package=main

// Tracker is the part of the pipeline the commands call.
type Tracker interface {
	TrackShipment(ctx context.Context, reference string) (entity.ShipmentSnapshot, error)
	SearchShipment(ctx context.Context, reference string) (entity.ShipmentSummary, error)
}
