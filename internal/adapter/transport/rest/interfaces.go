package rest

import (
	"context"

	"github.com/dayanaadylkhanova/shipment-tracker/internal/entity"
)

//go:generate mockgen -source=interfaces.go -destination=./rest_mock.go -package=rest

type Tracker interface {
	TrackShipment(ctx context.Context, reference string) (entity.ShipmentSnapshot, error)
	SearchShipment(ctx context.Context, reference string) (entity.ShipmentSummary, error)
}
