package service

import (
	"context"

	"github.com/dayanaadylkhanova/shipment-tracker/internal/entity"
)

//go:generate mockgen -source=interfaces.go -destination=./service_mock.go -package=service

// Transport performs one HTTP exchange with the tracking backend. Any status
// is a successful exchange; errors mean no response was obtained.
type Transport interface {
	Do(ctx context.Context, req entity.UpstreamRequest) (entity.UpstreamResponse, error)
}

// PuzzleSolver finds a nonce for a single puzzle.
type PuzzleSolver interface {
	Solve(ctx context.Context, p entity.PuzzlePayload) (entity.Nonce, error)
}

// CaptchaSolver answers a whole captcha-puzzle envelope.
type CaptchaSolver interface {
	Solve(ctx context.Context, envelope string) (string, error)
}
