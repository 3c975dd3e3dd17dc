package service

import (
	"context"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/dayanaadylkhanova/shipment-tracker/internal/entity"
	"github.com/dayanaadylkhanova/shipment-tracker/internal/metrics"
)

// ChallengeSolver turns a captcha-puzzle header into a captcha-solution
// header value.
type ChallengeSolver struct {
	pow PuzzleSolver
}

func NewChallengeSolver(pow PuzzleSolver) *ChallengeSolver {
	return &ChallengeSolver{pow: pow}
}

// Solve answers every puzzle of the envelope. Puzzles are searched
// concurrently; the first failure cancels the rest and fails the batch.
func (c *ChallengeSolver) Solve(ctx context.Context, envelope string) (string, error) {
	start := time.Now()
	defer func() { metrics.CaptchaSolveDuration.Observe(time.Since(start).Seconds()) }()

	tokens, err := DecodeChallenge(envelope)
	if err != nil {
		return "", err
	}

	solutions := make([]entity.Solution, len(tokens))
	g, gctx := errgroup.WithContext(ctx)
	for i, tok := range tokens {
		i, tok := i, tok
		g.Go(func() error {
			n, err := c.pow.Solve(gctx, tok.Payload)
			if err != nil {
				return err
			}
			solutions[i] = NewSolution(tok.Raw, n)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return "", err
	}
	return EncodeSolutions(solutions)
}
