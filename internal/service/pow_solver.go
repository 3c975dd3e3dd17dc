package service

import (
	"context"
	"crypto/sha256"
	"encoding/binary"
	"fmt"
	"math/big"
	"runtime"
	"sync"
	"sync/atomic"

	"github.com/dayanaadylkhanova/shipment-tracker/internal/entity"
)

// DefaultMaxNonce bounds the search when no limit is configured.
const DefaultMaxNonce = uint64(1) << 32

// how often a worker looks at ctx and the winner flag
const checkEvery = 1 << 10

// Solver brute-forces captcha puzzles: it looks for a nonce n such that
// reverse(sha256(sha256(puzzle || le64(n)))) < multiplier * 2^(8*(exponent-3)).
type Solver struct {
	workers  int
	maxNonce uint64
}

// NewSolver returns a solver splitting each search over workers goroutines
// (GOMAXPROCS when workers <= 0) and giving up after maxNonce candidates
// (DefaultMaxNonce when 0).
func NewSolver(workers int, maxNonce uint64) *Solver {
	if workers <= 0 {
		workers = runtime.GOMAXPROCS(0)
	}
	if maxNonce == 0 {
		maxNonce = DefaultMaxNonce
	}
	return &Solver{workers: workers, maxNonce: maxNonce}
}

// Target computes the difficulty bound encoded in p.
func Target(p entity.PuzzlePayload) (*big.Int, error) {
	exp := int(p[entity.PuzzleExponentByte])
	mul := int64(p[entity.PuzzleMultiplierByte])
	if exp < 3 {
		return nil, entity.NewError("puzzle target", entity.ErrMalformedChallenge, nil,
			fmt.Sprintf("exponent byte %d below 3", exp))
	}
	if mul == 0 {
		return nil, entity.NewError("puzzle target", entity.ErrMalformedChallenge, nil, "zero multiplier")
	}
	t := new(big.Int).Lsh(big.NewInt(mul), uint(8*(exp-3)))
	return t, nil
}

// target as 32 big-endian bytes; all is set when every hash is below it
type bound struct {
	b   [32]byte
	all bool
}

func newBound(t *big.Int) bound {
	var bd bound
	if t.BitLen() > 256 {
		bd.all = true
		return bd
	}
	t.FillBytes(bd.b[:])
	return bd
}

// below reports whether the byte-reversed digest, read big-endian, is < b.
func (bd *bound) below(digest *[32]byte) bool {
	if bd.all {
		return true
	}
	for i := 0; i < 32; i++ {
		d, t := digest[31-i], bd.b[i]
		if d != t {
			return d < t
		}
	}
	return false
}

func digest(buf *[40]byte) [32]byte {
	h1 := sha256.Sum256(buf[:])
	return sha256.Sum256(h1[:])
}

// Check reports whether n answers p.
func Check(p entity.PuzzlePayload, n entity.Nonce) (bool, error) {
	t, err := Target(p)
	if err != nil {
		return false, err
	}
	bd := newBound(t)
	var buf [40]byte
	copy(buf[:], p[:])
	binary.LittleEndian.PutUint64(buf[32:], uint64(n))
	d := digest(&buf)
	return bd.below(&d), nil
}

// Solve searches for any nonce answering p. It fails with ErrSolverExhausted
// once maxNonce candidates were tried, or with ctx.Err() when cancelled.
func (s *Solver) Solve(ctx context.Context, p entity.PuzzlePayload) (entity.Nonce, error) {
	t, err := Target(p)
	if err != nil {
		return 0, err
	}
	bd := newBound(t)

	searchCtx, cancel := context.WithCancel(ctx)
	defer cancel()

	var (
		found  atomic.Bool
		winner entity.Nonce
		once   sync.Once
		wg     sync.WaitGroup
	)
	stride := uint64(s.workers)
	for w := 0; w < s.workers; w++ {
		wg.Add(1)
		go func(start uint64) {
			defer wg.Done()
			if n, ok := s.search(searchCtx, &p, &bd, start, stride, &found); ok {
				once.Do(func() {
					winner = n
					found.Store(true)
					cancel()
				})
			}
		}(uint64(w))
	}
	wg.Wait()

	if found.Load() {
		return winner, nil
	}
	if err := ctx.Err(); err != nil {
		return 0, err
	}
	return 0, entity.NewError("solve puzzle", entity.ErrSolverExhausted, nil,
		fmt.Sprintf("no nonce below %d", s.maxNonce))
}

func (s *Solver) search(ctx context.Context, p *entity.PuzzlePayload, bd *bound, start, stride uint64, found *atomic.Bool) (entity.Nonce, bool) {
	var buf [40]byte
	copy(buf[:], p[:])
	var i uint64
	for n := start; n < s.maxNonce; n += stride {
		if i++; i%checkEvery == 0 {
			if found.Load() || ctx.Err() != nil {
				return 0, false
			}
		}
		binary.LittleEndian.PutUint64(buf[32:], n)
		d := digest(&buf)
		if bd.below(&d) {
			return entity.Nonce(n), true
		}
		if s.maxNonce-n <= stride {
			break
		}
	}
	return 0, false
}
