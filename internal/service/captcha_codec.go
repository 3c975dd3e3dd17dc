package service

import (
	"encoding/base64"
	"encoding/binary"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/dayanaadylkhanova/shipment-tracker/internal/entity"
)

type tokenClaims struct {
	Puzzle *string `json:"puzzle"`
}

// DecodeChallenge splits a captcha-puzzle header value into its tokens and
// extracts the puzzle of each one. Token order is preserved.
func DecodeChallenge(envelope string) ([]entity.PuzzleToken, error) {
	raw, err := decodeStd(strings.TrimSpace(envelope))
	if err != nil {
		return nil, entity.NewError("decode challenge", entity.ErrMalformedChallenge, err, "envelope is not base64")
	}

	var tokens []entity.PuzzleToken
	for _, jwt := range strings.Split(string(raw), ",") {
		jwt = strings.TrimSpace(jwt)
		if jwt == "" {
			continue
		}
		payload, err := decodeToken(jwt)
		if err != nil {
			return nil, err
		}
		tokens = append(tokens, entity.PuzzleToken{Raw: jwt, Payload: payload})
	}
	if len(tokens) == 0 {
		return nil, entity.NewError("decode challenge", entity.ErrMalformedChallenge, nil, "no tokens")
	}
	return tokens, nil
}

func decodeToken(jwt string) (entity.PuzzlePayload, error) {
	var p entity.PuzzlePayload

	parts := strings.Split(jwt, ".")
	if len(parts) < 2 {
		return p, entity.NewError("decode token", entity.ErrMalformedChallenge, nil, "expected header.payload.signature")
	}
	claimsJSON, err := base64.RawURLEncoding.DecodeString(strings.TrimRight(parts[1], "="))
	if err != nil {
		return p, entity.NewError("decode token", entity.ErrMalformedChallenge, err, "payload is not base64url")
	}
	var claims tokenClaims
	if err := json.Unmarshal(claimsJSON, &claims); err != nil {
		return p, entity.NewError("decode token", entity.ErrMalformedChallenge, err, "payload is not json")
	}
	if claims.Puzzle == nil {
		return p, entity.NewError("decode token", entity.ErrMalformedChallenge, nil, "no puzzle claim")
	}
	puzzle, err := decodeStd(*claims.Puzzle)
	if err != nil {
		return p, entity.NewError("decode token", entity.ErrMalformedChallenge, err, "puzzle is not base64")
	}
	if len(puzzle) != entity.PuzzleSize {
		return p, entity.NewError("decode token", entity.ErrMalformedChallenge, nil,
			fmt.Sprintf("puzzle is %d bytes, want %d", len(puzzle), entity.PuzzleSize))
	}
	copy(p[:], puzzle)
	return p, nil
}

// decodeStd reads standard base64 with or without padding.
func decodeStd(s string) ([]byte, error) {
	return base64.RawStdEncoding.DecodeString(strings.TrimRight(s, "="))
}

// EncodeSolutions renders solved tokens as the captcha-solution header value.
func EncodeSolutions(solutions []entity.Solution) (string, error) {
	out, err := json.Marshal(solutions)
	if err != nil {
		return "", fmt.Errorf("marshal solutions: %w", err)
	}
	return base64.StdEncoding.EncodeToString(out), nil
}

// NewSolution encodes n as the base64 of its 8 little-endian bytes.
func NewSolution(jwt string, n entity.Nonce) entity.Solution {
	return entity.Solution{JWT: jwt, Solution: base64.StdEncoding.EncodeToString(nonceBytes(n))}
}

func nonceBytes(n entity.Nonce) []byte {
	b := make([]byte, 8)
	binary.LittleEndian.PutUint64(b, uint64(n))
	return b
}
