package entity

// PuzzleSize is the length of a decoded captcha puzzle.
const PuzzleSize = 32

// Offsets of the difficulty bytes inside a puzzle.
const (
	PuzzleExponentByte   = 13
	PuzzleMultiplierByte = 14
)

// PuzzlePayload is the raw difficulty-encoded puzzle carried by a token.
type PuzzlePayload [PuzzleSize]byte

// Nonce is a candidate answer, sent on the wire as 8 little-endian bytes.
type Nonce uint64

// PuzzleToken is one signed token of a challenge envelope.
type PuzzleToken struct {
	Raw     string
	Payload PuzzlePayload
}

// Solution pairs a token with its base64 nonce. Field order is the wire order.
type Solution struct {
	JWT      string `json:"jwt"`
	Solution string `json:"solution"`
}
