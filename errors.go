package chesscore

import "errors"

// Errors returned by this package. All three indicate a caller-side
// programming error rather than a recoverable runtime condition; no
// operation clamps the input, retries, or substitutes a fallback value.
var (
	// ErrInvalidSquareIndex is returned when a square index falls outside 0-63.
	ErrInvalidSquareIndex = errors.New("chesscore: square index out of range")

	// ErrMalformedNotation is returned when an algebraic square label does not
	// match the two-character [a-h][1-8] pattern.
	ErrMalformedNotation = errors.New("chesscore: malformed algebraic notation")

	// ErrEmptyBitboardScan is returned when a bit scan is invoked on an empty
	// bitboard, for which no bit position exists.
	ErrEmptyBitboardScan = errors.New("chesscore: bit scan on empty bitboard")
)
