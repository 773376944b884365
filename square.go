// Package chesscore implements the bitboard board-representation core of a
// chess engine: 64-bit bitboards with branch-free bit-scanning primitives,
// per-square geometry masks, and precomputed attack tables for the leaper
// pieces plus the occupancy-indexed first-rank table that underlies sliding
// attack generation.
//
// Squares use Little-Endian Rank-File mapping: index = rank*8 + file with
// both zero-indexed, so A1=0, H1=7, A8=56 and H8=63.
package chesscore

import "fmt"

// A Square is the index of one of the 64 board squares (A1=0 .. H8=63).
type Square uint8

// Square constants under LERF mapping.
const (
	A1 Square = iota
	B1
	C1
	D1
	E1
	F1
	G1
	H1
	A2
	B2
	C2
	D2
	E2
	F2
	G2
	H2
	A3
	B3
	C3
	D3
	E3
	F3
	G3
	H3
	A4
	B4
	C4
	D4
	E4
	F4
	G4
	H4
	A5
	B5
	C5
	D5
	E5
	F5
	G5
	H5
	A6
	B6
	C6
	D6
	E6
	F6
	G6
	H6
	A7
	B7
	C7
	D7
	E7
	F7
	G7
	H7
	A8
	B8
	C8
	D8
	E8
	F8
	G8
	H8
	// NoSquare is a sentinel for "no square"; it is never a valid index.
	NoSquare Square = 64
)

// A File is a board column, FileA through FileH.
type File uint8

// File constants.
const (
	FileA File = iota
	FileB
	FileC
	FileD
	FileE
	FileF
	FileG
	FileH
)

// String returns the file letter "a".."h".
func (f File) String() string {
	return string('a' + rune(f))
}

// A Rank is a board row, Rank1 through Rank8.
type Rank uint8

// Rank constants.
const (
	Rank1 Rank = iota
	Rank2
	Rank3
	Rank4
	Rank5
	Rank6
	Rank7
	Rank8
)

// String returns the rank digit "1".."8".
func (r Rank) String() string {
	return string('1' + rune(r))
}

// NewSquare returns the square on the given file and rank.
func NewSquare(f File, r Rank) Square {
	return Square(uint8(r)<<3 | uint8(f))
}

// ParseSquare parses a two-character algebraic label such as "e4" into a
// Square. The label must match [a-h][1-8] exactly; anything else returns
// ErrMalformedNotation.
func ParseSquare(s string) (Square, error) {
	if len(s) != 2 {
		return NoSquare, fmt.Errorf("%w: %q", ErrMalformedNotation, s)
	}
	f := s[0] - 'a'
	r := s[1] - '1'
	if f > 7 || r > 7 {
		return NoSquare, fmt.Errorf("%w: %q", ErrMalformedNotation, s)
	}
	return Square(r<<3 | f), nil
}

// File returns the square's file.
func (sq Square) File() File {
	return File(sq & 7)
}

// Rank returns the square's rank.
func (sq Square) Rank() Rank {
	return Rank(sq >> 3)
}

// IsValid reports whether the square is a real board square (0-63).
func (sq Square) IsValid() bool {
	return sq < NoSquare
}

// String returns the algebraic label of the square, e.g. "e4".
// NoSquare and other out-of-range values render as "-".
func (sq Square) String() string {
	if !sq.IsValid() {
		return "-"
	}
	return sq.File().String() + sq.Rank().String()
}

// SquareBB returns a bitboard with only the given square set.
// Indices outside 0-63 return ErrInvalidSquareIndex.
func SquareBB(sq Square) (Bitboard, error) {
	if !sq.IsValid() {
		return EmptyBB, fmt.Errorf("%w: %d", ErrInvalidSquareIndex, sq)
	}
	return Bitboard(1) << sq, nil
}

// bbFor is SquareBB for squares already known to be valid. Construction
// loops and table lookups use it to avoid threading impossible errors.
func bbFor(sq Square) Bitboard {
	return Bitboard(1) << sq
}
