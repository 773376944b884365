package chesscore

import (
	"iter"
	"math/bits"
	"strings"
)

// Bitboard represents a set of squares as a 64-bit integer: bit i is set
// exactly when square i is a member. Depending on context the set is an
// occupancy, an attack set, or a geometry mask.
type Bitboard uint64

// --- Predefined Bitboard Constants ---

const (
	EmptyBB Bitboard = 0
	FullBB  Bitboard = ^EmptyBB // All squares set

	// Files (LSB = Rank 1)
	FileABB Bitboard = 0x0101010101010101
	FileBBB Bitboard = FileABB << 1
	FileCBB Bitboard = FileABB << 2
	FileDBB Bitboard = FileABB << 3
	FileEBB Bitboard = FileABB << 4
	FileFBB Bitboard = FileABB << 5
	FileGBB Bitboard = FileABB << 6
	FileHBB Bitboard = FileABB << 7

	// Ranks (LSB = File A)
	Rank1BB Bitboard = 0xFF
	Rank2BB Bitboard = Rank1BB << (8 * 1)
	Rank3BB Bitboard = Rank1BB << (8 * 2)
	Rank4BB Bitboard = Rank1BB << (8 * 3)
	Rank5BB Bitboard = Rank1BB << (8 * 4)
	Rank6BB Bitboard = Rank1BB << (8 * 5)
	Rank7BB Bitboard = Rank1BB << (8 * 6)
	Rank8BB Bitboard = Rank1BB << (8 * 7)

	// Edge masks used as wraparound guards by the attack-table builders.
	NotAFile  Bitboard = ^FileABB
	NotHFile  Bitboard = ^FileHBB
	NotABFile Bitboard = ^(FileABB | FileBBB)
	NotGHFile Bitboard = ^(FileGBB | FileHBB)
)

// --- De Bruijn Bit Scans ---

// deBruijn64 is the multiplier for the 64-bit De Bruijn bit scan: an
// isolated single bit times this constant places a unique 6-bit pattern in
// the top bits of the product, which indexes a permutation table tuned to
// the constant.
const deBruijn64 Bitboard = 0x03F79D71B4CB0A89

// ls1bTable maps the top 6 bits of the De Bruijn product of an isolated
// lowest bit to that bit's position.
var ls1bTable = [64]Square{
	0, 1, 48, 2, 57, 49, 28, 3,
	61, 58, 50, 42, 38, 29, 17, 4,
	62, 55, 59, 36, 53, 51, 43, 22,
	45, 39, 33, 30, 24, 18, 12, 5,
	63, 47, 56, 27, 60, 41, 37, 16,
	54, 35, 52, 21, 44, 32, 23, 11,
	46, 26, 40, 15, 34, 20, 31, 10,
	25, 14, 19, 9, 13, 8, 7, 6,
}

// msbTable is the companion permutation calibrated for the fill-down mask
// produced by msbIndex.
var msbTable = [64]Square{
	0, 47, 1, 56, 48, 27, 2, 60,
	57, 49, 41, 37, 28, 16, 3, 61,
	54, 58, 35, 52, 50, 42, 21, 44,
	38, 32, 29, 23, 17, 11, 4, 62,
	46, 55, 26, 59, 40, 36, 15, 53,
	34, 51, 20, 43, 31, 22, 10, 45,
	25, 39, 14, 33, 19, 30, 9, 24,
	13, 18, 8, 12, 7, 6, 5, 63,
}

// ls1bIndex returns the position of the lowest set bit. Precondition: b != 0.
func ls1bIndex(b Bitboard) Square {
	return ls1bTable[((b&-b)*deBruijn64)>>58]
}

// msbIndex returns the position of the highest set bit. Precondition: b != 0.
// All bits below the highest are first propagated down, turning the board
// into a fill mask whose De Bruijn product is covered by msbTable.
func msbIndex(b Bitboard) Square {
	b |= b >> 1
	b |= b >> 2
	b |= b >> 4
	b |= b >> 8
	b |= b >> 16
	b |= b >> 32
	return msbTable[(b*deBruijn64)>>58]
}

// LS1B returns the position of the least significant set bit.
// Scanning an empty bitboard returns ErrEmptyBitboardScan.
func (b Bitboard) LS1B() (Square, error) {
	if b == EmptyBB {
		return NoSquare, ErrEmptyBitboardScan
	}
	return ls1bIndex(b), nil
}

// MSB returns the position of the most significant set bit.
// Scanning an empty bitboard returns ErrEmptyBitboardScan.
func (b Bitboard) MSB() (Square, error) {
	if b == EmptyBB {
		return NoSquare, ErrEmptyBitboardScan
	}
	return msbIndex(b), nil
}

// PopCount counts the set bits by clearing the lowest bit until none remain.
// Runtime is proportional to the number of set bits, at most 32 in a legal
// position.
func (b Bitboard) PopCount() int {
	count := 0
	for b != EmptyBB {
		b &= b - 1
		count++
	}
	return count
}

// OccupiedSquares returns a lazy sequence of the set squares in strictly
// increasing index order. The sequence is finite, yields exactly PopCount
// squares, and walks a private copy of the bitboard; the receiver is never
// modified.
func (b Bitboard) OccupiedSquares() iter.Seq[Square] {
	return func(yield func(Square) bool) {
		for bb := b; bb != EmptyBB; {
			sq := ls1bIndex(bb)
			if !yield(sq) {
				return
			}
			bb ^= bbFor(sq)
		}
	}
}

// --- Square Operations ---

// Set sets the bit corresponding to the square.
func (b Bitboard) Set(sq Square) Bitboard { return b | bbFor(sq) }

// Clear clears the bit corresponding to the square.
func (b Bitboard) Clear(sq Square) Bitboard { return b &^ bbFor(sq) }

// Toggle flips the bit corresponding to the square.
func (b Bitboard) Toggle(sq Square) Bitboard { return b ^ bbFor(sq) }

// Occupied reports whether the bit corresponding to the square is set.
func (b Bitboard) Occupied(sq Square) bool { return b&bbFor(sq) != EmptyBB }

// IsEmpty reports whether no bits are set.
func (b Bitboard) IsEmpty() bool { return b == EmptyBB }

// Reverse reverses the bits of the bitboard (A1 <-> H8).
func (b Bitboard) Reverse() Bitboard { return Bitboard(bits.Reverse64(uint64(b))) }

// String returns the 64-bit binary string representation (MSB=H8, LSB=A1).
func (b Bitboard) String() string {
	var sb strings.Builder
	for i := 63; i >= 0; i-- {
		if (b>>i)&1 == 1 {
			sb.WriteByte('1')
		} else {
			sb.WriteByte('0')
		}
	}
	return sb.String()
}

// Draw returns a visual grid representation of the bitboard useful for
// debugging: rank 8 at the top down to rank 1, files a through h left to
// right. The glyph choice is not a stability contract.
func (b Bitboard) Draw() string {
	var sb strings.Builder
	sb.WriteString("\n  a b c d e f g h\n")
	for r := Rank8; ; r-- {
		sb.WriteString(r.String())
		sb.WriteByte(' ')
		for f := FileA; f <= FileH; f++ {
			if b.Occupied(NewSquare(f, r)) {
				sb.WriteString("X ")
			} else {
				sb.WriteString(". ")
			}
		}
		sb.WriteString(r.String())
		sb.WriteByte('\n')
		if r == Rank1 {
			break
		}
	}
	sb.WriteString("  a b c d e f g h\n")
	return sb.String()
}
