package chesscore

// Color is the side a piece belongs to.
type Color uint8

// Color constants.
const (
	White Color = iota
	Black
	numColors
)

// Other returns the opposing color.
func (c Color) Other() Color {
	if c == White {
		return Black
	}
	return White
}

// String returns "w" for White and "b" for Black.
func (c Color) String() string {
	if c == Black {
		return "b"
	}
	return "w"
}

// PieceType is a colorless piece kind. It is a closed set that never grows.
type PieceType uint8

// PieceType constants.
const (
	Pawn PieceType = iota
	Knight
	Bishop
	Rook
	Queen
	King
	numPieceTypes
)

// String returns the conventional one-letter abbreviation for the piece type.
func (pt PieceType) String() string {
	switch pt {
	case Pawn:
		return "P"
	case Knight:
		return "N"
	case Bishop:
		return "B"
	case Rook:
		return "R"
	case Queen:
		return "Q"
	case King:
		return "K"
	}
	return "?"
}

// startingBBs holds the bit-exact standard starting position, one bitboard
// per color and piece type. Downstream position setup must reproduce these
// values exactly.
var startingBBs = [numColors][numPieceTypes]Bitboard{
	White: {
		Pawn:   0x000000000000FF00,
		Knight: 0x0000000000000042,
		Bishop: 0x0000000000000024,
		Rook:   0x0000000000000081,
		Queen:  0x0000000000000008,
		King:   0x0000000000000010,
	},
	Black: {
		Pawn:   0x00FF000000000000,
		Knight: 0x4200000000000000,
		Bishop: 0x2400000000000000,
		Rook:   0x8100000000000000,
		Queen:  0x0800000000000000,
		King:   0x1000000000000000,
	},
}

// StartingBitboard returns the standard starting-position bitboard for the
// given color and piece type. Out-of-range arguments return EmptyBB.
func StartingBitboard(c Color, pt PieceType) Bitboard {
	if c >= numColors || pt >= numPieceTypes {
		return EmptyBB
	}
	return startingBBs[c][pt]
}

// StartingOccupied returns the union of all starting-position bitboards for
// the given color.
func StartingOccupied(c Color) Bitboard {
	if c >= numColors {
		return EmptyBB
	}
	occ := EmptyBB
	for pt := Pawn; pt < numPieceTypes; pt++ {
		occ |= startingBBs[c][pt]
	}
	return occ
}
