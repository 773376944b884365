package chesscore

// Per-square geometry masks. Every square lies on exactly one rank, one
// file, one principal diagonal (a1-h8 direction) and one anti-diagonal
// (h1-a8 direction); the 15 diagonals and 15 anti-diagonals each partition
// the board. Built once by initMasks and immutable afterwards.
var (
	rankMasks     [64]Bitboard
	fileMasks     [64]Bitboard
	diagMasks     [64]Bitboard
	antiDiagMasks [64]Bitboard
)

// diagID returns the principal-diagonal bucket of a square, 0-14.
func diagID(sq Square) int {
	return int(sq.File()) - int(sq.Rank()) + 7
}

// antiDiagID returns the anti-diagonal bucket of a square, 0-14.
func antiDiagID(sq Square) int {
	return int(sq.File()) + int(sq.Rank())
}

// initMasks builds the rank, file, diagonal and anti-diagonal mask tables
// in a single pass over the 64 squares.
func initMasks() {
	var diags, antiDiags [15]Bitboard
	for sq := A1; sq <= H8; sq++ {
		diags[diagID(sq)] |= bbFor(sq)
		antiDiags[antiDiagID(sq)] |= bbFor(sq)
	}
	for sq := A1; sq <= H8; sq++ {
		rankMasks[sq] = Rank1BB << (8 * uint8(sq.Rank()))
		fileMasks[sq] = FileABB << uint8(sq.File())
		diagMasks[sq] = diags[diagID(sq)]
		antiDiagMasks[sq] = antiDiags[antiDiagID(sq)]
	}
}

// BBRank returns the bitboard mask for the given rank.
func BBRank(r Rank) Bitboard {
	if r > Rank8 {
		return EmptyBB
	}
	return Rank1BB << (8 * uint8(r))
}

// BBFile returns the bitboard mask for the given file.
func BBFile(f File) Bitboard {
	if f > FileH {
		return EmptyBB
	}
	return FileABB << uint8(f)
}

// RankMask returns the mask of the rank containing sq.
func RankMask(sq Square) Bitboard {
	if !sq.IsValid() {
		return EmptyBB
	}
	return rankMasks[sq]
}

// FileMask returns the mask of the file containing sq.
func FileMask(sq Square) Bitboard {
	if !sq.IsValid() {
		return EmptyBB
	}
	return fileMasks[sq]
}

// DiagonalMask returns the mask of the principal diagonal (a1-h8 direction)
// containing sq.
func DiagonalMask(sq Square) Bitboard {
	if !sq.IsValid() {
		return EmptyBB
	}
	return diagMasks[sq]
}

// AntiDiagonalMask returns the mask of the anti-diagonal (h1-a8 direction)
// containing sq.
func AntiDiagonalMask(sq Square) Bitboard {
	if !sq.IsValid() {
		return EmptyBB
	}
	return antiDiagMasks[sq]
}
