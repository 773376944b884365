package chesscore

// Precomputed attack tables for the leaper pieces and the first-rank
// slider primitive. All tables are built exactly once, by init before any
// concurrent use, and are read-only thereafter: lookups need no
// synchronization no matter how many goroutines share them.
var (
	kingAttacks   [64]Bitboard
	knightAttacks [64]Bitboard
	pawnPushes    [numColors][64]Bitboard // quiet pushes, blockers ignored
	pawnCaptures  [numColors][64]Bitboard

	// firstRankAttacks[i][occ] is the truncated attack byte for a slider on
	// line position i with 8-bit line occupancy occ. Composing it onto an
	// arbitrary rank, file or diagonal is the consumer's responsibility.
	firstRankAttacks [8][256]uint8
)

func init() {
	initMasks()
	initKingAttacks()
	initKnightAttacks()
	initPawnTables()
	initFirstRankAttacks()
}

// Leaper destinations are shifted copies of the single-bit board. Every
// shift that changes file is guarded by masking out the origin files that
// would wrap across the a/h edge; an unguarded shift silently teleports a
// piece from file h to file a.

func initKingAttacks() {
	for sq := A1; sq <= H8; sq++ {
		bb := bbFor(sq)
		attacks := (bb & NotHFile) << 9 // northeast
		attacks |= bb << 8              // north
		attacks |= (bb & NotAFile) << 7 // northwest
		attacks |= (bb & NotHFile) << 1 // east
		attacks |= (bb & NotAFile) >> 1 // west
		attacks |= (bb & NotHFile) >> 7 // southeast
		attacks |= bb >> 8              // south
		attacks |= (bb & NotAFile) >> 9 // southwest
		kingAttacks[sq] = attacks
	}
}

func initKnightAttacks() {
	for sq := A1; sq <= H8; sq++ {
		bb := bbFor(sq)
		// One file of horizontal travel needs a single-file guard, two
		// files need a double-file guard.
		attacks := (bb & NotABFile) << 6  // north 1, west 2
		attacks |= (bb & NotAFile) << 15  // north 2, west 1
		attacks |= (bb & NotHFile) << 17  // north 2, east 1
		attacks |= (bb & NotGHFile) << 10 // north 1, east 2
		attacks |= (bb & NotGHFile) >> 6  // south 1, east 2
		attacks |= (bb & NotHFile) >> 15  // south 2, east 1
		attacks |= (bb & NotAFile) >> 17  // south 2, west 1
		attacks |= (bb & NotABFile) >> 10 // south 1, west 2
		knightAttacks[sq] = attacks
	}
}

func initPawnTables() {
	for sq := A1; sq <= H8; sq++ {
		bb := bbFor(sq)

		// Quiet pushes: single forward step, plus the double step from the
		// color's starting rank. Occupancy is not consulted here; the
		// consuming legality layer filters pushes against real blockers.
		pawnPushes[White][sq] = bb<<8 | (bb&Rank2BB)<<16
		pawnPushes[Black][sq] = bb>>8 | (bb&Rank7BB)>>16

		pawnCaptures[White][sq] = (bb&NotAFile)<<7 | (bb&NotHFile)<<9
		pawnCaptures[Black][sq] = (bb&NotAFile)>>9 | (bb&NotHFile)>>7
	}
}

// firstRankAttackByte computes the truncated attack byte for a slider at
// line position i (0-7) under the given 8-bit occupancy. Each side's ray
// runs to the board edge unless a blocker intervenes, in which case it is
// cut just past the nearest blocker; the blocker square itself stays in
// the set, consistent with capture semantics.
func firstRankAttackByte(i int, occ uint8) uint8 {
	x := uint8(1) << i

	leftAttacks := x - 1 // all squares strictly below i
	if blockers := leftAttacks & occ; blockers != 0 {
		nearest := uint8(1) << msbIndex(Bitboard(blockers))
		leftAttacks ^= nearest - 1
	}

	rightAttacks := ^x & ^(x - 1) // all squares strictly above i
	if blockers := rightAttacks & occ; blockers != 0 {
		nearest := uint8(1) << ls1bIndex(Bitboard(blockers))
		rightAttacks ^= ^nearest & ^(nearest - 1)
	}

	return leftAttacks ^ rightAttacks
}

func initFirstRankAttacks() {
	for i := 0; i < 8; i++ {
		for occ := 0; occ < 256; occ++ {
			firstRankAttacks[i][occ] = firstRankAttackByte(i, uint8(occ))
		}
	}
}

// --- Accessors ---

// GetKingAttacks returns the squares attacked by a king on sq.
func GetKingAttacks(sq Square) Bitboard {
	if !sq.IsValid() {
		return EmptyBB
	}
	return kingAttacks[sq]
}

// GetKnightAttacks returns the squares attacked by a knight on sq.
func GetKnightAttacks(sq Square) Bitboard {
	if !sq.IsValid() {
		return EmptyBB
	}
	return knightAttacks[sq]
}

// GetPawnPushes returns the quiet push destinations for a pawn of the given
// color on sq: the single forward step plus, from the color's starting
// rank, the double step. The result is a pseudo-move set that ignores
// blockers; callers filter it against the full occupancy.
func GetPawnPushes(sq Square, c Color) Bitboard {
	if !sq.IsValid() || c >= numColors {
		return EmptyBB
	}
	return pawnPushes[c][sq]
}

// GetPawnAttacks returns the capture destinations for a pawn of the given
// color on sq.
func GetPawnAttacks(sq Square, c Color) Bitboard {
	if !sq.IsValid() || c >= numColors {
		return EmptyBB
	}
	return pawnCaptures[c][sq]
}

// FirstRankAttacks returns the precomputed truncated attack byte for a
// slider at line position pos (0-7) under the given occupancy byte. It is
// the canonical 8-bit primitive that, via coordinate rotation, yields full
// sliding attacks on any rank, file or diagonal.
func FirstRankAttacks(pos int, occ uint8) uint8 {
	if pos < 0 || pos > 7 {
		return 0
	}
	return firstRankAttacks[pos][occ]
}
