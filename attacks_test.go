package chesscore

import (
	"sync"
	"testing"

	"github.com/dylhunn/dragontoothmg"
)

// squareSet builds a bitboard from algebraic labels.
func squareSet(t *testing.T, labels ...string) Bitboard {
	t.Helper()
	bb := EmptyBB
	for _, l := range labels {
		sq, err := ParseSquare(l)
		if err != nil {
			t.Fatalf("bad label %q: %v", l, err)
		}
		bb = bb.Set(sq)
	}
	return bb
}

func TestKingAttacks(t *testing.T) {
	cases := []struct {
		from string
		want []string
	}{
		{"d4", []string{"c3", "c4", "c5", "d3", "d5", "e3", "e4", "e5"}},
		{"a1", []string{"a2", "b1", "b2"}},
		{"h1", []string{"g1", "g2", "h2"}},
		{"a8", []string{"a7", "b7", "b8"}},
		{"h8", []string{"g7", "g8", "h7"}},
		{"e1", []string{"d1", "d2", "e2", "f1", "f2"}},
		{"a4", []string{"a3", "a5", "b3", "b4", "b5"}},
	}
	for _, c := range cases {
		sq, _ := ParseSquare(c.from)
		want := squareSet(t, c.want...)
		if got := GetKingAttacks(sq); got != want {
			t.Fatalf("king attacks from %s expected%sbut got%s", c.from, want.Draw(), got.Draw())
		}
	}
}

// kingModel is an independent offset-walk reference for the shift-built table.
func kingModel(sq Square) Bitboard {
	bb := EmptyBB
	f, r := int(sq.File()), int(sq.Rank())
	for df := -1; df <= 1; df++ {
		for dr := -1; dr <= 1; dr++ {
			if df == 0 && dr == 0 {
				continue
			}
			nf, nr := f+df, r+dr
			if nf >= 0 && nf < 8 && nr >= 0 && nr < 8 {
				bb = bb.Set(NewSquare(File(nf), Rank(nr)))
			}
		}
	}
	return bb
}

func knightModel(sq Square) Bitboard {
	bb := EmptyBB
	f, r := int(sq.File()), int(sq.Rank())
	offsets := [8][2]int{{1, 2}, {2, 1}, {2, -1}, {1, -2}, {-1, -2}, {-2, -1}, {-2, 1}, {-1, 2}}
	for _, o := range offsets {
		nf, nr := f+o[0], r+o[1]
		if nf >= 0 && nf < 8 && nr >= 0 && nr < 8 {
			bb = bb.Set(NewSquare(File(nf), Rank(nr)))
		}
	}
	return bb
}

func TestKingAttacksModel(t *testing.T) {
	for sq := A1; sq <= H8; sq++ {
		if got, want := GetKingAttacks(sq), kingModel(sq); got != want {
			t.Fatalf("king attacks from %s expected%sbut got%s", sq, want.Draw(), got.Draw())
		}
	}
}

func TestKnightAttacks(t *testing.T) {
	cases := []struct {
		from string
		want []string
	}{
		{"a1", []string{"b3", "c2"}},
		{"h1", []string{"f2", "g3"}},
		{"a8", []string{"b6", "c7"}},
		{"h8", []string{"f7", "g6"}},
		{"b1", []string{"a3", "c3", "d2"}},
		{"g2", []string{"e1", "e3", "f4", "h4"}},
		{"d4", []string{"b3", "b5", "c2", "c6", "e2", "e6", "f3", "f5"}},
	}
	for _, c := range cases {
		sq, _ := ParseSquare(c.from)
		want := squareSet(t, c.want...)
		if got := GetKnightAttacks(sq); got != want {
			t.Fatalf("knight attacks from %s expected%sbut got%s", c.from, want.Draw(), got.Draw())
		}
	}
	for sq := A1; sq <= H8; sq++ {
		if got, want := GetKnightAttacks(sq), knightModel(sq); got != want {
			t.Fatalf("knight attacks from %s expected%sbut got%s", sq, want.Draw(), got.Draw())
		}
	}
}

func TestPawnPushes(t *testing.T) {
	cases := []struct {
		from  string
		color Color
		want  []string
	}{
		{"e2", White, []string{"e3", "e4"}}, // double push from the starting rank
		{"e3", White, []string{"e4"}},
		{"a2", White, []string{"a3", "a4"}},
		{"h7", White, []string{"h8"}},
		{"e7", Black, []string{"e6", "e5"}},
		{"e6", Black, []string{"e5"}},
		{"h7", Black, []string{"h6", "h5"}},
		{"a2", Black, []string{"a1"}},
	}
	for _, c := range cases {
		sq, _ := ParseSquare(c.from)
		want := squareSet(t, c.want...)
		if got := GetPawnPushes(sq, c.color); got != want {
			t.Fatalf("%s pawn pushes from %s expected%sbut got%s", c.color, c.from, want.Draw(), got.Draw())
		}
	}
}

func TestPawnAttacks(t *testing.T) {
	cases := []struct {
		from  string
		color Color
		want  []string
	}{
		{"e4", White, []string{"d5", "f5"}},
		{"a4", White, []string{"b5"}}, // no wrap past file a
		{"h4", White, []string{"g5"}}, // no wrap past file h
		{"e5", Black, []string{"d4", "f4"}},
		{"a5", Black, []string{"b4"}},
		{"h5", Black, []string{"g4"}},
	}
	for _, c := range cases {
		sq, _ := ParseSquare(c.from)
		want := squareSet(t, c.want...)
		if got := GetPawnAttacks(sq, c.color); got != want {
			t.Fatalf("%s pawn attacks from %s expected%sbut got%s", c.color, c.from, want.Draw(), got.Draw())
		}
	}
}

// firstRankModel walks outward from the mover square, stopping at and
// including the first occupied square on each side.
func firstRankModel(pos int, occ uint8) uint8 {
	var attacks uint8
	for i := pos - 1; i >= 0; i-- {
		attacks |= 1 << i
		if occ&(1<<i) != 0 {
			break
		}
	}
	for i := pos + 1; i < 8; i++ {
		attacks |= 1 << i
		if occ&(1<<i) != 0 {
			break
		}
	}
	return attacks
}

func TestFirstRankAttacks(t *testing.T) {
	// Mover on position 3 with blockers on 0 and 4: both rays truncate at
	// their nearest blocker, which stays in the attack set.
	if got := FirstRankAttacks(3, 0b00010001); got != 0b00010111 {
		t.Fatalf("first-rank attacks expected %08b but got %08b", 0b00010111, got)
	}
	// Empty line: the whole rank except the mover square.
	if got := FirstRankAttacks(3, 0); got != 0b11110111 {
		t.Fatalf("first-rank attacks on empty line expected %08b but got %08b", 0b11110111, got)
	}
	// Adjacent blockers on both sides pin the slider in place.
	if got := FirstRankAttacks(3, 0b00010100); got != 0b00010100 {
		t.Fatalf("first-rank attacks expected %08b but got %08b", 0b00010100, got)
	}

	for pos := 0; pos < 8; pos++ {
		for occ := 0; occ < 256; occ++ {
			got := FirstRankAttacks(pos, uint8(occ))
			want := firstRankModel(pos, uint8(occ))
			if got != want {
				t.Fatalf("first-rank attacks at %d occ %08b expected %08b but got %08b", pos, occ, want, got)
			}
		}
	}
}

// TestFirstRankAttacksOracle checks every table entry against an
// independent magic-bitboard implementation: rook moves on rank 1
// restricted to rank 1 are exactly the first-rank attack byte.
func TestFirstRankAttacksOracle(t *testing.T) {
	for pos := 0; pos < 8; pos++ {
		for occ := 0; occ < 256; occ++ {
			rook := dragontoothmg.CalculateRookMoveBitboard(uint8(pos), uint64(occ))
			want := uint8(rook & 0xFF)
			if got := FirstRankAttacks(pos, uint8(occ)); got != want {
				t.Fatalf("first-rank attacks at %d occ %08b expected %08b but got %08b", pos, occ, want, got)
			}
		}
	}
}

// The tables are built once before use and never mutated; concurrent
// lookups from many goroutines must be safe without synchronization.
func TestConcurrentTableReads(t *testing.T) {
	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for sq := A1; sq <= H8; sq++ {
				_ = GetKingAttacks(sq)
				_ = GetKnightAttacks(sq)
				_ = GetPawnPushes(sq, White)
				_ = GetPawnAttacks(sq, Black)
				_ = DiagonalMask(sq)
				_ = FirstRankAttacks(int(sq.File()), uint8(sq))
			}
		}()
	}
	wg.Wait()
}

func BenchmarkFirstRankAttacks(b *testing.B) {
	for i := 0; i < b.N; i++ {
		FirstRankAttacks(i&7, uint8(i))
	}
}
