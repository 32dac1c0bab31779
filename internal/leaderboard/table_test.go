package leaderboard

import (
	"errors"
	"math/rand/v2"
	"testing"
	"time"

	"hexdrill/internal/radix"
)

var binToDec = PairCategory(radix.Pair{Source: radix.Binary, Target: radix.Decimal})

func entry(name string, score uint16) Entry {
	return NewEntry(name, time.Unix(1700000000, 0), score)
}

func fill(t *testing.T, tbl *Table, c Category, scores ...uint16) {
	t.Helper()
	for _, s := range scores {
		pos, ok := tbl.Rank(c, s)
		if !ok {
			t.Fatalf("Rank(%d) found no slot while filling", s)
		}
		if err := tbl.Insert(c, pos, entry("fill", s)); err != nil {
			t.Fatalf("Insert() error: %v", err)
		}
	}
}

func scores(tbl *Table, c Category) []uint16 {
	var out []uint16
	for _, e := range tbl.Entries(c) {
		out = append(out, e.Score)
	}
	return out
}

func TestCategories(t *testing.T) {
	cats := Categories()
	if len(cats) != numCategories {
		t.Fatalf("Categories() returned %d, want %d", len(cats), numCategories)
	}
	if cats[0] != Total {
		t.Error("Total should be stored first")
	}
	seen := make(map[Category]bool)
	for _, c := range cats {
		if seen[c] {
			t.Errorf("category %s listed twice", c)
		}
		seen[c] = true
	}
}

func TestTotal_DoesNotAliasAPair(t *testing.T) {
	if _, ok := Total.Pair(); ok {
		t.Error("Total should not have a pair")
	}
	zero := PairCategory(radix.Pair{})
	if zero == Total {
		t.Error("the binary/binary pair must not equal Total")
	}
	tbl := NewTable()
	if _, ok := tbl.Rank(zero, 10); ok {
		t.Error("binary/binary is not a leaderboard category")
	}
	if err := tbl.Insert(zero, 0, entry("x", 1)); !errors.Is(err, ErrCategory) {
		t.Errorf("Insert() error = %v, want ErrCategory", err)
	}
}

func TestTable_RankEmpty(t *testing.T) {
	tbl := NewTable()
	pos, ok := tbl.Rank(Total, 0)
	if !ok || pos != 0 {
		t.Errorf("Rank() on empty = %d, %v; want 0, true", pos, ok)
	}
}

func TestTable_RankHighestInNonFull(t *testing.T) {
	tbl := NewTable()
	fill(t, tbl, binToDec, 30, 20, 10)
	pos, ok := tbl.Rank(binToDec, 31)
	if !ok || pos != 0 {
		t.Errorf("Rank(31) = %d, %v; want 0, true", pos, ok)
	}
}

func TestTable_RankLowestInNonFullAppends(t *testing.T) {
	tbl := NewTable()
	fill(t, tbl, binToDec, 30, 20, 10)
	pos, ok := tbl.Rank(binToDec, 0)
	if !ok || pos != 3 {
		t.Errorf("Rank(0) = %d, %v; want 3, true", pos, ok)
	}
	if err := tbl.Insert(binToDec, pos, entry("low", 0)); err != nil {
		t.Fatalf("Insert() error: %v", err)
	}
	want := []uint16{30, 20, 10, 0}
	got := scores(tbl, binToDec)
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("scores = %v, want %v", got, want)
		}
	}
}

func TestTable_TieInsertsBeforeEqual(t *testing.T) {
	tbl := NewTable()
	c := Total
	for _, e := range []Entry{entry("a", 30), entry("b", 20), entry("c", 20), entry("d", 10)} {
		pos, _ := tbl.Rank(c, e.Score)
		_ = tbl.Insert(c, pos, e)
	}
	// b was inserted before c with an equal score, so c ranks first.
	pos, ok := tbl.Rank(c, 20)
	if !ok || pos != 1 {
		t.Fatalf("Rank(20) = %d, %v; want 1, true", pos, ok)
	}
	if err := tbl.Insert(c, pos, entry("new", 20)); err != nil {
		t.Fatal(err)
	}
	names := []string{}
	for _, e := range tbl.Entries(c) {
		names = append(names, e.PlayerName())
	}
	want := []string{"a", "new", "c", "b", "d"}
	for i := range want {
		if names[i] != want[i] {
			t.Fatalf("names = %v, want %v", names, want)
		}
	}
}

func TestTable_FullRejectsLowOrEqual(t *testing.T) {
	tbl := NewTable()
	fill(t, tbl, binToDec, 100, 90, 80, 70, 60, 50, 40, 30, 20, 10)
	before := scores(tbl, binToDec)

	for _, s := range []uint16{10, 5, 0} {
		if pos, ok := tbl.Rank(binToDec, s); ok {
			t.Errorf("Rank(%d) on full = %d, true; want no rank", s, pos)
		}
	}
	after := scores(tbl, binToDec)
	for i := range before {
		if before[i] != after[i] {
			t.Fatal("table changed after a failed rank")
		}
	}
}

func TestTable_FullAllEqualRejectsTie(t *testing.T) {
	tbl := NewTable()
	fill(t, tbl, Total, 10, 10, 10, 10, 10, 10, 10, 10, 10, 10)

	if pos, ok := tbl.Rank(Total, 10); ok {
		t.Errorf("Rank(10) on full equal list = %d, true; want no rank", pos)
	}
	pos, ok := tbl.Rank(Total, 11)
	if !ok || pos != 0 {
		t.Errorf("Rank(11) = %d, %v; want 0, true", pos, ok)
	}
}

func TestTable_FullEvictsLast(t *testing.T) {
	tbl := NewTable()
	fill(t, tbl, binToDec, 100, 90, 80, 70, 60, 50, 40, 30, 20, 10)
	pos, ok := tbl.Rank(binToDec, 11)
	if !ok || pos != 9 {
		t.Fatalf("Rank(11) = %d, %v; want 9, true", pos, ok)
	}
	if err := tbl.Insert(binToDec, pos, entry("edge", 11)); err != nil {
		t.Fatal(err)
	}
	got := scores(tbl, binToDec)
	if len(got) != Capacity || got[9] != 11 {
		t.Errorf("scores = %v, want 11 in last place", got)
	}

	pos, _ = tbl.Rank(binToDec, 1000)
	_ = tbl.Insert(binToDec, pos, entry("top", 1000))
	got = scores(tbl, binToDec)
	if got[0] != 1000 || got[9] != 20 || len(got) != Capacity {
		t.Errorf("scores = %v, want 1000 first and 11 evicted", got)
	}
}

func TestTable_InsertPositionOutOfRange(t *testing.T) {
	tbl := NewTable()
	fill(t, tbl, Total, 5)
	for _, pos := range []int{-1, 2, Capacity} {
		if err := tbl.Insert(Total, pos, entry("x", 1)); !errors.Is(err, ErrPosition) {
			t.Errorf("Insert(pos=%d) error = %v, want ErrPosition", pos, err)
		}
	}
}

func TestTable_StaysSortedUnderRandomInserts(t *testing.T) {
	rng := rand.New(rand.NewPCG(1, 2))
	tbl := NewTable()
	for i := 0; i < 500; i++ {
		c := Categories()[rng.IntN(numCategories)]
		s := uint16(rng.IntN(60))
		if pos, ok := tbl.Rank(c, s); ok {
			if err := tbl.Insert(c, pos, entry("r", s)); err != nil {
				t.Fatal(err)
			}
		}
		for _, cat := range Categories() {
			got := scores(tbl, cat)
			if len(got) > Capacity {
				t.Fatalf("%s holds %d entries", cat, len(got))
			}
			for j := 1; j < len(got); j++ {
				if got[j-1] < got[j] {
					t.Fatalf("%s not sorted: %v", cat, got)
				}
			}
		}
	}
}

func TestTable_Records(t *testing.T) {
	tbl := NewTable()
	if tbl.Records() != 0 || tbl.Full() {
		t.Fatal("new table should have no records")
	}
	fill(t, tbl, Total, 1, 2, 3)
	if tbl.Records() != 3 {
		t.Errorf("Records() = %d, want 3", tbl.Records())
	}
}

func TestNewEntry_TruncatesName(t *testing.T) {
	e := NewEntry("abcdefghijklmnopqrstuvwxyz", time.Unix(42, 0), 7)
	if got := e.PlayerName(); got != "abcdefghijklmno" {
		t.Errorf("PlayerName() = %q, want 15 bytes", got)
	}
	if e.Timestamp != 42 || e.Score != 7 {
		t.Errorf("entry = %+v", e)
	}
}

func TestTruncateName_RuneBoundary(t *testing.T) {
	// 14 ASCII bytes then a two-byte rune that would straddle the limit.
	name := "abcdefghijklmné"
	got := TruncateName(name + "x")
	if got != "abcdefghijklmn" {
		t.Errorf("TruncateName() = %q, want the rune dropped whole", got)
	}
}
