package match3

import (
	"reflect"
	"testing"
)

func TestFindLine(t *testing.T) {
	b := boardFromRows(t,
		"1011",
		"0001",
		"2301",
	)

	tests := []struct {
		name   string
		cell   Cell
		axis   Axis
		length int
	}{
		{"horizontal run of three", Cell{1, 1}, Horizontal, 3},
		{"horizontal from run end", Cell{0, 1}, Horizontal, 3},
		{"vertical run of three", Cell{3, 2}, Vertical, 3},
		{"vertical single", Cell{0, 1}, Vertical, 1},
		{"vertical pair", Cell{2, 0}, Vertical, 2},
		{"isolated cell", Cell{0, 0}, Horizontal, 1},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			line := FindLine(b, tc.cell, tc.axis)
			if len(line) != tc.length {
				t.Errorf("FindLine(%v, %s) = %v, expected length %d", tc.cell, tc.axis, line, tc.length)
			}
			if len(line) > 0 && line[0] != tc.cell {
				t.Errorf("line should start at origin, got %v", line[0])
			}
		})
	}
}

func TestFindLineEmptyCell(t *testing.T) {
	b := boardFromRows(t, "1.1")
	if line := FindLine(b, Cell{1, 0}, Horizontal); line != nil {
		t.Errorf("FindLine on empty cell = %v, expected nil", line)
	}
	if line := FindLine(b, Cell{5, 0}, Horizontal); line != nil {
		t.Errorf("FindLine off board = %v, expected nil", line)
	}
}

func TestFindConnectedRegionCross(t *testing.T) {
	b := boardFromRows(t,
		"12321",
		"23032",
		"10001",
		"23032",
		"12321",
	)

	region := FindConnectedRegion(b, Cell{2, 2}, 0)
	expected := []Cell{{1, 2}, {2, 1}, {2, 2}, {2, 3}, {3, 2}}
	if !reflect.DeepEqual(region.Cells(), expected) {
		t.Errorf("region = %v, expected %v", region.Cells(), expected)
	}

	match := CheckMatch(b, Cell{2, 2})
	if match.Len() != 5 {
		t.Errorf("CheckMatch on cross = %v, expected 5 cells", match.Cells())
	}
	if !reflect.DeepEqual(match.Cells(), expected) {
		t.Errorf("CheckMatch = %v, expected %v", match.Cells(), expected)
	}
}

func TestCheckMatchLShapeIsOneMatch(t *testing.T) {
	b := boardFromRows(t,
		"0123",
		"0231",
		"0003",
	)

	// Seed from the far end of the horizontal arm.
	match := CheckMatch(b, Cell{2, 0})
	expected := []Cell{{0, 0}, {0, 1}, {0, 2}, {1, 0}, {2, 0}}
	if !reflect.DeepEqual(match.Cells(), expected) {
		t.Errorf("CheckMatch(L) = %v, expected %v", match.Cells(), expected)
	}
}

func TestCheckMatchExpandsPastShortBranches(t *testing.T) {
	// The run is horizontal; (1,1) hangs off it and joins through flood fill.
	b := boardFromRows(t,
		"1213",
		"2023",
		"0001",
	)
	match := CheckMatch(b, Cell{0, 0})
	if match.Len() != 4 || !match.Contains(Cell{1, 1}) {
		t.Errorf("CheckMatch = %v, expected the run plus (1,1)", match.Cells())
	}
}

func TestCheckMatchIgnoresDiagonals(t *testing.T) {
	b := boardFromRows(t,
		"1230",
		"0001",
	)
	match := CheckMatch(b, Cell{1, 0})
	if match.Len() != 3 {
		t.Errorf("diagonal neighbour should not join: %v", match.Cells())
	}
}

func TestCheckMatchNoRun(t *testing.T) {
	b := boardFromRows(t,
		"001",
		"110",
		"0.0",
	)
	for _, c := range []Cell{{0, 0}, {0, 1}, {0, 2}, {1, 0}} {
		if m := CheckMatch(b, c); m.Len() != 0 {
			t.Errorf("CheckMatch(%v) = %v, expected empty", c, m.Cells())
		}
	}
}

func TestCheckMatchDoesNotMutate(t *testing.T) {
	b := boardFromRows(t,
		"000",
		"111",
	)
	before := b.Clone()
	CheckMatch(b, Cell{0, 0})
	FindAllMatches(b)
	if !b.Equal(before) {
		t.Error("match detection modified the board")
	}
}

func TestFindAllMatchesUnion(t *testing.T) {
	b := boardFromRows(t,
		"1112",
		"2340",
		"0003",
	)
	all := FindAllMatches(b)
	if all.Len() != 6 {
		t.Errorf("FindAllMatches = %v, expected 6 cells", all.Cells())
	}
}

func TestFindConnectedRegionLargeBoard(t *testing.T) {
	// A single-kind board deep enough to overflow a naive recursive fill.
	b := NewBoard(300, 300)
	var id uint64
	for x := range 300 {
		for y := range 300 {
			id++
			_ = b.Set(Cell{x, y}, &Token{ID: id, Kind: 4})
		}
	}
	region := FindConnectedRegion(b, Cell{0, 0}, 4)
	if region.Len() != 300*300 {
		t.Errorf("region size = %d, expected %d", region.Len(), 300*300)
	}
}

func TestMatchSetUnion(t *testing.T) {
	a := MatchSet{}
	a.Add(Cell{0, 0})
	a.Add(Cell{1, 0})
	b := MatchSet{}
	b.Add(Cell{1, 0})
	b.Add(Cell{2, 0})

	a.Union(b)
	if a.Len() != 3 {
		t.Errorf("union size = %d, expected 3", a.Len())
	}
}
