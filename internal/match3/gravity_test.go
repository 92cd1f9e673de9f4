package match3

import (
	"math/rand"
	"reflect"
	"testing"
)

func TestApplyGravityKeepsOrder(t *testing.T) {
	// Column 0 bottom to top: A, _, B, _, _
	b := boardFromRows(t,
		".",
		".",
		"2",
		".",
		"1",
	)
	a, _ := b.Get(Cell{0, 0})
	top, _ := b.Get(Cell{0, 2})

	drops := ApplyGravity(b)

	if got := rows(b); !reflect.DeepEqual(got, []string{".", ".", ".", "2", "1"}) {
		t.Errorf("after gravity rows = %v", got)
	}
	if len(drops) != 1 {
		t.Fatalf("drops = %+v, expected one", drops)
	}
	if drops[0].Token != top || drops[0].From != (Cell{0, 2}) || drops[0].To != (Cell{0, 1}) {
		t.Errorf("drop = %+v", drops[0])
	}
	if got, _ := b.Get(Cell{0, 0}); got != a {
		t.Error("bottom token should not move")
	}
	if got, _ := b.Get(Cell{0, 1}); got != top || top.Pos != (Cell{0, 1}) {
		t.Errorf("dropped token at %v, expected (0,1)", top.Pos)
	}
}

func TestApplyGravityColumns(t *testing.T) {
	tests := []struct {
		name     string
		before   []string
		expected []string
		drops    int
	}{
		{
			name:     "already compact",
			before:   []string{"..", "12", "34"},
			expected: []string{"..", "12", "34"},
			drops:    0,
		},
		{
			name:     "gap at bottom",
			before:   []string{"1.", "2.", ".3"},
			expected: []string{"..", "1.", "23"},
			drops:    2,
		},
		{
			name:     "scattered",
			before:   []string{"1.", ".2", "3.", ".."},
			expected: []string{"..", "..", "1.", "32"},
			drops:    3,
		},
		{
			name:     "empty board",
			before:   []string{"..", ".."},
			expected: []string{"..", ".."},
			drops:    0,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			b := boardFromRows(t, tc.before...)
			drops := ApplyGravity(b)
			if got := rows(b); !reflect.DeepEqual(got, tc.expected) {
				t.Errorf("rows = %v, expected %v", got, tc.expected)
			}
			if len(drops) != tc.drops {
				t.Errorf("drops = %d, expected %d", len(drops), tc.drops)
			}
			for _, d := range drops {
				if d.Token.Pos != d.To {
					t.Errorf("token %d Pos = %v, drop says %v", d.Token.ID, d.Token.Pos, d.To)
				}
				if d.To.Y >= d.From.Y || d.To.X != d.From.X {
					t.Errorf("drop %v -> %v is not straight down", d.From, d.To)
				}
			}
		})
	}
}

func TestRefillFillsEveryGap(t *testing.T) {
	b := boardFromRows(t,
		"..1",
		".21",
		"321",
	)
	f := NewFactory(4, rand.New(rand.NewSource(2)))

	created, err := Refill(b, f)
	if err != nil {
		t.Fatalf("Refill() failed: %v", err)
	}
	if len(created) != 3 {
		t.Errorf("created %d tokens, expected 3", len(created))
	}
	if !b.Full() {
		t.Errorf("board not full after refill: %v", rows(b))
	}
	for _, tok := range created {
		got, _ := b.Get(tok.Pos)
		if got != tok {
			t.Errorf("created token %d not at its Pos %v", tok.ID, tok.Pos)
		}
	}
}
