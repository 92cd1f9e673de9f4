package match3

import (
	"errors"
	"math/rand"
	"testing"
)

func TestCreateNonMatchingAvoidsLeftPair(t *testing.T) {
	b := boardFromRows(t, "00.")

	// Any random draw must land on kind 1: kind 0 is forced out.
	for i := range 5 {
		f := NewFactory(2, &seqRand{seq: []int{i}})
		tok, err := f.CreateNonMatching(b, Cell{2, 0})
		if err != nil {
			t.Fatalf("CreateNonMatching() failed: %v", err)
		}
		if tok.Kind != 1 {
			t.Errorf("draw %d: kind = %d, expected 1", i, tok.Kind)
		}
		if tok.Pos != (Cell{2, 0}) {
			t.Errorf("token Pos = %v, expected (2,0)", tok.Pos)
		}
	}
}

func TestCreateNonMatchingAvoidsBottomPair(t *testing.T) {
	b := boardFromRows(t,
		".",
		"2",
		"2",
	)
	f := NewFactory(3, &seqRand{seq: []int{0, 1, 2}})
	for range 3 {
		tok, err := f.CreateNonMatching(b, Cell{0, 2})
		if err != nil {
			t.Fatalf("CreateNonMatching() failed: %v", err)
		}
		if tok.Kind == 2 {
			t.Errorf("kind 2 should be excluded, got %d", tok.Kind)
		}
	}
}

func TestCreateNonMatchingTwoKindsGuard(t *testing.T) {
	f := NewFactory(2, rand.New(rand.NewSource(1)))

	// Only the bottom pair forbids a kind: one candidate remains.
	single := boardFromRows(t,
		"...",
		"..1",
		"..1",
	)
	tok, err := f.CreateNonMatching(single, Cell{2, 2})
	if err != nil {
		t.Fatalf("CreateNonMatching() failed: %v", err)
	}
	if tok.Kind != 0 {
		t.Errorf("kind = %d, expected 0", tok.Kind)
	}
	if f.Fallbacks() != 0 {
		t.Errorf("Fallbacks() = %d, expected 0", f.Fallbacks())
	}

	// Left pair forbids 0 and bottom pair forbids 1: no candidates with two kinds.
	both := boardFromRows(t,
		"00.",
		"..1",
		"..1",
	)
	tok, err = f.CreateNonMatching(both, Cell{2, 2})
	if err != nil {
		t.Fatalf("CreateNonMatching() with empty candidates failed: %v", err)
	}
	if tok == nil || (tok.Kind != 0 && tok.Kind != 1) {
		t.Fatalf("expected a fallback token, got %+v", tok)
	}
	if f.Fallbacks() != 1 {
		t.Errorf("Fallbacks() = %d, expected 1", f.Fallbacks())
	}
}

func TestFactoryNoKinds(t *testing.T) {
	b := NewBoard(2, 2)
	f := NewFactory(0, rand.New(rand.NewSource(1)))

	if _, err := f.CreateNonMatching(b, Cell{0, 0}); !errors.Is(err, ErrEmptyCandidateSet) {
		t.Errorf("CreateNonMatching() error = %v, expected ErrEmptyCandidateSet", err)
	}
	if _, err := f.CreateUnconstrained(b, Cell{0, 0}); !errors.Is(err, ErrEmptyCandidateSet) {
		t.Errorf("CreateUnconstrained() error = %v, expected ErrEmptyCandidateSet", err)
	}
}

func TestFactoryOutOfBounds(t *testing.T) {
	b := NewBoard(2, 2)
	f := NewFactory(3, rand.New(rand.NewSource(1)))

	if _, err := f.CreateNonMatching(b, Cell{2, 0}); !errors.Is(err, ErrOutOfBounds) {
		t.Errorf("CreateNonMatching() error = %v, expected ErrOutOfBounds", err)
	}
	if _, err := f.CreateUnconstrained(b, Cell{0, -1}); !errors.Is(err, ErrOutOfBounds) {
		t.Errorf("CreateUnconstrained() error = %v, expected ErrOutOfBounds", err)
	}
}

func TestCreateUnconstrainedUsesAllKinds(t *testing.T) {
	b := NewBoard(1, 1)
	f := NewFactory(4, rand.New(rand.NewSource(7)))
	seen := make(map[Kind]bool)

	for range 200 {
		tok, err := f.CreateUnconstrained(b, Cell{0, 0})
		if err != nil {
			t.Fatalf("CreateUnconstrained() failed: %v", err)
		}
		seen[tok.Kind] = true
	}
	if len(seen) != 4 {
		t.Errorf("expected all 4 kinds over 200 draws, saw %v", seen)
	}
}

func TestFillHasNoMatches(t *testing.T) {
	sizes := []struct{ w, h, kinds int }{
		{7, 7, 3},
		{7, 7, 6},
		{8, 5, 4},
		{3, 10, 3},
		{12, 12, 5},
	}

	for _, sz := range sizes {
		for seed := int64(1); seed <= 25; seed++ {
			b := NewBoard(sz.w, sz.h)
			f := NewFactory(sz.kinds, rand.New(rand.NewSource(seed)))
			if _, err := f.Fill(b); err != nil {
				t.Fatalf("Fill() failed: %v", err)
			}
			if !b.Full() {
				t.Fatalf("%dx%d seed %d: board not full", sz.w, sz.h, seed)
			}
			if m := FindAllMatches(b); m.Len() != 0 {
				t.Errorf("%dx%d kinds=%d seed %d: initial board has match %v",
					sz.w, sz.h, sz.kinds, seed, m.Cells())
			}
			if f.Fallbacks() != 0 {
				t.Errorf("fallbacks = %d with %d kinds, expected 0", f.Fallbacks(), sz.kinds)
			}
		}
	}
}

func TestFillTwoKindsDoesNotFail(t *testing.T) {
	for seed := int64(1); seed <= 50; seed++ {
		b := NewBoard(7, 7)
		f := NewFactory(2, rand.New(rand.NewSource(seed)))
		created, err := f.Fill(b)
		if err != nil {
			t.Fatalf("seed %d: Fill() failed: %v", seed, err)
		}
		if len(created) != 49 || !b.Full() {
			t.Fatalf("seed %d: created %d tokens, board full=%v", seed, len(created), b.Full())
		}
	}
}

func TestFactoryIDsAreUnique(t *testing.T) {
	b := NewBoard(5, 5)
	f := NewFactory(4, rand.New(rand.NewSource(3)))
	created, err := f.Fill(b)
	if err != nil {
		t.Fatalf("Fill() failed: %v", err)
	}
	ids := make(map[uint64]bool)
	for _, tok := range created {
		if ids[tok.ID] {
			t.Fatalf("duplicate token ID %d", tok.ID)
		}
		ids[tok.ID] = true
	}
}
