package match3

// Rand is the slice of a random source the factory needs.
// *math/rand.Rand satisfies it.
type Rand interface {
	Intn(n int) int
}

// Factory creates tokens of random kinds and places them on a board.
type Factory struct {
	kinds     int
	rng       Rand
	nextID    uint64
	fallbacks int
}

// NewFactory returns a factory producing kinds 0..kinds-1 from rng.
func NewFactory(kinds int, rng Rand) *Factory {
	return &Factory{kinds: kinds, rng: rng}
}

// Kinds returns the number of token kinds.
func (f *Factory) Kinds() int {
	return f.kinds
}

// Fallbacks returns how many times CreateNonMatching found every kind
// forbidden and fell back to the full kind set. Only possible with kinds <= 2.
func (f *Factory) Fallbacks() int {
	return f.fallbacks
}

// CreateNonMatching places a token at c whose kind does not complete a run
// with the two cells to its left or the two cells below it.
func (f *Factory) CreateNonMatching(b *Board, c Cell) (*Token, error) {
	if err := b.check(c); err != nil {
		return nil, err
	}
	if f.kinds <= 0 {
		return nil, ErrEmptyCandidateSet
	}

	candidates := make([]Kind, 0, f.kinds)
	for k := range f.kinds {
		candidates = append(candidates, Kind(k))
	}
	if k, ok := forcedKind(b, c.Add(-1, 0), c.Add(-2, 0)); ok {
		candidates = without(candidates, k)
	}
	if k, ok := forcedKind(b, c.Add(0, -1), c.Add(0, -2)); ok {
		candidates = without(candidates, k)
	}
	if len(candidates) == 0 {
		// Two kinds, both forbidden: accept a run rather than fail.
		f.fallbacks++
		return f.CreateUnconstrained(b, c)
	}

	return f.place(b, c, candidates[f.rng.Intn(len(candidates))]), nil
}

// CreateUnconstrained places a token of any kind at c.
func (f *Factory) CreateUnconstrained(b *Board, c Cell) (*Token, error) {
	if err := b.check(c); err != nil {
		return nil, err
	}
	if f.kinds <= 0 {
		return nil, ErrEmptyCandidateSet
	}
	return f.place(b, c, Kind(f.rng.Intn(f.kinds))), nil
}

// Fill populates every cell of b with CreateNonMatching, column by column
// from the bottom-left.
func (f *Factory) Fill(b *Board) ([]*Token, error) {
	created := make([]*Token, 0, b.Width()*b.Height())
	for x := range b.Width() {
		for y := range b.Height() {
			t, err := f.CreateNonMatching(b, Cell{X: x, Y: y})
			if err != nil {
				return created, err
			}
			created = append(created, t)
		}
	}
	return created, nil
}

func (f *Factory) place(b *Board, c Cell, k Kind) *Token {
	f.nextID++
	t := &Token{ID: f.nextID, Kind: k}
	b.cells[c.X][c.Y] = t
	t.Pos = c
	return t
}

// forcedKind returns the shared kind of p1 and p2 when both are occupied and equal.
func forcedKind(b *Board, p1, p2 Cell) (Kind, bool) {
	t1, t2 := b.at(p1), b.at(p2)
	if t1 == nil || t2 == nil || t1.Kind != t2.Kind {
		return KindNone, false
	}
	return t1.Kind, true
}

func without(kinds []Kind, k Kind) []Kind {
	for i, v := range kinds {
		if v == k {
			return append(kinds[:i], kinds[i+1:]...)
		}
	}
	return kinds
}
