package match3

import "fmt"

// Board is a width x height grid of tokens. A nil entry is an empty cell.
// The board keeps every token's Pos equal to the cell holding it.
type Board struct {
	width  int
	height int
	cells  [][]*Token // indexed [x][y]
}

// NewBoard creates an empty board. Dimensions below 1 are clamped to 1.
func NewBoard(width, height int) *Board {
	if width < 1 {
		width = 1
	}
	if height < 1 {
		height = 1
	}
	b := &Board{width: width, height: height}
	b.cells = make([][]*Token, width)
	for x := range b.cells {
		b.cells[x] = make([]*Token, height)
	}
	return b
}

// Width returns the number of columns.
func (b *Board) Width() int {
	return b.width
}

// Height returns the number of rows.
func (b *Board) Height() int {
	return b.height
}

// InBounds reports whether c lies on the board.
func (b *Board) InBounds(c Cell) bool {
	return c.X >= 0 && c.X < b.width && c.Y >= 0 && c.Y < b.height
}

func (b *Board) check(c Cell) error {
	if !b.InBounds(c) {
		return fmt.Errorf("%w: %s on %dx%d board", ErrOutOfBounds, c, b.width, b.height)
	}
	return nil
}

// Get returns the token at c, or nil if the cell is empty.
func (b *Board) Get(c Cell) (*Token, error) {
	if err := b.check(c); err != nil {
		return nil, err
	}
	return b.cells[c.X][c.Y], nil
}

// at is Get without the bounds error, for callers that already checked.
func (b *Board) at(c Cell) *Token {
	if !b.InBounds(c) {
		return nil
	}
	return b.cells[c.X][c.Y]
}

// Set places t at c, replacing whatever was there. A nil token empties the cell.
func (b *Board) Set(c Cell, t *Token) error {
	if err := b.check(c); err != nil {
		return err
	}
	b.cells[c.X][c.Y] = t
	if t != nil {
		t.Pos = c
	}
	return nil
}

// Remove empties c and returns the token that was there.
func (b *Board) Remove(c Cell) (*Token, error) {
	if err := b.check(c); err != nil {
		return nil, err
	}
	t := b.cells[c.X][c.Y]
	b.cells[c.X][c.Y] = nil
	return t, nil
}

// Swap exchanges the occupants of a and b.
// Both cells are validated first; on error the board is unchanged.
func (b *Board) Swap(a, c Cell) error {
	if err := b.check(a); err != nil {
		return err
	}
	if err := b.check(c); err != nil {
		return err
	}
	ta, tc := b.cells[a.X][a.Y], b.cells[c.X][c.Y]
	b.cells[a.X][a.Y], b.cells[c.X][c.Y] = tc, ta
	if tc != nil {
		tc.Pos = a
	}
	if ta != nil {
		ta.Pos = c
	}
	return nil
}

// KindAt returns the kind at c, or KindNone if c is empty or off the board.
func (b *Board) KindAt(c Cell) Kind {
	t := b.at(c)
	if t == nil {
		return KindNone
	}
	return t.Kind
}

// Kinds returns a snapshot of the board as kinds, indexed [x][y].
func (b *Board) Kinds() [][]Kind {
	out := make([][]Kind, b.width)
	for x := range out {
		out[x] = make([]Kind, b.height)
		for y := range out[x] {
			out[x][y] = b.KindAt(Cell{X: x, Y: y})
		}
	}
	return out
}

// Empty returns every empty cell, column by column from the bottom.
func (b *Board) Empty() []Cell {
	var cells []Cell
	for x := range b.width {
		for y := range b.height {
			if b.cells[x][y] == nil {
				cells = append(cells, Cell{X: x, Y: y})
			}
		}
	}
	return cells
}

// Full reports whether every cell is occupied.
func (b *Board) Full() bool {
	return len(b.Empty()) == 0
}

// Clone returns a deep copy of the board, tokens included.
func (b *Board) Clone() *Board {
	cp := NewBoard(b.width, b.height)
	for x := range b.width {
		for y := range b.height {
			if t := b.cells[x][y]; t != nil {
				tt := *t
				cp.cells[x][y] = &tt
			}
		}
	}
	return cp
}

// Equal reports whether both boards hold the same tokens (by ID and kind) in the same cells.
func (b *Board) Equal(o *Board) bool {
	if b.width != o.width || b.height != o.height {
		return false
	}
	for x := range b.width {
		for y := range b.height {
			ta, tb := b.cells[x][y], o.cells[x][y]
			if (ta == nil) != (tb == nil) {
				return false
			}
			if ta != nil && (ta.ID != tb.ID || ta.Kind != tb.Kind) {
				return false
			}
		}
	}
	return true
}
