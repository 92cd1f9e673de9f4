package match3

// Drop records a token moved by gravity.
type Drop struct {
	Token *Token
	From  Cell
	To    Cell
}

// ApplyGravity compacts every column downward, keeping the relative order of
// its tokens. Each empty cell, scanned bottom to top, pulls down the nearest
// token above it.
func ApplyGravity(b *Board) []Drop {
	var drops []Drop
	for x := range b.Width() {
		drops = append(drops, compactColumn(b, x)...)
	}
	return drops
}

func compactColumn(b *Board, x int) []Drop {
	var drops []Drop
	col := b.cells[x]
	for y := range col {
		if col[y] != nil {
			continue
		}
		for above := y + 1; above < len(col); above++ {
			if col[above] == nil {
				continue
			}
			t := col[above]
			col[y], col[above] = t, nil
			from := t.Pos
			t.Pos = Cell{X: x, Y: y}
			drops = append(drops, Drop{Token: t, From: from, To: t.Pos})
			break
		}
	}
	return drops
}

// Refill fills every empty cell with an unconstrained token.
func Refill(b *Board, f *Factory) ([]*Token, error) {
	var created []*Token
	for _, c := range b.Empty() {
		t, err := f.CreateUnconstrained(b, c)
		if err != nil {
			return created, err
		}
		created = append(created, t)
	}
	return created, nil
}
