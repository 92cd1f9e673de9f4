package match3

import "sort"

// MinRun is the shortest line that counts as a match.
const MinRun = 3

// MatchSet is a set of cells cleared together.
type MatchSet map[Cell]struct{}

// Len returns the number of cells in the set.
func (m MatchSet) Len() int {
	return len(m)
}

// Contains reports whether c is in the set.
func (m MatchSet) Contains(c Cell) bool {
	_, ok := m[c]
	return ok
}

// Add inserts c.
func (m MatchSet) Add(c Cell) {
	m[c] = struct{}{}
}

// Union adds every cell of o to m and returns m.
func (m MatchSet) Union(o MatchSet) MatchSet {
	for c := range o {
		m[c] = struct{}{}
	}
	return m
}

// Cells returns the cells ordered by column, then row.
func (m MatchSet) Cells() []Cell {
	cells := make([]Cell, 0, len(m))
	for c := range m {
		cells = append(cells, c)
	}
	sort.Slice(cells, func(i, j int) bool {
		if cells[i].X != cells[j].X {
			return cells[i].X < cells[j].X
		}
		return cells[i].Y < cells[j].Y
	})
	return cells
}

// FindLine returns the contiguous run of tokens sharing c's kind along axis,
// c included. It returns nil if c is empty or off the board.
func FindLine(b *Board, c Cell, axis Axis) []Cell {
	origin := b.at(c)
	if origin == nil {
		return nil
	}
	dx, dy := axis.step()
	line := []Cell{c}
	for _, dir := range [2]int{-1, 1} {
		next := c.Add(dx*dir, dy*dir)
		for {
			t := b.at(next)
			if t == nil || t.Kind != origin.Kind {
				break
			}
			line = append(line, next)
			next = next.Add(dx*dir, dy*dir)
		}
	}
	return line
}

// FindConnectedRegion returns every cell reachable from c through orthogonal
// neighbours holding kind. The board is only read.
func FindConnectedRegion(b *Board, c Cell, kind Kind) MatchSet {
	region := MatchSet{}
	floodInto(b, c, kind, region)
	return region
}

// floodInto adds the region around c to visited, skipping cells already in it.
func floodInto(b *Board, c Cell, kind Kind, visited MatchSet) {
	if b.KindAt(c) != kind || visited.Contains(c) {
		return
	}
	visited.Add(c)
	stack := []Cell{c}
	for len(stack) > 0 {
		cur := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		for _, d := range neighbours4 {
			n := cur.Add(d[0], d[1])
			if visited.Contains(n) || b.KindAt(n) != kind {
				continue
			}
			visited.Add(n)
			stack = append(stack, n)
		}
	}
}

// CheckMatch returns the match c takes part in, or an empty set.
// A line of MinRun or more on either axis is expanded by flood fill from each
// of its cells, so L, T and cross shapes resolve as a single match.
func CheckMatch(b *Board, c Cell) MatchSet {
	match := MatchSet{}
	origin := b.at(c)
	if origin == nil {
		return match
	}
	for _, axis := range [2]Axis{Horizontal, Vertical} {
		line := FindLine(b, c, axis)
		if len(line) < MinRun {
			continue
		}
		for _, cell := range line {
			floodInto(b, cell, origin.Kind, match)
		}
	}
	return match
}

// FindAllMatches returns the union of CheckMatch over every cell.
func FindAllMatches(b *Board) MatchSet {
	all := MatchSet{}
	for x := range b.Width() {
		for y := range b.Height() {
			c := Cell{X: x, Y: y}
			if all.Contains(c) {
				continue
			}
			all.Union(CheckMatch(b, c))
		}
	}
	return all
}
