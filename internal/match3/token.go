package match3

// Kind identifies a token type. Valid kinds are 0..Factory.Kinds()-1.
type Kind int

// KindNone marks an empty cell in kind snapshots.
const KindNone Kind = -1

// Token is a single piece on the board.
// Kind never changes after creation; Pos is maintained by the Board.
type Token struct {
	ID   uint64
	Kind Kind
	Pos  Cell
}
