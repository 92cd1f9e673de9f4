package match3

// EventKind classifies a display event.
type EventKind int

const (
	EventCreated EventKind = iota
	EventMoved
	EventDestroyed
	EventSelected
	EventDeselected
	EventMatched
)

// String returns the event kind name.
func (k EventKind) String() string {
	switch k {
	case EventCreated:
		return "created"
	case EventMoved:
		return "moved"
	case EventDestroyed:
		return "destroyed"
	case EventSelected:
		return "selected"
	case EventDeselected:
		return "deselected"
	case EventMatched:
		return "matched"
	default:
		return "unknown"
	}
}

// Event tells a renderer what happened to a token.
// Target is the world anchor of Cell; From is only set for EventMoved.
type Event struct {
	Kind    EventKind
	TokenID uint64
	Token   Kind
	Cell    Cell
	From    Cell
	Target  Point
}
