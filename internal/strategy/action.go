package strategy

import "fmt"

// Action is a strategy-table action code. The set is closed: the loader
// rejects anything else, so play-time code can switch exhaustively.
type Action int

const (
	Hit Action = iota // H
	Stand             // S
	Double            // D: double, or hit if doubling is not legal
	Split             // P: only offered when splitting is legal
	Surrender         // X: surrender, or hit if surrender is not allowed
	DoubleOrStand     // B: double, or stand if doubling is not legal
	SurrenderOrStand  // U: surrender, or stand if not allowed
	SurrenderOrSplit  // Q: surrender, or split if not allowed
)

// String returns the single-letter table code for the action.
func (a Action) String() string {
	switch a {
	case Hit:
		return "H"
	case Stand:
		return "S"
	case Double:
		return "D"
	case Split:
		return "P"
	case Surrender:
		return "X"
	case DoubleOrStand:
		return "B"
	case SurrenderOrStand:
		return "U"
	case SurrenderOrSplit:
		return "Q"
	default:
		return "?"
	}
}

// ParseAction converts a strategy-file cell to an Action.
func ParseAction(s string) (Action, error) {
	switch s {
	case "H":
		return Hit, nil
	case "S":
		return Stand, nil
	case "D":
		return Double, nil
	case "P":
		return Split, nil
	case "X":
		return Surrender, nil
	case "B":
		return DoubleOrStand, nil
	case "U":
		return SurrenderOrStand, nil
	case "Q":
		return SurrenderOrSplit, nil
	default:
		return Hit, fmt.Errorf("unknown action code %q", s)
	}
}
