package strategy

import (
	"fmt"

	"github.com/wbwakeman/BlackjackSimulator/internal/deck"
)

// HandView is the strategy-relevant projection of a player hand. The play
// engine builds it so this package never depends on the hand type.
type HandView struct {
	Total         int // promoted total (soft when valid, else hard)
	Soft          bool
	Pair          bool // two cards in the same rank bucket
	PairValue     int  // base value of the paired rank, 1 for aces
	Cards         int
	FromSplitAces bool
	Natural       bool
}

// Constraints carry the context legality the resolver cannot see on the
// hand alone: split budget, double-after-split, surrender availability.
type Constraints struct {
	CanSplit     bool
	CanDouble    bool
	CanSurrender bool
}

// Resolver picks the concrete legal action for a hand against a dealer
// up-card by applying the table's code and its documented fallback.
type Resolver struct {
	table *Table
}

// NewResolver creates a resolver over a validated table.
func NewResolver(t *Table) *Resolver {
	return &Resolver{table: t}
}

// Resolve returns one of Hit, Stand, Double, Split or Surrender. The
// returned action is always legal under the given constraints; a table
// entry that cannot be resolved is a fatal strategy/rule mismatch.
func (r *Resolver) Resolve(h HandView, up deck.Rank, c Constraints) (Action, error) {
	// A split ace that has its second card stands unless it may resplit.
	if h.FromSplitAces && h.Cards > 1 && !c.CanSplit {
		return Stand, nil
	}
	// Naturals, 21s and hard 20 never consult the table.
	if h.Natural || h.Total >= 21 || (h.Total == 20 && !h.Soft) {
		return Stand, nil
	}

	key := r.rowFor(h, c)
	code, ok := r.table.action(key, up)
	if !ok {
		return Stand, fmt.Errorf("strategy table %s: no row %s for %d-card hand vs %s",
			r.table.name, key, h.Cards, up)
	}

	switch code {
	case Hit, Stand:
		return code, nil
	case Split:
		if !c.CanSplit {
			return Stand, fmt.Errorf("strategy table %s: row %s resolves to split but splitting is illegal",
				r.table.name, key)
		}
		return Split, nil
	case Double:
		if c.CanDouble {
			return Double, nil
		}
		return Hit, nil
	case Surrender:
		if c.CanSurrender {
			return Surrender, nil
		}
		return Hit, nil
	case DoubleOrStand:
		if c.CanDouble {
			return Double, nil
		}
		return Stand, nil
	case SurrenderOrStand:
		if c.CanSurrender {
			return Surrender, nil
		}
		return Stand, nil
	case SurrenderOrSplit:
		if c.CanSurrender {
			return Surrender, nil
		}
		if c.CanSplit {
			return Split, nil
		}
		return Hit, nil
	default:
		return Stand, fmt.Errorf("strategy table %s: unhandled action code %v", r.table.name, code)
	}
}

// rowFor applies the documented precedence: eligible pair, then soft
// total, then hard total. Two degenerate keys fall through to hard rows:
// soft 12 (unsplittable A,A) plays as hard 12, and hard totals below the
// table's range (a pair of twos that cannot split) clamp to the lowest
// hard row.
func (r *Resolver) rowFor(h HandView, c Constraints) rowKey {
	if h.Pair && c.CanSplit {
		return rowKey{kind: pairRow, value: h.PairValue}
	}
	if h.Soft && h.Total >= 13 {
		return rowKey{kind: softRow, value: h.Total}
	}
	total := h.Total
	if total < 5 {
		total = 5
	}
	return rowKey{kind: hardRow, value: total}
}
