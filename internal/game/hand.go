package game

import (
	"fmt"
	"strings"

	"github.com/wbwakeman/BlackjackSimulator/internal/deck"
	"github.com/wbwakeman/BlackjackSimulator/internal/strategy"
)

// HandState is the play-engine state of a hand.
type HandState int

const (
	Dealt HandState = iota
	Active
	Stood
	Busted
	Surrendered
	DoubledTerminal
	BlackjackResolved
)

// String returns a readable state name for logs.
func (s HandState) String() string {
	switch s {
	case Dealt:
		return "dealt"
	case Active:
		return "active"
	case Stood:
		return "stood"
	case Busted:
		return "busted"
	case Surrendered:
		return "surrendered"
	case DoubledTerminal:
		return "doubled"
	case BlackjackResolved:
		return "blackjack"
	default:
		return "unknown"
	}
}

// Terminal reports whether the state accepts no further play.
func (s HandState) Terminal() bool {
	return s != Dealt && s != Active
}

// Hand is an ordered card sequence with its derived value and play flags.
// Totals are recomputed on every card addition, never cached across
// mutations.
type Hand struct {
	Cards         []deck.Card
	Bet           float64
	State         HandState
	SplitDepth    int // 0 = original hand
	FromSplitAces bool
	Doubled       bool
	IsSurrendered bool

	hard int
	aces int
}

// NewHand creates a hand in the Dealt state holding the given cards.
func NewHand(bet float64, cards ...deck.Card) *Hand {
	h := &Hand{Bet: bet, State: Dealt}
	for _, c := range cards {
		h.Add(c)
	}
	return h
}

// Add appends a card and updates the derived totals.
func (h *Hand) Add(c deck.Card) {
	h.Cards = append(h.Cards, c)
	h.hard += c.Rank.BaseValue()
	if c.IsAce() {
		h.aces++
	}
}

// HardTotal counts every ace as 1.
func (h *Hand) HardTotal() int {
	return h.hard
}

// SoftTotal promotes one ace to 11 when that keeps the total at 21 or
// below; otherwise it equals the hard total.
func (h *Hand) SoftTotal() int {
	if h.aces > 0 && h.hard+10 <= 21 {
		return h.hard + 10
	}
	return h.hard
}

// Total is the promoted value used for comparisons and dealer policy.
func (h *Hand) Total() int {
	return h.SoftTotal()
}

// IsSoft reports whether an ace is currently counted as 11.
func (h *Hand) IsSoft() bool {
	return h.SoftTotal() != h.hard
}

// IsBusted uses the hard total only; a hand is never soft-busted.
func (h *Hand) IsBusted() bool {
	return h.hard > 21
}

// IsBlackjack reports a natural: two cards totalling 21 on a hand that
// was never split. Split children with 21 are ordinary 21s.
func (h *Hand) IsBlackjack() bool {
	return len(h.Cards) == 2 && h.SplitDepth == 0 && h.SoftTotal() == 21
}

// IsPair reports whether the hand is exactly two cards in the same rank
// bucket (ten-value cards all pair with each other).
func (h *Hand) IsPair() bool {
	return len(h.Cards) == 2 &&
		h.Cards[0].Rank.BaseValue() == h.Cards[1].Rank.BaseValue()
}

// PairValue returns the comparison bucket of a paired hand (1 for aces).
func (h *Hand) PairValue() int {
	return h.Cards[0].Rank.BaseValue()
}

// View projects the hand for strategy resolution.
func (h *Hand) View() strategy.HandView {
	v := strategy.HandView{
		Total:         h.Total(),
		Soft:          h.IsSoft(),
		Pair:          h.IsPair(),
		Cards:         len(h.Cards),
		FromSplitAces: h.FromSplitAces,
		Natural:       h.IsBlackjack(),
	}
	if v.Pair {
		v.PairValue = h.PairValue()
	}
	return v
}

// String renders the hand for logs, e.g. "8♥ 8♠ (16)".
func (h *Hand) String() string {
	parts := make([]string, len(h.Cards))
	for i, c := range h.Cards {
		parts[i] = c.String()
	}
	soft := ""
	if h.IsSoft() {
		soft = " soft"
	}
	return fmt.Sprintf("%s (%d%s)", strings.Join(parts, " "), h.Total(), soft)
}
