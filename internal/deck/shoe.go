package deck

import (
	"errors"
	rand "math/rand/v2"
)

// ErrShoeExhausted is returned by Draw when the shoe is empty. A fresh
// shoe is built for every hand, so hitting this is a contract violation
// by the caller, not a condition to recover from by reshuffling.
var ErrShoeExhausted = errors.New("shoe exhausted")

// Shoe holds the cards available for dealing one hand. Cards are drawn
// front to back and the shoe is never reconstituted mid-hand.
type Shoe struct {
	cards []Card
}

// NewShoe builds a shoe of numDecks full 52-card decks shuffled with the
// provided RNG.
func NewShoe(numDecks int, rng *rand.Rand) *Shoe {
	s := &Shoe{cards: make([]Card, 0, numDecks*52)}
	for d := 0; d < numDecks; d++ {
		for suit := Spades; suit <= Clubs; suit++ {
			for rank := Two; rank <= Ace; rank++ {
				s.cards = append(s.cards, NewCard(rank, suit))
			}
		}
	}
	rng.Shuffle(len(s.cards), func(i, j int) {
		s.cards[i], s.cards[j] = s.cards[j], s.cards[i]
	})
	return s
}

// NewStackedShoe builds a shoe that deals the given cards in order.
// Used by tests to script exact deal sequences.
func NewStackedShoe(cards ...Card) *Shoe {
	s := &Shoe{cards: make([]Card, len(cards))}
	copy(s.cards, cards)
	return s
}

// Draw removes and returns the next card.
func (s *Shoe) Draw() (Card, error) {
	if len(s.cards) == 0 {
		return Card{}, ErrShoeExhausted
	}
	card := s.cards[0]
	s.cards = s.cards[1:]
	return card, nil
}

// Remaining returns the number of cards left in the shoe.
func (s *Shoe) Remaining() int {
	return len(s.cards)
}
