package game

import (
	"fmt"

	"github.com/wbwakeman/BlackjackSimulator/internal/deck"
	"github.com/wbwakeman/BlackjackSimulator/internal/rules"
)

// PlayDealer drives the dealer hand to a terminal state: hit below 17,
// hit soft 17 when the profile says so, stand otherwise. Called only
// after every player hand is terminal; before that the hole card is
// concealed from all play logic.
func PlayDealer(h *Hand, shoe *deck.Shoe, p rules.Profile) error {
	for {
		if h.IsBusted() {
			h.State = Busted
			return nil
		}
		total := h.Total()
		if total > 17 || (total == 17 && !(p.DealerHitsSoft17 && h.IsSoft())) {
			h.State = Stood
			return nil
		}
		card, err := shoe.Draw()
		if err != nil {
			return fmt.Errorf("dealer draw: %w", err)
		}
		h.Add(card)
	}
}
