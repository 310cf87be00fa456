package game

import (
	"github.com/wbwakeman/BlackjackSimulator/internal/deck"
	"github.com/wbwakeman/BlackjackSimulator/internal/rules"
)

// settleHand computes the monetary outcome of one terminal player hand
// against the terminal dealer hand. Surrendered hands are
// never compared; busted hands lose regardless of the dealer; a natural
// blackjack outranks any non-natural 21.
func settleHand(h *Hand, dealer *Hand, p rules.Profile) HandOutcome {
	out := HandOutcome{
		Cards:   append([]deck.Card(nil), h.Cards...),
		Total:   h.Total(),
		Bet:     h.Bet,
		Doubled: h.Doubled,
		Split:   h.SplitDepth > 0,
	}

	switch {
	case h.IsSurrendered:
		out.Net = -h.Bet / 2
		out.Result = ResultSurrender
	case h.IsBusted():
		out.Net = -h.Bet
		out.Result = ResultBust
	case h.State == BlackjackResolved:
		if dealer.IsBlackjack() {
			out.Result = ResultPush
		} else {
			out.Net = h.Bet * p.BlackjackPayout.Ratio()
			out.Result = ResultBlackjack
		}
	case dealer.IsBlackjack():
		out.Net = -h.Bet
		out.Result = ResultLoss
	case dealer.IsBusted():
		out.Net = h.Bet
		out.Result = ResultWin
	case h.Total() > dealer.Total():
		out.Net = h.Bet
		out.Result = ResultWin
	case h.Total() < dealer.Total():
		out.Net = -h.Bet
		out.Result = ResultLoss
	default:
		out.Result = ResultPush
	}
	return out
}
