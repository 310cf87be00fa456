package game

import "github.com/wbwakeman/BlackjackSimulator/internal/deck"

// Result tags a settled player hand for the statistics layer.
type Result int

const (
	ResultWin Result = iota
	ResultLoss
	ResultPush
	ResultBlackjack
	ResultSurrender
	ResultBust
)

// String returns the record tag for the result.
func (r Result) String() string {
	switch r {
	case ResultWin:
		return "WIN"
	case ResultLoss:
		return "LOSS"
	case ResultPush:
		return "PUSH"
	case ResultBlackjack:
		return "BLACKJACK"
	case ResultSurrender:
		return "SURRENDER"
	case ResultBust:
		return "BUST"
	default:
		return "UNKNOWN"
	}
}

// HandOutcome is the settled record for one terminal player hand.
type HandOutcome struct {
	Cards   []deck.Card
	Total   int
	Bet     float64 // amount wagered, doubling included
	Net     float64 // signed payout
	Result  Result
	Doubled bool
	Split   bool
}

// Outcome is the structured per-round record handed to the statistics
// layer. It never feeds back into play logic.
type Outcome struct {
	InitialCards []deck.Card // player's two dealt cards
	DealerUp     deck.Card
	DealerCards  []deck.Card
	DealerTotal  int
	DealerBusted bool
	Hands        []HandOutcome
	Bet          float64 // base bet for the round
	Net          float64 // sum of per-hand nets
}

// WasSplit reports whether the round produced more than one player hand.
func (o *Outcome) WasSplit() bool {
	return len(o.Hands) > 1
}
