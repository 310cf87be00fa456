package statistics

import (
	"fmt"

	"github.com/wbwakeman/BlackjackSimulator/internal/game"
)

// SessionStats tracks outcomes and bankroll movement for one session of
// hands sharing a running bankroll.
type SessionStats struct {
	HandsPlayed  int // rounds dealt
	HandOutcomes int // settled player hands, >= HandsPlayed with splits

	Wins       int
	Losses     int
	Pushes     int
	Blackjacks int
	Surrenders int
	Busts      int

	SplitHands   int
	DoubledHands int

	TotalProfit     float64
	InitialBankroll float64
	CurrentBankroll float64
	HighWaterMark   float64
	LowWaterMark    float64
}

// NewSessionStats creates session statistics starting at the given bankroll.
func NewSessionStats(initialBankroll float64) *SessionStats {
	return &SessionStats{
		InitialBankroll: initialBankroll,
		CurrentBankroll: initialBankroll,
		HighWaterMark:   initialBankroll,
		LowWaterMark:    initialBankroll,
	}
}

// Record incorporates one round's outcome and the bankroll after it.
func (s *SessionStats) Record(o *game.Outcome, bankroll float64) {
	s.HandsPlayed++
	s.TotalProfit += o.Net
	s.CurrentBankroll = bankroll
	if bankroll > s.HighWaterMark {
		s.HighWaterMark = bankroll
	}
	if bankroll < s.LowWaterMark {
		s.LowWaterMark = bankroll
	}

	for _, h := range o.Hands {
		s.HandOutcomes++
		switch h.Result {
		case game.ResultWin:
			s.Wins++
		case game.ResultBlackjack:
			s.Wins++
			s.Blackjacks++
		case game.ResultLoss:
			s.Losses++
		case game.ResultBust:
			s.Losses++
			s.Busts++
		case game.ResultSurrender:
			s.Losses++
			s.Surrenders++
		case game.ResultPush:
			s.Pushes++
		}
		if h.Doubled {
			s.DoubledHands++
		}
		if h.Split {
			s.SplitHands++
		}
	}
}

// Net returns the session's profit relative to the initial bankroll.
func (s *SessionStats) Net() float64 {
	return s.CurrentBankroll - s.InitialBankroll
}

// ROI returns the session return on investment as a percentage.
func (s *SessionStats) ROI() float64 {
	if s.InitialBankroll == 0 {
		return 0
	}
	return s.Net() / s.InitialBankroll * 100
}

// WinRate returns wins as a fraction of settled hands.
func (s *SessionStats) WinRate() float64 {
	if s.HandOutcomes == 0 {
		return 0
	}
	return float64(s.Wins) / float64(s.HandOutcomes)
}

// Validate performs consistency checks on the counters.
func (s *SessionStats) Validate() error {
	if s.HandOutcomes < s.HandsPlayed {
		return fmt.Errorf("hand outcomes (%d) below hands played (%d)",
			s.HandOutcomes, s.HandsPlayed)
	}
	if got := s.Wins + s.Losses + s.Pushes; got != s.HandOutcomes {
		return fmt.Errorf("outcome ledger mismatch: wins+losses+pushes=%d, hand outcomes=%d",
			got, s.HandOutcomes)
	}
	if s.Blackjacks > s.Wins {
		return fmt.Errorf("blackjacks (%d) exceed wins (%d)", s.Blackjacks, s.Wins)
	}
	if s.Surrenders+s.Busts > s.Losses {
		return fmt.Errorf("surrenders+busts (%d) exceed losses (%d)",
			s.Surrenders+s.Busts, s.Losses)
	}
	if s.HighWaterMark < s.LowWaterMark {
		return fmt.Errorf("high water mark %.2f below low water mark %.2f",
			s.HighWaterMark, s.LowWaterMark)
	}
	return nil
}
