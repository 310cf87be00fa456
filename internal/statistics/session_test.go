package statistics

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/wbwakeman/BlackjackSimulator/internal/game"
)

func outcome(results ...game.Result) *game.Outcome {
	o := &game.Outcome{}
	for _, r := range results {
		net := 0.0
		switch r {
		case game.ResultWin:
			net = 10
		case game.ResultBlackjack:
			net = 15
		case game.ResultLoss, game.ResultBust:
			net = -10
		case game.ResultSurrender:
			net = -5
		}
		o.Hands = append(o.Hands, game.HandOutcome{Result: r, Bet: 10, Net: net})
		o.Net += net
	}
	return o
}

func TestSessionStatsRecord(t *testing.T) {
	s := NewSessionStats(1000)

	bankroll := 1000.0
	rounds := []*game.Outcome{
		outcome(game.ResultWin),
		outcome(game.ResultBlackjack),
		outcome(game.ResultLoss),
		outcome(game.ResultBust),
		outcome(game.ResultSurrender),
		outcome(game.ResultPush),
		outcome(game.ResultWin, game.ResultLoss), // a split round
	}
	for _, o := range rounds {
		bankroll += o.Net
		s.Record(o, bankroll)
	}

	assert.Equal(t, 7, s.HandsPlayed)
	assert.Equal(t, 8, s.HandOutcomes)
	assert.Equal(t, 3, s.Wins)
	assert.Equal(t, 4, s.Losses)
	assert.Equal(t, 1, s.Pushes)
	assert.Equal(t, 1, s.Blackjacks)
	assert.Equal(t, 1, s.Surrenders)
	assert.Equal(t, 1, s.Busts)
	assert.Equal(t, 0.0, s.TotalProfit)
	assert.Equal(t, 1000.0, s.CurrentBankroll)
	require.NoError(t, s.Validate())
}

func TestSessionStatsWaterMarks(t *testing.T) {
	s := NewSessionStats(100)

	s.Record(outcome(game.ResultWin), 110)
	s.Record(outcome(game.ResultWin), 120)
	s.Record(outcome(game.ResultLoss), 110)
	s.Record(outcome(game.ResultLoss), 100)
	s.Record(outcome(game.ResultLoss), 90)

	assert.Equal(t, 120.0, s.HighWaterMark)
	assert.Equal(t, 90.0, s.LowWaterMark)
	assert.Equal(t, -10.0, s.Net())
	assert.Equal(t, -10.0, s.ROI())
	require.NoError(t, s.Validate())
}

func TestSessionStatsSplitAndDoubleCounters(t *testing.T) {
	s := NewSessionStats(100)

	o := &game.Outcome{Net: 30}
	o.Hands = []game.HandOutcome{
		{Result: game.ResultWin, Bet: 10, Net: 10, Split: true},
		{Result: game.ResultWin, Bet: 20, Net: 20, Split: true, Doubled: true},
	}
	s.Record(o, 130)

	assert.Equal(t, 2, s.SplitHands)
	assert.Equal(t, 1, s.DoubledHands)
	assert.Equal(t, 1.0, s.WinRate())
	require.NoError(t, s.Validate())
}

func TestSessionStatsValidateCatchesLedgerDrift(t *testing.T) {
	s := NewSessionStats(100)
	s.Record(outcome(game.ResultWin), 110)

	s.Wins++ // corrupt the ledger
	assert.Error(t, s.Validate())
}
