package simulator

import (
	"fmt"

	"github.com/charmbracelet/log"
	"golang.org/x/sync/errgroup"

	"github.com/wbwakeman/BlackjackSimulator/internal/deck"
	"github.com/wbwakeman/BlackjackSimulator/internal/game"
	"github.com/wbwakeman/BlackjackSimulator/internal/randutil"
	"github.com/wbwakeman/BlackjackSimulator/internal/rules"
	"github.com/wbwakeman/BlackjackSimulator/internal/statistics"
	"github.com/wbwakeman/BlackjackSimulator/internal/strategy"
)

// sessionSeedStride separates per-session seed streams so hands of
// different sessions never share a shoe sequence.
const sessionSeedStride = 1_000_003

// Config holds configuration for running simulations.
type Config struct {
	Profile  rules.Profile
	Table    *strategy.Table
	Hands    int     // per session
	Sessions int
	Stake    float64 // starting bankroll per session
	Bet      float64 // standard bet per hand
	Seed     int64
	Parallel int // concurrent sessions; <=1 runs sequentially
	Logger   *log.Logger

	// AfterHand, when set, is invoked between completed hands with the
	// round's outcome and the bankroll after it. Returning an error
	// aborts the run. Hand resolution itself has no pause points; this
	// is the caller-side hook for interactive debugging, and it forces
	// sequential execution.
	AfterHand func(session, hand int, o *game.Outcome, bankroll float64) error
}

// SessionResult is one completed session.
type SessionResult struct {
	Index int
	Seed  int64
	Stats *statistics.SessionStats
}

// Simulator runs blackjack sessions against a resolved rule profile.
type Simulator struct {
	config Config
}

// New creates a simulator with the given configuration.
func New(config Config) *Simulator {
	if config.Logger == nil {
		config.Logger = log.New(nil)
	}
	return &Simulator{config: config}
}

// Run executes every session and returns per-session results plus the
// cross-session aggregate. Sessions share no mutable state; with
// Parallel > 1 they run concurrently and results are still deterministic
// for a given seed because each session derives its own seed stream.
func (s *Simulator) Run() (*statistics.RunStats, []SessionResult, error) {
	results := make([]SessionResult, s.config.Sessions)

	parallel := s.config.Parallel
	if parallel < 1 || s.config.AfterHand != nil {
		parallel = 1
	}

	var g errgroup.Group
	g.SetLimit(parallel)
	for i := 0; i < s.config.Sessions; i++ {
		g.Go(func() error {
			result, err := s.runSession(i)
			if err != nil {
				return fmt.Errorf("session %d: %w", i+1, err)
			}
			results[i] = result
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, nil, err
	}

	run := statistics.NewRunStats(s.config.Stake, s.config.Hands)
	for _, r := range results {
		run.AddSession(r.Stats.CurrentBankroll)
	}
	if err := run.Validate(); err != nil {
		return nil, nil, fmt.Errorf("statistics validation failed: %w", err)
	}
	return run, results, nil
}

// runSession plays up to the configured number of hands, threading the
// bankroll hand to hand and stopping early when it cannot cover the bet.
// Every hand gets a freshly built shoe from its own derived seed.
func (s *Simulator) runSession(index int) (SessionResult, error) {
	sessionSeed := s.config.Seed + int64(index)*sessionSeedStride
	stats := statistics.NewSessionStats(s.config.Stake)
	engine := game.NewEngine(s.config.Profile, s.config.Table, s.config.Logger)

	bankroll := s.config.Stake
	for hand := 0; hand < s.config.Hands && bankroll >= s.config.Bet; hand++ {
		handSeed := sessionSeed + int64(hand)
		shoe := deck.NewShoe(s.config.Profile.NumDecks, randutil.New(handSeed))

		outcome, err := engine.PlayHand(shoe, s.config.Bet)
		if err != nil {
			return SessionResult{}, fmt.Errorf("hand %d (seed %d): %w", hand+1, handSeed, err)
		}

		bankroll += outcome.Net
		stats.Record(outcome, bankroll)

		if s.config.AfterHand != nil {
			if err := s.config.AfterHand(index, hand, outcome, bankroll); err != nil {
				return SessionResult{}, err
			}
		}
	}

	if err := stats.Validate(); err != nil {
		return SessionResult{}, fmt.Errorf("session statistics validation failed: %w", err)
	}
	s.config.Logger.Debug("session complete",
		"session", index+1, "hands", stats.HandsPlayed, "final", bankroll)
	return SessionResult{Index: index, Seed: sessionSeed, Stats: stats}, nil
}
