package main

import (
	"bufio"
	"encoding/csv"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/charmbracelet/log"

	"github.com/wbwakeman/BlackjackSimulator/internal/game"
	"github.com/wbwakeman/BlackjackSimulator/internal/rules"
	"github.com/wbwakeman/BlackjackSimulator/internal/simulator"
	"github.com/wbwakeman/BlackjackSimulator/internal/statistics"
	"github.com/wbwakeman/BlackjackSimulator/internal/strategy"
)

// RunCmd runs a multi-session simulation.
type RunCmd struct {
	Rules    string  `default:"vegas_strip" help:"Casino rule profile (see the profiles command)"`
	Decks    int     `help:"Override: number of decks (1-8)"`
	Payout   string  `help:"Override: blackjack payout ratio (3:2, 6:5 or 2:1)"`
	Strategy string  `help:"Strategy CSV file (default: embedded basic strategy)"`
	Hands    int     `default:"1000" help:"Hands per session"`
	Sessions int     `default:"1" help:"Number of sessions"`
	Stake    float64 `default:"1000" help:"Starting bankroll per session"`
	Bet      float64 `default:"10" help:"Standard bet per hand"`
	Seed     int64   `help:"RNG seed (0 for time-based)"`
	Parallel int     `default:"1" help:"Sessions to run concurrently"`
	CSV      string  `help:"Write per-session results to a CSV file"`
	Config   string  `help:"HCL configuration file (flags take precedence)"`
	Verbose  bool    `help:"Per-hand debug logging"`
	Debug    bool    `help:"Pause for verification after every hand (forces sequential run)"`
}

func (c *RunCmd) Run() error {
	logger := setupLogger(c.Verbose)

	if c.Config != "" {
		if err := c.applyFileConfig(); err != nil {
			return err
		}
	}
	if c.Seed == 0 {
		c.Seed = time.Now().UnixNano()
	}

	overrides, err := c.overrides()
	if err != nil {
		return err
	}
	profile, err := rules.Resolve(c.Rules, overrides, logger)
	if err != nil {
		return err
	}

	table := strategy.Default()
	if c.Strategy != "" {
		table, err = strategy.Load(c.Strategy)
		if err != nil {
			return err
		}
	}

	cfg := simulator.Config{
		Profile:  profile,
		Table:    table,
		Hands:    c.Hands,
		Sessions: c.Sessions,
		Stake:    c.Stake,
		Bet:      c.Bet,
		Seed:     c.Seed,
		Parallel: c.Parallel,
		Logger:   logger,
	}
	if c.Debug {
		cfg.AfterHand = promptAfterHand
	}

	printRunHeader(c, profile, table)

	start := time.Now()
	run, sessions, err := simulator.New(cfg).Run()
	if err != nil {
		return err
	}
	printSummary(run, sessions, time.Since(start))

	if c.CSV != "" {
		if err := writeSessionCSV(c.CSV, sessions); err != nil {
			return fmt.Errorf("write csv: %w", err)
		}
		fmt.Printf("\nPer-session results written to %s\n", c.CSV)
	}
	return nil
}

// applyFileConfig fills in values from the HCL file for every flag still
// at its declared default, so explicit flags win over the file.
func (c *RunCmd) applyFileConfig() error {
	fc, err := rules.LoadFileConfig(c.Config)
	if err != nil {
		return err
	}
	if fc.Strategy != "" && c.Strategy == "" {
		c.Strategy = fc.Strategy
	}
	if fc.Rules != nil {
		if c.Rules == "vegas_strip" {
			c.Rules = fc.Rules.Name
		}
		if fc.Rules.NumDecks != nil && c.Decks == 0 {
			c.Decks = *fc.Rules.NumDecks
		}
		if fc.Rules.BlackjackPayout != nil && c.Payout == "" {
			c.Payout = *fc.Rules.BlackjackPayout
		}
	}
	if s := fc.Session; s != nil {
		if s.Hands > 0 && c.Hands == 1000 {
			c.Hands = s.Hands
		}
		if s.Sessions > 0 && c.Sessions == 1 {
			c.Sessions = s.Sessions
		}
		if s.StartingStake > 0 && c.Stake == 1000 {
			c.Stake = s.StartingStake
		}
		if s.StandardBet > 0 && c.Bet == 10 {
			c.Bet = s.StandardBet
		}
		if s.Seed != nil && c.Seed == 0 {
			c.Seed = *s.Seed
		}
		if s.Parallel > 0 && c.Parallel == 1 {
			c.Parallel = s.Parallel
		}
	}
	return nil
}

func (c *RunCmd) overrides() (rules.Overrides, error) {
	var o rules.Overrides
	if c.Decks != 0 {
		o.NumDecks = &c.Decks
	}
	if c.Payout != "" {
		payout, err := rules.ParsePayout(c.Payout)
		if err != nil {
			return rules.Overrides{}, err
		}
		o.BlackjackPayout = &payout
	}
	return o, nil
}

func setupLogger(verbose bool) *log.Logger {
	level := log.WarnLevel
	if verbose {
		level = log.DebugLevel
	}
	return log.NewWithOptions(os.Stderr, log.Options{Level: level})
}

// promptAfterHand implements --debug: show the settled hand and ask for
// confirmation before continuing, mirroring a pit-boss review.
func promptAfterHand(session, hand int, o *game.Outcome, bankroll float64) error {
	fmt.Printf("\n%s\n", HeaderStyle.Render(fmt.Sprintf(" Hand %d (session %d) ", hand+1, session+1)))
	for i, h := range o.Hands {
		fmt.Printf("  Player hand %d: %v  total=%d  bet=$%.2f  %s  net=%+.2f\n",
			i+1, h.Cards, h.Total, h.Bet, resultStyle(h.Result).Render(h.Result.String()), h.Net)
	}
	busted := ""
	if o.DealerBusted {
		busted = " (busted)"
	}
	fmt.Printf("  Dealer: %v  total=%d%s\n", o.DealerCards, o.DealerTotal, busted)
	fmt.Printf("  Net: %+.2f   Bankroll: $%.2f\n", o.Net, bankroll)

	fmt.Print("\nWas the gameplay correct for this hand? (y/n): ")
	reader := bufio.NewReader(os.Stdin)
	line, err := reader.ReadString('\n')
	if err != nil {
		return fmt.Errorf("read confirmation: %w", err)
	}
	answer := strings.ToLower(strings.TrimSpace(line))
	if answer != "y" && answer != "yes" {
		return fmt.Errorf("gameplay flagged incorrect at session %d hand %d", session+1, hand+1)
	}
	return nil
}

func printRunHeader(c *RunCmd, profile rules.Profile, table *strategy.Table) {
	fmt.Printf("%s\n", HeaderStyle.Render(" Blackjack Simulation "))
	fmt.Printf("Rule set: %s\n", profile.Name)
	fmt.Printf("Sessions: %d, hands per session: %d\n", c.Sessions, c.Hands)
	fmt.Printf("Initial bankroll: $%.2f, standard bet: $%.2f\n", c.Stake, c.Bet)
	fmt.Printf("Decks: %d, blackjack pays %s\n", profile.NumDecks, profile.BlackjackPayout)
	fmt.Printf("Dealer %s on soft 17, late surrender %s\n",
		onOff(profile.DealerHitsSoft17, "hits", "stands"),
		onOff(profile.AllowSurrender, "allowed", "not allowed"))
	fmt.Printf("Strategy: %s\n", table.Name())
	fmt.Printf("Seed: %d\n", c.Seed)
	for _, e := range profile.Enforced {
		fmt.Printf("%s\n", WarningStyle.Render(fmt.Sprintf(
			"Warning: %s forced to %v (profile documents %v)",
			e.Field, e.EffectiveValue, e.ProfileValue)))
	}
}

func printSummary(run *statistics.RunStats, sessions []simulator.SessionResult, elapsed time.Duration) {
	// Aggregate hand outcomes across sessions.
	var agg statistics.SessionStats
	totalHands := 0
	for _, s := range sessions {
		totalHands += s.Stats.HandsPlayed
		agg.HandOutcomes += s.Stats.HandOutcomes
		agg.Wins += s.Stats.Wins
		agg.Losses += s.Stats.Losses
		agg.Pushes += s.Stats.Pushes
		agg.Blackjacks += s.Stats.Blackjacks
		agg.Surrenders += s.Stats.Surrenders
		agg.Busts += s.Stats.Busts
		agg.SplitHands += s.Stats.SplitHands
		agg.DoubledHands += s.Stats.DoubledHands
	}

	fmt.Printf("\n%s\n", HeaderStyle.Render(" Hand Outcomes "))
	fmt.Printf("Hands played: %d (%.1f hands/sec)\n", totalHands,
		float64(totalHands)/elapsed.Seconds())
	if agg.HandOutcomes > 0 {
		n := float64(agg.HandOutcomes)
		fmt.Printf("  Wins:       %6d (%.1f%%)\n", agg.Wins, float64(agg.Wins)/n*100)
		fmt.Printf("  Losses:     %6d (%.1f%%)\n", agg.Losses, float64(agg.Losses)/n*100)
		fmt.Printf("  Pushes:     %6d (%.1f%%)\n", agg.Pushes, float64(agg.Pushes)/n*100)
		fmt.Printf("  Blackjacks: %6d (%.1f%%)\n", agg.Blackjacks, float64(agg.Blackjacks)/n*100)
		fmt.Printf("  Surrenders: %6d (%.1f%%)\n", agg.Surrenders, float64(agg.Surrenders)/n*100)
		fmt.Printf("  Busts:      %6d (%.1f%%)\n", agg.Busts, float64(agg.Busts)/n*100)
		fmt.Printf("  Split hands: %d, doubled hands: %d\n", agg.SplitHands, agg.DoubledHands)
	}

	fmt.Printf("\n%s\n", HeaderStyle.Render(" Session Results "))
	fmt.Printf("Sessions: %d\n", run.CompletedSessions)
	fmt.Printf("Bankruptcy rate: %.1f%% (%d sessions)\n",
		run.BankruptcyRate()*100, run.BankruptSessions)
	fmt.Printf("Doubling rate:   %.1f%% (%d sessions)\n",
		run.DoublingRate()*100, run.DoubledSessions)
	fmt.Printf("Final bankroll: mean $%.2f, median $%.2f\n", run.Mean(), run.Median())
	fmt.Printf("Best $%.2f, worst $%.2f\n", run.Best(), run.Worst())
	fmt.Printf("Percentiles: P5=$%.2f, P25=$%.2f, P75=$%.2f, P95=$%.2f\n",
		run.Percentile(0.05), run.Percentile(0.25), run.Percentile(0.75), run.Percentile(0.95))

	fmt.Printf("\nFinal bankroll distribution:\n")
	for _, bin := range run.Bins {
		pct := 0.0
		if run.CompletedSessions > 0 {
			pct = float64(bin.Sessions) / float64(run.CompletedSessions) * 100
		}
		fmt.Printf("  %-14s %4d sessions (%.1f%%)\n", bin.Label()+":", bin.Sessions, pct)
	}
}

func writeSessionCSV(path string, sessions []simulator.SessionResult) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()

	w := csv.NewWriter(f)
	header := []string{
		"session", "seed", "hands", "final_bankroll", "net",
		"wins", "losses", "pushes", "blackjacks", "surrenders", "busts",
		"split_hands", "doubled_hands",
	}
	if err := w.Write(header); err != nil {
		return err
	}
	for _, s := range sessions {
		st := s.Stats
		record := []string{
			strconv.Itoa(s.Index + 1),
			strconv.FormatInt(s.Seed, 10),
			strconv.Itoa(st.HandsPlayed),
			strconv.FormatFloat(st.CurrentBankroll, 'f', 2, 64),
			strconv.FormatFloat(st.Net(), 'f', 2, 64),
			strconv.Itoa(st.Wins),
			strconv.Itoa(st.Losses),
			strconv.Itoa(st.Pushes),
			strconv.Itoa(st.Blackjacks),
			strconv.Itoa(st.Surrenders),
			strconv.Itoa(st.Busts),
			strconv.Itoa(st.SplitHands),
			strconv.Itoa(st.DoubledHands),
		}
		if err := w.Write(record); err != nil {
			return err
		}
	}
	w.Flush()
	return w.Error()
}

func onOff(v bool, yes, no string) string {
	if v {
		return yes
	}
	return no
}
