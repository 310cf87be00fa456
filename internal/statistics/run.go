package statistics

import (
	"fmt"
	"sort"
)

// BankrollBin is one bucket of the final-bankroll distribution.
type BankrollBin struct {
	Low      float64
	High     float64 // <0 marks the overflow bin
	Sessions int
}

// Label renders the bin range for reports.
func (b BankrollBin) Label() string {
	if b.High < 0 {
		return fmt.Sprintf(">$%.0f", b.Low)
	}
	return fmt.Sprintf("$%.0f-$%.0f", b.Low, b.High)
}

// RunStats aggregates final bankrolls across sessions: bankruptcy and
// doubling rates plus a binned distribution of session results.
type RunStats struct {
	InitialBankroll float64
	HandsPerSession int

	CompletedSessions int
	BankruptSessions  int // sessions ending at zero or below
	DoubledSessions   int // sessions ending at 2x the initial bankroll or more

	Results []float64
	Bins    []BankrollBin
}

// NewRunStats creates cross-session statistics. Bins are 40% of the
// initial bankroll wide up to 300%, with one overflow bin above that.
func NewRunStats(initialBankroll float64, handsPerSession int) *RunStats {
	r := &RunStats{
		InitialBankroll: initialBankroll,
		HandsPerSession: handsPerSession,
	}
	binSize := initialBankroll * 0.4
	maxBin := initialBankroll * 3
	for low := 0.0; low < maxBin; low += binSize {
		high := low + binSize
		if high > maxBin {
			high = maxBin
		}
		r.Bins = append(r.Bins, BankrollBin{Low: low, High: high})
	}
	r.Bins = append(r.Bins, BankrollBin{Low: maxBin, High: -1})
	return r
}

// AddSession records a completed session's final bankroll.
func (r *RunStats) AddSession(finalBankroll float64) {
	r.CompletedSessions++
	r.Results = append(r.Results, finalBankroll)

	if finalBankroll <= 0 {
		r.BankruptSessions++
	} else if finalBankroll >= r.InitialBankroll*2 {
		r.DoubledSessions++
	}

	// A losing double can take the bankroll below zero; those sessions
	// bin with the zero bucket.
	binned := finalBankroll
	if binned < 0 {
		binned = 0
	}
	for i := range r.Bins {
		b := &r.Bins[i]
		if b.High < 0 {
			if binned > b.Low {
				b.Sessions++
				break
			}
			continue
		}
		if binned >= b.Low && binned <= b.High {
			b.Sessions++
			break
		}
	}
}

// BankruptcyRate returns the fraction of sessions ending bankrupt.
func (r *RunStats) BankruptcyRate() float64 {
	if r.CompletedSessions == 0 {
		return 0
	}
	return float64(r.BankruptSessions) / float64(r.CompletedSessions)
}

// DoublingRate returns the fraction of sessions that doubled the bankroll.
func (r *RunStats) DoublingRate() float64 {
	if r.CompletedSessions == 0 {
		return 0
	}
	return float64(r.DoubledSessions) / float64(r.CompletedSessions)
}

// Mean returns the arithmetic mean of final bankrolls.
func (r *RunStats) Mean() float64 {
	if len(r.Results) == 0 {
		return 0
	}
	sum := 0.0
	for _, v := range r.Results {
		sum += v
	}
	return sum / float64(len(r.Results))
}

// Median returns the median final bankroll.
func (r *RunStats) Median() float64 {
	if len(r.Results) == 0 {
		return 0
	}
	sorted := make([]float64, len(r.Results))
	copy(sorted, r.Results)
	sort.Float64s(sorted)

	n := len(sorted)
	if n%2 == 0 {
		return (sorted[n/2-1] + sorted[n/2]) / 2
	}
	return sorted[n/2]
}

// Percentile returns the final bankroll at the given percentile (0.0 to 1.0).
func (r *RunStats) Percentile(p float64) float64 {
	if len(r.Results) == 0 {
		return 0
	}
	sorted := make([]float64, len(r.Results))
	copy(sorted, r.Results)
	sort.Float64s(sorted)

	index := p * float64(len(sorted)-1)
	lower := int(index)
	upper := lower + 1
	if upper >= len(sorted) {
		return sorted[len(sorted)-1]
	}
	weight := index - float64(lower)
	return sorted[lower]*(1-weight) + sorted[upper]*weight
}

// Best returns the highest final bankroll seen.
func (r *RunStats) Best() float64 {
	best := 0.0
	for i, v := range r.Results {
		if i == 0 || v > best {
			best = v
		}
	}
	return best
}

// Worst returns the lowest final bankroll seen.
func (r *RunStats) Worst() float64 {
	worst := 0.0
	for i, v := range r.Results {
		if i == 0 || v < worst {
			worst = v
		}
	}
	return worst
}

// Validate checks the aggregate counters for consistency.
func (r *RunStats) Validate() error {
	if len(r.Results) != r.CompletedSessions {
		return fmt.Errorf("results length (%d) does not match completed sessions (%d)",
			len(r.Results), r.CompletedSessions)
	}
	binned := 0
	for _, b := range r.Bins {
		binned += b.Sessions
	}
	if binned != r.CompletedSessions {
		return fmt.Errorf("binned sessions (%d) do not match completed sessions (%d)",
			binned, r.CompletedSessions)
	}
	return nil
}
