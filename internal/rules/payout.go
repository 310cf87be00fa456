package rules

// Payout is a blackjack payout ratio. Only the three ratios offered by
// the supported casinos exist; anything else is a ConfigurationError at
// parse time.
type Payout int

const (
	ThreeToTwo Payout = iota
	SixToFive
	TwoToOne
)

// Ratio returns the multiplier applied to the bet on a natural blackjack win.
func (p Payout) Ratio() float64 {
	switch p {
	case SixToFive:
		return 1.2
	case TwoToOne:
		return 2.0
	default:
		return 1.5
	}
}

// String returns the conventional casino notation for the payout.
func (p Payout) String() string {
	switch p {
	case SixToFive:
		return "6:5"
	case TwoToOne:
		return "2:1"
	default:
		return "3:2"
	}
}

// ParsePayout converts casino notation ("3:2", "6:5", "2:1") to a Payout.
func ParsePayout(s string) (Payout, error) {
	switch s {
	case "3:2":
		return ThreeToTwo, nil
	case "6:5":
		return SixToFive, nil
	case "2:1":
		return TwoToOne, nil
	default:
		return ThreeToTwo, NewConfigurationError("blackjack_payout",
			"unsupported ratio %q (want 3:2, 6:5 or 2:1)", s)
	}
}
