package rules

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestProfileNames(t *testing.T) {
	names := ProfileNames()
	want := []string{
		"atlantic_city", "downtown_vegas", "european",
		"single_deck", "vegas_strip", "wcent",
	}
	assert.Equal(t, want, names)
}

func TestResolveKnownProfile(t *testing.T) {
	p, err := Resolve("vegas_strip", Overrides{}, nil)
	require.NoError(t, err)

	assert.Equal(t, "vegas_strip", p.Name)
	assert.Equal(t, 6, p.NumDecks)
	assert.Equal(t, ThreeToTwo, p.BlackjackPayout)
	assert.Equal(t, 3, p.MaxSplits)
	assert.True(t, p.ResplitAces)
	assert.True(t, p.DoubleAfterSplit)
	assert.Empty(t, p.Enforced, "vegas_strip documents both enforced rules as on")
}

func TestResolveUnknownProfile(t *testing.T) {
	_, err := Resolve("monte_carlo", Overrides{}, nil)
	require.Error(t, err)

	var cfgErr *ConfigurationError
	require.ErrorAs(t, err, &cfgErr)
	assert.Equal(t, "rule_set", cfgErr.Subject)
}

func TestResolveOverrides(t *testing.T) {
	decks := 2
	payout := SixToFive
	p, err := Resolve("vegas_strip", Overrides{
		NumDecks:        &decks,
		BlackjackPayout: &payout,
	}, nil)
	require.NoError(t, err)

	assert.Equal(t, 2, p.NumDecks)
	assert.Equal(t, SixToFive, p.BlackjackPayout)
}

func TestResolveDeckRange(t *testing.T) {
	for _, decks := range []int{0, 9, -1} {
		d := decks
		_, err := Resolve("vegas_strip", Overrides{NumDecks: &d}, nil)
		assert.Error(t, err, "num_decks=%d should be rejected", decks)
	}
	for decks := 1; decks <= 8; decks++ {
		d := decks
		_, err := Resolve("vegas_strip", Overrides{NumDecks: &d}, nil)
		assert.NoError(t, err, "num_decks=%d should be accepted", decks)
	}
}

// The simulator always plays with the dealer hitting soft 17 and late
// surrender offered, even for profiles documenting otherwise. The
// resolved profile records each flipped field.
func TestResolveEnforcement(t *testing.T) {
	tests := []struct {
		profile string
		fields  []string
	}{
		{"vegas_strip", nil},
		{"downtown_vegas", nil},
		{"atlantic_city", []string{"dealer_hits_soft_17"}},
		{"single_deck", []string{"allow_surrender"}},
		{"european", []string{"allow_surrender"}},
		{"wcent", []string{"allow_surrender"}},
	}
	for _, tt := range tests {
		t.Run(tt.profile, func(t *testing.T) {
			p, err := Resolve(tt.profile, Overrides{}, nil)
			require.NoError(t, err)

			assert.True(t, p.DealerHitsSoft17)
			assert.True(t, p.AllowSurrender)

			var got []string
			for _, e := range p.Enforced {
				assert.False(t, e.ProfileValue)
				assert.True(t, e.EffectiveValue)
				got = append(got, e.Field)
			}
			assert.Equal(t, tt.fields, got)
		})
	}
}

func TestBaseProfileKeepsDocumentedValues(t *testing.T) {
	p, err := BaseProfile("european")
	require.NoError(t, err)
	assert.False(t, p.AllowSurrender, "documented value survives in BaseProfile")

	resolved, err := Resolve("european", Overrides{}, nil)
	require.NoError(t, err)
	assert.True(t, resolved.AllowSurrender)
}

func TestParsePayout(t *testing.T) {
	tests := []struct {
		in      string
		want    Payout
		wantErr bool
	}{
		{"3:2", ThreeToTwo, false},
		{"6:5", SixToFive, false},
		{"2:1", TwoToOne, false},
		{"1:1", 0, true},
		{"", 0, true},
	}
	for _, tt := range tests {
		got, err := ParsePayout(tt.in)
		if tt.wantErr {
			assert.Error(t, err, "ParsePayout(%q)", tt.in)
			continue
		}
		require.NoError(t, err, "ParsePayout(%q)", tt.in)
		assert.Equal(t, tt.want, got)
	}
}

func TestPayoutRatio(t *testing.T) {
	assert.Equal(t, 1.5, ThreeToTwo.Ratio())
	assert.Equal(t, 1.2, SixToFive.Ratio())
	assert.Equal(t, 2.0, TwoToOne.Ratio())
}
