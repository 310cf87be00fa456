package strategy

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/wbwakeman/BlackjackSimulator/internal/deck"
)

func allAllowed() Constraints {
	return Constraints{CanSplit: true, CanDouble: true, CanSurrender: true}
}

func TestResolveChartLookups(t *testing.T) {
	r := NewResolver(Default())

	tests := []struct {
		name string
		hand HandView
		up   deck.Rank
		c    Constraints
		want Action
	}{
		{
			name: "hard 16 vs ten surrenders",
			hand: HandView{Total: 16, Cards: 2},
			up:   deck.Ten,
			c:    allAllowed(),
			want: Surrender,
		},
		{
			name: "hard 16 vs ten hits when surrender unavailable",
			hand: HandView{Total: 16, Cards: 2},
			up:   deck.Ten,
			c:    Constraints{},
			want: Hit,
		},
		{
			name: "hard 11 vs six doubles",
			hand: HandView{Total: 11, Cards: 2},
			up:   deck.Six,
			c:    allAllowed(),
			want: Double,
		},
		{
			name: "hard 11 vs six hits after a hit",
			hand: HandView{Total: 11, Cards: 3},
			up:   deck.Six,
			c:    Constraints{},
			want: Hit,
		},
		{
			name: "soft 18 vs three doubles",
			hand: HandView{Total: 18, Soft: true, Cards: 2},
			up:   deck.Three,
			c:    allAllowed(),
			want: Double,
		},
		{
			name: "soft 18 vs three stands when doubling unavailable",
			hand: HandView{Total: 18, Soft: true, Cards: 2},
			up:   deck.Three,
			c:    Constraints{},
			want: Stand,
		},
		{
			name: "hard 17 vs ace surrenders",
			hand: HandView{Total: 17, Cards: 2},
			up:   deck.Ace,
			c:    allAllowed(),
			want: Surrender,
		},
		{
			name: "hard 17 vs ace stands when surrender unavailable",
			hand: HandView{Total: 17, Cards: 2},
			up:   deck.Ace,
			c:    Constraints{},
			want: Stand,
		},
		{
			name: "eights split vs nine",
			hand: HandView{Total: 16, Pair: true, PairValue: 8, Cards: 2},
			up:   deck.Nine,
			c:    allAllowed(),
			want: Split,
		},
		{
			name: "eights vs ace surrender first",
			hand: HandView{Total: 16, Pair: true, PairValue: 8, Cards: 2},
			up:   deck.Ace,
			c:    allAllowed(),
			want: Surrender,
		},
		{
			name: "eights vs ace split when surrender unavailable",
			hand: HandView{Total: 16, Pair: true, PairValue: 8, Cards: 2},
			up:   deck.Ace,
			c:    Constraints{CanSplit: true},
			want: Split,
		},
		{
			name: "eights vs ace hit when nothing available",
			hand: HandView{Total: 16, Pair: true, PairValue: 8, Cards: 2},
			up:   deck.Ace,
			c:    Constraints{},
			want: Hit,
		},
		{
			name: "natural stands without a lookup",
			hand: HandView{Total: 21, Soft: true, Cards: 2, Natural: true},
			up:   deck.Six,
			c:    allAllowed(),
			want: Stand,
		},
		{
			name: "hard 20 stands without a lookup",
			hand: HandView{Total: 20, Cards: 2},
			up:   deck.Six,
			c:    allAllowed(),
			want: Stand,
		},
		{
			name: "ten pair stands via its row when splittable",
			hand: HandView{Total: 20, Pair: true, PairValue: 10, Cards: 2},
			up:   deck.Six,
			c:    allAllowed(),
			want: Stand,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := r.Resolve(tt.hand, tt.up, tt.c)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestResolvePrecedence(t *testing.T) {
	r := NewResolver(Default())

	// A splittable ace pair uses the pair row, not the soft 12 total.
	got, err := r.Resolve(HandView{Total: 12, Soft: true, Pair: true, PairValue: 1, Cards: 2},
		deck.Ten, allAllowed())
	require.NoError(t, err)
	assert.Equal(t, Split, got)

	// Once splitting is off the table, the same hand plays as hard 12.
	got, err = r.Resolve(HandView{Total: 12, Soft: true, Pair: true, PairValue: 1, Cards: 2},
		deck.Ten, Constraints{CanDouble: true})
	require.NoError(t, err)
	assert.Equal(t, Hit, got)

	// An unsplittable pair of sixes plays as hard 12 and stands vs 5.
	got, err = r.Resolve(HandView{Total: 12, Pair: true, PairValue: 6, Cards: 2},
		deck.Five, Constraints{})
	require.NoError(t, err)
	assert.Equal(t, Stand, got)
}

func TestResolveLowHardTotalClamps(t *testing.T) {
	r := NewResolver(Default())

	// A pair of twos that cannot split is hard 4; the chart bottoms out
	// at hard 5.
	got, err := r.Resolve(HandView{Total: 4, Pair: true, PairValue: 2, Cards: 2},
		deck.Six, Constraints{})
	require.NoError(t, err)
	assert.Equal(t, Hit, got)
}

func TestResolveSplitAceStands(t *testing.T) {
	r := NewResolver(Default())

	// A split ace that received its one card stands regardless of total.
	got, err := r.Resolve(HandView{Total: 15, Soft: true, Cards: 2, FromSplitAces: true},
		deck.Ten, Constraints{})
	require.NoError(t, err)
	assert.Equal(t, Stand, got)

	// With resplitting available on a fresh ace pair it may still split.
	got, err = r.Resolve(HandView{Total: 12, Soft: true, Pair: true, PairValue: 1, Cards: 2, FromSplitAces: true},
		deck.Ten, Constraints{CanSplit: true})
	require.NoError(t, err)
	assert.Equal(t, Split, got)
}

func TestResolveAlwaysLegal(t *testing.T) {
	r := NewResolver(Default())

	// Whatever the chart says, the resolved action must be legal under
	// the constraints. Sweep every two-card view against every up-card
	// with nothing allowed: only hit and stand may come back.
	for total := 4; total <= 21; total++ {
		for up := deck.Two; up <= deck.Ace; up++ {
			got, err := r.Resolve(HandView{Total: total, Cards: 2}, up, Constraints{})
			require.NoError(t, err)
			assert.Contains(t, []Action{Hit, Stand}, got,
				"hard %d vs %s resolved to %s with nothing allowed", total, up, got)
		}
	}
	for total := 13; total <= 21; total++ {
		for up := deck.Two; up <= deck.Ace; up++ {
			got, err := r.Resolve(HandView{Total: total, Soft: true, Cards: 2}, up, Constraints{})
			require.NoError(t, err)
			assert.Contains(t, []Action{Hit, Stand}, got,
				"soft %d vs %s resolved to %s with nothing allowed", total, up, got)
		}
	}
}
