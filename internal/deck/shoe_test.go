package deck

import (
	"errors"
	"testing"

	"github.com/wbwakeman/BlackjackSimulator/internal/randutil"
)

func TestNewShoeSize(t *testing.T) {
	tests := []struct {
		decks int
		want  int
	}{
		{1, 52},
		{2, 104},
		{6, 312},
		{8, 416},
	}
	for _, tt := range tests {
		shoe := NewShoe(tt.decks, randutil.New(1))
		if shoe.Remaining() != tt.want {
			t.Errorf("NewShoe(%d) has %d cards, want %d", tt.decks, shoe.Remaining(), tt.want)
		}
	}
}

func TestNewShoeComposition(t *testing.T) {
	shoe := NewShoe(2, randutil.New(7))

	counts := make(map[Card]int)
	for {
		card, err := shoe.Draw()
		if err != nil {
			break
		}
		counts[card]++
	}

	if len(counts) != 52 {
		t.Fatalf("expected 52 distinct cards, got %d", len(counts))
	}
	for card, n := range counts {
		if n != 2 {
			t.Errorf("card %s appears %d times, want 2", card, n)
		}
	}
}

func TestDrawExhaustion(t *testing.T) {
	shoe := NewStackedShoe(NewCard(Ace, Spades), NewCard(King, Hearts))

	first, err := shoe.Draw()
	if err != nil {
		t.Fatalf("first draw failed: %v", err)
	}
	if first != NewCard(Ace, Spades) {
		t.Errorf("first draw = %s, want A♠", first)
	}
	if _, err := shoe.Draw(); err != nil {
		t.Fatalf("second draw failed: %v", err)
	}

	_, err = shoe.Draw()
	if !errors.Is(err, ErrShoeExhausted) {
		t.Errorf("draw from empty shoe: err = %v, want ErrShoeExhausted", err)
	}
}

func TestShuffleDeterminism(t *testing.T) {
	a := NewShoe(6, randutil.New(42))
	b := NewShoe(6, randutil.New(42))
	c := NewShoe(6, randutil.New(43))

	same := true
	differ := false
	for a.Remaining() > 0 {
		ca, _ := a.Draw()
		cb, _ := b.Draw()
		cc, _ := c.Draw()
		if ca != cb {
			same = false
		}
		if ca != cc {
			differ = true
		}
	}
	if !same {
		t.Error("identical seeds produced different shuffles")
	}
	if !differ {
		t.Error("different seeds produced identical shuffles")
	}
}

func TestRankBaseValue(t *testing.T) {
	tests := []struct {
		rank Rank
		want int
	}{
		{Two, 2},
		{Nine, 9},
		{Ten, 10},
		{Jack, 10},
		{Queen, 10},
		{King, 10},
		{Ace, 1},
	}
	for _, tt := range tests {
		if got := tt.rank.BaseValue(); got != tt.want {
			t.Errorf("%s.BaseValue() = %d, want %d", tt.rank, got, tt.want)
		}
	}
}

func TestCardString(t *testing.T) {
	card := NewCard(Ten, Diamonds)
	if card.String() != "T♦" {
		t.Errorf("String() = %q, want %q", card.String(), "T♦")
	}
	if !NewCard(Ace, Clubs).IsAce() {
		t.Error("A♣ should be an ace")
	}
	if !NewCard(Queen, Hearts).IsTenValue() {
		t.Error("Q♥ should be ten-valued")
	}
	if NewCard(Nine, Spades).IsTenValue() {
		t.Error("9♠ should not be ten-valued")
	}
}
