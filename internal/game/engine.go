package game

import (
	"fmt"

	"github.com/charmbracelet/log"
	"github.com/wbwakeman/BlackjackSimulator/internal/deck"
	"github.com/wbwakeman/BlackjackSimulator/internal/rules"
	"github.com/wbwakeman/BlackjackSimulator/internal/strategy"
)

// Engine drives one round from deal to settlement under a resolved rule
// profile and a validated strategy table. It is synchronous and
// deterministic given the shoe it is handed.
type Engine struct {
	profile  rules.Profile
	resolver *strategy.Resolver
	logger   *log.Logger
}

// NewEngine creates a play engine.
func NewEngine(profile rules.Profile, table *strategy.Table, logger *log.Logger) *Engine {
	if logger == nil {
		logger = log.New(nil)
	}
	return &Engine{
		profile:  profile,
		resolver: strategy.NewResolver(table),
		logger:   logger,
	}
}

// PlayHand plays one complete round at the given bet and returns its
// outcome record. Splitting is driven by an explicit worklist bounded by
// the profile's split budget, never by recursion.
func (e *Engine) PlayHand(shoe *deck.Shoe, bet float64) (*Outcome, error) {
	player := NewHand(bet)
	dealer := NewHand(0)
	for i := 0; i < 2; i++ {
		if err := dealTo(player, shoe); err != nil {
			return nil, err
		}
		if err := dealTo(dealer, shoe); err != nil {
			return nil, err
		}
	}
	up := dealer.Cards[0]

	out := &Outcome{
		InitialCards: append([]deck.Card(nil), player.Cards...),
		DealerUp:     up,
		Bet:          bet,
	}
	e.logger.Debug("dealt", "player", player, "dealer_up", up)

	resolved, err := e.playRound(player, dealer, up, shoe)
	if err != nil {
		return nil, err
	}

	for _, h := range resolved {
		ho := settleHand(h, dealer, e.profile)
		out.Hands = append(out.Hands, ho)
		out.Net += ho.Net
		e.logger.Debug("settled", "hand", h, "result", ho.Result, "net", ho.Net)
	}
	out.DealerCards = append([]deck.Card(nil), dealer.Cards...)
	out.DealerTotal = dealer.Total()
	out.DealerBusted = dealer.IsBusted()
	return out, nil
}

// playRound takes every player hand to a terminal state, then completes
// the dealer hand when any player hand still needs the comparison.
func (e *Engine) playRound(player, dealer *Hand, up deck.Card, shoe *deck.Shoe) ([]*Hand, error) {
	// Dealer peek: a dealer natural ends the round before any action.
	if dealer.IsBlackjack() {
		dealer.State = BlackjackResolved
		if player.IsBlackjack() {
			player.State = BlackjackResolved
		} else {
			player.State = Stood
		}
		e.logger.Debug("dealer blackjack", "dealer", dealer)
		return []*Hand{player}, nil
	}

	if player.IsBlackjack() {
		player.State = BlackjackResolved
		dealer.State = Stood
		return []*Hand{player}, nil
	}

	splits := 0
	queue := []*Hand{player}
	var resolved []*Hand
	for len(queue) > 0 {
		h := queue[0]
		queue = queue[1:]
		children, err := e.playOne(h, up, shoe, &splits)
		if err != nil {
			return nil, err
		}
		if len(children) > 0 {
			// The split hand is gone; its children play next, in order.
			queue = append(children, queue...)
			continue
		}
		if !h.State.Terminal() {
			return nil, fmt.Errorf("hand %s left non-terminal state %s", h, h.State)
		}
		resolved = append(resolved, h)
	}

	if anyNeedsDealer(resolved) {
		if err := PlayDealer(dealer, shoe, e.profile); err != nil {
			return nil, err
		}
		e.logger.Debug("dealer played", "dealer", dealer)
	} else {
		dealer.State = Stood
	}
	return resolved, nil
}

// playOne advances a single hand until it is terminal or splits. On a
// split it returns the two child hands and the parent is discarded.
func (e *Engine) playOne(h *Hand, up deck.Card, shoe *deck.Shoe, splits *int) ([]*Hand, error) {
	if h.State == Dealt {
		// Children of a split never re-check for a natural.
		if h.IsBlackjack() {
			h.State = BlackjackResolved
			return nil, nil
		}
		h.State = Active
	}

	actionsTaken := 0
	for h.State == Active {
		cons := e.constraintsFor(h, *splits, actionsTaken)
		action, err := e.resolver.Resolve(h.View(), up.Rank, cons)
		if err != nil {
			return nil, err
		}
		e.logger.Debug("action", "hand", h, "dealer_up", up, "action", action)

		switch action {
		case strategy.Stand:
			h.State = Stood

		case strategy.Hit:
			if err := dealTo(h, shoe); err != nil {
				return nil, err
			}
			if h.IsBusted() {
				h.State = Busted
			}

		case strategy.Double:
			h.Doubled = true
			h.Bet *= 2
			if err := dealTo(h, shoe); err != nil {
				return nil, err
			}
			if h.IsBusted() {
				h.State = Busted
			} else {
				h.State = DoubledTerminal
			}

		case strategy.Surrender:
			h.IsSurrendered = true
			h.State = Surrendered

		case strategy.Split:
			*splits++
			return e.split(h, shoe)

		default:
			return nil, fmt.Errorf("unhandled resolved action %v for hand %s", action, h)
		}
		actionsTaken++
	}
	return nil, nil
}

// constraintsFor computes context legality for the resolver.
func (e *Engine) constraintsFor(h *Hand, splits, actionsTaken int) strategy.Constraints {
	canSplit := h.IsPair() && splits < e.profile.MaxSplits
	if canSplit && h.FromSplitAces && !e.profile.ResplitAces {
		canSplit = false
	}
	canDouble := len(h.Cards) == 2 && !h.FromSplitAces &&
		(h.SplitDepth == 0 || e.profile.DoubleAfterSplit)
	canSurrender := e.profile.AllowSurrender && len(h.Cards) == 2 &&
		h.SplitDepth == 0 && actionsTaken == 0
	return strategy.Constraints{
		CanSplit:     canSplit,
		CanDouble:    canDouble,
		CanSurrender: canSurrender,
	}
}

// split replaces a paired hand with two children, each inheriting one of
// the pair's cards plus a fresh draw and the parent's bet.
func (e *Engine) split(h *Hand, shoe *deck.Shoe) ([]*Hand, error) {
	aces := h.Cards[0].IsAce()
	depth := h.SplitDepth + 1
	children := make([]*Hand, 2)
	for i, card := range h.Cards {
		child := NewHand(h.Bet, card)
		child.SplitDepth = depth
		child.FromSplitAces = aces
		if err := dealTo(child, shoe); err != nil {
			return nil, err
		}
		children[i] = child
	}
	e.logger.Debug("split", "first", children[0], "second", children[1], "depth", depth)
	return children, nil
}

func dealTo(h *Hand, shoe *deck.Shoe) error {
	card, err := shoe.Draw()
	if err != nil {
		return fmt.Errorf("deal: %w", err)
	}
	h.Add(card)
	return nil
}

// anyNeedsDealer reports whether the dealer must complete its hand: at
// least one player hand stood (including after a double) and awaits the
// comparison. Naturals, busts and surrenders settle without dealer play.
func anyNeedsDealer(hands []*Hand) bool {
	for _, h := range hands {
		if h.State == Stood || h.State == DoubledTerminal {
			return true
		}
	}
	return false
}
