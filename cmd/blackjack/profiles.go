package main

import (
	"fmt"

	"github.com/wbwakeman/BlackjackSimulator/internal/rules"
)

// ProfilesCmd lists the built-in casino rule profiles.
type ProfilesCmd struct{}

func (c *ProfilesCmd) Run() error {
	fmt.Printf("%s\n\n", HeaderStyle.Render(" Rule Profiles "))
	for _, name := range rules.ProfileNames() {
		p, err := rules.BaseProfile(name)
		if err != nil {
			return err
		}
		fmt.Printf("%s\n", name)
		fmt.Printf("  Decks: %d, blackjack pays %s\n", p.NumDecks, p.BlackjackPayout)
		fmt.Printf("  Dealer %s on soft 17%s\n",
			onOff(p.DealerHitsSoft17, "hits", "stands"),
			enforcedNote(!p.DealerHitsSoft17))
		fmt.Printf("  Late surrender %s%s\n",
			onOff(p.AllowSurrender, "allowed", "not allowed"),
			enforcedNote(!p.AllowSurrender))
		fmt.Printf("  Max splits: %d, resplit aces %s, double after split %s\n",
			p.MaxSplits,
			onOff(p.ResplitAces, "allowed", "not allowed"),
			onOff(p.DoubleAfterSplit, "allowed", "not allowed"))
		fmt.Println()
	}
	fmt.Println("Documented rules marked [forced on] are overridden at resolution time.")
	return nil
}

func enforcedNote(forced bool) string {
	if forced {
		return WarningStyle.Render(" [forced on]")
	}
	return ""
}
