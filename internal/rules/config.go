package rules

import (
	"fmt"
	"os"

	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclparse"
)

// FileConfig is the optional HCL configuration file accepted by the CLI.
// Command-line flags take precedence over values set here.
type FileConfig struct {
	Strategy string         `hcl:"strategy,optional"`
	Rules    *RulesConfig   `hcl:"rules,block"`
	Session  *SessionConfig `hcl:"session,block"`
}

// RulesConfig names a base profile and carries the accepted overrides.
type RulesConfig struct {
	Name            string  `hcl:"name,label"`
	NumDecks        *int    `hcl:"num_decks,optional"`
	BlackjackPayout *string `hcl:"blackjack_payout,optional"`
}

// SessionConfig configures the session loop.
type SessionConfig struct {
	StartingStake float64 `hcl:"starting_stake,optional"`
	StandardBet   float64 `hcl:"standard_bet,optional"`
	Hands         int     `hcl:"hands,optional"`
	Sessions      int     `hcl:"sessions,optional"`
	Seed          *int64  `hcl:"seed,optional"`
	Parallel      int     `hcl:"parallel,optional"`
}

// LoadFileConfig loads a simulation configuration from an HCL file.
func LoadFileConfig(filename string) (*FileConfig, error) {
	if _, err := os.Stat(filename); err != nil {
		return nil, fmt.Errorf("config file %s: %w", filename, err)
	}

	parser := hclparse.NewParser()
	file, diags := parser.ParseHCLFile(filename)
	if diags.HasErrors() {
		return nil, fmt.Errorf("failed to parse HCL file: %s", diags.Error())
	}

	var config FileConfig
	diags = gohcl.DecodeBody(file.Body, nil, &config)
	if diags.HasErrors() {
		return nil, fmt.Errorf("failed to decode HCL: %s", diags.Error())
	}

	return &config, nil
}

// ResolveOverrides converts the string-typed file overrides into the
// validated Overrides accepted by Resolve.
func (rc *RulesConfig) ResolveOverrides() (Overrides, error) {
	var o Overrides
	o.NumDecks = rc.NumDecks
	if rc.BlackjackPayout != nil {
		payout, err := ParsePayout(*rc.BlackjackPayout)
		if err != nil {
			return Overrides{}, err
		}
		o.BlackjackPayout = &payout
	}
	return o, nil
}
