package main

import (
	"fmt"

	"github.com/wbwakeman/BlackjackSimulator/internal/strategy"
)

// CheckStrategyCmd validates a strategy chart without running a simulation.
type CheckStrategyCmd struct {
	File string `arg:"" help:"Strategy CSV file to validate"`
}

func (c *CheckStrategyCmd) Run() error {
	table, err := strategy.Load(c.File)
	if err != nil {
		return err
	}
	fmt.Printf("%s: OK (%d rows)\n", table.Name(), table.RowCount())
	return nil
}
