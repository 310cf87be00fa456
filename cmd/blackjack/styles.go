package main

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/wbwakeman/BlackjackSimulator/internal/game"
)

var (
	HeaderStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("230")).
			Background(lipgloss.Color("62"))

	WarningStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("214"))

	WinStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("42"))
	LossStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("196"))
	PushStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("245"))
)

func resultStyle(r game.Result) lipgloss.Style {
	switch r {
	case game.ResultWin, game.ResultBlackjack:
		return WinStyle
	case game.ResultPush:
		return PushStyle
	default:
		return LossStyle
	}
}
