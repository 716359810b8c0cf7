package main

import "github.com/charmbracelet/lipgloss"

// Centralized style definitions for the REPL.
var (
	// Startup banner.
	bannerStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("8")) // dim gray

	// User prompt.
	promptStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("4")) // blue

	// Agent answer prefix.
	agentPrefixStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("6")) // cyan

	// Error / failure lines.
	errorStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("1")) // red

	// Trivia quiz header.
	quizHeaderStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("5")) // magenta
)
