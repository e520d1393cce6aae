package ui

import "github.com/charmbracelet/lipgloss"

// Dashboard color palette - tailwind slate, dark theme.
const (
	// Background tones
	ColorSlate800 = lipgloss.Color("#1e293b") // Frame background
	ColorSlate900 = lipgloss.Color("#0f172a") // Panel body

	// Light tones for borders and text-on-light
	ColorSlate100 = lipgloss.Color("#f1f5f9") // Header background
	ColorSlate300 = lipgloss.Color("#cbd5e1") // Panel border and title background
)
