package prompt

import "charm.land/lipgloss/v2"

var (
	titleStyle   = lipgloss.NewStyle().Bold(true)
	cursorStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("212")).Bold(true)
	checkedStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("82"))
	mutedStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("240"))
	filterStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("62"))
)

const (
	checkboxOn  = "[✓]"
	checkboxOff = "[ ]"

	// maxVisibleRows is how many options a list shows before scrolling.
	maxVisibleRows = 10
)
