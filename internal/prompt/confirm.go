package prompt

import (
	"fmt"
	"os"

	tea "charm.land/bubbletea/v2"
)

// ConfirmResult holds the result of a confirmation prompt.
type ConfirmResult struct {
	Confirmed bool
	Cancelled bool
}

type confirmModel struct {
	prompt    string
	def       bool
	confirmed bool
	done      bool
	cancelled bool
}

func (m confirmModel) Init() tea.Cmd {
	return nil
}

func (m confirmModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	key, ok := msg.(tea.KeyPressMsg)
	if !ok {
		return m, nil
	}
	switch key.String() {
	case "y", "Y":
		m.confirmed = true
	case "n", "N":
		m.confirmed = false
	case "enter":
		m.confirmed = m.def
	case "ctrl+c", "esc":
		m.cancelled = true
	default:
		return m, nil
	}
	m.done = true
	return m, tea.Quit
}

func (m confirmModel) View() tea.View {
	if m.done {
		return tea.NewView("")
	}
	hint := "[y/N]"
	if m.def {
		hint = "[Y/n]"
	}
	return tea.NewView(fmt.Sprintf("%s %s ", titleStyle.Render(m.prompt), mutedStyle.Render(hint)))
}

// Confirm shows a yes/no prompt. Pressing enter picks def.
func Confirm(prompt string, def bool) (ConfirmResult, error) {
	p := tea.NewProgram(confirmModel{prompt: prompt, def: def}, tea.WithOutput(os.Stderr))
	final, err := p.Run()
	if err != nil {
		return ConfirmResult{}, err
	}
	m := final.(confirmModel)
	return ConfirmResult{Confirmed: m.confirmed, Cancelled: m.cancelled}, nil
}
