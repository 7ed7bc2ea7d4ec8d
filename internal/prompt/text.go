package prompt

import (
	"fmt"
	"os"

	"charm.land/bubbles/v2/textinput"
	tea "charm.land/bubbletea/v2"
)

// TextInputResult holds the result of a text input prompt.
type TextInputResult struct {
	Value     string
	Cancelled bool
}

type textInputModel struct {
	input     textinput.Model
	prompt    string
	done      bool
	cancelled bool
}

func newTextInputModel(prompt, placeholder, value string) textInputModel {
	ti := textinput.New()
	ti.Placeholder = placeholder
	ti.SetValue(value)
	ti.Focus()
	ti.CharLimit = 256
	ti.SetWidth(60)
	return textInputModel{input: ti, prompt: prompt}
}

func (m textInputModel) Init() tea.Cmd {
	return textinput.Blink
}

func (m textInputModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if key, ok := msg.(tea.KeyPressMsg); ok {
		switch key.String() {
		case "enter":
			m.done = true
			return m, tea.Quit
		case "ctrl+c", "esc":
			m.cancelled = true
			m.done = true
			return m, tea.Quit
		}
	}
	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

func (m textInputModel) View() tea.View {
	if m.done {
		return tea.NewView("")
	}
	return tea.NewView(fmt.Sprintf("%s\n%s", titleStyle.Render(m.prompt), m.input.View()))
}

// TextInput asks for a single line of text, starting from value.
func TextInput(prompt, placeholder, value string) (TextInputResult, error) {
	p := tea.NewProgram(newTextInputModel(prompt, placeholder, value), tea.WithOutput(os.Stderr))
	final, err := p.Run()
	if err != nil {
		return TextInputResult{}, err
	}
	m := final.(textInputModel)
	return TextInputResult{Value: m.input.Value(), Cancelled: m.cancelled}, nil
}
