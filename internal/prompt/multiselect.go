package prompt

import (
	"fmt"
	"os"
	"strings"

	tea "charm.land/bubbletea/v2"
	"github.com/sahilm/fuzzy"
)

// MultiSelectResult holds the chosen options in their original order.
type MultiSelectResult struct {
	Values    []string
	Cancelled bool
}

type multiSelectModel struct {
	title     string
	options   []string
	visible   []int // indices into options matching the filter
	cursor    int   // position in visible
	selected  map[int]bool
	filter    string
	done      bool
	cancelled bool
}

func newMultiSelectModel(title string, options, preselected []string) multiSelectModel {
	m := multiSelectModel{
		title:    title,
		options:  options,
		selected: make(map[int]bool),
	}
	for i, opt := range options {
		for _, pre := range preselected {
			if opt == pre {
				m.selected[i] = true
			}
		}
	}
	m.applyFilter()
	return m
}

func (m multiSelectModel) Init() tea.Cmd {
	return nil
}

func (m multiSelectModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	key, ok := msg.(tea.KeyPressMsg)
	if !ok {
		return m, nil
	}

	switch key.String() {
	case "up", "ctrl+p":
		if m.cursor > 0 {
			m.cursor--
		}
	case "down", "ctrl+n":
		if m.cursor < len(m.visible)-1 {
			m.cursor++
		}
	case "space", " ", "tab":
		if len(m.visible) > 0 {
			idx := m.visible[m.cursor]
			if m.selected[idx] {
				delete(m.selected, idx)
			} else {
				m.selected[idx] = true
			}
		}
	case "enter":
		m.done = true
		return m, tea.Quit
	case "ctrl+c", "esc":
		m.cancelled = true
		m.done = true
		return m, tea.Quit
	case "backspace":
		if m.filter != "" {
			m.filter = m.filter[:len(m.filter)-1]
			m.applyFilter()
		}
	default:
		if key.Text != "" {
			m.filter += key.Text
			m.applyFilter()
		}
	}
	return m, nil
}

// applyFilter ranks options against the filter; an empty filter shows all
// options in their original order.
func (m *multiSelectModel) applyFilter() {
	visible := make([]int, 0, len(m.options))
	if m.filter == "" {
		for i := range m.options {
			visible = append(visible, i)
		}
	} else {
		for _, match := range fuzzy.Find(m.filter, m.options) {
			visible = append(visible, match.Index)
		}
	}
	m.visible = visible
	m.cursor = min(m.cursor, max(len(m.visible)-1, 0))
}

// values returns the selected options in their original order.
func (m multiSelectModel) values() []string {
	var out []string
	for i, opt := range m.options {
		if m.selected[i] {
			out = append(out, opt)
		}
	}
	return out
}

func (m multiSelectModel) View() tea.View {
	if m.done {
		return tea.NewView("")
	}

	var b strings.Builder
	fmt.Fprintf(&b, "%s (%d selected)\n", titleStyle.Render(m.title), len(m.selected))
	fmt.Fprintf(&b, "%s%s\n\n", mutedStyle.Render("Filter: "), filterStyle.Render(m.filter))

	start := 0
	if m.cursor >= maxVisibleRows {
		start = m.cursor - maxVisibleRows + 1
	}
	end := min(start+maxVisibleRows, len(m.visible))

	if len(m.visible) == 0 {
		b.WriteString(mutedStyle.Render("  no matches") + "\n")
	}
	for i := start; i < end; i++ {
		idx := m.visible[i]
		box := checkboxOff
		if m.selected[idx] {
			box = checkedStyle.Render(checkboxOn)
		}
		line := box + " " + m.options[idx]
		if i == m.cursor {
			line = cursorStyle.Render("> ") + line
		} else {
			line = "  " + line
		}
		b.WriteString(line + "\n")
	}

	b.WriteString("\n" + mutedStyle.Render("space: toggle • enter: confirm • esc: cancel"))
	return tea.NewView(b.String())
}

// MultiSelect lets the user pick any number of options. Options listed in
// preselected start out checked.
func MultiSelect(title string, options, preselected []string) (MultiSelectResult, error) {
	if len(options) == 0 {
		return MultiSelectResult{Cancelled: true}, nil
	}

	p := tea.NewProgram(newMultiSelectModel(title, options, preselected), tea.WithOutput(os.Stderr))
	final, err := p.Run()
	if err != nil {
		return MultiSelectResult{}, err
	}
	m := final.(multiSelectModel)
	if m.cancelled {
		return MultiSelectResult{Cancelled: true}, nil
	}
	return MultiSelectResult{Values: m.values()}, nil
}
