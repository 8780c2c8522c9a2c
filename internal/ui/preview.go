// Package ui provides an interactive preview of the extracted monster
// specs, so the generated list can be inspected without writing the
// output file.
package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
)

type previewModel struct {
	width     int
	height    int
	textInput textinput.Model
	quitting  bool

	title    string
	specs    []string
	filtered []string
	cursor   int
	offset   int

	styles styleSet
}

func newPreviewModel(title string, specs []string) previewModel {
	ti := textinput.New()
	ti.Placeholder = "Type to filter..."
	ti.Focus()
	ti.CharLimit = 256
	ti.Width = 50

	return previewModel{
		title:     title,
		specs:     specs,
		filtered:  specs,
		textInput: ti,
		styles:    defaultStyles(),
	}
}

// Init implements tea.Model
func (m previewModel) Init() tea.Cmd {
	return textinput.Blink
}

// Update implements tea.Model
func (m previewModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.textInput.Width = msg.Width - 4
		return m, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c", "esc":
			m.quitting = true
			return m, tea.Quit
		case "up", "ctrl+p":
			m.moveCursor(-1)
			return m, nil
		case "down", "ctrl+n":
			m.moveCursor(1)
			return m, nil
		case "pgup":
			m.moveCursor(-10)
			return m, nil
		case "pgdown":
			m.moveCursor(10)
			return m, nil
		case "home":
			m.cursor = 0
			return m, nil
		case "end":
			m.cursor = max(0, len(m.filtered)-1)
			return m, nil
		}
	}

	prevQuery := m.textInput.Value()
	var cmd tea.Cmd
	m.textInput, cmd = m.textInput.Update(msg)

	if m.textInput.Value() != prevQuery {
		m.filterSpecs()
	}

	return m, cmd
}

// moveCursor moves the cursor by delta, clamping to valid range
func (m *previewModel) moveCursor(delta int) {
	m.cursor = clamp(m.cursor+delta, 0, max(0, len(m.filtered)-1))
}

// filterSpecs narrows the list to specs containing every query word
func (m *previewModel) filterSpecs() {
	query := strings.TrimSpace(m.textInput.Value())

	if query == "" {
		m.filtered = m.specs
	} else {
		words := strings.Fields(strings.ToLower(query))
		m.filtered = make([]string, 0, len(m.specs))
		for _, spec := range m.specs {
			if matchesAllWords(strings.ToLower(spec), words) {
				m.filtered = append(m.filtered, spec)
			}
		}
	}

	m.cursor = clamp(m.cursor, 0, max(0, len(m.filtered)-1))
}

// View implements tea.Model
func (m previewModel) View() string {
	if m.quitting {
		return ""
	}

	width := max(m.width, 80)
	height := max(m.height, 24)

	var b strings.Builder

	header := m.styles.Title.Render(m.title) + " " +
		m.styles.Count.Render(countLabel(len(m.filtered), len(m.specs)))
	b.WriteString(header)
	b.WriteString("\n")
	b.WriteString(m.styles.Divider.Render(strings.Repeat("─", width)))
	b.WriteString("\n")

	listHeight := max(height-5, 3)
	listLines := 0

	if len(m.filtered) == 0 {
		b.WriteString(m.styles.Dim.Render("  (no matching specs)"))
		b.WriteString("\n")
		listLines++
	} else {
		start, end := scrollWindow(m.cursor, len(m.filtered), listHeight, &m.offset)
		for i := start; i < end; i++ {
			if i == m.cursor {
				b.WriteString(m.styles.Cursor.Render("▶ "))
				b.WriteString(m.styles.Selected.Render(m.filtered[i]))
			} else {
				b.WriteString("  ")
				b.WriteString(m.styles.Spec.Render(m.filtered[i]))
			}
			b.WriteString("\n")
			listLines++
		}
	}

	for listLines < listHeight {
		b.WriteString("\n")
		listLines++
	}

	b.WriteString(m.styles.Divider.Render(strings.Repeat("─", width)))
	b.WriteString("\n")
	b.WriteString(m.textInput.View())

	return b.String()
}

// Run opens the spec preview and blocks until the user quits.
func Run(title string, specs []string) error {
	p := tea.NewProgram(newPreviewModel(title, specs), tea.WithAltScreen())
	_, err := p.Run()
	return err
}

// clamp restricts v to the range [minV, maxV]
func clamp(v, minV, maxV int) int {
	if v < minV {
		return minV
	}
	if v > maxV {
		return maxV
	}
	return v
}

// scrollWindow calculates the visible range for a scrollable list
func scrollWindow(cursor, total, height int, offset *int) (start, end int) {
	if cursor < *offset {
		*offset = cursor
	}
	if cursor >= *offset+height {
		*offset = cursor - height + 1
	}
	maxOffset := max(0, total-height)
	*offset = clamp(*offset, 0, maxOffset)

	start = *offset
	end = min(start+height, total)
	return
}

// matchesAllWords returns true if text contains all words
func matchesAllWords(text string, words []string) bool {
	for _, word := range words {
		if !strings.Contains(text, word) {
			return false
		}
	}
	return true
}

func countLabel(filtered, total int) string {
	if filtered == total {
		return fmt.Sprintf("%d specs", total)
	}
	return fmt.Sprintf("%d of %d specs", filtered, total)
}
