package components

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/mrsinham/screenforge/cmd/screenforge/wizard/help"
	"github.com/mrsinham/screenforge/internal/util"
)

var (
	helpHeadingStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("63")).Bold(true)
	helpBodyStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("252"))
	helpNoteStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("244"))
	helpWarnStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("214"))
)

// HelpPanel explains the focused form field: what it holds, where it lands
// in the note, and how to set it from the command line.
type HelpPanel struct {
	key   string
	value string
	width int
}

// NewHelpPanel returns an empty panel.
func NewHelpPanel() *HelpPanel {
	return &HelpPanel{width: 60}
}

// SetField focuses the panel on key and the value currently typed for it.
func (h *HelpPanel) SetField(key, value string) {
	h.key = key
	h.value = value
}

// Field returns the focused key.
func (h *HelpPanel) Field() string { return h.key }

// SetSize sets the panel width. Height follows the content.
func (h *HelpPanel) SetSize(width, _ int) {
	h.width = max(width, 20)
}

// View renders the panel.
func (h *HelpPanel) View() string {
	style := PanelStyle.Width(h.width - 4)

	text, ok := help.Texts[h.key]
	if !ok {
		return style.Render(helpNoteStyle.Render("Select a field to see help"))
	}

	lines := []string{
		helpHeadingStyle.Render(text.Title),
		"",
		helpBodyStyle.Render(text.Description),
		helpNoteStyle.Render(text.Details),
	}

	// record fields also map to a template placeholder and a --field key
	if info, err := util.GetFieldByName(h.key); err == nil {
		lines = append(lines, "",
			helpNoteStyle.Render(fmt.Sprintf("%s field, rendered at {{ %s }}", info.Group, info.Key)),
			helpNoteStyle.Render(fmt.Sprintf("CLI: --field %s=... (also %s)", info.Key, strings.Join(info.Aliases, ", "))),
		)
		if h.value == "" {
			lines = append(lines, "", helpWarnStyle.Render(emptyNotice(info.Key)))
		}
	}

	return style.Render(strings.Join(lines, "\n"))
}

func emptyNotice(key string) string {
	if key == util.FieldPatientID {
		return "Empty: the document cannot be saved without a patient ID."
	}
	return "Empty: this part of the note will be left blank."
}
