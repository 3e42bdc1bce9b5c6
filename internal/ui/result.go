package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// ResultType indicates success or failure
type ResultType int

const (
	ResultSuccess ResultType = iota
	ResultFailure
)

// Detail is one key-value line of a result box.
type Detail struct {
	Key   string
	Value string
}

// Result represents a result box (success or failure)
type Result struct {
	Type            ResultType // Success or failure
	Title           string     // e.g., "Target set"
	Details         []Detail   // Key-value details, in display order
	Error           error      // Error (for failure results)
	Troubleshooting []string   // Troubleshooting tips (for failure results)
	Width           int        // Box width
	Plain           bool       // Render unstyled text (output is not a terminal)
}

// NewSuccessResult creates a success result box
func NewSuccessResult(title string, details ...Detail) *Result {
	return &Result{
		Type:    ResultSuccess,
		Title:   title,
		Details: details,
		Width:   MinTerminalWidth,
	}
}

// NewFailureResult creates a failure result box
func NewFailureResult(title string, err error, troubleshooting []string) *Result {
	return &Result{
		Type:            ResultFailure,
		Title:           title,
		Error:           err,
		Troubleshooting: troubleshooting,
		Width:           MinTerminalWidth,
	}
}

// SetWidth sets the box width for responsive rendering
func (r *Result) SetWidth(width int) *Result {
	r.Width = width
	return r
}

// SetPlain switches between styled and plain rendering
func (r *Result) SetPlain(plain bool) *Result {
	r.Plain = plain
	return r
}

// Render returns the result as a string
func (r *Result) Render() string {
	if r.Plain {
		return r.renderPlain()
	}
	if r.Type == ResultFailure {
		return r.renderFailure()
	}
	return r.renderSuccess()
}

// renderPlain renders the result without colours or borders, for pipes and logs
func (r *Result) renderPlain() string {
	var lines []string

	if r.Type == ResultFailure {
		if r.Error != nil {
			lines = append(lines, fmt.Sprintf("Error: %s: %v", r.Title, r.Error))
		} else {
			lines = append(lines, "Error: "+r.Title)
		}
	} else {
		lines = append(lines, r.Title)
	}

	for _, d := range r.Details {
		lines = append(lines, fmt.Sprintf("  %s: %s", d.Key, d.Value))
	}
	for _, tip := range r.Troubleshooting {
		lines = append(lines, "  - "+tip)
	}

	return strings.Join(lines, "\n")
}

// renderSuccess renders a success result box
func (r *Result) renderSuccess() string {
	lines := []string{
		SuccessTitleStyle.Render(fmt.Sprintf("%s  %s", SuccessMarker, r.Title)),
	}

	if len(r.Details) > 0 {
		lines = append(lines, "")
	}
	for _, d := range r.Details {
		lines = append(lines, ResultKeyStyle.Render(d.Key+":")+" "+ResultValueStyle.Render(d.Value))
	}

	return r.box(SuccessColor, lines)
}

// renderFailure renders a failure result box
func (r *Result) renderFailure() string {
	lines := []string{
		ErrorTitleStyle.Render(fmt.Sprintf("%s  FAILED  ─  %s", FailureMarker, r.Title)),
	}

	if r.Error != nil {
		lines = append(lines, "", ErrorMessageStyle.Render(r.Error.Error()))
	}

	if len(r.Troubleshooting) > 0 {
		lines = append(lines, "", TroubleshootingTitleStyle.Render("Troubleshooting:"))
		for _, tip := range r.Troubleshooting {
			lines = append(lines, TroubleshootingItemStyle.Render("  • "+tip))
		}
	}

	return r.box(ErrorColor, lines)
}

func (r *Result) box(border lipgloss.Color, lines []string) string {
	width := r.Width
	if width < MinTerminalWidth {
		width = MinTerminalWidth
	}

	return lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(border).
		Width(width - 2).
		Padding(0, 1).
		Render(strings.Join(lines, "\n"))
}

// String implements fmt.Stringer
func (r *Result) String() string {
	return r.Render()
}
