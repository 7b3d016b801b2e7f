package formatter

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// RenderBox wraps content in a rounded border, with the title on top when
// one is given.
func RenderBox(title string, content string) string {
	box := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(ColorDim).
		Padding(0, 1)

	if title == "" {
		return box.Render(content)
	}
	return box.Render(StyleHeader.Render(strings.ToUpper(title)) + "\n\n" + content)
}

// RenderStepper renders numbered stages in one line, marking stages before
// current as done and highlighting current (1-based).
//
//	✔ 1 Basics  ● 2 Context  ○ 3 Plan
func RenderStepper(titles []string, current int) string {
	parts := make([]string, len(titles))
	for i, title := range titles {
		n := i + 1
		label := fmt.Sprintf("%d %s", n, title)
		switch {
		case n < current:
			parts[i] = StyleGreen.Render("✔ " + label)
		case n == current:
			parts[i] = StyleHeader.Render("● " + label)
		default:
			parts[i] = StyleDim.Render("○ " + label)
		}
	}
	return strings.Join(parts, "  ")
}

// Label renders a field label, highlighted when focused.
func Label(text string, focused bool) string {
	if focused {
		return StyleHeader.Render("› " + text)
	}
	return StyleFg.Render("  " + text)
}

// Placeholder renders the dim stand-in shown for an empty value.
func Placeholder(text string) string {
	if text == "" {
		return StyleDim.Render("—")
	}
	return text
}

// Indent prefixes every line of s with n spaces.
func Indent(s string, n int) string {
	pad := strings.Repeat(" ", n)
	lines := strings.Split(s, "\n")
	for i, l := range lines {
		if l != "" {
			lines[i] = pad + l
		}
	}
	return strings.Join(lines, "\n")
}
