// Package diagnostic provides utilities for rendering diagnostic messages
// with source code snippets and underlines.
package diagnostic

import (
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// Severity selects the colour of the underline and message.
type Severity int

const (
	SeverityError Severity = iota
	SeverityInfo
)

var (
	gutterStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("243"))
	helpStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("39"))

	markStyles = map[Severity]lipgloss.Style{
		SeverityError: lipgloss.NewStyle().Foreground(lipgloss.Color("196")),
		SeverityInfo:  lipgloss.NewStyle().Foreground(lipgloss.Color("39")),
	}
)

// RenderSnippet renders a source line with line number, gutter, and an
// error underline. Returns something like:
//
//	3 | query { user }
//	  |         ^^^^ error message here
func RenderSnippet(source string, lineNum int, column int, length int, message string) string {
	return render(SeverityError, source, lineNum, column, length, message)
}

// RenderHighlight is RenderSnippet for pointing at a token rather than
// reporting a problem with it.
func RenderHighlight(source string, lineNum int, column int, length int, message string) string {
	return render(SeverityInfo, source, lineNum, column, length, message)
}

func render(severity Severity, source string, lineNum int, column int, length int, message string) string {
	if length < 1 {
		length = 1
	}
	if column < 1 {
		column = 1
	}
	style := markStyles[severity]

	numStr := strconv.Itoa(lineNum)
	gutterWidth := len(numStr)

	lineNumStyled := gutterStyle.Render(numStr)
	pipe := gutterStyle.Render("|")
	emptyGutter := strings.Repeat(" ", gutterWidth)

	// Line with number: "3 | query { user }"
	codeLine := lineNumStyled + " " + pipe + " " + source

	// Underline line: "  |         ^^^^"
	padding := strings.Repeat(" ", column-1)
	carets := style.Render(strings.Repeat("^", length))
	msgRendered := ""
	if message != "" {
		msgRendered = " " + style.Render(message)
	}
	underLine := emptyGutter + " " + pipe + " " + padding + carets + msgRendered

	return codeLine + "\n" + underLine
}

// RenderLocation renders a location header like "--> file.graphql:3:9"
func RenderLocation(filename string, line int, column int) string {
	loc := filename + ":" + strconv.Itoa(line) + ":" + strconv.Itoa(column)
	arrow := gutterStyle.Render("-->")
	return arrow + " " + loc
}

// RenderHelp renders a trailing hint like "  = help: did you mean `user`?"
func RenderHelp(message string) string {
	return "  = " + helpStyle.Render("help:") + " " + message
}
