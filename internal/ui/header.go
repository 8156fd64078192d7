package ui

import (
	"fmt"
	"io"
	"strings"
)

// HeaderWidth is the default width of header boxes.
const HeaderWidth = 78

// DividerWidth is the default width for separator lines.
const DividerWidth = 78

// HeaderInfo contains the text shown in a header box.
type HeaderInfo struct {
	Title    string
	Subtitle string // optional
	Width    int    // total box width; 0 means HeaderWidth
}

// RenderHeader renders a double-line box with centered title and subtitle:
//
//	╔════════════╗
//	║   Title    ║
//	╚════════════╝
func RenderHeader(info HeaderInfo) string {
	width := info.Width
	if width <= 0 {
		width = HeaderWidth
	}
	inner := width - 2
	if inner < 0 {
		inner = 0
	}

	style := Style(UIHeader).Bold(true)

	var output strings.Builder
	output.WriteString(style.Render("╔"+strings.Repeat("═", inner)+"╗") + "\n")
	output.WriteString(style.Render("║"+centerText(info.Title, inner)+"║") + "\n")
	if info.Subtitle != "" {
		output.WriteString(style.Render("║"+centerText(info.Subtitle, inner)+"║") + "\n")
	}
	output.WriteString(style.Render("╚"+strings.Repeat("═", inner)+"╝") + "\n")
	output.WriteString("\n")

	return output.String()
}

// PrintHeader writes the header box to w.
func PrintHeader(w io.Writer, info HeaderInfo) {
	emit(w, RenderHeader(info))
}

// centerText pads text to width columns; the right side takes the odd column.
func centerText(text string, width int) string {
	textWidth := SafeDisplayWidth(text)
	left := (width - textWidth) / 2
	if left < 0 {
		left = 0
	}
	right := width - textWidth - left
	if right < 0 {
		right = 0
	}
	return strings.Repeat(" ", left) + text + strings.Repeat(" ", right)
}

// RenderSeparator renders a single line of char in the info color.
func RenderSeparator(width int, char string) string {
	if width <= 0 {
		width = DividerWidth
	}
	if char == "" {
		char = "─"
	}
	return Style(UIInfo).Render(strings.Repeat(char, width)) + "\n"
}

// PrintSeparator writes a separator line to w.
func PrintSeparator(w io.Writer, width int, char string) {
	emit(w, RenderSeparator(width, char))
}

// RenderSectionHeader renders a lighter subsection title: ═══ Title ═══
func RenderSectionHeader(title string, color RGB) string {
	return "\n" + Style(color).Bold(true).Render(fmt.Sprintf("═══ %s ═══", title)) + "\n"
}

// PrintSectionHeader writes a section header in the accent color.
func PrintSectionHeader(w io.Writer, title string) {
	emit(w, RenderSectionHeader(title, UIAccent))
}

// RenderCentered pads text on both sides to center it in width columns.
func RenderCentered(text string, width int, color RGB) string {
	padding := (width - SafeDisplayWidth(text)) / 2
	if padding < 0 {
		padding = 0
	}
	pad := strings.Repeat(" ", padding)
	return Style(color).Render(pad+text+pad) + "\n"
}

// PrintCentered writes centered text in the info color.
func PrintCentered(w io.Writer, text string, width int) {
	emit(w, RenderCentered(text, width, UIInfo))
}

// RenderBox renders text inside a single-line box:
//
//	┌────────┐
//	│  text  │
//	└────────┘
func RenderBox(text string, padding int, color RGB) string {
	if padding < 0 {
		padding = 0
	}
	inner := SafeDisplayWidth(text) + padding*2
	pad := strings.Repeat(" ", padding)
	style := Style(color)

	var b strings.Builder
	b.WriteString(style.Render("┌"+strings.Repeat("─", inner)+"┐") + "\n")
	b.WriteString(style.Render("│"+pad+text+pad+"│") + "\n")
	b.WriteString(style.Render("└"+strings.Repeat("─", inner)+"┘") + "\n")
	return b.String()
}

// PrintBox writes a boxed line of text in the info color.
func PrintBox(w io.Writer, text string, padding int) {
	emit(w, RenderBox(text, padding, UIInfo))
}
