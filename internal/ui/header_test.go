package ui

import (
	"bytes"
	"strings"
	"testing"

	"github.com/muesli/termenv"
	"github.com/stretchr/testify/assert"
)

func TestRenderHeader(t *testing.T) {
	useProfile(t, termenv.Ascii)

	tests := []struct {
		name string
		info HeaderInfo
		want string
	}{
		{
			name: "even padding",
			info: HeaderInfo{Title: "Hi", Width: 10},
			want: "╔════════╗\n║   Hi   ║\n╚════════╝\n\n",
		},
		{
			name: "odd remainder goes right",
			info: HeaderInfo{Title: "Hey", Width: 10},
			want: "╔════════╗\n║  Hey   ║\n╚════════╝\n\n",
		},
		{
			name: "subtitle",
			info: HeaderInfo{Title: "A", Subtitle: "bc", Width: 6},
			want: "╔════╗\n║ A  ║\n║ bc ║\n╚════╝\n\n",
		},
		{
			name: "wide title counts two columns per emoji",
			info: HeaderInfo{Title: "🚀 Go", Width: 10},
			want: "╔════════╗\n║ 🚀 Go  ║\n╚════════╝\n\n",
		},
		{
			name: "title wider than box has no padding",
			info: HeaderInfo{Title: "overflowing", Width: 6},
			want: "╔════╗\n║overflowing║\n╚════╝\n\n",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, RenderHeader(tt.info))
		})
	}
}

func TestRenderHeaderDefaultWidth(t *testing.T) {
	useProfile(t, termenv.Ascii)

	lines := strings.Split(RenderHeader(HeaderInfo{Title: "termui"}), "\n")
	assert.Equal(t, HeaderWidth, DisplayWidth(lines[0]))
	assert.Equal(t, HeaderWidth, DisplayWidth(lines[1]))
}

func TestRenderHeaderStyled(t *testing.T) {
	useProfile(t, termenv.TrueColor)

	out := RenderHeader(HeaderInfo{Title: "Hi", Width: 10})
	assert.Contains(t, out, "152;195;121", "header color")
	assert.Contains(t, out, "Hi")
	assert.Equal(t, "Hi", strings.TrimSpace(strings.Trim(StripANSI(strings.Split(out, "\n")[1]), "║")))
}

func TestPrintHeader(t *testing.T) {
	useProfile(t, termenv.Ascii)

	var buf bytes.Buffer
	PrintHeader(&buf, HeaderInfo{Title: "Hi", Width: 10})
	assert.Equal(t, RenderHeader(HeaderInfo{Title: "Hi", Width: 10}), buf.String())
}

func TestRenderSeparator(t *testing.T) {
	useProfile(t, termenv.Ascii)

	assert.Equal(t, "===\n", RenderSeparator(3, "="))
	assert.Equal(t, strings.Repeat("─", DividerWidth)+"\n", RenderSeparator(0, ""))
}

func TestRenderSectionHeader(t *testing.T) {
	useProfile(t, termenv.Ascii)

	assert.Equal(t, "\n═══ Setup ═══\n", RenderSectionHeader("Setup", UIAccent))

	var buf bytes.Buffer
	PrintSectionHeader(&buf, "Setup")
	assert.Equal(t, "\n═══ Setup ═══\n", buf.String())
}

func TestRenderCentered(t *testing.T) {
	useProfile(t, termenv.Ascii)

	assert.Equal(t, "  ab  \n", RenderCentered("ab", 6, UIInfo))
	assert.Equal(t, "toolong\n", RenderCentered("toolong", 4, UIInfo))
}

func TestRenderBox(t *testing.T) {
	useProfile(t, termenv.Ascii)

	tests := []struct {
		name    string
		text    string
		padding int
		want    string
	}{
		{"padded", "hi", 2, "┌──────┐\n│  hi  │\n└──────┘\n"},
		{"no padding", "hi", 0, "┌──┐\n│hi│\n└──┘\n"},
		{"negative padding", "hi", -1, "┌──┐\n│hi│\n└──┘\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, RenderBox(tt.text, tt.padding, UIInfo))
		})
	}
}

func TestPrintBox(t *testing.T) {
	useProfile(t, termenv.Ascii)

	var buf bytes.Buffer
	PrintBox(&buf, "ok", 1)
	assert.Equal(t, "┌────┐\n│ ok │\n└────┘\n", buf.String())
}
