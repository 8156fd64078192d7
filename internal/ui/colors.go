package ui

import (
	"fmt"
	"io"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
)

// RGB is a 24-bit color.
type RGB struct {
	R, G, B uint8
}

// Hex returns the color as #rrggbb.
func (c RGB) Hex() string {
	return fmt.Sprintf("#%02x%02x%02x", c.R, c.G, c.B)
}

// Color returns the color for use in lipgloss styles.
func (c RGB) Color() lipgloss.Color {
	return lipgloss.Color(c.Hex())
}

// Uint32 packs the color as 0xRRGGBB.
func (c RGB) Uint32() uint32 {
	return uint32(c.R)<<16 | uint32(c.G)<<8 | uint32(c.B)
}

// OneDark palette.
var (
	OneDarkBG     = RGB{40, 44, 52}    // #282c34 main background
	OneDarkFG     = RGB{171, 178, 191} // #abb2bf default text
	OneDarkBlue   = RGB{97, 175, 239}  // #61afef
	OneDarkCyan   = RGB{86, 182, 194}  // #56b6c2
	OneDarkGreen  = RGB{152, 195, 121} // #98c379
	OneDarkPurple = RGB{198, 120, 221} // #c678dd
	OneDarkRed    = RGB{224, 108, 117} // #e06c75
	OneDarkYellow = RGB{229, 192, 123} // #e5c07b
	OneDarkOrange = RGB{209, 154, 102} // #d19a66
	OneDarkGray   = RGB{92, 99, 112}   // #5c6370 comments, subtle text

	// Interactive backgrounds
	OneDarkSelection = RGB{60, 70, 85} // #3c4655 selection highlight
	OneDarkAccent    = RGB{35, 40, 50} // #232832 subtle accent
)

// Semantic colors shared by every helper.
var (
	UISuccess  = OneDarkGreen
	UIWarning  = OneDarkYellow
	UIError    = OneDarkRed
	UIInfo     = OneDarkGray
	UIHeader   = OneDarkGreen
	UIAccent   = OneDarkPurple
	UIProgress = OneDarkCyan

	// Menus and lists
	UISelection   = OneDarkBlue // rendered bold, see CurrentSelection
	UISelectionBG = OneDarkSelection
	ItemLink      = OneDarkCyan
	ItemControl   = OneDarkYellow
	ItemAction    = OneDarkGreen
	ItemLibrarian = OneDarkPurple
	ItemQuit      = OneDarkRed
)

// PaletteEntry names a palette color for listings.
type PaletteEntry struct {
	Name  string
	Color RGB
}

// Palette lists the OneDark colors in display order.
func Palette() []PaletteEntry {
	return []PaletteEntry{
		{"bg", OneDarkBG},
		{"fg", OneDarkFG},
		{"blue", OneDarkBlue},
		{"cyan", OneDarkCyan},
		{"green", OneDarkGreen},
		{"purple", OneDarkPurple},
		{"red", OneDarkRed},
		{"yellow", OneDarkYellow},
		{"orange", OneDarkOrange},
		{"gray", OneDarkGray},
		{"selection", OneDarkSelection},
		{"accent", OneDarkAccent},
	}
}

var profile = termenv.TrueColor

// SetColorProfile switches both raw sequences and lipgloss styles to p.
func SetColorProfile(p termenv.Profile) {
	profile = p
	lipgloss.SetColorProfile(p)
}

// ColorProfile returns the active profile.
func ColorProfile() termenv.Profile {
	return profile
}

// DisableColors switches to monochrome output (for --no-color).
func DisableColors() {
	SetColorProfile(termenv.Ascii)
}

// DetectColorProfile picks a profile for w from the environment (NO_COLOR, COLORTERM, TERM).
func DetectColorProfile(w io.Writer) termenv.Profile {
	return termenv.NewOutput(w).EnvColorProfile()
}

// ColorsEnabled reports whether color and style sequences are emitted.
func ColorsEnabled() bool {
	return profile != termenv.Ascii
}

// Fg returns the SGR sequence selecting c as foreground, or "" when colors are off.
func Fg(c RGB) string {
	return colorSeq(c, false)
}

// Bg returns the SGR sequence selecting c as background, or "" when colors are off.
func Bg(c RGB) string {
	return colorSeq(c, true)
}

func colorSeq(c RGB, bg bool) string {
	switch profile {
	case termenv.Ascii:
		return ""
	case termenv.TrueColor:
		layer := termenv.Foreground
		if bg {
			layer = termenv.Background
		}
		return fmt.Sprintf("%s%s;2;%d;%d;%dm", termenv.CSI, layer, c.R, c.G, c.B)
	default:
		seq := profile.Convert(termenv.RGBColor(c.Hex())).Sequence(bg)
		if seq == "" {
			return ""
		}
		return termenv.CSI + seq + "m"
	}
}

// Attr returns seq when styling is enabled, "" otherwise.
func Attr(seq string) string {
	if !ColorsEnabled() {
		return ""
	}
	return seq
}

// Reset returns the SGR reset sequence, or "" when colors are off.
func Reset() string {
	return Attr(SeqReset)
}

// Style returns a lipgloss style with c as foreground.
func Style(c RGB) lipgloss.Style {
	return lipgloss.NewStyle().Foreground(c.Color())
}

// CurrentSelection is the style for the highlighted menu item.
func CurrentSelection() lipgloss.Style {
	return Style(UISelection).Bold(true)
}
