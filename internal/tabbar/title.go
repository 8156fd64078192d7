package tabbar

import (
	"strconv"
	"strings"

	"github.com/muesli/reflow/truncate"
)

// DefaultTitleTemplate shows the tab number before its title.
const DefaultTitleTemplate = "{index} {title}"

// FormatTitle expands {index} and {title} in template. The result never
// exceeds limit columns, so a runaway title can't spill past the screen;
// the draw step handles the per-tab limit. A limit below 1 disables clipping.
func FormatTitle(template string, tab Tab, index, limit int) string {
	if template == "" {
		template = DefaultTitleTemplate
	}
	title := strings.NewReplacer(
		"{index}", strconv.Itoa(index),
		"{title}", cleanTitle(tab.Title),
	).Replace(template)

	if limit > 0 {
		title = truncate.String(title, uint(limit))
	}
	return title
}

// cleanTitle flattens control characters so a title stays on one line.
func cleanTitle(title string) string {
	return strings.Map(func(r rune) rune {
		if r < 0x20 || r == 0x7f {
			return ' '
		}
		return r
	}, title)
}
