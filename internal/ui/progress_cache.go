package ui

import (
	"io"
	"strings"

	"github.com/dotkit/termui/internal/logger"
)

// Defaults for a new ProgressCache.
const (
	DefaultProgressWidth = 50
	DefaultProgressTotal = 100
	DefaultProgressLabel = "Progress: "
)

// unset marks cache fields that have never been rendered.
const unset = -1

// ProgressCache is an inline progress bar that only writes when the visible
// frame changes. Each redraw is "\r", clear-line, label and bar with no
// trailing newline, flushed immediately.
//
// A ProgressCache is owned by a single caller and is not safe for concurrent use.
type ProgressCache struct {
	w     io.Writer
	log   logger.Logger
	label string
	width int

	filledChar rune
	emptyChar  rune

	// Progress reported by the caller, clamped.
	current int
	total   int

	// Last frame written to w.
	lastPercentage int
	lastFilled     int
	lastCurrent    int
	lastTotal      int
	lastWidth      int
	lastRendered   string

	runs characterRuns
}

// ProgressOption configures a ProgressCache.
type ProgressOption func(*ProgressCache)

// WithProgressWidth sets the number of bar cells.
func WithProgressWidth(width int) ProgressOption {
	return func(p *ProgressCache) { p.width = width }
}

// WithProgressChars sets the filled and empty cell characters.
func WithProgressChars(filled, empty rune) ProgressOption {
	return func(p *ProgressCache) {
		p.filledChar = filled
		p.emptyChar = empty
	}
}

// WithProgressLabel sets the text written before the bar.
func WithProgressLabel(label string) ProgressOption {
	return func(p *ProgressCache) { p.label = label }
}

// WithProgressLogger sets the logger used for write failures.
func WithProgressLogger(l logger.Logger) ProgressOption {
	return func(p *ProgressCache) { p.log = l }
}

// NewProgressCache creates a progress bar writing to w.
func NewProgressCache(w io.Writer, opts ...ProgressOption) *ProgressCache {
	p := &ProgressCache{
		w:          w,
		log:        logger.Noop(),
		label:      DefaultProgressLabel,
		width:      DefaultProgressWidth,
		filledChar: BarFilled,
		emptyChar:  BarEmpty,
		total:      DefaultProgressTotal,
	}
	for _, opt := range opts {
		opt(p)
	}
	if p.width < 0 {
		p.width = 0
	}
	p.ResetCache()
	return p
}

// Current returns the last reported (clamped) progress.
func (p *ProgressCache) Current() int { return p.current }

// Total returns the last reported (coerced) total.
func (p *ProgressCache) Total() int { return p.total }

// Width returns the bar width.
func (p *ProgressCache) Width() int { return p.width }

// SetWidth changes the bar width. The next Update redraws.
func (p *ProgressCache) SetWidth(width int) {
	if width < 0 {
		width = 0
	}
	p.width = width
}

// Render returns the bar for current/total at the cache's width and characters.
// It has no side effects on what was last written.
func (p *ProgressCache) Render(current, total int) string {
	return p.render(NewProgressFrame(current, total, p.width))
}

func (p *ProgressCache) render(frame ProgressFrame) string {
	filled, empty := p.runs.get(frame.Width, p.filledChar, p.emptyChar)
	bar := "[" + filled.prefix(frame.Filled) + empty.prefix(frame.Empty()) + "]"
	return formatProgress(frame, bar)
}

// Update reports progress and redraws the line if the visible frame changed.
func (p *ProgressCache) Update(current, total int) {
	frame := NewProgressFrame(current, total, p.width)
	p.current = frame.Current
	p.total = frame.Total

	if frame.Percentage == p.lastPercentage &&
		frame.Filled == p.lastFilled &&
		frame.Current == p.lastCurrent &&
		frame.Total == p.lastTotal &&
		frame.Width == p.lastWidth {
		return
	}

	rendered := p.render(frame)
	// Second tier: identical text is never rewritten.
	if rendered == p.lastRendered {
		return
	}

	if err := p.write("\r" + ClearLineSeq + p.label + rendered); err != nil {
		p.log.Debug("progress redraw failed: %v", err)
		return
	}

	p.lastPercentage = frame.Percentage
	p.lastFilled = frame.Filled
	p.lastCurrent = frame.Current
	p.lastTotal = frame.Total
	p.lastWidth = frame.Width
	p.lastRendered = rendered
}

// Set reports progress against the last known total.
func (p *ProgressCache) Set(current int) {
	p.Update(current, p.total)
}

// Increment advances progress by step against the last known total.
func (p *ProgressCache) Increment(step int) {
	p.Update(p.current+step, p.total)
}

// ResetCache forgets the last written frame so the next Update always writes.
// Call it before a new sequence when other output may have moved the cursor.
func (p *ProgressCache) ResetCache() {
	p.lastPercentage = unset
	p.lastFilled = unset
	p.lastCurrent = unset
	p.lastTotal = unset
	p.lastWidth = unset
	p.lastRendered = ""
}

// Finish ends the progress line with a newline and resets the cache.
func (p *ProgressCache) Finish() {
	if err := p.write("\n"); err != nil {
		p.log.Debug("progress finish failed: %v", err)
	}
	p.ResetCache()
}

func (p *ProgressCache) write(s string) error {
	if _, err := io.WriteString(p.w, s); err != nil {
		return err
	}
	return flush(p.w)
}

// run is a string of one repeated rune.
type run struct {
	s    string
	size int // bytes per rune
}

func newRun(r rune, n int) run {
	cell := string(r)
	return run{s: strings.Repeat(cell, n), size: len(cell)}
}

// prefix returns the first n cells.
func (r run) prefix(n int) string {
	return r.s[:n*r.size]
}

// characterRuns holds full-width filled and empty runs, rebuilt only when
// the width or characters change.
type characterRuns struct {
	width  int
	fc, ec rune
	built  bool
	filled run
	empty  run
}

func (c *characterRuns) get(width int, filled, empty rune) (run, run) {
	if !c.built || c.width != width || c.fc != filled || c.ec != empty {
		c.filled = newRun(filled, width)
		c.empty = newRun(empty, width)
		c.width, c.fc, c.ec = width, filled, empty
		c.built = true
	}
	return c.filled, c.empty
}
