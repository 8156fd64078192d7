package ui

import (
	"fmt"
	"math/bits"
	"strings"
	"unicode/utf8"

	"github.com/dotkit/termui/internal/errors"
)

// ProgressFrame is a clamped progress pair with its derived display values.
type ProgressFrame struct {
	Current    int
	Total      int
	Width      int
	Percentage int // floor(Current*100/Total)
	Filled     int // floor(Current*Width/Total), within [0, Width]
}

// NewProgressFrame clamps the inputs and computes percentage and filled cells.
// Total is coerced to at least 1 and current into [0, total]; nothing is rejected.
func NewProgressFrame(current, total, width int) ProgressFrame {
	if total < 1 {
		total = 1
	}
	current = clampInt(current, 0, total)
	if width < 0 {
		width = 0
	}

	return ProgressFrame{
		Current:    current,
		Total:      total,
		Width:      width,
		Percentage: scaleDown(current, 100, total),
		Filled:     clampInt(scaleDown(current, width, total), 0, width),
	}
}

// scaleDown returns floor(n*k/d) without overflowing for 0 ≤ n ≤ d and k ≥ 0.
// n ≤ d keeps the high word of the product below d, so Div64 cannot panic.
func scaleDown(n, k, d int) int {
	hi, lo := bits.Mul64(uint64(n), uint64(k))
	q, _ := bits.Div64(hi, lo, uint64(d))
	return int(q)
}

// Empty returns the number of remaining cells.
func (f ProgressFrame) Empty() int {
	return f.Width - f.Filled
}

// CheckRange reports whether a progress pair is in range without clamping it.
// Callers that prefer validation over silent coercion can use it before Update.
func CheckRange(current, total int) error {
	if total < 1 || current < 0 || current > total {
		return errors.NewInvalidRange(current, total)
	}
	return nil
}

// BuildBarString builds the raw bar string (without styling) from filled/empty counts.
// If brackets is true, wraps in [ ].
func BuildBarString(filledCount, emptyCount int, filled, empty rune, brackets bool) string {
	var sb strings.Builder
	sb.Grow((filledCount+emptyCount)*utf8.UTFMax + 2)

	if brackets {
		sb.WriteRune('[')
	}
	for i := 0; i < filledCount; i++ {
		sb.WriteRune(filled)
	}
	for i := 0; i < emptyCount; i++ {
		sb.WriteRune(empty)
	}
	if brackets {
		sb.WriteRune(']')
	}

	return sb.String()
}

// RenderProgress renders a complete bar: color, [cells], percentage and count, reset.
// Output format: [█████░░░░░]  50% (50/100)
func RenderProgress(current, total, width int, filled, empty rune) string {
	frame := NewProgressFrame(current, total, width)
	bar := BuildBarString(frame.Filled, frame.Empty(), filled, empty, true)
	return formatProgress(frame, bar)
}

func formatProgress(frame ProgressFrame, bar string) string {
	return fmt.Sprintf("%s%s %3d%% (%d/%d)%s",
		Fg(UIProgress), bar, frame.Percentage, frame.Current, frame.Total, Reset())
}

func clampInt(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
