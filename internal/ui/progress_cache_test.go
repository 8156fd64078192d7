package ui

import (
	"bytes"
	"fmt"
	"math"
	"regexp"
	"strconv"
	"testing"

	"github.com/muesli/termenv"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dotkit/termui/internal/logger"
)

// recordingWriter counts writes and flushes and can be told to fail.
type recordingWriter struct {
	buf     bytes.Buffer
	writes  int
	flushes int
	fail    bool
}

func (w *recordingWriter) Write(p []byte) (int, error) {
	if w.fail {
		return 0, fmt.Errorf("sink closed")
	}
	w.writes++
	return w.buf.Write(p)
}

func (w *recordingWriter) Flush() error {
	w.flushes++
	return nil
}

func newTestCache(t *testing.T, opts ...ProgressOption) (*ProgressCache, *recordingWriter) {
	t.Helper()
	useProfile(t, termenv.Ascii)
	w := &recordingWriter{}
	opts = append([]ProgressOption{WithProgressWidth(10)}, opts...)
	return NewProgressCache(w, opts...), w
}

func TestProgressCacheDefaults(t *testing.T) {
	p := NewProgressCache(&bytes.Buffer{})

	assert.Equal(t, DefaultProgressWidth, p.Width())
	assert.Equal(t, DefaultProgressTotal, p.Total())
	assert.Equal(t, 0, p.Current())
}

func TestProgressCacheUpdateWritesLine(t *testing.T) {
	p, w := newTestCache(t)

	p.Update(50, 100)

	assert.Equal(t, "\r"+ClearLineSeq+"Progress: [█████░░░░░]  50% (50/100)", w.buf.String())
	assert.Equal(t, 1, w.writes)
	assert.Equal(t, 1, w.flushes)
	assert.NotContains(t, w.buf.String(), "\n")
}

func TestProgressCacheSuppressesIdenticalFrames(t *testing.T) {
	p, w := newTestCache(t)

	for i := 0; i < 5; i++ {
		p.Update(30, 100)
	}

	assert.Equal(t, 1, w.writes)
}

func TestProgressCacheRedrawsOnVisibleChange(t *testing.T) {
	tests := []struct {
		name       string
		first      [2]int
		second     [2]int
		wantWrites int
	}{
		{"same frame", [2]int{10, 100}, [2]int{10, 100}, 1},
		{"count changes, percent does not", [2]int{1, 1000}, [2]int{2, 1000}, 2},
		{"total changes", [2]int{10, 100}, [2]int{10, 200}, 2},
		{"percent changes", [2]int{10, 100}, [2]int{11, 100}, 2},
		{"both clamp to the same frame", [2]int{150, 100}, [2]int{200, 100}, 1},
		{"both coerce to total 1", [2]int{0, 0}, [2]int{0, -5}, 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p, w := newTestCache(t)

			p.Update(tt.first[0], tt.first[1])
			p.Update(tt.second[0], tt.second[1])

			assert.Equal(t, tt.wantWrites, w.writes)
		})
	}
}

func TestProgressCachePercentageNeverDecreases(t *testing.T) {
	tests := []struct {
		name  string
		total int
		step  int
	}{
		{"small total", 7, 1},
		{"uneven steps", 1000, 37},
		{"large values", 100_000_000_000_000_000, 3_333_333_333_333_333},
		{"near max int", math.MaxInt, math.MaxInt / 9},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p, w := newTestCache(t)

			for current := 0; ; current += tt.step {
				p.Update(current, tt.total)
				if current >= tt.total-tt.step {
					p.Update(tt.total, tt.total)
					break
				}
			}

			percents := writtenPercentages(t, w.buf.String())
			require.NotEmpty(t, percents)
			for i := 1; i < len(percents); i++ {
				assert.GreaterOrEqual(t, percents[i], percents[i-1], "write %d", i)
			}
			assert.Equal(t, 0, percents[0])
			assert.Equal(t, 100, percents[len(percents)-1])
		})
	}
}

// writtenPercentages extracts the percentage of every redraw in out.
func writtenPercentages(t *testing.T, out string) []int {
	t.Helper()
	var percents []int
	for _, m := range percentPattern.FindAllStringSubmatch(out, -1) {
		n, err := strconv.Atoi(m[1])
		require.NoError(t, err)
		require.True(t, n >= 0 && n <= 100, "percentage %d out of range", n)
		percents = append(percents, n)
	}
	return percents
}

var percentPattern = regexp.MustCompile(`\]\s+(-?\d+)% \(`)

func TestProgressCacheSkipsIdenticalText(t *testing.T) {
	p, w := newTestCache(t)
	p.lastRendered = p.Render(40, 100)

	p.Update(40, 100)

	assert.Zero(t, w.writes)
}

func TestProgressCacheWidthChangeRedraws(t *testing.T) {
	p, w := newTestCache(t)

	p.Update(50, 100)
	p.SetWidth(20)
	p.Update(50, 100)

	require.Equal(t, 2, w.writes)
	assert.Contains(t, w.buf.String(), "[██████████░░░░░░░░░░]")
}

func TestProgressCacheResetForcesRedraw(t *testing.T) {
	p, w := newTestCache(t)

	p.Update(25, 100)
	p.ResetCache()
	p.Update(25, 100)

	assert.Equal(t, 2, w.writes)
}

func TestProgressCacheFailedWriteIsRetried(t *testing.T) {
	log := logger.NewBufferLogger()
	p, w := newTestCache(t, WithProgressLogger(log))

	w.fail = true
	assert.NotPanics(t, func() { p.Update(60, 100) })
	assert.True(t, log.HasLevel(logger.LevelDebug))

	w.fail = false
	p.Update(60, 100)

	assert.Equal(t, 1, w.writes)
	assert.Contains(t, w.buf.String(), " 60% (60/100)")
}

func TestProgressCacheStoresClampedProgress(t *testing.T) {
	p, _ := newTestCache(t)

	p.Update(250, 200)
	assert.Equal(t, 200, p.Current())
	assert.Equal(t, 200, p.Total())

	p.Update(-3, 0)
	assert.Equal(t, 0, p.Current())
	assert.Equal(t, 1, p.Total())
}

func TestProgressCacheSetAndIncrement(t *testing.T) {
	p, w := newTestCache(t)

	p.Update(0, 20)
	p.Set(5)
	p.Increment(5)

	assert.Equal(t, 10, p.Current())
	assert.Equal(t, 20, p.Total())
	assert.Equal(t, 3, w.writes)
	assert.Contains(t, w.buf.String(), " 50% (10/20)")
}

func TestProgressCacheFinish(t *testing.T) {
	p, w := newTestCache(t)

	p.Update(100, 100)
	p.Finish()
	assert.True(t, bytes.HasSuffix(w.buf.Bytes(), []byte("\n")))

	p.Update(100, 100)
	assert.Equal(t, 3, w.writes, "finish resets the cache")
}

func TestProgressCacheOptions(t *testing.T) {
	p, w := newTestCache(t,
		WithProgressChars('#', '.'),
		WithProgressLabel("Copy "),
		WithProgressWidth(4),
	)

	p.Update(1, 2)

	assert.Equal(t, "\r"+ClearLineSeq+"Copy [##..]  50% (1/2)", w.buf.String())
}

func TestProgressCacheRenderHasNoSideEffects(t *testing.T) {
	p, w := newTestCache(t)

	assert.Equal(t, "[███░░░░░░░]  30% (3/10)", p.Render(3, 10))
	assert.Zero(t, w.writes)

	p.Update(3, 10)
	assert.Equal(t, 1, w.writes)
}

func TestProgressCacheMatchesRenderProgress(t *testing.T) {
	p, _ := newTestCache(t)

	for _, tc := range [][2]int{{0, 1}, {1, 3}, {2, 3}, {3, 3}, {7, 10}, {-1, 5}, {9, 4}} {
		assert.Equal(t, RenderProgress(tc[0], tc[1], 10, BarFilled, BarEmpty), p.Render(tc[0], tc[1]))
	}
}

func TestCharacterRunsRebuildOnChange(t *testing.T) {
	var runs characterRuns

	filled, empty := runs.get(4, '#', '.')
	assert.Equal(t, "##", filled.prefix(2))
	assert.Equal(t, "....", empty.prefix(4))

	filled, _ = runs.get(4, '█', '.')
	assert.Equal(t, "██", filled.prefix(2))

	filled, _ = runs.get(6, '█', '.')
	assert.Equal(t, "██████", filled.prefix(6))
	assert.Equal(t, "", filled.prefix(0))
}
