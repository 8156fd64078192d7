package ui

// Unicode symbols for status indicators.
const (
	SymbolSuccess  = "✓" // Task completed successfully
	SymbolFail     = "✗" // Task failed
	SymbolPending  = "○" // Task not yet started
	SymbolProgress = "◐" // Task in progress
	SymbolComplete = "●" // Task done (alternative to success)
	SymbolSkipped  = "⊘" // Task skipped
)

// Emoji prefixes for status messages.
const (
	EmojiSuccess = "✅"
	EmojiWarning = "⚠️"
	EmojiError   = "❌"
	EmojiInfo    = "ℹ️"
)

// Progress bar block characters.
const (
	BarFilled = '█'
	BarEmpty  = '░'
)
