package mouse

import "time"

// ClickTracker derives click counts from raw press events for event
// sources (like terminals) that do not report multi-clicks themselves.
type ClickTracker struct {
	maxTime     time.Duration
	maxDistance int

	lastPos   Position
	lastTime  time.Time
	lastCount int
}

// NewClickTracker creates a click tracker with the given sequence
// thresholds.
func NewClickTracker(maxTime time.Duration, maxDistance int) *ClickTracker {
	return &ClickTracker{
		maxTime:     maxTime,
		maxDistance: maxDistance,
	}
}

// RecordClick records a click and returns the click count (1, 2, or 3).
// The count wraps back to 1 after 3. A zero timestamp falls back to
// time.Now().
func (t *ClickTracker) RecordClick(pos Position, timestamp time.Time) int {
	if timestamp.IsZero() {
		timestamp = time.Now()
	}

	if t.isPartOfSequence(pos, timestamp) {
		t.lastCount++
		if t.lastCount > 3 {
			t.lastCount = 1
		}
	} else {
		t.lastCount = 1
	}

	t.lastPos = pos
	t.lastTime = timestamp
	return t.lastCount
}

// isPartOfSequence checks if a click continues the current sequence.
func (t *ClickTracker) isPartOfSequence(pos Position, timestamp time.Time) bool {
	if t.lastCount == 0 || t.lastTime.IsZero() {
		return false
	}

	// Clock skew: a negative elapsed time starts a new sequence.
	elapsed := timestamp.Sub(t.lastTime)
	if elapsed < 0 || elapsed > t.maxTime {
		return false
	}

	return pos.Distance(t.lastPos) <= t.maxDistance
}

// Reset clears the click tracking state.
func (t *ClickTracker) Reset() {
	t.lastCount = 0
	t.lastTime = time.Time{}
	t.lastPos = Position{}
}
