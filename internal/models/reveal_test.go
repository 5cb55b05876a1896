package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRevealHappensExactlyOnce(t *testing.T) {
	r := NewRevealScheduler(0.1)
	r.Observe("about", 0, 10)

	newly := r.Visible(0, 20)
	require.Equal(t, []string{"about"}, newly)
	assert.True(t, r.Revealed("about"))

	// The crossing event firing again must not re-reveal.
	assert.Empty(t, r.Visible(0, 20))
	assert.Empty(t, r.Visible(5, 20))
	assert.True(t, r.Revealed("about"))
}

func TestRevealBelowThresholdStaysPending(t *testing.T) {
	r := NewRevealScheduler(0.5)
	r.Observe("contact", 100, 10)

	// Only 2 of 10 lines inside the window: 20% visible, below 50%.
	assert.Empty(t, r.Visible(0, 102))
	assert.False(t, r.Revealed("contact"))

	// 6 of 10 lines inside: crosses the threshold.
	assert.Equal(t, []string{"contact"}, r.Visible(10, 96))
}

func TestRevealIsMonotonicAcrossScrollAway(t *testing.T) {
	r := NewRevealScheduler(0.1)
	r.Observe("projects", 50, 20)

	require.NotEmpty(t, r.Visible(45, 30))

	// Scrolling far away never hides a revealed element.
	assert.Empty(t, r.Visible(0, 10))
	assert.True(t, r.Revealed("projects"))
}

func TestObserveUpdatesExtentWithoutResettingState(t *testing.T) {
	r := NewRevealScheduler(0.1)
	r.Observe("about", 0, 5)
	require.NotEmpty(t, r.Visible(0, 10))

	// A re-render moved the section; it stays revealed.
	r.Observe("about", 40, 5)
	assert.True(t, r.Revealed("about"))
	assert.Empty(t, r.Visible(38, 10))
}

func TestRevealMultipleElementsInOneTurn(t *testing.T) {
	r := NewRevealScheduler(0.1)
	r.Observe("about", 0, 5)
	r.Observe("projects", 6, 5)
	r.Observe("contact", 100, 5)

	newly := r.Visible(0, 12)
	assert.Equal(t, []string{"about", "projects"}, newly)
	assert.False(t, r.Revealed("contact"))
}

func TestRevealInvalidThresholdFallsBack(t *testing.T) {
	r := NewRevealScheduler(0)
	r.Observe("about", 0, 10)
	assert.NotEmpty(t, r.Visible(0, 1))

	r2 := NewRevealScheduler(1.5)
	r2.Observe("about", 0, 10)
	assert.NotEmpty(t, r2.Visible(0, 1))
}

func TestUnknownElementIsNotRevealed(t *testing.T) {
	r := NewRevealScheduler(0.1)
	assert.False(t, r.Revealed("missing"))
}
