package models

// DefaultRevealThreshold is the fraction of an element that must be inside
// the viewport before it is revealed.
const DefaultRevealThreshold = 0.1

type revealElement struct {
	top      int
	height   int
	revealed bool
}

// RevealScheduler reveals observed elements the first time enough of them
// scrolls into view. Each element moves from pending to revealed exactly
// once; revealed is terminal, so scrolling away never hides it again.
type RevealScheduler struct {
	threshold float64
	elements  map[string]*revealElement
	order     []string
}

// NewRevealScheduler creates a scheduler with the given visibility
// threshold. A threshold outside (0, 1] falls back to the default.
func NewRevealScheduler(threshold float64) *RevealScheduler {
	if threshold <= 0 || threshold > 1 {
		threshold = DefaultRevealThreshold
	}
	return &RevealScheduler{
		threshold: threshold,
		elements:  make(map[string]*revealElement),
	}
}

// Observe registers an element by its top line and line height. Re-observing
// an element updates its extent but never resets a revealed one to pending.
func (r *RevealScheduler) Observe(id string, top, height int) {
	if el, ok := r.elements[id]; ok {
		el.top = top
		el.height = height
		return
	}
	r.elements[id] = &revealElement{top: top, height: height}
	r.order = append(r.order, id)
}

// Visible reports the elements newly revealed by the given viewport window
// and marks them revealed. Calling it again with the same window returns
// nothing: revelation is idempotent.
func (r *RevealScheduler) Visible(viewTop, viewHeight int) []string {
	var newly []string
	for _, id := range r.order {
		el := r.elements[id]
		if el.revealed {
			continue
		}
		if r.visibleFraction(el, viewTop, viewHeight) >= r.threshold {
			el.revealed = true
			newly = append(newly, id)
		}
	}
	return newly
}

// Revealed reports whether the element has been revealed.
func (r *RevealScheduler) Revealed(id string) bool {
	el, ok := r.elements[id]
	return ok && el.revealed
}

func (r *RevealScheduler) visibleFraction(el *revealElement, viewTop, viewHeight int) float64 {
	if el.height <= 0 {
		return 0
	}
	top := el.top
	bottom := el.top + el.height
	if top < viewTop {
		top = viewTop
	}
	if bottom > viewTop+viewHeight {
		bottom = viewTop + viewHeight
	}
	if bottom <= top {
		return 0
	}
	return float64(bottom-top) / float64(el.height)
}
