package state

// PageSize is the step of PageUp and PageDown.
const PageSize = 10

// ScrollRegion tracks the first visible line of a scrollable popup. Scroll
// stays within [0, Max] after every operation.
type ScrollRegion struct {
	Scroll int
	Max    int
}

func (r *ScrollRegion) clamp() {
	if r.Max < 0 {
		r.Max = 0
	}
	if r.Scroll > r.Max {
		r.Scroll = r.Max
	}
	if r.Scroll < 0 {
		r.Scroll = 0
	}
}

// SetMax updates the upper bound, pulling Scroll back inside it.
func (r *ScrollRegion) SetMax(n int) {
	r.Max = n
	r.clamp()
}

// SetContent derives Max from the number of content lines and the
// viewport height.
func (r *ScrollRegion) SetContent(lines, viewport int) {
	r.SetMax(lines - viewport)
}

// Up scrolls towards the top by step lines.
func (r *ScrollRegion) Up(step int) {
	r.Scroll -= step
	r.clamp()
}

// Down scrolls towards the bottom by step lines.
func (r *ScrollRegion) Down(step int) {
	r.Scroll += step
	r.clamp()
}

// PageUp scrolls up by PageSize.
func (r *ScrollRegion) PageUp() { r.Up(PageSize) }

// PageDown scrolls down by PageSize.
func (r *ScrollRegion) PageDown() { r.Down(PageSize) }

// Home jumps to the top.
func (r *ScrollRegion) Home() { r.Scroll = 0 }

// End jumps to the bottom.
func (r *ScrollRegion) End() {
	r.clamp()
	r.Scroll = r.Max
}

// Reset returns to the top and forgets the bound.
func (r *ScrollRegion) Reset() {
	r.Scroll = 0
	r.Max = 0
}
