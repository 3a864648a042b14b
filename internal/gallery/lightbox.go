package gallery

// SwipeThreshold is the minimum horizontal travel, in pixels, for a touch
// gesture to count as a swipe.
const SwipeThreshold = 50

type Action int

const (
	None Action = iota
	Next
	Prev
	Close
)

// Lightbox is the full-screen viewer state over a fixed slide list.
type Lightbox struct {
	slides []Slide
	index  int
	open   bool
}

func NewLightbox(slides []Slide) *Lightbox { return &Lightbox{slides: slides} }

// Open shows the slide at i, clamped into range.
func (l *Lightbox) Open(i int) {
	if len(l.slides) == 0 {
		return
	}
	switch {
	case i < 0:
		i = 0
	case i >= len(l.slides):
		i = len(l.slides) - 1
	}
	l.index, l.open = i, true
}

func (l *Lightbox) Close()       { l.open = false }
func (l *Lightbox) IsOpen() bool { return l.open }
func (l *Lightbox) Index() int   { return l.index }
func (l *Lightbox) Len() int     { return len(l.slides) }

func (l *Lightbox) Current() (Slide, bool) {
	if !l.open {
		return Slide{}, false
	}
	return l.slides[l.index], true
}

func (l *Lightbox) Next() { l.step(1) }
func (l *Lightbox) Prev() { l.step(-1) }

func (l *Lightbox) step(d int) {
	if !l.open {
		return
	}
	l.index = Wrap(l.index+d, len(l.slides))
}

// Apply runs an action and reports whether the state changed.
func (l *Lightbox) Apply(a Action) bool {
	if !l.open {
		return false
	}
	switch a {
	case Next:
		l.Next()
	case Prev:
		l.Prev()
	case Close:
		l.Close()
	default:
		return false
	}
	return true
}

// KeyAction maps a KeyboardEvent.key value.
func KeyAction(key string) Action {
	switch key {
	case "ArrowRight":
		return Next
	case "ArrowLeft":
		return Prev
	case "Escape", "Esc":
		return Close
	}
	return None
}

// SwipeAction classifies a touch gesture by its start and end points.
// Left swipes advance, right swipes go back; short or mostly vertical
// movements are ignored.
func SwipeAction(startX, startY, endX, endY float64) Action {
	dx, dy := endX-startX, endY-startY
	if abs(dx) < SwipeThreshold || abs(dx) <= abs(dy) {
		return None
	}
	if dx < 0 {
		return Next
	}
	return Prev
}

func abs(f float64) float64 {
	if f < 0 {
		return -f
	}
	return f
}
