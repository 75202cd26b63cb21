package input

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// Event is one input occurrence observed during a frame.
type Event interface {
	event()
}

// Scroll is a wheel or trackpad scroll in wheel units.
type Scroll struct {
	DX, DY float64
}

// CursorMoved carries the new pointer position in screen coordinates.
type CursorMoved struct {
	X, Y float64
}

// Key is a key press (Pressed) or release.
type Key struct {
	Code    ebiten.Key
	Pressed bool
}

// Click is a left mouse button press at a screen position.
type Click struct {
	X, Y float64
}

func (Scroll) event()      {}
func (CursorMoved) event() {}
func (Key) event()         {}
func (Click) event()       {}

// Source is the windowing layer the poller reads from.
type Source interface {
	Wheel() (float64, float64)
	CursorPosition() (int, int)
	AppendJustPressedKeys(keys []ebiten.Key) []ebiten.Key
	AppendJustReleasedKeys(keys []ebiten.Key) []ebiten.Key
	IsMouseButtonJustPressed(b ebiten.MouseButton) bool
}

// EbitenSource reads the live ebiten input state.
type EbitenSource struct{}

func (EbitenSource) Wheel() (float64, float64) {
	return ebiten.Wheel()
}

func (EbitenSource) CursorPosition() (int, int) {
	return ebiten.CursorPosition()
}

func (EbitenSource) AppendJustPressedKeys(keys []ebiten.Key) []ebiten.Key {
	return inpututil.AppendJustPressedKeys(keys)
}

func (EbitenSource) AppendJustReleasedKeys(keys []ebiten.Key) []ebiten.Key {
	return inpututil.AppendJustReleasedKeys(keys)
}

func (EbitenSource) IsMouseButtonJustPressed(b ebiten.MouseButton) bool {
	return inpututil.IsMouseButtonJustPressed(b)
}

// Poller turns the input state of one frame into an ordered event list:
// cursor movement first, then key changes, clicks and finally scrolling, so
// that zoom steps see the cursor position of the same frame.
type Poller struct {
	src Source

	lastX, lastY int
	seen         bool

	keys []ebiten.Key
}

func NewPoller(src Source) *Poller {
	return &Poller{src: src}
}

func (p *Poller) Poll() []Event {
	var events []Event

	mx, my := p.src.CursorPosition()
	if !p.seen || mx != p.lastX || my != p.lastY {
		p.seen = true
		p.lastX, p.lastY = mx, my
		events = append(events, CursorMoved{X: float64(mx), Y: float64(my)})
	}

	p.keys = p.src.AppendJustPressedKeys(p.keys[:0])
	for _, k := range p.keys {
		events = append(events, Key{Code: k, Pressed: true})
	}
	p.keys = p.src.AppendJustReleasedKeys(p.keys[:0])
	for _, k := range p.keys {
		events = append(events, Key{Code: k})
	}

	if p.src.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		events = append(events, Click{X: float64(mx), Y: float64(my)})
	}

	if dx, dy := p.src.Wheel(); dx != 0 || dy != 0 {
		events = append(events, Scroll{DX: dx, DY: dy})
	}
	return events
}

var keyNames = map[string]ebiten.Key{
	"c":          ebiten.KeyC,
	"escape":     ebiten.KeyEscape,
	"q":          ebiten.KeyQ,
	"s":          ebiten.KeyS,
	"f12":        ebiten.KeyF12,
	"equal":      ebiten.KeyEqual,
	"minus":      ebiten.KeyMinus,
	"kpadd":      ebiten.KeyKPAdd,
	"kpsubtract": ebiten.KeyKPSubtract,
}

// KeyByName resolves the lower-case key names used in replay scripts.
func KeyByName(name string) (ebiten.Key, bool) {
	k, ok := keyNames[name]
	return k, ok
}
