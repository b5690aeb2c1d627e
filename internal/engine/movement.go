package engine

// Dir is a grid heading.
type Dir uint8

const (
	DirNone Dir = iota
	DirUp
	DirDown
	DirLeft
	DirRight
)

func (d Dir) String() string {
	switch d {
	case DirUp:
		return "up"
	case DirDown:
		return "down"
	case DirLeft:
		return "left"
	case DirRight:
		return "right"
	default:
		return "none"
	}
}

// Delta returns the grid step for the heading. Grid y grows downward.
func (d Dir) Delta() (dx, dy int) {
	switch d {
	case DirUp:
		return 0, -1
	case DirDown:
		return 0, 1
	case DirLeft:
		return -1, 0
	case DirRight:
		return 1, 0
	default:
		return 0, 0
	}
}

// Opposite returns the reverse heading.
func (d Dir) Opposite() Dir {
	switch d {
	case DirUp:
		return DirDown
	case DirDown:
		return DirUp
	case DirLeft:
		return DirRight
	case DirRight:
		return DirLeft
	default:
		return DirNone
	}
}

// Intent is what the input layer wants the player to do on the next tick.
// Dir persists until replaced; Tap is consumed by the tick that reads it.
type Intent struct {
	Dir Dir
	Tap bool
}

// PlayerMotion advances the player by one tick. The session clamps the
// player to the field afterwards.
type PlayerMotion interface {
	Move(w *World, p *Entity)
}

// MotionFunc adapts a function to PlayerMotion.
type MotionFunc func(w *World, p *Entity)

func (f MotionFunc) Move(w *World, p *Entity) { f(w, p) }

// groundSlack is how close to the ground the player must be to jump.
const groundSlack = 1.0

// GravityMotion integrates vertical velocity for jump-and-run games.
// Y is the height above the ground and grows upward.
type GravityMotion struct {
	Gravity     float64
	JumpImpulse float64
}

func (g GravityMotion) Move(w *World, p *Entity) {
	grounded := p.Pos.Y <= groundSlack && p.Vel.Y <= 0
	if w.Intent().Tap && grounded {
		p.Vel.Y = g.JumpImpulse
	}
	p.Vel.Y -= g.Gravity
	p.Pos.Y += p.Vel.Y
	if p.Pos.Y <= 0 {
		p.Pos.Y = 0
		p.Vel.Y = 0
	}
}

// GridMotion moves the player one cell in the intended direction every
// Every ticks. Blocked moves keep the position and the heading.
type GridMotion struct {
	// Passable reports whether a cell may be entered. Nil means any cell
	// inside the field.
	Passable func(x, y int) bool
	// WrapW wraps the x axis at this width (tunnels). Zero disables wrapping.
	WrapW int
	Every uint64
}

func (g GridMotion) Move(w *World, p *Entity) {
	if g.Every > 1 && w.Tick()%g.Every != 0 {
		return
	}
	nx, ny, ok := g.Try(int(p.Pos.X), int(p.Pos.Y), w.Intent().Dir)
	if !ok {
		return
	}
	p.Pos.X, p.Pos.Y = float64(nx), float64(ny)
}

// Try returns the cell one step from (x, y) and whether it can be entered.
func (g GridMotion) Try(x, y int, d Dir) (int, int, bool) {
	if d == DirNone {
		return x, y, false
	}
	dx, dy := d.Delta()
	nx, ny := x+dx, y+dy
	if g.WrapW > 0 {
		nx = (nx%g.WrapW + g.WrapW) % g.WrapW
	}
	if g.Passable != nil && !g.Passable(nx, ny) {
		return x, y, false
	}
	return nx, ny, true
}
