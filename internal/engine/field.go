package engine

// Field is the rectangular play area [0,W] x [0,H] in field units.
// Margin extends it on every side for entities entering or leaving the
// screen; an item that moves past the margin is retired.
type Field struct {
	W, H   float64
	Margin float64
}

// Clamp pulls an entity back inside the field.
func (f Field) Clamp(e *Entity) {
	e.Pos.X = clampF(e.Pos.X, 0, f.W-e.W)
	e.Pos.Y = clampF(e.Pos.Y, 0, f.H-e.H)
}

// Inside reports whether the entity lies completely inside the field.
func (f Field) Inside(e *Entity) bool {
	return e.Pos.X >= 0 && e.Pos.Y >= 0 && e.Pos.X+e.W <= f.W && e.Pos.Y+e.H <= f.H
}

// InMargin reports whether any part of the entity is still within the field
// grown by Margin.
func (f Field) InMargin(e *Entity) bool {
	m := f.Margin
	return e.Pos.X+e.W > -m && e.Pos.X < f.W+m && e.Pos.Y+e.H > -m && e.Pos.Y < f.H+m
}

func clampF(v, lo, hi float64) float64 {
	if hi < lo {
		hi = lo
	}
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
