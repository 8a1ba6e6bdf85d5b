package gamemath

// Rect is an axis-aligned rectangle in world units, anchored at its top-left.
type Rect struct {
	X, Y, W, H float64
}

func (r Rect) Left() float64    { return r.X }
func (r Rect) Right() float64   { return r.X + r.W }
func (r Rect) Top() float64     { return r.Y }
func (r Rect) Bottom() float64  { return r.Y + r.H }
func (r Rect) CenterX() float64 { return r.X + r.W/2 }

// Intersects reports whether r and o overlap on open intervals.
// Rectangles that only share an edge do not intersect.
func (r Rect) Intersects(o Rect) bool {
	return r.Right() > o.Left() && r.Left() < o.Right() &&
		r.Bottom() > o.Top() && r.Top() < o.Bottom()
}
