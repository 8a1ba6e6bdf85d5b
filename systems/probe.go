package systems

import (
	"math"

	"github.com/automoto/gigaguy/shared/gamemath"
	dmath "github.com/yohamta/donburi/features/math"
)

const (
	// probeInset keeps edge probes off the box corners so a side probe never
	// reads the floor the box rests on.
	probeInset = 1.0

	slopeProbeCount = 5
)

// probePoints returns the world points sampled against the tile catalog.
//
// Edge probes (center false) lie on the box face selected by axis and sign:
// AxisX samples the left (-1) or right (+1) face, AxisY the top (-1) or
// bottom (+1) face. They run corner to corner, inset by probeInset, and are
// spaced no wider than one cell so no tile can slip between them.
//
// Center probes (center true) run up the box's vertical center line from the
// bottom face, covering one cell of depth. They find slope surfaces the box
// has sunk into by up to a cell.
func probePoints(r gamemath.Rect, g gamemath.Grid, axis gamemath.Axis, sign float64, center bool) []dmath.Vec2 {
	if center {
		pts := make([]dmath.Vec2, slopeProbeCount)
		step := (g.CellHeight - probeInset) / float64(slopeProbeCount-1)
		for k := range pts {
			pts[k] = dmath.Vec2{X: r.CenterX(), Y: r.Bottom() - float64(k)*step}
		}
		return pts
	}

	var edge, from, to, cell float64
	if axis == gamemath.AxisX {
		edge = r.Left()
		if sign > 0 {
			edge = r.Right()
		}
		from, to, cell = r.Top()+probeInset, r.Bottom()-probeInset, g.CellHeight
	} else {
		edge = r.Top()
		if sign > 0 {
			edge = r.Bottom()
		}
		from, to, cell = r.Left()+probeInset, r.Right()-probeInset, g.CellWidth
	}

	n := int(math.Ceil((to-from+2*probeInset)/cell)) + 1
	pts := make([]dmath.Vec2, n)
	for k := range pts {
		along := from + (to-from)*float64(k)/float64(n-1)
		if axis == gamemath.AxisX {
			pts[k] = dmath.Vec2{X: edge, Y: along}
		} else {
			pts[k] = dmath.Vec2{X: along, Y: edge}
		}
	}
	return pts
}
