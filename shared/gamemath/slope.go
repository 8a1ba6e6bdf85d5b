package gamemath

import "fmt"

// SlopeType identifies one of the fixed slope profiles. R slopes rise toward
// +x, L slopes rise toward -x. Multi-cell inclines number their parts from
// the low end, so part 1 is the cell nearest the floor.
type SlopeType int

const (
	Slope45R SlopeType = iota
	Slope45L
	Slope22R1
	Slope22R2
	Slope22L1
	Slope22L2
	Slope11R1
	Slope11R2
	Slope11R3
	Slope11R4
	Slope11L1
	Slope11L2
	Slope11L3
	Slope11L4
	SlopeTypeCount
)

var slopeNames = [SlopeTypeCount]string{
	Slope45R:  "45R",
	Slope45L:  "45L",
	Slope22R1: "22R1",
	Slope22R2: "22R2",
	Slope22L1: "22L1",
	Slope22L2: "22L2",
	Slope11R1: "11R1",
	Slope11R2: "11R2",
	Slope11R3: "11R3",
	Slope11R4: "11R4",
	Slope11L1: "11L1",
	Slope11L2: "11L2",
	Slope11L3: "11L3",
	Slope11L4: "11L4",
}

func (t SlopeType) String() string {
	if t < 0 || t >= SlopeTypeCount {
		return fmt.Sprintf("SlopeType(%d)", int(t))
	}
	return slopeNames[t]
}

// ParseSlopeType maps a slope name such as "45R" or "11L3" back to its type.
func ParseSlopeType(name string) (SlopeType, error) {
	for i, n := range slopeNames {
		if n == name {
			return SlopeType(i), nil
		}
	}
	return 0, fmt.Errorf("unknown slope type %q", name)
}

// Ratio is the rise over run of the incline, measured in cells.
func (t SlopeType) Ratio() float64 {
	switch {
	case t <= Slope45L:
		return 1
	case t <= Slope22L2:
		return 0.5
	default:
		return 0.25
	}
}

// Part is the 1-based position of this cell along its incline.
func (t SlopeType) Part() int {
	switch t {
	case Slope22R2, Slope22L2, Slope11R2, Slope11L2:
		return 2
	case Slope11R3, Slope11L3:
		return 3
	case Slope11R4, Slope11L4:
		return 4
	default:
		return 1
	}
}

// Rising is +1 when the surface climbs toward +x and -1 when it climbs toward -x.
func (t SlopeType) Rising() float64 {
	switch t {
	case Slope45L, Slope22L1, Slope22L2, Slope11L1, Slope11L2, Slope11L3, Slope11L4:
		return -1
	default:
		return 1
	}
}

// SlopeHeight returns how far above the cell's bottom edge the walkable
// surface sits, given the horizontal penetration from the cell's left edge.
// Steep slopes follow penetration directly, mid slopes half of it plus a
// half-cell step for the upper part, shallow slopes a quarter of it plus a
// quarter-cell step per band.
func SlopeHeight(t SlopeType, penetration float64, g Grid) float64 {
	p := ClampFloat(penetration, 0, g.CellWidth)
	fromLow := p
	if t.Rising() < 0 {
		fromLow = g.CellWidth - p
	}
	ratio := t.Ratio()
	base := float64(t.Part()-1) * ratio * g.CellHeight
	return base + ratio*fromLow*g.CellHeight/g.CellWidth
}

// SlopeSurfaceY returns the world y of the slope surface in cell at world x.
func SlopeSurfaceY(t SlopeType, cell Rect, x float64, g Grid) float64 {
	return cell.Bottom() - SlopeHeight(t, x-cell.Left(), g)
}

// SlopeRideOffset is the vertical displacement an actor riding the slope
// picks up from horizontal velocity vx in one frame. Negative is up.
func SlopeRideOffset(t SlopeType, vx float64, g Grid) float64 {
	return -t.Rising() * t.Ratio() * vx * g.CellHeight / g.CellWidth
}
