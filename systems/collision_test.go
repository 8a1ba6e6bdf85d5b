package systems

import (
	"testing"

	"github.com/automoto/gigaguy/components"
	"github.com/automoto/gigaguy/shared/gamemath"
	"github.com/automoto/gigaguy/shared/tile"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/yohamta/donburi/features/math"
)

func body(x, y, w, h, vx, vy float64) *components.BodyData {
	return &components.BodyData{
		Position:    math.Vec2{X: x, Y: y},
		Velocity:    math.Vec2{X: vx, Y: vy},
		Width:       w,
		Height:      h,
		StandHeight: h,
		DuckHeight:  h / 2,
	}
}

func TestResolve(t *testing.T) {
	tests := []struct {
		name    string
		tiles   []tile.Placement
		body    *components.BodyData
		wantPos math.Vec2
		wantVel math.Vec2
		want    components.ContactState
	}{
		{
			name:    "falling onto a single tile",
			tiles:   []tile.Placement{tile.Solid(0, 0)},
			body:    body(0, -33, 32, 64, 0, 5),
			wantPos: math.Vec2{X: 0, Y: -64},
			want:    components.ContactState{OnGround: true},
		},
		{
			name:    "landing across a tile seam keeps horizontal speed",
			tiles:   []tile.Placement{tile.Solid(0, 2), tile.Solid(1, 2)},
			body:    body(16, 5, 32, 64, 3, 6),
			wantPos: math.Vec2{X: 16, Y: 0},
			wantVel: math.Vec2{X: 3},
			want:    components.ContactState{OnGround: true},
		},
		{
			name:    "pushed out of a wall on the right",
			tiles:   []tile.Placement{tile.Solid(2, 0), tile.Solid(2, 1)},
			body:    body(33, 0, 32, 64, 4, 0),
			wantPos: math.Vec2{X: 32, Y: 0},
			want:    components.ContactState{OnWall: true, OnRightWall: true},
		},
		{
			name:    "pushed out of a wall on the left",
			tiles:   []tile.Placement{tile.Solid(0, 0), tile.Solid(0, 1)},
			body:    body(30, 0, 32, 64, -2, 0),
			wantPos: math.Vec2{X: 32, Y: 0},
			want:    components.ContactState{OnWall: true},
		},
		{
			name:    "touching a wall is not contact",
			tiles:   []tile.Placement{tile.Solid(2, 0), tile.Solid(2, 1)},
			body:    body(32, 0, 32, 64, 0, 0),
			wantPos: math.Vec2{X: 32, Y: 0},
		},
		{
			name:    "head bump",
			tiles:   []tile.Placement{tile.Solid(0, 0)},
			body:    body(0, 28, 32, 64, 0, -6),
			wantPos: math.Vec2{X: 0, Y: 32},
			want:    components.ContactState{HitCeiling: true},
		},
		{
			name:    "sunk into a 45 degree slope",
			tiles:   []tile.Placement{tile.Slope(0, 1, gamemath.Slope45R)},
			body:    body(0, -12, 32, 64, 0, 2),
			wantPos: math.Vec2{X: 0, Y: -16},
			want:    components.ContactState{OnGround: true, OnSlope: true, SlopeType: gamemath.Slope45R},
		},
		{
			name:    "rising through a slope from below",
			tiles:   []tile.Placement{tile.Slope(0, 1, gamemath.Slope45R)},
			body:    body(0, -12, 32, 64, 0, -2),
			wantPos: math.Vec2{X: 0, Y: -12},
			wantVel: math.Vec2{Y: -2},
		},
		{
			name:    "slope over fill does not snap to the fill",
			tiles:   []tile.Placement{tile.Slope(1, 1, gamemath.Slope45L), tile.Solid(1, 2)},
			body:    body(32, 4, 32, 64, 0, 1),
			wantPos: math.Vec2{X: 32, Y: 48 - 64},
			want:    components.ContactState{OnGround: true, OnSlope: true, SlopeType: gamemath.Slope45L},
		},
		{
			name:    "highest of two slope surfaces wins",
			tiles:   []tile.Placement{tile.Slope(0, 2, gamemath.Slope22R1), tile.Slope(0, 1, gamemath.Slope22R2)},
			body:    body(0, 2, 32, 64, 0, 3),
			wantPos: math.Vec2{X: 0, Y: 40 - 64},
			want:    components.ContactState{OnGround: true, OnSlope: true, SlopeType: gamemath.Slope22R2},
		},
		{
			name:    "empty space",
			tiles:   nil,
			body:    body(10, 10, 32, 64, 1, 1),
			wantPos: math.Vec2{X: 10, Y: 10},
			wantVel: math.Vec2{X: 1, Y: 1},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			catalog, err := tile.NewCatalog(testGrid, 4, 4, tt.tiles)
			require.NoError(t, err)

			got := Resolve(tt.body, catalog)
			assert.Equal(t, tt.want, got)
			assert.InDelta(t, tt.wantPos.X, tt.body.Position.X, 1e-9)
			assert.InDelta(t, tt.wantPos.Y, tt.body.Position.Y, 1e-9)
			assert.InDelta(t, tt.wantVel.X, tt.body.Velocity.X, 1e-9)
			assert.InDelta(t, tt.wantVel.Y, tt.body.Velocity.Y, 1e-9)
		})
	}
}

func TestResolvedBodyNeverOverlapsSolids(t *testing.T) {
	catalog, err := tile.NewCatalog(testGrid, 6, 6, []tile.Placement{
		tile.Solid(0, 5), tile.Solid(1, 5), tile.Solid(2, 5), tile.Solid(3, 5), tile.Solid(4, 5), tile.Solid(5, 5),
		tile.Solid(5, 4), tile.Solid(5, 3),
		tile.Solid(0, 1),
	})
	require.NoError(t, err)

	for x := 0.0; x <= 130; x += 7.5 {
		for y := 32.0; y <= 100; y += 5.5 {
			b := body(x, y, 32, 64, 3, 4)
			Resolve(b, catalog)
			for _, tl := range catalog.Tiles() {
				assert.False(t, tl.Rect.Intersects(b.Rect()), "box %v still overlaps %v", b.Rect(), tl.Rect)
			}
		}
	}
}

func TestProbePoints(t *testing.T) {
	r := gamemath.Rect{X: 10, Y: 20, W: 32, H: 64}

	left := probePoints(r, testGrid, gamemath.AxisX, -1, false)
	require.Len(t, left, 3)
	for _, p := range left {
		assert.Equal(t, 10.0, p.X)
	}
	assert.Equal(t, 21.0, left[0].Y)
	assert.Equal(t, 83.0, left[2].Y)

	bottom := probePoints(r, testGrid, gamemath.AxisY, 1, false)
	require.Len(t, bottom, 2)
	assert.Equal(t, math.Vec2{X: 11, Y: 84}, bottom[0])
	assert.Equal(t, math.Vec2{X: 41, Y: 84}, bottom[1])

	center := probePoints(r, testGrid, gamemath.AxisY, 1, true)
	require.Len(t, center, slopeProbeCount)
	assert.Equal(t, math.Vec2{X: 26, Y: 84}, center[0])
	assert.InDelta(t, 84-31.0, center[len(center)-1].Y, 1e-9)

	ducked := probePoints(gamemath.Rect{W: 32, H: 32}, testGrid, gamemath.AxisX, 1, false)
	assert.Len(t, ducked, 2)
}
