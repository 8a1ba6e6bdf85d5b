package components

import (
	"github.com/automoto/gigaguy/shared/gamemath"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
)

// ObjectData mirrors an entity's box into the level's resolv space for shape
// queries. The body stays authoritative; UpdateObjects copies it over.
type ObjectData struct {
	*resolv.Object
}

// SyncTo moves and resizes the resolv object to r.
func (o ObjectData) SyncTo(r gamemath.Rect) {
	o.X, o.Y, o.W, o.H = r.X, r.Y, r.W, r.H
	o.Update()
}

var Object = donburi.NewComponentType[ObjectData]()
