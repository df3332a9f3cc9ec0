package level

import (
	"strings"

	"github.com/lafriks/go-tiled"
)

// Object is a placed object from a map's object layer.
type Object struct {
	ID     int
	Name   string
	Type   string
	X      float64
	Y      float64
	Width  float64
	Height float64
}

func objectFromTiled(o *tiled.Object) Object {
	typ := o.Class
	if typ == "" {
		typ = o.Type //nolint:staticcheck // TMX uses type= attribute
	}
	return Object{
		ID:     int(o.ID),
		Name:   o.Name,
		Type:   typ,
		X:      o.X,
		Y:      o.Y,
		Width:  o.Width,
		Height: o.Height,
	}
}

// FindObjectsByType returns the objects whose type matches typ, ignoring
// case, in their original order. An empty typ matches every object.
func FindObjectsByType(typ string, objects []Object) []Object {
	if typ == "" {
		out := make([]Object, len(objects))
		copy(out, objects)
		return out
	}
	var out []Object
	for _, o := range objects {
		if strings.EqualFold(o.Type, typ) {
			out = append(out, o)
		}
	}
	return out
}
