package level

// Group is an ordered set of tile layers drawn together. Layers added later
// are drawn on top.
type Group struct {
	Name   string
	Layers []*TileLayer
}

func (g *Group) Add(l *TileLayer) {
	g.Layers = append(g.Layers, l)
}

// Groups holds the render groups a level attaches its layers to.
type Groups struct {
	LevelBottom *Group
}

func NewGroups() *Groups {
	return &Groups{LevelBottom: &Group{Name: "level-bottom"}}
}
