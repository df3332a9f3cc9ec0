package states

import (
	"github.com/automoto/tilewalk/assets"
	"github.com/automoto/tilewalk/config"
)

// Load shows the progress bar while the shared game assets load, then asks
// LoadWorld for the start map.
type Load struct {
	Base
	machine *Machine
}

func NewLoad(m *Machine) *Load {
	return &Load{machine: m}
}

func (*Load) ID() config.StateID {
	return config.StateLoad
}

func (*Load) ShowsProgress() bool {
	return true
}

func (l *Load) Preload(loader *assets.Loader) {
	preloadGroup(loader, l.machine.Manifest(), l.ID())
}

func (l *Load) Create() error {
	return l.machine.Start(config.StateLoadWorld, Params{
		Type: "world",
		Path: config.Game.StartMap,
	})
}
