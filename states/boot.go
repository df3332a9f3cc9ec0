package states

import (
	"github.com/automoto/tilewalk/assets"
	"github.com/automoto/tilewalk/config"
)

// Boot loads what the loading screen itself needs, then hands over to Load.
type Boot struct {
	Base
	machine *Machine
}

func NewBoot(m *Machine) *Boot {
	return &Boot{machine: m}
}

func (*Boot) ID() config.StateID {
	return config.StateBoot
}

func (b *Boot) Preload(l *assets.Loader) {
	preloadGroup(l, b.machine.Manifest(), b.ID())
}

func (b *Boot) Create() error {
	return b.machine.Start(config.StateLoad, Params{})
}

// preloadGroup queues the manifest group registered for a state.
func preloadGroup(l *assets.Loader, manifest assets.Manifest, id config.StateID) {
	for _, r := range manifest.Requests(id.String()) {
		l.Enqueue(r)
	}
}
