package states

import (
	"github.com/automoto/tilewalk/assets"
	"github.com/automoto/tilewalk/config"
	"github.com/hajimehoshi/ebiten/v2"
)

// Params is the parameter bag handed from one state to the next.
type Params struct {
	Type    string
	Path    string
	Slug    string
	Texture string
}

// State is one stage of the game. The machine calls Init, then Preload, and
// runs Create on the first tick after the preloaded assets are in the cache.
// Update and Draw only run once Create has succeeded.
type State interface {
	ID() config.StateID
	Init(p Params)
	Preload(l *assets.Loader)
	Create() error
	Update() error
	Draw(screen *ebiten.Image)
}

// loadFailer is implemented by states that translate a failed preload into
// their own error.
type loadFailer interface {
	LoadFailed(err error) error
}

// progressShower is implemented by states that draw the loading bar while
// their assets load.
type progressShower interface {
	ShowsProgress() bool
}

// Base provides no-op hooks. States embed it and override what they need.
type Base struct {
	params Params
}

func (b *Base) Init(p Params) {
	b.params = p
}

func (b *Base) Params() Params {
	return b.params
}

func (*Base) Preload(*assets.Loader) {}

func (*Base) Create() error {
	return nil
}

func (*Base) Update() error {
	return nil
}

func (*Base) Draw(*ebiten.Image) {}
