package states

import (
	"errors"

	"github.com/automoto/tilewalk/assets"
	"github.com/automoto/tilewalk/config"
	"github.com/automoto/tilewalk/level"
	"github.com/automoto/tilewalk/logging"
	"go.uber.org/zap"
)

// LoadWorld fetches the tilemap named by Params.Path unless it is already
// cached, then starts World with the same params.
type LoadWorld struct {
	Base
	machine *Machine
}

func NewLoadWorld(m *Machine) *LoadWorld {
	return &LoadWorld{machine: m}
}

func (*LoadWorld) ID() config.StateID {
	return config.StateLoadWorld
}

func (*LoadWorld) ShowsProgress() bool {
	return true
}

func (w *LoadWorld) Init(p Params) {
	p.Slug = assets.Slugify(p.Path)
	w.Base.Init(p)
}

func (w *LoadWorld) Preload(l *assets.Loader) {
	p := w.Params()
	if l.Cache().CheckTilemapKey(p.Slug) {
		if config.Debug.LogCacheHits {
			logging.Named("states").Debug("tilemap cached", zap.String("slug", p.Slug))
		}
		return
	}
	l.Tilemap(p.Slug, assets.LevelPath(config.Game.LevelsDir, p.Path, config.Game.LevelExt))
}

// LoadFailed reports a missing map file as a map load error.
func (w *LoadWorld) LoadFailed(err error) error {
	if errors.Is(err, assets.ErrAssetMissing) {
		return &level.MapLoadError{Kind: level.AssetMissing, Slug: w.Params().Slug, Err: err}
	}
	return err
}

func (w *LoadWorld) Create() error {
	return w.machine.Start(config.StateWorld, w.Params())
}
