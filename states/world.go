package states

import (
	"errors"
	"fmt"
	"io/fs"

	"github.com/automoto/tilewalk/assets"
	"github.com/automoto/tilewalk/components"
	"github.com/automoto/tilewalk/config"
	"github.com/automoto/tilewalk/level"
	"github.com/automoto/tilewalk/logging"
	"github.com/automoto/tilewalk/systems"
	"github.com/automoto/tilewalk/systems/factory"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
	"go.uber.org/zap"
)

const (
	playerSheetKey = "player"
	landmarkType   = "landmark"
)

// World builds the playable level from a cached tilemap and runs it.
type World struct {
	Base
	machine *Machine
	ecs     *ecs.ECS
	level   *level.Map
}

func NewWorld(m *Machine) *World {
	return &World{machine: m}
}

func (*World) ID() config.StateID {
	return config.StateWorld
}

// ECS returns the running world, or nil before Create.
func (w *World) ECS() *ecs.ECS {
	return w.ecs
}

// Level returns the loaded map, or nil before Create.
func (w *World) Level() *level.Map {
	return w.level
}

func (w *World) Create() error {
	p := w.Params()
	cache := w.machine.Cache()

	tm, ok := cache.Tilemap(p.Slug)
	if !ok {
		return &level.MapLoadError{Kind: level.AssetMissing, Slug: p.Slug, Err: level.ErrAssetMissing}
	}

	selection, err := level.ParseSpawnSelection(config.Map.SpawnSelection)
	if err != nil {
		return err
	}

	groups := level.NewGroups()
	m, err := level.LoadWorld(tm, groups, &level.LoadOptions{
		Slug:      p.Slug,
		Texture:   p.Texture,
		Selection: selection,
	})
	if err != nil {
		return err
	}

	if !cache.CheckImageKey(m.Texture) {
		return &level.MapLoadError{Kind: level.AssetMissing, Slug: p.Slug, Err: missingImage(m.Texture)}
	}
	rendered, err := m.RenderGroup(w.machine.Loader().FS(), groups.LevelBottom)
	if errors.Is(err, fs.ErrNotExist) {
		return &level.MapLoadError{Kind: level.AssetMissing, Slug: p.Slug, Err: err}
	}
	if err != nil {
		return fmt.Errorf("render %s: %w", p.Slug, err)
	}
	sheet, ok := cache.Image(playerSheetKey)
	if !ok {
		return &level.MapLoadError{Kind: level.AssetMissing, Slug: p.Slug, Err: missingImage(playerSheetKey)}
	}

	e := ecs.NewECS(donburi.NewWorld())

	e.AddSystem(systems.UpdateDebugToggle)
	e.AddSystem(systems.UpdatePlayer)
	e.AddSystem(systems.UpdateObjects)
	e.AddSystem(systems.UpdateLandmarks)
	e.AddSystem(systems.UpdateCamera)
	e.AddSystem(systems.UpdateFade)

	e.AddRenderer(config.Default, systems.DrawLevel)
	e.AddRenderer(config.Default, systems.DrawAnimated)
	e.AddRenderer(config.Default, systems.DrawDebug)
	e.AddRenderer(config.Default, systems.DrawFade)

	factory.CreateLevel(e, m, groups, rendered)
	factory.CreateSpace(e, m)
	walls := factory.CreateWalls(e, m)

	landmarks := level.FindObjectsByType(landmarkType, m.Objects)
	for _, o := range landmarks {
		factory.CreateLandmark(e, o, float64(m.TileWidth))
	}

	player := factory.CreatePlayer(e, m.Spawn, sheet)
	factory.CreateCamera(e, player.Entity())
	systems.ResetCamera(e)
	factory.CreateFade(e, float32(config.Loading.FadeInFrames)/float32(config.C.TPS))

	w.ecs = e
	w.level = m

	logging.Named("states").Info("world created",
		zap.String("slug", m.Slug),
		zap.Int("walls", walls),
		zap.Int("landmarks", len(landmarks)),
		zap.Int("spawn_x", m.Spawn.X),
		zap.Int("spawn_y", m.Spawn.Y))
	return nil
}

func (w *World) Update() error {
	w.ecs.Update()
	return nil
}

func (w *World) Draw(screen *ebiten.Image) {
	w.ecs.Draw(screen)
}

// Player returns the player entry of the running world.
func (w *World) Player() (*donburi.Entry, bool) {
	if w.ecs == nil {
		return nil, false
	}
	return components.Player.First(w.ecs.World)
}

func missingImage(key string) error {
	return fmt.Errorf("%w: image %q not in cache", assets.ErrAssetMissing, key)
}
