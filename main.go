package main

import (
	"context"
	"errors"
	"flag"
	"log"
	"strings"

	"github.com/automoto/tilewalk/assets"
	"github.com/automoto/tilewalk/config"
	"github.com/automoto/tilewalk/fonts"
	"github.com/automoto/tilewalk/logging"
	"github.com/automoto/tilewalk/states"
	"github.com/automoto/tilewalk/systems"
	"github.com/automoto/tilewalk/telemetry"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/joho/godotenv"
	"go.uber.org/zap"
)

type Game struct {
	machine *states.Machine
}

func NewGame() (*Game, error) {
	if err := fonts.LoadDefaults(); err != nil {
		return nil, err
	}
	systems.InitControls(systems.EbitenKeys{})

	loader := assets.NewLoader(assets.FS(), assets.NewCache())
	machine := states.NewGameMachine(loader, assets.MustLoadManifest())
	if err := machine.Start(config.StateBoot, states.Params{}); err != nil {
		return nil, err
	}
	return &Game{machine: machine}, nil
}

func (g *Game) Update() error {
	return g.machine.Update()
}

func (g *Game) Draw(screen *ebiten.Image) {
	g.machine.Draw(screen)
}

func (g *Game) Layout(width, height int) (int, int) {
	return config.C.Width, config.C.Height
}

func main() {
	configPath := flag.String("config", "tilewalk.yaml", "YAML settings file")
	debug := flag.Bool("debug", false, "draw collision boxes and the debug overlay")
	logLevel := flag.String("log-level", "", "log level: debug, info, warn, error")
	startMap := flag.String("map", "", "map path to load instead of the default")
	flag.Parse()

	// Load .env file for local development
	if err := godotenv.Load(); err != nil {
		// Not fatal - env vars might be set directly
		log.Printf("Note: .env file not loaded: %v", err)
	}

	if err := config.LoadOverrides(*configPath); err != nil {
		log.Fatalf("Failed to load settings: %v", err)
	}
	if *debug {
		config.Debug.Enabled = true
	}
	if *logLevel != "" {
		config.Log.Level = strings.ToLower(*logLevel)
	}
	if *startMap != "" {
		config.Game.StartMap = *startMap
	}

	logger, err := logging.Init(logging.Config{
		Level:       config.Log.Level,
		Format:      config.Log.Format,
		Development: config.Log.Development,
	})
	if err != nil {
		log.Fatalf("Failed to initialize logger: %v", err)
	}
	defer func() { _ = logger.Sync() }()

	ctx := context.Background()
	if telemetry.Enabled() {
		shutdown, err := telemetry.Setup(ctx)
		if err != nil {
			logger.Warn("telemetry setup failed, running without tracing", zap.Error(err))
		} else {
			defer func() {
				if err := shutdown(ctx); err != nil {
					logger.Warn("telemetry shutdown", zap.Error(err))
				}
			}()
		}
	}

	game, err := NewGame()
	if err != nil {
		logger.Fatal("failed to start game", zap.Error(err))
	}
	defer game.machine.Shutdown()

	ebiten.SetWindowSize(config.C.Width*3, config.C.Height*3)
	ebiten.SetWindowTitle(config.Game.Name)
	ebiten.SetTPS(config.C.TPS)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeOnlyFullscreenEnabled)

	logger.Info("starting", zap.String("map", config.Game.StartMap), zap.Bool("debug", config.Debug.Enabled))

	if err := ebiten.RunGame(game); err != nil && !errors.Is(err, ebiten.Termination) {
		logger.Error("game stopped", zap.Error(err))
	}
}
