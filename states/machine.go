package states

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/automoto/tilewalk/assets"
	"github.com/automoto/tilewalk/config"
	"github.com/automoto/tilewalk/logging"
	"github.com/automoto/tilewalk/telemetry"
	"github.com/hajimehoshi/ebiten/v2"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.uber.org/zap"
)

// ErrUnknownState is returned when starting a state that was never registered.
var ErrUnknownState = errors.New("unknown state")

// Machine runs one State at a time and drives its asynchronous preload.
type Machine struct {
	states   map[config.StateID]State
	current  State
	loader   *assets.Loader
	manifest assets.Manifest
	pending  *assets.Pending
	created  bool
	started  time.Time
	bar      progressBar
	err      error

	ctx    context.Context
	cancel context.CancelFunc
	log    *zap.Logger
}

func NewMachine(loader *assets.Loader, manifest assets.Manifest) *Machine {
	ctx, cancel := context.WithCancel(context.Background())
	return &Machine{
		states:   make(map[config.StateID]State),
		loader:   loader,
		manifest: manifest,
		ctx:      ctx,
		cancel:   cancel,
		log:      logging.Named("states"),
	}
}

// NewGameMachine builds a machine with the four game states registered.
func NewGameMachine(loader *assets.Loader, manifest assets.Manifest) *Machine {
	m := NewMachine(loader, manifest)
	m.Register(NewBoot(m))
	m.Register(NewLoad(m))
	m.Register(NewLoadWorld(m))
	m.Register(NewWorld(m))
	return m
}

func (m *Machine) Register(s State) {
	m.states[s.ID()] = s
}

func (m *Machine) Loader() *assets.Loader {
	return m.loader
}

func (m *Machine) Cache() *assets.Cache {
	return m.loader.Cache()
}

func (m *Machine) Manifest() assets.Manifest {
	return m.manifest
}

// Start switches to a state: Init and Preload run now, and the preload batch
// starts in the background. Calling Start from Create takes effect in the
// same tick.
func (m *Machine) Start(id config.StateID, p Params) error {
	s, ok := m.states[id]
	if !ok {
		return fmt.Errorf("%w: %s", ErrUnknownState, id)
	}

	_, span := telemetry.Tracer("states").Start(m.ctx, "state.start")
	span.SetAttributes(attribute.String("state", id.String()), attribute.String("path", p.Path))
	defer span.End()

	m.log.Info("state start",
		zap.Stringer("state", id),
		zap.String("type", p.Type),
		zap.String("path", p.Path))

	m.current = s
	m.created = false
	m.started = time.Now()
	m.bar.Reset()

	s.Init(p)
	s.Preload(m.loader)

	pending, err := m.loader.Start(m.ctx)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return fmt.Errorf("start %s: %w", id, err)
	}
	m.pending = pending
	return nil
}

// Update polls the preload of the current state, runs its Create once the
// assets are ready and then ticks it. Any failure halts the machine.
func (m *Machine) Update() error {
	if m.err != nil {
		return m.err
	}
	if m.current == nil {
		return nil
	}

	if !m.created {
		done, err := m.pending.Poll()
		m.bar.Update(m.pending.Progress())
		if !done {
			return nil
		}
		if err != nil {
			if lf, ok := m.current.(loadFailer); ok {
				err = lf.LoadFailed(err)
			}
			return m.halt(fmt.Errorf("preload %s: %w", m.current.ID(), err))
		}
		return m.create()
	}

	if err := m.current.Update(); err != nil {
		return m.halt(fmt.Errorf("update %s: %w", m.current.ID(), err))
	}
	return nil
}

func (m *Machine) create() error {
	s := m.current
	m.created = true

	_, span := telemetry.Tracer("states").Start(m.ctx, "state.create")
	span.SetAttributes(attribute.String("state", s.ID().String()))
	defer span.End()

	m.log.Debug("state create",
		zap.Stringer("state", s.ID()),
		zap.Duration("preload", time.Since(m.started)))

	if err := s.Create(); err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return m.halt(fmt.Errorf("create %s: %w", s.ID(), err))
	}
	return nil
}

func (m *Machine) halt(err error) error {
	m.err = err
	m.log.Error("state machine halted", zap.Error(err))
	return err
}

func (m *Machine) Draw(screen *ebiten.Image) {
	screen.Fill(config.Game.BackgroundColor)
	if m.current == nil {
		return
	}
	if !m.created {
		if ps, ok := m.current.(progressShower); ok && ps.ShowsProgress() {
			m.bar.Draw(screen, m.Cache())
		}
		return
	}
	m.current.Draw(screen)
}

// Current returns the active state, or nil before Start.
func (m *Machine) Current() State {
	return m.current
}

// CurrentID returns the active state's id, or StateNone before Start.
func (m *Machine) CurrentID() config.StateID {
	if m.current == nil {
		return config.StateNone
	}
	return m.current.ID()
}

// Created reports whether the active state's Create has run.
func (m *Machine) Created() bool {
	return m.created
}

// Err returns the error that halted the machine, if any.
func (m *Machine) Err() error {
	return m.err
}

// Shutdown cancels any preload still in flight.
func (m *Machine) Shutdown() {
	m.cancel()
}
