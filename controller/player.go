// Package controller implements a first-person player component: walk and
// sprint locomotion, mouse and gamepad look, standing and crouching stances
// validated against world geometry, and camera offset smoothing.
//
// A Player is driven entirely by lifecycle events delivered through
// ProcessEvent and talks to its host only through the capability interfaces
// in capabilities.go. It is not safe for concurrent use.
package controller

import (
	"log/slog"

	"github.com/automoto/firstperson/shared/gamemath"
	"github.com/go-gl/mathgl/mgl64"
)

// Player is the first-person controller component.
type Player struct {
	cfg      Config
	pending  *Config
	caps     Capabilities
	bindings []Binding
	state    RuntimeState

	// suppressNextRecenter swallows the PhysicalTypeChanged notification
	// raised by our own re-physicalization.
	suppressNextRecenter bool
	stanceBlocked        bool

	observer StanceObserver
	log      *slog.Logger
}

// Option customises a Player.
type Option func(*Player)

// WithLogger sets the logger used for stance and config diagnostics.
func WithLogger(l *slog.Logger) Option {
	return func(p *Player) {
		if l != nil {
			p.log = l
		}
	}
}

// WithStanceObserver registers an observer for accepted and blocked stance
// changes.
func WithStanceObserver(o StanceObserver) Option {
	return func(p *Player) {
		p.observer = o
	}
}

// WithBindings replaces the default binding table.
func WithBindings(bindings []Binding) Option {
	return func(p *Player) {
		p.bindings = append([]Binding(nil), bindings...)
	}
}

// New attaches a player to its capabilities and performs the initial reset.
func New(cfg Config, caps Capabilities, opts ...Option) (*Player, error) {
	if err := caps.validate(); err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	p := &Player{
		cfg:      cfg,
		caps:     caps,
		bindings: DefaultBindings,
		log:      slog.Default(),
	}
	for _, opt := range opts {
		opt(p)
	}

	p.Reset()
	return p, nil
}

// ProcessEvent handles one host lifecycle event.
func (p *Player) ProcessEvent(ev Event) {
	switch ev.Kind {
	case EventGameplayStarted:
		p.Reset()
	case EventUpdate:
		p.updateMovement()
		p.updateRotation()
		p.updateCamera(ev.FrameTime)
		p.tryUpdateStance()
	case EventPhysicalTypeChanged:
		p.reCenterCollider()
	case EventEditorPropertyChanged, EventReset:
		p.Reset()
	}
}

// Reset clears input, re-registers actions, returns to a walking, standing
// player and applies any staged config.
func (p *Player) Reset() {
	if p.pending != nil {
		p.cfg = *p.pending
		p.pending = nil
		p.log.Debug("Player config applied", "walk_speed", p.cfg.WalkSpeed, "rotation_speed", p.cfg.RotationSpeed)
	}

	p.state.MovementDelta = mgl64.Vec2{}
	p.state.LookDelta = mgl64.Vec2{}
	p.state.CurrentYaw = gamemath.HeadingOnly(p.caps.Entity.WorldRotation())
	p.state.CurrentPitch = 0

	p.initializeInput()

	p.state.PlayerState = Walking
	p.state.CurrentStance = Standing
	p.state.DesiredStance = Standing
	p.stanceBlocked = false

	p.state.CameraTargetOffset = p.cfg.CameraOffsetStanding

	// Keep the collider in step with the stance we just forced.
	if body, ok := p.caps.Entity.PhysicalEntity(); ok {
		radius := p.caps.Character.PhysicsParams().Radius * 0.5
		body.SetPlayerDimensions(p.stanceDimensions(body.PlayerDimensions(), radius, p.cfg.CapsuleHeightStanding))
	}
}

// SetConfig stages cfg; it becomes active on the next reset event.
func (p *Player) SetConfig(cfg Config) error {
	if err := cfg.Validate(); err != nil {
		return err
	}
	p.pending = &cfg
	return nil
}

// Config returns the active config.
func (p *Player) Config() Config {
	return p.cfg
}

// State returns a copy of the runtime state.
func (p *Player) State() RuntimeState {
	return p.state
}

// StanceBlocked reports whether the pending stance change was rejected by
// world geometry on its last evaluation.
func (p *Player) StanceBlocked() bool {
	return p.stanceBlocked
}
