package systems

import (
	"testing"

	"github.com/automoto/firstperson/archetypes"
	"github.com/automoto/firstperson/components"
	cfg "github.com/automoto/firstperson/config"
	"github.com/automoto/firstperson/controller"
	"github.com/automoto/firstperson/tags"
	"github.com/go-gl/mathgl/mgl64"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

const testDelta = 1.0 / 60

type padButton struct {
	id     ebiten.GamepadID
	button ebiten.StandardGamepadButton
}

type padAxis struct {
	id   ebiten.GamepadID
	axis ebiten.StandardGamepadAxis
}

// fakePoller is a scripted InputPoller.
type fakePoller struct {
	keys    map[ebiten.Key]bool
	dx, dy  float64
	pads    []ebiten.GamepadID
	names   map[ebiten.GamepadID]string
	buttons map[padButton]bool
	axes    map[padAxis]float64
	polls   int
}

func newFakePoller() *fakePoller {
	return &fakePoller{
		keys:    make(map[ebiten.Key]bool),
		names:   make(map[ebiten.GamepadID]string),
		buttons: make(map[padButton]bool),
		axes:    make(map[padAxis]float64),
	}
}

func (p *fakePoller) Poll() { p.polls++ }

func (p *fakePoller) KeyPressed(key ebiten.Key) bool { return p.keys[key] }

func (p *fakePoller) CursorDelta() (float64, float64) { return p.dx, p.dy }

func (p *fakePoller) Gamepads() []ebiten.GamepadID { return p.pads }

func (p *fakePoller) GamepadName(id ebiten.GamepadID) string { return p.names[id] }

func (p *fakePoller) GamepadButtonPressed(id ebiten.GamepadID, b ebiten.StandardGamepadButton) bool {
	return p.buttons[padButton{id, b}]
}

func (p *fakePoller) GamepadAxis(id ebiten.GamepadID, a ebiten.StandardGamepadAxis) float64 {
	return p.axes[padAxis{id, a}]
}

func (p *fakePoller) addPad(id ebiten.GamepadID, name string) {
	p.pads = append(p.pads, id)
	p.names[id] = name
}

// usePoller installs p as the global poller for the test.
func usePoller(t *testing.T, p InputPoller) {
	t.Helper()
	prev := Poller
	Poller = p
	controllerTypeCache = make(map[ebiten.GamepadID]controller.Device)
	t.Cleanup(func() {
		Poller = prev
		controllerTypeCache = make(map[ebiten.GamepadID]controller.Device)
	})
}

// newTestECS returns a world with lifecycle routing, a 40x30 m space and a
// clock ticking at 60 Hz. Config globals are restored after the test.
func newTestECS(t *testing.T) (*ecs.ECS, *resolv.Space) {
	t.Helper()
	cfg.Reset()
	t.Cleanup(cfg.Reset)

	world := donburi.NewWorld()
	SubscribeLifecycle(world)
	e := ecs.NewECS(world)

	scale := cfg.Physics.SpaceScale
	spaceEntry := archetypes.Space.Spawn(e)
	space := resolv.NewSpace(int(40*scale), int(30*scale), cfg.Physics.CellSize, cfg.Physics.CellSize)
	components.Space.Set(spaceEntry, space)

	GetOrCreateClock(e).Delta = testDelta
	return e, space
}

func addObstacle(e *ecs.ECS, space *resolv.Space, x, y, w, h, bottom, top float64) *donburi.Entry {
	entry := archetypes.Obstacle.Spawn(e)
	scale := cfg.Physics.SpaceScale
	obj := resolv.NewObject(x*scale, y*scale, w*scale, h*scale, tags.ResolvSolid)
	obj.Data = entry
	space.Add(obj)
	components.Obstacle.SetValue(entry, components.ObstacleData{Object: obj, Bottom: bottom, Top: top})
	return entry
}

// addCharacter spawns a physicalized player entry at pos without a controller.
func addCharacter(e *ecs.ECS, space *resolv.Space, pos mgl64.Vec3) *donburi.Entry {
	entry := archetypes.Player.Spawn(e)
	components.Transform.SetValue(entry, components.TransformData{Position: pos, Rotation: mgl64.QuatIdent()})
	components.Character.SetValue(entry, components.CharacterData{
		Params:   CharacterParams(),
		OnGround: pos[2] == 0,
		Local:    controller.IdentityTransform(),
	})
	components.Camera.SetValue(entry, components.CameraData{Local: controller.IdentityTransform()})
	NewCharacterAdapter(entry).Physicalize()

	c := components.Character.Get(entry)
	c.Footprint = resolv.NewObject(0, 0, 1, 1, tags.ResolvCharacter)
	c.Footprint.Data = entry
	space.Add(c.Footprint)
	syncFootprint(c, pos)
	return entry
}

// addPlayer spawns a character with a controller on the current player config.
func addPlayer(t *testing.T, e *ecs.ECS, space *resolv.Space, pos mgl64.Vec3) (*donburi.Entry, *controller.Player) {
	t.Helper()
	entry := addCharacter(e, space, pos)
	p, err := NewPlayerController(entry, space, cfg.Player)
	if err != nil {
		t.Fatalf("NewPlayerController: %v", err)
	}
	syncFootprint(components.Character.Get(entry), pos)
	return entry, p
}

// step runs the frame systems a scene runs, minus rendering.
func step(e *ecs.ECS, frames int) {
	for i := 0; i < frames; i++ {
		UpdateInput(e)
		UpdateSettings(e)
		UpdateLifecycle(e)
		UpdatePlayers(e)
		UpdateObstacles(e)
		UpdateCharacters(e)
		GetOrCreateClock(e).Frame++
	}
}

func approx(a, b float64) bool {
	const eps = 1e-6
	d := a - b
	return d < eps && d > -eps
}

func quatNear(a, b mgl64.Quat, eps float64) bool {
	d := a.W - b.W
	if d > eps || d < -eps {
		return false
	}
	for i := range a.V {
		d = a.V[i] - b.V[i]
		if d > eps || d < -eps {
			return false
		}
	}
	return true
}
