package controller

import (
	"math"

	"github.com/automoto/firstperson/shared/gamemath"
	"github.com/go-gl/mathgl/mgl64"
)

type fakeBinding struct {
	group, name string
	device      Device
	key         Key
	modes       ActivationMode
}

type fakeInput struct {
	handlers  map[string]ActionHandler
	bindings  []fakeBinding
	registers int
}

func newFakeInput() *fakeInput {
	return &fakeInput{handlers: make(map[string]ActionHandler)}
}

func (f *fakeInput) RegisterAction(group, name string, handler ActionHandler) {
	f.handlers[group+"/"+name] = handler
	f.registers++
}

func (f *fakeInput) BindAction(group, name string, device Device, key Key, modes ActivationMode) {
	f.bindings = append(f.bindings, fakeBinding{group, name, device, key, modes})
}

// fire invokes a registered action as the host would.
func (f *fakeInput) fire(name string, mode ActivationMode, value float64) {
	if h, ok := f.handlers[ActionGroup+"/"+name]; ok {
		h(mode, value)
	}
}

type fakeCamera struct {
	local Transform
	sets  int
}

func (f *fakeCamera) LocalTransform() Transform { return f.local }

func (f *fakeCamera) SetLocalTransform(t Transform) {
	f.local = t
	f.sets++
}

type fakeBody struct {
	dims Dimensions
	sets int
}

func (f *fakeBody) PlayerDimensions() Dimensions { return f.dims }

func (f *fakeBody) SetPlayerDimensions(d Dimensions) {
	f.dims = d
	f.sets++
}

type fakeEntity struct {
	pos  mgl64.Vec3
	rot  mgl64.Quat
	body *fakeBody
}

func (f *fakeEntity) WorldPosition() mgl64.Vec3 { return f.pos }
func (f *fakeEntity) WorldRotation() mgl64.Quat { return f.rot }
func (f *fakeEntity) SetRotation(q mgl64.Quat)  { f.rot = q }

func (f *fakeEntity) PhysicalEntity() (PhysicalEntity, bool) {
	if f.body == nil {
		return nil, false
	}
	return f.body, true
}

type fakeCharacter struct {
	params      PhysicsParams
	velocity    mgl64.Vec3
	velocitySet int
	impulses    []mgl64.Vec3
	onGround    bool
	local       Transform
	physicalize int
	// onPhysicalize mimics a host that raises PhysicalTypeChanged
	// synchronously.
	onPhysicalize func()
}

func (f *fakeCharacter) PhysicsParams() PhysicsParams     { return f.params }
func (f *fakeCharacter) SetPhysicsParams(p PhysicsParams) { f.params = p }

func (f *fakeCharacter) SetVelocity(v mgl64.Vec3) {
	f.velocity = v
	f.velocitySet++
}

func (f *fakeCharacter) AddVelocity(v mgl64.Vec3) { f.impulses = append(f.impulses, v) }
func (f *fakeCharacter) IsOnGround() bool         { return f.onGround }
func (f *fakeCharacter) SetLocalTransform(t Transform) {
	f.local = t
}

func (f *fakeCharacter) Physicalize() {
	f.physicalize++
	if f.onPhysicalize != nil {
		f.onPhysicalize()
	}
}

type fakeWorld struct {
	blocked bool
	queries []gamemath.Capsule
	skipped [][]PhysicalEntity
}

func (f *fakeWorld) CapsuleIntersects(c gamemath.Capsule, skip ...PhysicalEntity) bool {
	f.queries = append(f.queries, c)
	f.skipped = append(f.skipped, skip)
	return f.blocked
}

type recordingObserver struct {
	changes [][2]Stance
	blocked []Stance
}

func (r *recordingObserver) StanceChanged(from, to Stance) {
	r.changes = append(r.changes, [2]Stance{from, to})
}

func (r *recordingObserver) StanceBlocked(desired Stance) {
	r.blocked = append(r.blocked, desired)
}

type rig struct {
	input     *fakeInput
	camera    *fakeCamera
	body      *fakeBody
	entity    *fakeEntity
	character *fakeCharacter
	world     *fakeWorld
	observer  *recordingObserver
	player    *Player
}

func newRig(cfg Config) (*rig, error) {
	r := &rig{
		input:     newFakeInput(),
		camera:    &fakeCamera{local: IdentityTransform()},
		body:      &fakeBody{},
		character: &fakeCharacter{params: PhysicsParams{Radius: 1.0, Height: 1.8, Capsule: true}, onGround: true},
		world:     &fakeWorld{},
		observer:  &recordingObserver{},
	}
	r.entity = &fakeEntity{rot: mgl64.QuatIdent(), body: r.body}

	p, err := New(cfg, Capabilities{
		Entity:    r.entity,
		Camera:    r.camera,
		Input:     r.input,
		Character: r.character,
		World:     r.world,
	}, WithStanceObserver(r.observer))
	if err != nil {
		return nil, err
	}
	r.player = p
	return r, nil
}

func (r *rig) update(dt float64) {
	r.player.ProcessEvent(UpdateEvent(dt))
}

// vecNear compares component-wise with an absolute tolerance.
func vecNear(a, b mgl64.Vec3, eps float64) bool {
	for i := range a {
		if math.Abs(a[i]-b[i]) > eps {
			return false
		}
	}
	return true
}

func quatNear(a, b mgl64.Quat, eps float64) bool {
	return math.Abs(a.W-b.W) <= eps && vecNear(a.V, b.V, eps)
}
