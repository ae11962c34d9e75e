package systems

import (
	"github.com/automoto/firstperson/components"
	"github.com/automoto/firstperson/controller"
	"github.com/automoto/firstperson/logger"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// UpdatePlayers delivers the per-frame update to every player controller.
func UpdatePlayers(e *ecs.ECS) {
	dt := GetOrCreateClock(e).Delta

	components.Player.Each(e.World, func(entry *donburi.Entry) {
		pd := components.Player.Get(entry)
		if pd.Controller == nil {
			return
		}
		pd.Controller.ProcessEvent(controller.UpdateEvent(dt))
		pd.Blocked = pd.Controller.StanceBlocked()
	})
}

// NewPlayerController attaches a controller with cfg to a player entry. The
// entry should already be physicalized so the first reset sizes its body.
func NewPlayerController(entry *donburi.Entry, space *resolv.Space, cfg controller.Config) (*controller.Player, error) {
	character := NewCharacterAdapter(entry)
	p, err := controller.New(cfg, controller.Capabilities{
		Entity:    character,
		Camera:    NewCameraAdapter(entry),
		Input:     NewActionMap(entry),
		Character: character,
		World:     NewWorldQuery(space),
	},
		controller.WithLogger(logger.L()),
		controller.WithStanceObserver(NewStanceFeedback(entry)),
	)
	if err != nil {
		return nil, err
	}
	components.Player.Get(entry).Controller = p
	return p, nil
}

// stanceFeedback reports stance changes to the HUD.
type stanceFeedback struct {
	entry *donburi.Entry
}

// NewStanceFeedback returns the stance observer for a player entry.
func NewStanceFeedback(entry *donburi.Entry) controller.StanceObserver {
	return stanceFeedback{entry: entry}
}

func (f stanceFeedback) StanceChanged(from, to controller.Stance) {
	frame := uint64(0)
	if clock, ok := components.Clock.First(f.entry.World); ok {
		frame = components.Clock.Get(clock).Frame
	}
	components.Player.Get(f.entry).LastStanceChange = frame
}

func (f stanceFeedback) StanceBlocked(desired controller.Stance) {
	logger.L().Debug("Not enough room", "entity", f.entry.Entity(), "desired", desired)
	if settings, ok := components.Settings.First(f.entry.World); ok {
		setStatus(f.entry.World, components.Settings.Get(settings), "Not enough room to stand")
	}
}
