package systems

import (
	"math"

	"github.com/automoto/firstperson/components"
	"github.com/automoto/firstperson/config"
	"github.com/automoto/firstperson/controller"
	"github.com/automoto/firstperson/shared/gamemath"
	"github.com/automoto/firstperson/tags"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

const facingLength = 1.5 // metres

// DrawPlayers renders each player's collider footprint and facing.
// Crouching players are drawn hollow.
func DrawPlayers(e *ecs.ECS, screen *ebiten.Image) {
	viewEntry, ok := components.View.First(e.World)
	if !ok {
		return
	}
	view := components.View.Get(viewEntry)
	width, height := screen.Bounds().Dx(), screen.Bounds().Dy()
	ppm := float32(config.Camera.PixelsPerMetre)

	tags.Player.Each(e.World, func(entry *donburi.Entry) {
		t := components.Transform.Get(entry)
		c := components.Character.Get(entry)
		pd := components.Player.Get(entry)

		radius := c.Params.Radius * 0.5
		if c.Body != nil {
			radius = c.Body.Dims.SizeCollider[0]
		}

		x, y := worldToScreen(view, width, height, t.Position[0], t.Position[1])
		r := float32(radius) * ppm
		if pd.Controller != nil && pd.Controller.State().CurrentStance == controller.Crouching {
			vector.StrokeCircle(screen, x, y, r, 2, config.UI.PlayerColor, true)
		} else {
			vector.FillCircle(screen, x, y, r, config.UI.PlayerColor, true)
		}

		yaw := gamemath.YawOf(t.Rotation)
		fx := t.Position[0] - math.Sin(yaw)*facingLength
		fy := t.Position[1] + math.Cos(yaw)*facingLength
		tx, ty := worldToScreen(view, width, height, fx, fy)
		vector.StrokeLine(screen, x, y, tx, ty, 2, config.UI.FacingColor, true)
	})
}
