package systems

import (
	"image/color"

	"github.com/automoto/firstperson/components"
	"github.com/automoto/firstperson/config"
	"github.com/automoto/firstperson/tags"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// DrawLevel renders the level bounds and every obstacle from above. Overhangs
// a player can crouch under are drawn apart from floor-standing blocks.
func DrawLevel(e *ecs.ECS, screen *ebiten.Image) {
	screen.Fill(config.UI.BackgroundColor)

	viewEntry, ok := components.View.First(e.World)
	if !ok {
		return // No view yet
	}
	view := components.View.Get(viewEntry)
	width, height := screen.Bounds().Dx(), screen.Bounds().Dy()
	ppm := float32(config.Camera.PixelsPerMetre)
	scale := config.Physics.SpaceScale

	if levelEntry, ok := components.Level.First(e.World); ok {
		if level := components.Level.Get(levelEntry).Level; level != nil {
			x, y := worldToScreen(view, width, height, 0, level.Depth)
			vector.StrokeRect(screen, x, y, float32(level.Width)*ppm, float32(level.Depth)*ppm, 1, config.Grey, false)
		}
	}

	tags.Obstacle.Each(e.World, func(entry *donburi.Entry) {
		o := components.Obstacle.Get(entry)

		var c color.RGBA
		switch {
		case entry.HasComponent(components.MovingObstacle):
			c = config.UI.ObstacleMoving
		case o.Bottom > 0:
			c = config.UI.ObstacleHigh
		default:
			c = config.UI.ObstacleLow
		}

		x, y := worldToScreen(view, width, height, o.X/scale, (o.Y+o.H)/scale)
		vector.FillRect(screen, x, y, float32(o.W/scale)*ppm, float32(o.H/scale)*ppm, c, false)
	})
}
