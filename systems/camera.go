package systems

import (
	"github.com/automoto/firstperson/components"
	"github.com/automoto/firstperson/config"
	"github.com/automoto/firstperson/tags"
	"github.com/go-gl/mathgl/mgl64"
	"github.com/yohamta/donburi/ecs"
)

// UpdateView follows the first player with the top-down view.
func UpdateView(e *ecs.ECS) {
	viewEntry, ok := components.View.First(e.World)
	if !ok {
		return
	}
	view := components.View.Get(viewEntry)

	playerEntry, ok := tags.Player.First(e.World)
	if !ok {
		return
	}
	pos := components.Transform.Get(playerEntry).Position
	target := mgl64.Vec2{pos[0], pos[1]}

	// Center the view on the player, with some smoothing.
	view.Center = view.Center.Add(target.Sub(view.Center).Mul(config.Camera.FollowSmoothing))
}

// worldToScreen maps world metres to screen pixels for a view. Screen Y grows
// downward, world Y forward.
func worldToScreen(view *components.ViewData, width, height int, x, y float64) (float32, float32) {
	ppm := config.Camera.PixelsPerMetre
	sx := float64(width)/2 + (x-view.Center[0])*ppm
	sy := float64(height)/2 - (y-view.Center[1])*ppm
	return float32(sx), float32(sy)
}
