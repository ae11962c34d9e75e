package systems

import (
	"fmt"
	"image/color"

	"github.com/automoto/firstperson/components"
	"github.com/automoto/firstperson/config"
	"github.com/automoto/firstperson/fonts"
	"github.com/automoto/firstperson/tags"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text" //nolint:staticcheck // TODO: migrate to text/v2
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/yohamta/donburi/ecs"
)

// DrawDebug outlines every object in the collision space and prints the
// first player's position and vertical state.
func DrawDebug(e *ecs.ECS, screen *ebiten.Image) {
	settings := GetOrCreateSettings(e)
	if !settings.Debug {
		return
	}

	viewEntry, ok := components.View.First(e.World)
	if !ok {
		return // No view yet
	}
	view := components.View.Get(viewEntry)
	width, height := screen.Bounds().Dx(), screen.Bounds().Dy()
	ppm := float32(config.Camera.PixelsPerMetre)
	scale := config.Physics.SpaceScale

	spaceEntry, ok := components.Space.First(e.World)
	if ok {
		space := components.Space.Get(spaceEntry)

		for _, obj := range space.Objects() {
			// Determine color based on tags
			c := color.RGBA{0, 255, 255, 255} // Cyan default
			if obj.HasTags(tags.ResolvSolid) {
				c = color.RGBA{200, 200, 200, 255}
			} else if obj.HasTags(tags.ResolvCharacter) {
				c = color.RGBA{0, 0, 255, 255}
			}

			x, y := worldToScreen(view, width, height, obj.X/scale, (obj.Y+obj.H)/scale)
			w := float32(obj.W/scale) * ppm
			h := float32(obj.H/scale) * ppm
			vector.StrokeRect(screen, x, y, w, h, 1, c, false)
		}
	}

	if !fonts.Loaded(fonts.HUDSmall) {
		return
	}
	entry, ok := tags.Player.First(e.World)
	if !ok {
		return
	}
	pos := components.Transform.Get(entry).Position
	c := components.Character.Get(entry)
	msg := fmt.Sprintf("pos %.2f %.2f %.2f  collider %.3f  vz %.2f  ground %v  frame %d",
		pos[0], pos[1], pos[2], ColliderCenter(entry), c.VerticalSpeed, c.OnGround, GetOrCreateClock(e).Frame)
	text.Draw(screen, msg, fonts.HUDSmall.Get(), int(config.UI.HUDMargin), height-int(config.UI.HUDMargin), config.White)
}
