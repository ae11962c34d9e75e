package components

import (
	"github.com/automoto/firstperson/controller"
	"github.com/go-gl/mathgl/mgl64"
	"github.com/yohamta/donburi"
)

// CameraData is the first-person camera attached to a player.
type CameraData struct {
	Local controller.Transform
}

var Camera = donburi.NewComponentType[CameraData]()

// ViewData is the top-down view centre in world metres.
type ViewData struct {
	Center mgl64.Vec2
}

var View = donburi.NewComponentType[ViewData]()
