package factory

import (
	"github.com/automoto/firstperson/archetypes"
	"github.com/automoto/firstperson/components"
	"github.com/go-gl/mathgl/mgl64"
	"github.com/yohamta/donburi/ecs"
)

func CreateView(ecs *ecs.ECS, center mgl64.Vec2) {
	view := archetypes.View.Spawn(ecs)
	components.View.Set(view, &components.ViewData{Center: center})
}
