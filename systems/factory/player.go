package factory

import (
	"fmt"

	"github.com/automoto/firstperson/archetypes"
	"github.com/automoto/firstperson/components"
	cfg "github.com/automoto/firstperson/config"
	"github.com/automoto/firstperson/controller"
	"github.com/automoto/firstperson/shared/gamemath"
	"github.com/automoto/firstperson/shared/leveldata"
	"github.com/automoto/firstperson/systems"
	"github.com/automoto/firstperson/tags"
	"github.com/go-gl/mathgl/mgl64"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// CreatePlayer spawns a physicalized player at spawn and attaches a
// controller using the current player config.
func CreatePlayer(ecs *ecs.ECS, space *resolv.Space, spawn leveldata.Spawn) (*donburi.Entry, error) {
	player := archetypes.Player.Spawn(ecs)

	components.Transform.SetValue(player, components.TransformData{
		Position: mgl64.Vec3{spawn.X, spawn.Y, spawn.Z},
		Rotation: gamemath.RotationZ(spawn.Yaw),
	})
	components.Character.SetValue(player, components.CharacterData{
		Params:   systems.CharacterParams(),
		OnGround: spawn.Z <= 0,
		Local:    controller.IdentityTransform(),
	})
	components.Camera.SetValue(player, components.CameraData{
		Local: controller.IdentityTransform(),
	})

	character := systems.NewCharacterAdapter(player)
	character.Physicalize()

	c := components.Character.Get(player)
	scale := cfg.Physics.SpaceScale
	r := c.Body.Dims.SizeCollider[0]
	obj := resolv.NewObject((spawn.X-r)*scale, (spawn.Y-r)*scale, 2*r*scale, 2*r*scale, tags.ResolvCharacter)
	obj.Data = player
	space.Add(obj)
	c.Footprint = obj

	if _, err := systems.NewPlayerController(player, space, cfg.Player); err != nil {
		space.Remove(obj)
		ecs.World.Remove(player.Entity())
		return nil, fmt.Errorf("create player: %w", err)
	}

	return player, nil
}
