package systems

import (
	"fmt"
	"log"
	"math"

	"github.com/automoto/maskpoly/components"
	"github.com/automoto/maskpoly/config"
	"github.com/automoto/maskpoly/shared/leveldata"
	"github.com/automoto/maskpoly/systems/factory"
	"github.com/automoto/maskpoly/tags"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/filter"
)

// CollisionLevel is the collision world of one loaded level: a static body
// per terrain polygon plus the actor, all registered in one resolv space.
type CollisionLevel struct {
	World  donburi.World
	Space  *resolv.Space
	Level  *donburi.Entry
	Actor  *donburi.Entry
	Config leveldata.LevelConfig

	// Skipped counts map polygons with too few vertices to form a body.
	Skipped int
}

// NewCollisionLevel builds the collision world for lvl.
func NewCollisionLevel(lvl *leveldata.Level, cc config.CollisionConfig) (*CollisionLevel, error) {
	if len(lvl.Config.ActorBody) <= 2 {
		return nil, fmt.Errorf("level %s: %w", lvl.Name, leveldata.ErrNoActorShape)
	}

	width, height := lvl.MapWidth, lvl.MapHeight
	for _, p := range lvl.Config.ActorBody {
		width = max(width, p.Col)
		height = max(height, p.Row)
	}
	// The space holds whole cells only.
	width = roundUp(max(width, 1), cc.CellWidth)
	height = roundUp(max(height, 1), cc.CellHeight)

	world := donburi.NewWorld()
	cl := &CollisionLevel{
		World:  world,
		Level:  factory.CreateLevel(world, lvl, width, height),
		Config: lvl.Config,
	}
	cl.Space = components.Space.Get(factory.CreateSpace(world, width, height, cc.CellWidth, cc.CellHeight))

	friction := lvl.Config.Friction / 2
	for _, poly := range lvl.Map {
		if len(poly) <= 2 {
			cl.Skipped++
			continue
		}
		factory.CreateStaticBody(world, poly, friction)
	}

	cl.Actor = factory.CreateActor(world, lvl.Config.ActorBody,
		lvl.Config.ActorMass, lvl.Config.ActorMovement, friction, cc.MaxActorSpeed)

	log.Printf("[collision] level %s: %d static bodies (%d skipped), %dx%d space",
		lvl.Name, cl.StaticCount(), cl.Skipped, width, height)
	return cl, nil
}

func roundUp(n, cell int) int {
	return (n + cell - 1) / cell * cell
}

// StaticCount returns the number of terrain bodies in the world.
func (cl *CollisionLevel) StaticCount() int {
	return donburi.NewQuery(filter.Contains(tags.StaticBody)).Count(cl.World)
}

// Step advances the actor by one fixed tick of 1/FPS seconds: gravity and
// damping are applied, the speed is capped, and the move is resolved
// against the terrain. Blocked axes lose their velocity.
func (cl *CollisionLevel) Step() {
	body := components.Body.Get(cl.Actor)
	dt := 1 / cl.Config.FPS

	body.Velocity.X += cl.Config.Gravity[0] * dt
	body.Velocity.Y += cl.Config.Gravity[1] * dt
	damp := math.Pow(cl.Config.Damping, dt)
	body.Velocity.X *= damp
	body.Velocity.Y *= damp
	body.Velocity.X, body.Velocity.Y = clampVelocity(body)

	blockedX, blockedY := cl.MoveActor(body.Velocity.X*dt, body.Velocity.Y*dt)
	if blockedX {
		body.Velocity.X = 0
	}
	if blockedY {
		body.Velocity.Y = 0
	}
}
