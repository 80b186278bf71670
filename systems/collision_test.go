package systems

import (
	"math"
	"testing"

	"github.com/automoto/maskpoly/components"
	"github.com/automoto/maskpoly/config"
	"github.com/automoto/maskpoly/shared/gamemath"
	"github.com/automoto/maskpoly/shared/leveldata"
	"github.com/automoto/maskpoly/shared/mapparser"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/yohamta/donburi"
)

// testLevel is a 40x24 room: a floor along the bottom, a thin wall at
// x=10..12 and the actor, 2 wide and 4 tall, in the top-left corner.
func testLevel() *leveldata.Level {
	return &leveldata.Level{
		Name: "room",
		Map: []mapparser.Polygon{
			{{20, 0}, {24, 0}, {24, 40}, {20, 40}},
			{{0, 10}, {20, 10}, {20, 12}, {0, 12}},
			{{5, 5}, {6, 6}},
		},
		MapWidth:  40,
		MapHeight: 24,
		Config: leveldata.LevelConfig{
			Gravity:       [2]float64{0, 900},
			Damping:       0.8,
			Friction:      1.0,
			FPS:           50,
			ActorMass:     100,
			ActorMovement: 1000,
			ActorBody:     mapparser.Polygon{{0, 0}, {4, 0}, {4, 2}, {0, 2}},
		},
	}
}

func newTestLevel(t *testing.T) *CollisionLevel {
	t.Helper()
	cl, err := NewCollisionLevel(testLevel(), config.Default().Collision)
	require.NoError(t, err)
	return cl
}

func TestNewCollisionLevel(t *testing.T) {
	cl := newTestLevel(t)

	assert.Equal(t, 2, cl.StaticCount())
	assert.Equal(t, 1, cl.Skipped)
	level := components.Level.Get(cl.Level)
	assert.Equal(t, "room", level.Name)
	// Rounded up to whole 16x16 cells.
	assert.Equal(t, 48, level.Width)
	assert.Equal(t, 32, level.Height)

	var floor *components.BodyData
	components.Body.Each(cl.World, func(e *donburi.Entry) {
		b := components.Body.Get(e)
		if b.Kind == components.StaticBody && b.Position == (gamemath.Vec{X: 20, Y: 22}) {
			floor = b
		}
	})
	require.NotNil(t, floor, "floor body centred on its vertices")
	assert.Equal(t, 0.5, floor.Friction)
	assert.Equal(t, []gamemath.Vec{{-20, -2}, {-20, 2}, {20, 2}, {20, -2}}, floor.Vertices)
	assert.Len(t, floor.Hull, 4)

	actor := components.Body.Get(cl.Actor)
	assert.Equal(t, components.DynamicBody, actor.Kind)
	assert.Equal(t, gamemath.Vec{X: 1, Y: 2}, actor.Position)
	assert.Equal(t, 100.0, actor.Mass)
	assert.Equal(t, 1000.0, actor.Moment)
	assert.Equal(t, 0.5, actor.Friction)
	assert.Equal(t, 200.0, actor.MaxSpeed)

	obj := components.Object.Get(cl.Actor)
	assert.Equal(t, 0.0, obj.X)
	assert.Equal(t, 0.0, obj.Y)
	assert.Equal(t, 2.0, obj.W)
	assert.Equal(t, 4.0, obj.H)
	assert.Same(t, cl.Actor, obj.Data)
}

func TestNewCollisionLevel_NoActor(t *testing.T) {
	lvl := testLevel()
	lvl.Config.ActorBody = nil
	_, err := NewCollisionLevel(lvl, config.Default().Collision)
	assert.ErrorIs(t, err, leveldata.ErrNoActorShape)
}

func TestMoveActor(t *testing.T) {
	tests := []struct {
		name               string
		dx, dy             float64
		blockedX           bool
		blockedY           bool
		wantObjX, wantObjY float64
		wantPosX, wantPosY float64
	}{
		{name: "free", dx: 3.5, dy: 2, wantObjX: 3.5, wantObjY: 2, wantPosX: 4.5, wantPosY: 4},
		{name: "wall", dx: 20, blockedX: true, wantObjX: 8, wantPosX: 9, wantPosY: 2},
		{name: "floor", dy: 30, blockedY: true, wantObjY: 16, wantPosX: 1, wantPosY: 18},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cl := newTestLevel(t)
			bx, by := cl.MoveActor(tt.dx, tt.dy)
			assert.Equal(t, tt.blockedX, bx)
			assert.Equal(t, tt.blockedY, by)

			obj := components.Object.Get(cl.Actor)
			assert.InDelta(t, tt.wantObjX, obj.X, 1e-9)
			assert.InDelta(t, tt.wantObjY, obj.Y, 1e-9)

			body := components.Body.Get(cl.Actor)
			assert.InDelta(t, tt.wantPosX, body.Position.X, 1e-9)
			assert.InDelta(t, tt.wantPosY, body.Position.Y, 1e-9)
			assert.Equal(t, tt.blockedY && tt.dy > 0, body.OnGround)
		})
	}
}

func TestStep_FallsAndLands(t *testing.T) {
	cl := newTestLevel(t)
	body := components.Body.Get(cl.Actor)

	for i := 0; i < 100; i++ {
		cl.Step()
		assert.LessOrEqual(t, math.Hypot(body.Velocity.X, body.Velocity.Y), body.MaxSpeed+1e-9)
	}
	assert.True(t, body.OnGround)
	assert.Equal(t, 0.0, body.Velocity.Y)
	assert.InDelta(t, 18, body.Position.Y, 1e-9)
	assert.InDelta(t, 16, components.Object.Get(cl.Actor).Y, 1e-9)
}

func TestStep_WalksIntoWall(t *testing.T) {
	cl := newTestLevel(t)
	body := components.Body.Get(cl.Actor)
	for i := 0; i < 50; i++ {
		cl.Step()
	}
	require.True(t, body.OnGround)

	for i := 0; i < 50; i++ {
		body.Velocity.X = 150
		cl.Step()
	}
	assert.InDelta(t, 8, components.Object.Get(cl.Actor).X, 1e-9)
	assert.Equal(t, 0.0, body.Velocity.X)
}
