package systems

import (
	"math"

	"github.com/automoto/maskpoly/components"
	"github.com/automoto/maskpoly/shared/gamemath"
	"github.com/automoto/maskpoly/tags"
	"github.com/solarlune/resolv"
)

// maxStep bounds each collision probe so thin terrain is never skipped.
const maxStep = 1.0

func clampVelocity(body *components.BodyData) (float64, float64) {
	return gamemath.ClampVelocity(body.Velocity.X, body.Velocity.Y, body.MaxSpeed)
}

// MoveActor moves the actor by (dx, dy), horizontal first, stopping each
// axis at the first solid in the way. It reports which axes were blocked.
func (cl *CollisionLevel) MoveActor(dx, dy float64) (blockedX, blockedY bool) {
	body := components.Body.Get(cl.Actor)
	obj := components.Object.Get(cl.Actor).Object

	var moved float64
	moved, blockedX = moveAxis(obj, dx, true)
	body.Position.X += moved
	moved, blockedY = moveAxis(obj, dy, false)
	body.Position.Y += moved

	body.OnGround = blockedY && dy > 0
	return blockedX, blockedY
}

// moveAxis advances object along one axis in steps of at most maxStep.
func moveAxis(object *resolv.Object, delta float64, horizontal bool) (moved float64, blocked bool) {
	for remaining := delta; remaining != 0; {
		step := gamemath.ClampSpeed(remaining, maxStep)
		dx, dy := step, 0.0
		if !horizontal {
			dx, dy = 0, step
		}

		if d, hit := contact(object, dx, dy, horizontal); hit {
			shift(object, d, horizontal)
			return moved + d, true
		}
		shift(object, step, horizontal)
		moved += step
		remaining -= step
	}
	return moved, false
}

func shift(object *resolv.Object, d float64, horizontal bool) {
	if horizontal {
		object.X += d
	} else {
		object.Y += d
	}
	object.Update()
}

// contact returns the distance object may travel along (dx, dy) before
// touching the nearest solid ahead of it.
func contact(object *resolv.Object, dx, dy float64, horizontal bool) (float64, bool) {
	check := object.Check(dx, dy, tags.ResolvSolid)
	if check == nil {
		return 0, false
	}

	step := dy
	if horizontal {
		step = dx
	}
	best, hit := 0.0, false
	for _, solid := range check.ObjectsByTags(tags.ResolvSolid) {
		if !overlaps(object, solid, dx, dy) {
			continue
		}
		c := check.ContactWithObject(solid)
		d := c.Y()
		if horizontal {
			d = c.X()
		}
		// Solids behind the mover are not in its way.
		if d*step < 0 {
			continue
		}
		if !hit || math.Abs(d) < math.Abs(best) {
			best, hit = d, true
		}
	}
	return best, hit
}

func overlaps(a, b *resolv.Object, dx, dy float64) bool {
	ax, ay := a.X+dx, a.Y+dy
	return ax < b.X+b.W && b.X < ax+a.W && ay < b.Y+b.H && b.Y < ay+a.H
}
