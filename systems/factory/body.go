package factory

import (
	"github.com/automoto/maskpoly/archetypes"
	"github.com/automoto/maskpoly/components"
	"github.com/automoto/maskpoly/shared/gamemath"
	"github.com/automoto/maskpoly/shared/mapparser"
	"github.com/automoto/maskpoly/tags"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
)

// BodyFromPolygon builds body geometry from a (row, col) polygon: axes are
// swapped to (x, y), the vertex centroid becomes the position and the
// vertices are stored relative to it.
func BodyFromPolygon(poly mapparser.Polygon) components.BodyData {
	pts := worldPoints(poly)
	pos := gamemath.Centroid(pts)
	rel := gamemath.Translate(pts, pos)
	return components.BodyData{
		Position: pos,
		Vertices: rel,
		Hull:     gamemath.ConvexHull(rel),
	}
}

func worldPoints(poly mapparser.Polygon) []gamemath.Vec {
	pts := make([]gamemath.Vec, len(poly))
	for i, p := range poly {
		pts[i] = gamemath.FromRowCol(p.Row, p.Col)
	}
	return pts
}

// CreateStaticBody adds an immovable terrain body for poly.
func CreateStaticBody(world donburi.World, poly mapparser.Polygon, friction float64) *donburi.Entry {
	body := archetypes.StaticBody.Spawn(world)

	data := BodyFromPolygon(poly)
	data.Kind = components.StaticBody
	data.Friction = friction
	components.Body.SetValue(body, data)

	attachObject(world, body, poly, tags.ResolvSolid)
	return body
}

// CreateActor adds the player-controlled dynamic body for poly.
func CreateActor(world donburi.World, poly mapparser.Polygon, mass, moment, friction, maxSpeed float64) *donburi.Entry {
	actor := archetypes.Actor.Spawn(world)

	data := BodyFromPolygon(poly)
	data.Kind = components.DynamicBody
	data.Friction = friction
	data.Mass = mass
	data.Moment = moment
	data.MaxSpeed = maxSpeed
	components.Body.SetValue(actor, data)

	attachObject(world, actor, poly, tags.ResolvActor)
	return actor
}

// attachObject adds a broad-phase object covering the bounding box of poly.
func attachObject(world donburi.World, e *donburi.Entry, poly mapparser.Polygon, tag string) {
	lo, hi := gamemath.Bounds(worldPoints(poly))
	w, h := hi.X-lo.X, hi.Y-lo.Y

	obj := resolv.NewObject(lo.X, lo.Y, w, h, tag)
	obj.SetShape(resolv.NewRectangle(0, 0, w, h))
	obj.Data = e // Link for O(1) lookup

	components.Object.SetValue(e, components.ObjectData{Object: obj})

	if spaceEntry, ok := components.Space.First(world); ok {
		components.Space.Get(spaceEntry).Add(obj)
	}
}
