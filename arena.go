package main

import (
	"image"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/jakecoffman/cp"
	"golang.org/x/image/colornames"
)

const (
	ballRadius = 14.0
	ballSpeed  = 420.0
	stepDt     = 1.0 / 60.0
)

var arenaRect = image.Rect(860, 24, 1256, 420)

// arena is a walled physics space with one ball steered by a processed
// stick, so deadzone and curve changes can be felt as motion.
type arena struct {
	rect  image.Rectangle
	space *cp.Space
	ball  *cp.Body
}

func newArena(rect image.Rectangle) *arena {
	space := cp.NewSpace()
	space.SetGravity(cp.Vector{X: 0, Y: 0})

	minX, minY := float64(rect.Min.X), float64(rect.Min.Y)
	maxX, maxY := float64(rect.Max.X), float64(rect.Max.Y)
	walls := []struct {
		a cp.Vector
		b cp.Vector
	}{
		{a: cp.Vector{X: minX, Y: minY}, b: cp.Vector{X: maxX, Y: minY}},
		{a: cp.Vector{X: minX, Y: maxY}, b: cp.Vector{X: maxX, Y: maxY}},
		{a: cp.Vector{X: minX, Y: minY}, b: cp.Vector{X: minX, Y: maxY}},
		{a: cp.Vector{X: maxX, Y: minY}, b: cp.Vector{X: maxX, Y: maxY}},
	}
	for _, w := range walls {
		shape := cp.NewSegment(space.StaticBody, w.a, w.b, 2)
		shape.SetFriction(0.8)
		shape.SetElasticity(0.4)
		space.AddShape(shape)
	}

	mass := 1.0
	ball := cp.NewBody(mass, cp.MomentForCircle(mass, 0, ballRadius, cp.Vector{}))
	ball.SetPosition(cp.Vector{X: (minX + maxX) / 2, Y: (minY + maxY) / 2})
	shape := cp.NewCircle(ball, ballRadius, cp.Vector{})
	shape.SetFriction(0.8)
	shape.SetElasticity(0.4)
	space.AddBody(ball)
	space.AddShape(shape)

	return &arena{rect: rect, space: space, ball: ball}
}

// Drive sets the ball velocity from a processed stick value.
func (a *arena) Drive(v mgl32.Vec2) {
	a.ball.SetVelocity(float64(v.X())*ballSpeed, float64(v.Y())*ballSpeed)
}

func (a *arena) Step() {
	a.space.Step(stepDt)
}

func (a *arena) Draw(screen *ebiten.Image) {
	r := a.rect
	vector.StrokeRect(screen, float32(r.Min.X), float32(r.Min.Y), float32(r.Dx()), float32(r.Dy()), 2, colornames.Dimgray, false)
	p := a.ball.Position()
	vector.FillCircle(screen, float32(p.X), float32(p.Y), ballRadius, colornames.Orange, true)
}
