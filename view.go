package main

import (
	"fmt"
	"image/color"
	"path"
	"strings"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/colornames"

	"github.com/milk9111/axisinput/axis"
	"github.com/milk9111/axisinput/common"
	"github.com/milk9111/axisinput/source"
	"github.com/milk9111/axisinput/source/ebitenreader"
)

const (
	stickSize = 220.0
	maskCells = 64
)

type stickInput func(*ebitenreader.Reader) mgl32.Vec2

// stickInputFor binds a profile stick name to a device control. Gamepad
// sticks fall back to the keyboard when no gamepad is connected.
func stickInputFor(name string) stickInput {
	gamepad := func(s source.Stick, keys source.VirtualDPad) stickInput {
		return func(r *ebitenreader.Reader) mgl32.Vec2 {
			if r.Connected() {
				return s.Raw(r)
			}
			v := keys.Raw(r)
			return mgl32.Vec2{v.X(), -v.Y()}
		}
	}
	switch name {
	case "left", "move":
		return gamepad(source.LeftStick, source.WASD)
	case "right", "aim", "look":
		return gamepad(source.RightStick, source.Arrows)
	case "mouse":
		return func(r *ebitenreader.Reader) mgl32.Vec2 { return r.CursorDelta() }
	case "arrows":
		return func(r *ebitenreader.Reader) mgl32.Vec2 { return source.Arrows.Raw(r) }
	}
	return func(r *ebitenreader.Reader) mgl32.Vec2 { return source.DPad.Raw(r) }
}

type stickView struct {
	name      string
	proc      axis.DualProcessor
	input     stickInput
	mask      *ebiten.Image
	raw       mgl32.Vec2
	processed mgl32.Vec2
}

func newStickView(name string, proc axis.DualProcessor) *stickView {
	return &stickView{name: name, proc: proc, input: stickInputFor(name), mask: responseMask(proc)}
}

func (v *stickView) Sample(r *ebitenreader.Reader) {
	v.raw = v.input(r)
	v.processed = v.proc.Process(v.raw)
}

// responseMask marks where proc outputs zero and where it saturates,
// sampled over the unit square.
func responseMask(proc axis.DualProcessor) *ebiten.Image {
	pix := make([]byte, maskCells*maskCells*4)
	for j := 0; j < maskCells; j++ {
		for i := 0; i < maskCells; i++ {
			in := mgl32.Vec2{
				(float32(i)+0.5)/maskCells*2 - 1,
				(float32(j)+0.5)/maskCells*2 - 1,
			}
			out := proc.Process(in)
			var c color.RGBA
			switch {
			case out.LenSqr() <= common.Epsilon:
				c = color.RGBA{90, 30, 30, 255}
			case common.Max(common.Abs(out.X()), common.Abs(out.Y())) >= 1-1e-3:
				c = color.RGBA{30, 60, 90, 255}
			default:
				c = color.RGBA{40, 40, 46, 255}
			}
			o := (j*maskCells + i) * 4
			pix[o], pix[o+1], pix[o+2], pix[o+3] = c.R, c.G, c.B, c.A
		}
	}
	img := ebiten.NewImage(maskCells, maskCells)
	img.WritePixels(pix)
	return img
}

func (v *stickView) Draw(screen *ebiten.Image, face text.Face, x, y float64) {
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(stickSize/maskCells, stickSize/maskCells)
	op.GeoM.Translate(x, y)
	screen.DrawImage(v.mask, op)

	fx, fy, half := float32(x), float32(y), float32(stickSize/2)
	cx, cy := fx+half, fy+half
	vector.StrokeRect(screen, fx, fy, stickSize, stickSize, 1, colornames.Dimgray, false)
	vector.StrokeCircle(screen, cx, cy, half, 1, colornames.Gray, true)
	vector.StrokeLine(screen, fx, cy, fx+stickSize, cy, 1, colornames.Dimgray, false)
	vector.StrokeLine(screen, cx, fy, cx, fy+stickSize, 1, colornames.Dimgray, false)

	rx, ry := cx+clampUnit(v.raw.X())*half, cy+clampUnit(v.raw.Y())*half
	px, py := cx+clampUnit(v.processed.X())*half, cy+clampUnit(v.processed.Y())*half
	vector.StrokeLine(screen, rx, ry, px, py, 1, colornames.Lightgrey, true)
	vector.FillCircle(screen, rx, ry, 5, colornames.White, true)
	vector.FillCircle(screen, px, py, 6, colornames.Orange, true)

	drawText(screen, face, v.name, x, y+stickSize+6, color.White)
	drawText(screen, face, fmt.Sprintf("raw  %+.3f %+.3f", v.raw.X(), v.raw.Y()), x, y+stickSize+24, color.Gray{Y: 200})
	drawText(screen, face, fmt.Sprintf("out  %+.3f %+.3f", v.processed.X(), v.processed.Y()), x, y+stickSize+42, colornames.Orange)
}

type axisRow struct {
	name      string
	proc      axis.Processor
	raw       float32
	processed float32
}

var axisInputs = map[string]func(source.Reader) float32{
	"left_x":        source.LeftX.Raw,
	"left_y":        source.LeftY.Raw,
	"right_x":       source.RightX.Raw,
	"right_y":       source.RightY.Raw,
	"left_trigger":  source.LeftTrigger.Raw,
	"right_trigger": source.RightTrigger.Raw,
	"steer":         source.LeftX.Raw,
	"throttle":      source.RightTrigger.Raw,
	"brake":         source.LeftTrigger.Raw,
	"clutch":        source.LeftTrigger.Raw,
	"wheel":         source.MouseScrollAxis{Direction: source.DirectionY}.Value,
}

func (a *axisRow) Sample(r *ebitenreader.Reader) {
	in, ok := axisInputs[a.name]
	if !ok {
		in = source.ArrowsX.Raw
	}
	a.raw = in(r)
	a.processed = a.proc.Process(a.raw)
}

func (a axisRow) Draw(screen *ebiten.Image, face text.Face, x, y float64) {
	const barWidth = 200
	drawText(screen, face, a.name, x, y, color.White)
	bx, by := float32(x+140), float32(y+4)
	vector.FillRect(screen, bx, by, barWidth, 10, colornames.Darkslategray, false)
	mid := bx + barWidth/2
	vector.FillRect(screen, mid, by, clampUnit(a.processed)*barWidth/2, 10, colornames.Orange, false)
	vector.StrokeLine(screen, mid+clampUnit(a.raw)*barWidth/2, by-2, mid+clampUnit(a.raw)*barWidth/2, by+12, 2, colornames.White, false)
	drawText(screen, face, fmt.Sprintf("%+.3f -> %+.3f", a.raw, a.processed), x+360, y, color.Gray{Y: 200})
}

func clampUnit(v float32) float32 {
	return common.Clamp(v, -1, 1)
}

func drawText(screen *ebiten.Image, face text.Face, s string, x, y float64, c color.Color) {
	op := &text.DrawOptions{}
	op.GeoM.Translate(x, y)
	op.ColorScale.ScaleWithColor(c)
	text.Draw(screen, s, face, op)
}

func profileBase(name string) string {
	base := path.Base(strings.ReplaceAll(name, "\\", "/"))
	return strings.TrimSuffix(strings.TrimSuffix(base, ".yaml"), ".yml")
}
