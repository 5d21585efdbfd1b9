package render

import (
	"image"
	"image/color"
	"math"
	"strings"
	"sync"

	"github.com/golang/freetype/truetype"
	"github.com/llgcode/draw2d"
	"github.com/llgcode/draw2d/draw2dimg"
	"github.com/llgcode/draw2d/draw2dkit"
	"golang.org/x/image/colornames"
	"golang.org/x/image/font/gofont/goregular"
)

// Background is the canvas fill behind every rasterized robot.
const Background = "lightgray"

const rasterFontName = "goregular"

var rasterFontOnce sync.Once

// registerRasterFont parses the embedded Go Regular face and registers it
// with draw2d under rasterFontName.
func registerRasterFont() {
	f, err := truetype.Parse(goregular.TTF)
	if err != nil {
		// The font ships inside the binary; a parse failure is a build defect.
		panic("render: embedded font: " + err.Error())
	}
	draw2d.RegisterFont(draw2d.FontData{Name: rasterFontName}, f)
}

// namedColor resolves a surface color name to an RGBA value. Unknown names
// resolve to black so rasterization stays total and deterministic.
func namedColor(name string) color.RGBA {
	if c, ok := colornames.Map[strings.ToLower(name)]; ok {
		return c
	}
	return colornames.Black
}

// Rasterize paints an ordered primitive sequence into a width x height RGBA
// image, back to front. It backs the snapshot binding; the interactive
// surface paints the same primitives itself.
func Rasterize(prims []Primitive, width, height int) *image.RGBA {
	rasterFontOnce.Do(registerRasterFont)

	img := image.NewRGBA(image.Rect(0, 0, width, height))
	gc := draw2dimg.NewGraphicContext(img)
	gc.SetFontData(draw2d.FontData{Name: rasterFontName})

	gc.SetFillColor(namedColor(Background))
	draw2dkit.Rectangle(gc, 0, 0, float64(width), float64(height))
	gc.Fill()

	for _, p := range prims {
		paintPrimitive(gc, p)
	}
	return img
}

func paintPrimitive(gc *draw2dimg.GraphicContext, p Primitive) {
	gc.SetLineWidth(math.Max(p.Width, 1))
	if len(p.Dash) > 0 {
		gc.SetLineDash(p.Dash, 0)
	} else {
		gc.SetLineDash(nil, 0)
	}

	switch p.Op {
	case OpEllipse:
		cx, cy := (p.X0+p.X1)/2, (p.Y0+p.Y1)/2
		draw2dkit.Ellipse(gc, cx, cy, (p.X1-p.X0)/2, (p.Y1-p.Y0)/2)
		fillStroke(gc, p)
	case OpRect:
		draw2dkit.Rectangle(gc, p.X0, p.Y0, p.X1, p.Y1)
		fillStroke(gc, p)
	case OpArc:
		tracePieceOfEllipse(gc, p)
		gc.SetStrokeColor(namedColor(p.Outline))
		gc.Stroke()
	case OpChord:
		tracePieceOfEllipse(gc, p)
		gc.Close()
		fillStroke(gc, p)
	case OpLine:
		gc.MoveTo(p.X0, p.Y0)
		gc.LineTo(p.X1, p.Y1)
		gc.SetStrokeColor(namedColor(p.Outline))
		gc.Stroke()
	case OpText:
		gc.SetFillColor(namedColor(p.Fill))
		size := 12.0
		if p.Font != nil && p.Font.Size > 0 {
			size = p.Font.Size
		}
		gc.SetFontSize(size)
		// Center the string on the anchor point, like the surface does.
		left, _, right, _ := gc.GetStringBounds(p.Text)
		gc.FillStringAt(p.Text, p.X0-(right-left)/2, p.Y0+size/3)
	}
}

// tracePieceOfEllipse traces the arc described by the primitive's bounding
// box and angles. Primitive angles are counterclockwise degrees; draw2d works
// in y-down radians, so both the start and the sweep flip sign.
func tracePieceOfEllipse(gc *draw2dimg.GraphicContext, p Primitive) {
	cx, cy := (p.X0+p.X1)/2, (p.Y0+p.Y1)/2
	rx, ry := (p.X1-p.X0)/2, (p.Y1-p.Y0)/2
	start := -p.Start * math.Pi / 180
	sweep := -p.Extent * math.Pi / 180
	gc.MoveTo(cx+rx*math.Cos(start), cy+ry*math.Sin(start))
	gc.ArcTo(cx, cy, rx, ry, start, sweep)
}

func fillStroke(gc *draw2dimg.GraphicContext, p Primitive) {
	gc.SetFillColor(namedColor(p.Fill))
	gc.SetStrokeColor(namedColor(p.Outline))
	gc.FillStroke()
}
