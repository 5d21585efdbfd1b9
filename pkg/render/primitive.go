package render

// Op identifies the shape a primitive draws.
type Op string

const (
	OpEllipse Op = "ellipse" // ellipse inscribed in the bounding box
	OpRect    Op = "rect"    // axis-aligned rectangle
	OpArc     Op = "arc"     // stroked elliptical arc segment, no fill
	OpChord   Op = "chord"   // filled slice of an ellipse, chord-closed
	OpLine    Op = "line"    // straight stroke from (x0,y0) to (x1,y1)
	OpText    Op = "text"    // string centered at (x0,y0)
)

// Font describes a text primitive's typeface.
type Font struct {
	Family string  `json:"family"`
	Size   float64 `json:"size"`
	Bold   bool    `json:"bold,omitempty"`
}

// Primitive is one atomic drawing instruction. For box shapes (ellipse,
// rect, arc, chord), (X0,Y0)-(X1,Y1) is the bounding box; for lines they are
// the endpoints; for text (X0,Y0) is the anchor point. Angles are degrees,
// counterclockwise from three o'clock, matching the surface's arc convention.
type Primitive struct {
	Op      Op        `json:"op"`
	X0      float64   `json:"x0"`
	Y0      float64   `json:"y0"`
	X1      float64   `json:"x1,omitempty"`
	Y1      float64   `json:"y1,omitempty"`
	Start   float64   `json:"start,omitempty"`
	Extent  float64   `json:"extent,omitempty"`
	Fill    string    `json:"fill,omitempty"`
	Outline string    `json:"outline,omitempty"`
	Width   float64   `json:"width,omitempty"`
	Dash    []float64 `json:"dash,omitempty"`
	Text    string    `json:"text,omitempty"`
	Font    *Font     `json:"font,omitempty"`
}

func ellipse(x0, y0, x1, y1 float64, fill, outline string, width float64) Primitive {
	return Primitive{Op: OpEllipse, X0: x0, Y0: y0, X1: x1, Y1: y1, Fill: fill, Outline: outline, Width: width}
}

func rect(x0, y0, x1, y1 float64, fill, outline string, width float64) Primitive {
	return Primitive{Op: OpRect, X0: x0, Y0: y0, X1: x1, Y1: y1, Fill: fill, Outline: outline, Width: width}
}

func line(x0, y0, x1, y1 float64, color string, width float64) Primitive {
	return Primitive{Op: OpLine, X0: x0, Y0: y0, X1: x1, Y1: y1, Outline: color, Width: width}
}

func dashedLine(x0, y0, x1, y1 float64, color string, width float64, dash []float64) Primitive {
	return Primitive{Op: OpLine, X0: x0, Y0: y0, X1: x1, Y1: y1, Outline: color, Width: width, Dash: dash}
}

func arc(x0, y0, x1, y1, start, extent float64, outline string, width float64) Primitive {
	return Primitive{Op: OpArc, X0: x0, Y0: y0, X1: x1, Y1: y1, Start: start, Extent: extent, Outline: outline, Width: width}
}

func chord(x0, y0, x1, y1, start, extent float64, fill, outline string, width float64) Primitive {
	return Primitive{Op: OpChord, X0: x0, Y0: y0, X1: x1, Y1: y1, Start: start, Extent: extent, Fill: fill, Outline: outline, Width: width}
}

func label(x, y float64, s, fill string, font Font) Primitive {
	return Primitive{Op: OpText, X0: x, Y0: y, Text: s, Fill: fill, Font: &font}
}
