package render

import (
	"image/color"
	"math"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// Graphic is a retained list of vector drawing commands, replayed onto the
// screen every frame. Faces clear and refill their graphics on redraw
// instead of appending, so a graphic never accumulates stale shapes.
type Graphic struct {
	node
	cmds []command

	// current styles, captured into each appended command
	fillClr   color.RGBA
	strokeClr color.RGBA
	strokeW   float32
}

type cmdKind uint8

const (
	cmdFillCircle cmdKind = iota
	cmdStrokeCircle
	cmdFillSlice
	cmdStrokeArc
	cmdLine
	cmdFillRect
	cmdStrokePoly
)

type command struct {
	kind       cmdKind
	x, y       float32
	x2, y2     float32
	r          float32
	start, end float32
	width      float32
	clr        color.RGBA
	pts        []float32 // x,y pairs for cmdStrokePoly
}

// Clear drops every recorded command. Styles are kept.
func (g *Graphic) Clear() {
	g.cmds = g.cmds[:0]
}

// CommandCount returns how many draw commands the graphic holds.
func (g *Graphic) CommandCount() int { return len(g.cmds) }

// FillStyle sets the color used by subsequent fill commands.
func (g *Graphic) FillStyle(c color.RGBA) { g.fillClr = c }

// LineStyle sets the width and color used by subsequent stroke commands.
func (g *Graphic) LineStyle(width float32, c color.RGBA) {
	g.strokeW = width
	g.strokeClr = c
}

// FillCircle records a filled circle.
func (g *Graphic) FillCircle(x, y, r float32) {
	g.cmds = append(g.cmds, command{kind: cmdFillCircle, x: x, y: y, r: r, clr: g.fillClr})
}

// StrokeCircle records a circle outline.
func (g *Graphic) StrokeCircle(x, y, r float32) {
	g.cmds = append(g.cmds, command{
		kind: cmdStrokeCircle, x: x, y: y, r: r, width: g.strokeW, clr: g.strokeClr,
	})
}

// FillSlice records a filled pie wedge from start to end (radians,
// clockwise, screen coordinates).
func (g *Graphic) FillSlice(x, y, r, start, end float32) {
	g.cmds = append(g.cmds, command{
		kind: cmdFillSlice, x: x, y: y, r: r, start: start, end: end, clr: g.fillClr,
	})
}

// StrokeArc records an open arc from start to end (radians, clockwise).
func (g *Graphic) StrokeArc(x, y, r, start, end float32) {
	g.cmds = append(g.cmds, command{
		kind: cmdStrokeArc, x: x, y: y, r: r, start: start, end: end,
		width: g.strokeW, clr: g.strokeClr,
	})
}

// Line records a stroked segment.
func (g *Graphic) Line(x1, y1, x2, y2 float32) {
	g.cmds = append(g.cmds, command{
		kind: cmdLine, x: x1, y: y1, x2: x2, y2: y2, width: g.strokeW, clr: g.strokeClr,
	})
}

// FillRect records a filled axis-aligned rectangle.
func (g *Graphic) FillRect(x, y, w, h float32) {
	g.cmds = append(g.cmds, command{
		kind: cmdFillRect, x: x, y: y, x2: w, y2: h, clr: g.fillClr,
	})
}

// StrokePoly records an open polyline through the given x,y pairs.
func (g *Graphic) StrokePoly(pts ...float32) {
	if len(pts) < 4 || len(pts)%2 != 0 {
		return
	}
	cp := make([]float32, len(pts))
	copy(cp, pts)
	g.cmds = append(g.cmds, command{
		kind: cmdStrokePoly, width: g.strokeW, clr: g.strokeClr, pts: cp,
	})
}

func (g *Graphic) draw(dst *ebiten.Image, atlas *FontAtlas) {
	for i := range g.cmds {
		c := &g.cmds[i]
		switch c.kind {
		case cmdFillCircle:
			vector.DrawFilledCircle(dst, c.x, c.y, c.r, c.clr, true)
		case cmdStrokeCircle:
			vector.StrokeCircle(dst, c.x, c.y, c.r, c.width, c.clr, true)
		case cmdFillSlice:
			drawSlice(dst, c.x, c.y, c.r, c.start, c.end, c.clr)
		case cmdStrokeArc:
			drawArc(dst, c.x, c.y, c.r, c.start, c.end, c.width, c.clr)
		case cmdLine:
			vector.StrokeLine(dst, c.x, c.y, c.x2, c.y2, c.width, c.clr, true)
		case cmdFillRect:
			vector.DrawFilledRect(dst, c.x, c.y, c.x2, c.y2, c.clr, true)
		case cmdStrokePoly:
			for j := 2; j+1 < len(c.pts); j += 2 {
				vector.StrokeLine(dst, c.pts[j-2], c.pts[j-1], c.pts[j], c.pts[j+1],
					c.width, c.clr, true)
			}
		}
	}
}

var whitePixel *ebiten.Image

func whiteImage() *ebiten.Image {
	if whitePixel == nil {
		whitePixel = ebiten.NewImage(3, 3)
		whitePixel.Fill(color.White)
	}
	return whitePixel
}

// drawSlice fills a pie wedge with a triangulated path.
func drawSlice(dst *ebiten.Image, x, y, r, start, end float32, clr color.RGBA) {
	if end < start {
		start, end = end, start
	}
	var path vector.Path
	path.MoveTo(x, y)
	path.LineTo(x+r*cosf(start), y+r*sinf(start))
	path.Arc(x, y, r, start, end, vector.Clockwise)
	path.Close()
	fillPath(dst, &path, clr)
}

// drawArc strokes an open arc.
func drawArc(dst *ebiten.Image, x, y, r, start, end, width float32, clr color.RGBA) {
	if end < start {
		start, end = end, start
	}
	var path vector.Path
	path.MoveTo(x+r*cosf(start), y+r*sinf(start))
	path.Arc(x, y, r, start, end, vector.Clockwise)

	op := &vector.StrokeOptions{Width: width}
	vs, is := path.AppendVerticesAndIndicesForStroke(nil, nil, op)
	tintVertices(vs, clr)
	dst.DrawTriangles(vs, is, whiteImage(), &ebiten.DrawTrianglesOptions{AntiAlias: true})
}

func fillPath(dst *ebiten.Image, path *vector.Path, clr color.RGBA) {
	vs, is := path.AppendVerticesAndIndicesForFilling(nil, nil)
	tintVertices(vs, clr)
	dst.DrawTriangles(vs, is, whiteImage(), &ebiten.DrawTrianglesOptions{AntiAlias: true})
}

func tintVertices(vs []ebiten.Vertex, clr color.RGBA) {
	for i := range vs {
		vs[i].SrcX = 1
		vs[i].SrcY = 1
		vs[i].ColorR = float32(clr.R) / 255
		vs[i].ColorG = float32(clr.G) / 255
		vs[i].ColorB = float32(clr.B) / 255
		vs[i].ColorA = float32(clr.A) / 255
	}
}

func cosf(a float32) float32 { return float32(math.Cos(float64(a))) }
func sinf(a float32) float32 { return float32(math.Sin(float64(a))) }
