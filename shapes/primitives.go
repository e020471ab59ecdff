// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package shapes

import (
	"math"

	"github.com/srwiley/rasterx"
	"golang.org/x/image/math/fixed"
)

// Line is a straight segment between two points.
type Line struct {
	Base
	Start, End Point
}

// NewLine returns a new line from (x1, y1) to (x2, y2).
func NewLine(x1, y1, x2, y2 float64) *Line {
	return &Line{Start: Point{x1, y1}, End: Point{x2, y2}}
}

// Bounds returns the box spanned by the two end points.
func (l *Line) Bounds() Bounds { return BoundsOf(l.Start, l.End) }

// IsClosed returns false.
func (l *Line) IsClosed() bool { return false }

// AddTo adds the segment to a.
func (l *Line) AddTo(a rasterx.Adder, m rasterx.Matrix2D) {
	a.Start(toDevice(m, l.Start))
	a.Line(toDevice(m, l.End))
	a.Stop(false)
}

// Polyline is a connected sequence of straight segments,
// optionally closed back to its first vertex.
type Polyline struct {
	Base
	Points []Point
	Closed bool
}

// NewPolyline returns a new polyline through the given points.
func NewPolyline(closed bool, pts ...Point) *Polyline {
	return &Polyline{Points: pts, Closed: closed}
}

// Bounds returns the box containing all vertices.
func (p *Polyline) Bounds() Bounds { return BoundsOf(p.Points...) }

// IsClosed returns [Polyline.Closed].
func (p *Polyline) IsClosed() bool { return p.Closed }

// AddTo adds the vertices to a; nothing is added without vertices.
func (p *Polyline) AddTo(a rasterx.Adder, m rasterx.Matrix2D) {
	if len(p.Points) == 0 {
		return
	}
	a.Start(toDevice(m, p.Points[0]))
	for _, pt := range p.Points[1:] {
		a.Line(toDevice(m, pt))
	}
	a.Stop(p.Closed)
}

// Circle is a full circle.
type Circle struct {
	Base
	Center Point
	Radius float64
}

// NewCircle returns a new circle centered at (cx, cy).
func NewCircle(cx, cy, r float64) *Circle {
	return &Circle{Center: Point{cx, cy}, Radius: r}
}

// Bounds returns the square enclosing the circle.
func (c *Circle) Bounds() Bounds {
	return Bounds{MinX: c.Center.X - c.Radius, MinY: c.Center.Y - c.Radius, MaxX: c.Center.X + c.Radius, MaxY: c.Center.Y + c.Radius}
}

// IsClosed returns true.
func (c *Circle) IsClosed() bool { return true }

// AddTo adds the circle to a as a closed curve.
func (c *Circle) AddTo(a rasterx.Adder, m rasterx.Matrix2D) {
	cx, cy := m.Transform(c.Center.X, c.Center.Y)
	s, _, _ := similarity(m)
	rasterx.AddCircle(cx, cy, c.Radius*s, a)
}

// Arc is a circular arc running counterclockwise from StartAngle to
// EndAngle, both in degrees.
type Arc struct {
	Base
	Center     Point
	Radius     float64
	StartAngle float64
	EndAngle   float64
}

// NewArc returns a new arc centered at (cx, cy).
func NewArc(cx, cy, r, startDeg, endDeg float64) *Arc {
	return &Arc{Center: Point{cx, cy}, Radius: r, StartAngle: startDeg, EndAngle: endDeg}
}

// Sweep returns the counterclockwise angular extent in radians,
// in the range (0, 2π].
func (a *Arc) Sweep() float64 {
	return sweep(a.StartAngle, a.EndAngle)
}

// Bounds returns the exact bounds of the arc.
func (a *Arc) Bounds() Bounds {
	return arcBounds(a.Center, a.Radius, a.Radius, 0, degToRad(a.StartAngle), a.Sweep())
}

// IsClosed returns false, even for a full turn.
func (a *Arc) IsClosed() bool { return false }

// AddTo adds the arc to a as an open curve.
func (a *Arc) AddTo(ad rasterx.Adder, m rasterx.Matrix2D) {
	addArc(ad, m, a.Center, a.Radius, a.Radius, 0, degToRad(a.StartAngle), a.Sweep())
}

// Ellipse is an elliptical arc, or a full ellipse when StartAngle and
// EndAngle coincide. Rotation is the angle of the X radius in degrees;
// the start and end angles are parametric, in degrees.
type Ellipse struct {
	Base
	Center     Point
	RadiusX    float64
	RadiusY    float64
	Rotation   float64
	StartAngle float64
	EndAngle   float64
}

// NewEllipse returns a new full ellipse centered at (cx, cy).
func NewEllipse(cx, cy, rx, ry, rotDeg float64) *Ellipse {
	return &Ellipse{Center: Point{cx, cy}, RadiusX: rx, RadiusY: ry, Rotation: rotDeg}
}

// IsFull returns whether the ellipse is closed.
func (e *Ellipse) IsFull() bool {
	return math.Mod(e.EndAngle-e.StartAngle, 360) == 0
}

// Bounds returns the exact bounds of the ellipse or elliptical arc.
func (e *Ellipse) Bounds() Bounds {
	return arcBounds(e.Center, e.RadiusX, e.RadiusY, degToRad(e.Rotation), degToRad(e.StartAngle), sweep(e.StartAngle, e.EndAngle))
}

// IsClosed returns [Ellipse.IsFull].
func (e *Ellipse) IsClosed() bool { return e.IsFull() }

// AddTo adds the ellipse to a, closed only when full.
func (e *Ellipse) AddTo(a rasterx.Adder, m rasterx.Matrix2D) {
	if e.IsFull() {
		cx, cy, rx, ry, rot, _ := toDeviceEllipse(m, e.Center, e.RadiusX, e.RadiusY, e.Rotation)
		rasterx.AddEllipse(cx, cy, rx, ry, rot, a)
		return
	}
	addArc(a, m, e.Center, e.RadiusX, e.RadiusY, degToRad(e.Rotation), degToRad(e.StartAngle), sweep(e.StartAngle, e.EndAngle))
}

func degToRad(deg float64) float64 { return deg * math.Pi / 180 }

func radToDeg(rad float64) float64 { return rad * 180 / math.Pi }

// sweep returns the counterclockwise angle from start to end degrees in
// radians; equal angles denote a full turn.
func sweep(startDeg, endDeg float64) float64 {
	d := math.Mod(endDeg-startDeg, 360)
	if d <= 0 {
		d += 360
	}
	return degToRad(d)
}

// ellipsePoint returns the point at parameter t of an ellipse rotated by rot.
func ellipsePoint(c Point, rx, ry, rot, t float64) Point {
	x, y := rx*math.Cos(t), ry*math.Sin(t)
	sr, cr := math.Sincos(rot)
	return Point{c.X + x*cr - y*sr, c.Y + x*sr + y*cr}
}

// similarity decomposes a similarity transform into its scale, the
// rotation of the x axis in radians, and whether it reflects.
func similarity(m rasterx.Matrix2D) (scale, rot float64, flip bool) {
	det := m.A*m.D - m.B*m.C
	return math.Sqrt(math.Abs(det)), math.Atan2(m.B, m.A), det < 0
}

func toDevice(m rasterx.Matrix2D, p Point) fixed.Point26_6 {
	return rasterx.ToFixedP(m.Transform(p.X, p.Y))
}

// toDeviceEllipse maps an ellipse with rotation rotDeg through m.
// A reflection reverses the direction of the rotation.
func toDeviceEllipse(m rasterx.Matrix2D, c Point, rx, ry, rotDeg float64) (cx, cy, drx, dry, drotDeg float64, flip bool) {
	s, phi, flip := similarity(m)
	cx, cy = m.Transform(c.X, c.Y)
	drotDeg = radToDeg(phi) + rotDeg
	if flip {
		drotDeg = radToDeg(phi) - rotDeg
	}
	return cx, cy, rx * s, ry * s, drotDeg, flip
}

// addArc adds an open elliptical arc running counterclockwise in model
// space from parameter start through sweep radians.
func addArc(a rasterx.Adder, m rasterx.Matrix2D, c Point, rx, ry, rot, start, sweep float64) {
	cx, cy, drx, dry, drot, flip := toDeviceEllipse(m, c, rx, ry, radToDeg(rot))
	at := func(t float64) (float64, float64) {
		p := ellipsePoint(c, rx, ry, rot, t)
		return m.Transform(p.X, p.Y)
	}
	x0, y0 := at(start)
	x1, y1 := at(start + sweep)
	if sweep >= 2*math.Pi {
		// the end point coincides with the start, so split the turn
		xm, ym := at(start + math.Pi)
		a.Start(rasterx.ToFixedP(x0, y0))
		rasterx.AddArc(arcFlags(drx, dry, drot, false, flip, xm, ym), cx, cy, x0, y0, a)
		rasterx.AddArc(arcFlags(drx, dry, drot, false, flip, x1, y1), cx, cy, xm, ym, a)
		a.Stop(false)
		return
	}
	a.Start(rasterx.ToFixedP(x0, y0))
	rasterx.AddArc(arcFlags(drx, dry, drot, sweep > math.Pi, flip, x1, y1), cx, cy, x0, y0, a)
	a.Stop(false)
}

// arcFlags returns the SVG style arc parameters used by [rasterx.AddArc].
// Counterclockwise in model space is the positive angle direction in
// device space unless the transform reflects.
func arcFlags(rx, ry, rotDeg float64, large, flip bool, x, y float64) []float64 {
	la, sw := 0.0, 1.0
	if large {
		la = 1
	}
	if flip {
		sw = 0
	}
	return []float64{rx, ry, rotDeg, la, sw, x, y}
}

// arcBounds returns the exact bounds of an elliptical arc by including its
// end points and every axis extremum within the sweep.
func arcBounds(c Point, rx, ry, rot, start, sweep float64) Bounds {
	b := BoundsOf(ellipsePoint(c, rx, ry, rot, start), ellipsePoint(c, rx, ry, rot, start+sweep))
	sr, cr := math.Sincos(rot)
	// parameters where dx/dt = 0 and dy/dt = 0
	tx := math.Atan2(-ry*sr, rx*cr)
	ty := math.Atan2(ry*cr, rx*sr)
	for _, t0 := range []float64{tx, tx + math.Pi, ty, ty + math.Pi} {
		d := math.Mod(t0-start, 2*math.Pi)
		if d < 0 {
			d += 2 * math.Pi
		}
		if d <= sweep {
			b = b.ExpandByPoint(ellipsePoint(c, rx, ry, rot, t0))
		}
	}
	return b
}
