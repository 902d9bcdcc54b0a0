package geom

import "github.com/chewxy/math32"

// Point is a position in canvas-local space. Pressure is the pen pressure
// reported by the input device, or 0 when the device does not report one.
type Point struct {
	X, Y     float32
	Pressure float32
}

// Pt creates a Point without pressure.
func Pt(x, y float32) Point {
	return Point{X: x, Y: y}
}

// Add returns the vector sum of two points.
func (p Point) Add(q Point) Point {
	return Point{X: p.X + q.X, Y: p.Y + q.Y}
}

// Sub returns the vector difference of two points.
func (p Point) Sub(q Point) Point {
	return Point{X: p.X - q.X, Y: p.Y - q.Y}
}

// Mul returns the point scaled by s.
func (p Point) Mul(s float32) Point {
	return Point{X: p.X * s, Y: p.Y * s}
}

// Mid returns the midpoint of p and q.
func (p Point) Mid(q Point) Point {
	return Point{X: (p.X + q.X) / 2, Y: (p.Y + q.Y) / 2}
}

// Distance returns the Euclidean distance between two points.
func (p Point) Distance(q Point) float32 {
	return math32.Hypot(q.X-p.X, q.Y-p.Y)
}

// Lerp performs linear interpolation between p and q.
// t=0 returns p, t=1 returns q.
func (p Point) Lerp(q Point, t float32) Point {
	return Point{
		X: p.X + (q.X-p.X)*t,
		Y: p.Y + (q.Y-p.Y)*t,
	}
}
