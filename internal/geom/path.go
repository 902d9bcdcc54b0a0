package geom

// PathOp identifies a single path command.
type PathOp uint8

const (
	MoveTo PathOp = iota
	LineTo
	QuadTo // quadratic bezier: control point then end point
)

// Segment is one command of a path. Ctrl is only meaningful for QuadTo.
type Segment struct {
	Op   PathOp
	Ctrl Point
	End  Point
}

// Path is an ordered list of segments describing a continuous curve.
// The zero value is an empty path that renders nothing.
type Path struct {
	Segments []Segment
}

// Empty reports whether the path has no segments.
func (p Path) Empty() bool {
	return len(p.Segments) == 0
}

func (p *Path) moveTo(pt Point) {
	p.Segments = append(p.Segments, Segment{Op: MoveTo, End: pt})
}

func (p *Path) lineTo(pt Point) {
	p.Segments = append(p.Segments, Segment{Op: LineTo, End: pt})
}

func (p *Path) quadTo(ctrl, end Point) {
	p.Segments = append(p.Segments, Segment{Op: QuadTo, Ctrl: ctrl, End: end})
}

// End returns the final point of the path. Only valid on a non-empty path.
func (p Path) End() Point {
	return p.Segments[len(p.Segments)-1].End
}

// quadEval evaluates a quadratic bezier from p0 through ctrl to p1 at t.
func quadEval(p0, ctrl, p1 Point, t float32) Point {
	a := p0.Lerp(ctrl, t)
	b := ctrl.Lerp(p1, t)
	return a.Lerp(b, t)
}

// Flatten expands the path into a polyline, subdividing each quadratic
// segment into stepsPerQuad chords. Line segments pass through unchanged.
// Intended for presentation layers that can only draw straight segments;
// the polyline starts and ends exactly where the path does.
func (p Path) Flatten(stepsPerQuad int) []Point {
	if p.Empty() {
		return nil
	}
	if stepsPerQuad < 1 {
		stepsPerQuad = 1
	}
	out := make([]Point, 0, len(p.Segments)*stepsPerQuad)
	var cur Point
	for _, s := range p.Segments {
		switch s.Op {
		case MoveTo:
			cur = s.End
			out = append(out, cur)
		case LineTo:
			cur = s.End
			out = append(out, cur)
		case QuadTo:
			for i := 1; i < stepsPerQuad; i++ {
				t := float32(i) / float32(stepsPerQuad)
				out = append(out, quadEval(cur, s.Ctrl, s.End, t))
			}
			cur = s.End
			out = append(out, cur)
		}
	}
	return out
}
