package geom

// DefaultTolerance is the point-spacing threshold, in canvas units, used by
// callers that have no reason to pick their own.
const DefaultTolerance = 2

// Simplify thins a captured point sequence: the first point is always kept,
// each following point is kept only if it lies at least tolerance away from
// the last kept point, and the final input point is always kept so the stroke
// ends where the pen lifted. Inputs of two points or fewer pass through
// unchanged. The input slice is not modified.
func Simplify(points []Point, tolerance float32) []Point {
	if len(points) <= 2 {
		return points
	}
	out := make([]Point, 0, len(points))
	out = append(out, points[0])
	last := points[0]
	for _, pt := range points[1 : len(points)-1] {
		if last.Distance(pt) < tolerance {
			continue
		}
		out = append(out, pt)
		last = pt
	}
	final := points[len(points)-1]
	if out[len(out)-1] != final {
		out = append(out, final)
	}
	return out
}

// Smooth converts a simplified point sequence into a continuous curve.
//
// Fewer than two points produce an empty path. Exactly two produce a single
// straight segment. With three or more, the curve starts with a quadratic
// whose control point is the first point itself, passes through the midpoints
// of consecutive point pairs with Catmull-Rom style tangents at the interior
// points, and finishes with a straight line to the true last point so the
// curve terminates exactly where the input does.
func Smooth(points []Point) Path {
	var path Path
	switch {
	case len(points) < 2:
		return path
	case len(points) == 2:
		path.moveTo(points[0])
		path.lineTo(points[1])
		return path
	}

	path.moveTo(points[0])
	path.quadTo(points[0], points[0].Mid(points[1]))
	for i := 1; i <= len(points)-2; i++ {
		tangent := points[i+1].Sub(points[i-1]).Mul(1.0 / 6.0)
		ctrl := points[i].Add(tangent)
		path.quadTo(ctrl, points[i].Mid(points[i+1]))
	}
	path.lineTo(points[len(points)-1])
	return path
}

// SmoothSimplified is the composition render code wants: thin the raw capture
// at the default tolerance, then smooth what remains.
func SmoothSimplified(points []Point) Path {
	return Smooth(Simplify(points, DefaultTolerance))
}
