package infogen

import "math"

// Marker is a bullet shape drawn in front of a list item.
type Marker int

const (
	// MarkerTriangle is a small right-pointing triangle.
	MarkerTriangle Marker = iota
	// MarkerSparkle is a four-pointed star.
	MarkerSparkle
)

// drawRegularPolygon adds a closed n-gon of radius r centred on (x, y).
func drawRegularPolygon(dc Canvas, n int, x, y, r, rotation float64) {
	angle := 2 * math.Pi / float64(n)
	for i := 0; i < n; i++ {
		a := rotation + angle*float64(i)
		px := x + r*math.Cos(a)
		py := y + r*math.Sin(a)
		if i == 0 {
			dc.MoveTo(px, py)
		} else {
			dc.LineTo(px, py)
		}
	}
	dc.ClosePath()
}

// drawStar adds a closed star with the given number of points, alternating
// between the outer and inner radius, first point straight up.
func drawStar(dc Canvas, points int, x, y, outer, inner float64) {
	for i := 0; i < points*2; i++ {
		a := float64(i)*math.Pi/float64(points) - math.Pi/2
		r := outer
		if i%2 == 1 {
			r = inner
		}
		px := x + r*math.Cos(a)
		py := y + r*math.Sin(a)
		if i == 0 {
			dc.MoveTo(px, py)
		} else {
			dc.LineTo(px, py)
		}
	}
	dc.ClosePath()
}

// addMarker adds the marker outline of size s (its full width) centred on
// (x, y) to the current path.
func addMarker(dc Canvas, m Marker, x, y, s float64) {
	switch m {
	case MarkerSparkle:
		drawStar(dc, 4, x, y, s/2, s/7)
	default:
		drawRegularPolygon(dc, 3, x, y, s/2, 0)
	}
}
