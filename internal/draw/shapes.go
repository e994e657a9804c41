package draw

import "math"

// FillCircle fills an ellipse that is a circle of radius r in logical space.
// Horizontal and vertical scales may differ, so the test is done per axis.
func (c *Canvas) FillCircle(cx, cy, r float64, col Color) {
	rx := r * c.scaleX
	ry := r * c.scaleY
	if rx <= 0 || ry <= 0 {
		return
	}
	pcx := cx * c.scaleX
	pcy := cy * c.scaleY

	x0 := int(math.Floor(pcx - rx))
	x1 := int(math.Ceil(pcx + rx))
	y0 := int(math.Floor(pcy - ry))
	y1 := int(math.Ceil(pcy + ry))

	hit := false
	for y := y0; y <= y1; y++ {
		dy := (float64(y) + 0.5 - pcy) / ry
		for x := x0; x <= x1; x++ {
			dx := (float64(x) + 0.5 - pcx) / rx
			if dx*dx+dy*dy <= 1 {
				c.setPixel(x, y, col)
				hit = true
			}
		}
	}

	// Too small to cover a pixel center; keep it visible as one dot.
	if !hit {
		c.SetFloat(cx, cy, col)
	}
}

// FillRect fills the axis-aligned rectangle [x0,x1] x [y0,y1] in logical space.
func (c *Canvas) FillRect(x0, y0, x1, y1 float64, col Color) {
	px0 := int(math.Round(x0 * c.scaleX))
	px1 := int(math.Round(x1 * c.scaleX))
	py0 := int(math.Round(y0 * c.scaleY))
	py1 := int(math.Round(y1 * c.scaleY))
	for y := py0; y <= py1; y++ {
		for x := px0; x <= px1; x++ {
			c.setPixel(x, y, col)
		}
	}
}

// RegularPolygon fills points with a polygon of n vertices around (cx, cy),
// scaling each vertex radius by the matching jitter factor when given.
// The slice comes from BorrowPoints and is valid until the next call.
func (c *Canvas) RegularPolygon(cx, cy, r float64, n int, jitter []float64) []Point {
	pts := c.BorrowPoints(n)
	for i := range pts {
		rr := r
		if i < len(jitter) {
			rr *= jitter[i]
		}
		angle := 2 * math.Pi * float64(i) / float64(n)
		pts[i] = Point{X: cx + rr*math.Cos(angle), Y: cy + rr*math.Sin(angle)}
	}
	return pts
}
