package hex

import "math"

// nudge breaks ties when the segment runs exactly along a hex edge
const nudge = 1e-6

// Path returns the hexes a straight move from start to end passes through,
// in order, excluding start and including end. A zero-length move has an
// empty path.
func Path(start, end SlantPoint) []SlantPoint {
	n := start.Steps(end)
	if n == 0 {
		return nil
	}

	q0, r0, _ := start.cube()
	q1, r1, _ := end.cube()

	out := make([]SlantPoint, 0, n)
	for i := 1; i <= n; i++ {
		t := float64(i) / float64(n)
		fq := float64(q0) + float64(q1-q0)*t + nudge
		fr := float64(r0) + float64(r1-r0)*t + nudge
		out = append(out, roundCube(fq, fr, -fq-fr))
	}
	return out
}

func roundCube(fq, fr, fs float64) SlantPoint {
	q := math.Round(fq)
	r := math.Round(fr)
	s := math.Round(fs)

	dq := math.Abs(q - fq)
	dr := math.Abs(r - fr)
	ds := math.Abs(s - fs)

	switch {
	case dq > dr && dq > ds:
		q = -r - s
	case dr > ds:
		r = -q - s
	}

	// cube (q, r) back to slant: y = r, x = q + r
	return SlantPoint{X: int(q) + int(r), Y: int(r)}
}
