package bezier

import (
	"github.com/chewxy/math32"

	"github.com/keenst/oxide-engine/internal/mathutil"
)

// DistanceSamples is the number of parameter values MinDistance checks,
// evenly spaced from t=0 to t=1 in steps of 0.01.
//
// The stroke drawn by the rasterizer is only as smooth as this sampling:
// near tight bends the estimate can exceed the true distance by up to half
// the chord between neighbouring samples.
const DistanceSamples = 101

// Distance returns the distance between p and B(t).
func (c *Curve) Distance(t float32, p mathutil.Vec2) float32 {
	return c.Evaluate(t).Dist(p)
}

// MinDistance estimates the distance from p to the curve by taking the
// minimum over DistanceSamples uniformly spaced parameter values.
func (c *Curve) MinDistance(p mathutil.Vec2) float32 {
	d, _ := c.sampleMin(p)
	return d
}

func (c *Curve) sampleMin(p mathutil.Vec2) (dist, at float32) {
	dist = math32.MaxFloat32
	for i := range DistanceSamples {
		t := float32(i) / (DistanceSamples - 1)
		if d := c.Distance(t, p); d < dist {
			dist, at = d, t
		}
	}
	return dist, at
}

// Newton refinement limits.
const (
	maxNewtonSteps = 8
	newtonTol      = 1e-6
	newtonMinSlope = 1e-9
)

// MinDistanceRefined starts from the MinDistance sample nearest to p and
// refines the parameter with a few Newton steps on the squared-distance
// gradient (B(t)-p)·B'(t). The refinement gives up as soon as a step is
// not finite or the slope vanishes. The result is never larger than
// MinDistance(p).
func (c *Curve) MinDistanceRefined(p mathutil.Vec2) float32 {
	best, t := c.sampleMin(p)
	for range maxNewtonSteps {
		diff := c.Evaluate(t).Sub(p)
		d1 := c.Derivative(t)
		f := diff.Dot(d1)
		df := d1.Dot(d1) + diff.Dot(c.SecondDerivative(t))
		if !(math32.Abs(df) > newtonMinSlope) {
			break
		}
		next := t - f/df
		if math32.IsNaN(next) || math32.IsInf(next, 0) {
			break
		}
		next = min(max(next, 0), 1)
		if d := c.Distance(next, p); d < best {
			best = d
		}
		if math32.Abs(next-t) < newtonTol {
			break
		}
		t = next
	}
	return best
}
