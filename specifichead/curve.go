package specifichead

import (
	"fmt"
	"math"
	"sort"

	"github.com/hydroflume/goch/utils"
)

// Curve holds the sampled specific-head diagram for a fixed discharge per
// unit width: depth samples in ascending order and Ho evaluated at each.
// For q > 0 the Ho samples fall to a single minimum at the critical depth
// and rise beyond it; for q = 0 the curve degenerates to Ho = d.
type Curve struct {
	Q         float64
	Depth, Ho utils.Vector
}

// NewCurve samples Ho(d) at sampleCount depths uniformly spaced over
// [depthMin, depthMax].
func NewCurve(q, depthMin, depthMax float64, sampleCount int) (c Curve, err error) {
	switch {
	case depthMin <= 0:
		err = fmt.Errorf("depthMin must be positive, have %v", depthMin)
		return
	case depthMax <= depthMin:
		err = fmt.Errorf("depthMax %v must exceed depthMin %v", depthMax, depthMin)
		return
	case sampleCount < 2:
		err = fmt.Errorf("need at least 2 samples, have %d", sampleCount)
		return
	}
	d := utils.NewVector(sampleCount).Linspace(depthMin, depthMax)
	ho := d.Copy().Apply(func(dd float64) float64 { return SpecificHead(q, dd) })
	c = Curve{Q: q, Depth: d, Ho: ho}
	return
}

// CriticalIndex is the sample index of the smallest Ho, the sampled stand-in
// for the critical depth. Index 0 when q = 0.
func (c Curve) CriticalIndex() int {
	return c.Ho.MinInd()
}

// Invert returns the depth at which Ho(depth) equals targetHo on the given
// branch of the curve, by linear interpolation between the bracketing
// samples. Each branch is monotone in depth, so the lookup is well defined
// there; targets outside the branch's Ho range clamp to the nearest branch
// endpoint. In particular a target below the critical specific head has no
// solution anywhere on the curve and clamps to the critical sample.
func (c Curve) Invert(targetHo float64, branch Branch) float64 {
	var (
		dd = c.Depth.RawVector().Data
		hh = c.Ho.RawVector().Data
		ic = c.CriticalIndex()
	)
	if branch == Supercritical {
		// Ho falls with depth on [0, ic]; reverse the window so interp
		// sees ascending Ho.
		n := ic + 1
		xs, ys := make([]float64, n), make([]float64, n)
		for i := 0; i < n; i++ {
			xs[i] = hh[ic-i]
			ys[i] = dd[ic-i]
		}
		return interp(targetHo, xs, ys)
	}
	return interp(targetHo, hh[ic:], dd[ic:])
}

// interp is a piecewise-linear table lookup over ascending xs, clamping to
// the table ends. An undefined lookup value stays undefined.
func interp(x float64, xs, ys []float64) float64 {
	var (
		n = len(xs)
	)
	if math.IsNaN(x) {
		return math.NaN()
	}
	if n == 1 || x <= xs[0] {
		return ys[0]
	}
	if x >= xs[n-1] {
		return ys[n-1]
	}
	j := sort.Search(n, func(i int) bool { return xs[i] > x }) - 1
	t := (x - xs[j]) / (xs[j+1] - xs[j])
	return ys[j] + t*(ys[j+1]-ys[j])
}
