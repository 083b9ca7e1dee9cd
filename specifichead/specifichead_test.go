package specifichead

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSpecificHead(t *testing.T) {
	// Ho(d) = d + q²/(2·g·d²)
	assert.InDelta(t, 5.0+25./(2.*9.81*25.), SpecificHead(5, 5), 1.e-12)
	// Zero discharge degenerates to Ho(d) = d
	for _, d := range []float64{0.01, 1, 5, 10} {
		assert.Equal(t, d, SpecificHead(0, d))
	}
	assert.Equal(t, 0., CriticalDepth(0))
}

func TestCriticalDepth(t *testing.T) {
	// Fr = 1 exactly at the critical depth, which minimizes Ho
	for _, q := range []float64{0.5, 1, 5, 10} {
		dc := CriticalDepth(q)
		assert.InDelta(t, 1., Froude(q, dc), 1.e-12)
		assert.Less(t, SpecificHead(q, dc), SpecificHead(q, dc*1.01))
		assert.Less(t, SpecificHead(q, dc), SpecificHead(q, dc*0.99))
	}
}

func TestUpstreamDepth(t *testing.T) {
	assert.InDelta(t, 5.0510, UpstreamDepth(5, 5), 1.e-4)
	assert.InDelta(t, 2.2742, UpstreamDepth(5, 1), 1.e-4)
	assert.InDelta(t, 1.2742, DownstreamHead(3.2742099898063202, 2), 1.e-4)
	// ho = 0 has no finite upstream depth
	assert.True(t, math.IsInf(UpstreamDepth(5, 0), 1))
}

func TestFlowState(t *testing.T) {
	fs := NewFlowState(5, 2.2742099898063202)
	assert.InDelta(t, 2.1986, fs.Velocity, 1.e-4)
	assert.InDelta(t, 0.4655, fs.Froude, 1.e-4)
	assert.InDelta(t, fs.Depth+fs.Velocity*fs.Velocity/(2.*Gravity), fs.SpecificHead, 1.e-12)
	assert.Equal(t, Subcritical, fs.Branch())
	assert.Equal(t, Supercritical, NewFlowState(5, 0.5).Branch())
}

func TestNewCurve(t *testing.T) {
	var (
		err error
	)
	_, err = NewCurve(5, 0, 10, 100)
	assert.Error(t, err)
	_, err = NewCurve(5, -1, 10, 100)
	assert.Error(t, err)
	_, err = NewCurve(5, 1, 1, 100)
	assert.Error(t, err)
	_, err = NewCurve(5, 0.01, 10, 1)
	assert.Error(t, err)

	c, err := NewCurve(5, 0.01, 10, 100)
	assert.NoError(t, err)
	assert.Equal(t, 100, c.Depth.Len())
	assert.Equal(t, 0.01, c.Depth.AtVec(0))
	assert.Equal(t, 10., c.Depth.AtVec(99))

	// Ho falls to a single minimum at the critical sample, then rises
	var (
		hh = c.Ho.RawVector().Data
		ic = c.CriticalIndex()
	)
	assert.InDelta(t, CriticalDepth(5), c.Depth.AtVec(ic), c.Depth.AtVec(1)-c.Depth.AtVec(0))
	for i := 0; i < ic; i++ {
		assert.Greater(t, hh[i], hh[i+1])
	}
	for i := ic; i < len(hh)-1; i++ {
		assert.Less(t, hh[i], hh[i+1])
	}
}

func TestInvertRoundTrip(t *testing.T) {
	c, err := NewCurve(5, 0.01, 10, 2000)
	assert.NoError(t, err)
	for _, d := range []float64{2, 3, 5, 8} {
		assert.InDelta(t, d, c.Invert(SpecificHead(5, d), Subcritical), 0.01)
	}
	for _, d := range []float64{0.3, 0.8, 1.2} {
		assert.InDelta(t, d, c.Invert(SpecificHead(5, d), Supercritical), 0.01)
	}
}

func TestInvertClamping(t *testing.T) {
	c, err := NewCurve(5, 0.01, 10, 1000)
	assert.NoError(t, err)
	var (
		ic = c.CriticalIndex()
		dc = c.Depth.AtVec(ic)
	)
	// Targets below the critical specific head have no solution on either
	// branch and clamp to the critical sample
	assert.Equal(t, dc, c.Invert(1.0, Subcritical))
	assert.Equal(t, dc, c.Invert(1.0, Supercritical))
	// Targets beyond the sampled range clamp to the window ends
	assert.Equal(t, c.Depth.AtVec(999), c.Invert(1.e6, Subcritical))
	assert.Equal(t, c.Depth.AtVec(0), c.Invert(1.e6, Supercritical))
}

func TestInvertUndefinedHead(t *testing.T) {
	// q = 0 at ho = 0 leaves the upstream depth 0/0; the lookup propagates
	// NaN rather than failing
	c, err := NewCurve(0, 0.01, 10, 1000)
	assert.NoError(t, err)
	assert.True(t, math.IsNaN(UpstreamDepth(0, 0)))
	assert.True(t, math.IsNaN(c.Invert(UpstreamDepth(0, 0), Subcritical)))
	assert.True(t, math.IsNaN(c.Invert(math.NaN(), Supercritical)))
}

func TestInvertZeroDischarge(t *testing.T) {
	// Ho = d identically, so inversion is the identity on the sampled range
	c, err := NewCurve(0, 0.01, 10, 1000)
	assert.NoError(t, err)
	assert.Equal(t, 0, c.CriticalIndex())
	for _, ho := range []float64{0.5, 3, 9.99} {
		assert.InDelta(t, ho, c.Invert(ho, Subcritical), 1.e-9)
	}
}
