package ChannelStep1D

import (
	"fmt"
	"io"
	"math"
	"os"
	"sync"
	"time"

	"github.com/notargets/avs/chart2d"
	utils2 "github.com/notargets/avs/utils"

	"github.com/hydroflume/goch/specifichead"
)

// ChannelStep models steady flow approaching a step up or down in the
// bottom of an open channel: the specific head downstream of the step is
// the upstream head less the bottom elevation change, and the downstream
// depth follows from inverting the specific-head curve on the branch the
// approaching flow is on.
type ChannelStep struct {
	// Input parameters
	Q, Ho, DeltaH      float64 // discharge per unit width, bottom elevation, elevation change
	DepthMin, DepthMax float64
	SampleCount        int
	// Solution
	Curve                specifichead.Curve
	Upstream, Downstream specifichead.FlowState
	Head1, Head2         float64 // specific head on either side of the step
	PlotOnce             sync.Once
	headChart            *chart2d.Chart2D
	profileChart         *chart2d.Chart2D
	colorMap             *utils2.ColorMap
}

func NewChannelStep(q, ho, deltaH, depthMin, depthMax float64, sampleCount int) *ChannelStep {
	return &ChannelStep{
		Q:           q,
		Ho:          ho,
		DeltaH:      deltaH,
		DepthMin:    depthMin,
		DepthMax:    depthMax,
		SampleCount: sampleCount,
	}
}

// Solve builds the specific-head curve and the flow states on either side
// of the step. Repeated calls with the same inputs reproduce the same
// solution.
func (c *ChannelStep) Solve() (err error) {
	if c.Curve, err = specifichead.NewCurve(c.Q, c.DepthMin, c.DepthMax, c.SampleCount); err != nil {
		return err
	}
	d1 := specifichead.UpstreamDepth(c.Q, c.Ho)
	c.Upstream = specifichead.NewFlowState(c.Q, d1)
	c.Head1 = c.Ho + d1
	c.Head2 = specifichead.DownstreamHead(c.Head1, c.DeltaH)
	d2 := c.Curve.Invert(c.Head2, c.Upstream.Branch())
	c.Downstream = specifichead.NewFlowState(c.Q, d2)
	return nil
}

// Profile is the schematic channel geometry: the bottom polyline across the
// step and the water-surface spans over the approaching and downstream
// reaches.
type Profile struct {
	BedX, BedY [4]float64
	UpX, UpY   [2]float64 // approaching water surface
	DnX, DnY   [2]float64 // downstream water surface
}

func (c *ChannelStep) Profile() (p Profile) {
	var (
		ho1 = c.Ho
		ho2 = c.Ho + c.DeltaH
	)
	p.BedX = [4]float64{0, 1, 2, 3}
	p.BedY = [4]float64{ho1, ho1, ho2, ho2}
	p.UpX = [2]float64{0, 1}
	p.UpY = [2]float64{ho1 + c.Upstream.Depth, ho1 + c.Upstream.Depth}
	p.DnX = [2]float64{2, 3}
	p.DnY = [2]float64{ho2 + c.Downstream.Depth, ho2 + c.Downstream.Depth}
	return
}

// Report writes the six flow parameters to two decimal places.
func (c *ChannelStep) Report(w io.Writer) {
	fmt.Fprintf(w, "Depth of approaching flow: %.2f\n", c.Upstream.Depth)
	fmt.Fprintf(w, "Velocity of approaching flow: %.2f\n", c.Upstream.Velocity)
	fmt.Fprintf(w, "Froude number of approaching flow: %.2f\n", c.Upstream.Froude)
	fmt.Fprintf(w, "Depth of downstream flow: %.2f\n", c.Downstream.Depth)
	fmt.Fprintf(w, "Velocity of downstream flow: %.2f\n", c.Downstream.Velocity)
	fmt.Fprintf(w, "Froude number of downstream flow: %.2f\n", c.Downstream.Froude)
}

func (c *ChannelStep) Run(showGraph bool, graphDelay ...time.Duration) {
	if err := c.Solve(); err != nil {
		panic(err)
	}
	fmt.Printf("q = %8.4f, ho = %8.4f, deltaH = %8.4f\n", c.Q, c.Ho, c.DeltaH)
	fmt.Printf("Ho1 = %8.4f, Ho2 = %8.4f, %s approach\n",
		c.Head1, c.Head2, c.Upstream.Branch())
	c.Report(os.Stdout)
	c.Plot(showGraph, graphDelay)
}

func (c *ChannelStep) Plot(showGraph bool, graphDelay []time.Duration) {
	if !showGraph {
		return
	}
	c.PlotOnce.Do(func() {
		var (
			hoMax = float32(1.5 * math.Max(c.Head1, c.Curve.Ho.AtVec(c.SampleCount-1)))
			elMax = float32(c.Ho + math.Max(c.Upstream.Depth, c.Downstream.Depth) + 2)
		)
		c.headChart = chart2d.NewChart2D(1280, 1024,
			float32(c.Curve.Depth.Min()), float32(c.Curve.Depth.Max()), 0, hoMax)
		c.profileChart = chart2d.NewChart2D(1280, 1024, 0, 3, 0, elMax)
		c.colorMap = utils2.NewColorMap(0, 3, 1)
		go c.headChart.Plot()
		go c.profileChart.Plot()
	})

	name := fmt.Sprintf("q = %.2f", c.Q)
	if err := c.headChart.AddSeries(name, c.Curve.Depth.RawVector().Data, c.Curve.Ho.RawVector().Data,
		chart2d.NoGlyph, chart2d.Solid, c.colorMap.GetRGB(0)); err != nil {
		panic("unable to add graph series")
	}
	if err := c.headChart.AddSeries("P1", []float64{c.Upstream.Depth}, []float64{c.Head1},
		chart2d.CircleGlyph, chart2d.NoLine, c.colorMap.GetRGB(1)); err != nil {
		panic("unable to add graph series")
	}
	if err := c.headChart.AddSeries("P2", []float64{c.Downstream.Depth}, []float64{c.Head2},
		chart2d.XGlyph, chart2d.NoLine, c.colorMap.GetRGB(2)); err != nil {
		panic("unable to add graph series")
	}

	p := c.Profile()
	if err := c.profileChart.AddSeries("bottom", p.BedX[:], p.BedY[:],
		chart2d.NoGlyph, chart2d.Solid, c.colorMap.GetRGB(0)); err != nil {
		panic("unable to add graph series")
	}
	if err := c.profileChart.AddSeries("surface1", p.UpX[:], p.UpY[:],
		chart2d.NoGlyph, chart2d.Dashed, c.colorMap.GetRGB(1)); err != nil {
		panic("unable to add graph series")
	}
	if err := c.profileChart.AddSeries("surface2", p.DnX[:], p.DnY[:],
		chart2d.NoGlyph, chart2d.Dashed, c.colorMap.GetRGB(2)); err != nil {
		panic("unable to add graph series")
	}
	if len(graphDelay) != 0 {
		time.Sleep(graphDelay[0])
	}
}
