// Package specifichead implements the specific-head relation for steady
// open-channel flow with a rectangular section of unit width. The specific
// head is the energy head measured from the channel bottom,
//
//	Ho(d) = d + q²/(2·g·d²)
//
// for discharge per unit width q and depth d. For fixed q > 0 the relation
// has two branches joined at the critical depth: a deep, slow subcritical
// branch (Fr < 1) and a shallow, fast supercritical branch (Fr > 1).
package specifichead

import (
	"math"

	"github.com/hydroflume/goch/utils"
)

// Gravity is the gravitational acceleration [m/s²]
const Gravity = 9.81

// SpecificHead evaluates Ho(d) = d + q²/(2·g·d²). At d = 0 the velocity
// head is undefined and the result is ±Inf/NaN, matching q/d.
func SpecificHead(q, d float64) float64 {
	return d + utils.POW(q, 2)/(2.*Gravity*utils.POW(d, 2))
}

// Velocity is the mean flow velocity U = q/d [m/s]
func Velocity(q, d float64) float64 {
	return q / d
}

// Froude is the ratio of flow velocity to gravity-wave celerity,
// Fr = U/√(g·d). Fr < 1 is subcritical flow, Fr > 1 supercritical.
func Froude(q, d float64) float64 {
	return Velocity(q, d) / math.Sqrt(Gravity*d)
}

// CriticalDepth is the depth minimizing Ho for a given q, d_c = (q²/g)^⅓,
// where Fr = 1. It separates the two branches of the specific-head curve.
func CriticalDepth(q float64) float64 {
	return math.Cbrt(utils.POW(q, 2) / Gravity)
}

// UpstreamDepth derives the approaching-flow depth from the channel bottom
// elevation ho: d1 = ho + q²/(2·g·ho²). The bottom elevation stands in for
// the depth inside the velocity-head term; at ho = 0 the result is +Inf.
func UpstreamDepth(q, ho float64) float64 {
	return ho + utils.POW(q, 2)/(2.*Gravity*utils.POW(ho, 2))
}

// DownstreamHead is the specific head after a signed step deltaH in the
// channel bottom: Ho2 = Ho1 − deltaH.
func DownstreamHead(Ho1, deltaH float64) float64 {
	return Ho1 - deltaH
}

// Branch names one of the two monotone limbs of the specific-head curve.
type Branch uint8

const (
	Subcritical   Branch = iota // d > d_c, Ho increasing with depth
	Supercritical               // d < d_c, Ho decreasing with depth
)

func (b Branch) String() string {
	if b == Supercritical {
		return "supercritical"
	}
	return "subcritical"
}

// FlowState bundles the derived quantities of a flow at one station.
type FlowState struct {
	Depth        float64 // d [m]
	Velocity     float64 // U = q/d [m/s]
	Froude       float64 // U/√(g·d) [-]
	SpecificHead float64 // d + U²/(2·g) [m]
}

// NewFlowState derives velocity, Froude number and specific head from the
// discharge per unit width and the depth. A zero depth propagates NaN/Inf.
func NewFlowState(q, d float64) FlowState {
	return FlowState{
		Depth:        d,
		Velocity:     Velocity(q, d),
		Froude:       Froude(q, d),
		SpecificHead: SpecificHead(q, d),
	}
}

// Branch reports which limb of the curve the state sits on.
func (fs FlowState) Branch() Branch {
	if fs.Froude > 1 {
		return Supercritical
	}
	return Subcritical
}
