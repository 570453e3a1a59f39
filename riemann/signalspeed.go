package riemann

import (
	"fmt"
	"math"
	"strings"

	"github.com/notargets/gofvm/utils"
)

/*
Wave speed estimates for approximate Riemann solvers of the HLL family.

Each estimator maps left/right interface states to bounds (SL, SR) on the
fastest left and right going signals, elementwise over buffers of any shape.
Formula references are to Toro, "Riemann Solvers and Numerical Methods for
Fluid Dynamics", 3rd ed.

Numeric degeneracies (zero denominators, negative radicands from non-physical
states) are not validated or recovered here - they propagate as IEEE-754
Inf/NaN for the flux assembler to detect.
*/

type EstimatorType uint

const (
	SPEED_Arithmetic EstimatorType = iota
	SPEED_Rusanov
	SPEED_Davis
	SPEED_DavisRoe
	SPEED_Einfeldt
	SPEED_Toro
)

var (
	EstimatorNames = map[string]EstimatorType{
		"arithmetic": SPEED_Arithmetic,
		"rusanov":    SPEED_Rusanov,
		"davis":      SPEED_Davis,
		"davisroe":   SPEED_DavisRoe,
		"einfeldt":   SPEED_Einfeldt,
		"toro":       SPEED_Toro,
	}
	EstimatorPrintNames = []string{"Arithmetic", "Rusanov", "Davis", "Davis-Roe", "Einfeldt", "Toro"}
)

func (et EstimatorType) Print() (txt string) {
	txt = EstimatorPrintNames[et]
	return
}

func NewEstimatorType(label string) (et EstimatorType) {
	var (
		ok  bool
		err error
	)
	label = strings.ToLower(label)
	if et, ok = EstimatorNames[label]; !ok {
		err = fmt.Errorf("unable to use signal speed estimator named %s", label)
		panic(err)
	}
	return
}

// FaceStates carries the superset of interface quantities any estimator can
// need. Variants read only the fields their formula uses, so the caller fills
// the struct once and swaps estimators freely.
type FaceStates struct {
	UL, UR     utils.Array // normal velocity
	AL, AR     utils.Array // speed of sound
	RhoL, RhoR utils.Array // density
	PL, PR     utils.Array // pressure
	HL, HR     utils.Array // total enthalpy
	Gamma      float64
}

func (fs FaceStates) SignalSpeed(et EstimatorType) (SL, SR utils.Array) {
	switch et {
	case SPEED_Arithmetic:
		SL, SR = SignalSpeedArithmetic(fs.UL, fs.UR, fs.AL, fs.AR)
	case SPEED_Rusanov:
		SL, SR = SignalSpeedRusanov(fs.UL, fs.UR, fs.AL, fs.AR)
	case SPEED_Davis:
		SL, SR = SignalSpeedDavis(fs.UL, fs.UR, fs.AL, fs.AR)
	case SPEED_DavisRoe:
		SL, SR = SignalSpeedDavisRoe(fs.UL, fs.UR, fs.RhoL, fs.RhoR, fs.HL, fs.HR, fs.Gamma)
	case SPEED_Einfeldt:
		SL, SR = SignalSpeedEinfeldt(fs.UL, fs.UR, fs.AL, fs.AR, fs.RhoL, fs.RhoR)
	case SPEED_Toro:
		SL, SR = SignalSpeedToro(fs.UL, fs.UR, fs.AL, fs.AR, fs.RhoL, fs.RhoR, fs.PL, fs.PR, fs.Gamma)
	default:
		panic(fmt.Errorf("unknown signal speed estimator %d", et))
	}
	return
}

// SignalSpeedArithmetic bounds the characteristics by both the simple-mean
// state and the raw left/right states.
func SignalSpeedArithmetic(uL, uR, aL, aR utils.Array) (SL, SR utils.Array) {
	SL = uL.Copy().Apply4(uR, aL, aR, func(ul, ur, al, ar float64) float64 {
		uMean, aMean := 0.5*(ul+ur), 0.5*(al+ar)
		return math.Min(uMean-aMean, ul-al)
	})
	SR = uR.Copy().Apply4(uL, aL, aR, func(ur, ul, al, ar float64) float64 {
		uMean, aMean := 0.5*(ul+ur), 0.5*(al+ar)
		return math.Max(uMean+aMean, ur+ar)
	})
	return
}

// SignalSpeedRusanov is the maximally dissipative single speed bound,
// SL = -SR always.
func SignalSpeedRusanov(uL, uR, aL, aR utils.Array) (SL, SR utils.Array) {
	SR = uL.Copy().Apply4(uR, aL, aR, func(ul, ur, al, ar float64) float64 {
		return math.Max(math.Abs(ul)+al, math.Abs(ur)+ar)
	})
	SL = SR.Copy().Scale(-1)
	return
}

// SignalSpeedDavis is the direct extremal characteristic bound, Toro Eq. (10.48).
func SignalSpeedDavis(uL, uR, aL, aR utils.Array) (SL, SR utils.Array) {
	SL = uL.Copy().Apply4(uR, aL, aR, func(ul, ur, al, ar float64) float64 {
		return math.Min(ul-al, ur-ar)
	})
	SR = uL.Copy().Apply4(uR, aL, aR, func(ul, ur, al, ar float64) float64 {
		return math.Max(ul+al, ur+ar)
	})
	return
}

// SignalSpeedDavisRoe bounds the acoustic speeds of the Roe averaged state.
// A negative radicand in the Roe sound speed yields NaN, flagging a
// non-physical input state.
func SignalSpeedDavisRoe(uL, uR, rhoL, rhoR, hL, hR utils.Array, gamma float64) (SL, SR utils.Array) {
	roe := func(ul, ur, rl, rr, HL, HR float64) (uRoe, aRoe float64) {
		srL, srR := math.Sqrt(rl), math.Sqrt(rr)
		ooDens := 1. / (srL + srR)
		uRoe = (srL*ul + srR*ur) * ooDens
		hRoe := (srL*HL + srR*HR) * ooDens
		aRoe = math.Sqrt((gamma - 1) * (hRoe - 0.5*uRoe*uRoe))
		return
	}
	SL = uL.Copy().Apply6(uR, rhoL, rhoR, hL, hR, func(ul, ur, rl, rr, HL, HR float64) float64 {
		uRoe, aRoe := roe(ul, ur, rl, rr, HL, HR)
		return uRoe - aRoe
	})
	SR = uL.Copy().Apply6(uR, rhoL, rhoR, hL, hR, func(ul, ur, rl, rr, HL, HR float64) float64 {
		uRoe, aRoe := roe(ul, ur, rl, rr, HL, HR)
		return uRoe + aRoe
	})
	return
}

// SignalSpeedEinfeldt refines the Roe averaged sound speed with a velocity
// jump correction, Toro Eqs. (10.52) - (10.54).
func SignalSpeedEinfeldt(uL, uR, aL, aR, rhoL, rhoR utils.Array) (SL, SR utils.Array) {
	einfeldt := func(ul, ur, al, ar, rl, rr float64) (uBar, dBar float64) {
		srL, srR := math.Sqrt(rl), math.Sqrt(rr)
		ooDens := 1. / (srL + srR)
		eta2 := 0.5 * srL * srR * ooDens * ooDens
		uBar = (srL*ul + srR*ur) * ooDens
		dBar = math.Sqrt((srL*al*al+srR*ar*ar)*ooDens + eta2*(ur-ul)*(ur-ul))
		return
	}
	SL = uL.Copy().Apply6(uR, aL, aR, rhoL, rhoR, func(ul, ur, al, ar, rl, rr float64) float64 {
		uBar, dBar := einfeldt(ul, ur, al, ar, rl, rr)
		return uBar - dBar
	})
	SR = uL.Copy().Apply6(uR, aL, aR, rhoL, rhoR, func(ul, ur, al, ar, rl, rr float64) float64 {
		uBar, dBar := einfeldt(ul, ur, al, ar, rl, rr)
		return uBar + dBar
	})
	return
}

// SignalSpeedToro is the two-rarefaction/two-shock hybrid estimate,
// Toro Eqs. (10.59) - (10.60). The shock-regime q factor is selected per
// element - different interfaces can be in different regimes within one call.
func SignalSpeedToro(uL, uR, aL, aR, rhoL, rhoR, pL, pR utils.Array, gamma float64) (SL, SR utils.Array) {
	pStar := EstimatePressure(uL, uR, aL, aR, rhoL, rhoR, pL, pR)
	gammaQ := (gamma + 1) * 0.5 / gamma
	// For pStar <= p the radicand is still >= (gamma-1)/(2*gamma) > 0, so
	// evaluating both branches before blending introduces no NaN.
	q := func(pstar, p float64) float64 {
		var shock float64
		if pstar > p {
			shock = 1
		}
		return (1 - shock) + shock*math.Sqrt(1+gammaQ*(pstar/p-1))
	}
	SL = uL.Copy().Apply4(aL, pL, pStar, func(ul, al, pl, pstar float64) float64 {
		return ul - al*q(pstar, pl)
	})
	SR = uR.Copy().Apply4(aR, pR, pStar, func(ur, ar, pr, pstar float64) float64 {
		return ur + ar*q(pstar, pr)
	})
	return
}

// ComputeSStar estimates the speed of the intermediate (contact) wave,
// Toro Eq. (10.70). A zero denominator (SL = uL and SR = uR simultaneously)
// surfaces as Inf or NaN - it signals an invalid speed estimate pairing
// upstream and is deliberately not clamped.
func ComputeSStar(uL, uR, pL, pR, rhoL, rhoR, SL, SR utils.Array) (SStar utils.Array) {
	SStar = uL.Copy().Apply8(uR, pL, pR, rhoL, rhoR, SL, SR,
		func(ul, ur, pl, pr, rl, rr, sl, sr float64) float64 {
			deltaUL := sl - ul
			deltaUR := sr - ur
			denom := rl*deltaUL - rr*deltaUR
			return (pr - pl + rl*ul*deltaUL - rr*ur*deltaUR) / denom
		})
	return
}

// EstimatePressure is the PVRS star-region pressure estimate from the
// linearized primitive-variable Riemann solution, Toro Eq. (10.67),
// floored at zero - physical pressures cannot be negative.
func EstimatePressure(uL, uR, aL, aR, rhoL, rhoR, pL, pR utils.Array) (pStar utils.Array) {
	pStar = uL.Copy().Apply8(uR, aL, aR, rhoL, rhoR, pL, pR,
		func(ul, ur, al, ar, rl, rr, pl, pr float64) float64 {
			rhoBar := 0.5 * (rl + rr)
			aBar := 0.5 * (al + ar)
			pPVRS := 0.5*(pl+pr) - 0.5*(ur-ul)*rhoBar*aBar
			return math.Max(0, pPVRS)
		})
	return
}
