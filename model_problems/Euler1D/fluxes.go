package Euler1D

import (
	"fmt"
	"math"
	"strings"

	"github.com/notargets/gofvm/riemann"
	"github.com/notargets/gofvm/utils"
)

type FluxType uint

const (
	FLUX_Rusanov FluxType = iota
	FLUX_HLL
	FLUX_HLLC
)

var (
	FluxNames = map[string]FluxType{
		"rusanov": FLUX_Rusanov,
		"hll":     FLUX_HLL,
		"hllc":    FLUX_HLLC,
	}
	FluxPrintNames = []string{"Rusanov", "HLL", "HLLC"}
)

func (ft FluxType) Print() (txt string) {
	txt = FluxPrintNames[ft]
	return
}

func NewFluxType(label string) (ft FluxType) {
	var (
		ok  bool
		err error
	)
	label = strings.ToLower(label)
	if ft, ok = FluxNames[label]; !ok {
		err = fmt.Errorf("unable to use flux named %s", label)
		panic(err)
	}
	return
}

// EulerFlux is the physical flux of the 1-D Euler equations for one state.
func EulerFlux(rho, rhoU, E, p float64) (F [3]float64) {
	u := rhoU / rho
	F = [3]float64{rhoU, rhoU*u + p, u * (E + p)}
	return
}

/*
InterfaceFlux assembles the numerical flux at every face from the wave speed
bounds of the configured estimator. fs holds the left/right face states, one
element per face.

The HLL and HLLC blends follow Toro Eqs. (10.21) and (10.71) - (10.73); the
Rusanov flux uses the symmetric speed bound as its dissipation coefficient.
*/
func (c *Euler) InterfaceFlux(fs riemann.FaceStates) (fRho, fRhoU, fEner utils.Array) {
	var (
		Nface  = fs.UL.Len()
		SL, SR utils.Array
	)
	fRho, fRhoU, fEner = utils.NewArray(Nface), utils.NewArray(Nface), utils.NewArray(Nface)
	SL, SR = fs.SignalSpeed(c.Estimator)
	var SStar utils.Array
	if c.FluxType == FLUX_HLLC {
		SStar = riemann.ComputeSStar(fs.UL, fs.UR, fs.PL, fs.PR, fs.RhoL, fs.RhoR, SL, SR)
	}
	for i := 0; i < Nface; i++ {
		var (
			rhoL, uL, pL = fs.RhoL.DataP[i], fs.UL.DataP[i], fs.PL.DataP[i]
			rhoR, uR, pR = fs.RhoR.DataP[i], fs.UR.DataP[i], fs.PR.DataP[i]
			EL           = c.EOS.TotalEnergy(pL, rhoL, uL)
			ER           = c.EOS.TotalEnergy(pR, rhoR, uR)
			qL           = [3]float64{rhoL, rhoL * uL, EL}
			qR           = [3]float64{rhoR, rhoR * uR, ER}
			FL           = EulerFlux(qL[0], qL[1], qL[2], pL)
			FR           = EulerFlux(qR[0], qR[1], qR[2], pR)
			sL, sR       = SL.DataP[i], SR.DataP[i]
			F            [3]float64
		)
		switch c.FluxType {
		case FLUX_Rusanov:
			sPlus := math.Max(math.Abs(sL), math.Abs(sR))
			for n := 0; n < 3; n++ {
				F[n] = 0.5*(FL[n]+FR[n]) - 0.5*sPlus*(qR[n]-qL[n])
			}
		case FLUX_HLL:
			switch {
			case sL >= 0:
				F = FL
			case sR <= 0:
				F = FR
			default:
				ooSd := 1. / (sR - sL)
				for n := 0; n < 3; n++ {
					F[n] = (sR*FL[n] - sL*FR[n] + sL*sR*(qR[n]-qL[n])) * ooSd
				}
			}
		case FLUX_HLLC:
			sStar := SStar.DataP[i]
			starState := func(rho, u, p, E, s float64) (qs [3]float64) {
				fac := rho * (s - u) / (s - sStar)
				qs[0] = fac
				qs[1] = fac * sStar
				qs[2] = fac * (E/rho + (sStar-u)*(sStar+p/(rho*(s-u))))
				return
			}
			switch {
			case sL >= 0:
				F = FL
			case sStar >= 0:
				qs := starState(rhoL, uL, pL, EL, sL)
				for n := 0; n < 3; n++ {
					F[n] = FL[n] + sL*(qs[n]-qL[n])
				}
			case sR > 0:
				qs := starState(rhoR, uR, pR, ER, sR)
				for n := 0; n < 3; n++ {
					F[n] = FR[n] + sR*(qs[n]-qR[n])
				}
			default:
				F = FR
			}
		}
		fRho.DataP[i], fRhoU.DataP[i], fEner.DataP[i] = F[0], F[1], F[2]
	}
	return
}
