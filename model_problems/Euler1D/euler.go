package Euler1D

import (
	"fmt"
	"math"

	"github.com/notargets/gofvm/fluids"
	"github.com/notargets/gofvm/riemann"
	"github.com/notargets/gofvm/utils"
)

/*
First order finite volume solver for the 1-D Euler equations on [0, XMax],
used to exercise the signal speed estimators and the HLL family fluxes on
Sod's shock tube. Cell averages live in Rho, RhoU, Ener with shape (K);
interface states are first order (piecewise constant), boundaries are
transmissive.
*/
type Euler struct {
	CFL, FinalTime, XMax float64
	K                    int // number of cells
	EOS                  *fluids.StiffenedGas
	FluxType             FluxType
	Estimator            riemann.EstimatorType
	X                    utils.Array // cell centers
	Rho, RhoU, Ener      utils.Array
	Time                 float64
	StepCount            int
}

func NewEuler(CFL, FinalTime, XMax float64, K int, EOS *fluids.StiffenedGas, ft FluxType, et riemann.EstimatorType) (c *Euler) {
	c = &Euler{
		CFL:       CFL,
		FinalTime: FinalTime,
		XMax:      XMax,
		K:         K,
		EOS:       EOS,
		FluxType:  ft,
		Estimator: et,
	}
	c.X = utils.NewArray(K)
	dx := XMax / float64(K)
	for i := 0; i < K; i++ {
		c.X.DataP[i] = (float64(i) + 0.5) * dx
	}
	c.InitializeSOD()
	fmt.Printf("Euler Equations in 1 Dimension\nSolving Sod's Shock Tube\n")
	fmt.Printf("Flux Type: %s, Signal Speeds: %s\n", ft.Print(), et.Print())
	fmt.Printf("CFL = %8.4f, Num Cells K = %d\n\n", CFL, K)
	return
}

func (c *Euler) InitializeSOD() {
	var (
		s   = c.EOS
		mid = 0.5 * c.XMax
	)
	c.Rho = utils.NewArray(c.K)
	c.RhoU = utils.NewArray(c.K)
	c.Ener = utils.NewArray(c.K)
	for i, x := range c.X.DataP {
		if x < mid {
			c.Rho.DataP[i] = 1
			c.Ener.DataP[i] = s.TotalEnergy(1, 1, 0)
		} else {
			c.Rho.DataP[i] = 0.125
			c.Ener.DataP[i] = s.TotalEnergy(0.1, 0.125, 0)
		}
	}
	c.Time, c.StepCount = 0, 0
}

// FaceStates builds the left/right states at the K+1 interfaces, first
// order with transmissive ghost cells at either end.
func (c *Euler) FaceStates() (fs riemann.FaceStates) {
	var (
		Nface = c.K + 1
		s     = c.EOS
	)
	fs = riemann.FaceStates{
		UL: utils.NewArray(Nface), UR: utils.NewArray(Nface),
		AL: utils.NewArray(Nface), AR: utils.NewArray(Nface),
		RhoL: utils.NewArray(Nface), RhoR: utils.NewArray(Nface),
		PL: utils.NewArray(Nface), PR: utils.NewArray(Nface),
		HL: utils.NewArray(Nface), HR: utils.NewArray(Nface),
		Gamma: s.Gamma,
	}
	cell := func(i int) int { // transmissive: clamp to the boundary cells
		if i < 0 {
			return 0
		}
		if i > c.K-1 {
			return c.K - 1
		}
		return i
	}
	for f := 0; f < Nface; f++ {
		kL, kR := cell(f-1), cell(f)
		fill := func(k int, U, A, Rho, P, H utils.Array) {
			var (
				rho, rhoU, E = c.Rho.DataP[k], c.RhoU.DataP[k], c.Ener.DataP[k]
			)
			U.DataP[f] = s.GetFlowFunction(rho, rhoU, E, fluids.Velocity)
			A.DataP[f] = s.GetFlowFunction(rho, rhoU, E, fluids.SoundSpeed)
			Rho.DataP[f] = rho
			P.DataP[f] = s.GetFlowFunction(rho, rhoU, E, fluids.StaticPressure)
			H.DataP[f] = s.GetFlowFunction(rho, rhoU, E, fluids.Enthalpy)
		}
		fill(kL, fs.UL, fs.AL, fs.RhoL, fs.PL, fs.HL)
		fill(kR, fs.UR, fs.AR, fs.RhoR, fs.PR, fs.HR)
	}
	return
}

// CalcDT is the CFL limited explicit time step from the fastest local wave.
func (c *Euler) CalcDT() (dt float64) {
	var (
		s       = c.EOS
		maxWave float64
	)
	for i := range c.Rho.DataP {
		rho, rhoU, E := c.Rho.DataP[i], c.RhoU.DataP[i], c.Ener.DataP[i]
		wave := math.Abs(s.GetFlowFunction(rho, rhoU, E, fluids.Velocity)) +
			s.GetFlowFunction(rho, rhoU, E, fluids.SoundSpeed)
		if wave > maxWave {
			maxWave = wave
		}
	}
	dx := c.XMax / float64(c.K)
	dt = c.CFL * dx / maxWave
	return
}

// Step advances the cell averages by one forward Euler update.
func (c *Euler) Step(dt float64) {
	var (
		dtOdx              = dt / (c.XMax / float64(c.K))
		fRho, fRhoU, fEner = c.InterfaceFlux(c.FaceStates())
	)
	for i := 0; i < c.K; i++ {
		c.Rho.DataP[i] -= dtOdx * (fRho.DataP[i+1] - fRho.DataP[i])
		c.RhoU.DataP[i] -= dtOdx * (fRhoU.DataP[i+1] - fRhoU.DataP[i])
		c.Ener.DataP[i] -= dtOdx * (fEner.DataP[i+1] - fEner.DataP[i])
	}
	c.Time += dt
	c.StepCount++
}

func (c *Euler) Run() {
	for c.Time < c.FinalTime {
		dt := c.CalcDT()
		if c.Time+dt > c.FinalTime {
			dt = c.FinalTime - c.Time
		}
		c.Step(dt)
		if c.StepCount%100 == 0 {
			fmt.Printf("time = %8.5f, step %d, dt = %8.5f\n", c.Time, c.StepCount, dt)
		}
	}
	fmt.Printf("Done: time = %8.5f in %d steps\n", c.Time, c.StepCount)
}
