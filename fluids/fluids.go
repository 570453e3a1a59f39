package fluids

import (
	"fmt"
	"math"
)

type FlowFunction uint8

func (pf FlowFunction) String() string {
	strings := []string{
		"Density",
		"Momentum",
		"Energy",
		"Velocity",
		"Static Pressure",
		"Sound Speed",
		"Enthalpy",
		"Internal Energy",
		"Mach",
	}
	return strings[int(pf)]
}

const (
	Density FlowFunction = iota
	Momentum
	Energy
	Velocity
	StaticPressure // 4
	SoundSpeed     // 5
	Enthalpy       // 6
	InternalEnergy // 7
	Mach           // 8
)

/*
StiffenedGas is the stiffened gas equation of state

	p = (gamma-1)*rho*e - gamma*PInf

PInf is the background pressure accounting for molecular attraction in
liquids. PInf = 0 recovers the ideal (calorically perfect) gas.
*/
type StiffenedGas struct {
	Gamma, PInf float64
}

func NewStiffenedGas(Gamma, PInf float64) (sg *StiffenedGas) {
	if Gamma <= 1 {
		panic(fmt.Errorf("ratio of specific heats must exceed 1, got %v", Gamma))
	}
	sg = &StiffenedGas{
		Gamma: Gamma,
		PInf:  PInf,
	}
	return
}

func NewIdealGas(Gamma float64) (sg *StiffenedGas) {
	return NewStiffenedGas(Gamma, 0)
}

// GetFlowFunction evaluates a derived quantity from the 1-D conservative
// state (rho, rhoU, E).
func (sg *StiffenedGas) GetFlowFunction(rho, rhoU, E float64, pf FlowFunction) (f float64) {
	var (
		GM1   = sg.Gamma - 1.
		oorho = 1. / rho
		q, p  float64
	)
	switch pf {
	case StaticPressure, SoundSpeed, Enthalpy, Mach, InternalEnergy:
		q = 0.5 * rhoU * rhoU * oorho
		p = GM1*(E-q) - sg.Gamma*sg.PInf
	}
	switch pf {
	case Density:
		f = rho
	case Momentum:
		f = rhoU
	case Energy:
		f = E
	case Velocity:
		f = rhoU * oorho
	case StaticPressure:
		f = p
	case SoundSpeed:
		f = math.Sqrt(sg.Gamma * (p + sg.PInf) * oorho)
	case Enthalpy:
		f = (E + p) * oorho
	case InternalEnergy:
		f = (p + sg.Gamma*sg.PInf) * oorho / GM1
	case Mach:
		C := math.Sqrt(sg.Gamma * (p + sg.PInf) * oorho)
		f = math.Abs(rhoU*oorho) / C
	}
	return
}

// TotalEnergy assembles E from primitive variables, the inverse of the
// StaticPressure flow function.
func (sg *StiffenedGas) TotalEnergy(p, rho, u float64) (E float64) {
	E = (p+sg.Gamma*sg.PInf)/(sg.Gamma-1.) + 0.5*rho*u*u
	return
}

// TotalEnthalpy is (E + p) / rho from primitive variables.
func (sg *StiffenedGas) TotalEnthalpy(p, rho, u float64) (H float64) {
	H = (sg.TotalEnergy(p, rho, u) + p) / rho
	return
}

// SoundSpeedPrim gives the speed of sound directly from p and rho.
func (sg *StiffenedGas) SoundSpeedPrim(p, rho float64) (a float64) {
	a = math.Sqrt(sg.Gamma * (p + sg.PInf) / rho)
	return
}
