package fluids

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestStiffenedGas(t *testing.T) {
	// Ideal gas round trip: primitives -> conservative -> flow functions
	{
		var (
			gamma     = 1.4
			sg        = NewIdealGas(gamma)
			rho, u, p = 1.2, 0.8, 0.9
			E         = sg.TotalEnergy(p, rho, u)
			rhoU      = rho * u
			wantA     = math.Sqrt(gamma * p / rho)
			wantH     = (E + p) / rho
		)
		assert.InDelta(t, p, sg.GetFlowFunction(rho, rhoU, E, StaticPressure), 1.e-12)
		assert.InDelta(t, u, sg.GetFlowFunction(rho, rhoU, E, Velocity), 1.e-12)
		assert.InDelta(t, wantA, sg.GetFlowFunction(rho, rhoU, E, SoundSpeed), 1.e-12)
		assert.InDelta(t, wantH, sg.GetFlowFunction(rho, rhoU, E, Enthalpy), 1.e-12)
		assert.InDelta(t, u/wantA, sg.GetFlowFunction(rho, rhoU, E, Mach), 1.e-12)
		assert.InDelta(t, wantA, sg.SoundSpeedPrim(p, rho), 1.e-12)
		assert.InDelta(t, wantH, sg.TotalEnthalpy(p, rho, u), 1.e-12)
	}
	// Background pressure stiffens the sound speed
	{
		var (
			sg        = NewStiffenedGas(4.4, 6.e3)
			rho, u, p = 1000., 0., 1.e2
			E         = sg.TotalEnergy(p, rho, u)
		)
		assert.InDelta(t, p, sg.GetFlowFunction(rho, 0, E, StaticPressure), 1.e-8)
		a := sg.GetFlowFunction(rho, 0, E, SoundSpeed)
		assert.InDelta(t, math.Sqrt(4.4*(p+6.e3)/rho), a, 1.e-12)
		assert.Greater(t, a, NewIdealGas(4.4).SoundSpeedPrim(p, rho))
	}
	// Internal energy is consistent with total energy at rest
	{
		sg := NewIdealGas(1.4)
		rho, p := 0.5, 0.25
		E := sg.TotalEnergy(p, rho, 0)
		e := sg.GetFlowFunction(rho, 0, E, InternalEnergy)
		assert.InDelta(t, E/rho, e, 1.e-12)
	}
	// Gamma must exceed 1
	{
		assert.Panics(t, func() { NewIdealGas(1.0) })
	}
	// FlowFunction names
	{
		assert.Equal(t, "Sound Speed", SoundSpeed.String())
		assert.Equal(t, "Density", Density.String())
	}
}
