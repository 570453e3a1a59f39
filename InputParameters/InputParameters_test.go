package InputParameters

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParameters(t *testing.T) {
	var data = []byte(`
Title: "Dense Gas Tube"
CFL: 0.5
FinalTime: 0.15
XMax: 2
K: 800
Gamma: 1.667
FluxType: hll
SignalSpeedType: einfeldt
`)
	ip := DefaultParameters()
	assert.NoError(t, ip.Parse(data))
	assert.Equal(t, "Dense Gas Tube", ip.Title)
	assert.Equal(t, 0.5, ip.CFL)
	assert.Equal(t, 800, ip.K)
	assert.Equal(t, "einfeldt", ip.SignalSpeedType)
	// Fields absent from the file keep their defaults
	assert.Equal(t, 0., ip.PInf)
}
