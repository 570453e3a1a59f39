package InputParameters

import (
	"fmt"

	"github.com/ghodss/yaml"
)

// Parameters obtained from the YAML case file
type Parameters struct {
	Title           string  `yaml:"Title"`
	CFL             float64 `yaml:"CFL"`
	FinalTime       float64 `yaml:"FinalTime"`
	XMax            float64 `yaml:"XMax"`
	K               int     `yaml:"K"` // number of cells
	Gamma           float64 `yaml:"Gamma"`
	PInf            float64 `yaml:"PInf"` // stiffened gas background pressure
	FluxType        string  `yaml:"FluxType"`
	SignalSpeedType string  `yaml:"SignalSpeedType"`
}

// DefaultParameters covers the standard Sod case.
func DefaultParameters() (ip *Parameters) {
	ip = &Parameters{
		Title:           "Sod Shock Tube",
		CFL:             0.9,
		FinalTime:       0.2,
		XMax:            1,
		K:               400,
		Gamma:           1.4,
		FluxType:        "hllc",
		SignalSpeedType: "davis",
	}
	return
}

func (ip *Parameters) Parse(data []byte) error {
	return yaml.Unmarshal(data, ip)
}

func (ip *Parameters) Print() {
	fmt.Printf("\"%s\"\t\t= Title\n", ip.Title)
	fmt.Printf("%8.5f\t\t= CFL\n", ip.CFL)
	fmt.Printf("%8.5f\t\t= FinalTime\n", ip.FinalTime)
	fmt.Printf("%8.5f\t\t= XMax\n", ip.XMax)
	fmt.Printf("[%d]\t\t\t= K (cells)\n", ip.K)
	fmt.Printf("%8.5f\t\t= Gamma\n", ip.Gamma)
	fmt.Printf("[%s]\t\t\t= Flux Type\n", ip.FluxType)
	fmt.Printf("[%s]\t\t= Signal Speed Estimator\n", ip.SignalSpeedType)
}
