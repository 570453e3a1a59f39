/*
Copyright © 2020 NAME HERE <EMAIL ADDRESS>

Licensed under the Apache License, Version 2.0 (the "License");
you may not use this file except in compliance with the License.
You may obtain a copy of the License at

    http://www.apache.org/licenses/LICENSE-2.0

Unless required by applicable law or agreed to in writing, software
distributed under the License is distributed on an "AS IS" BASIS,
WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
See the License for the specific language governing permissions and
limitations under the License.
*/
package cmd

import (
	"fmt"
	"os"

	"github.com/pkg/profile"
	"github.com/spf13/cobra"

	"github.com/notargets/gofvm/InputParameters"
	"github.com/notargets/gofvm/fluids"
	"github.com/notargets/gofvm/model_problems/Euler1D"
	"github.com/notargets/gofvm/riemann"
)

// shocktubeCmd runs the Sod shock tube model problem
var shocktubeCmd = &cobra.Command{
	Use:   "shocktube",
	Short: "Solve Sod's shock tube with a configurable flux and wave speed estimator",
	Long: `Solve Sod's shock tube with a configurable flux and wave speed estimator.

Example case file:
########################################
Title: "Sod Shock Tube"
CFL: 0.9
FinalTime: 0.2
XMax: 1
K: 400
Gamma: 1.4
FluxType: hllc          # rusanov, hll, hllc
SignalSpeedType: davis  # arithmetic, rusanov, davis, davisroe, einfeldt, toro
########################################`,
	Run: func(cmd *cobra.Command, args []string) {
		ip := processInput(cmd)
		if prof, _ := cmd.Flags().GetBool("profile"); prof {
			defer profile.Start(profile.CPUProfile).Stop()
		}
		c := Euler1D.NewEuler(ip.CFL, ip.FinalTime, ip.XMax, ip.K,
			fluids.NewStiffenedGas(ip.Gamma, ip.PInf),
			Euler1D.NewFluxType(ip.FluxType), riemann.NewEstimatorType(ip.SignalSpeedType))
		c.Run()
	},
}

func processInput(cmd *cobra.Command) (ip *InputParameters.Parameters) {
	ip = InputParameters.DefaultParameters()
	if icFile, _ := cmd.Flags().GetString("inputConditionsFile"); len(icFile) != 0 {
		data, err := os.ReadFile(icFile)
		if err != nil {
			fmt.Printf("error: %s\n", err.Error())
			os.Exit(1)
		}
		if err = ip.Parse(data); err != nil {
			fmt.Printf("error: %s\n", err.Error())
			os.Exit(1)
		}
	}
	// Command line flags override the case file
	if cmd.Flags().Changed("K") {
		ip.K, _ = cmd.Flags().GetInt("K")
	}
	if cmd.Flags().Changed("CFL") {
		ip.CFL, _ = cmd.Flags().GetFloat64("CFL")
	}
	if cmd.Flags().Changed("finalTime") {
		ip.FinalTime, _ = cmd.Flags().GetFloat64("finalTime")
	}
	if cmd.Flags().Changed("flux") {
		ip.FluxType, _ = cmd.Flags().GetString("flux")
	}
	if cmd.Flags().Changed("speeds") {
		ip.SignalSpeedType, _ = cmd.Flags().GetString("speeds")
	}
	ip.Print()
	return
}

func init() {
	rootCmd.AddCommand(shocktubeCmd)
	shocktubeCmd.Flags().StringP("inputConditionsFile", "I", "", "YAML case file, see help for an example")
	shocktubeCmd.Flags().IntP("K", "K", 400, "number of cells")
	shocktubeCmd.Flags().Float64("CFL", 0.9, "CFL - increase for speedup, decrease for stability")
	shocktubeCmd.Flags().Float64("finalTime", 0.2, "target end time for the sim")
	shocktubeCmd.Flags().String("flux", "hllc", "interface flux: rusanov, hll, hllc")
	shocktubeCmd.Flags().String("speeds", "davis", "signal speed estimator: arithmetic, rusanov, davis, davisroe, einfeldt, toro")
	shocktubeCmd.Flags().Bool("profile", false, "write a CPU profile for the run")
}
