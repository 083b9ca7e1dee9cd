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
	"io/ioutil"
	"os"
	"time"

	"github.com/pkg/profile"
	"github.com/spf13/cobra"

	"github.com/hydroflume/goch/InputParameters"
	"github.com/hydroflume/goch/model_problems/ChannelStep1D"
)

type ModelChannel struct {
	Q, Ho, DeltaH      float64
	DepthMin, DepthMax float64
	SampleCount        int
	Delay              time.Duration
	Graph              bool
	CaseFile           string
}

// ChannelCmd represents the channel command
var ChannelCmd = &cobra.Command{
	Use:   "channel",
	Short: "Open channel flow over a step in the channel bottom",
	Long: `
Solves the specific head relationship for flow approaching a step up or down
in the channel bottom, reporting depth, velocity and Froude number on both
sides of the step,

goch channel -q 5 -e 5 -s 2`,
	Run: func(cmd *cobra.Command, args []string) {
		mc := &ModelChannel{}
		fmt.Println("channel called")
		mc.Q, _ = cmd.Flags().GetFloat64("discharge")
		mc.Ho, _ = cmd.Flags().GetFloat64("elevation")
		mc.DeltaH, _ = cmd.Flags().GetFloat64("deltaH")
		mc.DepthMin, _ = cmd.Flags().GetFloat64("depthMin")
		mc.DepthMax, _ = cmd.Flags().GetFloat64("depthMax")
		mc.SampleCount, _ = cmd.Flags().GetInt("samples")
		mc.Graph, _ = cmd.Flags().GetBool("graph")
		dr, _ := cmd.Flags().GetInt("delay")
		mc.Delay = time.Duration(dr)
		mc.CaseFile, _ = cmd.Flags().GetString("caseFile")
		if len(mc.CaseFile) != 0 {
			processCaseFile(mc)
		}
		LimitInputs(mc)
		if prof, _ := cmd.Flags().GetBool("profile"); prof {
			defer profile.Start(profile.CPUProfile).Stop()
		}
		RunChannel(mc)
	},
}

func init() {
	rootCmd.AddCommand(ChannelCmd)
	ChannelCmd.Flags().Float64P("discharge", "q", 5.0, "Discharge per unit width, 0-10")
	ChannelCmd.Flags().Float64P("elevation", "e", 5.0, "Channel bottom elevation upstream of the step, 0-10")
	ChannelCmd.Flags().Float64P("deltaH", "s", 0.0, "Change in channel bottom elevation at the step, -10-10")
	ChannelCmd.Flags().Float64("depthMin", 0.01, "Smallest depth sampled on the specific head curve")
	ChannelCmd.Flags().Float64("depthMax", 10.0, "Largest depth sampled on the specific head curve")
	ChannelCmd.Flags().IntP("samples", "n", 100, "Number of depth samples on the specific head curve")
	ChannelCmd.Flags().BoolP("graph", "g", false, "display the specific head diagram and channel figure")
	ChannelCmd.Flags().IntP("delay", "d", 0, "milliseconds of delay for plotting")
	ChannelCmd.Flags().StringP("caseFile", "I", "", "YAML file for input parameters like:\n\t- Q\n\t- Ho\n\t- DeltaH")
	ChannelCmd.Flags().Bool("profile", false, "write a CPU profile of the solve")
}

// Input ranges from the published model
var (
	min_Q, max_Q           = 0., 10.
	min_Ho, max_Ho         = 0., 10.
	min_DeltaH, max_DeltaH = -10., 10.
)

func LimitInputs(mc *ModelChannel) {
	clamp := func(name string, val, min, max float64) float64 {
		if val < min {
			fmt.Printf("Input %s is lower than min\nReplacing with Min: %8.2f\n", name, min)
			return min
		}
		if val > max {
			fmt.Printf("Input %s is higher than max\nReplacing with Max: %8.2f\n", name, max)
			return max
		}
		return val
	}
	mc.Q = clamp("discharge", mc.Q, min_Q, max_Q)
	mc.Ho = clamp("elevation", mc.Ho, min_Ho, max_Ho)
	mc.DeltaH = clamp("deltaH", mc.DeltaH, min_DeltaH, max_DeltaH)
}

func processCaseFile(mc *ModelChannel) {
	var (
		err  error
		data []byte
	)
	if data, err = ioutil.ReadFile(mc.CaseFile); err != nil {
		fmt.Printf("error: %s\n", err.Error())
		exampleFile := `
########################################
Title: "Step Down"
Q: 5.
Ho: 5.
DeltaH: -2.
DepthMin: 0.01
DepthMax: 10.
SampleCount: 100
########################################
`
		fmt.Printf("Example File:%s\n", exampleFile)
		os.Exit(1)
	}
	cp := &InputParameters.ChannelParameters{
		DepthMin:    mc.DepthMin,
		DepthMax:    mc.DepthMax,
		SampleCount: mc.SampleCount,
	}
	if err = cp.Parse(data); err != nil {
		panic(err)
	}
	cp.Print()
	mc.Q = cp.Q
	mc.Ho = cp.Ho
	mc.DeltaH = cp.DeltaH
	mc.DepthMin = cp.DepthMin
	mc.DepthMax = cp.DepthMax
	mc.SampleCount = cp.SampleCount
}

func RunChannel(mc *ModelChannel) {
	c := ChannelStep1D.NewChannelStep(mc.Q, mc.Ho, mc.DeltaH,
		mc.DepthMin, mc.DepthMax, mc.SampleCount)
	c.Run(mc.Graph, mc.Delay*time.Millisecond)
}
