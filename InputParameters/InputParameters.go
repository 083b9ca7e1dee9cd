package InputParameters

import (
	"fmt"

	"github.com/ghodss/yaml"
)

// Parameters obtained from the YAML case file
type ChannelParameters struct {
	Title       string  `yaml:"Title"`
	Q           float64 `yaml:"Q"`           // Discharge per unit width
	Ho          float64 `yaml:"Ho"`          // Channel bottom elevation
	DeltaH      float64 `yaml:"DeltaH"`      // Change in bottom elevation, signed
	DepthMin    float64 `yaml:"DepthMin"`
	DepthMax    float64 `yaml:"DepthMax"`
	SampleCount int     `yaml:"SampleCount"`
}

func (cp *ChannelParameters) Parse(data []byte) error {
	return yaml.Unmarshal(data, cp)
}

func (cp *ChannelParameters) Print() {
	fmt.Printf("\"%s\"\t\t= Title\n", cp.Title)
	fmt.Printf("%8.5f\t\t= Q\n", cp.Q)
	fmt.Printf("%8.5f\t\t= Ho\n", cp.Ho)
	fmt.Printf("%8.5f\t\t= DeltaH\n", cp.DeltaH)
	fmt.Printf("%8.5f\t\t= DepthMin\n", cp.DepthMin)
	fmt.Printf("%8.5f\t\t= DepthMax\n", cp.DepthMax)
	fmt.Printf("[%d]\t\t\t\t= SampleCount\n", cp.SampleCount)
}
