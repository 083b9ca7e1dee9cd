package cmd

import (
	"testing"

	"github.com/magiconair/properties/assert"

	"github.com/hydroflume/goch/InputParameters"
)

func TestChannelCaseFile(t *testing.T) {
	var (
		err error
	)
	fileInput := []byte(`
Title: Step Up
Q: 5.
Ho: 1.
DeltaH: 2.
DepthMin: 0.01
DepthMax: 10.
SampleCount: 100
`)
	var input InputParameters.ChannelParameters
	if err = input.Parse(fileInput); err != nil {
		panic(err)
	}
	assert.Equal(t, input.Q, 5.)
	assert.Equal(t, input.Ho, 1.)
	assert.Equal(t, input.DeltaH, 2.)
	input.Print()
	assert.Equal(t, input.SampleCount, 100)
}

func TestLimitInputs(t *testing.T) {
	mc := &ModelChannel{Q: 12, Ho: -1, DeltaH: 2}
	LimitInputs(mc)
	assert.Equal(t, mc.Q, 10.)
	assert.Equal(t, mc.Ho, 0.)
	assert.Equal(t, mc.DeltaH, 2.)
}
