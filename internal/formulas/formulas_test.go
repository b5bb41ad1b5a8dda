package formulas

import (
	"math"
	"testing"

	"github.com/localnerve/materialsdb/internal/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCalculate(t *testing.T) {
	res := Calculate(Inputs{
		TensileStrength: 45,
		Elongation:      25,
		Density:         1.05,
		Temperature:     50,
		Thickness:       2,
		Load:            100,
	})

	assert.Equal(t, 180.0, res.YoungModulus)    // 45 / 0.25
	assert.Equal(t, 25.0, res.StressAtBreak)    // 100 / 4
	assert.Equal(t, 20.6, res.VolumetricStress) // 1.05 * 9.81 * 2 = 20.601
	assert.Equal(t, 0.18, res.ThermalStress)    // 180 * 2e-5 * 50
	assert.Equal(t, 1.8, res.SafetyFactor)      // 45 / 25
}

func TestCalculateZeroDivisors(t *testing.T) {
	res := Calculate(Inputs{TensileStrength: 45})

	assert.Zero(t, res.YoungModulus)
	assert.Zero(t, res.StressAtBreak)
	assert.Zero(t, res.ThermalStress)
	assert.Equal(t, 45.0, res.SafetyFactor) // floor of 1 on the divisor
}

func TestCalculateCustomExpansion(t *testing.T) {
	alpha := 0.0001
	res := Calculate(Inputs{TensileStrength: 50, Elongation: 50, Temperature: 10, ThermalExpansion: &alpha})

	assert.Equal(t, 100.0, res.YoungModulus)
	assert.Equal(t, 0.1, res.ThermalStress)
}

func TestValidate(t *testing.T) {
	assert.NoError(t, Inputs{Temperature: -20}.Validate())

	err := Inputs{Thickness: -1, Load: math.Inf(1)}.Validate()
	var verr *types.ValidationError
	require.ErrorAs(t, err, &verr)
	assert.Equal(t, "must not be negative", verr.Fields["thickness"])
	assert.Equal(t, "must be a finite number", verr.Fields["load"])
}

func TestRound2HalvesRoundUp(t *testing.T) {
	tests := []struct {
		in, want float64
	}{
		{0.125, 0.13},
		{-0.125, -0.12},
		{-0.375, -0.37},
		{1.5, 1.5},
		{-2.004, -2},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, round2(tt.in), "round2(%v)", tt.in)
	}
}
