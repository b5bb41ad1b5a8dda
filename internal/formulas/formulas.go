// Package formulas evaluates the engineering estimates offered next to material search.
package formulas

import (
	"math"

	"github.com/localnerve/materialsdb/internal/types"
)

const (
	gravity = 9.81 // m/s2

	// DefaultThermalExpansion is the coefficient used when none is given, 1/C
	DefaultThermalExpansion = 0.00002
)

// Inputs are the calculator parameters
type Inputs struct {
	TensileStrength  float64  `json:"tensileStrength"` // MPa
	Elongation       float64  `json:"elongation"`      // %
	Density          float64  `json:"density"`         // g/cm3
	Temperature      float64  `json:"temperature"`     // temperature change, C
	Thickness        float64  `json:"thickness"`       // mm
	Load             float64  `json:"load"`            // N
	ThermalExpansion *float64 `json:"thermalExpansion,omitempty"`
}

// Results are rounded to two decimals
type Results struct {
	YoungModulus     float64 `json:"youngModulus"`
	StressAtBreak    float64 `json:"stressAtBreak"`
	VolumetricStress float64 `json:"volumetricStress"`
	ThermalStress    float64 `json:"thermalStress"`
	SafetyFactor     float64 `json:"safetyFactor"`
}

// Validate rejects negative and non-finite inputs
func (in Inputs) Validate() error {
	verr := types.NewValidationError()
	check := func(name string, v float64) {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			verr.Add(name, "must be a finite number")
		} else if v < 0 {
			verr.Add(name, "must not be negative")
		}
	}

	check("tensileStrength", in.TensileStrength)
	check("elongation", in.Elongation)
	check("density", in.Density)
	check("thickness", in.Thickness)
	check("load", in.Load)
	if math.IsNaN(in.Temperature) || math.IsInf(in.Temperature, 0) {
		verr.Add("temperature", "must be a finite number")
	}
	if in.ThermalExpansion != nil {
		check("thermalExpansion", *in.ThermalExpansion)
	}
	return verr.OrNil()
}

// Calculate evaluates every formula. Divisions by zero yield 0.
func Calculate(in Inputs) Results {
	alpha := DefaultThermalExpansion
	if in.ThermalExpansion != nil {
		alpha = *in.ThermalExpansion
	}

	var youngModulus float64
	if in.Elongation > 0 {
		youngModulus = in.TensileStrength / (in.Elongation / 100)
	}

	var stressAtBreak float64
	if in.Thickness > 0 {
		stressAtBreak = in.Load / (in.Thickness * in.Thickness)
	}

	volumetricStress := in.Density * gravity * in.Thickness
	thermalStress := youngModulus * alpha * in.Temperature

	var safetyFactor float64
	if in.TensileStrength > 0 {
		safetyFactor = in.TensileStrength / math.Max(math.Max(stressAtBreak, thermalStress), 1)
	}

	return Results{
		YoungModulus:     round2(youngModulus),
		StressAtBreak:    round2(stressAtBreak),
		VolumetricStress: round2(volumetricStress),
		ThermalStress:    round2(thermalStress),
		SafetyFactor:     round2(safetyFactor),
	}
}

// round2 rounds half up toward positive infinity, so -0.125 becomes -0.12
func round2(v float64) float64 {
	return math.Floor(v*100+0.5) / 100
}
