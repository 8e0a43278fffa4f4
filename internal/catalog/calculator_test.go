package catalog

import (
	"math"
	"testing"
)

func TestComputeFormulas(t *testing.T) {
	fixed := func(v float64) *float64 { return &v }

	tests := []struct {
		name string
		calc Calculator
		vals map[string]float64
		want float64
	}{
		{
			"mass-energy with fixed light speed",
			Calculator{
				Formula: "mass-energy",
				Variables: []CalcVariable{
					{ID: "mass", Label: "Mass (m)", Unit: "kg"},
					{ID: "c", Label: "Light Speed (c)", Unit: "m/s", Fixed: fixed(lightSpeed)},
				},
			},
			map[string]float64{"mass": 2},
			2 * 299792458.0 * 299792458.0,
		},
		{
			"bernoulli",
			Calculator{
				Formula: "bernoulli",
				Variables: []CalcVariable{
					{ID: "pressure"}, {ID: "rho"}, {ID: "velocity"}, {ID: "h"},
				},
			},
			map[string]float64{"pressure": 101325, "rho": 1000, "velocity": 2, "h": 5},
			101325 + 0.5*1000*4 + 1000*9.81*5,
		},
		{
			"weight-dose",
			Calculator{
				Formula: "weight-dose",
				Variables: []CalcVariable{
					{ID: "weight"}, {ID: "baseDose"},
				},
			},
			map[string]float64{"weight": 18, "baseDose": 15},
			270,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := tt.calc.Compute(tt.vals)
			if err != nil {
				t.Fatalf("Compute: %v", err)
			}
			if math.Abs(got-tt.want) > 1e-9 {
				t.Errorf("Compute = %g, want %g", got, tt.want)
			}
		})
	}
}

func TestComputeFixedOverridesCallerValue(t *testing.T) {
	c := float64(lightSpeed)
	calc := Calculator{
		Formula: "mass-energy",
		Variables: []CalcVariable{
			{ID: "mass"},
			{ID: "c", Fixed: &c},
		},
	}

	// A caller-supplied value for a constant must not change the result.
	got, err := calc.Compute(map[string]float64{"mass": 1, "c": 1})
	if err != nil {
		t.Fatalf("Compute: %v", err)
	}
	if want := c * c; got != want {
		t.Errorf("Compute = %g, want %g", got, want)
	}
}

func TestComputeUnknownFormula(t *testing.T) {
	calc := Calculator{Formula: "perpetual-motion"}
	if _, err := calc.Compute(nil); err == nil {
		t.Fatal("expected error for unknown formula")
	}
}

func TestInputsSkipConstants(t *testing.T) {
	c := float64(lightSpeed)
	calc := Calculator{
		Formula: "mass-energy",
		Variables: []CalcVariable{
			{ID: "mass", Label: "Mass (m)"},
			{ID: "c", Label: "Light Speed (c)", Fixed: &c},
		},
	}

	inputs := calc.Inputs()
	if len(inputs) != 1 || inputs[0].ID != "mass" {
		t.Fatalf("Inputs = %+v, want only mass", inputs)
	}
}

func TestEmbeddedCalculatorsAreWellFormed(t *testing.T) {
	c := loadTestCatalog(t)

	withCalc := map[string]bool{}
	for _, m := range c.Materials() {
		if m.Calculator == nil {
			continue
		}
		withCalc[m.ID] = true
		if _, err := m.Calculator.Compute(map[string]float64{}); err != nil {
			t.Errorf("material %s: %v", m.ID, err)
		}
		if len(m.Calculator.Inputs()) == 0 {
			t.Errorf("material %s: no editable variables", m.ID)
		}
	}

	for _, id := range []string{"phys-rel-e", "eng-fluid-01", "med-dose-calc"} {
		if !withCalc[id] {
			t.Errorf("material %s: expected a calculator", id)
		}
	}
}
