package catalog

import "fmt"

// Physical constants used by the formula registry.
const (
	lightSpeed      = 299792458 // m/s
	standardGravity = 9.81      // m/s^2
)

// formulas maps a calculator's formula name to its computation over
// named variable values.
var formulas = map[string]func(v map[string]float64) float64{
	"mass-energy": func(v map[string]float64) float64 {
		return v["mass"] * lightSpeed * lightSpeed
	},
	"bernoulli": func(v map[string]float64) float64 {
		return v["pressure"] + 0.5*v["rho"]*v["velocity"]*v["velocity"] +
			v["rho"]*standardGravity*v["h"]
	},
	"weight-dose": func(v map[string]float64) float64 {
		return v["weight"] * v["baseDose"]
	},
}

// Compute evaluates the calculator's formula over the given variable
// values. Fixed variables override whatever the caller supplied.
func (c *Calculator) Compute(vals map[string]float64) (float64, error) {
	fn, ok := formulas[c.Formula]
	if !ok {
		return 0, fmt.Errorf("unknown formula %q", c.Formula)
	}

	merged := make(map[string]float64, len(c.Variables))
	for _, v := range c.Variables {
		if v.Fixed != nil {
			merged[v.ID] = *v.Fixed
			continue
		}
		merged[v.ID] = vals[v.ID]
	}
	return fn(merged), nil
}

// Inputs returns the editable variables, in declaration order.
func (c *Calculator) Inputs() []CalcVariable {
	var out []CalcVariable
	for _, v := range c.Variables {
		if v.Fixed == nil {
			out = append(out, v)
		}
	}
	return out
}
