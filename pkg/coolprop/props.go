package coolprop

import (
	"math"

	"github.com/fluidkit/coolprop-go/internal/bindings"
)

// PropsSI evaluates a thermodynamic property of a pure fluid or a
// predefined-composition mixture from two state variables, all in SI units.
//
//	tBoil, err := coolprop.PropsSI("T", "P", 101325, "Q", 0, "Water")
//
// Mixtures use the native composition syntax, for example
// "HEOS::Methane[0.5]&Ethane[0.5]". The native library signals failure with a
// non-finite result; PropsSI recovers the message from the global error
// channel and returns it as an *Error.
func PropsSI(output, name1 string, prop1 float64, name2 string, prop2 float64, fluid string) (float64, error) {
	for label, s := range map[string]string{
		"output": output, "name1": name1, "name2": name2, "fluid": fluid,
	} {
		if err := checkNoNUL(label, s); err != nil {
			return 0, err
		}
	}

	v, err := bindings.PropsSI(output, name1, prop1, name2, prop2, fluid)
	if err != nil {
		return 0, wrapNative("PropsSI", err)
	}
	if !isFinite(v) {
		return 0, globalError("PropsSI")
	}
	return v, nil
}

// Props1SI evaluates a state-independent ("trivial") property of a fluid,
// such as "Tcrit" or "molar_mass".
func Props1SI(fluid, output string) (float64, error) {
	if err := checkNoNUL("fluid", fluid); err != nil {
		return 0, err
	}
	if err := checkNoNUL("output", output); err != nil {
		return 0, err
	}

	v, err := bindings.Props1SI(fluid, output)
	if err != nil {
		return 0, wrapNative("Props1SI", err)
	}
	if !isFinite(v) {
		return 0, globalError("Props1SI")
	}
	return v, nil
}

func isFinite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}
