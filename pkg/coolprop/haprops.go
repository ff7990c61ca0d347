package coolprop

import "github.com/fluidkit/coolprop-go/internal/bindings"

// HAPropsSI evaluates a psychrometric property of humid air in SI units.
// Humid air is a binary mixture, so three state variables are required, for
// example enthalpy from dry-bulb temperature, pressure, and relative
// humidity:
//
//	h, err := coolprop.HAPropsSI("H", "T", 298.15, "P", 101325, "R", 0.5)
//
// Failure is signalled the same way as PropsSI: a non-finite result whose
// message is recovered from the global error channel.
func HAPropsSI(output, name1 string, prop1 float64, name2 string, prop2 float64, name3 string, prop3 float64) (float64, error) {
	for label, s := range map[string]string{
		"output": output, "name1": name1, "name2": name2, "name3": name3,
	} {
		if err := checkNoNUL(label, s); err != nil {
			return 0, err
		}
	}

	v, err := bindings.HAPropsSI(output, name1, prop1, name2, prop2, name3, prop3)
	if err != nil {
		return 0, wrapNative("HAPropsSI", err)
	}
	if !isFinite(v) {
		return 0, globalError("HAPropsSI")
	}
	return v, nil
}
