package coolprop

import (
	"errors"
	"fmt"
	"strings"

	"github.com/fluidkit/coolprop-go/internal/bindings"
)

// PhaseSI classifies the phase of a fluid at the given state and returns the
// native label, for example "liquid" or "supercritical_gas".
func PhaseSI(name1 string, prop1 float64, name2 string, prop2 float64, fluid string) (string, error) {
	for label, s := range map[string]string{
		"name1": name1, "name2": name2, "fluid": fluid,
	} {
		if err := checkNoNUL(label, s); err != nil {
			return "", err
		}
	}

	phase, err := bindings.PhaseSI(name1, prop1, name2, prop2, fluid)
	if err != nil {
		if errors.Is(err, bindings.ErrQueryFailed) {
			return "", globalError("PhaseSI")
		}
		return "", wrapNative("PhaseSI", err)
	}
	return phase, nil
}

// GlobalParamString fetches a global informational string from the native
// library. Useful keys include "version", "gitrevision", "FluidsList",
// "incompressible_list_pure", and "parameter_list".
func GlobalParamString(param string) (string, error) {
	if err := checkNoNUL("param", param); err != nil {
		return "", err
	}
	s, err := bindings.GlobalParamString(param)
	if err != nil {
		if errors.Is(err, bindings.ErrQueryFailed) {
			return "", globalError("get_global_param_string")
		}
		return "", wrapNative("get_global_param_string", err)
	}
	return s, nil
}

// FluidParamString fetches a metadata field for a fluid, such as "aliases",
// "CAS", "formula", or "JSON".
func FluidParamString(fluid, param string) (string, error) {
	if err := checkNoNUL("fluid", fluid); err != nil {
		return "", err
	}
	if err := checkNoNUL("param", param); err != nil {
		return "", err
	}
	s, err := bindings.FluidParamString(fluid, param)
	if err != nil {
		if errors.Is(err, bindings.ErrQueryFailed) {
			return "", globalError("get_fluid_param_string")
		}
		return "", wrapNative("get_fluid_param_string", err)
	}
	return s, nil
}

// FluidsList returns the names of all pure and pseudo-pure fluids known to
// the native library.
func FluidsList() ([]string, error) {
	s, err := GlobalParamString("FluidsList")
	if err != nil {
		return nil, err
	}
	return strings.Split(s, ","), nil
}

// Version reports the native library version string.
func Version() (string, error) {
	return GlobalParamString("version")
}

// GitRevision reports the git revision the native library was built from.
func GitRevision() (string, error) {
	return GlobalParamString("gitrevision")
}

// referenceStateToken normalizes a reference-state convention name to the
// token the native library accepts. Names are case-insensitive; "default" is
// an alias for "DEF".
func referenceStateToken(name string) (string, error) {
	switch strings.ToLower(name) {
	case "def", "default":
		return "DEF", nil
	case "iir":
		return "IIR", nil
	case "ashrae":
		return "ASHRAE", nil
	case "nbp":
		return "NBP", nil
	case "reset":
		return "RESET", nil
	}
	return "", fmt.Errorf("%w: unknown reference state %q (want DEF, IIR, ASHRAE, NBP, or RESET)", ErrInvalidInput, name)
}

// SetReferenceState applies an enthalpy/entropy reference-state convention to
// a fluid, e.g. "IIR" or "NBP". It mutates global state inside the native
// library and must not run concurrently with property queries; any State
// created before the call keeps the old convention until it is recreated.
func SetReferenceState(fluid, referenceState string) error {
	if err := checkNoNUL("fluid", fluid); err != nil {
		return err
	}
	token, err := referenceStateToken(referenceState)
	if err != nil {
		return err
	}
	if err := bindings.SetReferenceState(fluid, token); err != nil {
		if errors.Is(err, bindings.ErrQueryFailed) {
			return globalError("set_reference_stateS")
		}
		return wrapNative("set_reference_stateS", err)
	}
	return nil
}

// setConfig runs a void native configuration setter under the errstring
// protocol: drain the global error channel, perform the call, and treat any
// fresh error text as a rejection of the key or value.
func setConfig(op string, call func() error) error {
	// Reading errstring clears it on the native side.
	if _, err := bindings.GlobalParamString("errstring"); err != nil {
		if !errors.Is(err, bindings.ErrQueryFailed) {
			return wrapNative(op, err)
		}
	}
	if err := call(); err != nil {
		return wrapNative(op, err)
	}
	message, err := bindings.GlobalParamString("errstring")
	if err != nil && !errors.Is(err, bindings.ErrQueryFailed) {
		return wrapNative(op, err)
	}
	if message != "" {
		return &Error{Op: op, Message: message}
	}
	return nil
}

// SetConfigString mutates a global string configuration key, for example
// "ALTERNATIVE_REFPROP_PATH". Global configuration must not change while
// other goroutines are evaluating properties.
func SetConfigString(key, value string) error {
	if err := checkNoNUL("key", key); err != nil {
		return err
	}
	if err := checkNoNUL("value", value); err != nil {
		return err
	}
	return setConfig("set_config_string", func() error {
		return bindings.SetConfigString(key, value)
	})
}

// SetConfigDouble mutates a global floating-point configuration key, for
// example "PHASE_ENVELOPE_STARTING_PRESSURE_PA".
func SetConfigDouble(key string, value float64) error {
	if err := checkNoNUL("key", key); err != nil {
		return err
	}
	return setConfig("set_config_double", func() error {
		return bindings.SetConfigDouble(key, value)
	})
}

// SetConfigBool mutates a global boolean configuration key, for example
// "CRITICAL_WITHIN_1UK" or "OVERWRITE_FLUIDS".
func SetConfigBool(key string, value bool) error {
	if err := checkNoNUL("key", key); err != nil {
		return err
	}
	return setConfig("set_config_bool", func() error {
		return bindings.SetConfigBool(key, value)
	})
}

// SetREFPROPPath points the native library at a REFPROP installation so the
// "REFPROP" backend can load its fluid files.
func SetREFPROPPath(path string) error {
	return SetConfigString("ALTERNATIVE_REFPROP_PATH", path)
}
