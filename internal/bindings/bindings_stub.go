//go:build !cgo || windows

package bindings

// Stub implementations for non-cgo builds and Windows. The package compiles
// everywhere; every entry point reports ErrNotBuilt so callers can degrade
// gracefully instead of failing at link time.

func PropsSI(string, string, float64, string, float64, string) (float64, error) {
	return 0, ErrNotBuilt
}

func Props1SI(string, string) (float64, error) { return 0, ErrNotBuilt }

func HAPropsSI(string, string, float64, string, float64, string, float64) (float64, error) {
	return 0, ErrNotBuilt
}

func PhaseSI(string, float64, string, float64, string) (string, error) {
	return "", ErrNotBuilt
}

func GlobalParamString(string) (string, error) { return "", ErrNotBuilt }

func FluidParamString(string, string) (string, error) { return "", ErrNotBuilt }

func ParamIndex(string) (int64, error) { return 0, ErrNotBuilt }

func InputPairIndex(string) (int64, error) { return 0, ErrNotBuilt }

func SetReferenceState(string, string) error { return ErrNotBuilt }

func SetConfigString(string, string) error { return ErrNotBuilt }

func SetConfigDouble(string, float64) error { return ErrNotBuilt }

func SetConfigBool(string, bool) error { return ErrNotBuilt }

func StateFactory(string, string) (int64, error) { return 0, ErrNotBuilt }

func StateFree(int64) error { return ErrNotBuilt }

func StateUpdate(int64, int64, float64, float64) error { return ErrNotBuilt }

func StateKeyedOutput(int64, int64) (float64, error) { return 0, ErrNotBuilt }

func StateSpecifyPhase(int64, string) error { return ErrNotBuilt }

func StateUnspecifyPhase(int64) error { return ErrNotBuilt }

func StatePhase(int64) (int64, error) { return 0, ErrNotBuilt }

func StateFluidNames(int64) (string, error) { return "", ErrNotBuilt }

func StateBackendName(int64) (string, error) { return "", ErrNotBuilt }

func StateFluidParamString(int64, string) (string, error) { return "", ErrNotBuilt }

func StateSaturatedLiquidKeyedOutput(int64, int64) (float64, error) { return 0, ErrNotBuilt }

func StateSaturatedVaporKeyedOutput(int64, int64) (float64, error) { return 0, ErrNotBuilt }

func StateKeyedOutputSatState(int64, string, int64) (float64, error) { return 0, ErrNotBuilt }

func StateFirstSaturationDeriv(int64, int64, int64) (float64, error) { return 0, ErrNotBuilt }

func StateFirstPartialDeriv(int64, int64, int64, int64) (float64, error) { return 0, ErrNotBuilt }

func StateSecondPartialDeriv(int64, int64, int64, int64, int64, int64) (float64, error) {
	return 0, ErrNotBuilt
}

func StateFirstTwoPhaseDeriv(int64, int64, int64, int64) (float64, error) { return 0, ErrNotBuilt }

func StateFirstTwoPhaseDerivSplined(int64, int64, int64, int64, float64) (float64, error) {
	return 0, ErrNotBuilt
}

func StateSecondTwoPhaseDeriv(int64, int64, int64, int64, int64, int64) (float64, error) {
	return 0, ErrNotBuilt
}

func StateSetFractions(int64, []float64) error { return ErrNotBuilt }

func StateMoleFractions(int64, []float64) (int, error) { return 0, ErrNotBuilt }

func StateMoleFractionsSatState(int64, string, []float64) (int, error) { return 0, ErrNotBuilt }

func StateFugacity(int64, int64) (float64, error) { return 0, ErrNotBuilt }

func StateFugacityCoefficient(int64, int64) (float64, error) { return 0, ErrNotBuilt }

func StateUpdateAndCommonOut(int64, int64, []float64, []float64, []float64, []float64, []float64, []float64, []float64) error {
	return ErrNotBuilt
}

func StateUpdateAnd1Out(int64, int64, []float64, []float64, int64, []float64) error {
	return ErrNotBuilt
}

func StateUpdateAnd5Out(int64, int64, []float64, []float64, []int64, []float64, []float64, []float64, []float64, []float64) error {
	return ErrNotBuilt
}

func StateSetBinaryInteractionDouble(int64, int64, int64, string, float64) error {
	return ErrNotBuilt
}

func StateSetCubicAlphaC(int64, int64, string, float64, float64, float64) error {
	return ErrNotBuilt
}

func StateSetFluidParameterDouble(int64, int64, string, float64) error { return ErrNotBuilt }

func StateBuildPhaseEnvelope(int64, string) error { return ErrNotBuilt }

func StatePhaseEnvelopeData(int64, int, int, []float64, []float64, []float64, []float64, []float64, []float64) (int, int, error) {
	return 0, 0, ErrNotBuilt
}

func StateBuildSpinodal(int64) error { return ErrNotBuilt }

func StateSpinodalData(int64, []float64, []float64, []float64) error { return ErrNotBuilt }

func StateAllCriticalPoints(int64, []float64, []float64, []float64, []int64) error {
	return ErrNotBuilt
}
