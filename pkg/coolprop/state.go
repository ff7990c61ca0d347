package coolprop

import (
	"errors"
	"fmt"
	"runtime"
	"strings"

	"github.com/fluidkit/coolprop-go/internal/bindings"
)

// State owns a native thermodynamic state object. It caches nothing: every
// query goes to the native library, which holds the actual state.
//
// A State may be handed from one goroutine to another, but its methods must
// not be called concurrently. Close releases the native handle; a finalizer
// backstops states that are garbage collected without Close.
type State struct {
	handle  int64
	closed  bool
	backend string
	fluid   string
}

// NewState constructs a native state for the given backend ("HEOS", "REFPROP",
// "SRK", "PR", "INCOMP", ...) and fluid string. Mixtures join component names
// with '&', for example "Methane&Ethane".
func NewState(backend, fluid string) (*State, error) {
	if err := checkNoNUL("backend", backend); err != nil {
		return nil, err
	}
	if err := checkNoNUL("fluid", fluid); err != nil {
		return nil, err
	}

	handle, err := bindings.StateFactory(backend, fluid)
	if err != nil {
		return nil, wrapNative("AbstractState_factory", err)
	}
	s := &State{handle: handle, backend: backend, fluid: fluid}
	runtime.SetFinalizer(s, func(st *State) {
		if !st.closed {
			_ = bindings.StateFree(st.handle)
		}
	})
	return s, nil
}

// Close releases the native handle. Close is idempotent; every method called
// after Close returns ErrClosed.
func (s *State) Close() error {
	if s.closed {
		return nil
	}
	s.closed = true
	runtime.SetFinalizer(s, nil)
	if err := bindings.StateFree(s.handle); err != nil {
		return wrapNative("AbstractState_free", err)
	}
	return nil
}

// Handle exposes the raw native handle for interop with other bindings of the
// same native library. The handle is invalid after Close.
func (s *State) Handle() int64 { return s.handle }

func (s *State) String() string {
	return fmt.Sprintf("coolprop.State(%s::%s)", s.backend, s.fluid)
}

func (s *State) ensureOpen() error {
	if s.closed {
		return ErrClosed
	}
	return nil
}

// Update sets the thermodynamic state from an input pair and two values in SI
// units, ordered as the pair name reads (PTInputs takes pressure first).
func (s *State) Update(pair InputPair, value1, value2 float64) error {
	if err := s.ensureOpen(); err != nil {
		return err
	}
	pairIdx, err := pair.index()
	if err != nil {
		return err
	}
	return wrapNative("AbstractState_update", bindings.StateUpdate(s.handle, pairIdx, value1, value2))
}

// UpdateDmolarT sets the state from molar density and temperature, the input
// pair equation-of-state backends evaluate without iteration.
func (s *State) UpdateDmolarT(dmolar, t float64) error {
	return s.Update(DmolarTInputs, dmolar, t)
}

// KeyedOutput evaluates an output property at the current state.
func (s *State) KeyedOutput(param Param) (float64, error) {
	if err := s.ensureOpen(); err != nil {
		return 0, err
	}
	paramIdx, err := param.index()
	if err != nil {
		return 0, err
	}
	v, err := bindings.StateKeyedOutput(s.handle, paramIdx)
	if err != nil {
		return 0, wrapNative("AbstractState_keyed_output", err)
	}
	return v, nil
}

// Pressure returns the pressure in Pa at the current state.
func (s *State) Pressure() (float64, error) { return s.KeyedOutput(ParamP) }

// Temperature returns the temperature in K at the current state.
func (s *State) Temperature() (float64, error) { return s.KeyedOutput(ParamT) }

// SpecifyPhase imposes a phase on subsequent updates, skipping the native
// phase-detection logic. Use PhaseNotImposed or UnspecifyPhase to lift it.
func (s *State) SpecifyPhase(phase Phase) error {
	if err := s.ensureOpen(); err != nil {
		return err
	}
	token, err := phase.specifier()
	if err != nil {
		return err
	}
	return wrapNative("AbstractState_specify_phase", bindings.StateSpecifyPhase(s.handle, token))
}

// UnspecifyPhase re-enables native phase detection.
func (s *State) UnspecifyPhase() error {
	if err := s.ensureOpen(); err != nil {
		return err
	}
	return wrapNative("AbstractState_unspecify_phase", bindings.StateUnspecifyPhase(s.handle))
}

// CurrentPhase reports the phase of the current state.
func (s *State) CurrentPhase() (Phase, error) {
	if err := s.ensureOpen(); err != nil {
		return PhaseUnknown, err
	}
	code, err := bindings.StatePhase(s.handle)
	if err != nil {
		return PhaseUnknown, wrapNative("AbstractState_phase", err)
	}
	return phaseFromIndex(code)
}

// FluidNames returns the component names loaded into this state.
func (s *State) FluidNames() ([]string, error) {
	if err := s.ensureOpen(); err != nil {
		return nil, err
	}
	names, err := bindings.StateFluidNames(s.handle)
	if err != nil {
		return nil, wrapNative("AbstractState_fluid_names", err)
	}
	// Some backends join component names with '&', others with ','.
	names = strings.ReplaceAll(names, ",", "&")
	return strings.Split(names, "&"), nil
}

// BackendName returns the name the native backend reports for itself, for
// example "HelmholtzEOSMixtureBackend".
func (s *State) BackendName() (string, error) {
	if err := s.ensureOpen(); err != nil {
		return "", err
	}
	name, err := bindings.StateBackendName(s.handle)
	if err != nil {
		return "", wrapNative("AbstractState_backend_name", err)
	}
	return name, nil
}

// FluidParamString queries a string-valued parameter of the loaded fluid.
func (s *State) FluidParamString(param string) (string, error) {
	if err := s.ensureOpen(); err != nil {
		return "", err
	}
	if err := checkNoNUL("param", param); err != nil {
		return "", err
	}
	v, err := bindings.StateFluidParamString(s.handle, param)
	if err != nil {
		return "", wrapNative("AbstractState_fluid_param_string", err)
	}
	return v, nil
}

// SaturatedLiquidKeyedOutput evaluates a property of the saturated liquid at
// the current two-phase state.
func (s *State) SaturatedLiquidKeyedOutput(param Param) (float64, error) {
	if err := s.ensureOpen(); err != nil {
		return 0, err
	}
	paramIdx, err := param.index()
	if err != nil {
		return 0, err
	}
	v, err := bindings.StateSaturatedLiquidKeyedOutput(s.handle, paramIdx)
	if err != nil {
		return 0, wrapNative("AbstractState_saturated_liquid_keyed_output", err)
	}
	return v, nil
}

// SaturatedVaporKeyedOutput evaluates a property of the saturated vapor at
// the current two-phase state.
func (s *State) SaturatedVaporKeyedOutput(param Param) (float64, error) {
	if err := s.ensureOpen(); err != nil {
		return 0, err
	}
	paramIdx, err := param.index()
	if err != nil {
		return 0, err
	}
	v, err := bindings.StateSaturatedVaporKeyedOutput(s.handle, paramIdx)
	if err != nil {
		return 0, wrapNative("AbstractState_saturated_vapor_keyed_output", err)
	}
	return v, nil
}

// KeyedOutputSatState evaluates a property for one of the coexisting phases
// at a saturation state.
func (s *State) KeyedOutputSatState(sat SatState, param Param) (float64, error) {
	if err := s.ensureOpen(); err != nil {
		return 0, err
	}
	token, err := sat.token()
	if err != nil {
		return 0, err
	}
	paramIdx, err := param.index()
	if err != nil {
		return 0, err
	}
	v, err := bindings.StateKeyedOutputSatState(s.handle, token, paramIdx)
	if err != nil {
		return 0, wrapNative("AbstractState_keyed_output_satState", err)
	}
	return v, nil
}

// FirstSaturationDeriv evaluates d(of)/d(wrt) along the saturation curve.
func (s *State) FirstSaturationDeriv(of, wrt Param) (float64, error) {
	if err := s.ensureOpen(); err != nil {
		return 0, err
	}
	ofIdx, err := of.index()
	if err != nil {
		return 0, err
	}
	wrtIdx, err := wrt.index()
	if err != nil {
		return 0, err
	}
	v, err := bindings.StateFirstSaturationDeriv(s.handle, ofIdx, wrtIdx)
	if err != nil {
		return 0, wrapNative("AbstractState_first_saturation_deriv", err)
	}
	return v, nil
}

// FirstPartialDeriv evaluates the partial derivative d(of)/d(wrt) at constant
// `constant`.
func (s *State) FirstPartialDeriv(of, wrt, constant Param) (float64, error) {
	if err := s.ensureOpen(); err != nil {
		return 0, err
	}
	idx, err := paramIndices(of, wrt, constant)
	if err != nil {
		return 0, err
	}
	v, err := bindings.StateFirstPartialDeriv(s.handle, idx[0], idx[1], idx[2])
	if err != nil {
		return 0, wrapNative("AbstractState_first_partial_deriv", err)
	}
	return v, nil
}

// SecondPartialDeriv evaluates the second partial derivative
// d(d(of)/d(wrt1) const1)/d(wrt2) const2.
func (s *State) SecondPartialDeriv(of, wrt1, constant1, wrt2, constant2 Param) (float64, error) {
	if err := s.ensureOpen(); err != nil {
		return 0, err
	}
	idx, err := paramIndices(of, wrt1, constant1, wrt2, constant2)
	if err != nil {
		return 0, err
	}
	v, err := bindings.StateSecondPartialDeriv(s.handle, idx[0], idx[1], idx[2], idx[3], idx[4])
	if err != nil {
		return 0, wrapNative("AbstractState_second_partial_deriv", err)
	}
	return v, nil
}

// FirstTwoPhaseDeriv evaluates a first derivative inside the two-phase
// region.
func (s *State) FirstTwoPhaseDeriv(of, wrt, constant Param) (float64, error) {
	if err := s.ensureOpen(); err != nil {
		return 0, err
	}
	idx, err := paramIndices(of, wrt, constant)
	if err != nil {
		return 0, err
	}
	v, err := bindings.StateFirstTwoPhaseDeriv(s.handle, idx[0], idx[1], idx[2])
	if err != nil {
		return 0, wrapNative("AbstractState_first_two_phase_deriv", err)
	}
	return v, nil
}

// FirstTwoPhaseDerivSplined evaluates a two-phase first derivative using a
// spline blend near the saturated-liquid end, up to quality xEnd.
func (s *State) FirstTwoPhaseDerivSplined(of, wrt, constant Param, xEnd float64) (float64, error) {
	if err := s.ensureOpen(); err != nil {
		return 0, err
	}
	idx, err := paramIndices(of, wrt, constant)
	if err != nil {
		return 0, err
	}
	v, err := bindings.StateFirstTwoPhaseDerivSplined(s.handle, idx[0], idx[1], idx[2], xEnd)
	if err != nil {
		return 0, wrapNative("AbstractState_first_two_phase_deriv_splined", err)
	}
	return v, nil
}

// SecondTwoPhaseDeriv evaluates a second derivative inside the two-phase
// region.
func (s *State) SecondTwoPhaseDeriv(of, wrt1, constant1, wrt2, constant2 Param) (float64, error) {
	if err := s.ensureOpen(); err != nil {
		return 0, err
	}
	idx, err := paramIndices(of, wrt1, constant1, wrt2, constant2)
	if err != nil {
		return 0, err
	}
	v, err := bindings.StateSecondTwoPhaseDeriv(s.handle, idx[0], idx[1], idx[2], idx[3], idx[4])
	if err != nil {
		return 0, wrapNative("AbstractState_second_two_phase_deriv", err)
	}
	return v, nil
}

func paramIndices(params ...Param) ([]int64, error) {
	idx := make([]int64, len(params))
	for i, p := range params {
		v, err := p.index()
		if err != nil {
			return nil, err
		}
		idx[i] = v
	}
	return idx, nil
}

// SetFractions sets the mixture composition. Whether the values are mole,
// mass, or volume fractions depends on the backend; the equation-of-state
// backends take mole fractions.
func (s *State) SetFractions(fractions []float64) error {
	if err := s.ensureOpen(); err != nil {
		return err
	}
	if len(fractions) == 0 {
		return fmt.Errorf("%w: empty fractions", ErrInvalidInput)
	}
	return wrapNative("AbstractState_set_fractions", bindings.StateSetFractions(s.handle, fractions))
}

// MoleFractions returns the current mixture composition as mole fractions.
func (s *State) MoleFractions() ([]float64, error) {
	if err := s.ensureOpen(); err != nil {
		return nil, err
	}
	return s.moleFractions(func(buf []float64) (int, error) {
		return bindings.StateMoleFractions(s.handle, buf)
	}, "AbstractState_get_mole_fractions")
}

// MoleFractionsSatState returns the composition of one coexisting phase at a
// saturation state of a mixture.
func (s *State) MoleFractionsSatState(sat SatState) ([]float64, error) {
	if err := s.ensureOpen(); err != nil {
		return nil, err
	}
	token, err := sat.token()
	if err != nil {
		return nil, err
	}
	return s.moleFractions(func(buf []float64) (int, error) {
		return bindings.StateMoleFractionsSatState(s.handle, token, buf)
	}, "AbstractState_get_mole_fractions_satState")
}

// maxFractionComponents bounds the mole-fraction buffer growth; no supported
// backend handles mixtures anywhere near this wide.
const maxFractionComponents = 64

// moleFractions sizes the output buffer from the component count and grows it
// when the native side reports more components than expected, either through
// the returned count or through an undersized-buffer error.
func (s *State) moleFractions(fetch func([]float64) (int, error), op string) ([]float64, error) {
	capacity := 2
	if names, err := s.FluidNames(); err == nil && len(names) > capacity {
		capacity = len(names)
	}
	for {
		buf := make([]float64, capacity)
		n, err := fetch(buf)
		if err != nil {
			if n > len(buf) && n <= maxFractionComponents {
				capacity = n
				continue
			}
			if isLengthError(err) && capacity < maxFractionComponents {
				capacity *= 2
				continue
			}
			return nil, wrapNative(op, err)
		}
		if n <= len(buf) {
			return buf[:n], nil
		}
		capacity = n
	}
}

// isLengthError reports whether a native error complains about an undersized
// output array, the one failure mode worth retrying with a larger buffer.
func isLengthError(err error) bool {
	var native *bindings.NativeError
	if !errors.As(err, &native) {
		return false
	}
	return strings.Contains(native.Message, "buffer") ||
		strings.Contains(native.Message, "Length of array")
}

// Fugacity returns the fugacity of mixture component i in Pa.
func (s *State) Fugacity(i int) (float64, error) {
	if err := s.ensureOpen(); err != nil {
		return 0, err
	}
	v, err := bindings.StateFugacity(s.handle, int64(i))
	if err != nil {
		return 0, wrapNative("AbstractState_get_fugacity", err)
	}
	return v, nil
}

// FugacityCoefficient returns the dimensionless fugacity coefficient of
// mixture component i.
func (s *State) FugacityCoefficient(i int) (float64, error) {
	if err := s.ensureOpen(); err != nil {
		return 0, err
	}
	v, err := bindings.StateFugacityCoefficient(s.handle, int64(i))
	if err != nil {
		return 0, wrapNative("AbstractState_get_fugacity_coefficient", err)
	}
	return v, nil
}

// SetBinaryInteractionDouble overrides a binary interaction parameter (such
// as "kij" for cubic backends or "betaT" for HEOS) between components i and j.
func (s *State) SetBinaryInteractionDouble(i, j int, parameter string, value float64) error {
	if err := s.ensureOpen(); err != nil {
		return err
	}
	if err := checkNoNUL("parameter", parameter); err != nil {
		return err
	}
	return wrapNative("AbstractState_set_binary_interaction_double",
		bindings.StateSetBinaryInteractionDouble(s.handle, int64(i), int64(j), parameter, value))
}

// SetCubicAlphaC sets the alpha-function constants for component i of a cubic
// backend.
func (s *State) SetCubicAlphaC(i int, parameter string, c1, c2, c3 float64) error {
	if err := s.ensureOpen(); err != nil {
		return err
	}
	if err := checkNoNUL("parameter", parameter); err != nil {
		return err
	}
	return wrapNative("AbstractState_set_cubic_alpha_C",
		bindings.StateSetCubicAlphaC(s.handle, int64(i), parameter, c1, c2, c3))
}

// SetFluidParameterDouble overrides a scalar fluid parameter for component i,
// for example "Tc" or "acentric" of a cubic backend.
func (s *State) SetFluidParameterDouble(i int, parameter string, value float64) error {
	if err := s.ensureOpen(); err != nil {
		return err
	}
	if err := checkNoNUL("parameter", parameter); err != nil {
		return err
	}
	return wrapNative("AbstractState_set_fluid_parameter_double",
		bindings.StateSetFluidParameterDouble(s.handle, int64(i), parameter, value))
}

// CommonOut holds the outputs of UpdateAndCommonOut, one entry per input
// state.
type CommonOut struct {
	T        []float64 // temperature, K
	P        []float64 // pressure, Pa
	Rhomolar []float64 // molar density, mol/m^3
	Hmolar   []float64 // molar enthalpy, J/mol
	Smolar   []float64 // molar entropy, J/mol/K
}

func (s *State) checkBatch(values1, values2 []float64) error {
	if len(values1) == 0 {
		return fmt.Errorf("%w: empty input arrays", ErrInvalidInput)
	}
	if len(values1) != len(values2) {
		return fmt.Errorf("%w: input arrays have different lengths (%d and %d)",
			ErrInvalidInput, len(values1), len(values2))
	}
	return nil
}

// UpdateAndCommonOut updates the state once per entry of the parallel input
// arrays and collects temperature, pressure, molar density, molar enthalpy,
// and molar entropy in a single native call. The state is left at the last
// input on return.
func (s *State) UpdateAndCommonOut(pair InputPair, values1, values2 []float64) (*CommonOut, error) {
	if err := s.ensureOpen(); err != nil {
		return nil, err
	}
	if err := s.checkBatch(values1, values2); err != nil {
		return nil, err
	}
	pairIdx, err := pair.index()
	if err != nil {
		return nil, err
	}
	n := len(values1)
	out := &CommonOut{
		T:        make([]float64, n),
		P:        make([]float64, n),
		Rhomolar: make([]float64, n),
		Hmolar:   make([]float64, n),
		Smolar:   make([]float64, n),
	}
	err = bindings.StateUpdateAndCommonOut(s.handle, pairIdx, values1, values2,
		out.T, out.P, out.Rhomolar, out.Hmolar, out.Smolar)
	if err != nil {
		return nil, wrapNative("AbstractState_update_and_common_out", err)
	}
	return out, nil
}

// UpdateAnd1Out updates the state once per entry of the parallel input arrays
// and collects a single output property.
func (s *State) UpdateAnd1Out(pair InputPair, values1, values2 []float64, output Param) ([]float64, error) {
	if err := s.ensureOpen(); err != nil {
		return nil, err
	}
	if err := s.checkBatch(values1, values2); err != nil {
		return nil, err
	}
	pairIdx, err := pair.index()
	if err != nil {
		return nil, err
	}
	outIdx, err := output.index()
	if err != nil {
		return nil, err
	}
	out := make([]float64, len(values1))
	if err := bindings.StateUpdateAnd1Out(s.handle, pairIdx, values1, values2, outIdx, out); err != nil {
		return nil, wrapNative("AbstractState_update_and_1_out", err)
	}
	return out, nil
}

// UpdateAnd5Out updates the state once per entry of the parallel input arrays
// and collects five output properties. The result slices are ordered like the
// outputs argument.
func (s *State) UpdateAnd5Out(pair InputPair, values1, values2 []float64, outputs [5]Param) ([5][]float64, error) {
	var results [5][]float64
	if err := s.ensureOpen(); err != nil {
		return results, err
	}
	if err := s.checkBatch(values1, values2); err != nil {
		return results, err
	}
	pairIdx, err := pair.index()
	if err != nil {
		return results, err
	}
	outIdx := make([]int64, len(outputs))
	for i, p := range outputs {
		idx, err := p.index()
		if err != nil {
			return results, err
		}
		outIdx[i] = idx
	}
	n := len(values1)
	for i := range results {
		results[i] = make([]float64, n)
	}
	err = bindings.StateUpdateAnd5Out(s.handle, pairIdx, values1, values2, outIdx,
		results[0], results[1], results[2], results[3], results[4])
	if err != nil {
		return [5][]float64{}, wrapNative("AbstractState_update_and_5_out", err)
	}
	return results, nil
}

// TryClone constructs a fresh State with the same backend, components, and
// composition. The thermodynamic state itself is not copied; call Update on
// the clone before querying outputs. Useful for fanning work out to
// goroutines, since a single State must not be shared.
func (s *State) TryClone() (*State, error) {
	if err := s.ensureOpen(); err != nil {
		return nil, err
	}
	names, err := s.FluidNames()
	if err != nil {
		return nil, err
	}
	clone, err := NewState(s.backend, strings.Join(names, "&"))
	if err != nil {
		return nil, err
	}
	if len(names) > 1 {
		fractions, err := s.MoleFractions()
		if err != nil {
			_ = clone.Close()
			return nil, err
		}
		if err := clone.SetFractions(fractions); err != nil {
			_ = clone.Close()
			return nil, err
		}
	}
	return clone, nil
}
