//go:build cgo && !windows

package bindings

/*
#cgo CFLAGS: -I${SRCDIR}
#include <stdlib.h>
#include "coolpropapi.h"
*/
import "C"

import "unsafe"

// StateFactory constructs a native state object for the given backend and
// fluid (or mixture) string, returning the opaque native handle.
func StateFactory(backend, fluid string) (int64, error) {
	cBackend := C.CString(backend)
	defer C.free(unsafe.Pointer(cBackend))
	cFluid := C.CString(fluid)
	defer C.free(unsafe.Pointer(cFluid))

	var handle C.long
	err := callWithErr(func(errPtr *C.long, msg *C.char, buflen C.long) {
		handle = C.AbstractState_factory(cBackend, cFluid, errPtr, msg, buflen)
	})
	if err != nil {
		return 0, err
	}
	return int64(handle), nil
}

// StateFree releases the native handle. The native library reports an error
// for unknown handles, which the caller surfaces rather than panicking.
func StateFree(h int64) error {
	return callWithErr(func(errPtr *C.long, msg *C.char, buflen C.long) {
		C.AbstractState_free(C.long(h), errPtr, msg, buflen)
	})
}

func StateUpdate(h, pair int64, v1, v2 float64) error {
	return callWithErr(func(errPtr *C.long, msg *C.char, buflen C.long) {
		C.AbstractState_update(C.long(h), C.long(pair), C.double(v1), C.double(v2), errPtr, msg, buflen)
	})
}

func StateKeyedOutput(h, param int64) (float64, error) {
	var v C.double
	err := callWithErr(func(errPtr *C.long, msg *C.char, buflen C.long) {
		v = C.AbstractState_keyed_output(C.long(h), C.long(param), errPtr, msg, buflen)
	})
	return float64(v), err
}

func StateSpecifyPhase(h int64, phase string) error {
	cPhase := C.CString(phase)
	defer C.free(unsafe.Pointer(cPhase))
	return callWithErr(func(errPtr *C.long, msg *C.char, buflen C.long) {
		C.AbstractState_specify_phase(C.long(h), cPhase, errPtr, msg, buflen)
	})
}

func StateUnspecifyPhase(h int64) error {
	return callWithErr(func(errPtr *C.long, msg *C.char, buflen C.long) {
		C.AbstractState_unspecify_phase(C.long(h), errPtr, msg, buflen)
	})
}

func StatePhase(h int64) (int64, error) {
	var code C.long
	err := callWithErr(func(errPtr *C.long, msg *C.char, buflen C.long) {
		code = C.AbstractState_phase(C.long(h), errPtr, msg, buflen)
	})
	return int64(code), err
}

// StateFluidNames returns the comma- or ampersand-separated component list of
// the loaded fluid(s). The native call writes into a fixed-size buffer.
func StateFluidNames(h int64) (string, error) {
	buf := make([]byte, ErrBufLen)
	err := callWithErr(func(errPtr *C.long, msg *C.char, buflen C.long) {
		C.AbstractState_fluid_names(C.long(h), (*C.char)(unsafe.Pointer(&buf[0])), errPtr, msg, buflen)
	})
	if err != nil {
		return "", err
	}
	buf[len(buf)-1] = 0
	return bufToString(buf), nil
}

func StateBackendName(h int64) (string, error) {
	buf := make([]byte, ErrBufLen)
	err := callWithErr(func(errPtr *C.long, msg *C.char, buflen C.long) {
		C.AbstractState_backend_name(C.long(h), (*C.char)(unsafe.Pointer(&buf[0])), errPtr, msg, buflen)
	})
	if err != nil {
		return "", err
	}
	buf[len(buf)-1] = 0
	return bufToString(buf), nil
}

// StateFluidParamString queries a string-valued fluid parameter with a
// growable buffer. The native call reports success even when the output was
// truncated, so a saturated buffer (no NUL before the final byte) triggers a
// retry with doubled capacity.
func StateFluidParamString(h int64, param string) (string, error) {
	cParam := C.CString(param)
	defer C.free(unsafe.Pointer(cParam))

	for capacity := ErrBufLen; ; capacity *= 2 {
		buf := make([]byte, capacity)
		err := callWithErr(func(errPtr *C.long, msg *C.char, buflen C.long) {
			C.AbstractState_fluid_param_string(C.long(h), cParam,
				(*C.char)(unsafe.Pointer(&buf[0])), C.long(capacity), errPtr, msg, buflen)
		})
		if err != nil {
			return "", err
		}
		if !bufferSaturated(buf) {
			return bufToString(buf), nil
		}
		if capacity >= MaxStrBufLen {
			return "", ErrBufferCeiling
		}
	}
}

func StateSaturatedLiquidKeyedOutput(h, param int64) (float64, error) {
	var v C.double
	err := callWithErr(func(errPtr *C.long, msg *C.char, buflen C.long) {
		v = C.AbstractState_saturated_liquid_keyed_output(C.long(h), C.long(param), errPtr, msg, buflen)
	})
	return float64(v), err
}

func StateSaturatedVaporKeyedOutput(h, param int64) (float64, error) {
	var v C.double
	err := callWithErr(func(errPtr *C.long, msg *C.char, buflen C.long) {
		v = C.AbstractState_saturated_vapor_keyed_output(C.long(h), C.long(param), errPtr, msg, buflen)
	})
	return float64(v), err
}

func StateKeyedOutputSatState(h int64, satState string, param int64) (float64, error) {
	cState := C.CString(satState)
	defer C.free(unsafe.Pointer(cState))
	var v C.double
	err := callWithErr(func(errPtr *C.long, msg *C.char, buflen C.long) {
		v = C.AbstractState_keyed_output_satState(C.long(h), cState, C.long(param), errPtr, msg, buflen)
	})
	return float64(v), err
}

func StateFirstSaturationDeriv(h, of, wrt int64) (float64, error) {
	var v C.double
	err := callWithErr(func(errPtr *C.long, msg *C.char, buflen C.long) {
		v = C.AbstractState_first_saturation_deriv(C.long(h), C.long(of), C.long(wrt), errPtr, msg, buflen)
	})
	return float64(v), err
}

func StateFirstPartialDeriv(h, of, wrt, constant int64) (float64, error) {
	var v C.double
	err := callWithErr(func(errPtr *C.long, msg *C.char, buflen C.long) {
		v = C.AbstractState_first_partial_deriv(C.long(h), C.long(of), C.long(wrt), C.long(constant), errPtr, msg, buflen)
	})
	return float64(v), err
}

func StateSecondPartialDeriv(h, of1, wrt1, constant1, wrt2, constant2 int64) (float64, error) {
	var v C.double
	err := callWithErr(func(errPtr *C.long, msg *C.char, buflen C.long) {
		v = C.AbstractState_second_partial_deriv(C.long(h), C.long(of1), C.long(wrt1), C.long(constant1),
			C.long(wrt2), C.long(constant2), errPtr, msg, buflen)
	})
	return float64(v), err
}

func StateFirstTwoPhaseDeriv(h, of, wrt, constant int64) (float64, error) {
	var v C.double
	err := callWithErr(func(errPtr *C.long, msg *C.char, buflen C.long) {
		v = C.AbstractState_first_two_phase_deriv(C.long(h), C.long(of), C.long(wrt), C.long(constant), errPtr, msg, buflen)
	})
	return float64(v), err
}

func StateFirstTwoPhaseDerivSplined(h, of, wrt, constant int64, xEnd float64) (float64, error) {
	var v C.double
	err := callWithErr(func(errPtr *C.long, msg *C.char, buflen C.long) {
		v = C.AbstractState_first_two_phase_deriv_splined(C.long(h), C.long(of), C.long(wrt), C.long(constant),
			C.double(xEnd), errPtr, msg, buflen)
	})
	return float64(v), err
}

func StateSecondTwoPhaseDeriv(h, of1, wrt1, constant1, wrt2, constant2 int64) (float64, error) {
	var v C.double
	err := callWithErr(func(errPtr *C.long, msg *C.char, buflen C.long) {
		v = C.AbstractState_second_two_phase_deriv(C.long(h), C.long(of1), C.long(wrt1), C.long(constant1),
			C.long(wrt2), C.long(constant2), errPtr, msg, buflen)
	})
	return float64(v), err
}

func StateSetFractions(h int64, fractions []float64) error {
	return callWithErr(func(errPtr *C.long, msg *C.char, buflen C.long) {
		C.AbstractState_set_fractions(C.long(h), doublePtr(fractions), C.long(len(fractions)), errPtr, msg, buflen)
	})
}

// StateMoleFractions fills the provided buffer and returns the component
// count reported by the native side, which may exceed len(buf). The count is
// returned alongside an undersized-buffer error so the caller can grow and
// retry.
func StateMoleFractions(h int64, buf []float64) (int, error) {
	var n C.long
	err := callWithErr(func(errPtr *C.long, msg *C.char, buflen C.long) {
		C.AbstractState_get_mole_fractions(C.long(h), doublePtr(buf), C.long(len(buf)), &n, errPtr, msg, buflen)
	})
	return int(n), err
}

func StateMoleFractionsSatState(h int64, satState string, buf []float64) (int, error) {
	cState := C.CString(satState)
	defer C.free(unsafe.Pointer(cState))
	var n C.long
	err := callWithErr(func(errPtr *C.long, msg *C.char, buflen C.long) {
		C.AbstractState_get_mole_fractions_satState(C.long(h), cState, doublePtr(buf), C.long(len(buf)), &n, errPtr, msg, buflen)
	})
	return int(n), err
}

func StateFugacity(h, i int64) (float64, error) {
	var v C.double
	err := callWithErr(func(errPtr *C.long, msg *C.char, buflen C.long) {
		v = C.AbstractState_get_fugacity(C.long(h), C.long(i), errPtr, msg, buflen)
	})
	return float64(v), err
}

func StateFugacityCoefficient(h, i int64) (float64, error) {
	var v C.double
	err := callWithErr(func(errPtr *C.long, msg *C.char, buflen C.long) {
		v = C.AbstractState_get_fugacity_coefficient(C.long(h), C.long(i), errPtr, msg, buflen)
	})
	return float64(v), err
}

// StateUpdateAndCommonOut performs a batched update over parallel input
// arrays and extracts the five common outputs in one native call. All slices
// must have equal length; the caller enforces this.
func StateUpdateAndCommonOut(h, pair int64, v1, v2, t, p, rhomolar, hmolar, smolar []float64) error {
	return callWithErr(func(errPtr *C.long, msg *C.char, buflen C.long) {
		C.AbstractState_update_and_common_out(C.long(h), C.long(pair),
			doublePtr(v1), doublePtr(v2), C.long(len(v1)),
			doublePtr(t), doublePtr(p), doublePtr(rhomolar), doublePtr(hmolar), doublePtr(smolar),
			errPtr, msg, buflen)
	})
}

func StateUpdateAnd1Out(h, pair int64, v1, v2 []float64, outParam int64, out []float64) error {
	return callWithErr(func(errPtr *C.long, msg *C.char, buflen C.long) {
		C.AbstractState_update_and_1_out(C.long(h), C.long(pair),
			doublePtr(v1), doublePtr(v2), C.long(len(v1)),
			C.long(outParam), doublePtr(out), errPtr, msg, buflen)
	})
}

func StateUpdateAnd5Out(h, pair int64, v1, v2 []float64, outParams []int64, out1, out2, out3, out4, out5 []float64) error {
	// Copy through a []C.long; the size of a C long is platform dependent.
	cOuts := make([]C.long, len(outParams))
	for i, p := range outParams {
		cOuts[i] = C.long(p)
	}
	var outsPtr *C.long
	if len(cOuts) > 0 {
		outsPtr = &cOuts[0]
	}
	return callWithErr(func(errPtr *C.long, msg *C.char, buflen C.long) {
		C.AbstractState_update_and_5_out(C.long(h), C.long(pair),
			doublePtr(v1), doublePtr(v2), C.long(len(v1)),
			outsPtr,
			doublePtr(out1), doublePtr(out2), doublePtr(out3), doublePtr(out4), doublePtr(out5),
			errPtr, msg, buflen)
	})
}

func StateSetBinaryInteractionDouble(h, i, j int64, parameter string, value float64) error {
	cParam := C.CString(parameter)
	defer C.free(unsafe.Pointer(cParam))
	return callWithErr(func(errPtr *C.long, msg *C.char, buflen C.long) {
		C.AbstractState_set_binary_interaction_double(C.long(h), C.long(i), C.long(j), cParam, C.double(value), errPtr, msg, buflen)
	})
}

func StateSetCubicAlphaC(h, i int64, parameter string, c1, c2, c3 float64) error {
	cParam := C.CString(parameter)
	defer C.free(unsafe.Pointer(cParam))
	return callWithErr(func(errPtr *C.long, msg *C.char, buflen C.long) {
		C.AbstractState_set_cubic_alpha_C(C.long(h), C.long(i), cParam, C.double(c1), C.double(c2), C.double(c3), errPtr, msg, buflen)
	})
}

func StateSetFluidParameterDouble(h, i int64, parameter string, value float64) error {
	cParam := C.CString(parameter)
	defer C.free(unsafe.Pointer(cParam))
	return callWithErr(func(errPtr *C.long, msg *C.char, buflen C.long) {
		C.AbstractState_set_fluid_parameter_double(C.long(h), C.long(i), cParam, C.double(value), errPtr, msg, buflen)
	})
}

func StateBuildPhaseEnvelope(h int64, level string) error {
	cLevel := C.CString(level)
	defer C.free(unsafe.Pointer(cLevel))
	return callWithErr(func(errPtr *C.long, msg *C.char, buflen C.long) {
		C.AbstractState_build_phase_envelope(C.long(h), cLevel, errPtr, msg, buflen)
	})
}

// StatePhaseEnvelopeData fills the provided envelope arrays and reports the
// actual point and component counts. The native side records the actual sizes
// before rejecting an undersized buffer, so the counts are returned alongside
// the error to let the caller grow and retry.
func StatePhaseEnvelopeData(h int64, maxPoints, maxComponents int, t, p, rhoVap, rhoLiq, x, y []float64) (points, components int, err error) {
	var actualLength, actualComponents C.long
	err = callWithErr(func(errPtr *C.long, msg *C.char, buflen C.long) {
		C.AbstractState_get_phase_envelope_data_checkedMemory(C.long(h),
			C.long(maxPoints), C.long(maxComponents),
			doublePtr(t), doublePtr(p), doublePtr(rhoVap), doublePtr(rhoLiq),
			doublePtr(x), doublePtr(y),
			&actualLength, &actualComponents, errPtr, msg, buflen)
	})
	return int(actualLength), int(actualComponents), err
}

func StateBuildSpinodal(h int64) error {
	return callWithErr(func(errPtr *C.long, msg *C.char, buflen C.long) {
		C.AbstractState_build_spinodal(C.long(h), errPtr, msg, buflen)
	})
}

func StateSpinodalData(h int64, tau, delta, m1 []float64) error {
	return callWithErr(func(errPtr *C.long, msg *C.char, buflen C.long) {
		C.AbstractState_get_spinodal_data(C.long(h), C.long(len(tau)),
			doublePtr(tau), doublePtr(delta), doublePtr(m1), errPtr, msg, buflen)
	})
}

func StateAllCriticalPoints(h int64, t, p, rhomolar []float64, stable []int64) error {
	cStable := make([]C.long, len(stable))
	for i, s := range stable {
		cStable[i] = C.long(s)
	}
	var stablePtr *C.long
	if len(cStable) > 0 {
		stablePtr = &cStable[0]
	}
	err := callWithErr(func(errPtr *C.long, msg *C.char, buflen C.long) {
		C.AbstractState_all_critical_points(C.long(h), C.long(len(t)),
			doublePtr(t), doublePtr(p), doublePtr(rhomolar), stablePtr, errPtr, msg, buflen)
	})
	if err != nil {
		return err
	}
	for i := range stable {
		stable[i] = int64(cStable[i])
	}
	return nil
}
