//go:build cgo && !windows

package bindings

/*
#cgo CFLAGS: -I${SRCDIR}
#cgo LDFLAGS: -lCoolProp
#cgo linux LDFLAGS: -L/usr/local/lib -L/usr/local/lib64
#cgo darwin LDFLAGS: -L/usr/local/lib -L/opt/homebrew/lib

#include <stdlib.h>
#include "coolpropapi.h"
*/
import "C"

import "unsafe"

// callWithErr invokes a handle-based native entry point with the out-of-band
// (errcode, message buffer, buffer length) triple and translates a non-zero
// errcode into a NativeError. The message buffer is NUL-terminated defensively
// before conversion in case the native side filled it completely.
func callWithErr(f func(errPtr *C.long, msg *C.char, buflen C.long)) error {
	var code C.long
	buf := make([]byte, ErrBufLen)
	f(&code, (*C.char)(unsafe.Pointer(&buf[0])), C.long(ErrBufLen))
	if code != 0 {
		buf[ErrBufLen-1] = 0
		return &NativeError{Code: int64(code), Message: bufToString(buf)}
	}
	return nil
}

func doublePtr(s []float64) *C.double {
	if len(s) == 0 {
		return nil
	}
	return (*C.double)(unsafe.Pointer(&s[0]))
}

// PropsSI evaluates a thermodynamic property for a fluid or mixture string.
// Failures are signalled by a non-finite return value; the caller recovers
// the message through GlobalParamString("errstring").
func PropsSI(output, name1 string, prop1 float64, name2 string, prop2 float64, fluid string) (float64, error) {
	cOutput := C.CString(output)
	defer C.free(unsafe.Pointer(cOutput))
	cName1 := C.CString(name1)
	defer C.free(unsafe.Pointer(cName1))
	cName2 := C.CString(name2)
	defer C.free(unsafe.Pointer(cName2))
	cFluid := C.CString(fluid)
	defer C.free(unsafe.Pointer(cFluid))

	v := C.PropsSI(cOutput, cName1, C.double(prop1), cName2, C.double(prop2), cFluid)
	return float64(v), nil
}

// Props1SI evaluates a state-independent ("trivial") fluid property.
func Props1SI(fluid, output string) (float64, error) {
	cFluid := C.CString(fluid)
	defer C.free(unsafe.Pointer(cFluid))
	cOutput := C.CString(output)
	defer C.free(unsafe.Pointer(cOutput))

	v := C.Props1SI(cFluid, cOutput)
	return float64(v), nil
}

// HAPropsSI evaluates a psychrometric property of humid air. Three inputs are
// required because moist air is a binary mixture.
func HAPropsSI(output, name1 string, prop1 float64, name2 string, prop2 float64, name3 string, prop3 float64) (float64, error) {
	cOutput := C.CString(output)
	defer C.free(unsafe.Pointer(cOutput))
	cName1 := C.CString(name1)
	defer C.free(unsafe.Pointer(cName1))
	cName2 := C.CString(name2)
	defer C.free(unsafe.Pointer(cName2))
	cName3 := C.CString(name3)
	defer C.free(unsafe.Pointer(cName3))

	v := C.HAPropsSI(cOutput, cName1, C.double(prop1), cName2, C.double(prop2), cName3, C.double(prop3))
	return float64(v), nil
}

// PhaseSI classifies the phase at the given state as a short label. The
// output buffer starts at PhaseStrBufLen and doubles on failure up to
// MaxPhaseStrBufLen, after which ErrQueryFailed is returned.
func PhaseSI(name1 string, prop1 float64, name2 string, prop2 float64, fluid string) (string, error) {
	cName1 := C.CString(name1)
	defer C.free(unsafe.Pointer(cName1))
	cName2 := C.CString(name2)
	defer C.free(unsafe.Pointer(cName2))
	cFluid := C.CString(fluid)
	defer C.free(unsafe.Pointer(cFluid))

	for capacity := PhaseStrBufLen; ; capacity *= 2 {
		buf := make([]byte, capacity)
		status := C.PhaseSI(cName1, C.double(prop1), cName2, C.double(prop2), cFluid,
			(*C.char)(unsafe.Pointer(&buf[0])), C.int(capacity))
		if status == 1 {
			buf[capacity-1] = 0
			return bufToString(buf), nil
		}
		if capacity >= MaxPhaseStrBufLen {
			return "", ErrQueryFailed
		}
	}
}

// GlobalParamString fetches a global informational string such as "version",
// "FluidsList", or the "errstring" error channel.
func GlobalParamString(param string) (string, error) {
	cParam := C.CString(param)
	defer C.free(unsafe.Pointer(cParam))

	for capacity := DefaultStrBufLen; ; capacity *= 2 {
		buf := make([]byte, capacity)
		status := C.get_global_param_string(cParam, (*C.char)(unsafe.Pointer(&buf[0])), C.int(capacity))
		if status == 1 {
			buf[capacity-1] = 0
			return bufToString(buf), nil
		}
		if capacity >= MaxStrBufLen {
			return "", ErrQueryFailed
		}
	}
}

// FluidParamString fetches a fluid metadata field ("aliases", "CAS", ...).
func FluidParamString(fluid, param string) (string, error) {
	cFluid := C.CString(fluid)
	defer C.free(unsafe.Pointer(cFluid))
	cParam := C.CString(param)
	defer C.free(unsafe.Pointer(cParam))

	for capacity := DefaultStrBufLen; ; capacity *= 2 {
		buf := make([]byte, capacity)
		status := C.get_fluid_param_string(cFluid, cParam, (*C.char)(unsafe.Pointer(&buf[0])), C.int(capacity))
		if status == 1 {
			buf[capacity-1] = 0
			return bufToString(buf), nil
		}
		if capacity >= MaxStrBufLen {
			return "", ErrQueryFailed
		}
	}
}

// ParamIndex resolves a property token to its native integer index. A
// negative index means the token is unknown to the native library.
func ParamIndex(name string) (int64, error) {
	cName := C.CString(name)
	defer C.free(unsafe.Pointer(cName))
	return int64(C.get_param_index(cName)), nil
}

// InputPairIndex resolves an input-pair token to its native integer index.
func InputPairIndex(name string) (int64, error) {
	cName := C.CString(name)
	defer C.free(unsafe.Pointer(cName))
	return int64(C.get_input_pair_index(cName)), nil
}

// SetReferenceState applies an enthalpy/entropy reference-state convention to
// a fluid. Status != 1 means the native side rejected it.
func SetReferenceState(fluid, referenceState string) error {
	cFluid := C.CString(fluid)
	defer C.free(unsafe.Pointer(cFluid))
	cState := C.CString(referenceState)
	defer C.free(unsafe.Pointer(cState))

	if C.set_reference_stateS(cFluid, cState) != 1 {
		return ErrQueryFailed
	}
	return nil
}

// SetConfigString mutates a global string configuration key. The native call
// returns void; callers detect rejection through the errstring protocol.
func SetConfigString(key, value string) error {
	cKey := C.CString(key)
	defer C.free(unsafe.Pointer(cKey))
	cValue := C.CString(value)
	defer C.free(unsafe.Pointer(cValue))

	C.set_config_string(cKey, cValue)
	return nil
}

// SetConfigDouble mutates a global floating-point configuration key.
func SetConfigDouble(key string, value float64) error {
	cKey := C.CString(key)
	defer C.free(unsafe.Pointer(cKey))

	C.set_config_double(cKey, C.double(value))
	return nil
}

// SetConfigBool mutates a global boolean configuration key.
func SetConfigBool(key string, value bool) error {
	cKey := C.CString(key)
	defer C.free(unsafe.Pointer(cKey))

	C.set_config_bool(cKey, C.bool(value))
	return nil
}
