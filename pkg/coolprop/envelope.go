package coolprop

import (
	"math"

	"github.com/fluidkit/coolprop-go/internal/bindings"
)

const (
	envelopeStartPoints = 256

	spinodalStartPoints = 256
	spinodalMaxPoints   = 8192

	criticalStartPoints = 4
	criticalMaxPoints   = 64
)

// PhaseEnvelope is the saturation boundary of a mixture, one entry per traced
// point. VaporComposition and LiquidComposition hold one slice per point with
// one mole fraction per component.
type PhaseEnvelope struct {
	T                 []float64 // temperature, K
	P                 []float64 // pressure, Pa
	RhomolarVapor     []float64 // vapor molar density, mol/m^3
	RhomolarLiquid    []float64 // liquid molar density, mol/m^3
	VaporComposition  [][]float64
	LiquidComposition [][]float64
}

// SpinodalCurve holds the spinodal of a mixture in reduced coordinates: tau
// (reciprocal reduced temperature), delta (reduced density), and M1, the
// stability criterion that crosses zero on the curve.
type SpinodalCurve struct {
	Tau   []float64
	Delta []float64
	M1    []float64
}

// CriticalPoint is one critical point of a mixture. Mixtures can have more
// than one; Stable reports whether the native stability analysis accepted it.
type CriticalPoint struct {
	T        float64 // temperature, K
	P        float64 // pressure, Pa
	Rhomolar float64 // molar density, mol/m^3
	Stable   bool
}

// BuildPhaseEnvelope traces the phase envelope for the current composition.
// level selects the native refinement preset; "none" is the default trace.
func (s *State) BuildPhaseEnvelope(level string) error {
	if err := s.ensureOpen(); err != nil {
		return err
	}
	if err := checkNoNUL("level", level); err != nil {
		return err
	}
	return wrapNative("AbstractState_build_phase_envelope", bindings.StateBuildPhaseEnvelope(s.handle, level))
}

// PhaseEnvelope returns the envelope traced by BuildPhaseEnvelope. The native
// side reports the required sizes when the first attempt is too small, so at
// most two native calls are made.
func (s *State) PhaseEnvelope() (*PhaseEnvelope, error) {
	if err := s.ensureOpen(); err != nil {
		return nil, err
	}
	points := envelopeStartPoints
	components := 2
	if names, err := s.FluidNames(); err == nil && len(names) > components {
		components = len(names)
	}
	for {
		t := make([]float64, points)
		p := make([]float64, points)
		rhoVap := make([]float64, points)
		rhoLiq := make([]float64, points)
		x := make([]float64, points*components)
		y := make([]float64, points*components)

		n, c, err := bindings.StatePhaseEnvelopeData(s.handle, points, components, t, p, rhoVap, rhoLiq, x, y)
		if err != nil {
			if n > points || c > components {
				points, components = max(n, points), max(c, components)
				continue
			}
			return nil, wrapNative("AbstractState_get_phase_envelope_data", err)
		}
		return &PhaseEnvelope{
			T:                 t[:n],
			P:                 p[:n],
			RhomolarVapor:     rhoVap[:n],
			RhomolarLiquid:    rhoLiq[:n],
			VaporComposition:  reshapeCompositions(y, n, c),
			LiquidComposition: reshapeCompositions(x, n, c),
		}, nil
	}
}

// reshapeCompositions splits a flat points-by-components array into one
// composition slice per point.
func reshapeCompositions(flat []float64, points, components int) [][]float64 {
	out := make([][]float64, points)
	for i := range out {
		out[i] = flat[i*components : (i+1)*components : (i+1)*components]
	}
	return out
}

// BuildSpinodal computes the spinodal for the current composition.
func (s *State) BuildSpinodal() error {
	if err := s.ensureOpen(); err != nil {
		return err
	}
	return wrapNative("AbstractState_build_spinodal", bindings.StateBuildSpinodal(s.handle))
}

// SpinodalData returns the curve computed by BuildSpinodal. The native call
// does not report the point count, so the buffers grow until the curve no
// longer fills them completely.
func (s *State) SpinodalData() (*SpinodalCurve, error) {
	if err := s.ensureOpen(); err != nil {
		return nil, err
	}
	for capacity := spinodalStartPoints; ; capacity *= 2 {
		tau := make([]float64, capacity)
		delta := make([]float64, capacity)
		m1 := make([]float64, capacity)
		err := bindings.StateSpinodalData(s.handle, tau, delta, m1)
		if err != nil {
			if capacity < spinodalMaxPoints {
				continue
			}
			return nil, wrapNative("AbstractState_get_spinodal_data", err)
		}
		n := filledPrefix(tau, delta, m1)
		if n == capacity && capacity < spinodalMaxPoints {
			continue
		}
		return &SpinodalCurve{Tau: tau[:n], Delta: delta[:n], M1: m1[:n]}, nil
	}
}

// filledPrefix returns the length of the data prefix shared by the given
// arrays, trimming the zero tail the native side never wrote to.
func filledPrefix(arrays ...[]float64) int {
	n := 0
	for _, a := range arrays {
		if len(a) > n {
			n = len(a)
		}
	}
	for n > 0 {
		allZero := true
		for _, a := range arrays {
			if a[n-1] != 0 {
				allZero = false
				break
			}
		}
		if !allZero {
			break
		}
		n--
	}
	return n
}

// AllCriticalPoints finds every critical point of the current composition.
// Pure fluids have one; mixtures may have several or none that are stable.
func (s *State) AllCriticalPoints() ([]CriticalPoint, error) {
	if err := s.ensureOpen(); err != nil {
		return nil, err
	}
	for capacity := criticalStartPoints; ; capacity *= 2 {
		t := make([]float64, capacity)
		p := make([]float64, capacity)
		rhomolar := make([]float64, capacity)
		stable := make([]int64, capacity)
		// Untouched entries stay NaN so the written prefix is detectable.
		for i := range t {
			t[i] = math.NaN()
		}
		err := bindings.StateAllCriticalPoints(s.handle, t, p, rhomolar, stable)
		if err != nil {
			if capacity < criticalMaxPoints {
				continue
			}
			return nil, wrapNative("AbstractState_all_critical_points", err)
		}
		points := make([]CriticalPoint, 0, capacity)
		for i := range t {
			if math.IsNaN(t[i]) {
				break
			}
			points = append(points, CriticalPoint{
				T:        t[i],
				P:        p[i],
				Rhomolar: rhomolar[i],
				Stable:   stable[i] != 0,
			})
		}
		if len(points) == capacity && capacity < criticalMaxPoints {
			continue
		}
		return points, nil
	}
}
