package coolprop

import "fmt"

// Phase is a thermodynamic phase classification. Values mirror the native
// library's phase indices, so PhaseLiquid must stay zero and the order must
// not change.
type Phase int

const (
	PhaseLiquid Phase = iota
	PhaseSupercritical
	PhaseSupercriticalGas
	PhaseSupercriticalLiquid
	PhaseCriticalPoint
	PhaseGas
	PhaseTwoPhase
	PhaseUnknown
	PhaseNotImposed

	phaseCount
)

var phaseNames = [phaseCount]string{
	PhaseLiquid:              "liquid",
	PhaseSupercritical:       "supercritical",
	PhaseSupercriticalGas:    "supercritical_gas",
	PhaseSupercriticalLiquid: "supercritical_liquid",
	PhaseCriticalPoint:       "critical_point",
	PhaseGas:                 "gas",
	PhaseTwoPhase:            "twophase",
	PhaseUnknown:             "unknown",
	PhaseNotImposed:          "not_imposed",
}

// specifierTokens are the strings accepted by the native phase-imposition
// call. They differ from the display names.
var specifierTokens = [phaseCount]string{
	PhaseLiquid:              "phase_liquid",
	PhaseSupercritical:       "phase_supercritical",
	PhaseSupercriticalGas:    "phase_supercritical_gas",
	PhaseSupercriticalLiquid: "phase_supercritical_liquid",
	PhaseCriticalPoint:       "phase_critical_point",
	PhaseGas:                 "phase_gas",
	PhaseTwoPhase:            "phase_twophase",
	PhaseUnknown:             "phase_unknown",
	PhaseNotImposed:          "phase_not_imposed",
}

func (p Phase) String() string {
	if p < 0 || p >= phaseCount {
		return fmt.Sprintf("Phase(%d)", int(p))
	}
	return phaseNames[p]
}

func (p Phase) specifier() (string, error) {
	if p < 0 || p >= phaseCount {
		return "", fmt.Errorf("%w: unknown phase %d", ErrInvalidInput, int(p))
	}
	return specifierTokens[p], nil
}

// phaseFromIndex maps a native phase index back to a Phase value.
func phaseFromIndex(idx int64) (Phase, error) {
	p := Phase(idx)
	if p < 0 || p >= phaseCount {
		return PhaseUnknown, fmt.Errorf("%w: native phase index %d out of range", ErrInvalidInput, idx)
	}
	return p, nil
}

// SatState selects which coexisting phase a saturation-state query targets.
type SatState int

const (
	SatLiquid SatState = iota
	SatGas
	SatTwoPhase
)

var satStateTokens = [...]string{
	SatLiquid:   "liquid",
	SatGas:      "gas",
	SatTwoPhase: "twophase",
}

func (s SatState) String() string {
	if s < 0 || int(s) >= len(satStateTokens) {
		return fmt.Sprintf("SatState(%d)", int(s))
	}
	return satStateTokens[s]
}

func (s SatState) token() (string, error) {
	if s < 0 || int(s) >= len(satStateTokens) {
		return "", fmt.Errorf("%w: unknown saturation state %d", ErrInvalidInput, int(s))
	}
	return satStateTokens[s], nil
}
