package coolprop

import (
	"errors"
	"testing"
)

func TestPhaseNamesAndSpecifiers(t *testing.T) {
	cases := []struct {
		phase     Phase
		name      string
		specifier string
	}{
		{PhaseLiquid, "liquid", "phase_liquid"},
		{PhaseSupercriticalGas, "supercritical_gas", "phase_supercritical_gas"},
		{PhaseGas, "gas", "phase_gas"},
		{PhaseTwoPhase, "twophase", "phase_twophase"},
		{PhaseNotImposed, "not_imposed", "phase_not_imposed"},
	}
	for _, tc := range cases {
		if got := tc.phase.String(); got != tc.name {
			t.Errorf("Phase(%d).String() = %q, want %q", int(tc.phase), got, tc.name)
		}
		spec, err := tc.phase.specifier()
		if err != nil {
			t.Errorf("Phase(%d).specifier(): %v", int(tc.phase), err)
			continue
		}
		if spec != tc.specifier {
			t.Errorf("Phase(%d).specifier() = %q, want %q", int(tc.phase), spec, tc.specifier)
		}
	}
}

func TestPhaseFromIndex(t *testing.T) {
	for code := int64(0); code < int64(phaseCount); code++ {
		p, err := phaseFromIndex(code)
		if err != nil {
			t.Fatalf("phaseFromIndex(%d): %v", code, err)
		}
		if int64(p) != code {
			t.Fatalf("phaseFromIndex(%d) = %d", code, int(p))
		}
	}

	if _, err := phaseFromIndex(int64(phaseCount)); !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("out-of-range index should return ErrInvalidInput, got %v", err)
	}
	if _, err := phaseFromIndex(-1); !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("negative index should return ErrInvalidInput, got %v", err)
	}
}

func TestSatStateTokens(t *testing.T) {
	cases := map[SatState]string{
		SatLiquid:   "liquid",
		SatGas:      "gas",
		SatTwoPhase: "twophase",
	}
	for sat, want := range cases {
		token, err := sat.token()
		if err != nil {
			t.Fatalf("SatState(%d).token(): %v", int(sat), err)
		}
		if token != want {
			t.Fatalf("SatState(%d).token() = %q, want %q", int(sat), token, want)
		}
	}
	if _, err := SatState(99).token(); !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("unknown sat state should return ErrInvalidInput, got %v", err)
	}
}
