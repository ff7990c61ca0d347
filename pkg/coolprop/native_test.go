package coolprop_test

import (
	"errors"
	"math"
	"strings"
	"testing"

	"github.com/fluidkit/coolprop-go/pkg/coolprop"
)

// requireNative skips the test when the binary was built without the native
// library.
func requireNative(t *testing.T) {
	t.Helper()
	if _, err := coolprop.Version(); errors.Is(err, coolprop.ErrNotBuilt) {
		t.Skip("native library not linked")
	}
}

func closeTo(got, want, tol float64) bool {
	return math.Abs(got-want) <= tol
}

func TestPropsSIWaterBoilingPoint(t *testing.T) {
	requireNative(t)

	tBoil, err := coolprop.PropsSI("T", "P", 101325, "Q", 0, "Water")
	if err != nil {
		t.Fatalf("PropsSI: %v", err)
	}
	if !closeTo(tBoil, 373.1243, 1e-3) {
		t.Fatalf("boiling point = %v, want ~373.1243", tBoil)
	}
}

func TestPropsSIReportsSolverFailure(t *testing.T) {
	requireNative(t)

	_, err := coolprop.PropsSI("T", "P", -1, "Q", 0, "Water")
	if err == nil {
		t.Fatal("negative pressure should fail")
	}
	var cpErr *coolprop.Error
	if !errors.As(err, &cpErr) {
		t.Fatalf("want *coolprop.Error, got %T: %v", err, err)
	}
	if cpErr.Message == "" || cpErr.Message == "unknown error" {
		t.Fatalf("expected a recovered native message, got %q", cpErr.Message)
	}
}

func TestProps1SI(t *testing.T) {
	requireNative(t)

	tCrit, err := coolprop.Props1SI("Water", "Tcrit")
	if err != nil {
		t.Fatalf("Props1SI: %v", err)
	}
	if !closeTo(tCrit, 647.096, 1e-2) {
		t.Fatalf("Tcrit = %v, want ~647.096", tCrit)
	}
}

func TestHAPropsSI(t *testing.T) {
	requireNative(t)

	// Wet-bulb temperature at saturation equals the dry-bulb temperature.
	tWB, err := coolprop.HAPropsSI("B", "T", 298.15, "P", 101325, "R", 1.0)
	if err != nil {
		t.Fatalf("HAPropsSI: %v", err)
	}
	if !closeTo(tWB, 298.15, 1e-3) {
		t.Fatalf("wet bulb = %v, want 298.15", tWB)
	}
}

func TestPhaseSI(t *testing.T) {
	requireNative(t)

	phase, err := coolprop.PhaseSI("T", 300, "P", 101325, "Water")
	if err != nil {
		t.Fatalf("PhaseSI: %v", err)
	}
	if phase != "liquid" {
		t.Fatalf("phase = %q, want liquid", phase)
	}
}

func TestGlobalStrings(t *testing.T) {
	requireNative(t)

	version, err := coolprop.Version()
	if err != nil || version == "" {
		t.Fatalf("Version = %q, %v", version, err)
	}
	fluids, err := coolprop.FluidsList()
	if err != nil {
		t.Fatalf("FluidsList: %v", err)
	}
	found := false
	for _, f := range fluids {
		if f == "Water" {
			found = true
			break
		}
	}
	if !found {
		t.Fatal("Water missing from fluids list")
	}

	cas, err := coolprop.FluidParamString("Water", "CAS")
	if err != nil {
		t.Fatalf("FluidParamString: %v", err)
	}
	if cas != "7732-18-5" {
		t.Fatalf("CAS = %q, want 7732-18-5", cas)
	}
}

func TestGlobalParamStringUnknownKey(t *testing.T) {
	requireNative(t)

	_, err := coolprop.GlobalParamString("definitely_not_a_global_param")
	if err == nil {
		t.Fatal("unknown global parameter should fail")
	}
	var cpErr *coolprop.Error
	if !errors.As(err, &cpErr) {
		t.Fatalf("want *coolprop.Error, got %T: %v", err, err)
	}
	// The message must be the native library's own explanation, recovered
	// from the global error channel.
	if cpErr.Message == "" || cpErr.Message == "unknown error" {
		t.Fatalf("expected a recovered native message, got %q", cpErr.Message)
	}
}

func TestStateLifecycle(t *testing.T) {
	requireNative(t)

	state, err := coolprop.NewState("HEOS", "Water")
	if err != nil {
		t.Fatalf("NewState: %v", err)
	}

	backend, err := state.BackendName()
	if err != nil {
		t.Fatalf("BackendName: %v", err)
	}
	if !strings.Contains(backend, "Helmholtz") {
		t.Fatalf("backend = %q, want a Helmholtz backend", backend)
	}

	names, err := state.FluidNames()
	if err != nil {
		t.Fatalf("FluidNames: %v", err)
	}
	if len(names) != 1 || names[0] != "Water" {
		t.Fatalf("fluid names = %v", names)
	}

	if err := state.Close(); err != nil {
		t.Fatalf("Close: %v", err)
	}
	if err := state.Close(); err != nil {
		t.Fatalf("second Close should be a no-op, got %v", err)
	}
	if _, err := state.Temperature(); !errors.Is(err, coolprop.ErrClosed) {
		t.Fatalf("use after Close = %v, want ErrClosed", err)
	}
	if err := state.Update(coolprop.PTInputs, 101325, 300); !errors.Is(err, coolprop.ErrClosed) {
		t.Fatalf("Update after Close = %v, want ErrClosed", err)
	}
}

func TestStateUpdateAndOutputs(t *testing.T) {
	requireNative(t)

	state, err := coolprop.NewState("HEOS", "Water")
	if err != nil {
		t.Fatalf("NewState: %v", err)
	}
	defer state.Close()

	if err := state.Update(coolprop.PTInputs, 101325, 300); err != nil {
		t.Fatalf("Update: %v", err)
	}
	temp, err := state.Temperature()
	if err != nil {
		t.Fatalf("Temperature: %v", err)
	}
	if !closeTo(temp, 300, 1e-9) {
		t.Fatalf("T = %v, want 300", temp)
	}
	rho, err := state.KeyedOutput(coolprop.ParamDmass)
	if err != nil {
		t.Fatalf("KeyedOutput: %v", err)
	}
	if !closeTo(rho, 996.56, 0.5) {
		t.Fatalf("Dmass = %v, want ~996.56", rho)
	}

	phase, err := state.CurrentPhase()
	if err != nil {
		t.Fatalf("CurrentPhase: %v", err)
	}
	if phase != coolprop.PhaseLiquid {
		t.Fatalf("phase = %v, want liquid", phase)
	}
}

func TestStateSpecifyPhase(t *testing.T) {
	requireNative(t)

	state, err := coolprop.NewState("HEOS", "Water")
	if err != nil {
		t.Fatalf("NewState: %v", err)
	}
	defer state.Close()

	if err := state.SpecifyPhase(coolprop.PhaseLiquid); err != nil {
		t.Fatalf("SpecifyPhase: %v", err)
	}
	if err := state.Update(coolprop.PTInputs, 101325, 300); err != nil {
		t.Fatalf("Update: %v", err)
	}
	phase, err := state.CurrentPhase()
	if err != nil {
		t.Fatalf("CurrentPhase: %v", err)
	}
	if phase != coolprop.PhaseLiquid {
		t.Fatalf("phase = %v, want imposed liquid", phase)
	}
	if err := state.UnspecifyPhase(); err != nil {
		t.Fatalf("UnspecifyPhase: %v", err)
	}
}

func TestStateSaturationQueries(t *testing.T) {
	requireNative(t)

	state, err := coolprop.NewState("HEOS", "Water")
	if err != nil {
		t.Fatalf("NewState: %v", err)
	}
	defer state.Close()

	if err := state.Update(coolprop.PQInputs, 101325, 0.5); err != nil {
		t.Fatalf("Update: %v", err)
	}
	rhoLiq, err := state.SaturatedLiquidKeyedOutput(coolprop.ParamDmass)
	if err != nil {
		t.Fatalf("SaturatedLiquidKeyedOutput: %v", err)
	}
	rhoVap, err := state.SaturatedVaporKeyedOutput(coolprop.ParamDmass)
	if err != nil {
		t.Fatalf("SaturatedVaporKeyedOutput: %v", err)
	}
	if rhoLiq <= rhoVap {
		t.Fatalf("liquid density %v should exceed vapor density %v", rhoLiq, rhoVap)
	}

	tSatLiq, err := state.KeyedOutputSatState(coolprop.SatLiquid, coolprop.ParamT)
	if err != nil {
		t.Fatalf("KeyedOutputSatState: %v", err)
	}
	if !closeTo(tSatLiq, 373.1243, 1e-3) {
		t.Fatalf("saturation T = %v, want ~373.1243", tSatLiq)
	}

	dpdt, err := state.FirstSaturationDeriv(coolprop.ParamP, coolprop.ParamT)
	if err != nil {
		t.Fatalf("FirstSaturationDeriv: %v", err)
	}
	// Clausius-Clapeyron at 1 atm for water is roughly 3.6 kPa/K.
	if dpdt < 3000 || dpdt > 4500 {
		t.Fatalf("dP/dT = %v, want ~3600", dpdt)
	}
}

func TestStateDerivatives(t *testing.T) {
	requireNative(t)

	state, err := coolprop.NewState("HEOS", "Water")
	if err != nil {
		t.Fatalf("NewState: %v", err)
	}
	defer state.Close()

	if err := state.Update(coolprop.PTInputs, 101325, 300); err != nil {
		t.Fatalf("Update: %v", err)
	}
	// dH/dT at constant P is cp.
	cpDeriv, err := state.FirstPartialDeriv(coolprop.ParamHmass, coolprop.ParamT, coolprop.ParamP)
	if err != nil {
		t.Fatalf("FirstPartialDeriv: %v", err)
	}
	cp, err := state.KeyedOutput(coolprop.ParamCpmass)
	if err != nil {
		t.Fatalf("KeyedOutput: %v", err)
	}
	if !closeTo(cpDeriv, cp, math.Abs(cp)*1e-9) {
		t.Fatalf("dH/dT|P = %v, cp = %v", cpDeriv, cp)
	}

	if _, err := state.SecondPartialDeriv(coolprop.ParamHmass, coolprop.ParamT, coolprop.ParamP,
		coolprop.ParamT, coolprop.ParamP); err != nil {
		t.Fatalf("SecondPartialDeriv: %v", err)
	}
}

func TestStateTwoPhaseDerivatives(t *testing.T) {
	requireNative(t)

	state, err := coolprop.NewState("HEOS", "Water")
	if err != nil {
		t.Fatalf("NewState: %v", err)
	}
	defer state.Close()

	if err := state.Update(coolprop.PQInputs, 101325, 0.3); err != nil {
		t.Fatalf("Update: %v", err)
	}
	if _, err := state.FirstTwoPhaseDeriv(coolprop.ParamDmass, coolprop.ParamHmass, coolprop.ParamP); err != nil {
		t.Fatalf("FirstTwoPhaseDeriv: %v", err)
	}
	if _, err := state.FirstTwoPhaseDerivSplined(coolprop.ParamDmass, coolprop.ParamHmass, coolprop.ParamP, 0.3); err != nil {
		t.Fatalf("FirstTwoPhaseDerivSplined: %v", err)
	}
}

func TestStateBatchUpdates(t *testing.T) {
	requireNative(t)

	state, err := coolprop.NewState("HEOS", "Water")
	if err != nil {
		t.Fatalf("NewState: %v", err)
	}
	defer state.Close()

	pressures := []float64{101325, 101325, 101325}
	temperatures := []float64{300, 350, 360}

	common, err := state.UpdateAndCommonOut(coolprop.PTInputs, pressures, temperatures)
	if err != nil {
		t.Fatalf("UpdateAndCommonOut: %v", err)
	}
	if len(common.T) != 3 || !closeTo(common.T[1], 350, 1e-9) {
		t.Fatalf("common.T = %v", common.T)
	}
	if common.Rhomolar[0] <= common.Rhomolar[2] {
		t.Fatalf("density should fall with temperature: %v", common.Rhomolar)
	}

	rhos, err := state.UpdateAnd1Out(coolprop.PTInputs, pressures, temperatures, coolprop.ParamDmass)
	if err != nil {
		t.Fatalf("UpdateAnd1Out: %v", err)
	}
	if len(rhos) != 3 || rhos[0] <= rhos[2] {
		t.Fatalf("rhos = %v", rhos)
	}

	outputs := [5]coolprop.Param{
		coolprop.ParamT, coolprop.ParamP, coolprop.ParamDmass,
		coolprop.ParamHmass, coolprop.ParamSmass,
	}
	results, err := state.UpdateAnd5Out(coolprop.PTInputs, pressures, temperatures, outputs)
	if err != nil {
		t.Fatalf("UpdateAnd5Out: %v", err)
	}
	if !closeTo(results[0][2], 360, 1e-9) {
		t.Fatalf("results[0] = %v", results[0])
	}

	// Mismatched lengths are rejected before the native call.
	if _, err := state.UpdateAnd1Out(coolprop.PTInputs, pressures, temperatures[:2], coolprop.ParamDmass); !errors.Is(err, coolprop.ErrInvalidInput) {
		t.Fatalf("err = %v, want ErrInvalidInput", err)
	}
}

func TestStateMixture(t *testing.T) {
	requireNative(t)

	state, err := coolprop.NewState("HEOS", "Methane&Ethane")
	if err != nil {
		t.Fatalf("NewState: %v", err)
	}
	defer state.Close()

	if err := state.SetFractions([]float64{0.6, 0.4}); err != nil {
		t.Fatalf("SetFractions: %v", err)
	}
	fractions, err := state.MoleFractions()
	if err != nil {
		t.Fatalf("MoleFractions: %v", err)
	}
	if len(fractions) != 2 || !closeTo(fractions[0], 0.6, 1e-12) {
		t.Fatalf("fractions = %v", fractions)
	}

	if err := state.Update(coolprop.PTInputs, 1e5, 250); err != nil {
		t.Fatalf("Update: %v", err)
	}
	fug, err := state.Fugacity(0)
	if err != nil {
		t.Fatalf("Fugacity: %v", err)
	}
	if fug <= 0 {
		t.Fatalf("fugacity = %v, want positive", fug)
	}
	phi, err := state.FugacityCoefficient(0)
	if err != nil {
		t.Fatalf("FugacityCoefficient: %v", err)
	}
	if phi <= 0 || phi > 2 {
		t.Fatalf("fugacity coefficient = %v", phi)
	}
}

func TestStateTryClone(t *testing.T) {
	requireNative(t)

	state, err := coolprop.NewState("HEOS", "Methane&Ethane")
	if err != nil {
		t.Fatalf("NewState: %v", err)
	}
	defer state.Close()

	if err := state.SetFractions([]float64{0.3, 0.7}); err != nil {
		t.Fatalf("SetFractions: %v", err)
	}

	clone, err := state.TryClone()
	if err != nil {
		t.Fatalf("TryClone: %v", err)
	}
	defer clone.Close()

	fractions, err := clone.MoleFractions()
	if err != nil {
		t.Fatalf("clone MoleFractions: %v", err)
	}
	if len(fractions) != 2 || !closeTo(fractions[1], 0.7, 1e-12) {
		t.Fatalf("clone fractions = %v", fractions)
	}

	// The clone is independent: closing the original does not affect it.
	if err := state.Close(); err != nil {
		t.Fatalf("Close: %v", err)
	}
	if err := clone.Update(coolprop.PTInputs, 1e5, 250); err != nil {
		t.Fatalf("clone Update after original Close: %v", err)
	}
}

func TestStatePhaseEnvelope(t *testing.T) {
	requireNative(t)

	state, err := coolprop.NewState("HEOS", "Methane&Ethane")
	if err != nil {
		t.Fatalf("NewState: %v", err)
	}
	defer state.Close()

	if err := state.SetFractions([]float64{0.5, 0.5}); err != nil {
		t.Fatalf("SetFractions: %v", err)
	}
	if err := state.BuildPhaseEnvelope("none"); err != nil {
		t.Fatalf("BuildPhaseEnvelope: %v", err)
	}
	env, err := state.PhaseEnvelope()
	if err != nil {
		t.Fatalf("PhaseEnvelope: %v", err)
	}
	if len(env.T) == 0 {
		t.Fatal("empty envelope")
	}
	if len(env.T) != len(env.P) || len(env.T) != len(env.VaporComposition) {
		t.Fatalf("ragged envelope: %d T, %d P, %d y", len(env.T), len(env.P), len(env.VaporComposition))
	}
	if len(env.VaporComposition[0]) != 2 {
		t.Fatalf("composition width = %d, want 2", len(env.VaporComposition[0]))
	}
}

func TestStateSpinodal(t *testing.T) {
	requireNative(t)

	state, err := coolprop.NewState("HEOS", "Methane&Ethane")
	if err != nil {
		t.Fatalf("NewState: %v", err)
	}
	defer state.Close()

	if err := state.SetFractions([]float64{0.5, 0.5}); err != nil {
		t.Fatalf("SetFractions: %v", err)
	}
	if err := state.BuildSpinodal(); err != nil {
		t.Fatalf("BuildSpinodal: %v", err)
	}
	curve, err := state.SpinodalData()
	if err != nil {
		t.Fatalf("SpinodalData: %v", err)
	}
	if len(curve.Tau) == 0 {
		t.Fatal("empty spinodal")
	}
	if len(curve.Tau) != len(curve.Delta) || len(curve.Tau) != len(curve.M1) {
		t.Fatalf("ragged spinodal: %d tau, %d delta, %d m1",
			len(curve.Tau), len(curve.Delta), len(curve.M1))
	}
	for i, tau := range curve.Tau {
		if tau <= 0 {
			t.Fatalf("tau[%d] = %v, want positive reduced temperature", i, tau)
		}
	}
}

func TestStateCubicMutators(t *testing.T) {
	requireNative(t)

	state, err := coolprop.NewState("SRK", "Methane&Ethane")
	if err != nil {
		t.Fatalf("NewState: %v", err)
	}
	defer state.Close()

	if err := state.SetFractions([]float64{0.5, 0.5}); err != nil {
		t.Fatalf("SetFractions: %v", err)
	}
	if err := state.Update(coolprop.PTInputs, 5e6, 250); err != nil {
		t.Fatalf("Update: %v", err)
	}
	rhoDefault, err := state.KeyedOutput(coolprop.ParamDmolar)
	if err != nil {
		t.Fatalf("KeyedOutput: %v", err)
	}

	if err := state.SetBinaryInteractionDouble(0, 1, "kij", 0.1); err != nil {
		t.Fatalf("SetBinaryInteractionDouble: %v", err)
	}
	if err := state.SetCubicAlphaC(0, "MC", 0.7455, -0.3105, 0.8756); err != nil {
		t.Fatalf("SetCubicAlphaC: %v", err)
	}
	if err := state.SetFluidParameterDouble(1, "Tc", 305.5); err != nil {
		t.Fatalf("SetFluidParameterDouble: %v", err)
	}

	if err := state.Update(coolprop.PTInputs, 5e6, 250); err != nil {
		t.Fatalf("Update after tuning: %v", err)
	}
	rhoTuned, err := state.KeyedOutput(coolprop.ParamDmolar)
	if err != nil {
		t.Fatalf("KeyedOutput: %v", err)
	}
	if closeTo(rhoTuned, rhoDefault, math.Abs(rhoDefault)*1e-9) {
		t.Fatalf("tuning had no effect: %v before, %v after", rhoDefault, rhoTuned)
	}
}

func TestStateAllCriticalPoints(t *testing.T) {
	requireNative(t)

	state, err := coolprop.NewState("HEOS", "Water")
	if err != nil {
		t.Fatalf("NewState: %v", err)
	}
	defer state.Close()

	points, err := state.AllCriticalPoints()
	if err != nil {
		t.Fatalf("AllCriticalPoints: %v", err)
	}
	if len(points) != 1 {
		t.Fatalf("got %d critical points, want 1", len(points))
	}
	if !closeTo(points[0].T, 647.096, 1e-2) {
		t.Fatalf("critical T = %v, want ~647.096", points[0].T)
	}
}

func TestSetReferenceState(t *testing.T) {
	requireNative(t)

	hDefault, err := coolprop.PropsSI("H", "T", 273.15, "Q", 0, "R134a")
	if err != nil {
		t.Fatalf("PropsSI: %v", err)
	}
	if err := coolprop.SetReferenceState("R134a", "IIR"); err != nil {
		t.Fatalf("SetReferenceState: %v", err)
	}
	defer func() {
		if err := coolprop.SetReferenceState("R134a", "DEF"); err != nil {
			t.Errorf("restore reference state: %v", err)
		}
	}()

	hIIR, err := coolprop.PropsSI("H", "T", 273.15, "Q", 0, "R134a")
	if err != nil {
		t.Fatalf("PropsSI: %v", err)
	}
	// IIR pins saturated-liquid enthalpy at 0 C to 200 kJ/kg.
	if !closeTo(hIIR, 200e3, 100) {
		t.Fatalf("h(IIR) = %v, want ~200 kJ/kg", hIIR)
	}
	if closeTo(hDefault, hIIR, 1) {
		t.Fatal("reference state change had no effect")
	}
}

func TestSetConfigRejectsUnknownKey(t *testing.T) {
	requireNative(t)

	err := coolprop.SetConfigBool("NO_SUCH_CONFIG_KEY", true)
	if err == nil {
		t.Fatal("unknown config key should fail")
	}
	var cpErr *coolprop.Error
	if !errors.As(err, &cpErr) {
		t.Fatalf("want *coolprop.Error, got %T: %v", err, err)
	}
}
