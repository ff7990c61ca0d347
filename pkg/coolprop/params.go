package coolprop

import (
	"fmt"
	"sync"

	"github.com/fluidkit/coolprop-go/internal/bindings"
)

// Param identifies an output property understood by the native library.
// The zero value is ParamT.
type Param int

const (
	ParamT Param = iota
	ParamP
	ParamDmolar
	ParamHmolar
	ParamSmolar
	ParamUmolar
	ParamGmolar
	ParamHelmholtzmolar
	ParamDmass
	ParamHmass
	ParamSmass
	ParamUmass
	ParamGmass
	ParamHelmholtzmass
	ParamQ
	ParamDelta
	ParamTau
	ParamCpmolar
	ParamCpmass
	ParamCvmolar
	ParamCvmass
	ParamCp0molar
	ParamCp0mass
	ParamHmolarResidual
	ParamSmolarResidual
	ParamGmolarResidual
	ParamHmolarIdealGas
	ParamSmolarIdealGas
	ParamUmolarIdealGas
	ParamHmassIdealGas
	ParamSmassIdealGas
	ParamUmassIdealGas
	ParamGWP20
	ParamGWP100
	ParamGWP500
	ParamFH
	ParamHH
	ParamPH
	ParamODP
	ParamBvirial
	ParamCvirial
	ParamDBvirialDT
	ParamDCvirialDT
	ParamGasConstant
	ParamMolarMass
	ParamAcentric
	ParamDipoleMoment
	ParamRhomassReducing
	ParamRhomolarReducing
	ParamRhomolarCritical
	ParamRhomassCritical
	ParamTReducing
	ParamTCritical
	ParamTTriple
	ParamTMax
	ParamTMin
	ParamPMin
	ParamPMax
	ParamPCritical
	ParamPReducing
	ParamPTriple
	ParamFractionMin
	ParamFractionMax
	ParamTFreeze
	ParamSpeedOfSound
	ParamViscosity
	ParamConductivity
	ParamSurfaceTension
	ParamPrandtl
	ParamIsothermalCompressibility
	ParamIsobaricExpansionCoefficient
	ParamIsentropicExpansionCoefficient
	ParamZ
	ParamFundamentalDerivativeOfGasDynamics
	ParamPIP
	ParamAlphar
	ParamDAlpharDTauConstDelta
	ParamDAlpharDDeltaConstTau
	ParamAlpha0
	ParamDAlpha0DTauConstDelta
	ParamDAlpha0DDeltaConstTau
	ParamD2Alpha0DDelta2ConstTau
	ParamD3Alpha0DDelta3ConstTau
	ParamPhase

	paramCount
)

var paramTokens = [paramCount]string{
	ParamT:                                  "T",
	ParamP:                                  "P",
	ParamDmolar:                             "Dmolar",
	ParamHmolar:                             "Hmolar",
	ParamSmolar:                             "Smolar",
	ParamUmolar:                             "Umolar",
	ParamGmolar:                             "Gmolar",
	ParamHelmholtzmolar:                     "Helmholtzmolar",
	ParamDmass:                              "Dmass",
	ParamHmass:                              "Hmass",
	ParamSmass:                              "Smass",
	ParamUmass:                              "Umass",
	ParamGmass:                              "Gmass",
	ParamHelmholtzmass:                      "Helmholtzmass",
	ParamQ:                                  "Q",
	ParamDelta:                              "Delta",
	ParamTau:                                "Tau",
	ParamCpmolar:                            "Cpmolar",
	ParamCpmass:                             "Cpmass",
	ParamCvmolar:                            "Cvmolar",
	ParamCvmass:                             "Cvmass",
	ParamCp0molar:                           "Cp0molar",
	ParamCp0mass:                            "Cp0mass",
	ParamHmolarResidual:                     "Hmolar_residual",
	ParamSmolarResidual:                     "Smolar_residual",
	ParamGmolarResidual:                     "Gmolar_residual",
	ParamHmolarIdealGas:                     "Hmolar_idealgas",
	ParamSmolarIdealGas:                     "Smolar_idealgas",
	ParamUmolarIdealGas:                     "Umolar_idealgas",
	ParamHmassIdealGas:                      "Hmass_idealgas",
	ParamSmassIdealGas:                      "Smass_idealgas",
	ParamUmassIdealGas:                      "Umass_idealgas",
	ParamGWP20:                              "GWP20",
	ParamGWP100:                             "GWP100",
	ParamGWP500:                             "GWP500",
	ParamFH:                                 "FH",
	ParamHH:                                 "HH",
	ParamPH:                                 "PH",
	ParamODP:                                "ODP",
	ParamBvirial:                            "Bvirial",
	ParamCvirial:                            "Cvirial",
	ParamDBvirialDT:                         "dBvirial_dT",
	ParamDCvirialDT:                         "dCvirial_dT",
	ParamGasConstant:                        "gas_constant",
	ParamMolarMass:                          "molar_mass",
	ParamAcentric:                           "acentric",
	ParamDipoleMoment:                       "dipole_moment",
	ParamRhomassReducing:                    "rhomass_reducing",
	ParamRhomolarReducing:                   "rhomolar_reducing",
	ParamRhomolarCritical:                   "rhomolar_critical",
	ParamRhomassCritical:                    "rhomass_critical",
	ParamTReducing:                          "T_reducing",
	ParamTCritical:                          "T_critical",
	ParamTTriple:                            "T_triple",
	ParamTMax:                               "T_max",
	ParamTMin:                               "T_min",
	ParamPMin:                               "P_min",
	ParamPMax:                               "P_max",
	ParamPCritical:                          "p_critical",
	ParamPReducing:                          "p_reducing",
	ParamPTriple:                            "p_triple",
	ParamFractionMin:                        "fraction_min",
	ParamFractionMax:                        "fraction_max",
	ParamTFreeze:                            "T_freeze",
	ParamSpeedOfSound:                       "speed_of_sound",
	ParamViscosity:                          "viscosity",
	ParamConductivity:                       "conductivity",
	ParamSurfaceTension:                     "surface_tension",
	ParamPrandtl:                            "Prandtl",
	ParamIsothermalCompressibility:          "isothermal_compressibility",
	ParamIsobaricExpansionCoefficient:       "isobaric_expansion_coefficient",
	ParamIsentropicExpansionCoefficient:     "isentropic_expansion_coefficient",
	ParamZ:                                  "Z",
	ParamFundamentalDerivativeOfGasDynamics: "fundamental_derivative_of_gas_dynamics",
	ParamPIP:                                "PIP",
	ParamAlphar:                             "alphar",
	ParamDAlpharDTauConstDelta:              "dalphar_dtau_constdelta",
	ParamDAlpharDDeltaConstTau:              "dalphar_ddelta_consttau",
	ParamAlpha0:                             "alpha0",
	ParamDAlpha0DTauConstDelta:              "dalpha0_dtau_constdelta",
	ParamDAlpha0DDeltaConstTau:              "dalpha0_ddelta_consttau",
	ParamD2Alpha0DDelta2ConstTau:            "d2alpha0_ddelta2_consttau",
	ParamD3Alpha0DDelta3ConstTau:            "d3alpha0_ddelta3_consttau",
	ParamPhase:                              "Phase",
}

// String returns the token understood by the native string-based APIs, for
// example "T" or "Hmolar_residual".
func (p Param) String() string {
	if p < 0 || p >= paramCount {
		return fmt.Sprintf("Param(%d)", int(p))
	}
	return paramTokens[p]
}

func (p Param) valid() bool { return p >= 0 && p < paramCount }

var paramByToken = func() map[string]Param {
	m := make(map[string]Param, paramCount)
	for p := Param(0); p < paramCount; p++ {
		m[paramTokens[p]] = p
	}
	return m
}()

// ParamFromToken resolves a property token such as "Dmass" to its Param.
func ParamFromToken(token string) (Param, error) {
	if p, ok := paramByToken[token]; ok {
		return p, nil
	}
	return 0, fmt.Errorf("%w: unknown parameter token %q", ErrInvalidInput, token)
}

// InputPair identifies which two state variables define a thermodynamic
// state in State.Update and the batched update calls.
type InputPair int

const (
	PTInputs InputPair = iota
	QTInputs
	PQInputs
	QSmolarInputs
	QSmassInputs
	HmolarQInputs
	HmassQInputs
	DmolarQInputs
	DmassQInputs
	HmolarPInputs
	HmassPInputs
	PSmolarInputs
	PSmassInputs
	PUmolarInputs
	PUmassInputs
	HmolarSmolarInputs
	HmassSmassInputs
	SmolarTInputs
	SmassTInputs
	DmolarTInputs
	DmassTInputs
	DmolarPInputs
	DmassPInputs
	DmolarHmolarInputs
	DmassHmassInputs
	DmolarSmolarInputs
	DmassSmassInputs
	DmolarUmolarInputs
	DmassUmassInputs
	HmolarTInputs
	HmassTInputs
	TUmolarInputs
	TUmassInputs

	inputPairCount
)

var inputPairTokens = [inputPairCount]string{
	PTInputs:           "PT_INPUTS",
	QTInputs:           "QT_INPUTS",
	PQInputs:           "PQ_INPUTS",
	QSmolarInputs:      "QSmolar_INPUTS",
	QSmassInputs:       "QSmass_INPUTS",
	HmolarQInputs:      "HmolarQ_INPUTS",
	HmassQInputs:       "HmassQ_INPUTS",
	DmolarQInputs:      "DmolarQ_INPUTS",
	DmassQInputs:       "DmassQ_INPUTS",
	HmolarPInputs:      "HmolarP_INPUTS",
	HmassPInputs:       "HmassP_INPUTS",
	PSmolarInputs:      "PSmolar_INPUTS",
	PSmassInputs:       "PSmass_INPUTS",
	PUmolarInputs:      "PUmolar_INPUTS",
	PUmassInputs:       "PUmass_INPUTS",
	HmolarSmolarInputs: "HmolarSmolar_INPUTS",
	HmassSmassInputs:   "HmassSmass_INPUTS",
	SmolarTInputs:      "SmolarT_INPUTS",
	SmassTInputs:       "SmassT_INPUTS",
	DmolarTInputs:      "DmolarT_INPUTS",
	DmassTInputs:       "DmassT_INPUTS",
	DmolarPInputs:      "DmolarP_INPUTS",
	DmassPInputs:       "DmassP_INPUTS",
	DmolarHmolarInputs: "DmolarHmolar_INPUTS",
	DmassHmassInputs:   "DmassHmass_INPUTS",
	DmolarSmolarInputs: "DmolarSmolar_INPUTS",
	DmassSmassInputs:   "DmassSmass_INPUTS",
	DmolarUmolarInputs: "DmolarUmolar_INPUTS",
	DmassUmassInputs:   "DmassUmass_INPUTS",
	HmolarTInputs:      "HmolarT_INPUTS",
	HmassTInputs:       "HmassT_INPUTS",
	TUmolarInputs:      "TUmolar_INPUTS",
	TUmassInputs:       "TUmass_INPUTS",
}

// String returns the token understood by the native string-based APIs, for
// example "PT_INPUTS".
func (ip InputPair) String() string {
	if ip < 0 || ip >= inputPairCount {
		return fmt.Sprintf("InputPair(%d)", int(ip))
	}
	return inputPairTokens[ip]
}

func (ip InputPair) valid() bool { return ip >= 0 && ip < inputPairCount }

var inputPairByToken = func() map[string]InputPair {
	m := make(map[string]InputPair, inputPairCount)
	for ip := InputPair(0); ip < inputPairCount; ip++ {
		m[inputPairTokens[ip]] = ip
	}
	return m
}()

// InputPairFromToken resolves an input-pair token such as "PT_INPUTS" to its
// InputPair.
func InputPairFromToken(token string) (InputPair, error) {
	if ip, ok := inputPairByToken[token]; ok {
		return ip, nil
	}
	return 0, fmt.Errorf("%w: unknown input pair token %q", ErrInvalidInput, token)
}

// indexTable caches the native integer indices for every Param and InputPair
// token. The native mapping is fixed for the lifetime of the process, so it
// is resolved exactly once on first use.
type indexTable struct {
	params [paramCount]int64
	pairs  [inputPairCount]int64
}

var (
	indicesOnce sync.Once
	indicesTab  indexTable
	indicesErr  error
)

func indices() (*indexTable, error) {
	indicesOnce.Do(func() {
		for p := Param(0); p < paramCount; p++ {
			idx, err := bindings.ParamIndex(paramTokens[p])
			if err != nil {
				indicesErr = wrapNative("get_param_index", err)
				return
			}
			indicesTab.params[p] = idx
		}
		for ip := InputPair(0); ip < inputPairCount; ip++ {
			idx, err := bindings.InputPairIndex(inputPairTokens[ip])
			if err != nil {
				indicesErr = wrapNative("get_input_pair_index", err)
				return
			}
			indicesTab.pairs[ip] = idx
		}
	})
	if indicesErr != nil {
		return nil, indicesErr
	}
	return &indicesTab, nil
}

func (p Param) index() (int64, error) {
	if !p.valid() {
		return 0, fmt.Errorf("%w: unknown parameter %d", ErrInvalidInput, int(p))
	}
	tab, err := indices()
	if err != nil {
		return 0, err
	}
	return tab.params[p], nil
}

func (ip InputPair) index() (int64, error) {
	if !ip.valid() {
		return 0, fmt.Errorf("%w: unknown input pair %d", ErrInvalidInput, int(ip))
	}
	tab, err := indices()
	if err != nil {
		return 0, err
	}
	return tab.pairs[ip], nil
}
