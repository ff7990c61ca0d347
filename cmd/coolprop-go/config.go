package main

import (
	"fmt"
	"sort"

	"github.com/BurntSushi/toml"

	"github.com/fluidkit/coolprop-go/pkg/coolprop"
)

// startupConfig is the TOML schema for --config. All sections are optional.
//
//	refprop_path = "/opt/refprop"
//
//	[strings]
//	LIST_STRING_DELIMITER = ";"
//
//	[doubles]
//	PHASE_ENVELOPE_STARTING_PRESSURE_PA = 100.0
//
//	[bools]
//	CRITICAL_WITHIN_1UK = true
//
//	[reference_states]
//	R134a = "IIR"
//	Propane = "NBP"
type startupConfig struct {
	REFPROPPath     string             `toml:"refprop_path"`
	Strings         map[string]string  `toml:"strings"`
	Doubles         map[string]float64 `toml:"doubles"`
	Bools           map[string]bool    `toml:"bools"`
	ReferenceStates map[string]string  `toml:"reference_states"`
}

// applyStartupConfig loads the --config file, if given, and applies it to the
// native library before any command runs. Keys are applied in sorted order so
// failures are reproducible.
func applyStartupConfig(opts *rootOptions) error {
	if opts.configPath == "" {
		return nil
	}
	var cfg startupConfig
	if _, err := toml.DecodeFile(opts.configPath, &cfg); err != nil {
		return fmt.Errorf("load config %s: %w", opts.configPath, err)
	}

	if cfg.REFPROPPath != "" {
		opts.logger.Debug("setting REFPROP path", "path", cfg.REFPROPPath)
		if err := coolprop.SetREFPROPPath(cfg.REFPROPPath); err != nil {
			return err
		}
	}
	for _, key := range sortedKeys(cfg.Strings) {
		opts.logger.Debug("setting config key", "key", key, "value", cfg.Strings[key])
		if err := coolprop.SetConfigString(key, cfg.Strings[key]); err != nil {
			return err
		}
	}
	for _, key := range sortedKeys(cfg.Doubles) {
		opts.logger.Debug("setting config key", "key", key, "value", cfg.Doubles[key])
		if err := coolprop.SetConfigDouble(key, cfg.Doubles[key]); err != nil {
			return err
		}
	}
	for _, key := range sortedKeys(cfg.Bools) {
		opts.logger.Debug("setting config key", "key", key, "value", cfg.Bools[key])
		if err := coolprop.SetConfigBool(key, cfg.Bools[key]); err != nil {
			return err
		}
	}
	for _, fluid := range sortedKeys(cfg.ReferenceStates) {
		opts.logger.Debug("setting reference state", "fluid", fluid, "state", cfg.ReferenceStates[fluid])
		if err := coolprop.SetReferenceState(fluid, cfg.ReferenceStates[fluid]); err != nil {
			return err
		}
	}
	return nil
}

func sortedKeys[V any](m map[string]V) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
