package main

import (
	"testing"

	"github.com/BurntSushi/toml"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStartupConfigSchema(t *testing.T) {
	const doc = `
refprop_path = "/opt/refprop"

[strings]
LIST_STRING_DELIMITER = ";"

[doubles]
PHASE_ENVELOPE_STARTING_PRESSURE_PA = 100.0

[bools]
CRITICAL_WITHIN_1UK = true

[reference_states]
R134a = "IIR"
Propane = "NBP"
`
	var cfg startupConfig
	_, err := toml.Decode(doc, &cfg)
	require.NoError(t, err)

	assert.Equal(t, "/opt/refprop", cfg.REFPROPPath)
	assert.Equal(t, ";", cfg.Strings["LIST_STRING_DELIMITER"])
	assert.Equal(t, 100.0, cfg.Doubles["PHASE_ENVELOPE_STARTING_PRESSURE_PA"])
	assert.True(t, cfg.Bools["CRITICAL_WITHIN_1UK"])
	assert.Equal(t, "IIR", cfg.ReferenceStates["R134a"])
}

func TestSortedKeys(t *testing.T) {
	keys := sortedKeys(map[string]bool{"b": true, "a": false, "c": true})
	assert.Equal(t, []string{"a", "b", "c"}, keys)
	assert.Empty(t, sortedKeys(map[string]string(nil)))
}
