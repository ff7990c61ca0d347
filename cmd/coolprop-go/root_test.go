package main

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func runCmd(t *testing.T, args ...string) (string, error) {
	t.Helper()
	cmd := newRootCmd()
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), err
}

func TestPropRejectsBadNumbers(t *testing.T) {
	_, err := runCmd(t, "prop", "T", "P", "not-a-number", "Q", "0", "Water")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "value1")
}

func TestPropRejectsWrongArgCount(t *testing.T) {
	_, err := runCmd(t, "prop", "T", "P", "101325")
	require.Error(t, err)
}

func TestTableValidatesGrid(t *testing.T) {
	_, err := runCmd(t, "table", "Water", "--tmin", "400", "--tmax", "300")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "tmax")

	_, err = runCmd(t, "table", "Water", "--points", "1")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "points")
}

func TestTableRejectsUnknownOutput(t *testing.T) {
	_, err := runCmd(t, "table", "Water", "--outputs", "NotAProperty")
	require.Error(t, err)
}

func TestMissingConfigFileFails(t *testing.T) {
	_, err := runCmd(t, "--config", "/no/such/file.toml", "version")
	require.Error(t, err)
}
