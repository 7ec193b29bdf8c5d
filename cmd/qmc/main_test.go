package main

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v2"

	"github.com/pborges/qmc/internal/mux"
	"github.com/pborges/qmc/internal/qm"
)

func run(t *testing.T, args ...string) (string, error) {
	t.Helper()
	cmd := newRootCmd()
	var out, errOut bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&errOut)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), err
}

func TestMinimizeText(t *testing.T) {
	out, err := run(t, "minimize", "0", "1", "2", "5", "6", "7")
	require.NoError(t, err)
	assert.Equal(t, "Variables: 3\nImplicants:\nB'C + BC' + A'C' + AC\n", out)
}

func TestMinimizeConstant(t *testing.T) {
	out, err := run(t, "minimize", "0..7")
	require.NoError(t, err)
	assert.True(t, strings.HasSuffix(out, "Implicants:\n1\n"), out)
}

func TestMinimizeJSON(t *testing.T) {
	out, err := run(t, "minimize", "-o", "json", "--strategy", "exact", "0,1,2,5,6,7")
	require.NoError(t, err)
	var res qm.Result
	require.NoError(t, json.Unmarshal([]byte(out), &res))
	assert.Equal(t, 3, res.VariableCount)
	assert.Equal(t, qm.StrategyExact, res.Strategy)
	assert.Len(t, res.Terms, 3)
}

func TestMinimizeExpr(t *testing.T) {
	out, err := run(t, "minimize", "--expr", "A'B'")
	require.NoError(t, err)
	assert.Contains(t, out, "Variables: 2\n")
	assert.Contains(t, out, "A'B'\n")

	out, err = run(t, "minimize", "--expr", "A'B'C'", "--vars", "4")
	require.NoError(t, err)
	assert.Contains(t, out, "Variables: 4\n")
	assert.Contains(t, out, "A'B'C'\n")

	out, err = run(t, "minimize", "--expr", "A'B + AB")
	require.NoError(t, err)
	assert.Contains(t, out, "\nB\n")
}

func TestMinimizeErrors(t *testing.T) {
	tests := [][]string{
		{"minimize"},
		{"minimize", "1", "x"},
		{"minimize", "--", "-1"},
		{"minimize", "--strategy", "best", "1"},
		{"minimize", "--expr", "A +"},
		{"minimize", "--expr", "A A'"},
		{"minimize", "--expr", "A", "1"},
		{"minimize", "--vars", "1", "7"},
		{"minimize", "--expr", "A'B'C'", "--vars", "2"},
	}
	for _, args := range tests {
		_, err := run(t, args...)
		assert.ErrorIs(t, err, qm.ErrInvalidInput, "%v", args)
	}
}

func TestUnknownOutput(t *testing.T) {
	_, err := run(t, "minimize", "-o", "xml", "1")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "xml")
}

func TestMuxYAML(t *testing.T) {
	out, err := run(t, "mux", "-o", "yaml", "1", "3", "5", "6")
	require.NoError(t, err)
	var tbl mux.Table
	require.NoError(t, yaml.Unmarshal([]byte(out), &tbl))
	assert.Equal(t, 4, tbl.Width)
	assert.Equal(t, []string{"0", "1", "A", "A'"}, tbl.Inputs)
}

func TestMuxText(t *testing.T) {
	out, err := run(t, "mux", "0")
	require.NoError(t, err)
	assert.Contains(t, out, "The reduced MUX is 1x1\n")
	assert.Contains(t, out, "Q:\tA'\n")
}

func TestVersion(t *testing.T) {
	out, err := run(t, "version")
	require.NoError(t, err)
	assert.NotEmpty(t, strings.TrimSpace(out))
}

func TestDebugLogging(t *testing.T) {
	cmd := newRootCmd()
	var out, errOut bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&errOut)
	cmd.SetArgs([]string{"--debug", "minimize", "1", "3"})
	require.NoError(t, cmd.Execute())
	assert.Contains(t, errOut.String(), "reduction round")
}
