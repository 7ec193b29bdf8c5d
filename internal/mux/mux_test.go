package mux

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pborges/qmc/internal/qm"
)

func TestReduce(t *testing.T) {
	tbl, err := Reduce([]int{1, 3, 5, 6})
	require.NoError(t, err)
	assert.Equal(t, 3, tbl.NumVars)
	assert.Equal(t, 4, tbl.Width)
	assert.Equal(t, []int{0, 1, 2, 3}, tbl.Low)
	assert.Equal(t, []int{4, 5, 6, 7}, tbl.High)
	assert.Equal(t, []string{InputZero, InputOne, InputA, InputNotA}, tbl.Inputs)
	assert.Equal(t, []string{"B", "C"}, tbl.Selectors())
}

func TestReduceSingleZero(t *testing.T) {
	tbl, err := Reduce([]int{0})
	require.NoError(t, err)
	assert.Equal(t, 1, tbl.NumVars)
	assert.Equal(t, 1, tbl.Width)
	assert.Equal(t, []int{0}, tbl.Low)
	assert.Equal(t, []int{1}, tbl.High)
	assert.Equal(t, []string{InputNotA}, tbl.Inputs)
	assert.Empty(t, tbl.Selectors())
}

func TestReduceInvalid(t *testing.T) {
	_, err := Reduce(nil)
	require.ErrorIs(t, err, qm.ErrInvalidInput)
	_, err = Reduce([]int{-3})
	require.ErrorIs(t, err, qm.ErrInvalidInput)
}

func TestReduceWidthLimit(t *testing.T) {
	tbl, err := Reduce([]int{1<<17 - 1})
	require.NoError(t, err)
	assert.Equal(t, qm.MaxMinterms, tbl.Width)

	_, err = Reduce([]int{1<<26 - 1})
	require.ErrorIs(t, err, qm.ErrInvalidInput)
	_, err = Reduce([]int{1 << 17})
	require.ErrorIs(t, err, qm.ErrInvalidInput)
}

func TestTableString(t *testing.T) {
	tbl, err := Reduce([]int{2, 3})
	require.NoError(t, err)
	want := "The function has 2 variables: A B\n" +
		"The reduced MUX is 2x1 with select lines B\n" +
		"\n" +
		"\tI0\tI1\n" +
		"A'\t0\t1\n" +
		"A\t2\t3\n" +
		"Q:\tA\tA\n"
	assert.Equal(t, want, tbl.String())
}
