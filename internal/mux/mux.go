// Package mux implements a function of n variables with a 2^(n-1) input
// multiplexer. The remaining variables drive the select lines and the first
// variable, A, is folded into each data input.
package mux

import (
	"fmt"
	"strings"

	"github.com/pkg/errors"

	"github.com/pborges/qmc/internal/qm"
)

// Data input residues.
const (
	InputZero = "0"
	InputOne  = "1"
	InputA    = "A"
	InputNotA = "A'"
)

// Table is the implementation table of a reduced multiplexer. Column i
// pairs minterm Low[i] (A = 0) with High[i] (A = 1).
type Table struct {
	NumVars int      `json:"numVars" yaml:"numVars"`
	Width   int      `json:"width" yaml:"width"`
	Low     []int    `json:"low" yaml:"low"`
	High    []int    `json:"high" yaml:"high"`
	Inputs  []string `json:"inputs" yaml:"inputs"`
}

// Reduce builds the implementation table for the given minterms.
func Reduce(minterms []int) (*Table, error) {
	n, err := qm.VariableCount(minterms)
	if err != nil {
		return nil, err
	}
	if Width(n) > qm.MaxMinterms {
		return nil, errors.Wrapf(qm.ErrInvalidInput, "a %d variable function needs a %dx1 MUX, limit is %d inputs",
			n, Width(n), qm.MaxMinterms)
	}
	present := make(map[int]bool, len(minterms))
	for _, m := range minterms {
		present[m] = true
	}
	w := Width(n)
	t := &Table{
		NumVars: n,
		Width:   w,
		Low:     make([]int, w),
		High:    make([]int, w),
		Inputs:  make([]string, w),
	}
	for i := 0; i < w; i++ {
		t.Low[i], t.High[i] = i, i+w
		t.Inputs[i] = residue(present[i], present[i+w])
	}
	return t, nil
}

// Width is the number of data inputs for n variables.
func Width(n int) int {
	return 1 << (n - 1)
}

func residue(low, high bool) string {
	switch {
	case low && high:
		return InputOne
	case low:
		return InputNotA
	case high:
		return InputA
	}
	return InputZero
}

// Selectors names the select lines, most significant first.
func (t *Table) Selectors() []string {
	out := make([]string, 0, t.NumVars-1)
	for i := 1; i < t.NumVars; i++ {
		out = append(out, string(qm.Variables[i]))
	}
	return out
}

func (t *Table) String() string {
	var b strings.Builder
	fmt.Fprintf(&b, "The function has %d variables: %s\n", t.NumVars,
		strings.Join(strings.Split(qm.Variables[:t.NumVars], ""), " "))
	fmt.Fprintf(&b, "The reduced MUX is %dx1", t.Width)
	if sel := t.Selectors(); len(sel) > 0 {
		fmt.Fprintf(&b, " with select lines %s", strings.Join(sel, " "))
	}
	b.WriteString("\n\n")
	for i := 0; i < t.Width; i++ {
		fmt.Fprintf(&b, "\tI%d", i)
	}
	b.WriteString("\nA'")
	for _, m := range t.Low {
		fmt.Fprintf(&b, "\t%d", m)
	}
	b.WriteString("\nA")
	for _, m := range t.High {
		fmt.Fprintf(&b, "\t%d", m)
	}
	b.WriteString("\nQ:\t")
	b.WriteString(strings.Join(t.Inputs, "\t"))
	b.WriteByte('\n')
	return b.String()
}
