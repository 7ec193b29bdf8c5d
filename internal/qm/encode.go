package qm

import (
	"math/bits"
	"strings"

	"github.com/pkg/errors"
)

// MaxVariables bounds the variable count to the letters A..Z.
const MaxVariables = 26

// MaxMinterms bounds the number of distinct minterms accepted per call.
const MaxMinterms = 1 << 16

// Wildcard marks a position eliminated by merging.
const Wildcard = '-'

// Implicant is a product term over {0, 1, -}, most significant variable
// first. A fully specified implicant is the BinaryCode of a minterm.
type Implicant string

// Encode returns the zero-padded, MSB-first binary code of m over n bits.
func Encode(m, n int) Implicant {
	var b strings.Builder
	b.Grow(n)
	for i := n - 1; i >= 0; i-- {
		if m&(1<<i) != 0 {
			b.WriteByte('1')
		} else {
			b.WriteByte('0')
		}
	}
	return Implicant(b.String())
}

// Weight is the number of '1' positions. Wildcards count as neither.
func Weight(imp Implicant) int {
	return strings.Count(string(imp), "1")
}

// Wildcards is the number of eliminated positions.
func (imp Implicant) Wildcards() int {
	return strings.Count(string(imp), string(Wildcard))
}

// Covers reports whether every fixed position of imp matches the code of m.
func (imp Implicant) Covers(m int) bool {
	n := len(imp)
	if m < 0 || m >= 1<<n {
		return false
	}
	for i := 0; i < n; i++ {
		bit := byte('0')
		if m&(1<<(n-1-i)) != 0 {
			bit = '1'
		}
		if imp[i] != Wildcard && imp[i] != bit {
			return false
		}
	}
	return true
}

// Expand lists the minterms denoted by imp in ascending order.
func (imp Implicant) Expand() []int {
	n := len(imp)
	base := 0
	var free []int
	for i := 0; i < n; i++ {
		shift := n - 1 - i
		switch imp[i] {
		case '1':
			base |= 1 << shift
		case Wildcard:
			free = append(free, shift)
		}
	}
	out := make([]int, 0, 1<<len(free))
	for k := 0; k < 1<<len(free); k++ {
		m := base
		for j, shift := range free {
			// free is MSB first, so walk k from its top bit to keep ascending order
			if k&(1<<(len(free)-1-j)) != 0 {
				m |= 1 << shift
			}
		}
		out = append(out, m)
	}
	return out
}

// VariableCount returns ceil(log2(max+1)), with a floor of one variable so
// that {0} is a one-variable function.
func VariableCount(minterms []int) (int, error) {
	if len(minterms) == 0 {
		return 0, errors.Wrap(ErrInvalidInput, "minterm set is empty")
	}
	hi := 0
	for _, m := range minterms {
		if m < 0 {
			return 0, errors.Wrapf(ErrInvalidInput, "negative minterm %d", m)
		}
		if m > hi {
			hi = m
		}
	}
	n := bits.Len(uint(hi))
	if n == 0 {
		n = 1
	}
	if n > MaxVariables {
		return 0, errors.Wrapf(ErrInvalidInput, "minterm %d needs %d variables, limit is %d", hi, n, MaxVariables)
	}
	return n, nil
}
