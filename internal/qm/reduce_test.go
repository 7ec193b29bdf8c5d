package qm

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
)

func codes(n int, ms ...int) []Implicant {
	out := make([]Implicant, len(ms))
	for i, m := range ms {
		out[i] = Encode(m, n)
	}
	return out
}

func TestCombine(t *testing.T) {
	tests := []struct {
		a, b Implicant
		want Implicant
		ok   bool
	}{
		{"000", "001", "00-", true},
		{"010", "110", "-10", true},
		{"00-", "01-", "0--", true},
		{"000", "011", "", false},
		{"000", "000", "", false},
		{"00-", "-01", "", false},
		{"0-0", "00-", "", false},
		{"00", "000", "", false},
	}
	for _, tt := range tests {
		got, ok := combine(tt.a, tt.b)
		assert.Equal(t, tt.ok, ok, "combine(%s, %s)", tt.a, tt.b)
		assert.Equal(t, tt.want, got, "combine(%s, %s)", tt.a, tt.b)
	}
}

func TestPrimeImplicants(t *testing.T) {
	tests := []struct {
		name string
		in   []Implicant
		want []Implicant
	}{
		{
			name: "single minterm",
			in:   codes(1, 0),
			want: []Implicant{"0"},
		},
		{
			name: "pair",
			in:   codes(2, 2, 3),
			want: []Implicant{"1-"},
		},
		{
			name: "full cube",
			in:   codes(3, 0, 1, 2, 3, 4, 5, 6, 7),
			want: []Implicant{"---"},
		},
		{
			name: "cyclic",
			in:   codes(3, 0, 1, 2, 5, 6, 7),
			want: []Implicant{"-01", "-10", "0-0", "00-", "1-1", "11-"},
		},
		{
			name: "only upper weights populated",
			in:   codes(3, 3, 7),
			want: []Implicant{"-11"},
		},
		{
			name: "isolated minterms",
			in:   codes(3, 0, 3, 5),
			want: []Implicant{"000", "011", "101"},
		},
		{
			name: "mixed generations",
			in:   codes(3, 0, 1, 2, 3, 7),
			want: []Implicant{"-11", "0--"},
		},
		{
			name: "duplicates collapse",
			in:   codes(2, 1, 1, 3),
			want: []Implicant{"-1"},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := PrimeImplicants(tt.in)
			if diff := cmp.Diff(tt.want, got); diff != "" {
				t.Fatalf("prime implicants mismatch (-want +got):\n%s", diff)
			}
		})
	}
}
