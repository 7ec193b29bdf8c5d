package input

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pborges/qmc/internal/qm"
)

func TestParseMinterms(t *testing.T) {
	tests := []struct {
		in   string
		want []int
	}{
		{"0 1 2 5 6 7", []int{0, 1, 2, 5, 6, 7}},
		{"  3\t4\n", []int{3, 4}},
		{"1,2, 3", []int{1, 2, 3}},
		{"0..3 7", []int{0, 1, 2, 3, 7}},
		{"5..5", []int{5}},
		{"2 2", []int{2, 2}},
	}
	for _, tt := range tests {
		got, err := ParseMinterms(tt.in)
		require.NoError(t, err, tt.in)
		assert.Equal(t, tt.want, got, tt.in)
	}
}

func TestParseMintermsInvalid(t *testing.T) {
	for _, in := range []string{"", "   ", "1 a 2", "-1", "1.5", "3..1", "..4", "1..x", "0..99999999999"} {
		_, err := ParseMinterms(in)
		assert.ErrorIs(t, err, qm.ErrInvalidInput, "input %q", in)
	}
}

func TestParseMintermsLimit(t *testing.T) {
	got, err := ParseMinterms("0..65535")
	require.NoError(t, err)
	assert.Len(t, got, qm.MaxMinterms)

	for _, in := range []string{"0..65536", "0..67108863", "0..65535 1", "1 0..65535"} {
		_, err := ParseMinterms(in)
		assert.ErrorIs(t, err, qm.ErrInvalidInput, "input %q", in)
	}
}

func TestParseArgs(t *testing.T) {
	got, err := ParseArgs([]string{"1", "2..3", "4,5"})
	require.NoError(t, err)
	assert.Equal(t, []int{1, 2, 3, 4, 5}, got)
}
