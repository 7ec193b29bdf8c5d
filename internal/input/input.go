// Package input parses the free-form minterm lists accepted on the command
// line.
package input

import (
	"strconv"
	"strings"
	"unicode"

	"github.com/pkg/errors"

	"github.com/pborges/qmc/internal/qm"
)

// ParseMinterms reads integers separated by whitespace or commas. A token
// of the form lo..hi expands to every integer in the inclusive range. At
// most qm.MaxMinterms values are accepted.
func ParseMinterms(s string) ([]int, error) {
	fields := strings.FieldsFunc(s, func(r rune) bool {
		return unicode.IsSpace(r) || r == ','
	})
	if len(fields) == 0 {
		return nil, errors.Wrap(qm.ErrInvalidInput, "no minterms given")
	}
	var out []int
	for _, f := range fields {
		if lo, hi, ok := strings.Cut(f, ".."); ok {
			a, err := parseMinterm(lo)
			if err != nil {
				return nil, err
			}
			b, err := parseMinterm(hi)
			if err != nil {
				return nil, err
			}
			if b < a {
				return nil, errors.Wrapf(qm.ErrInvalidInput, "reversed range %q", f)
			}
			if b-a >= qm.MaxMinterms-len(out) {
				return nil, errors.Wrapf(qm.ErrInvalidInput, "range %q exceeds the limit of %d minterms", f, qm.MaxMinterms)
			}
			for m := a; m <= b; m++ {
				out = append(out, m)
			}
			continue
		}
		m, err := parseMinterm(f)
		if err != nil {
			return nil, err
		}
		if len(out) >= qm.MaxMinterms {
			return nil, errors.Wrapf(qm.ErrInvalidInput, "more than %d minterms", qm.MaxMinterms)
		}
		out = append(out, m)
	}
	return out, nil
}

// ParseArgs joins command-line arguments and parses them as one list.
func ParseArgs(args []string) ([]int, error) {
	return ParseMinterms(strings.Join(args, " "))
}

func parseMinterm(tok string) (int, error) {
	v, err := strconv.Atoi(tok)
	if err != nil {
		return 0, errors.Wrapf(qm.ErrInvalidInput, "invalid minterm %q", tok)
	}
	if v < 0 {
		return 0, errors.Wrapf(qm.ErrInvalidInput, "negative minterm %d", v)
	}
	return v, nil
}
