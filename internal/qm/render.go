package qm

import "strings"

// Variables names the input variables by position.
const Variables = "ABCDEFGHIJKLMNOPQRSTUVWXYZ"

// Complement is appended to a variable name to negate it.
const Complement = "'"

// Render translates imp into a product of variables: '1' gives the bare
// variable, '0' its complement, and wildcards are omitted. An implicant with
// no fixed positions renders as the empty string.
func Render(imp Implicant) string {
	var b strings.Builder
	for i := 0; i < len(imp) && i < len(Variables); i++ {
		switch imp[i] {
		case '1':
			b.WriteByte(Variables[i])
		case '0':
			b.WriteByte(Variables[i])
			b.WriteString(Complement)
		}
	}
	return b.String()
}

// Join renders a sum of products. Empty terms are the constant 1, which
// absorbs the whole sum; no terms at all is the constant 0.
func Join(terms []string) string {
	if len(terms) == 0 {
		return "0"
	}
	for _, t := range terms {
		if t == "" {
			return "1"
		}
	}
	return strings.Join(terms, " + ")
}
