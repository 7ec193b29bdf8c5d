package qm

import (
	"sort"

	"github.com/sirupsen/logrus"
)

// groups holds one generation of implicants keyed by weight.
type groups map[int][]Implicant

func groupByWeight(imps []Implicant) groups {
	g := make(groups)
	for _, imp := range imps {
		w := Weight(imp)
		g[w] = append(g[w], imp)
	}
	return g
}

// weights returns the populated weights in ascending order.
func (g groups) weights() []int {
	ws := make([]int, 0, len(g))
	for w := range g {
		ws = append(ws, w)
	}
	sort.Ints(ws)
	return ws
}

// PrimeImplicants runs the merge phase to a fixed point. Terms from adjacent
// weight groups that differ in exactly one position are merged; terms never
// merged in their generation are prime. The result is sorted.
func PrimeImplicants(codes []Implicant) []Implicant {
	return primeImplicants(codes, discardLogger())
}

func primeImplicants(codes []Implicant, log logrus.FieldLogger) []Implicant {
	current := groupByWeight(dedupe(codes))
	primeSet := make(map[Implicant]bool)

	for round := 0; ; round++ {
		merged := make(map[Implicant]bool)
		checked := make(map[Implicant]bool)

		ws := current.weights()
		for _, w := range ws {
			upper, ok := current[w+1]
			if !ok {
				continue
			}
			for _, a := range current[w] {
				for _, b := range upper {
					if m, ok := combine(a, b); ok {
						merged[m] = true
						checked[a] = true
						checked[b] = true
					}
				}
			}
		}

		unmerged := 0
		for _, w := range ws {
			for _, imp := range current[w] {
				if !checked[imp] {
					primeSet[imp] = true
					unmerged++
				}
			}
		}

		log.WithFields(logrus.Fields{
			"round":  round,
			"groups": len(ws),
			"merged": len(merged),
			"primes": unmerged,
		}).Debug("reduction round")

		if len(merged) == 0 {
			break
		}
		next := make([]Implicant, 0, len(merged))
		for m := range merged {
			next = append(next, m)
		}
		sort.Slice(next, func(i, j int) bool { return next[i] < next[j] })
		current = groupByWeight(next)
	}

	primes := make([]Implicant, 0, len(primeSet))
	for p := range primeSet {
		primes = append(primes, p)
	}
	sort.Slice(primes, func(i, j int) bool { return primes[i] < primes[j] })
	return primes
}

// combine merges a and b when they have the same length and differ in
// exactly one position. Comparison is positional, so a wildcard only
// matches a wildcard.
func combine(a, b Implicant) (Implicant, bool) {
	if len(a) != len(b) {
		return "", false
	}
	diff := -1
	for i := 0; i < len(a); i++ {
		if a[i] == b[i] {
			continue
		}
		if diff >= 0 || a[i] == Wildcard || b[i] == Wildcard {
			return "", false
		}
		diff = i
	}
	if diff < 0 {
		return "", false
	}
	out := []byte(a)
	out[diff] = Wildcard
	return Implicant(out), true
}

func dedupe(imps []Implicant) []Implicant {
	seen := make(map[Implicant]bool, len(imps))
	out := make([]Implicant, 0, len(imps))
	for _, imp := range imps {
		if seen[imp] {
			continue
		}
		seen[imp] = true
		out = append(out, imp)
	}
	return out
}
