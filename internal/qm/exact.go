package qm

import (
	"time"

	"github.com/go-air/gini"
	"github.com/go-air/gini/logic"
	"github.com/go-air/gini/z"
	"github.com/sirupsen/logrus"
)

// DefaultExactTimeout bounds the solver time spent by the exact strategy.
const DefaultExactTimeout = 2 * time.Second

// SelectExact finds a cover with the fewest implicants. Essential
// implicants are taken first; the greedy cover of the remaining minterms is
// then shrunk one implicant at a time by a SAT search over a cardinality
// network until the solver proves no smaller cover exists or
// DefaultExactTimeout expires, in which case the smallest cover found so far
// is returned.
func SelectExact(t *CoverageTable) ([]Implicant, error) {
	return selectExact(t, DefaultExactTimeout, discardLogger())
}

func selectExact(t *CoverageTable, timeout time.Duration, log logrus.FieldLogger) ([]Implicant, error) {
	if len(t.minterms) == 0 {
		return nil, nil
	}
	s := t.newSelection(log)
	s.essential()
	if !s.uncovered.Any() {
		return s.chosen, nil
	}

	incumbent := &selection{
		table:     t,
		remaining: append([]coverageRow(nil), s.remaining...),
		uncovered: s.uncovered.Clone(),
		log:       log,
	}
	if err := incumbent.greedy(); err != nil {
		return nil, err
	}
	best := incumbent.chosen

	var rows []coverageRow
	for _, r := range s.remaining {
		if r.covers.IntersectionCardinality(s.uncovered) > 0 {
			rows = append(rows, r)
		}
	}
	c := logic.NewCCap(len(rows) * 4)
	lits := make([]z.Lit, len(rows))
	for i := range rows {
		lits[i] = c.Lit()
	}
	var required []z.Lit
	for mi, ok := s.uncovered.NextSet(0); ok; mi, ok = s.uncovered.NextSet(mi + 1) {
		var ors []z.Lit
		for i, r := range rows {
			if r.covers.Test(mi) {
				ors = append(ors, lits[i])
			}
		}
		required = append(required, c.Ors(ors...))
	}
	card := c.CardSort(lits)

	g := gini.New()
	c.ToCnf(g)
	for _, m := range required {
		g.Add(m)
		g.Add(0)
	}

	deadline := time.Now().Add(timeout)
	for k := len(best) - 1; k >= 1; k = len(best) - 1 {
		left := time.Until(deadline)
		if left <= 0 {
			log.WithField("cover", len(best)).Debug("exact cover search timed out")
			break
		}
		g.Assume(card.Leq(k))
		res := g.GoSolve().Try(left)
		log.WithFields(logrus.Fields{"bound": k, "result": res}).Debug("exact cover search")
		if res != 1 {
			// -1 proves the incumbent minimal, 0 means the budget ran out.
			break
		}
		var model []Implicant
		for i, m := range lits {
			if g.Value(m) {
				model = append(model, rows[i].imp)
			}
		}
		best = model
	}
	return append(s.chosen, best...), nil
}
