package qm

import (
	"sort"

	"github.com/bits-and-blooms/bitset"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
)

// CoverageTable maps prime implicants to the minterms they cover. Rows are
// kept in ascending implicant order, which is also the greedy tie-break.
type CoverageTable struct {
	minterms []int
	index    map[int]uint
	rows     []coverageRow
}

type coverageRow struct {
	imp    Implicant
	covers *bitset.BitSet
}

// NewCoverageTable returns an empty table over the given minterms.
// Duplicates are collapsed.
func NewCoverageTable(minterms []int) *CoverageTable {
	ms := append([]int(nil), minterms...)
	sort.Ints(ms)
	out := ms[:0]
	for i, m := range ms {
		if i > 0 && m == ms[i-1] {
			continue
		}
		out = append(out, m)
	}
	t := &CoverageTable{minterms: out, index: make(map[int]uint, len(out))}
	for i, m := range out {
		t.index[m] = uint(i)
	}
	return t
}

// BuildCoverage computes which of the minterms each prime covers.
func BuildCoverage(primes []Implicant, minterms []int) *CoverageTable {
	t := NewCoverageTable(minterms)
	for _, p := range primes {
		var covered []int
		for _, m := range t.minterms {
			if p.Covers(m) {
				covered = append(covered, m)
			}
		}
		t.Add(p, covered...)
	}
	return t
}

// Add records that imp covers the given minterms. Minterms outside the
// table are ignored; adding an existing implicant extends its row.
func (t *CoverageTable) Add(imp Implicant, covered ...int) {
	i := sort.Search(len(t.rows), func(i int) bool { return t.rows[i].imp >= imp })
	if i == len(t.rows) || t.rows[i].imp != imp {
		t.rows = append(t.rows, coverageRow{})
		copy(t.rows[i+1:], t.rows[i:])
		t.rows[i] = coverageRow{imp: imp, covers: bitset.New(uint(len(t.minterms)))}
	}
	for _, m := range covered {
		if idx, ok := t.index[m]; ok {
			t.rows[i].covers.Set(idx)
		}
	}
}

// Minterms returns the sorted, distinct minterms of the table.
func (t *CoverageTable) Minterms() []int { return append([]int(nil), t.minterms...) }

// Implicants returns the table's implicants in row order.
func (t *CoverageTable) Implicants() []Implicant {
	out := make([]Implicant, len(t.rows))
	for i, r := range t.rows {
		out[i] = r.imp
	}
	return out
}

// Covered returns the minterms recorded for imp, or nil if imp is absent.
func (t *CoverageTable) Covered(imp Implicant) []int {
	for _, r := range t.rows {
		if r.imp == imp {
			return t.mintermsOf(r.covers)
		}
	}
	return nil
}

// Len is the number of implicants in the table.
func (t *CoverageTable) Len() int { return len(t.rows) }

func (t *CoverageTable) mintermsOf(b *bitset.BitSet) []int {
	out := make([]int, 0, b.Count())
	for i, ok := b.NextSet(0); ok; i, ok = b.NextSet(i + 1) {
		out = append(out, t.minterms[i])
	}
	return out
}

// selection is the mutable state of one selector run. The table itself is
// never modified.
type selection struct {
	table     *CoverageTable
	remaining []coverageRow
	uncovered *bitset.BitSet
	chosen    []Implicant
	log       logrus.FieldLogger
}

func (t *CoverageTable) newSelection(log logrus.FieldLogger) *selection {
	s := &selection{
		table:     t,
		remaining: append([]coverageRow(nil), t.rows...),
		uncovered: bitset.New(uint(len(t.minterms))),
		log:       log,
	}
	for i := range t.minterms {
		s.uncovered.Set(uint(i))
	}
	return s
}

func (s *selection) take(i int) {
	r := s.remaining[i]
	gained := r.covers.IntersectionCardinality(s.uncovered)
	s.chosen = append(s.chosen, r.imp)
	s.uncovered.InPlaceDifference(r.covers)
	s.remaining = append(s.remaining[:i], s.remaining[i+1:]...)
	s.log.WithFields(logrus.Fields{
		"implicant": string(r.imp),
		"gained":    gained,
		"uncovered": s.uncovered.Count(),
	}).Debug("selected implicant")
}

// greedy picks the row covering the most uncovered minterms until none
// remain. Ties keep the earliest row.
func (s *selection) greedy() error {
	for s.uncovered.Any() {
		if len(s.remaining) == 0 {
			return errors.Wrapf(ErrUnsolvableCover, "implicants exhausted with minterms %v uncovered",
				s.table.mintermsOf(s.uncovered))
		}
		best, bestCount := -1, uint(0)
		for i, r := range s.remaining {
			if c := r.covers.IntersectionCardinality(s.uncovered); c > bestCount {
				best, bestCount = i, c
			}
		}
		if best < 0 {
			return errors.Wrapf(ErrUnsolvableCover, "no implicant covers minterms %v",
				s.table.mintermsOf(s.uncovered))
		}
		s.take(best)
	}
	return nil
}

// essential selects every row that is the only remaining cover of some
// uncovered minterm, repeating until nothing changes.
func (s *selection) essential() {
	for changed := true; changed; {
		changed = false
		for mi, ok := s.uncovered.NextSet(0); ok; mi, ok = s.uncovered.NextSet(mi + 1) {
			sole := -1
			for i, r := range s.remaining {
				if !r.covers.Test(mi) {
					continue
				}
				if sole >= 0 {
					sole = -1
					break
				}
				sole = i
			}
			if sole >= 0 {
				s.take(sole)
				changed = true
			}
		}
	}
}

// SelectGreedy chooses implicants from t by maximum marginal coverage.
func SelectGreedy(t *CoverageTable) ([]Implicant, error) {
	return selectGreedy(t, discardLogger())
}

func selectGreedy(t *CoverageTable, log logrus.FieldLogger) ([]Implicant, error) {
	s := t.newSelection(log)
	if err := s.greedy(); err != nil {
		return nil, err
	}
	return s.chosen, nil
}

// SelectEssential chooses essential prime implicants first and completes
// the cover greedily.
func SelectEssential(t *CoverageTable) ([]Implicant, error) {
	return selectEssential(t, discardLogger())
}

func selectEssential(t *CoverageTable, log logrus.FieldLogger) ([]Implicant, error) {
	s := t.newSelection(log)
	s.essential()
	if err := s.greedy(); err != nil {
		return nil, err
	}
	return s.chosen, nil
}
