package qm

import (
	"strings"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
)

// Strategy names a cover selection procedure.
type Strategy string

const (
	// StrategyGreedy repeatedly takes the implicant with the largest
	// marginal coverage. It is the default.
	StrategyGreedy Strategy = "greedy"
	// StrategyEssential takes essential prime implicants before falling
	// back to greedy selection.
	StrategyEssential Strategy = "essential"
	// StrategyExact solves for a cover with the fewest implicants.
	StrategyExact Strategy = "exact"
)

// Strategies lists the supported strategies.
func Strategies() []Strategy {
	return []Strategy{StrategyGreedy, StrategyEssential, StrategyExact}
}

// ParseStrategy resolves a case-insensitive strategy name.
func ParseStrategy(name string) (Strategy, error) {
	s := Strategy(strings.ToLower(strings.TrimSpace(name)))
	for _, known := range Strategies() {
		if s == known {
			return s, nil
		}
	}
	return "", errors.Wrapf(ErrInvalidInput, "unknown strategy %q", name)
}

type selectorFunc func(*CoverageTable, logrus.FieldLogger) ([]Implicant, error)

func (s Strategy) selector(o options) (selectorFunc, error) {
	switch s {
	case StrategyGreedy, "":
		return selectGreedy, nil
	case StrategyEssential:
		return selectEssential, nil
	case StrategyExact:
		return func(t *CoverageTable, log logrus.FieldLogger) ([]Implicant, error) {
			return selectExact(t, o.exactTimeout, log)
		}, nil
	}
	return nil, errors.Wrapf(ErrInvalidInput, "unknown strategy %q", string(s))
}
