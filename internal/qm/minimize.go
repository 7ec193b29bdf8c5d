package qm

import (
	"io"
	"time"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
)

// Result is the outcome of one minimization.
type Result struct {
	VariableCount int         `json:"variableCount" yaml:"variableCount"`
	Minterms      []int       `json:"minterms" yaml:"minterms"`
	Strategy      Strategy    `json:"strategy" yaml:"strategy"`
	Primes        []Implicant `json:"primes" yaml:"primes"`
	Selection     []Implicant `json:"selection" yaml:"selection"`
	Terms         []string    `json:"terms" yaml:"terms"`
}

// Expression joins the terms into a sum of products.
func (r *Result) Expression() string {
	return Join(r.Terms)
}

type options struct {
	strategy Strategy
	log      logrus.FieldLogger
	numVars  int

	exactTimeout time.Duration
}

// Option configures Minimize.
type Option func(*options)

// WithStrategy selects the cover strategy. The default is greedy.
func WithStrategy(s Strategy) Option {
	return func(o *options) { o.strategy = s }
}

// WithLogger routes debug output of the reduction and selection rounds.
func WithLogger(log logrus.FieldLogger) Option {
	return func(o *options) { o.log = log }
}

// WithVariableCount widens the codes to n variables. It is an error for n
// to be smaller than the count the minterms need.
func WithVariableCount(n int) Option {
	return func(o *options) { o.numVars = n }
}

// WithExactTimeout bounds the solver time of the exact strategy. When it
// expires the smallest cover found so far is used.
func WithExactTimeout(d time.Duration) Option {
	return func(o *options) { o.exactTimeout = d }
}

func discardLogger() logrus.FieldLogger {
	l := logrus.New()
	l.SetOutput(io.Discard)
	return l
}

// Minimize reduces the function given by its minterms to a sum of prime
// implicants. Duplicate minterms are ignored.
func Minimize(minterms []int, opts ...Option) (*Result, error) {
	o := options{strategy: StrategyGreedy, exactTimeout: DefaultExactTimeout}
	for _, opt := range opts {
		opt(&o)
	}
	if o.log == nil {
		o.log = discardLogger()
	}
	if o.strategy == "" {
		o.strategy = StrategyGreedy
	}
	sel, err := o.strategy.selector(o)
	if err != nil {
		return nil, err
	}

	n, err := VariableCount(minterms)
	if err != nil {
		return nil, err
	}
	if o.numVars != 0 {
		if o.numVars < n || o.numVars > MaxVariables {
			return nil, errors.Wrapf(ErrInvalidInput, "variable count %d outside %d..%d", o.numVars, n, MaxVariables)
		}
		n = o.numVars
	}

	table := NewCoverageTable(minterms)
	ms := table.Minterms()
	if len(ms) > MaxMinterms {
		return nil, errors.Wrapf(ErrInvalidInput, "%d minterms exceeds limit of %d", len(ms), MaxMinterms)
	}
	codes := make([]Implicant, len(ms))
	for i, m := range ms {
		codes[i] = Encode(m, n)
	}
	log := o.log.WithFields(logrus.Fields{"variables": n, "minterms": len(ms)})

	primes := primeImplicants(codes, log)
	table = BuildCoverage(primes, ms)

	chosen, err := sel(table, log.WithField("strategy", string(o.strategy)))
	if err != nil {
		return nil, err
	}

	terms := make([]string, len(chosen))
	for i, imp := range chosen {
		terms[i] = Render(imp)
	}
	log.WithField("terms", len(terms)).Debug("minimized")
	return &Result{
		VariableCount: n,
		Minterms:      ms,
		Strategy:      o.strategy,
		Primes:        primes,
		Selection:     chosen,
		Terms:         terms,
	}, nil
}
