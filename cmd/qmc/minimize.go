package main

import (
	"fmt"
	"time"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/pborges/qmc/internal/boolexpr"
	"github.com/pborges/qmc/internal/input"
	"github.com/pborges/qmc/internal/qm"
)

type minimizeOptions struct {
	*rootOptions
	expr     string
	strategy string
	vars     int
	timeout  time.Duration
}

func newMinimizeCmd(root *rootOptions) *cobra.Command {
	o := &minimizeOptions{rootOptions: root}

	cmd := &cobra.Command{
		Use:   "minimize [minterms...]",
		Short: "Minimize a function given by its minterms",
		Long: `Minimize a Boolean function into a sum of prime implicants.

Minterms are integers separated by spaces or commas; lo..hi expands to an
inclusive range. With --expr the function is given as an expression such as
"A'B + C" instead.`,
		Example: `  qmc minimize 0 1 2 5 6 7
  qmc minimize 0..7 --strategy exact
  qmc minimize --expr "A'B + AB"`,
		RunE: func(cmd *cobra.Command, args []string) error {
			minterms, err := o.minterms(args)
			if err != nil {
				return err
			}
			strategy, err := qm.ParseStrategy(o.strategy)
			if err != nil {
				return err
			}
			opts := []qm.Option{
				qm.WithStrategy(strategy),
				qm.WithLogger(o.log),
				qm.WithExactTimeout(o.timeout),
			}
			if o.vars > 0 {
				opts = append(opts, qm.WithVariableCount(o.vars))
			}
			res, err := qm.Minimize(minterms, opts...)
			if err != nil {
				return err
			}
			return o.write(cmd.OutOrStdout(), res, func() string {
				return fmt.Sprintf("Variables: %d\nImplicants:\n%s", res.VariableCount, res.Expression())
			})
		},
	}

	o.bindFlags(cmd.Flags())
	return cmd
}

func (o *minimizeOptions) bindFlags(fs *pflag.FlagSet) {
	fs.StringVar(&o.expr, "expr", "", "minimize a Boolean expression instead of a minterm list")
	fs.StringVar(&o.strategy, "strategy", string(qm.StrategyGreedy), "cover selection: greedy, essential or exact")
	fs.IntVar(&o.vars, "vars", 0, "number of variables, if wider than the minterms need")
	fs.DurationVar(&o.timeout, "exact-timeout", qm.DefaultExactTimeout, "solver time limit for --strategy exact")
}

func (o *minimizeOptions) minterms(args []string) ([]int, error) {
	if o.expr == "" {
		return input.ParseArgs(args)
	}
	if len(args) > 0 {
		return nil, errors.Wrap(qm.ErrInvalidInput, "minterms and --expr are mutually exclusive")
	}
	e, err := boolexpr.Parse(o.expr)
	if err != nil {
		return nil, err
	}
	n := boolexpr.VariableCount(e)
	if o.vars != 0 && o.vars < n {
		return nil, errors.Wrapf(qm.ErrInvalidInput, "expression uses %d variables, --vars is %d", n, o.vars)
	}
	if o.vars > n {
		n = o.vars
	}
	ms, err := boolexpr.Minterms(e, n)
	if err != nil {
		return nil, err
	}
	if len(ms) == 0 {
		return nil, errors.Wrapf(qm.ErrInvalidInput, "expression %q is never true", o.expr)
	}
	o.log.WithField("minterms", ms).Debug("expanded expression")
	o.vars = n
	return ms, nil
}
