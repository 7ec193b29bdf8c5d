package testutil

import (
	"bufio"
	"bytes"
	"fmt"
	"strconv"
	"strings"

	"github.com/pkg/errors"

	"github.com/pborges/qmc/internal/input"
	"github.com/pborges/qmc/internal/qm"
)

// Golden is one expected minimization. Cases are blocks of "key: value"
// lines separated by blank lines; '#' starts a comment line.
type Golden struct {
	Line       int
	Minterms   []int
	Strategy   qm.Strategy
	Vars       int
	Expression string
}

// ParseGolden reads golden cases. Cases without a strategy default to
// greedy; a case without minterms is an error.
func ParseGolden(data []byte) ([]Golden, error) {
	var (
		out []Golden
		cur *Golden
	)
	flush := func() error {
		if cur == nil {
			return nil
		}
		if cur.Minterms == nil {
			return errors.Errorf("line %d: case without minterms", cur.Line)
		}
		if cur.Strategy == "" {
			cur.Strategy = qm.StrategyGreedy
		}
		out = append(out, *cur)
		cur = nil
		return nil
	}

	scanner := bufio.NewScanner(bytes.NewReader(data))
	line := 0
	for scanner.Scan() {
		line++
		text := strings.TrimSpace(scanner.Text())
		if strings.HasPrefix(text, "#") {
			continue
		}
		if text == "" {
			if err := flush(); err != nil {
				return nil, err
			}
			continue
		}
		key, val, ok := strings.Cut(text, ":")
		if !ok {
			return nil, errors.Errorf("line %d: expected key: value", line)
		}
		if cur == nil {
			cur = &Golden{Line: line}
		}
		val = strings.TrimSpace(val)
		switch strings.TrimSpace(key) {
		case "minterms":
			ms, err := input.ParseMinterms(val)
			if err != nil {
				return nil, errors.Wrapf(err, "line %d", line)
			}
			cur.Minterms = ms
		case "strategy":
			s, err := qm.ParseStrategy(val)
			if err != nil {
				return nil, errors.Wrapf(err, "line %d", line)
			}
			cur.Strategy = s
		case "vars":
			n, err := strconv.Atoi(val)
			if err != nil {
				return nil, errors.Wrapf(err, "line %d", line)
			}
			cur.Vars = n
		case "expr":
			cur.Expression = val
		default:
			return nil, errors.Errorf("line %d: unknown key %q", line, key)
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, errors.Wrap(err, "reading golden data")
	}
	if err := flush(); err != nil {
		return nil, err
	}
	return out, nil
}

// CompareResult returns a human-readable description of how got differs
// from want, or "" when they agree.
func CompareResult(got *qm.Result, want Golden) string {
	var buf bytes.Buffer
	if got.VariableCount != want.Vars {
		fmt.Fprintf(&buf, "  vars: got=%d want=%d\n", got.VariableCount, want.Vars)
	}
	if expr := got.Expression(); expr != want.Expression {
		fmt.Fprintf(&buf, "  expr: got=%q want=%q\n", expr, want.Expression)
	}
	if buf.Len() == 0 {
		return ""
	}
	return fmt.Sprintf("minterms %v (%s):\n%s", want.Minterms, want.Strategy, buf.String())
}
