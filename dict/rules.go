package dict

import (
	"fmt"
	"strings"

	"github.com/expr-lang/expr"
	"github.com/expr-lang/expr/vm"
	"github.com/signadot/nestpath/ir"
)

// Rule decides whether a value may be stored at a path.
type Rule interface {
	// Accept reports whether v is acceptable at path. A non nil error
	// means the rule could not be evaluated.
	Accept(path string, v *ir.Node) (bool, error)
	// Expected describes acceptable values for error messages.
	Expected() string
}

type typeRule []ir.Type

// TypeRule accepts values of any of the given types.
func TypeRule(types ...ir.Type) Rule {
	return typeRule(types)
}

func (r typeRule) Accept(_ string, v *ir.Node) (bool, error) {
	for _, t := range r {
		if v.Type == t {
			return true, nil
		}
	}
	return false, nil
}

func (r typeRule) Expected() string {
	names := make([]string, len(r))
	for i, t := range r {
		names[i] = t.String()
	}
	return strings.Join(names, " or ")
}

type exprRule struct {
	src string
	prg *vm.Program
}

// ExprRule compiles a boolean expression evaluated for each candidate value.
// The expression sees three variables:
//   - value: the value as plain Go data (see ir.Node.ToAny)
//   - kind: the name of its type, for instance "String" or "Object"
//   - path: the path being written
//
// value is dynamically typed, so "value >= 0" and "len(value) > 0" compile
// and are checked when the rule runs.
func ExprRule(src string) (Rule, error) {
	prg, err := expr.Compile(src, expr.Env(ruleEnv{}), expr.AsBool())
	if err != nil {
		return nil, fmt.Errorf("compile rule %q: %w", src, err)
	}
	return &exprRule{src: src, prg: prg}, nil
}

// MustExprRule is ExprRule and panics on error.
func MustExprRule(src string) Rule {
	r, err := ExprRule(src)
	if err != nil {
		panic(err)
	}
	return r
}

type ruleEnv struct {
	Path  string `expr:"path"`
	Kind  string `expr:"kind"`
	Value any    `expr:"value"`
}

func newRuleEnv(path string, v *ir.Node) ruleEnv {
	env := ruleEnv{Path: path}
	if v != nil {
		env.Kind = v.Type.String()
		env.Value = v.ToAny()
	}
	return env
}

func (r *exprRule) Accept(path string, v *ir.Node) (bool, error) {
	res, err := expr.Run(r.prg, newRuleEnv(path, v))
	if err != nil {
		return false, err
	}
	ok, _ := res.(bool)
	return ok, nil
}

func (r *exprRule) Expected() string {
	return r.src
}
