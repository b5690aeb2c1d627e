package engine

import (
	"fmt"
	"strings"

	"github.com/expr-lang/expr"
	"github.com/expr-lang/expr/vm"
)

// ruleEnv is what a rule expression can see.
type ruleEnv struct {
	Score        int            `expr:"score"`
	Tick         int            `expr:"tick"`
	Speed        float64        `expr:"speed"`
	Hazards      int            `expr:"hazards"`
	Collectibles int            `expr:"collectibles"`
	Counters     map[string]int `expr:"counters"`
}

func (w *World) ruleEnv() ruleEnv {
	return ruleEnv{
		Score:        w.score,
		Tick:         int(w.tick),
		Speed:        w.speed,
		Hazards:      w.store.Count(KindHazard),
		Collectibles: w.store.Count(KindCollectible),
		Counters:     w.counters,
	}
}

// CompilePredicate turns an expression such as
//
//	counters.pellets == 0 && score > 0
//
// into a Predicate. An empty source yields a nil Predicate, which Rules
// treats as "never". A runtime error while evaluating counts as false.
func CompilePredicate(src string) (Predicate, error) {
	src = strings.TrimSpace(src)
	if src == "" {
		return nil, nil
	}
	program, err := expr.Compile(src, expr.Env(ruleEnv{}), expr.AsBool())
	if err != nil {
		return nil, fmt.Errorf("engine: compile rule %q: %w", src, err)
	}
	return programPredicate(program), nil
}

func programPredicate(program *vm.Program) Predicate {
	return func(w *World) bool {
		out, err := expr.Run(program, w.ruleEnv())
		if err != nil {
			return false
		}
		ok, _ := out.(bool)
		return ok
	}
}

// CompileRules compiles a won/lost expression pair.
func CompileRules(won, lost string) (Rules, error) {
	var rules Rules
	var err error
	if rules.Won, err = CompilePredicate(won); err != nil {
		return Rules{}, err
	}
	if rules.Lost, err = CompilePredicate(lost); err != nil {
		return Rules{}, err
	}
	return rules, nil
}

// Or combines predicates; nil entries are skipped.
func Or(preds ...Predicate) Predicate {
	var live []Predicate
	for _, p := range preds {
		if p != nil {
			live = append(live, p)
		}
	}
	if len(live) == 0 {
		return nil
	}
	return func(w *World) bool {
		for _, p := range live {
			if p(w) {
				return true
			}
		}
		return false
	}
}
