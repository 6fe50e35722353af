package logic

import "fmt"

// A MissingLitError reports a literal the model gives no binding for.
type MissingLitError struct {
	Name string
}

func (e MissingLitError) Error() string {
	return fmt.Sprintf("model lacks binding for literal %q", e.Name)
}

// Eval computes the truth value of f under the given model.
// Every operand of every gate is evaluated, so a literal the model does
// not bind is reported as a MissingLitError even when its value could not
// change the result. Invalid formulas are rejected with the error Validate
// returns, before any evaluation takes place.
func Eval(f Formula, model map[string]bool) (bool, error) {
	if err := Validate(f); err != nil {
		return false, err
	}
	return eval(f, model)
}

func eval(f Formula, model map[string]bool) (bool, error) {
	switch f := f.(type) {
	case Lit:
		b, ok := model[string(f)]
		if !ok {
			return false, MissingLitError{Name: string(f)}
		}
		return b, nil
	case *Gate:
		switch f.Op {
		case OpNot:
			b, err := eval(f.Subs[0], model)
			if err != nil {
				return false, err
			}
			return !b, nil
		case OpAnd:
			res := true
			for _, sub := range f.Subs {
				b, err := eval(sub, model)
				if err != nil {
					return false, err
				}
				res = res && b
			}
			return res, nil
		default:
			res := false
			for _, sub := range f.Subs {
				b, err := eval(sub, model)
				if err != nil {
					return false, err
				}
				res = res || b
			}
			return res, nil
		}
	default:
		panic("invalid formula type")
	}
}
