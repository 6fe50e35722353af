package logic

import (
	"testing"
)

func TestString(t *testing.T) {
	f := And(Or(Var("a"), Not(Var("b"))), Not(Var("c")))
	const expected = "and(or(a, not(b)), not(c))"
	if f.String() != expected {
		t.Errorf("string representation of formula not as expected: wanted %q, got %q", expected, f.String())
	}
}

func TestSugarString(t *testing.T) {
	tests := []struct {
		f        Formula
		expected string
	}{
		{Implies(Var("a"), Var("b")), "or(not(a), b)"},
		{Eq(Var("a"), Var("b")), "and(or(not(a), b), or(a, not(b)))"},
		{Xor(Var("a"), Var("b")), "and(or(not(a), not(b)), or(a, b))"},
		{Unique("a", "b", "c"), "and(or(a, b, c), or(not(a), not(b)), or(not(a), not(c)), or(not(b), not(c)))"},
		{Unique("a"), "and(or(a))"},
	}
	for _, test := range tests {
		if s := test.f.String(); s != test.expected {
			t.Errorf("expected formula %q, got %q", test.expected, s)
		}
	}
}

func TestValidate(t *testing.T) {
	valid := []Formula{
		Var("a"),
		Not(Var("a")),
		And(Var("a")),
		Or(Var("a")),
		And(Var("a"), Or(Var("b"), Not(Var("c"))), Var("a")),
		Eq(Implies(Var("a"), Var("b")), Xor(Var("b"), Var("c"))),
		Unique("a", "b", "c", "d"),
	}
	for _, f := range valid {
		if err := Validate(f); err != nil {
			t.Errorf("formula %q wrongly rejected: %v", f, err)
		}
	}
	invalid := []Formula{
		nil,
		And(),
		Or(),
		And(Var("a"), Or()),
		Not(And(Var("a"), Not(Or()))),
		And(Var("a"), nil),
		&Gate{Op: OpNot, Subs: []Formula{Var("a"), Var("b")}},
		&Gate{Op: OpNot},
		&Gate{Op: Operator(42), Subs: []Formula{Var("a")}},
	}
	for _, f := range invalid {
		if err := Validate(f); err == nil {
			t.Errorf("invalid formula %v wrongly accepted", f)
		}
	}
}

func TestValidateArity(t *testing.T) {
	tests := []struct {
		f  Formula
		op Operator
		n  int
	}{
		{And(), OpAnd, 0},
		{Or(), OpOr, 0},
		{&Gate{Op: OpNot}, OpNot, 0},
		{&Gate{Op: OpNot, Subs: []Formula{Var("a"), Var("b"), Var("c")}}, OpNot, 3},
		{And(Var("a"), &Gate{Op: OpNot, Subs: []Formula{Var("b"), Var("c")}}), OpNot, 2},
	}
	for _, test := range tests {
		err := Validate(test.f)
		ae, ok := err.(ArityError)
		if !ok {
			t.Errorf("expected an arity error, got %v", err)
			continue
		}
		if ae.Op != test.op || ae.N != test.n {
			t.Errorf("expected arity error about %s/%d, got %v", test.op, test.n, ae)
		}
	}
}

func TestOperatorString(t *testing.T) {
	if OpAnd.String() != "and" || OpOr.String() != "or" || OpNot.String() != "not" {
		t.Errorf("unexpected operator names: %s, %s, %s", OpAnd, OpOr, OpNot)
	}
}
