package ilp

import (
	"fmt"
	"os"
	"strings"
	"testing"

	"github.com/MJebran/Reduction-From-SAT-to-ILP/logic"
)

func ExampleProgram_WriteLP() {
	f := logic.And(logic.Var("a"), logic.Not(logic.Var("b")))
	p, err := Encode(f)
	if err != nil {
		fmt.Printf("could not encode formula: %v", err)
		return
	}
	p.RequireRoot()
	if err := p.WriteLP(os.Stdout); err != nil {
		fmt.Printf("could not generate LP file: %v", err)
	}
	// Output:
	// \ binary feasibility program: 4 variables, 5 constraints
	// Minimize
	//  obj:
	// Subject To
	//  c0: aux_0 + x_b = 1
	//  c1: aux_1 - x_a <= 0
	//  c2: aux_1 - aux_0 <= 0
	//  c3: aux_1 - x_a - aux_0 >= -1
	//  c4: aux_1 = 1
	// Binary
	//  x_a
	//  x_b
	//  aux_0
	//  aux_1
	// End
}

func TestWriteLPSanitizesNames(t *testing.T) {
	p, err := Encode(logic.Not(logic.Var("serv-1.cpu/load")))
	if err != nil {
		t.Fatalf("could not encode formula: %v", err)
	}
	p.RequireRoot()
	var sb strings.Builder
	if err := p.WriteLP(&sb); err != nil {
		t.Fatalf("could not write LP output: %v", err)
	}
	out := sb.String()
	if !strings.Contains(out, "x_serv_1_cpu_load") {
		t.Errorf("expected sanitized variable name in output:\n%s", out)
	}
	if strings.Contains(out, "serv-1.cpu/load") {
		t.Errorf("raw variable name leaked into output:\n%s", out)
	}
	if p.Name(0) != "x_serv-1.cpu/load" {
		t.Errorf("sanitizing must not rename the program variable, got %q", p.Name(0))
	}
}

func TestConstraintString(t *testing.T) {
	p := &Program{litIndex: make(map[string]Var)}
	a := p.litVar("a")
	b := p.litVar("b")
	c := p.litVar("c")
	tests := []struct {
		c        Constraint
		expected string
	}{
		{
			Constraint{Terms: []Term{{Var: a, Coef: 1}, {Var: b, Coef: -1}}, Rel: LE, Bound: 0},
			"x_a - x_b <= 0",
		},
		{
			Constraint{Terms: []Term{{Var: a, Coef: 2}, {Var: b, Coef: -3}, {Var: c, Coef: 1}}, Rel: GE, Bound: 1},
			"2 x_a - 3 x_b + x_c >= 1",
		},
		{
			Constraint{Terms: []Term{{Var: a, Coef: -1}, {Var: b, Coef: 1}}, Rel: EQ, Bound: 1},
			"- x_a + x_b = 1",
		},
		{
			Constraint{Terms: []Term{{Var: c, Coef: 1}}, Rel: EQ, Bound: 1},
			"x_c = 1",
		},
	}
	for _, test := range tests {
		if got := test.c.String(p); got != test.expected {
			t.Errorf("expected constraint %q, got %q", test.expected, got)
		}
	}
}

func TestWriteLPWithoutRoot(t *testing.T) {
	p, err := Encode(logic.Not(logic.Var("a")))
	if err != nil {
		t.Fatalf("could not encode formula: %v", err)
	}
	var sb strings.Builder
	if err := p.WriteLP(&sb); err != nil {
		t.Fatalf("could not write LP output: %v", err)
	}
	if strings.Contains(sb.String(), "c1:") {
		t.Errorf("bare encoding must have a single constraint:\n%s", sb.String())
	}
}
