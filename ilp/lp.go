package ilp

import (
	"fmt"
	"io"
	"strings"
)

// WriteLP writes the program on w in the LP file format, so it can be fed
// to any integer programming solver (CPLEX, Gurobi, CBC, GLPK, ...).
// The program is a pure feasibility problem and gets an empty objective.
// Every variable is declared in the Binary section; names are restricted
// to the LP identifier charset, any other byte becoming '_'.
//
// The root constraint is part of the output only if RequireRoot was
// called; without it the file describes the bare encoding.
func (p *Program) WriteLP(w io.Writer) error {
	header := fmt.Sprintf("\\ binary feasibility program: %d variables, %d constraints\n",
		len(p.vars), len(p.Constraints))
	if _, err := io.WriteString(w, header); err != nil {
		return fmt.Errorf("could not write LP output: %v", err)
	}
	if _, err := io.WriteString(w, "Minimize\n obj:\nSubject To\n"); err != nil {
		return fmt.Errorf("could not write LP output: %v", err)
	}
	for i, c := range p.Constraints {
		line := fmt.Sprintf(" c%d: %s\n", i, c.String(p))
		if _, err := io.WriteString(w, line); err != nil {
			return fmt.Errorf("could not write LP output: %v", err)
		}
	}
	if _, err := io.WriteString(w, "Binary\n"); err != nil {
		return fmt.Errorf("could not write LP output: %v", err)
	}
	for _, info := range p.vars {
		if _, err := io.WriteString(w, " "+lpName(info.name)+"\n"); err != nil {
			return fmt.Errorf("could not write LP output: %v", err)
		}
	}
	if _, err := io.WriteString(w, "End\n"); err != nil {
		return fmt.Errorf("could not write LP output: %v", err)
	}
	return nil
}

// appendExpr renders a linear expression with LP spelling: the first term
// carries no leading '+', unit coefficients are implicit.
func appendExpr(sb *strings.Builder, p *Program, terms []Term) {
	for i, t := range terms {
		coef := t.Coef
		sign := "+"
		if coef < 0 {
			sign, coef = "-", -coef
		}
		if i == 0 {
			if sign == "-" {
				sb.WriteString("- ")
			}
		} else {
			sb.WriteString(" " + sign + " ")
		}
		if coef != 1 {
			fmt.Fprintf(sb, "%d ", coef)
		}
		sb.WriteString(lpName(p.vars[t.Var].name))
	}
}

// lpName maps a variable name onto the LP identifier charset; any other
// byte becomes '_'. Names produced by the encoder already start with a
// letter.
func lpName(name string) string {
	return strings.Map(func(r rune) rune {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9', r == '_':
			return r
		default:
			return '_'
		}
	}, name)
}
