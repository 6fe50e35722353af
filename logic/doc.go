// Package logic defines propositional formulas over named literals.
//
// A formula is a tree: its leaves are literals and its inner nodes are
// and, or and not gates. There is no normal form requirement; gates can
// be nested arbitrarily and and/or gates take any positive number of
// operands.
//
// For example, the formula
//
// !((a & b) | !c)
//
// is built with the following code:
//
// f := logic.Not(logic.Or(logic.And(logic.Var("a"), logic.Var("b")), logic.Not(logic.Var("c"))))
//
// The same formula can be read from its text form with Parse:
//
// ^((a & b) | ^c)
//
// or from its document form with ParseYAML:
//
//	operator: not
//	values:
//	- operator: or
//	  values:
//	  - {operator: and, values: [a, b]}
//	  - {operator: not, values: [c]}
//
// Formulas built by hand may be structurally invalid, for instance a not
// gate with two operands. Validate rejects such trees; Eval and the
// encoding and solving entry points of the companion packages validate
// their input before doing anything else.
package logic
