package main

import (
	"fmt"
	"os"
	"sort"
	"strconv"
	"strings"

	"github.com/fatih/color"
	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/MJebran/Reduction-From-SAT-to-ILP/ilp"
	"github.com/MJebran/Reduction-From-SAT-to-ILP/logic"
	"github.com/MJebran/Reduction-From-SAT-to-ILP/solve"
)

var (
	verbose  bool
	bindArgs map[string]string
	outArg   string
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "satilp",
		Short: "satilp decides boolean formulas by reduction to 0/1 integer programming",
		Long: `satilp reads a propositional formula, encodes it as a 0/1 integer
program and decides its satisfiability with the gophersat engine.

Formulas come in two file formats, picked by extension:
  .bf                  expression syntax, e.g. "a & ^(b -> c)"
  .yaml, .yml, .json   document syntax, e.g. {"operator": "not", "values": ["a"]}`,

		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			if verbose {
				log.SetLevel(log.DebugLevel)
			}
		},
	}
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "sets verbose mode on")

	rootCmd.AddCommand(newSolveCmd())
	rootCmd.AddCommand(newEvalCmd())
	rootCmd.AddCommand(newLPCmd())

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func newSolveCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "solve (file.bf|file.yaml|file.json)",
		Short: "Solve the formula and print a model",
		Long: `The solve command decides the satisfiability of the formula in the
given file. On a satisfiable formula it prints SATISFIABLE and the value
of every literal; on an unsatisfiable one it prints UNSATISFIABLE.
An unsatisfiable formula is an answer, not a failure: the command still
exits with status 0.`,
		Args: cobra.ExactArgs(1),
		RunE: solveFunc,
	}
}

func solveFunc(cmd *cobra.Command, args []string) error {
	form, err := parseFormula(args[0])
	if err != nil {
		return err
	}
	s := solve.New(
		solve.WithEngine(solve.Gophersat{Verbose: verbose}),
		solve.WithLogger(log.StandardLogger()),
	)
	model, err := s.Solve(form)
	if errors.Is(err, solve.ErrUnsatisfiable) {
		color.New(color.FgRed, color.Bold).Println("UNSATISFIABLE")
		return nil
	}
	if err != nil {
		return err
	}
	color.New(color.FgGreen, color.Bold).Println("SATISFIABLE")
	keys := make(sort.StringSlice, 0, len(model))
	for k := range model {
		keys = append(keys, k)
	}
	sort.Sort(keys)
	for _, k := range keys {
		fmt.Printf("%s: %t\n", k, model[k])
	}
	return nil
}

func newEvalCmd() *cobra.Command {
	evalCmd := &cobra.Command{
		Use:   "eval (file.bf|file.yaml|file.json)",
		Short: "Evaluate the formula under the given bindings",
		Long: `The eval command computes the truth value of the formula in the given
file under the literal bindings passed with --bind. Every literal of the
formula must be bound:

  satilp eval formula.bf -b a=true -b b=false`,
		Args: cobra.ExactArgs(1),
		RunE: evalFunc,
	}
	evalCmd.Flags().StringToStringVarP(&bindArgs, "bind", "b", nil, "literal binding, as name=true or name=false")
	return evalCmd
}

func evalFunc(cmd *cobra.Command, args []string) error {
	form, err := parseFormula(args[0])
	if err != nil {
		return err
	}
	model := make(map[string]bool, len(bindArgs))
	for name, raw := range bindArgs {
		value, err := strconv.ParseBool(raw)
		if err != nil {
			return errors.Errorf("invalid binding %s=%s: want a boolean", name, raw)
		}
		model[name] = value
	}
	res, err := logic.Eval(form, model)
	if err != nil {
		return err
	}
	fmt.Println(res)
	return nil
}

func newLPCmd() *cobra.Command {
	lpCmd := &cobra.Command{
		Use:   "lp (file.bf|file.yaml|file.json)",
		Short: "Write the encoding of the formula as an LP file",
		Long: `The lp command encodes the formula in the given file as a 0/1 integer
program, with the root constrained to be true, and writes it in the LP
file format. The output can be fed to any integer programming solver.`,
		Args: cobra.ExactArgs(1),
		RunE: lpFunc,
	}
	lpCmd.Flags().StringVarP(&outArg, "output", "o", "", "write the LP file there instead of standard output")
	return lpCmd
}

func lpFunc(cmd *cobra.Command, args []string) error {
	form, err := parseFormula(args[0])
	if err != nil {
		return err
	}
	p, err := ilp.Encode(form)
	if err != nil {
		return err
	}
	p.RequireRoot()
	log.WithFields(log.Fields{
		"variables":   p.NumVars(),
		"constraints": len(p.Constraints),
	}).Debug("encoded formula")
	out := os.Stdout
	if outArg != "" {
		f, err := os.Create(outArg)
		if err != nil {
			return errors.Wrapf(err, "could not create %q", outArg)
		}
		defer f.Close()
		out = f
	}
	return p.WriteLP(out)
}

func parseFormula(path string) (logic.Formula, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, errors.Wrapf(err, "could not open %q", path)
	}
	defer f.Close()
	switch {
	case strings.HasSuffix(path, ".bf"):
		form, err := logic.Parse(f)
		if err != nil {
			return nil, errors.Wrapf(err, "could not parse formula in %q", path)
		}
		return form, nil
	case strings.HasSuffix(path, ".yaml"), strings.HasSuffix(path, ".yml"), strings.HasSuffix(path, ".json"):
		form, err := logic.ParseYAML(f)
		if err != nil {
			return nil, errors.Wrapf(err, "could not parse formula in %q", path)
		}
		return form, nil
	default:
		return nil, errors.Errorf("invalid file format for %q", path)
	}
}
