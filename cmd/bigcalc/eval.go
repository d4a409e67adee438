package main

import (
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"bigcalc/internal/calc"
	"bigcalc/internal/history"
)

var evalCmd = &cobra.Command{
	Use:   "eval [flags] a op b",
	Short: "Evaluate a single expression",
	Long: `Evaluate "a op b" where op is one of + - * / (or add, sub, mul, div).
The expression may be passed as one quoted argument or as three arguments.
Use -- before negative operands: bigcalc eval -- -7 / 2`,
	Args: cobra.MinimumNArgs(1),
	RunE: evalExecution,
}

func init() {
	evalCmd.Flags().String("format", "pretty", "output format (pretty|json|msgpack)")
	evalCmd.Flags().Bool("no-history", false, "do not record the expression in the history")
}

type evalPayload struct {
	Expr   string          `json:"expr" msgpack:"expr"`
	A      calc.Rendering  `json:"a" msgpack:"a"`
	B      calc.Rendering  `json:"b" msgpack:"b"`
	Op     string          `json:"op" msgpack:"op"`
	Result *calc.Rendering `json:"result,omitempty" msgpack:"result,omitempty"`
	Error  string          `json:"error,omitempty" msgpack:"error,omitempty"`
}

func evalExecution(cmd *cobra.Command, args []string) error {
	formatValue, err := cmd.Flags().GetString("format")
	if err != nil {
		return err
	}
	noHistory, err := cmd.Flags().GetBool("no-history")
	if err != nil {
		return err
	}
	format, err := readFormat(formatValue, formatPretty, formatJSON, formatMsgpack)
	if err != nil {
		return err
	}
	s, err := loadSettings(cmd)
	if err != nil {
		return err
	}
	defer s.finish(cmd.ErrOrStderr())

	endParse := s.timer.Track("parse")
	expr, err := calc.ParseExpr(strings.Join(args, " "))
	endParse("")
	if err != nil {
		return err
	}
	endEval := s.timer.Track("evaluate")
	v, evalErr := expr.Eval()
	endEval(expr.String())

	if !noHistory {
		s.record(s.openHistory(), history.FromExpr(expr, v, evalErr))
	}

	payload := evalPayload{
		Expr: expr.String(),
		A:    calc.Render(expr.A),
		B:    calc.Render(expr.B),
		Op:   expr.Op.String(),
	}
	if evalErr != nil {
		payload.Error = evalErr.Error()
	} else {
		r := calc.Render(v)
		payload.Result = &r
	}

	out := cmd.OutOrStdout()
	switch format {
	case formatJSON:
		err = writeJSON(out, payload)
	case formatMsgpack:
		err = writeMsgpack(out, payload)
	default:
		if evalErr == nil {
			renderEvalPretty(out, payload, s.cfg.Display.BaseM)
		}
	}
	if err != nil {
		return err
	}
	return evalErr
}

func renderEvalPretty(out io.Writer, p evalPayload, baseM bool) {
	value := color.New(color.FgGreen)
	fmt.Fprintf(out, "%s = %s\n", p.Expr, value.Sprint(p.Result.Decimal))
	if baseM {
		fmt.Fprintf(out, "%s = %s (base M)\n", padRight("", len(p.Expr)), value.Sprint(p.Result.BaseM))
	}
}
