package ui

import (
	"fmt"
	"io"
	"math"

	"scicalc/core/calculator"
	"scicalc/core/evaluator"
	"scicalc/core/memory"
)

var (
	DemoExpressions = []string{
		"2+3*4",
		"2 + 3 * sin(30)",
		"2 + 3 * sin(45) - log(10)",
		"3 + 4 * 2 / (1 - 5) ^ 2",
		"-3 + 5",
		"sqrt(16) + 2",
	}

	DemoFailingExpressions = []string{
		"2 + (3 * 4",
		"log(-1)",
		"3 / (2-2)",
	}
)

// RunDemo печатает проверки обертки, вычислителя и памяти.
// Ошибка одного выражения не прерывает остальные.
func RunDemo(out io.Writer) {
	calc := calculator.NewScientific()
	mem := memory.NewMemory()

	fmt.Fprintln(out, "Базовые операции:")
	fmt.Fprintf(out, "3 + 4 = %g\n", calc.Add(3, 4))
	fmt.Fprintf(out, "10 - 2 = %g\n", calc.Subtract(10, 2))
	fmt.Fprintf(out, "6 * 7 = %g\n", calc.Multiply(6, 7))
	if q, err := calc.Divide(8, 0); err != nil {
		fmt.Fprintf(out, "8 / 0 → ошибка: %v\n", err)
	} else {
		fmt.Fprintf(out, "8 / 0 = %g\n", q)
	}

	fmt.Fprintln(out, "\nНаучные функции:")
	fmt.Fprintf(out, "sin(30°) = %g\n", calc.Sin(30))
	fmt.Fprintf(out, "cos(60°) = %g\n", calc.Cos(60))
	fmt.Fprintf(out, "tan(45°) = %g\n", calc.Tan(45))
	fmt.Fprintf(out, "2^8 = %g\n", calc.Power(2, 8))
	printResult(out, "кубический корень из 27", func() (float64, error) { return calc.Root(27, 3) })
	printResult(out, "log10(100)", func() (float64, error) { return calc.Log10(100) })
	printResult(out, "ln(e)", func() (float64, error) { return calc.Ln(math.E) })
	fmt.Fprintf(out, "exp(2) = %g\n", calc.Exp(2))

	fmt.Fprintln(out, "\nВычислитель выражений:")
	for _, expr := range DemoExpressions {
		printResult(out, expr, func() (float64, error) { return evaluator.Evaluate(expr) })
	}

	fmt.Fprintln(out, "\nПамять (M+, M-, MR, MC):")
	mem.Clear()
	mem.Add(5)
	fmt.Fprintf(out, "M+5 → MR = %g\n", mem.Recall())
	mem.Add(3.2)
	fmt.Fprintf(out, "M+3.2 → MR = %g\n", mem.Recall())
	mem.Subtract(1)
	fmt.Fprintf(out, "M-1 → MR = %g\n", mem.Recall())
	mem.Clear()
	fmt.Fprintf(out, "MC → MR = %g\n", mem.Recall())

	fmt.Fprintln(out, "\nОшибки вычислителя:")
	for _, expr := range DemoFailingExpressions {
		printResult(out, expr, func() (float64, error) { return evaluator.Evaluate(expr) })
	}

	fmt.Fprintln(out, "\nКонец проверок.")
}

func printResult(out io.Writer, label string, fn func() (float64, error)) {
	v, err := fn()
	if err != nil {
		fmt.Fprintf(out, "%s → ошибка: %v\n", label, err)
		return
	}
	fmt.Fprintf(out, "%s = %g\n", label, v)
}
