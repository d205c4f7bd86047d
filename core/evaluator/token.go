package evaluator

import (
	"math"
	"sort"
	"strconv"
)

// Kind - вид лексемы
type Kind int

const (
	Number Kind = iota
	Operator
	Function
	LeftParen
	RightParen
	Comma
)

func (k Kind) String() string {
	switch k {
	case Number:
		return "number"
	case Operator:
		return "operator"
	case Function:
		return "function"
	case LeftParen:
		return "lparen"
	case RightParen:
		return "rparen"
	case Comma:
		return "comma"
	}
	return "kind(" + strconv.Itoa(int(k)) + ")"
}

// Token - лексема выражения. Value заполнено только для Number,
// Text - для Operator и Function.
type Token struct {
	Kind  Kind
	Value float64
	Text  string
}

func (t Token) String() string {
	switch t.Kind {
	case Number:
		return strconv.FormatFloat(t.Value, 'g', -1, 64)
	case Operator, Function:
		return t.Text
	case LeftParen:
		return "("
	case RightParen:
		return ")"
	case Comma:
		return ","
	}
	return t.Kind.String()
}

func numberToken(v float64) Token { return Token{Kind: Number, Value: v} }

func operatorToken(op string) Token { return Token{Kind: Operator, Text: op} }

// operator - приоритет и ассоциативность бинарного оператора
type operator struct {
	precedence int
	right      bool
	apply      func(a, b float64) (float64, error)
}

var operators = map[string]operator{
	"+": {precedence: 2, apply: func(a, b float64) (float64, error) { return a + b, nil }},
	"-": {precedence: 2, apply: func(a, b float64) (float64, error) { return a - b, nil }},
	"*": {precedence: 3, apply: func(a, b float64) (float64, error) { return a * b, nil }},
	"/": {precedence: 3, apply: func(a, b float64) (float64, error) {
		if b == 0 {
			return 0, ErrDivisionByZero
		}
		return a / b, nil
	}},
	"^": {precedence: 4, right: true, apply: func(a, b float64) (float64, error) { return math.Pow(a, b), nil }},
}

// functions - известные функции одного аргумента; ключи в нижнем регистре
var functions = map[string]func(x float64) (float64, error){
	"sin": func(x float64) (float64, error) { return math.Sin(radians(x)), nil },
	"cos": func(x float64) (float64, error) { return math.Cos(radians(x)), nil },
	"tan": func(x float64) (float64, error) { return math.Tan(radians(x)), nil },
	"log": func(x float64) (float64, error) {
		if x <= 0 {
			return 0, domainError("log", x)
		}
		return math.Log10(x), nil
	},
	"ln": func(x float64) (float64, error) {
		if x <= 0 {
			return 0, domainError("ln", x)
		}
		return math.Log(x), nil
	},
	"exp": func(x float64) (float64, error) { return math.Exp(x), nil },
	"sqrt": func(x float64) (float64, error) {
		if x < 0 {
			return 0, domainError("sqrt", x)
		}
		return math.Sqrt(x), nil
	},
}

func radians(deg float64) float64 { return deg * math.Pi / 180 }

func isOperator(symbol string) bool {
	_, ok := operators[symbol]
	return ok
}

// Functions - отсортированный список известных функций
func Functions() []string {
	names := make([]string, 0, len(functions))
	for name := range functions {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
