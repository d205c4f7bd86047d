package evaluator

import "strings"

// EvalPostfix - вычисление выражения в обратной польской нотации
func EvalPostfix(rpn []Token) (float64, error) {
	stack := make([]float64, 0, len(rpn))

	for _, token := range rpn {
		switch token.Kind {
		case Number:
			stack = append(stack, token.Value)
		case Operator:
			op, ok := operators[token.Text]
			if !ok {
				return 0, invalidToken(token.Text)
			}
			if len(stack) < 2 {
				return 0, ErrInvalidExpression
			}
			b := stack[len(stack)-1]
			a := stack[len(stack)-2]
			stack = stack[:len(stack)-2]

			result, err := op.apply(a, b)
			if err != nil {
				return 0, err
			}
			stack = append(stack, result)
		case Function:
			if len(stack) < 1 {
				return 0, &Error{Kind: KindMissingFunctionArgument, Value: token.Text}
			}
			fn, ok := functions[strings.ToLower(token.Text)]
			if !ok {
				return 0, invalidToken(token.Text)
			}
			x := stack[len(stack)-1]
			stack = stack[:len(stack)-1]

			result, err := fn(x)
			if err != nil {
				return 0, err
			}
			stack = append(stack, result)
		default:
			// скобки и запятые не должны доходить до этой стадии
			return 0, &Error{Kind: KindInvalidExpression, Value: token.String()}
		}
	}

	if len(stack) != 1 {
		return 0, ErrInvalidExpression
	}

	return stack[0], nil
}
