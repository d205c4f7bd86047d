package evaluator

// ToPostfix - алгоритм сортировочной станции (Dijkstra) для преобразования в ОПН
func ToPostfix(tokens []Token) ([]Token, error) {
	output := make([]Token, 0, len(tokens))
	var stack []Token

	pop := func() Token {
		top := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		return top
	}

	for _, token := range tokens {
		switch token.Kind {
		case Number:
			output = append(output, token)
		case Function:
			stack = append(stack, token)
		case Comma:
			for len(stack) > 0 && stack[len(stack)-1].Kind != LeftParen {
				output = append(output, pop())
			}
			if len(stack) == 0 {
				// разделитель вне скобок вызова
				return nil, &Error{Kind: KindInvalidExpression, Value: ","}
			}
		case Operator:
			op := operators[token.Text]
			for len(stack) > 0 && stack[len(stack)-1].Kind == Operator {
				top := operators[stack[len(stack)-1].Text]
				if top.precedence > op.precedence || (top.precedence == op.precedence && !op.right) {
					output = append(output, pop())
				} else {
					break
				}
			}
			stack = append(stack, token)
		case LeftParen:
			stack = append(stack, token)
		case RightParen:
			for len(stack) > 0 && stack[len(stack)-1].Kind != LeftParen {
				output = append(output, pop())
			}
			if len(stack) == 0 {
				return nil, ErrUnbalancedParentheses
			}
			pop() // удаляем "("
			if len(stack) > 0 && stack[len(stack)-1].Kind == Function {
				output = append(output, pop())
			}
		default:
			return nil, invalidToken(token.String())
		}
	}

	// Выталкиваем оставшиеся операторы из стека
	for len(stack) > 0 {
		top := pop()
		if top.Kind == LeftParen || top.Kind == RightParen {
			return nil, ErrUnbalancedParentheses
		}
		output = append(output, top)
	}

	return output, nil
}
