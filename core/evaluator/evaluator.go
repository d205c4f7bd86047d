// Package evaluator вычисляет инфиксные арифметические выражения:
// токенизация, преобразование в ОПН и вычисление на стеке.
//
// Все стадии - чистые функции без общего изменяемого состояния,
// поэтому Evaluate можно вызывать из нескольких горутин одновременно.
package evaluator

// Evaluate - вычисление математического выражения
func Evaluate(expression string) (float64, error) {
	tokens, err := Tokenize(expression)
	if err != nil {
		return 0, err
	}

	rpn, err := ToPostfix(tokens)
	if err != nil {
		return 0, err
	}

	return EvalPostfix(rpn)
}
