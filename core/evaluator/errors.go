package evaluator

import (
	"errors"
	"strconv"
)

// ErrorKind - категория ошибки вычисления
type ErrorKind string

const (
	KindInvalidCharacter        ErrorKind = "invalid_character"
	KindInvalidToken            ErrorKind = "invalid_token"
	KindUnbalancedParentheses   ErrorKind = "unbalanced_parentheses"
	KindInvalidExpression       ErrorKind = "invalid_expression"
	KindMissingFunctionArgument ErrorKind = "missing_function_argument"
	KindDivisionByZero          ErrorKind = "division_by_zero"
	KindDomainError             ErrorKind = "domain_error"
)

var messages = map[ErrorKind]string{
	KindInvalidCharacter:        "недопустимый символ",
	KindInvalidToken:            "некорректный токен",
	KindUnbalancedParentheses:   "несогласованные скобки",
	KindInvalidExpression:       "некорректное выражение",
	KindMissingFunctionArgument: "функция без аргумента",
	KindDivisionByZero:          "деление на ноль",
	KindDomainError:             "аргумент вне области определения",
}

// Error - ошибка одной из стадий вычисления. Value содержит
// проблемный символ, токен или имя функции, если он известен.
type Error struct {
	Kind  ErrorKind
	Value string
}

func (e *Error) Error() string {
	msg, ok := messages[e.Kind]
	if !ok {
		msg = string(e.Kind)
	}
	if e.Value == "" {
		return msg
	}
	return msg + ": " + e.Value
}

// Is сравнивает по виду ошибки, поэтому errors.Is(err, ErrDomain)
// срабатывает для любого аргумента.
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	if !ok {
		return false
	}
	return t.Kind == e.Kind && (t.Value == "" || t.Value == e.Value)
}

var (
	ErrInvalidCharacter        = &Error{Kind: KindInvalidCharacter}
	ErrInvalidToken            = &Error{Kind: KindInvalidToken}
	ErrUnbalancedParentheses   = &Error{Kind: KindUnbalancedParentheses}
	ErrInvalidExpression       = &Error{Kind: KindInvalidExpression}
	ErrMissingFunctionArgument = &Error{Kind: KindMissingFunctionArgument}
	ErrDivisionByZero          = &Error{Kind: KindDivisionByZero}
	ErrDomain                  = &Error{Kind: KindDomainError}
)

func invalidCharacter(c rune) error {
	return &Error{Kind: KindInvalidCharacter, Value: strconv.QuoteRune(c)}
}

func invalidToken(text string) error {
	return &Error{Kind: KindInvalidToken, Value: text}
}

func domainError(fn string, x float64) error {
	return &Error{Kind: KindDomainError, Value: fn + "(" + strconv.FormatFloat(x, 'g', -1, 64) + ")"}
}

// KindOf возвращает вид ошибки вычисления или пустую строку,
// если err не из этого пакета.
func KindOf(err error) ErrorKind {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind
	}
	return ""
}
