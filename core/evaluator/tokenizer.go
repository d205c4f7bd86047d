package evaluator

import (
	"strconv"
	"strings"
	"unicode"
)

// Tokenize - разбиение выражения на токены. Пробелы игнорируются,
// унарный минус переписывается как "0 -".
func Tokenize(input string) ([]Token, error) {
	s := []rune(stripSpaces(input))
	tokens := make([]Token, 0, len(s))

	for i := 0; i < len(s); {
		c := s[i]
		switch {
		case isDigit(c) || c == '.':
			start := i
			for i < len(s) && (isDigit(s[i]) || s[i] == '.') {
				i++
			}
			tok, err := parseNumber(string(s[start:i]))
			if err != nil {
				return nil, err
			}
			tokens = append(tokens, tok)
			continue
		case unicode.IsLetter(c):
			start := i
			for i < len(s) && unicode.IsLetter(s[i]) {
				i++
			}
			// принадлежность к известным функциям проверяется при вычислении
			tokens = append(tokens, Token{Kind: Function, Text: string(s[start:i])})
			continue
		case c != '-' && isOperator(string(c)):
			tokens = append(tokens, operatorToken(string(c)))
		case c == ',':
			tokens = append(tokens, Token{Kind: Comma})
		case c == '(':
			tokens = append(tokens, Token{Kind: LeftParen})
		case c == ')':
			tokens = append(tokens, Token{Kind: RightParen})
		case c == '-':
			if unaryPosition(tokens) {
				tokens = append(tokens, numberToken(0))
			}
			tokens = append(tokens, operatorToken("-"))
		default:
			return nil, invalidCharacter(c)
		}
		i++
	}

	return tokens, nil
}

// unaryPosition - минус унарный в начале выражения, после "(", оператора или ","
func unaryPosition(tokens []Token) bool {
	if len(tokens) == 0 {
		return true
	}
	switch tokens[len(tokens)-1].Kind {
	case LeftParen, Operator, Comma:
		return true
	}
	return false
}

// parseNumber - литерал из цифр и точек; "1.2.3" и "." отвергаются
func parseNumber(literal string) (Token, error) {
	if strings.Count(literal, ".") > 1 {
		return Token{}, invalidToken(literal)
	}
	v, err := strconv.ParseFloat(literal, 64)
	if err != nil {
		return Token{}, invalidToken(literal)
	}
	return numberToken(v), nil
}

func isDigit(c rune) bool { return c >= '0' && c <= '9' }

func stripSpaces(s string) string {
	return strings.Map(func(r rune) rune {
		if unicode.IsSpace(r) {
			return -1
		}
		return r
	}, s)
}
