// Package calculator - прямые вызовы арифметических и научных операций
// без разбора выражений.
package calculator

import (
	"errors"
	"math"
)

var (
	ErrDivisionByZero = errors.New("деление на ноль")
	ErrInvalidLog10   = errors.New("логарифм по основанию 10 от неположительного числа")
	ErrInvalidLn      = errors.New("натуральный логарифм от неположительного числа")
	ErrInvalidRoot    = errors.New("корень нулевой степени")
)

// Basic - четыре арифметических действия
type Basic struct{}

func (Basic) Add(a, b float64) float64      { return a + b }
func (Basic) Subtract(a, b float64) float64 { return a - b }
func (Basic) Multiply(a, b float64) float64 { return a * b }

// Divide - деление; нулевой делитель - ошибка
func (Basic) Divide(a, b float64) (float64, error) {
	if b == 0 {
		return 0, ErrDivisionByZero
	}
	return a / b, nil
}

// Scientific - научные функции; тригонометрия принимает градусы
type Scientific struct {
	Basic
}

func NewScientific() *Scientific {
	return &Scientific{}
}

func toRadians(deg float64) float64 { return deg * math.Pi / 180 }

func (*Scientific) Sin(deg float64) float64 { return math.Sin(toRadians(deg)) }
func (*Scientific) Cos(deg float64) float64 { return math.Cos(toRadians(deg)) }
func (*Scientific) Tan(deg float64) float64 { return math.Tan(toRadians(deg)) }

func (*Scientific) Power(base, exp float64) float64 { return math.Pow(base, exp) }

// Root - корень степени n, вычисляется как value^(1/n)
func (*Scientific) Root(value, n float64) (float64, error) {
	if n == 0 {
		return 0, ErrInvalidRoot
	}
	return math.Pow(value, 1/n), nil
}

// Sqrt - квадратный корень, Root(value, 2)
func (s *Scientific) Sqrt(value float64) (float64, error) {
	return s.Root(value, 2)
}

func (*Scientific) Log10(x float64) (float64, error) {
	if x <= 0 {
		return 0, ErrInvalidLog10
	}
	return math.Log10(x), nil
}

func (*Scientific) Ln(x float64) (float64, error) {
	if x <= 0 {
		return 0, ErrInvalidLn
	}
	return math.Log(x), nil
}

func (*Scientific) Exp(x float64) float64 { return math.Exp(x) }
