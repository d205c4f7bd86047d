package interpreter

import (
	"errors"
	"fmt"
	"strings"
)

type Handler interface {
	CanHandle(input string) bool
	Handle(input string) (interface{}, error)
}

var errMissingExpression = errors.New("требуется выражение")

// memoryHandler - mr, mc, m+ <выражение>, m- <выражение>
type memoryHandler struct {
	i *Interpreter
}

// CanHandle - после m+ и m- должен идти пробел или конец ввода,
// иначе строка считается выражением
func (h *memoryHandler) CanHandle(input string) bool {
	lower := strings.ToLower(input)
	switch lower {
	case "mr", "mc", "m+", "m-":
		return true
	}
	return strings.HasPrefix(lower, "m+ ") || strings.HasPrefix(lower, "m- ")
}

func (h *memoryHandler) Handle(input string) (interface{}, error) {
	lower := strings.ToLower(input)
	switch lower {
	case "mr":
		return h.i.MemoryRecall(), nil
	case "mc":
		h.i.MemoryClear()
		return h.i.MemoryRecall(), nil
	}

	expression := strings.TrimSpace(input[2:])
	if expression == "" {
		return nil, fmt.Errorf("%s: %w", input[:2], errMissingExpression)
	}
	if strings.HasPrefix(lower, "m+") {
		return h.i.MemoryAdd(expression)
	}
	return h.i.MemorySubtract(expression)
}

// historyHandler - history, history clear, history search <слово>
type historyHandler struct {
	i *Interpreter
}

func (h *historyHandler) CanHandle(input string) bool {
	return input == "history" || strings.HasPrefix(input, "history ")
}

func (h *historyHandler) Handle(input string) (interface{}, error) {
	args := strings.Fields(input)[1:]
	switch {
	case len(args) == 0:
		return h.i.GetHistory(10), nil
	case args[0] == "clear" && len(args) == 1:
		return fmt.Sprintf("удалено записей: %d", h.i.ClearHistory()), nil
	case args[0] == "search" && len(args) > 1:
		return h.i.SearchHistory(strings.Join(args[1:], " ")), nil
	}
	return nil, fmt.Errorf("использование: history [clear | search <слово>]")
}

// expressionHandler - все остальное считается выражением
type expressionHandler struct {
	i *Interpreter
}

func (h *expressionHandler) CanHandle(string) bool { return true }

func (h *expressionHandler) Handle(input string) (interface{}, error) {
	return h.i.Evaluate(input)
}
