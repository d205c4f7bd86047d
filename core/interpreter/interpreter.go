package interpreter

import (
	"errors"
	"fmt"
	"math"
	"strings"
	"sync"
	"time"

	"scicalc/core/evaluator"
	"scicalc/core/history"
	"scicalc/core/memory"
	"scicalc/core/persistence"
	"scicalc/metrics"

	"github.com/sirupsen/logrus"
)

var ErrNotFinite = errors.New("в память можно записать только конечное число")

type Interpreter struct {
	persistence *persistence.PersistenceManager
	history     *history.HistoryManager
	memory      *memory.Memory
	handlers    []Handler
	log         *logrus.Entry

	// memMu упорядочивает изменение памяти и ее сохранение
	memMu sync.Mutex
}

func NewInterpreter(pm *persistence.PersistenceManager, historyLimit int, log *logrus.Entry) *Interpreter {
	if log == nil {
		log = logrus.NewEntry(logrus.StandardLogger())
	}
	i := &Interpreter{
		persistence: pm,
		history:     history.NewHistoryManagerWithLimit(pm, historyLimit),
		memory:      memory.NewMemory(),
		log:         log.WithField("component", "interpreter"),
	}

	i.registerHandlers()
	i.loadState()

	return i
}

func (i *Interpreter) registerHandlers() {
	i.handlers = append(i.handlers,
		&memoryHandler{i: i},
		&historyHandler{i: i},
		&expressionHandler{i: i},
	)
}

// loadState - восстановление памяти из сохраненных данных
func (i *Interpreter) loadState() {
	i.memory.Set(i.persistence.LoadMemory())
	count := i.history.GetHistoryCount()
	metrics.UpdateCalculatorMetrics(i.memory.Recall(), count)
	i.log.WithFields(logrus.Fields{
		"memory":  i.memory.Recall(),
		"history": count,
	}).Debug("состояние загружено")
}

// Execute - выполнение введенной команды
func (i *Interpreter) Execute(inputStr string) (interface{}, error) {
	input := strings.TrimSpace(inputStr)
	for _, h := range i.handlers {
		if h.CanHandle(input) {
			return h.Handle(input)
		}
	}
	// expressionHandler принимает все, сюда попасть нельзя
	return nil, fmt.Errorf("неизвестная команда: %s", input)
}

// Evaluate - вычисление выражения с записью в историю и метрики
func (i *Interpreter) Evaluate(expression string) (float64, error) {
	start := time.Now()
	result, err := evaluator.Evaluate(expression)
	metrics.ObserveEvaluation(string(evaluator.KindOf(err)), time.Since(start).Seconds())

	entry, herr := i.history.AddEntry(expression, result, err)
	if herr != nil {
		i.log.WithError(herr).Warn("не удалось сохранить историю")
	}
	metrics.CalculatorHistorySize.Set(float64(i.history.GetHistoryCount()))

	logger := i.log.WithFields(logrus.Fields{"id": entry.ID, "expression": expression})
	if err != nil {
		logger.WithError(err).Debug("ошибка вычисления")
		return 0, fmt.Errorf("ошибка вычисления: %w", err)
	}
	logger.WithField("result", result).Debug("вычислено")
	return result, nil
}

// MemoryAdd - M+ с результатом выражения
func (i *Interpreter) MemoryAdd(expression string) (float64, error) {
	return i.updateMemory(expression, 1, i.memory.Add)
}

// MemorySubtract - M- с результатом выражения
func (i *Interpreter) MemorySubtract(expression string) (float64, error) {
	return i.updateMemory(expression, -1, i.memory.Subtract)
}

func (i *Interpreter) updateMemory(expression string, sign float64, apply func(float64) float64) (float64, error) {
	v, err := i.Evaluate(expression)
	if err != nil {
		return 0, err
	}

	i.memMu.Lock()
	defer i.memMu.Unlock()

	if next := i.memory.Recall() + sign*v; math.IsInf(next, 0) || math.IsNaN(next) {
		return 0, ErrNotFinite
	}
	value := apply(v)
	i.saveMemory(value)
	return value, nil
}

// MemoryRecall - MR
func (i *Interpreter) MemoryRecall() float64 {
	return i.memory.Recall()
}

// MemoryClear - MC
func (i *Interpreter) MemoryClear() {
	i.memMu.Lock()
	defer i.memMu.Unlock()

	i.memory.Clear()
	i.saveMemory(0)
}

func (i *Interpreter) saveMemory(value float64) {
	if err := i.persistence.SaveMemory(value); err != nil {
		i.log.WithError(err).Warn("не удалось сохранить память")
	}
	metrics.CalculatorMemoryValue.Set(value)
}

// GetHistory - последние записи истории
func (i *Interpreter) GetHistory(limit int) []history.DetailedHistoryEntry {
	return i.history.GetDetailedHistory(limit)
}

// SearchHistory - поиск по истории
func (i *Interpreter) SearchHistory(keyword string) []persistence.HistoryEntry {
	return i.history.SearchHistory(keyword)
}

// ClearHistory - очистка истории, возвращает число удаленных записей
func (i *Interpreter) ClearHistory() int {
	count := i.history.GetHistoryCount()
	if err := i.history.ClearHistory(); err != nil {
		i.log.WithError(err).Warn("не удалось очистить историю")
		return 0
	}
	metrics.CalculatorHistorySize.Set(0)
	return count
}

// GetHistoryCommands - только выражения истории в виде строк
func (i *Interpreter) GetHistoryCommands(limit int) []string {
	history := i.history.GetHistory(limit)
	commands := make([]string, len(history))
	for idx, entry := range history {
		commands[idx] = entry.Expression
	}
	return commands
}
