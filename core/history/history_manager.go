package history

import (
	"strconv"
	"strings"
	"time"

	"scicalc/core/evaluator"
	. "scicalc/core/persistence"
)

type HistoryManager struct {
	persistence *PersistenceManager
	maxHistory  int
}

func NewHistoryManager(persistence *PersistenceManager) *HistoryManager {
	return NewHistoryManagerWithLimit(persistence, 100)
}

func NewHistoryManagerWithLimit(persistence *PersistenceManager, maxHistory int) *HistoryManager {
	if maxHistory <= 0 {
		maxHistory = 100
	}
	return &HistoryManager{
		persistence: persistence,
		maxHistory:  maxHistory,
	}
}

// AddEntry - добавление вычисления в историю с сохранением в JSON
func (hm *HistoryManager) AddEntry(expression string, result float64, evalErr error) (HistoryEntry, error) {
	entry := HistoryEntry{
		Expression: expression,
		Timestamp:  time.Now().Format(time.RFC3339),
	}
	if evalErr != nil {
		entry.Error = evalErr.Error()
		entry.Kind = string(evaluator.KindOf(evalErr))
	} else {
		entry.Result = strconv.FormatFloat(result, 'g', -1, 64)
	}

	err := hm.persistence.Update(func(data *CalculatorData) {
		entry.ID = 1
		if n := len(data.History); n > 0 {
			entry.ID = data.History[n-1].ID + 1
		}
		data.History = append(data.History, entry)

		// Ограничиваем размер истории
		if len(data.History) > hm.maxHistory {
			data.History = data.History[len(data.History)-hm.maxHistory:]
		}
	})
	return entry, err
}

// GetHistory - получение истории вычислений
func (hm *HistoryManager) GetHistory(limit int) []HistoryEntry {
	return hm.persistence.GetRecentHistory(limit)
}

// DetailedHistoryEntry - детализированная запись истории
type DetailedHistoryEntry struct {
	HistoryEntry
	Time string `json:"time"` // Форматированное время
}

// GetDetailedHistory - получение подробной истории с форматированным временем
func (hm *HistoryManager) GetDetailedHistory(limit int) []DetailedHistoryEntry {
	history := hm.GetHistory(limit)
	detailed := make([]DetailedHistoryEntry, len(history))

	for i, entry := range history {
		formattedTime := "unknown"
		if t, err := time.Parse(time.RFC3339, entry.Timestamp); err == nil {
			formattedTime = t.Format("2006-01-02 15:04:05")
		}
		detailed[i] = DetailedHistoryEntry{HistoryEntry: entry, Time: formattedTime}
	}

	return detailed
}

// ClearHistory - очистка всей истории
func (hm *HistoryManager) ClearHistory() error {
	return hm.persistence.ClearHistory()
}

// SearchHistory - поиск по выражениям без учета регистра
func (hm *HistoryManager) SearchHistory(keyword string) []HistoryEntry {
	keyword = strings.ToLower(keyword)
	results := make([]HistoryEntry, 0)

	for _, entry := range hm.GetHistory(hm.maxHistory) {
		if strings.Contains(strings.ToLower(entry.Expression), keyword) {
			results = append(results, entry)
		}
	}

	return results
}

// GetHistoryCount - получение количества записей в истории
func (hm *HistoryManager) GetHistoryCount() int {
	return len(hm.GetHistory(0))
}

// GetLastEntry - последняя запись; ok == false при пустой истории
func (hm *HistoryManager) GetLastEntry() (HistoryEntry, bool) {
	history := hm.GetHistory(1)
	if len(history) == 0 {
		return HistoryEntry{}, false
	}
	return history[0], true
}
