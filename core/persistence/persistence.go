package persistence

import (
	"encoding/json"
	"fmt"
	"io"
	"math"
	"os"
	"path/filepath"
	"strconv"
	"sync"
	"time"

	"github.com/sirupsen/logrus"
)

// HistoryEntry - структура для записи истории вычислений
type HistoryEntry struct {
	ID         int    `json:"id"`
	Expression string `json:"expression"`
	Result     string `json:"result,omitempty"`
	Error      string `json:"error,omitempty"`
	Kind       string `json:"kind,omitempty"`
	Timestamp  string `json:"timestamp"`
}

// CalculatorData - структура для хранения всех данных.
// Memory хранится строкой, так как JSON не умеет Inf и NaN.
type CalculatorData struct {
	Memory  string         `json:"memory"`
	History []HistoryEntry `json:"history"`
}

func newCalculatorData() *CalculatorData {
	return &CalculatorData{
		Memory:  "0",
		History: make([]HistoryEntry, 0),
	}
}

func (d *CalculatorData) clone() *CalculatorData {
	c := &CalculatorData{
		Memory:  d.Memory,
		History: make([]HistoryEntry, len(d.History)),
	}
	copy(c.History, d.History)
	return c
}

// PersistenceManager хранит данные в JSON файле. Пустой dataFile
// означает хранение только в памяти процесса.
type PersistenceManager struct {
	mu       sync.Mutex
	dataFile string
	data     *CalculatorData
	log      *logrus.Entry
}

func NewPersistenceManager(dataFile string, log *logrus.Entry) *PersistenceManager {
	if log == nil {
		log = logrus.NewEntry(logrus.StandardLogger())
	}
	return &PersistenceManager{
		dataFile: dataFile,
		log:      log.WithField("component", "persistence"),
	}
}

// load - ленивая загрузка из файла; вызывается под mu
func (pm *PersistenceManager) load() (*CalculatorData, error) {
	if pm.data != nil {
		return pm.data, nil
	}
	if pm.dataFile == "" {
		pm.data = newCalculatorData()
		return pm.data, nil
	}

	file, err := os.Open(pm.dataFile)
	if err != nil {
		if os.IsNotExist(err) {
			// Файл не существует - начинаем с пустых данных
			pm.data = newCalculatorData()
			return pm.data, nil
		}
		return nil, fmt.Errorf("ошибка загрузки %s: %w", pm.dataFile, err)
	}
	defer file.Close()

	data := newCalculatorData()
	if err := json.NewDecoder(file).Decode(data); err != nil {
		return nil, fmt.Errorf("ошибка декодирования JSON: %w", err)
	}
	migrateHistoryFormat(data)

	pm.data = data
	return pm.data, nil
}

// save - запись на диск; вызывается под mu
func (pm *PersistenceManager) save() error {
	if pm.dataFile == "" {
		return nil
	}

	return writeFileAtomic(pm.dataFile, func(w io.Writer) error {
		encoder := json.NewEncoder(w)
		encoder.SetIndent("", "  ")
		encoder.SetEscapeHTML(false)

		if err := encoder.Encode(pm.data); err != nil {
			return fmt.Errorf("ошибка кодирования JSON: %w", err)
		}
		return nil
	})
}

// writeFileAtomic пишет во временный файл рядом с path и переименовывает его,
// поэтому при ошибке записи прежнее содержимое path остается нетронутым.
func writeFileAtomic(path string, write func(w io.Writer) error) error {
	tmp, err := os.CreateTemp(filepath.Dir(path), filepath.Base(path)+".tmp*")
	if err != nil {
		return fmt.Errorf("ошибка сохранения: %w", err)
	}
	defer os.Remove(tmp.Name())

	if err := write(tmp); err != nil {
		tmp.Close()
		return err
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("ошибка сохранения: %w", err)
	}
	if err := os.Rename(tmp.Name(), path); err != nil {
		return fmt.Errorf("ошибка сохранения: %w", err)
	}
	return nil
}

// migrateHistoryFormat - восстановление ID и timestamp у старых записей
func migrateHistoryFormat(data *CalculatorData) {
	if data.Memory == "" {
		data.Memory = "0"
	}
	newHistory := make([]HistoryEntry, 0, len(data.History))
	for i, entry := range data.History {
		if entry.Expression == "" {
			continue
		}
		if entry.Timestamp == "" {
			entry.Timestamp = time.Now().Format(time.RFC3339)
		}
		if entry.ID == 0 {
			entry.ID = i + 1
		}
		newHistory = append(newHistory, entry)
	}
	data.History = newHistory
}

// LoadData - копия текущих данных
func (pm *PersistenceManager) LoadData() (*CalculatorData, error) {
	pm.mu.Lock()
	defer pm.mu.Unlock()

	data, err := pm.load()
	if err != nil {
		return nil, err
	}
	return data.clone(), nil
}

// SaveData - замена всех данных
func (pm *PersistenceManager) SaveData(data *CalculatorData) error {
	pm.mu.Lock()
	defer pm.mu.Unlock()

	pm.data = data.clone()
	migrateHistoryFormat(pm.data)
	return pm.save()
}

// Update - атомарное изменение данных с последующим сохранением
func (pm *PersistenceManager) Update(fn func(data *CalculatorData)) error {
	pm.mu.Lock()
	defer pm.mu.Unlock()

	data, err := pm.load()
	if err != nil {
		return err
	}
	fn(data)
	return pm.save()
}

// GetRecentHistory - получение последних N записей истории
func (pm *PersistenceManager) GetRecentHistory(limit int) []HistoryEntry {
	data, err := pm.LoadData()
	if err != nil {
		pm.log.WithError(err).Warn("не удалось загрузить историю")
		return []HistoryEntry{}
	}

	if limit <= 0 || limit > len(data.History) {
		return data.History
	}
	return data.History[len(data.History)-limit:]
}

// ClearHistory - очистка истории
func (pm *PersistenceManager) ClearHistory() error {
	return pm.Update(func(data *CalculatorData) {
		data.History = []HistoryEntry{}
	})
}

// SaveMemory - сохранение только значения памяти
func (pm *PersistenceManager) SaveMemory(value float64) error {
	return pm.Update(func(data *CalculatorData) {
		data.Memory = strconv.FormatFloat(value, 'g', -1, 64)
	})
}

// LoadMemory - загрузка только значения памяти
func (pm *PersistenceManager) LoadMemory() float64 {
	data, err := pm.LoadData()
	if err != nil {
		pm.log.WithError(err).Warn("не удалось загрузить память")
		return 0
	}
	v, err := strconv.ParseFloat(data.Memory, 64)
	if err != nil || math.IsNaN(v) {
		pm.log.WithField("memory", data.Memory).Warn("некорректное значение памяти, сброс в 0")
		return 0
	}
	return v
}
