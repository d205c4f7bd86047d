package persistence

import (
	"errors"
	"io"
	"math"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadMissingFile(t *testing.T) {
	pm := NewPersistenceManager(filepath.Join(t.TempDir(), "missing.json"), nil)

	data, err := pm.LoadData()
	require.NoError(t, err)
	assert.Equal(t, "0", data.Memory)
	assert.Empty(t, data.History)
}

func TestSaveAndReload(t *testing.T) {
	file := filepath.Join(t.TempDir(), "calculator_data.json")
	pm := NewPersistenceManager(file, nil)

	require.NoError(t, pm.SaveData(&CalculatorData{
		Memory: "12.5",
		History: []HistoryEntry{
			{Expression: "2+2", Result: "4"},
			{Expression: "log(-1)", Error: "domain", Kind: "domain_error"},
		},
	}))

	reloaded := NewPersistenceManager(file, nil)
	data, err := reloaded.LoadData()
	require.NoError(t, err)
	require.Len(t, data.History, 2)
	assert.Equal(t, 1, data.History[0].ID)
	assert.Equal(t, 2, data.History[1].ID)
	assert.NotEmpty(t, data.History[0].Timestamp)
	assert.Equal(t, "domain_error", data.History[1].Kind)
	assert.Equal(t, 12.5, reloaded.LoadMemory())
}

func TestMigrateDropsEmptyEntries(t *testing.T) {
	file := filepath.Join(t.TempDir(), "old.json")
	require.NoError(t, os.WriteFile(file, []byte(`{"history":[{"expression":""},{"expression":"1+1"}]}`), 0644))

	pm := NewPersistenceManager(file, nil)
	history := pm.GetRecentHistory(0)
	require.Len(t, history, 1)
	assert.Equal(t, "1+1", history[0].Expression)
	assert.Equal(t, 0.0, pm.LoadMemory())
}

func TestCorruptFile(t *testing.T) {
	file := filepath.Join(t.TempDir(), "bad.json")
	require.NoError(t, os.WriteFile(file, []byte("{not json"), 0644))

	pm := NewPersistenceManager(file, nil)
	_, err := pm.LoadData()
	assert.Error(t, err)
	assert.Empty(t, pm.GetRecentHistory(10))
}

func TestRecentHistoryAndClear(t *testing.T) {
	pm := NewPersistenceManager("", nil)
	for _, expr := range []string{"1", "2", "3", "4"} {
		expr := expr
		require.NoError(t, pm.Update(func(data *CalculatorData) {
			data.History = append(data.History, HistoryEntry{Expression: expr, ID: len(data.History) + 1})
		}))
	}

	recent := pm.GetRecentHistory(2)
	require.Len(t, recent, 2)
	assert.Equal(t, "3", recent[0].Expression)
	assert.Equal(t, "4", recent[1].Expression)
	assert.Len(t, pm.GetRecentHistory(10), 4)

	require.NoError(t, pm.ClearHistory())
	assert.Empty(t, pm.GetRecentHistory(10))
}

func TestMemoryInfinity(t *testing.T) {
	file := filepath.Join(t.TempDir(), "inf.json")
	pm := NewPersistenceManager(file, nil)

	require.NoError(t, pm.SaveMemory(math.Inf(1)))
	assert.True(t, math.IsInf(NewPersistenceManager(file, nil).LoadMemory(), 1))
}

func TestFailedWriteKeepsPreviousFile(t *testing.T) {
	dir := t.TempDir()
	file := filepath.Join(dir, "data.json")
	require.NoError(t, os.WriteFile(file, []byte(`{"memory":"7","history":[]}`), 0644))

	err := writeFileAtomic(file, func(w io.Writer) error {
		io.WriteString(w, `{"memory":`)
		return errors.New("disk full")
	})
	require.Error(t, err)

	content, err := os.ReadFile(file)
	require.NoError(t, err)
	assert.JSONEq(t, `{"memory":"7","history":[]}`, string(content))

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	assert.Len(t, entries, 1, "временный файл должен быть удален")
}

func TestSaveLeavesNoTempFiles(t *testing.T) {
	dir := t.TempDir()
	pm := NewPersistenceManager(filepath.Join(dir, "data.json"), nil)

	for i := 0; i < 3; i++ {
		require.NoError(t, pm.SaveMemory(float64(i)))
	}

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, "data.json", entries[0].Name())
	assert.Equal(t, 2.0, NewPersistenceManager(filepath.Join(dir, "data.json"), nil).LoadMemory())
}
