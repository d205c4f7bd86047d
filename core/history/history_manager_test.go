package history

import (
	"errors"
	"path/filepath"
	"testing"

	"scicalc/core/evaluator"
	"scicalc/core/persistence"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newManager(t *testing.T, limit int) *HistoryManager {
	t.Helper()
	pm := persistence.NewPersistenceManager(filepath.Join(t.TempDir(), "history.json"), nil)
	return NewHistoryManagerWithLimit(pm, limit)
}

func TestAddEntry(t *testing.T) {
	hm := newManager(t, 10)

	entry, err := hm.AddEntry("2+2", 4, nil)
	require.NoError(t, err)
	assert.Equal(t, 1, entry.ID)
	assert.Equal(t, "4", entry.Result)
	assert.Empty(t, entry.Error)

	_, evalErr := evaluator.Evaluate("log(-1)")
	entry, err = hm.AddEntry("log(-1)", 0, evalErr)
	require.NoError(t, err)
	assert.Equal(t, 2, entry.ID)
	assert.Equal(t, string(evaluator.KindDomainError), entry.Kind)
	assert.NotEmpty(t, entry.Error)
	assert.Empty(t, entry.Result)

	last, ok := hm.GetLastEntry()
	require.True(t, ok)
	assert.Equal(t, "log(-1)", last.Expression)
	assert.Equal(t, 2, hm.GetHistoryCount())
}

func TestHistoryLimit(t *testing.T) {
	hm := newManager(t, 3)
	for i := 0; i < 5; i++ {
		_, err := hm.AddEntry("1+1", 2, nil)
		require.NoError(t, err)
	}

	history := hm.GetHistory(0)
	require.Len(t, history, 3)
	// ID продолжают расти после обрезки
	assert.Equal(t, 3, history[0].ID)
	assert.Equal(t, 5, history[2].ID)
}

func TestSearchAndDetailed(t *testing.T) {
	hm := newManager(t, 10)
	hm.AddEntry("SQRT(16)", 4, nil)
	hm.AddEntry("2+3", 5, nil)
	hm.AddEntry("sqrt(-1)", 0, errors.New("domain"))

	found := hm.SearchHistory("sqrt")
	require.Len(t, found, 2)
	assert.Equal(t, "SQRT(16)", found[0].Expression)

	detailed := hm.GetDetailedHistory(2)
	require.Len(t, detailed, 2)
	assert.Equal(t, "2+3", detailed[0].Expression)
	assert.NotEqual(t, "unknown", detailed[0].Time)
	// ошибка не из вычислителя - вид пустой
	assert.Empty(t, detailed[1].Kind)
}

func TestClearHistory(t *testing.T) {
	hm := newManager(t, 10)
	hm.AddEntry("1", 1, nil)
	require.NoError(t, hm.ClearHistory())

	assert.Zero(t, hm.GetHistoryCount())
	_, ok := hm.GetLastEntry()
	assert.False(t, ok)

	entry, err := hm.AddEntry("2", 2, nil)
	require.NoError(t, err)
	assert.Equal(t, 1, entry.ID)
}
