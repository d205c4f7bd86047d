package ui

import (
	"bytes"
	"path/filepath"
	"strings"
	"testing"

	"scicalc/core/interpreter"
	"scicalc/core/persistence"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConsoleSession(t *testing.T) {
	pm := persistence.NewPersistenceManager(filepath.Join(t.TempDir(), "data.json"), nil)
	interp := interpreter.NewInterpreter(pm, 20, nil)

	input := strings.Join([]string{
		"2+3*4",
		"",
		"3 / (2-2)",
		"m+ 10",
		"/memory",
		"/history",
		"history search 3",
		"/help",
		"/quit",
		"1+1",
	}, "\n")

	var out bytes.Buffer
	require.NoError(t, NewConsoleInterface(interp, strings.NewReader(input), &out).Run())

	text := out.String()
	assert.Contains(t, text, "= 14")
	assert.Contains(t, text, "Ошибка:")
	assert.Contains(t, text, "деление на ноль")
	assert.Contains(t, text, "M = 10")
	assert.Contains(t, text, "2+3*4 = 14")
	assert.Contains(t, text, "#1 2+3*4")
	assert.Contains(t, text, "ФУНКЦИИ:   cos exp ln log sin sqrt tan")
	assert.Contains(t, text, "До свидания!")
	// после /quit ввод не читается
	assert.NotContains(t, text, "= 2\n")
}

func TestConsoleShowsRecentHistory(t *testing.T) {
	pm := persistence.NewPersistenceManager("", nil)
	interp := interpreter.NewInterpreter(pm, 20, nil)
	interp.Execute("7*6")

	var out bytes.Buffer
	require.NoError(t, NewConsoleInterface(interp, strings.NewReader(""), &out).Run())
	assert.Contains(t, out.String(), "1. 7*6")
}
