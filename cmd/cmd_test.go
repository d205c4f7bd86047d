package cmd

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func run(t *testing.T, args ...string) (string, error) {
	t.Helper()
	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetErr(&out)
	rootCmd.SetArgs(args)
	err := rootCmd.Execute()
	return out.String(), err
}

func TestEvalCommand(t *testing.T) {
	out, err := run(t, "eval", "2+3*4", "2^3^2")
	require.NoError(t, err)
	assert.Contains(t, out, "2+3*4 = 14")
	assert.Contains(t, out, "2^3^2 = 512")
}

func TestEvalCommandContinuesAfterFailure(t *testing.T) {
	out, err := run(t, "eval", "log(-1)", "sqrt(16) + 2")
	require.Error(t, err)
	assert.Contains(t, out, "log(-1) → ошибка")
	assert.Contains(t, out, "sqrt(16) + 2 = 6")
	assert.Contains(t, err.Error(), "1 из 2")
}

func TestDemoCommand(t *testing.T) {
	out, err := run(t, "demo")
	require.NoError(t, err)
	assert.Contains(t, out, "Конец проверок.")
}

func TestVersionCommand(t *testing.T) {
	out, err := run(t, "version")
	require.NoError(t, err)
	assert.Contains(t, out, "scicalc v"+Version)
}
