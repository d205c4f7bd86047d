package ui

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRunDemo(t *testing.T) {
	var out bytes.Buffer
	RunDemo(&out)
	text := out.String()

	assert.Contains(t, text, "3 + 4 = 7")
	assert.Contains(t, text, "8 / 0 → ошибка")
	assert.Contains(t, text, "2^8 = 256")
	assert.Contains(t, text, "2+3*4 = 14")
	assert.Contains(t, text, "3 + 4 * 2 / (1 - 5) ^ 2 = 3.5")
	assert.Contains(t, text, "-3 + 5 = 2")
	assert.Contains(t, text, "sqrt(16) + 2 = 6")
	assert.Contains(t, text, "M+5 → MR = 5")
	assert.Contains(t, text, "MC → MR = 0")

	// все ошибочные выражения напечатаны, демонстрация дошла до конца
	for _, expr := range DemoFailingExpressions {
		assert.Contains(t, text, expr+" → ошибка")
	}
	assert.True(t, strings.HasSuffix(strings.TrimSpace(text), "Конец проверок."))
}
