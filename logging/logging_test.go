package logging

import (
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
)

func TestNewLevels(t *testing.T) {
	assert.Equal(t, logrus.DebugLevel, New("debug").Logger.Level)
	assert.Equal(t, logrus.InfoLevel, New("").Logger.Level)
	assert.Equal(t, logrus.InfoLevel, New("loud").Logger.Level)
	assert.Equal(t, "scicalc", New("warn").Data["app"])
}
