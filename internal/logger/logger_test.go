package logger

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewJSON(t *testing.T) {
	var buf bytes.Buffer
	l := NewWithOutput(&buf, "debug", "json")
	assert.Equal(t, logrus.DebugLevel, l.GetLevel())

	l.WithField("reference", "ISH-20240101-1234").Info("booking created")
	var entry map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	assert.Equal(t, "booking created", entry["msg"])
	assert.Equal(t, "ISH-20240101-1234", entry["reference"])
}

func TestNewUnknownLevelFallsBackToInfo(t *testing.T) {
	l := NewWithOutput(&bytes.Buffer{}, "loud", "text")
	assert.Equal(t, logrus.InfoLevel, l.GetLevel())
	_, ok := l.Formatter.(*logrus.TextFormatter)
	assert.True(t, ok)
}
