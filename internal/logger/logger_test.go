package logger

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBufferLogger_CapturesMessages(t *testing.T) {
	l := NewBufferLogger()

	l.Debug("fetching %s", "components.json")
	l.Info("poll cycle complete")
	l.Warn("decode failed: %v", "unexpected token")
	l.Error("publish skipped")

	assert.Len(t, l.Messages, 4)
	assert.Equal(t, "debug", l.Messages[0].Level)
	assert.Equal(t, "fetching components.json", l.Messages[0].Message)
	assert.Equal(t, "error", l.Messages[3].Level)
}

func TestBufferLogger_HasLevel(t *testing.T) {
	l := NewBufferLogger()
	l.Warn("slow fetch")

	assert.True(t, l.HasLevel("warn"))
	assert.False(t, l.HasLevel("error"))
}

func TestBufferLogger_Contains(t *testing.T) {
	l := NewBufferLogger()
	l.Info("published snapshot: 7 components")

	assert.True(t, l.Contains("7 components"))
	assert.False(t, l.Contains("8 components"))
}

func TestBufferLogger_Clear(t *testing.T) {
	l := NewBufferLogger()
	l.Info("one")
	l.Clear()

	assert.Empty(t, l.Messages)
}

func TestNoop_DiscardsEverything(t *testing.T) {
	l := Noop()

	// Must not panic or write anywhere.
	l.Debug("a")
	l.Info("b")
	l.Warn("c")
	l.Error("d")
}

func TestSetDefault(t *testing.T) {
	orig := Default()
	defer SetDefault(orig)

	buf := NewBufferLogger()
	SetDefault(buf)

	Default().Info("hello")
	assert.True(t, buf.Contains("hello"))
}
