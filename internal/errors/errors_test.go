package errors

import (
	stderrors "errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNew(t *testing.T) {
	err := New(ErrConfig, "Config file not found", "Run 'vigil init' to create one")

	assert.Equal(t, ErrConfig, err.Code)
	assert.Equal(t, "Config file not found", err.Message)
	assert.Equal(t, "Run 'vigil init' to create one", err.Suggestion)
	assert.Nil(t, err.Cause)
}

func TestError_Format(t *testing.T) {
	err := New(ErrFeed, "Feed request failed", "Check the components URL")
	msg := err.Error()

	assert.Contains(t, msg, "✗ Feed request failed")
	assert.Contains(t, msg, "Check the components URL")
}

func TestError_FormatWithCause(t *testing.T) {
	cause := stderrors.New("connection refused")
	err := WrapWithCode(cause, ErrFeed, "Feed unreachable", "Check your network connection")
	msg := err.Error()

	assert.Contains(t, msg, "✗ Feed unreachable")
	assert.Contains(t, msg, "connection refused")
	assert.Contains(t, msg, "Check your network connection")
}

func TestWrap_DefaultsToFeedCode(t *testing.T) {
	cause := stderrors.New("timeout")
	err := Wrap(cause, "Fetch timed out")

	assert.Equal(t, ErrFeed, err.Code)
	assert.Equal(t, cause, err.Cause)
}

func TestUnwrap(t *testing.T) {
	cause := stderrors.New("unexpected end of JSON input")
	err := WrapWithCode(cause, ErrDecode, "Malformed payload", "")

	assert.True(t, stderrors.Is(err, cause))
}

func TestIsCode(t *testing.T) {
	decodeErr := New(ErrDecode, "Malformed payload", "")
	feedErr := New(ErrFeed, "HTTP 503", "")

	assert.True(t, IsCode(decodeErr, ErrDecode))
	assert.False(t, IsCode(decodeErr, ErrFeed))
	assert.True(t, IsCode(feedErr, ErrFeed))
	assert.False(t, IsCode(nil, ErrFeed))
	assert.False(t, IsCode(stderrors.New("plain"), ErrFeed))
}

func TestIsCode_WrappedChain(t *testing.T) {
	inner := New(ErrDecode, "Malformed payload", "")
	outer := stderrors.Join(stderrors.New("outer"), inner)

	assert.True(t, IsCode(outer, ErrDecode))
}
