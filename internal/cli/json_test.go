package cli

import (
	"bytes"
	"encoding/json"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rileyhilliard/vigil/internal/errors"
	"github.com/rileyhilliard/vigil/internal/status"
)

func TestWriteJSONSuccess(t *testing.T) {
	var buf bytes.Buffer
	err := WriteJSONSuccess(&buf, map[string]string{"hello": "world"})
	require.NoError(t, err)

	var env JSONEnvelope
	require.NoError(t, json.Unmarshal(buf.Bytes(), &env))
	assert.True(t, env.Success)
	assert.Nil(t, env.Error)
	assert.Equal(t, map[string]interface{}{"hello": "world"}, env.Data)
}

func TestWriteJSONFromError(t *testing.T) {
	var buf bytes.Buffer
	err := WriteJSONFromError(&buf,
		errors.New(errors.ErrConfig, "No config file found", "Run 'vigil init' to create one"))
	require.NoError(t, err)

	var env JSONEnvelope
	require.NoError(t, json.Unmarshal(buf.Bytes(), &env))
	assert.False(t, env.Success)
	require.NotNil(t, env.Error)
	assert.Equal(t, ErrCodeConfigNotFound, env.Error.Code)
	assert.Equal(t, "No config file found", env.Error.Message)
	assert.NotEmpty(t, env.Error.Suggestion)
}

func TestErrorToJSON_CodeMapping(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want string
	}{
		{
			name: "config not found",
			err:  errors.New(errors.ErrConfig, "Config file not found", ""),
			want: ErrCodeConfigNotFound,
		},
		{
			name: "no config file found",
			err:  errors.New(errors.ErrConfig, "No config file found", ""),
			want: ErrCodeConfigNotFound,
		},
		{
			name: "config invalid",
			err:  errors.New(errors.ErrConfig, "Invalid poll interval", ""),
			want: ErrCodeConfigInvalid,
		},
		{
			name: "feed unreachable",
			err:  errors.New(errors.ErrFeed, "Feed unreachable", ""),
			want: ErrCodeFeedUnreachable,
		},
		{
			name: "feed http error",
			err: errors.WrapWithCode(&status.StatusCodeError{Code: 503},
				errors.ErrFeed, "Feed returned HTTP 503", ""),
			want: ErrCodeFeedHTTPError,
		},
		{
			name: "malformed payload",
			err:  errors.New(errors.ErrDecode, "Malformed components payload", ""),
			want: ErrCodeFeedMalformed,
		},
		{
			name: "plain error",
			err:  fmt.Errorf("something odd"),
			want: ErrCodeUnknown,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ErrorToJSON(tt.err)
			require.NotNil(t, got)
			assert.Equal(t, tt.want, got.Code)
		})
	}
}

func TestErrorToJSON_HTTPStatusDetails(t *testing.T) {
	err := errors.WrapWithCode(&status.StatusCodeError{Code: 429},
		errors.ErrFeed, "Feed returned HTTP 429", "")

	got := ErrorToJSON(err)
	require.NotNil(t, got)
	details, ok := got.Details.(map[string]interface{})
	require.True(t, ok)
	assert.Equal(t, 429, details["http_status"])
}

func TestErrorToJSON_Nil(t *testing.T) {
	assert.Nil(t, ErrorToJSON(nil))
}
