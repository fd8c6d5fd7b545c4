package api

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestError_Is(t *testing.T) {
	cause := errors.New("connection refused")
	err := fmt.Errorf("failed to fetch block: %w", newError(BadRequest, cause))

	require.ErrorIs(t, err, ErrBadRequest)
	require.ErrorIs(t, err, cause)
	require.NotErrorIs(t, err, ErrAPIError)
	require.NotErrorIs(t, err, ErrInvalidURLParams)
	require.NotErrorIs(t, err, ErrJSONParseError)
	require.Equal(t, BadRequest, KindOf(err))
	require.Equal(t, ErrorKind(0), KindOf(cause))
}

func TestError_Message(t *testing.T) {
	err := &Error{Kind: JSONParseError, Message: "unexpected end of JSON input"}
	require.Equal(t, "JSON parse error: unexpected end of JSON input", err.Error())
	require.Equal(t, "API error", ErrAPIError.Error())
	require.Equal(t, "invalid URL params", InvalidURLParams.String())
	require.Equal(t, "unknown error", ErrorKind(42).String())
}
