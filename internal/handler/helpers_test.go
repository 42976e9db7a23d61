package handler_test

import (
	"encoding/json"
	"io"
	"net/http"
	"testing"

	"github.com/go-playground/validator/v10"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/require"
)

func testLogger() zerolog.Logger {
	return zerolog.New(io.Discard)
}

func decodeResponse(t *testing.T, resp *http.Response, out interface{}) {
	t.Helper()
	defer resp.Body.Close()
	require.NoError(t, json.NewDecoder(resp.Body).Decode(out))
}

// validationError produces a real validator.ValidationErrors value for mocks.
func validationError(t *testing.T) error {
	t.Helper()
	err := validator.New().Struct(struct {
		Field string `validate:"required"`
	}{})
	require.Error(t, err)
	return err
}
