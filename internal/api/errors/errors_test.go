package errors

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestHTTPStatus(t *testing.T) {
	testCases := []struct {
		err      *APIError
		expected int
	}{
		{err: NewUnauthorizedError("bad signature"), expected: http.StatusUnauthorized},
		{err: NewBadRequestError("bad payload"), expected: http.StatusBadRequest},
		{err: NewServiceUnavailableError("draining"), expected: http.StatusServiceUnavailable},
		{err: NewInternalError("boom"), expected: http.StatusInternalServerError},
		{err: &APIError{Kind: "unknown"}, expected: http.StatusInternalServerError},
	}

	for _, tc := range testCases {
		t.Run(string(tc.err.Kind), func(t *testing.T) {
			assert.Equal(t, tc.expected, tc.err.HTTPStatus())
		})
	}
	assert.Equal(t, "bad signature", NewUnauthorizedError("bad signature").Error())
}
