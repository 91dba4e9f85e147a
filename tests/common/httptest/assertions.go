//go:build unit || e2e

package httptest

import (
	"encoding/json"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
)

// AssertSuccessResponse checks the status and, for 2xx responses, decodes the
// body into target. Pass nil when the body does not matter.
func AssertSuccessResponse(t *testing.T, w *httptest.ResponseRecorder, wantStatus int, target any) {
	t.Helper()

	if !assert.Equal(t, wantStatus, w.Code, "unexpected status, body: %s", w.Body.String()) {
		return
	}
	if wantStatus >= 200 && wantStatus < 300 && target != nil {
		assert.NoError(t, json.Unmarshal(w.Body.Bytes(), target),
			"decoding response body: %s", w.Body.String())
	}
}

// AssertErrorResponse checks the status and that the error envelope message
// contains wantMsg. An empty wantMsg only checks the envelope shape.
func AssertErrorResponse(t *testing.T, w *httptest.ResponseRecorder, wantStatus int, wantMsg string) {
	t.Helper()

	assert.Equal(t, wantStatus, w.Code, "unexpected status, body: %s", w.Body.String())

	var envelope struct {
		Error struct {
			Message string `json:"message"`
		} `json:"error"`
	}
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &envelope),
		"decoding error body: %s", w.Body.String())

	if wantMsg != "" {
		assert.Contains(t, envelope.Error.Message, wantMsg)
	}
}
