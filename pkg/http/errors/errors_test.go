package errors

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRespondErrorEnvelope(t *testing.T) {
	cases := []struct {
		name    string
		respond func(http.ResponseWriter)
		status  int
		message string
	}{
		{"bad request", RespondBadRequest, http.StatusBadRequest, "Bad Request"},
		{"unauthorized", RespondUnauthorized, http.StatusUnauthorized, "Unauthorized"},
		{"not found", RespondNotFound, http.StatusNotFound, "Not found"},
		{"method not allowed", RespondMethodNotAllowed, http.StatusMethodNotAllowed, "Method Not Allowed"},
		{"unprocessable", RespondUnprocessable, http.StatusUnprocessableEntity, "Un Processable Entry"},
		{"internal", RespondInternalError, http.StatusInternalServerError, "Internal Server Error"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			rec := httptest.NewRecorder()
			tc.respond(rec)

			assert.Equal(t, tc.status, rec.Code)
			assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))

			var body map[string]interface{}
			require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
			assert.Equal(t, false, body["success"])
			assert.Equal(t, float64(tc.status), body["error"])
			assert.Equal(t, tc.message, body["message"])
		})
	}
}

func TestMessageForUnknownStatus(t *testing.T) {
	assert.Equal(t, MsgInternalError, MessageFor(http.StatusTeapot))
}
