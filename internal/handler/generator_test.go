package handler

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/passgen/passgen/internal/model"
	"github.com/passgen/passgen/internal/service"
)

func newTestHandler() *GeneratorHandler {
	return NewGeneratorHandler(service.NewGeneratorService())
}

func TestHandleGenerate(t *testing.T) {
	tests := []struct {
		name       string
		body       string
		wantStatus int
		wantLength int
		wantError  string
	}{
		{
			name:       "empty body uses defaults",
			body:       "",
			wantStatus: http.StatusOK,
			wantLength: service.DefaultLength,
		},
		{
			name:       "explicit length",
			body:       `{"length": 24, "symbols": true, "no_sequential": true}`,
			wantStatus: http.StatusOK,
			wantLength: 24,
		},
		{
			name:       "length too short",
			body:       `{"length": 3}`,
			wantStatus: http.StatusBadRequest,
			wantError:  "password length must be at least 4",
		},
		{
			name:       "length too long",
			body:       `{"length": 500}`,
			wantStatus: http.StatusBadRequest,
			wantError:  "password length must be at most 128",
		},
		{
			name:       "no classes",
			body:       `{"uppercase": false, "lowercase": false, "numbers": false}`,
			wantStatus: http.StatusBadRequest,
			wantError:  "at least one character type must be selected",
		},
		{
			name:       "malformed json",
			body:       `{"length":`,
			wantStatus: http.StatusBadRequest,
			wantError:  "invalid request body",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodPost, "/api/v1/generate", strings.NewReader(tt.body))
			rec := httptest.NewRecorder()

			newTestHandler().HandleGenerate(rec, req)

			require.Equal(t, tt.wantStatus, rec.Code)
			assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))

			if tt.wantError != "" {
				var body map[string]string
				require.NoError(t, json.NewDecoder(rec.Body).Decode(&body))
				assert.Equal(t, tt.wantError, body["error"])
				return
			}

			var resp model.GenerateResponse
			require.NoError(t, json.NewDecoder(rec.Body).Decode(&resp))
			assert.Equal(t, tt.wantLength, resp.Length)
			assert.Len(t, resp.Password, tt.wantLength)
		})
	}
}

func TestHandleGenerate_BodyTooLarge(t *testing.T) {
	body := `{"custom_symbols": "` + strings.Repeat("!", 2<<20) + `"}`
	req := httptest.NewRequest(http.MethodPost, "/api/v1/generate", strings.NewReader(body))
	rec := httptest.NewRecorder()

	newTestHandler().HandleGenerate(rec, req)

	assert.Equal(t, http.StatusRequestEntityTooLarge, rec.Code)
}
