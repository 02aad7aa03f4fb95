package check

import (
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCheckHandler(t *testing.T) {
	logger := slog.New(slog.NewTextHandler(io.Discard, &slog.HandlerOptions{}))

	tests := []struct {
		name           string
		body           string
		expectedStatus int
		expectedBody   string
	}{
		{
			name:           "действующий промокод",
			body:           `{"code":"bfsale25"}`,
			expectedStatus: http.StatusOK,
			expectedBody:   `"valid":true`,
		},
		{
			name:           "промокод в верхнем регистре",
			body:           `{"code":"BFSALE25"}`,
			expectedStatus: http.StatusOK,
			expectedBody:   `"discount":0.5`,
		},
		{
			name:           "неверный промокод",
			body:           `{"code":"WRONG"}`,
			expectedStatus: http.StatusOK,
			expectedBody:   `"valid":false`,
		},
		{
			name:           "пустой промокод",
			body:           `{"code":""}`,
			expectedStatus: http.StatusUnprocessableEntity,
			expectedBody:   `Code is a required field`,
		},
		{
			name:           "некорректный JSON",
			body:           `{"code"`,
			expectedStatus: http.StatusBadRequest,
			expectedBody:   `"error":"invalid request body"`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			handler := New(logger)

			req := httptest.NewRequest(http.MethodPost, "/promo", strings.NewReader(tt.body))
			w := httptest.NewRecorder()

			handler.ServeHTTP(w, req)

			assert.Equal(t, tt.expectedStatus, w.Code)
			assert.True(t, strings.Contains(w.Body.String(), tt.expectedBody),
				"response body should contain %s, got %s", tt.expectedBody, w.Body.String())
		})
	}
}
