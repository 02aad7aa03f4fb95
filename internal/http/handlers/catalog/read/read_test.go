package read

import (
	"context"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-chi/chi"
	"github.com/stretchr/testify/assert"
)

func TestReadHandler(t *testing.T) {
	logger := slog.New(slog.NewTextHandler(io.Discard, &slog.HandlerOptions{}))

	tests := []struct {
		name           string
		courseID       string
		expectedStatus int
		expectedBody   string
	}{
		{
			name:           "существующий курс",
			courseID:       "course-1",
			expectedStatus: http.StatusOK,
			expectedBody:   `"title":"React Masterclass"`,
		},
		{
			name:           "бесплатный курс",
			courseID:       "course-5",
			expectedStatus: http.StatusOK,
			expectedBody:   `"price":0`,
		},
		{
			name:           "неизвестный курс",
			courseID:       "course-999",
			expectedStatus: http.StatusNotFound,
			expectedBody:   `"error":"course not found"`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			handler := New(logger)

			req := httptest.NewRequest(http.MethodGet, "/courses/"+tt.courseID, nil)
			rctx := chi.NewRouteContext()
			rctx.URLParams.Add("id", tt.courseID)
			req = req.WithContext(context.WithValue(req.Context(), chi.RouteCtxKey, rctx))

			w := httptest.NewRecorder()

			handler.ServeHTTP(w, req)

			assert.Equal(t, tt.expectedStatus, w.Code)
			assert.True(t, strings.Contains(w.Body.String(), tt.expectedBody),
				"response body should contain %s, got %s", tt.expectedBody, w.Body.String())
		})
	}
}
