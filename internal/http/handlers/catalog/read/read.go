// Package read реализует HTTP-обработчик страницы курса.
package read

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi"
	"github.com/go-chi/chi/middleware"
	"github.com/go-chi/render"

	"github.com/asmolenkov/course-catalog/internal/catalog"
	"github.com/asmolenkov/course-catalog/internal/http/response"
)

// Handler обрабатывает HTTP-запросы на чтение одного курса.
type Handler struct {
	log *slog.Logger
}

// New создает новый Handler с переданным логгером.
func New(log *slog.Logger) *Handler {
	return &Handler{log: log}
}

// ServeHTTP godoc
// @Summary Курс по идентификатору
// @Description Возвращает курс каталога с полным описанием.
// @Tags Catalog
// @Produce  json
// @Param id path string true "Идентификатор курса"
// @Success 200 {object} map[string]any "Курс"
// @Failure 404 {object} response.ErrorResponse "Курс не найден"
// @Router /courses/{id} [get]
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.catalog.read"

	log := h.log.With(
		slog.String("op", op),
		slog.String("request_id", middleware.GetReqID(r.Context())),
	)

	id := chi.URLParam(r, "id")
	course, ok := catalog.FindCourse(id)
	if !ok {
		log.Info("course not found", slog.String("course_id", id))
		w.WriteHeader(http.StatusNotFound)
		render.JSON(w, r, response.Error("course not found"))
		return
	}

	log.Info("course read", slog.String("course_id", id))
	render.JSON(w, r, response.OKWithData(map[string]any{
		"course": course,
	}))
}
