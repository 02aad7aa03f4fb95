// Package list реализует HTTP-обработчик списка курсов каталога.
// Каталог статичен, поэтому обработчик не нуждается в сервисе
// и читает данные напрямую из пакета catalog.
package list

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/middleware"
	"github.com/go-chi/render"

	"github.com/asmolenkov/course-catalog/internal/catalog"
	"github.com/asmolenkov/course-catalog/internal/http/response"
)

// Handler обрабатывает HTTP-запросы на список курсов.
type Handler struct {
	log *slog.Logger
}

// New создает новый Handler с переданным логгером.
func New(log *slog.Logger) *Handler {
	return &Handler{log: log}
}

// ServeHTTP godoc
// @Summary Список курсов
// @Description Возвращает все курсы фиксированного каталога.
// @Tags Catalog
// @Produce  json
// @Success 200 {object} map[string]any "Список курсов"
// @Router /courses [get]
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.catalog.list"

	log := h.log.With(
		slog.String("op", op),
		slog.String("request_id", middleware.GetReqID(r.Context())),
	)

	courses := catalog.Courses()
	log.Info("courses listed", slog.Int("count", len(courses)))
	render.JSON(w, r, response.OKWithData(map[string]any{
		"courses": courses,
	}))
}
