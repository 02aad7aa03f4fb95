// Package list реализует HTTP-обработчик списка купленных курсов.
//
// Каждая подписка из снимка сессии дополняется записью курса из каталога,
// как на странице "Мои курсы".
package list

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/middleware"
	"github.com/go-chi/render"

	"github.com/asmolenkov/course-catalog/internal/catalog"
	"github.com/asmolenkov/course-catalog/internal/http/response"
	"github.com/asmolenkov/course-catalog/internal/models"
)

// Service описывает операции сервиса сессии, нужные для списка покупок.
type Service interface {
	Snapshot() models.Session
}

// Enrollment — подписка вместе с курсом, к которому она относится.
type Enrollment struct {
	models.Subscription
	Course *models.Course `json:"course,omitempty"`
}

// Handler обрабатывает HTTP-запросы на список купленных курсов.
type Handler struct {
	log     *slog.Logger
	service Service
}

// New создает новый Handler с переданными логгером и сервисом.
func New(log *slog.Logger, service Service) *Handler {
	return &Handler{
		log:     log,
		service: service,
	}
}

// ServeHTTP godoc
// @Summary Купленные курсы
// @Description Возвращает подписки текущего пользователя вместе с данными курсов.
// @Tags Subscriptions
// @Produce  json
// @Success 200 {object} map[string]any "Список покупок"
// @Failure 401 {object} response.ErrorResponse "Нет активной сессии"
// @Security BearerAuth
// @Router /subscriptions/list [get]
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.subscription.list"

	log := h.log.With(
		slog.String("op", op),
		slog.String("request_id", middleware.GetReqID(r.Context())),
	)

	snap := h.service.Snapshot()
	if snap.User == nil {
		log.Info("no active session")
		w.WriteHeader(http.StatusUnauthorized)
		render.JSON(w, r, response.Error("unauthorized"))
		return
	}

	enrollments := make([]Enrollment, 0, len(snap.Subscriptions))
	for _, sub := range snap.Subscriptions {
		course, _ := catalog.FindCourse(sub.CourseID)
		enrollments = append(enrollments, Enrollment{
			Subscription: sub,
			Course:       course,
		})
	}

	log.Info("subscriptions listed", slog.Int("count", len(enrollments)))
	render.JSON(w, r, response.OKWithData(map[string]any{
		"user":        snap.User,
		"enrollments": enrollments,
	}))
}
