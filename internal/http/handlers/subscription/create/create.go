// Package create реализует HTTP-обработчик покупки курса.
//
// Цена считается на сервере: берётся цена курса из каталога и, если в
// запросе передан действующий промокод, уменьшается на долю скидки.
// Перед записью покупки выдерживается фиксированная задержка,
// имитирующая поход к платёжному провайдеру.
package create

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/middleware"
	"github.com/go-chi/render"
	"github.com/go-playground/validator"

	"github.com/asmolenkov/course-catalog/internal/catalog"
	"github.com/asmolenkov/course-catalog/internal/http/response"
	"github.com/asmolenkov/course-catalog/internal/lib/sl"
)

// Request — структура входных данных для покупки курса.
type Request struct {
	CourseID  string `json:"course_id" validate:"required"`
	PromoCode string `json:"promo_code"`
}

// Service описывает операции сервиса сессии, нужные для покупки.
type Service interface {
	// Subscribe добавляет запись о покупке курса текущим пользователем.
	Subscribe(courseID string, pricePaid float64)
	// IsSubscribed сообщает, куплен ли уже курс.
	IsSubscribed(courseID string) bool
}

// Handler обрабатывает HTTP-запросы на покупку курса.
type Handler struct {
	log      *slog.Logger        // Логгер для записи операций и ошибок
	service  Service             // Сервис сессии
	validate *validator.Validate // Валидатор входных данных
	delay    time.Duration       // Имитация задержки платёжного провайдера
}

// New создает новый Handler с переданными логгером, сервисом и задержкой покупки.
func New(log *slog.Logger, service Service, delay time.Duration) *Handler {
	return &Handler{
		log:      log,
		service:  service,
		validate: validator.New(),
		delay:    delay,
	}
}

// ServeHTTP godoc
// @Summary Покупка курса
// @Description Записывает покупку курса текущим пользователем. Промокод опционален.
// @Tags Subscriptions
// @Accept  json
// @Produce  json
// @Param request body Request true "Данные покупки"
// @Success 200 {object} map[string]any "Успешная покупка"
// @Failure 400 {object} response.ErrorResponse "Некорректный JSON"
// @Failure 404 {object} response.ErrorResponse "Курс не найден"
// @Failure 422 {object} response.ErrorResponse "Ошибка валидации или неверный промокод"
// @Security BearerAuth
// @Router /subscriptions [post]
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.subscription.create"

	log := h.log.With(
		slog.String("op", op),
		slog.String("request_id", middleware.GetReqID(r.Context())),
	)

	var req Request
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Error("failed to decode request body", sl.Err(err))
		w.WriteHeader(http.StatusBadRequest)
		render.JSON(w, r, response.Error("invalid request body"))
		return
	}
	log.Info("request body decoded", slog.String("course_id", req.CourseID))

	if err := h.validate.Struct(req); err != nil {
		log.Error("validation failed", sl.Err(err))
		w.WriteHeader(http.StatusUnprocessableEntity)
		render.JSON(w, r, response.ValidationError(err.(validator.ValidationErrors)))
		return
	}

	course, ok := catalog.FindCourse(req.CourseID)
	if !ok {
		log.Info("course not found", slog.String("course_id", req.CourseID))
		w.WriteHeader(http.StatusNotFound)
		render.JSON(w, r, response.Error("course not found"))
		return
	}

	// повторная покупка не блокируется, каждая добавляет отдельную запись
	if h.service.IsSubscribed(course.ID) {
		log.Info("course already purchased", slog.String("course_id", course.ID))
	}

	promoApplied := false
	if req.PromoCode != "" {
		if !catalog.ValidatePromoCode(req.PromoCode) {
			log.Info("invalid promo code")
			w.WriteHeader(http.StatusUnprocessableEntity)
			render.JSON(w, r, response.Error("invalid promo code"))
			return
		}
		promoApplied = true
	}
	price := catalog.DiscountedPrice(course.Price, promoApplied)

	// имитация похода к платёжному провайдеру
	select {
	case <-time.After(h.delay):
	case <-r.Context().Done():
		log.Info("purchase cancelled by client")
		return
	}

	h.service.Subscribe(course.ID, price)

	log.Info("subscribed",
		slog.String("course_id", course.ID),
		slog.Float64("price_paid", price))
	render.JSON(w, r, response.OKWithData(map[string]any{
		"course_id":     course.ID,
		"price_paid":    price,
		"promo_applied": promoApplied,
	}))
}
