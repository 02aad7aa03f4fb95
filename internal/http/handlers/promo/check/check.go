// Package check реализует HTTP-обработчик проверки промокода.
//
// Промокод сверяется без учёта регистра с единственным действующим кодом
// распродажи; при совпадении в ответе сообщается доля скидки.
package check

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/middleware"
	"github.com/go-chi/render"
	"github.com/go-playground/validator"

	"github.com/asmolenkov/course-catalog/internal/catalog"
	"github.com/asmolenkov/course-catalog/internal/http/response"
	"github.com/asmolenkov/course-catalog/internal/lib/sl"
)

// Request — структура входных данных для проверки промокода.
type Request struct {
	Code string `json:"code" validate:"required"`
}

// Handler обрабатывает HTTP-запросы на проверку промокода.
type Handler struct {
	log      *slog.Logger
	validate *validator.Validate
}

// New создает новый Handler с переданным логгером.
func New(log *slog.Logger) *Handler {
	return &Handler{
		log:      log,
		validate: validator.New(),
	}
}

// ServeHTTP godoc
// @Summary Проверка промокода
// @Description Сообщает, действует ли промокод, и размер скидки.
// @Tags Promo
// @Accept  json
// @Produce  json
// @Param request body Request true "Промокод"
// @Success 200 {object} map[string]any "Результат проверки"
// @Failure 400 {object} response.ErrorResponse "Некорректный JSON"
// @Failure 422 {object} response.ErrorResponse "Ошибка валидации"
// @Router /promo [post]
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.promo.check"

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

	if err := h.validate.Struct(req); err != nil {
		log.Error("validation failed", sl.Err(err))
		w.WriteHeader(http.StatusUnprocessableEntity)
		render.JSON(w, r, response.ValidationError(err.(validator.ValidationErrors)))
		return
	}

	valid := catalog.ValidatePromoCode(req.Code)
	log.Info("promo code checked", slog.Bool("valid", valid))

	data := map[string]any{"valid": valid}
	if valid {
		data["discount"] = catalog.PromoDiscount
	}
	render.JSON(w, r, response.OKWithData(data))
}
