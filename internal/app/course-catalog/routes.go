// Package coursecatalog предоставляет маршруты и жизненный цикл основного приложения.
package coursecatalog

import (
	"log/slog"
	"time"

	"github.com/go-chi/chi"
	"github.com/go-chi/chi/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	httpSwagger "github.com/swaggo/http-swagger"

	"github.com/asmolenkov/course-catalog/internal/http/handlers/auth/login"
	"github.com/asmolenkov/course-catalog/internal/http/handlers/auth/logout"
	"github.com/asmolenkov/course-catalog/internal/http/handlers/auth/register"
	courselist "github.com/asmolenkov/course-catalog/internal/http/handlers/catalog/list"
	courseread "github.com/asmolenkov/course-catalog/internal/http/handlers/catalog/read"
	promocheck "github.com/asmolenkov/course-catalog/internal/http/handlers/promo/check"
	subcreate "github.com/asmolenkov/course-catalog/internal/http/handlers/subscription/create"
	sublist "github.com/asmolenkov/course-catalog/internal/http/handlers/subscription/list"
	"github.com/asmolenkov/course-catalog/internal/http/middlewarectx"
	sessionservice "github.com/asmolenkov/course-catalog/internal/services/session"
)

// RegisterRoutes регистрирует все маршруты приложения.
func RegisterRoutes(r chi.Router, logger *slog.Logger, sessionService *sessionservice.Service, tokens middlewarectx.TokenParser, purchaseDelay time.Duration) {
	// Глобальные middleware
	r.Use(
		middleware.RequestID,
		middleware.Logger,
		middleware.Recoverer,
		middleware.URLFormat,
	)

	r.Route("/api/v1", func(r chi.Router) {
		// Открытые конечные точки
		r.Post("/register", register.New(logger, sessionService).ServeHTTP)
		r.Post("/login", login.New(logger, sessionService).ServeHTTP)
		r.Get("/courses", courselist.New(logger).ServeHTTP)
		r.Get("/courses/{id}", courseread.New(logger).ServeHTTP)
		r.Post("/promo", promocheck.New(logger).ServeHTTP)

		// Группа с проверкой токена сессии
		r.Group(func(r chi.Router) {
			r.Use(middlewarectx.AuthMiddleware(tokens, logger))
			r.Use(middlewarectx.RateLimitMiddleware(logger))
			r.Post("/subscriptions", subcreate.New(logger, sessionService, purchaseDelay).ServeHTTP)
			r.Get("/subscriptions/list", sublist.New(logger, sessionService).ServeHTTP)
			r.Post("/logout", logout.New(logger, sessionService).ServeHTTP)
		})
	})

	r.Handle("/metrics", promhttp.Handler())
	// Swagger docs endpoint
	r.Get("/docs/*", httpSwagger.WrapHandler)
}
