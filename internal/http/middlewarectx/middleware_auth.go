// Package middlewarectx содержит HTTP middleware защищённой группы маршрутов:
// проверку токена сессии из заголовка Authorization и ограничение частоты
// запросов.
//
// AuthMiddleware разбирает bearer-токен локально, без обращения к внешнему
// сервису, и при успехе добавляет в контекст идентификатор и почту
// пользователя. При ошибке возвращает HTTP 401 Unauthorized.
package middlewarectx

import (
	"context"
	"log/slog"
	"net/http"
	"strings"

	"github.com/go-chi/chi/middleware"
	"github.com/go-chi/render"

	"github.com/asmolenkov/course-catalog/internal/http/response"
	libjwt "github.com/asmolenkov/course-catalog/internal/lib/jwt"
	"github.com/asmolenkov/course-catalog/internal/lib/sl"
)

// Key тип для ключей контекста HTTP-запроса.
type Key string

const (
	// UserID — ключ идентификатора пользователя в контексте.
	UserID Key = "user_id"
	// Email — ключ почты пользователя в контексте.
	Email Key = "email"
)

// TokenParser описывает разбор токена сессии.
type TokenParser interface {
	ParseToken(tokenStr string) (*libjwt.CustomClaims, error)
}

// AuthMiddleware возвращает HTTP middleware, которое проверяет токен сессии
// в заголовке Authorization.
//
// Если токен валиден, кладёт идентификатор и почту пользователя в контекст
// запроса, иначе возвращает HTTP 401 Unauthorized.
func AuthMiddleware(tokens TokenParser, log *slog.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			const op = "middlewarectx.AuthMiddleware"

			log := log.With(
				slog.String("op", op),
				slog.String("request_id", middleware.GetReqID(r.Context())),
			)

			authHeader := r.Header.Get("Authorization")
			if !strings.HasPrefix(authHeader, "Bearer ") {
				log.Error("missing or invalid authorization header")
				render.Status(r, http.StatusUnauthorized)
				render.JSON(w, r, response.Error("missing or invalid authorization header"))
				return
			}
			tokenStr := strings.TrimPrefix(authHeader, "Bearer ")

			claims, err := tokens.ParseToken(tokenStr)
			if err != nil {
				log.Error("invalid or expired token", sl.Err(err))
				render.Status(r, http.StatusUnauthorized)
				render.JSON(w, r, response.Error("invalid or expired token"))
				return
			}
			ctx := context.WithValue(r.Context(), UserID, claims.UserID)
			ctx = context.WithValue(ctx, Email, claims.Email)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}
