package middleware

import (
	"context"
	"net/http"
	"strings"

	"github.com/m04kA/SMC-ScheduleService/internal/api/handlers"
	"github.com/m04kA/SMC-ScheduleService/pkg/authtoken"
)

type contextKey string

const userIDKey contextKey = "userID"

const (
	msgMissingToken = "требуется заголовок Authorization с Bearer токеном"
	msgInvalidToken = "недействительный или просроченный токен"
)

// TokenValidator интерфейс проверки токенов
type TokenValidator interface {
	Validate(tokenStr string) (*authtoken.Claims, error)
}

// Auth возвращает middleware, проверяющий Bearer токен и кладущий
// ID владельца в контекст запроса
func Auth(tokens TokenValidator) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			header := r.Header.Get("Authorization")
			if header == "" {
				handlers.RespondUnauthorized(w, msgMissingToken)
				return
			}

			tokenStr, ok := strings.CutPrefix(header, "Bearer ")
			if !ok || tokenStr == "" {
				handlers.RespondUnauthorized(w, msgMissingToken)
				return
			}

			claims, err := tokens.Validate(tokenStr)
			if err != nil {
				handlers.RespondUnauthorized(w, msgInvalidToken)
				return
			}

			ctx := context.WithValue(r.Context(), userIDKey, claims.UserID)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// UserIDFromContext достает ID владельца, положенный Auth middleware
func UserIDFromContext(ctx context.Context) (int64, bool) {
	id, ok := ctx.Value(userIDKey).(int64)
	return id, ok
}
