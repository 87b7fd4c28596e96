package middleware

import (
	"crypto/subtle"
	"net/http"
	"os"

	"github.com/helenacolabronze/booking-service/internal/api/handlers"
)

// AdminPasswordHeader заголовок с паролем администратора
const AdminPasswordHeader = "X-Admin-Password"

// Переменная окружения с паролем администратора
const adminPasswordEnv = "ADMIN_PASSWORD"

const (
	msgMissingPassword = "informe a senha de administrador no header X-Admin-Password"
	msgWrongPassword   = "senha de administrador incorreta"
)

// Auth проверяет пароль администратора из заголовка запроса.
// Пароль сравнивается с ADMIN_PASSWORD в константное время.
func Auth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		provided := r.Header.Get(AdminPasswordHeader)
		if provided == "" {
			handlers.RespondUnauthorized(w, msgMissingPassword)
			return
		}

		expected := os.Getenv(adminPasswordEnv)
		if expected == "" || subtle.ConstantTimeCompare([]byte(provided), []byte(expected)) != 1 {
			handlers.RespondForbidden(w, msgWrongPassword)
			return
		}

		next.ServeHTTP(w, r)
	})
}
