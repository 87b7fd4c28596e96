package create_reservation

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/helenacolabronze/booking-service/internal/domain"
)

// Формат e-mail: local@domain.tld, без пробелов вокруг @
var emailRegexp = regexp.MustCompile(`^[^@]+@[^@]+\.[^@]+$`)

// validateRequest валидирует входные данные запроса и возвращает
// нормализованный номер телефона
func validateRequest(req *Request) (string, error) {
	if req.Date.IsZero() {
		return "", fmt.Errorf("%w: date is required", ErrInvalidInput)
	}

	if strings.TrimSpace(req.ClientName) == "" {
		return "", ErrInvalidName
	}

	phone, err := NormalizePhone(req.ClientPhone)
	if err != nil {
		return "", err
	}

	if !ValidateEmail(req.ClientEmail) {
		return "", ErrInvalidEmail
	}

	if req.Slot.IsZero() || req.Slot.Validate() != nil || !domain.IsCatalogSlot(req.Slot) {
		return "", fmt.Errorf("%w: %q", ErrInvalidSlot, req.Slot)
	}

	if !domain.IsCatalogService(req.Service) {
		return "", fmt.Errorf("%w: %q", ErrUnknownService, req.Service)
	}

	if !req.TermsAccepted {
		return "", ErrTermsNotAccepted
	}

	return phone, nil
}

// NormalizePhone нормализует номер WhatsApp.
// Принимает 10 цифр (DDD + 8-значный номер) или 11 цифр (DDD + 9-значный
// мобильный, первая цифра абонентского номера обязана быть "9"),
// отбрасывая все остальные символы. Возвращает номер с кодом страны.
func NormalizePhone(raw string) (string, error) {
	digits := onlyDigits(raw)

	switch len(digits) {
	case domain.LandlinePhoneDigits:
		return domain.CountryCode + digits, nil
	case domain.MobilePhoneDigits:
		if digits[2] != domain.MobilePrefix {
			return "", fmt.Errorf("%w: %q", ErrInvalidPhone, raw)
		}
		return domain.CountryCode + digits, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrInvalidPhone, raw)
	}
}

// ValidateEmail проверяет формат e-mail. Пустая строка валидна — поле опционально.
func ValidateEmail(email string) bool {
	if email == "" {
		return true
	}
	return emailRegexp.MatchString(email)
}

func onlyDigits(s string) string {
	var b strings.Builder
	for _, r := range s {
		if r >= '0' && r <= '9' {
			b.WriteRune(r)
		}
	}
	return b.String()
}
