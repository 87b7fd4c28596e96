package whatsapp

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/helenacolabronze/booking-service/internal/domain"
)

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// Client клиент Twilio Messages API для отправки WhatsApp сообщений.
// Отправка fire-and-forget: либо возвращается SID сообщения, либо ошибка;
// повторных попыток нет.
type Client struct {
	baseURL    string
	accountSID string
	authToken  string
	from       string // номер-отправитель в формате "+14155238886"
	httpClient *http.Client
	log        Logger
}

// NewClient создает клиент WhatsApp уведомлений
func NewClient(baseURL, accountSID, authToken, from string, timeout time.Duration, log Logger) *Client {
	return &Client{
		baseURL:    strings.TrimSuffix(baseURL, "/"),
		accountSID: accountSID,
		authToken:  authToken,
		from:       "whatsapp:" + from,
		httpClient: &http.Client{
			Timeout: timeout,
		},
		log: log,
	}
}

// FormatNumber приводит номер к международному формату WhatsApp:
// отбрасывает все, кроме цифр, добавляет код страны при необходимости
// и префикс "whatsapp:+".
func FormatNumber(number string) string {
	digits := onlyDigits(number)
	if !strings.HasPrefix(digits, domain.CountryCode) {
		digits = domain.CountryCode + digits
	}
	return "whatsapp:+" + digits
}

// Send отправляет сообщение на указанный номер и возвращает SID сообщения
func (c *Client) Send(ctx context.Context, destination, message string) (string, error) {
	to := FormatNumber(destination)

	// Код страны (2) + DDD (2) + номер (минимум 8)
	if len(onlyDigits(to)) < 12 {
		return "", fmt.Errorf("%w: %q", ErrInvalidNumber, destination)
	}

	endpoint := fmt.Sprintf("%s/2010-04-01/Accounts/%s/Messages.json", c.baseURL, c.accountSID)

	form := url.Values{}
	form.Set("To", to)
	form.Set("From", c.from)
	form.Set("Body", message)

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, strings.NewReader(form.Encode()))
	if err != nil {
		return "", fmt.Errorf("%w: failed to create request: %v", ErrInternal, err)
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	req.SetBasicAuth(c.accountSID, c.authToken)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("%w: failed to execute request: %v", ErrInternal, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode >= http.StatusBadRequest {
		var apiErr errorResponse
		if err := json.NewDecoder(resp.Body).Decode(&apiErr); err != nil {
			return "", fmt.Errorf("%w: unexpected status code %d", ErrSendFailed, resp.StatusCode)
		}
		return "", fmt.Errorf("%w: code=%d message=%s", ErrSendFailed, apiErr.Code, apiErr.Message)
	}

	var msg messageResponse
	if err := json.NewDecoder(resp.Body).Decode(&msg); err != nil {
		return "", fmt.Errorf("%w: failed to decode response: %v", ErrInvalidResponse, err)
	}

	c.log.Info("WhatsApp message sent: sid=%s, to=%s", msg.SID, to)
	return msg.SID, nil
}

// SendReminder отправляет напоминание о записи за день до визита
func (c *Client) SendReminder(ctx context.Context, destination, clientName, date string, slot string) (string, error) {
	message := fmt.Sprintf(
		"Olá, %s! 😊\n\n"+
			"Este é apenas um lembrete sobre seu agendamento:\n"+
			"📅 Amanhã, %s\n"+
			"🕒 Às %s\n\n"+
			"Caso precise remarcar ou cancelar, entre em contato conosco.\n\n"+
			"Até amanhã! 🌞",
		clientName, date, slot,
	)
	return c.Send(ctx, destination, message)
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
