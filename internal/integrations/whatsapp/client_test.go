package whatsapp

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

func TestFormatNumber(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{name: "bare local number", input: "22998562940", want: "whatsapp:+5522998562940"},
		{name: "already has country code", input: "5522998562940", want: "whatsapp:+5522998562940"},
		{name: "formatted input", input: "(22) 99856-2940", want: "whatsapp:+5522998562940"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, FormatNumber(tt.input))
		})
	}
}

func TestClient_Send(t *testing.T) {
	var gotTo, gotFrom, gotBody string

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.NoError(t, r.ParseForm())
		gotTo = r.PostFormValue("To")
		gotFrom = r.PostFormValue("From")
		gotBody = r.PostFormValue("Body")

		user, _, ok := r.BasicAuth()
		assert.True(t, ok)
		assert.Equal(t, "AC00000000", user)

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusCreated)
		w.Write([]byte(`{"sid":"SM123","status":"queued"}`))
	}))
	defer server.Close()

	client := NewClient(server.URL, "AC00000000", "token", "+14155238886", time.Second, nopLogger{})

	sid, err := client.Send(context.Background(), "22998562940", "teste")
	require.NoError(t, err)

	assert.Equal(t, "SM123", sid)
	assert.Equal(t, "whatsapp:+5522998562940", gotTo)
	assert.Equal(t, "whatsapp:+14155238886", gotFrom)
	assert.Equal(t, "teste", gotBody)
}

func TestClient_SendAPIError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusBadRequest)
		w.Write([]byte(`{"code":21211,"message":"Invalid 'To' Phone Number"}`))
	}))
	defer server.Close()

	client := NewClient(server.URL, "AC00000000", "token", "+14155238886", time.Second, nopLogger{})

	_, err := client.Send(context.Background(), "22998562940", "teste")
	assert.ErrorIs(t, err, ErrSendFailed)
}

func TestClient_SendRejectsShortNumber(t *testing.T) {
	client := NewClient("http://unused", "AC00000000", "token", "+14155238886", time.Second, nopLogger{})

	_, err := client.Send(context.Background(), "123", "teste")
	assert.ErrorIs(t, err, ErrInvalidNumber)
}
