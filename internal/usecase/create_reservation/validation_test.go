package create_reservation

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNormalizePhone(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    string
		wantErr bool
	}{
		{name: "10 digits landline", input: "2299856294", want: "552299856294"},
		{name: "11 digits mobile", input: "22998562940", want: "5522998562940"},
		{name: "11 digits mobile other area", input: "21912345678", want: "5521912345678"},
		{name: "formatted input", input: "(22) 99856-2940", want: "5522998562940"},
		{name: "too short", input: "123", wantErr: true},
		{name: "11 digits without mobile prefix", input: "22812345678", wantErr: true},
		{name: "too long", input: "5522998562940", wantErr: true},
		{name: "empty", input: "", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := NormalizePhone(tt.input)
			if tt.wantErr {
				assert.ErrorIs(t, err, ErrInvalidPhone)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestValidateEmail(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  bool
	}{
		{name: "empty is valid (optional field)", input: "", want: true},
		{name: "simple address", input: "a@b.com", want: true},
		{name: "subdomain", input: "maria@mail.example.com.br", want: true},
		{name: "no at sign", input: "not-an-email", want: false},
		{name: "no tld", input: "a@b", want: false},
		{name: "double at", input: "a@@b.com", want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ValidateEmail(tt.input))
		})
	}
}
