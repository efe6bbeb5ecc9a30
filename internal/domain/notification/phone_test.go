package notification

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalizePhone(t *testing.T) {
	tests := []struct {
		name string
		raw  string
		want string
	}{
		{"local with leading zero", "0912345678", "+251912345678"},
		{"bare nine digit", "912345678", "+251912345678"},
		{"country code without plus", "251912345678", "+251912345678"},
		{"already canonical", "+251912345678", "+251912345678"},
		{"plus prefix untouched even when short", "+1234", "+1234"},
		{"spaces and dashes stripped", "0911-22-33-44", "+251911223344"},
		{"spaces in country code form", "251 91 234 5678", "+251912345678"},
		{"unknown format passes through", "abc", "abc"},
		{"landline passes through", "0114670000", "0114670000"},
		{"empty passes through", "", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, NormalizePhone(tt.raw))
		})
	}
}
