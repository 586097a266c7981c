package validator

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIsValidLangCode(t *testing.T) {
	valid := []string{"en", "zh", "pt-BR", "fil", "EN", "en-us"}
	for _, lang := range valid {
		assert.True(t, IsValidLangCode(lang), lang)
	}

	invalid := []string{"", "e", "engl", "en-", "en-USA", "e1", "en-u1", "en-US-x"}
	for _, lang := range invalid {
		assert.False(t, IsValidLangCode(lang), lang)
	}
}

func TestNormalizeLangCode(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"en", "en"},
		{"EN", "en"},
		{"pt-br", "pt-BR"},
		{"PT-br", "pt-BR"},
		{" en ", "en"},
		{"", "en"},
		{"not a lang", "en"},
		{"x", "en"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, NormalizeLangCode(tt.in, "en"), tt.in)
	}
}
