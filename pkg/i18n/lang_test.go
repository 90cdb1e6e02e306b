package i18n_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/dmitrymomot/studentcheck/pkg/i18n"
)

func TestNormalizeLocale(t *testing.T) {
	tests := map[string]string{
		"pt_BR.UTF-8": "pt-BR",
		"pt-br":       "pt-BR",
		"en_US@euro":  "en-US",
		"en":          "en",
		" de_DE ":     "de-DE",
		"C":           "",
		"POSIX":       "",
		"":            "",
	}

	for in, want := range tests {
		assert.Equal(t, want, i18n.NormalizeLocale(in), in)
	}
}

func TestMatchLanguage(t *testing.T) {
	supported := []string{"en", "pt-BR"}

	tests := []struct {
		requested string
		want      string
	}{
		{requested: "pt-BR", want: "pt-BR"},
		{requested: "pt-br", want: "pt-BR"},
		{requested: "pt", want: "pt-BR"},
		{requested: "pt_BR.UTF-8", want: "pt-BR"},
		{requested: "en-US", want: "en"},
		{requested: "en_GB.UTF-8", want: "en"},
		{requested: "ja", want: "en"},
		{requested: "", want: "en"},
		{requested: "C", want: "en"},
		{requested: "!!", want: "en"},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, i18n.MatchLanguage(tt.requested, supported, "en"), tt.requested)
	}

	assert.Equal(t, "pt-BR", i18n.MatchLanguage("fr", supported, "pt-BR"))
	assert.Equal(t, "xx", i18n.MatchLanguage("en", nil, "xx"))
}

func TestLocaleContext(t *testing.T) {
	assert.Equal(t, i18n.DefaultLanguage, i18n.GetLocale(context.Background()))

	ctx := i18n.SetLocale(context.Background(), "pt-BR")
	assert.Equal(t, "pt-BR", i18n.GetLocale(ctx))
}
