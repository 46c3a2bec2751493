package i18n_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/revendix/revendix-api/pkg/i18n"
)

func TestMatch(t *testing.T) {
	cases := []struct {
		name           string
		acceptLanguage string
		fallback       string
		want           string
	}{
		{"francés exacto", "fr", "fr", "fr"},
		{"inglés exacto", "en", "fr", "en"},
		{"variante regional", "fr-CI", "en", "fr"},
		{"lista con pesos", "en-US,en;q=0.9,fr;q=0.8", "fr", "en"},
		{"header vacío usa fallback", "", "en", "en"},
		{"idioma no soportado usa fallback", "de", "fr", "fr"},
		{"header malformado usa fallback", ";;;", "fr", "fr"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, i18n.Match(tc.acceptLanguage, tc.fallback))
		})
	}
}

func TestT(t *testing.T) {
	assert.Equal(t, "stock insuffisant", i18n.T("fr", "error.insufficient_stock"))
	assert.Equal(t, "insufficient stock", i18n.T("en", "error.insufficient_stock"))
	assert.Equal(t, "ressource introuvable", i18n.T("", "error.not_found"),
		"idioma desconocido cae en francés")
	assert.Equal(t, "clave.inexistente", i18n.T("fr", "clave.inexistente"),
		"clave desconocida se devuelve tal cual")
}
