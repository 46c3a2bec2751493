// Package i18n resuelve los mensajes de la API en francés o inglés.
// El idioma se negocia con el header Accept-Language (matcher de x/text);
// el catálogo es un mapa estático, sin dependencias de runtime.
package i18n

import "golang.org/x/text/language"

// Idiomas soportados. El primero del matcher es el fallback.
var supported = []language.Tag{
	language.French,
	language.English,
}

var matcher = language.NewMatcher(supported)

// catálogo clave -> (fr, en)
var messages = map[string][2]string{
	"error.not_found":          {"ressource introuvable", "resource not found"},
	"error.invalid_body":       {"corps de requête invalide", "invalid request body"},
	"error.validation":         {"données invalides", "invalid data"},
	"error.duplicate":          {"ressource déjà existante", "resource already exists"},
	"error.unauthorized":       {"authentification requise", "authentication required"},
	"error.invalid_token":      {"jeton invalide ou expiré", "invalid or expired token"},
	"error.forbidden":          {"accès refusé", "access denied"},
	"error.conflict":           {"conflit avec l'état actuel", "conflict with current state"},
	"error.insufficient_stock": {"stock insuffisant", "insufficient stock"},
	"error.internal":           {"erreur interne", "internal error"},
	"error.below_cost_notes":   {"une note est requise pour une vente à perte", "notes are required for a below-cost sale"},
	"error.invite_code":        {"code d'invitation invalide", "invalid invite code"},
	"sale.created":             {"vente enregistrée", "sale recorded"},
	"sale.updated":             {"vente mise à jour", "sale updated"},
	"sale.deleted":             {"vente supprimée, stock restauré", "sale deleted, stock restored"},
	"movement.applied":         {"mouvement de stock enregistré", "stock movement recorded"},
	"stock.reset":              {"stock réinitialisé", "stock reset"},
}

// Match devuelve "fr" o "en" a partir del valor de Accept-Language.
// Si no hay coincidencia (o el header está vacío) devuelve el fallback dado.
func Match(acceptLanguage, fallback string) string {
	if acceptLanguage == "" {
		return normalize(fallback)
	}
	tags, _, err := language.ParseAcceptLanguage(acceptLanguage)
	if err != nil || len(tags) == 0 {
		return normalize(fallback)
	}
	_, idx, conf := matcher.Match(tags...)
	if conf == language.No {
		return normalize(fallback)
	}
	if idx == 1 {
		return "en"
	}
	return "fr"
}

// T devuelve el mensaje para la clave en el idioma dado ("fr" o "en").
// Claves desconocidas se devuelven tal cual para no ocultar errores de catálogo.
func T(lang, key string) string {
	msg, ok := messages[key]
	if !ok {
		return key
	}
	if normalize(lang) == "en" {
		return msg[1]
	}
	return msg[0]
}

func normalize(lang string) string {
	if lang == "en" {
		return "en"
	}
	return "fr"
}
