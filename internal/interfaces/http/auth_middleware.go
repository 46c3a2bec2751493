package http

import (
	"strings"

	"github.com/gofiber/fiber/v2"

	"github.com/revendix/revendix-api/internal/application/dto"
	domauth "github.com/revendix/revendix-api/internal/domain/auth"
	"github.com/revendix/revendix-api/pkg/i18n"
	"github.com/revendix/revendix-api/pkg/jwt"
)

// Locals keys para UserID, Role e idioma en Fiber.
const (
	LocalUserID = "user_id"
	LocalRole   = "role"
	LocalLang   = "lang"
)

// LanguageMiddleware negocia el idioma de los mensajes con Accept-Language
// y lo deja en c.Locals para los handlers. Corre antes del auth.
func LanguageMiddleware(defaultLang string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		c.Locals(LocalLang, i18n.Match(c.Get("Accept-Language"), defaultLang))
		return c.Next()
	}
}

// AuthMiddleware valida el Bearer Token JWT y extrae UserID y Role a c.Locals.
func AuthMiddleware(jwtSecret string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		lang := Lang(c)
		authHeader := c.Get("Authorization")
		if authHeader == "" {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "MISSING_TOKEN", Message: i18n.T(lang, "error.unauthorized")})
		}
		parts := strings.SplitN(authHeader, " ", 2)
		if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "INVALID_TOKEN", Message: i18n.T(lang, "error.invalid_token")})
		}
		tokenString := strings.TrimSpace(parts[1])
		if tokenString == "" {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "MISSING_TOKEN", Message: i18n.T(lang, "error.unauthorized")})
		}
		userID, role, err := jwt.Parse(jwtSecret, tokenString)
		if err != nil {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "INVALID_TOKEN", Message: i18n.T(lang, "error.invalid_token")})
		}
		c.Locals(LocalUserID, userID)
		c.Locals(LocalRole, role)
		return c.Next()
	}
}

// RequirePermission corta con 403 si el rol del token no puede ejecutar la acción.
// Montar después de AuthMiddleware.
func RequirePermission(action string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		if !domauth.HasPermission(GetRole(c), action) {
			return c.Status(fiber.StatusForbidden).JSON(dto.ErrorResponse{
				Code:    "FORBIDDEN",
				Message: i18n.T(Lang(c), "error.forbidden"),
			})
		}
		return c.Next()
	}
}

// GetUserID devuelve el UserID del contexto (después del middleware de auth).
func GetUserID(c *fiber.Ctx) string {
	v := c.Locals(LocalUserID)
	if v == nil {
		return ""
	}
	s, _ := v.(string)
	return s
}

// GetRole devuelve el rol del contexto (después del middleware de auth).
func GetRole(c *fiber.Ctx) string {
	v := c.Locals(LocalRole)
	if v == nil {
		return ""
	}
	s, _ := v.(string)
	return s
}

// Lang devuelve el idioma negociado ("fr" o "en").
func Lang(c *fiber.Ctx) string {
	v := c.Locals(LocalLang)
	if v == nil {
		return "fr"
	}
	s, _ := v.(string)
	return s
}
