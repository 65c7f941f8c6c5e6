package http

import (
	"strings"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/Alertas-api/internal/application/dto"
	"github.com/jhoicas/Alertas-api/pkg/jwt"
)

// LocalCompanyID key en c.Locals para el tenant autenticado.
const LocalCompanyID = "company_id"

// AuthMiddleware valida el Bearer Token JWT y carga el CompanyID en c.Locals.
// Los tokens los emite un colaborador externo con el secreto compartido; si el
// servicio arranca sin secreto el router no monta este middleware y la API queda abierta.
func AuthMiddleware(jwtSecret string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		authHeader := c.Get("Authorization")
		if authHeader == "" {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "MISSING_TOKEN", Message: "Authorization header requerido"})
		}
		parts := strings.SplitN(authHeader, " ", 2)
		if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "INVALID_TOKEN", Message: "formato: Bearer <token>"})
		}
		tokenString := strings.TrimSpace(parts[1])
		if tokenString == "" {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "MISSING_TOKEN", Message: "token vacío"})
		}
		companyID, err := jwt.Parse(jwtSecret, tokenString)
		if err != nil {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "INVALID_TOKEN", Message: "token inválido o expirado"})
		}
		c.Locals(LocalCompanyID, companyID)
		return c.Next()
	}
}

// GetCompanyID devuelve el CompanyID del contexto (después del middleware de auth).
// Cadena vacía cuando la API corre abierta.
func GetCompanyID(c *fiber.Ctx) string {
	v := c.Locals(LocalCompanyID)
	if v == nil {
		return ""
	}
	s, _ := v.(string)
	return s
}

// CompanyMismatch informa si hay tenant autenticado y no coincide con la empresa
// del path (los handlers responden 403). Sin token (API abierta) nunca hay conflicto.
func CompanyMismatch(c *fiber.Ctx, pathCompanyID string) bool {
	tokenCompany := GetCompanyID(c)
	return tokenCompany != "" && tokenCompany != pathCompanyID
}
