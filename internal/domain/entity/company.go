package entity

import "time"

// Company representa una organización/tenant del sistema (multi-tenant).
// Es el ancla de identidad del cálculo de alertas: sin empresa no hay petición válida.
type Company struct {
	ID        string
	Name      string
	NIT       string // identificación tributaria (con o sin dígito de verificación)
	Address   string
	Phone     string
	Email     string
	CreatedAt time.Time
	UpdatedAt time.Time
}
