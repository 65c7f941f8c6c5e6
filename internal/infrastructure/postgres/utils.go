package postgres

import (
	"errors"

	"github.com/jackc/pgx/v5"
)

// isNoRows verifica si un error es la ausencia de filas (no es falla de infraestructura).
func isNoRows(err error) bool {
	return errors.Is(err, pgx.ErrNoRows)
}
