package domain

import "errors"

// Errores de dominio (sin dependencias externas).
// ErrCompanyNotFound y ErrDataUnavailable son condiciones distintas y nunca deben
// confundirse: la primera es un 404 de negocio, la segunda una falla de infraestructura.
var (
	ErrNotFound        = errors.New("recurso no encontrado")
	ErrCompanyNotFound = errors.New("empresa no encontrada")
	ErrDataUnavailable = errors.New("almacén de datos no disponible")
	ErrInvalidInput    = errors.New("entrada inválida")
	ErrForbidden       = errors.New("acceso denegado")
)
