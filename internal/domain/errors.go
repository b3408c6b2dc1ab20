package domain

import "errors"

// Errores de dominio (sin dependencias externas).
var (
	ErrNotFound        = errors.New("recurso no encontrado")
	ErrInvoiceNotFound = errors.New("factura no encontrada")
	ErrInvalidInput    = errors.New("entrada inválida")
	ErrInvalidInvoice  = errors.New("factura inválida")
	ErrInvalidDate     = errors.New("fecha inválida")
	ErrUnauthorized    = errors.New("no autorizado")
	ErrForbidden       = errors.New("acceso denegado")
	ErrConflict        = errors.New("conflicto con el estado actual")
)
