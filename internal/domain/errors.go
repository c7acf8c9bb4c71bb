package domain

import "errors"

// Errores de dominio (sin dependencias externas).
var (
	ErrNotFound     = errors.New("recurso no encontrado")
	ErrInvalidInput = errors.New("entrada inválida")
	ErrUnauthorized = errors.New("no autorizado")
	ErrForbidden    = errors.New("acceso denegado")
	// ErrRowSource señala un fallo del almacén de datos al leer filas para un
	// reporte. Se distingue de "sin filas" (lista vacía, no es error).
	ErrRowSource = errors.New("fallo al leer la fuente de datos")
)
