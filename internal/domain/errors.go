package domain

import "errors"

// Errores de dominio (sin dependencias externas).
var (
	ErrNotFound           = errors.New("recurso no encontrado")
	ErrInvalidInput       = errors.New("entrada inválida")
	ErrUnauthorized       = errors.New("no autorizado")
	ErrForbidden          = errors.New("acceso denegado")
	ErrConflict           = errors.New("conflicto con el estado actual")
	ErrStaleSave          = errors.New("guardado obsoleto: existe una versión más reciente")
	ErrNotPublishable     = errors.New("la configuración no cumple los requisitos para publicar")
	ErrCorruptedState     = errors.New("estado local corrupto")
	ErrStorageUnavailable = errors.New("almacenamiento local no disponible")
)
