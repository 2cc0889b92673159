package domain

import "errors"

// Errores de dominio (sin dependencias externas). Los de validación se
// lanzan siempre antes de mutar estado o escribir en disco.
var (
	ErrNotFound          = errors.New("recurso no encontrado")
	ErrInvalidInput      = errors.New("entrada inválida")
	ErrDuplicateCategory = errors.New("ya existe una categoría con ese nombre en la sucursal")
	ErrNegativeStock     = errors.New("el stock no puede ser negativo")
	ErrOfferWithoutPrice = errors.New("una oferta activa requiere precio de oferta")
)
