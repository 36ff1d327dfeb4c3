package domain

import "errors"

// Errores de dominio (sin dependencias externas).
var (
	ErrNotFound           = errors.New("recurso no encontrado")
	ErrInvalidInput       = errors.New("entrada inválida")
	ErrInvalidProduct     = errors.New("datos de producto inválidos")
	ErrSessionNotFound    = errors.New("sesión de carrito no encontrada")
	ErrEmptyCart          = errors.New("el carrito está vacío")
	ErrCheckoutInProgress = errors.New("ya hay un pago en curso para este carrito")
	ErrUnauthorized       = errors.New("no autorizado")
	ErrAssetNotFound      = errors.New("recurso gráfico no encontrado")
)
