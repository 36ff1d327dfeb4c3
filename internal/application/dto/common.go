package dto

// ErrorResponse cuerpo de error HTTP.
type ErrorResponse struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// ImageURLFunc resuelve la URL pública de la imagen de un SKU.
type ImageURLFunc func(sku int64) string
