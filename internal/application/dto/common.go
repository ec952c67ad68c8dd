package dto

// ErrorResponse cuerpo de error HTTP.
type ErrorResponse struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// SuccessResponse acuse de recibo sin payload (ej. borrado de movimiento).
type SuccessResponse struct {
	Success bool `json:"success"`
}

// PageResponse metadatos de página en respuestas de listado.
type PageResponse struct {
	Limit  int `json:"limit"`
	Offset int `json:"offset"`
}
