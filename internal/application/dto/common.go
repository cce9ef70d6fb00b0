package dto

// Paginación por limit/offset para los listados.
const (
	PageLimitDefault = 20
	PageLimitMax     = 100
)

// PageRequest parámetros de paginación tomados del query string.
type PageRequest struct {
	Limit  int `query:"limit"`
	Offset int `query:"offset"`
}

// DefaultPage normaliza los parámetros: aplica el límite por defecto y
// acota al máximo permitido. Aquí no corre ningún validador, así que la
// cota se hace efectiva en código.
func (p *PageRequest) DefaultPage() {
	if p.Limit <= 0 {
		p.Limit = PageLimitDefault
	}
	if p.Limit > PageLimitMax {
		p.Limit = PageLimitMax
	}
	if p.Offset < 0 {
		p.Offset = 0
	}
}

// PageResponse metadatos de página en respuestas de listado.
type PageResponse struct {
	Limit  int `json:"limit"`
	Offset int `json:"offset"`
}

// ErrorResponse cuerpo de error HTTP.
type ErrorResponse struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}
